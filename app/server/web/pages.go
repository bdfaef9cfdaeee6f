package web

import (
	"encoding/json"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themeswitch/app/server/internal"
	"github.com/umputun/themeswitch/app/theme"
)

// handleIndex renders the main page with the theme toggle.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "index", internal.NewDocument(theme.ControlID))
}

// handleAbout renders a page without the toggle, the theme is left alone there.
func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "about", internal.NewDocument())
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page string, doc *internal.Document) {
	if _, _, err := h.controller(w, r, doc); err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", h.pageData(page, doc)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle clicks the toggle. htmx requests get the new button and a themeChanged
// trigger to update the root attribute in place, plain form posts are redirected back.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	doc := internal.NewDocument(theme.ControlID)
	ctrl, id, err := h.controller(w, r, doc)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	doc.Button(theme.ControlID).Click()
	log.Printf("[DEBUG] client %s switched theme to %s", id, ctrl.Current())

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}

	trigger, err := json.Marshal(map[string]any{
		"themeChanged": map[string]string{"theme": doc.RootAttribute(theme.Attribute)},
	})
	if err != nil {
		log.Printf("[ERROR] failed to marshal trigger: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("HX-Trigger", string(trigger))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "toggle", h.pageData("index", doc)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}
