// Package web provides HTTP handlers for the web UI.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themeswitch/app/server/internal"
	"github.com/umputun/themeswitch/app/theme"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

//go:embed templates
var templatesFS embed.FS

// PrefStore defines the interface for the client preference storage.
type PrefStore interface {
	Get(ctx context.Context, scope, name string) (string, error)
	Set(ctx context.Context, scope, name, value string) error
}

// LabelProvider returns label localizers for the request languages.
type LabelProvider interface {
	For(langs ...string) theme.Localizer
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Title   string
}

// Handler handles web UI requests.
type Handler struct {
	store   PrefStore
	labels  LabelProvider
	tmpl    *template.Template
	baseURL string
	title   string
}

// New creates a new web handler. labels may be nil for default english labels.
func New(st PrefStore, labels LabelProvider, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	title := cfg.Title
	if title == "" {
		title = "themeswitch"
	}
	return &Handler{store: st, labels: labels, tmpl: tmpl, baseURL: cfg.BaseURL, title: title}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /about", h.handleAbout)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")
	files := []struct{ name, path string }{
		{"base.html", "templates/base.html"},
		{"toggle", "templates/partials/toggle.html"},
		{"index", "templates/partials/index.html"},
		{"about", "templates/partials/about.html"},
	}
	for _, f := range files {
		content, err := templatesFS.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.path, err)
		}
		if _, err = tmpl.New(f.name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.path, err)
		}
	}
	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title   string
	Page    string           // content partial to render
	Theme   string           // root data-theme value, empty if the page has no toggle
	Toggle  *internal.Button // nil on pages without the toggle
	BaseURL string
}

// controller makes a theme controller for the request rendering into doc.
func (h *Handler) controller(w http.ResponseWriter, r *http.Request, doc *internal.Document) (*theme.Controller, string, error) {
	var loc theme.Localizer
	if h.labels != nil {
		loc = h.labels.For(r.Header.Get("Accept-Language"))
	}
	id := internal.ClientID(w, r, h.cookiePath())
	ctrl, err := internal.Controller(r.Context(), h.store, id, loc, doc)
	if err != nil {
		return nil, "", fmt.Errorf("make theme controller: %w", err)
	}
	return ctrl, id, nil
}

// pageData fills template data from a rendered document.
func (h *Handler) pageData(page string, doc *internal.Document) templateData {
	return templateData{
		Title:   h.title,
		Page:    page,
		Theme:   doc.RootAttribute(theme.Attribute),
		Toggle:  doc.Button(theme.ControlID),
		BaseURL: h.baseURL,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
