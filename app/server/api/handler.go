// Package api provides JSON HTTP handlers for the theme API.
package api

import (
	"context"
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themeswitch/app/server/internal"
	"github.com/umputun/themeswitch/app/store"
	"github.com/umputun/themeswitch/app/theme"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

// PrefStore defines the interface for the client preference storage.
type PrefStore interface {
	Get(ctx context.Context, scope, name string) (string, error)
	Set(ctx context.Context, scope, name, value string) error
	Delete(ctx context.Context, scope, name string) error
}

// LabelProvider returns label localizers for the request languages.
type LabelProvider interface {
	For(langs ...string) theme.Localizer
}

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	store      PrefStore
	labels     LabelProvider
	cookiePath string
}

// New creates a new API handler. labels may be nil for default english labels.
func New(st PrefStore, labels LabelProvider, cookiePath string) *Handler {
	if cookiePath == "" {
		cookiePath = "/"
	}
	return &Handler{store: st, labels: labels, cookiePath: cookiePath}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
	r.HandleFunc("DELETE /theme", h.handleReset)
}

// stateResponse is the json view of the current theme.
type stateResponse struct {
	Theme string `json:"theme"`
	theme.DisplayState
}

// handleGet returns the current theme of the client.
// GET /api/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctrl, _, err := h.controller(w, r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to load theme")
		return
	}
	rest.RenderJSON(w, stateResponse{Theme: ctrl.Current().String(), DisplayState: ctrl.State()})
}

// handleToggle flips the theme of the client and returns the new state.
// POST /api/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctrl, id, err := h.controller(w, r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to load theme")
		return
	}
	if err := ctrl.Toggle(); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to save theme")
		return
	}
	log.Printf("[DEBUG] client %s switched theme to %s via api", id, ctrl.Current())
	rest.RenderJSON(w, stateResponse{Theme: ctrl.Current().String(), DisplayState: ctrl.State()})
}

// handleReset forgets the stored theme of the client and returns the default state.
// DELETE /api/theme
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	id := internal.ClientID(w, r, h.cookiePath)
	err := h.store.Delete(r.Context(), id, theme.StorageKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to reset theme")
		return
	}
	ctrl, err := h.controllerFor(r, id)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to load theme")
		return
	}
	log.Printf("[DEBUG] client %s reset theme", id)
	rest.RenderJSON(w, stateResponse{Theme: ctrl.Current().String(), DisplayState: ctrl.State()})
}

// controller makes a controller for the request client over a headless document holding just the toggle.
func (h *Handler) controller(w http.ResponseWriter, r *http.Request) (*theme.Controller, string, error) {
	id := internal.ClientID(w, r, h.cookiePath)
	ctrl, err := h.controllerFor(r, id)
	return ctrl, id, err
}

func (h *Handler) controllerFor(r *http.Request, clientID string) (*theme.Controller, error) {
	var loc theme.Localizer
	if h.labels != nil {
		loc = h.labels.For(r.Header.Get("Accept-Language"))
	}
	return internal.Controller(r.Context(), h.store, clientID, loc, internal.NewDocument(theme.ControlID)) //nolint:wrapcheck // already wrapped
}
