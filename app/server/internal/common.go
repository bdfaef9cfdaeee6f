// Package internal provides shared utilities for server subpackages.
package internal

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/umputun/themeswitch/app/store"
	"github.com/umputun/themeswitch/app/theme"
)

// ClientCookieName is the cookie holding the client scope id.
const ClientCookieName = "themeswitch-client"

// ClientID returns the client scope id of the request, issuing a new one
// in a cookie if the request has none or it isn't a valid uuid.
func ClientID(w http.ResponseWriter, r *http.Request, cookiePath string) string {
	if cookie, err := r.Cookie(ClientCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ClientCookieName,
		Value:    id,
		Path:     cookiePath,
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Controller makes a theme controller for the client's preferences, rendering into doc.
// The controller reads and writes the store within ctx.
func Controller(ctx context.Context, prefs store.Prefs, clientID string, loc theme.Localizer,
	doc theme.Document) (*theme.Controller, error) {
	scoped, err := store.NewScoped(ctx, prefs, clientID)
	if err != nil {
		return nil, fmt.Errorf("scope client %q: %w", clientID, err)
	}
	return theme.New(doc, scoped, loc), nil
}
