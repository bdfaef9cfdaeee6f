// Package store provides durable storage for client preferences.
//
// A preference is addressed by the client scope (the id of one browser) and the
// preference name. Store keeps them in a database, Cached adds an in-memory LRU on top,
// and Scoped binds either of them to a single client.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the client has no stored value for a preference.
var ErrNotFound = errors.New("preference not found")

// Interface is the preference storage contract shared by Store and Cached.
type Interface interface {
	Get(ctx context.Context, scope, name string) (string, error)
	Set(ctx context.Context, scope, name, value string) error
	Delete(ctx context.Context, scope, name string) error
	Close() error
}
