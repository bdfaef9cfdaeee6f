package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Prefs is the preference storage a Scoped view reads and writes through.
type Prefs interface {
	Get(ctx context.Context, scope, name string) (string, error)
	Set(ctx context.Context, scope, name, value string) error
}

// Scoped is the view of one client's preferences for the lifetime of a request,
// the way browser storage is restricted to one origin.
type Scoped struct {
	ctx   context.Context //nolint:containedctx // bound to a single request
	prefs Prefs
	scope string
}

// NewScoped binds prefs to the client scope. Calls made through the view use ctx.
func NewScoped(ctx context.Context, prefs Prefs, scope string) (*Scoped, error) {
	if strings.TrimSpace(scope) == "" {
		return nil, errors.New("empty client scope")
	}
	return &Scoped{ctx: ctx, prefs: prefs, scope: scope}, nil
}

// Get returns the named preference. ok is false if the client never set it.
func (s *Scoped) Get(name string) (value string, ok bool, err error) {
	val, err := s.prefs.Get(s.ctx, s.scope, name)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("scoped get %q: %w", name, err)
	}
	return val, true, nil
}

// Set writes the named preference, overwriting any prior value.
func (s *Scoped) Set(name, value string) error {
	if err := s.prefs.Set(s.ctx, s.scope, name, value); err != nil {
		return fmt.Errorf("scoped set %q: %w", name, err)
	}
	return nil
}
