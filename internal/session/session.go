// Package session carries the authenticated identity of a request explicitly through context.
package session

import (
	"context"
	"errors"
)

// ErrAuthRequired is returned by operations that need a signed-in user when there is none.
var ErrAuthRequired = errors.New("authentication required")

// Session is the identity asserted by the identity provider for the current request.
type Session struct {
	UserID  string
	Name    string
	Email   string
	Picture string
}

// DisplayName returns the provider display name or fallback when the provider gave none.
func (s *Session) DisplayName(fallback string) string {
	if s == nil || s.Name == "" {
		return fallback
	}
	return s.Name
}

type ctxKey struct{}

func With(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// From returns the session stored in ctx, or nil for anonymous requests.
func From(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
