package session

import (
	"context"
	"errors"
)

type contextKey string

const sessionKey contextKey = "session"

var ErrNoSession = errors.New("no session in context")

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func FromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(sessionKey).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}
