// Package context provides context utilities for conversation tracking.
// Each chat carries a session ID for its lifetime and a fresh turn ID per
// user input; the log formatter surfaces both.
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey int

const (
	// SessionIDKey is the context key for conversation session IDs
	SessionIDKey contextKey = iota
	// TurnIDKey is the context key for per-turn IDs
	TurnIDKey
)

// NewID generates a new unique correlation ID
func NewID() string {
	return uuid.New().String()
}

// WithSessionID adds a conversation session ID to the context
func WithSessionID(parent stdctx.Context, sessionID string) stdctx.Context {
	return stdctx.WithValue(parent, SessionIDKey, sessionID)
}

// SessionIDFromContext extracts the session ID from the context
func SessionIDFromContext(ctx stdctx.Context) string {
	if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// WithTurnID adds a per-turn ID to the context
func WithTurnID(parent stdctx.Context, turnID string) stdctx.Context {
	return stdctx.WithValue(parent, TurnIDKey, turnID)
}

// TurnIDFromContext extracts the turn ID from the context
func TurnIDFromContext(ctx stdctx.Context) string {
	if turnID, ok := ctx.Value(TurnIDKey).(string); ok {
		return turnID
	}
	return ""
}
