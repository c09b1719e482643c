// Package assistant wires the query router, the lookup functions, and
// the planner flow into the conversational surface of the application.
package assistant

import (
	"strings"

	marhabactx "github.com/marhaba-travel/marhaba/context"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one exchange entry in a session.
type Turn struct {
	Role Role
	Text string
}

// Session holds one conversation's state: the turn history and the
// last city the user mentioned, for resolving references like "there".
// It is passed by reference into each Respond call and is not safe for
// concurrent use; hosts serving several users must keep one per user.
type Session struct {
	ID       string
	LastCity string
	turns    []Turn
}

// NewSession creates an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{ID: marhabactx.NewID()}
}

// AddTurn appends one exchange entry.
func (s *Session) AddTurn(role Role, text string) {
	s.turns = append(s.turns, Turn{Role: role, Text: text})
}

// Turns returns the recorded history, oldest first.
func (s *Session) Turns() []Turn {
	return s.turns
}

// History renders the history as prefixed lines for prompt context.
func (s *Session) History() string {
	var sb strings.Builder
	for _, turn := range s.turns {
		switch turn.Role {
		case RoleUser:
			sb.WriteString("User: ")
		case RoleAssistant:
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(turn.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clear resets the history and remembered city, keeping the ID.
func (s *Session) Clear() {
	s.turns = nil
	s.LastCity = ""
}
