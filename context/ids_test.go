package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSessionIDRoundTrip(t *testing.T) {
	ctx := WithSessionID(stdctx.Background(), "session-123")
	assert.Equal(t, "session-123", SessionIDFromContext(ctx))
}

func TestTurnIDRoundTrip(t *testing.T) {
	ctx := WithTurnID(stdctx.Background(), "turn-456")
	assert.Equal(t, "turn-456", TurnIDFromContext(ctx))
}

func TestMissingIDs(t *testing.T) {
	ctx := stdctx.Background()
	assert.Equal(t, "", SessionIDFromContext(ctx))
	assert.Equal(t, "", TurnIDFromContext(ctx))
}

func TestIDsAreIndependent(t *testing.T) {
	ctx := WithSessionID(stdctx.Background(), "session-123")
	ctx = WithTurnID(ctx, "turn-456")
	assert.Equal(t, "session-123", SessionIDFromContext(ctx))
	assert.Equal(t, "turn-456", TurnIDFromContext(ctx))
}
