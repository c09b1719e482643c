package groq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("EmptyAPIKey", func(t *testing.T) {
		client, err := NewClient("", "")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "API key is required")
	})

	t.Run("DefaultModel", func(t *testing.T) {
		client, err := NewClient("test-api-key", "")
		assert.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, DefaultModel, client.Model)
	})

	t.Run("ModelOverride", func(t *testing.T) {
		client, err := NewClient("test-api-key", "llama-3.1-70b-versatile")
		assert.NoError(t, err)
		assert.Equal(t, "llama-3.1-70b-versatile", client.Model)
	})
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://api.groq.com/openai/v1", BaseURL)
}
