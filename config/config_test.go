package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		// Save original env vars
		origProvider := os.Getenv("LLM_PROVIDER")
		origOpenAIKey := os.Getenv("OPENAI_API_KEY")
		origGoogleKey := os.Getenv("GOOGLE_API_KEY")
		origGroqKey := os.Getenv("GROQ_API_KEY")
		origKnowledge := os.Getenv("KNOWLEDGE_FILE")

		// Clear env vars for this test
		os.Unsetenv("LLM_PROVIDER")
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("GOOGLE_API_KEY")
		os.Unsetenv("GROQ_API_KEY")
		os.Unsetenv("KNOWLEDGE_FILE")

		defer func() {
			// Restore original env vars
			if origProvider != "" {
				os.Setenv("LLM_PROVIDER", origProvider)
			}
			if origOpenAIKey != "" {
				os.Setenv("OPENAI_API_KEY", origOpenAIKey)
			}
			if origGoogleKey != "" {
				os.Setenv("GOOGLE_API_KEY", origGoogleKey)
			}
			if origGroqKey != "" {
				os.Setenv("GROQ_API_KEY", origGroqKey)
			}
			if origKnowledge != "" {
				os.Setenv("KNOWLEDGE_FILE", origKnowledge)
			}
		}()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Test default values
		assert.Equal(t, "openai", cfg.LLM.Provider)
		assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.OpenAI.Model)
		assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Gemini.Model)
		assert.Equal(t, "mixtral-8x7b-32768", cfg.LLM.Groq.Model)
		assert.Equal(t, "data/uae_knowledge.json", cfg.Knowledge.File)
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		// Save original env vars
		origProvider := os.Getenv("LLM_PROVIDER")
		origGroqKey := os.Getenv("GROQ_API_KEY")
		origKnowledge := os.Getenv("KNOWLEDGE_FILE")

		// Set test env vars
		os.Setenv("LLM_PROVIDER", "groq")
		os.Setenv("GROQ_API_KEY", "test-key")
		os.Setenv("KNOWLEDGE_FILE", "testdata/knowledge.json")

		defer func() {
			// Restore original env vars
			if origProvider != "" {
				os.Setenv("LLM_PROVIDER", origProvider)
			} else {
				os.Unsetenv("LLM_PROVIDER")
			}
			if origGroqKey != "" {
				os.Setenv("GROQ_API_KEY", origGroqKey)
			} else {
				os.Unsetenv("GROQ_API_KEY")
			}
			if origKnowledge != "" {
				os.Setenv("KNOWLEDGE_FILE", origKnowledge)
			} else {
				os.Unsetenv("KNOWLEDGE_FILE")
			}
		}()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "groq", cfg.LLM.Provider)
		assert.Equal(t, "test-key", cfg.LLM.Groq.APIKey)
		assert.Equal(t, "testdata/knowledge.json", cfg.Knowledge.File)
	})
}
