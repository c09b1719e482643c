package bootstrap

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marhaba-travel/marhaba/config"
	"github.com/marhaba-travel/marhaba/core"
	"github.com/marhaba-travel/marhaba/knowledge"
)

func writeTestKnowledge(t *testing.T) string {
	t.Helper()

	cities := make(map[string]knowledge.CityRecord)
	for _, city := range core.Cities() {
		cities[city] = knowledge.CityRecord{
			Description:       "About " + city,
			Attractions:       []knowledge.Attraction{{Name: "Old fort", Description: "Historic fort"}},
			BestTime:          "November to March",
			TemperatureWinter: "14-25C",
			TemperatureSummer: "30-45C",
			CulturalTips:      []string{"Dress modestly in public places"},
			Activities:        map[string][]string{"desert safari": {"Dune bashing"}},
		}
	}

	path := filepath.Join(t.TempDir(), "knowledge.json")
	b, err := json.Marshal(cities)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

// Provider clients are lazy, so Setup completes without network access.
func TestSetup(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			Provider: "groq",
			Groq:     config.GroqConfig{APIKey: "test-key"},
		},
		Knowledge: config.KnowledgeConfig{File: writeTestKnowledge(t)},
	}

	app, err := Setup(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotNil(t, app.Assistant)
	assert.NotNil(t, app.Genkit)
	assert.NotNil(t, app.Registry)
	assert.NotNil(t, app.Store)
	assert.Equal(t, "groq", app.Provider)
	assert.Len(t, app.Registry.Names(), 3)
}

func TestSetup_MissingKnowledgeFile(t *testing.T) {
	cfg := &config.Config{
		LLM:       config.LLMConfig{Provider: "groq", Groq: config.GroqConfig{APIKey: "test-key"}},
		Knowledge: config.KnowledgeConfig{File: filepath.Join(t.TempDir(), "nope.json")},
	}

	_, err := Setup(context.Background(), cfg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDataLoad)
}

func TestSetup_MissingAPIKey(t *testing.T) {
	cfg := &config.Config{
		LLM:       config.LLMConfig{Provider: "openai"},
		Knowledge: config.KnowledgeConfig{File: writeTestKnowledge(t)},
	}

	_, err := Setup(context.Background(), cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestSetup_UnknownProvider(t *testing.T) {
	cfg := &config.Config{
		LLM:       config.LLMConfig{Provider: "anthropic"},
		Knowledge: config.KnowledgeConfig{File: writeTestKnowledge(t)},
	}

	_, err := Setup(context.Background(), cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}
