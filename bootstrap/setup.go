package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/genkit"

	"github.com/marhaba-travel/marhaba/assistant"
	"github.com/marhaba-travel/marhaba/budget"
	"github.com/marhaba-travel/marhaba/config"
	"github.com/marhaba-travel/marhaba/knowledge"
	"github.com/marhaba-travel/marhaba/log"
	"github.com/marhaba-travel/marhaba/prayer"
	"github.com/marhaba-travel/marhaba/providers"
	"github.com/marhaba-travel/marhaba/providers/gemini"
	"github.com/marhaba-travel/marhaba/providers/groq"
	"github.com/marhaba-travel/marhaba/providers/openai"
	"github.com/marhaba-travel/marhaba/tools"
)

// App holds the initialized components of the application
type App struct {
	Assistant *assistant.Assistant
	Genkit    *genkit.Genkit
	Registry  *tools.Registry
	Store     *knowledge.Store
	Provider  string
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// 1. Load the knowledge base
	store, err := knowledge.Load(cfg.Knowledge.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}
	log.Infof(ctx, "Knowledge base loaded with %d cities", len(store.Cities()))

	// 2. Pick the LLM provider
	llm, name, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Infof(ctx, "Using %s provider", name)

	// 3. Setup Genkit and register the lookup tools
	gk := genkit.Init(ctx)
	registry := tools.NewRegistry()

	knowledge.NewSearchTool(store, gk, registry)
	prayer.NewTimesTool(gk, registry)
	budget.NewEstimateTool(gk, registry)
	log.Infof(ctx, "Registered tools: %s", strings.Join(registry.Names(), ", "))

	// 4. Build the planner flow and the assistant
	planner, err := assistant.NewPlanner(gk, registry, llm)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize planner: %w", err)
	}

	return &App{
		Assistant: assistant.New(store, planner),
		Genkit:    gk,
		Registry:  registry,
		Store:     store,
		Provider:  name,
	}, nil
}

// newLLMClient builds the configured provider client. A missing key
// fails fast, naming the variable to set.
func newLLMClient(ctx context.Context, cfg *config.Config) (providers.LLMClient, string, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai", "":
		if cfg.LLM.OpenAI.APIKey == "" {
			return nil, "", fmt.Errorf("OPENAI_API_KEY must be set (or set LLM_PROVIDER=gemini|groq)")
		}
		client, err := openai.NewClient(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		return client, "openai", nil

	case "gemini":
		if cfg.LLM.Gemini.APIKey == "" {
			return nil, "", fmt.Errorf("GOOGLE_API_KEY must be set")
		}
		client, err := gemini.NewClient(ctx, cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.Model)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		return client, "gemini", nil

	case "groq":
		if cfg.LLM.Groq.APIKey == "" {
			return nil, "", fmt.Errorf("GROQ_API_KEY must be set")
		}
		client, err := groq.NewClient(cfg.LLM.Groq.APIKey, cfg.LLM.Groq.Model)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize Groq client: %w", err)
		}
		return client, "groq", nil

	default:
		return nil, "", fmt.Errorf("unknown LLM provider %q (expected openai, gemini, or groq)", cfg.LLM.Provider)
	}
}
