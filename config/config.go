package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
}

// LLMConfig selects the provider and carries per-provider settings
type LLMConfig struct {
	Provider string       `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	OpenAI   OpenAIConfig `yaml:"openai"`
	Gemini   GeminiConfig `yaml:"gemini"`
	Groq     GroqConfig   `yaml:"groq"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model  string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-3.5-turbo"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GOOGLE_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

type GroqConfig struct {
	APIKey string `yaml:"api_key" env:"GROQ_API_KEY"`
	Model  string `yaml:"model" env:"GROQ_MODEL" env-default:"mixtral-8x7b-32768"`
}

// KnowledgeConfig points at the backing knowledge file
type KnowledgeConfig struct {
	File string `yaml:"file" env:"KNOWLEDGE_FILE" env-default:"data/uae_knowledge.json"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// If file doesn't exist, just read env vars
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
