// Package providers defines the LLM capability the assistant depends
// on. One concrete client exists per supported provider (OpenAI,
// Gemini, Groq); bootstrap picks one at construction time.
package providers

import "context"

// LLMClient defines the interface for LLM interaction
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
