// Package groq implements the Groq provider client through Groq's
// OpenAI-compatible API.
package groq

import (
	"context"
	"fmt"

	"github.com/marhaba-travel/marhaba/providers"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// BaseURL is Groq's OpenAI-compatible endpoint
	BaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "mixtral-8x7b-32768"
)

// Client handles Groq chat completion requests
type Client struct {
	Model  string
	client openai.Client
}

// Ensure Client satisfies LLMClient
var _ providers.LLMClient = (*Client)(nil)

// NewClient creates a new Groq API client
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		Model: model,
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(BaseURL),
		),
	}, nil
}

// GenerateContent sends a prompt as a single user message and returns
// the completion text
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
