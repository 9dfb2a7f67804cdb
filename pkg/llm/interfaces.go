// Package llm provides clients for the supported language-model providers.
package llm

import "context"

// Client defines the interface for LLM completions.
// Use this interface for dependency injection to enable mocking in tests.
type Client interface {
	// Complete sends a single-turn prompt and returns the raw response text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Config holds provider configuration for creating a client.
type Config struct {
	Provider    string  // "anthropic" or "deepseek"
	Endpoint    string  // Base URL for OpenAI-compatible providers
	Model       string  // Model name
	APIKey      string  // Provider API key
	MaxTokens   int     // Response token cap; 0 uses the provider default
	Temperature float64 // Sampling temperature
}

const defaultMaxTokens = 2048

// Ensure implementations satisfy Client at compile time.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*AnthropicClient)(nil)
	_ Client = (*MockClient)(nil)
)
