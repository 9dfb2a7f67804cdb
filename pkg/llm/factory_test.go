package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
)

func TestNewFromConfigMissingKey(t *testing.T) {
	_, err := NewFromConfig(&Config{Provider: ProviderDeepSeek, Endpoint: "https://api.deepseek.com/v1", Model: "deepseek-chat"}, zap.NewNop())
	assert.ErrorIs(t, err, apperrors.ErrNoProvider)
}

func TestNewFromConfigUnknownProvider(t *testing.T) {
	_, err := NewFromConfig(&Config{Provider: "bard", APIKey: "k", Model: "m"}, zap.NewNop())
	assert.ErrorIs(t, err, apperrors.ErrNoProvider)
}

func TestNewFromConfigDeepSeek(t *testing.T) {
	client, err := NewFromConfig(&Config{
		Provider: ProviderDeepSeek,
		Endpoint: "https://api.deepseek.com/v1",
		Model:    "deepseek-chat",
		APIKey:   "test-key",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "deepseek-chat", client.Model())
	assert.IsType(t, &OpenAIClient{}, client)
}

func TestNewFromConfigAnthropic(t *testing.T) {
	client, err := NewFromConfig(&Config{
		Provider: ProviderAnthropic,
		Model:    "claude-sonnet-4-5-20250929",
		APIKey:   "test-key",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &AnthropicClient{}, client)
}

func TestNewOpenAIClientRequiresEndpoint(t *testing.T) {
	_, err := NewOpenAIClient(&Config{Model: "m", APIKey: "k"}, zap.NewNop())
	assert.Error(t, err)
}
