package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
)

// Providers accepted by NewFromConfig.
const (
	ProviderAnthropic = "anthropic"
	ProviderDeepSeek  = "deepseek"
)

// NewFromConfig builds a client for the configured provider. A missing API
// key is ErrNoProvider, not a hard failure: callers degrade to deterministic
// fallbacks when no provider is available.
func NewFromConfig(cfg *Config, logger *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.ErrNoProvider
	}

	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, logger)
	case ProviderDeepSeek:
		return NewOpenAIClient(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", apperrors.ErrNoProvider, cfg.Provider)
	}
}
