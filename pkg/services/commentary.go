package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/llm"
	"github.com/sundial-labs/sundial-engine/pkg/prompts"
	"github.com/sundial-labs/sundial-engine/pkg/retry"
)

// CommentaryService produces a short expert review of a generated schedule.
// It never fails: when no provider is configured or the provider errors, the
// response degrades to deterministic canned text keyed by conflict and
// product counts.
type CommentaryService interface {
	Commentary(ctx context.Context, in *prompts.CommentaryInput, language string) string
}

type commentaryService struct {
	client  llm.Client // nil when no provider is configured
	timeout time.Duration
	retry   *retry.Config
	logger  *zap.Logger
}

// NewCommentaryService creates the commentary service. A nil client is
// valid and pins the service to fallback text.
func NewCommentaryService(client llm.Client, timeout time.Duration, logger *zap.Logger) CommentaryService {
	return &commentaryService{
		client:  client,
		timeout: timeout,
		retry:   retry.DefaultConfig(),
		logger:  logger.Named("commentary-service"),
	}
}

var _ CommentaryService = (*commentaryService)(nil)

func (s *commentaryService) Commentary(ctx context.Context, in *prompts.CommentaryInput, language string) string {
	language = prompts.NormalizeLanguage(language)
	if s.client == nil {
		return prompts.FallbackCommentary(len(in.Conflicts), in.ProductCount(), language)
	}

	prompt := prompts.BuildCommentaryPrompt(in, language)

	text, err := retry.DoWithResult(ctx, s.retry, func() (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.client.Complete(callCtx, "", prompt)
	})
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		s.logger.Warn("commentary generation failed, using fallback",
			zap.String("model", s.client.Model()),
			zap.Error(err))
		return prompts.FallbackCommentary(len(in.Conflicts), in.ProductCount(), language)
	}
	return text
}
