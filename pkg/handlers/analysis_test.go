package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/models"
)

type stubAnalysisService struct {
	analyzeFunc func(ctx context.Context, text, language string) (*models.InfluencerAnalysis, error)
}

func (s *stubAnalysisService) Analyze(ctx context.Context, text, language string) (*models.InfluencerAnalysis, error) {
	return s.analyzeFunc(ctx, text, language)
}

func newAnalysisMux(svc *stubAnalysisService) *http.ServeMux {
	mux := http.NewServeMux()
	NewAnalysisHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestAnalyzeEndpoint(t *testing.T) {
	svc := &stubAnalysisService{
		analyzeFunc: func(_ context.Context, text, language string) (*models.InfluencerAnalysis, error) {
			assert.Equal(t, "Take vitamin D with breakfast.", text)
			assert.Equal(t, "en", language)
			return &models.InfluencerAnalysis{
				ID:               "analysis-test",
				CredibilityScore: 72,
				AnalyzedAt:       time.Now().UTC(),
			}, nil
		},
	}
	mux := newAnalysisMux(svc)

	rec := postJSON(t, mux, "/api/analyze", map[string]any{
		"text":     "Take vitamin D with breakfast.",
		"language": "en",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "analysis-test", data["id"])
	assert.InDelta(t, 72, data["credibility_score"], 0.01)
}

func TestAnalyzeEndpointMissingText(t *testing.T) {
	svc := &stubAnalysisService{
		analyzeFunc: func(_ context.Context, _, _ string) (*models.InfluencerAnalysis, error) {
			t.Fatal("service must not be called without text")
			return nil, nil
		},
	}
	mux := newAnalysisMux(svc)

	rec := postJSON(t, mux, "/api/analyze", map[string]any{"language": "en"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_text", decodeResponse(t, rec).Error)
}

func TestAnalyzeEndpointProviderFailure(t *testing.T) {
	svc := &stubAnalysisService{
		analyzeFunc: func(_ context.Context, _, _ string) (*models.InfluencerAnalysis, error) {
			return nil, errors.New("provider timeout")
		},
	}
	mux := newAnalysisMux(svc)

	rec := postJSON(t, mux, "/api/analyze", map[string]any{"text": "some claims"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "analysis_failed", resp.Error)
}
