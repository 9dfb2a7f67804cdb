package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/catalog"
	"github.com/sundial-labs/sundial-engine/pkg/llm"
	"github.com/sundial-labs/sundial-engine/pkg/models"
	"github.com/sundial-labs/sundial-engine/pkg/prompts"
	"github.com/sundial-labs/sundial-engine/pkg/retry"
)

// mentionConfidence is attached to every resolved recommendation. The
// extraction prompt is deliberately permissive, so matches are probable, not
// certain.
const mentionConfidence = 0.8

// AnalysisService extracts supplement recommendations from influencer
// content and resolves them against the catalog. Unlike commentary, a failed
// provider call here is an error: there is nothing local to fall back to.
// A missing provider instead yields a canned development result.
type AnalysisService interface {
	Analyze(ctx context.Context, text, language string) (*models.InfluencerAnalysis, error)
}

type analysisService struct {
	client  llm.Client // nil when no provider is configured
	catalog *catalog.Catalog
	timeout time.Duration
	retry   *retry.Config
	logger  *zap.Logger
}

// NewAnalysisService creates the analysis service.
func NewAnalysisService(client llm.Client, cat *catalog.Catalog, timeout time.Duration, logger *zap.Logger) AnalysisService {
	return &analysisService{
		client:  client,
		catalog: cat,
		timeout: timeout,
		retry:   retry.DefaultConfig(),
		logger:  logger.Named("analysis-service"),
	}
}

var _ AnalysisService = (*analysisService)(nil)

func (s *analysisService) Analyze(ctx context.Context, text, language string) (*models.InfluencerAnalysis, error) {
	if text == "" {
		return nil, fmt.Errorf("text content is required")
	}
	language = prompts.NormalizeLanguage(language)

	result, err := s.extract(ctx, text, language)
	if err != nil {
		return nil, err
	}
	result.Clamp()

	s.logger.Info("content analyzed",
		zap.Int("mentions", len(result.Supplements)),
		zap.Int("credibility", result.CredibilityScore))

	analysis := &models.InfluencerAnalysis{
		ID:               "analysis-" + uuid.NewString(),
		SourceText:       text,
		AnalyzedAt:       time.Now().UTC(),
		Recommendations:  make([]models.Recommendation, 0, len(result.Supplements)),
		CredibilityScore: result.CredibilityScore,
		Warnings:         result.Warnings,
	}

	for _, mention := range result.Supplements {
		analysis.Recommendations = append(analysis.Recommendations, s.resolve(mention))
	}
	return analysis, nil
}

// extract runs the LLM extraction, or returns the deterministic development
// result when no provider is configured.
func (s *analysisService) extract(ctx context.Context, text, language string) (*models.ExtractionResult, error) {
	if s.client == nil {
		s.logger.Warn("no AI provider configured, returning mock analysis")
		return mockExtraction(language), nil
	}

	prompt := prompts.BuildAnalysisPrompt(text, language)

	response, err := retry.DoWithResult(ctx, s.retry, func() (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.client.Complete(callCtx, "", prompt)
	})
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}

	result, err := llm.ParseJSONResponse[models.ExtractionResult](response)
	if err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	return &result, nil
}

// resolve matches one mention against the catalog; unmatched food mentions
// become synthetic products so conflict detection can still reason about
// them.
func (s *analysisService) resolve(mention models.Mention) models.Recommendation {
	rec := models.Recommendation{
		ProductName: mention.Name,
		Brand:       mention.Brand,
		Dosage:      mention.Dosage,
		Timing:      mention.Timing,
		Reasoning:   mention.Reasoning,
		Confidence:  mentionConfidence,
	}

	if matched := s.catalog.FindProduct(mention.Name); matched != nil {
		rec.MatchedProduct = matched
		return rec
	}

	if mention.IsFood || mention.Brand == "" || mention.Brand == "无品牌" || mention.Brand == "No Brand" {
		if synthetic := s.syntheticProduct(mention); synthetic != nil {
			rec.MatchedProduct = synthetic
		}
	}
	return rec
}

// syntheticProduct materializes an unmatched mention as a food product with
// inferred nutrients. Returns nil when nothing nutritional can be inferred.
func (s *analysisService) syntheticProduct(mention models.Mention) *models.Product {
	ingredients := s.catalog.InferIngredients(mention.Name)
	if len(ingredients) == 0 {
		return nil
	}

	brand := mention.Brand
	if brand == "" {
		brand = "Everyday food"
	}
	dosage := mention.Dosage
	if dosage == "" {
		dosage = "1 serving"
	}

	p := &models.Product{
		ID:               "temp-food-" + uuid.NewString(),
		Name:             mention.Name,
		Brand:            brand,
		Category:         catalog.FoodCategory(mention.Name, mention.Category),
		Ingredients:      ingredients,
		DosagePerServing: dosage,
		ServingsPerDay:   1,
		OptimalTiming:    catalog.TimingFromText(mention.Timing),
	}

	s.logger.Debug("created synthetic food product",
		zap.String("name", p.Name),
		zap.String("category", string(p.Category)),
		zap.Int("nutrients", len(p.Ingredients)))
	return p
}

// mockExtraction is the development-mode result used when no API key is set.
func mockExtraction(language string) *models.ExtractionResult {
	if language == prompts.LanguageEnglish {
		return &models.ExtractionResult{
			Supplements: []models.Mention{
				{
					Name:      "Vitamin D3",
					Dosage:    "5000 IU",
					Timing:    "Morning with breakfast",
					Reasoning: "Improves mood and bone health, mentioned as essential.",
				},
				{
					Name:      "Magnesium Glycinate",
					Dosage:    "400 mg",
					Timing:    "Before bed",
					Reasoning: "Helps with sleep and recovery.",
				},
			},
			Warnings:         []string{"High dosage of Vitamin D3 recommended without K2 mentioned."},
			CredibilityScore: 65,
		}
	}
	return &models.ExtractionResult{
		Supplements: []models.Mention{
			{
				Name:      "维生素D3",
				Dosage:    "5000 IU",
				Timing:    "早晨随早餐",
				Reasoning: "改善情绪和骨骼健康。",
			},
			{
				Name:      "甘氨酸镁",
				Dosage:    "400 mg",
				Timing:    "睡前",
				Reasoning: "帮助睡眠和恢复。",
			},
		},
		Warnings:         []string{"推荐高剂量维生素D3但未提及K2。"},
		CredibilityScore: 65,
	}
}
