// Package services orchestrates the core packages behind the HTTP handlers:
// stack planning, LLM commentary, and influencer-content analysis.
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/catalog"
	"github.com/sundial-labs/sundial-engine/pkg/conflict"
	"github.com/sundial-labs/sundial-engine/pkg/models"
	"github.com/sundial-labs/sundial-engine/pkg/schedule"
)

// Plan is the full result of planning a stack: the daily schedule plus
// everything detection found. Conflicts stay attached even when the schedule
// resolved them; the caller decides what to surface.
type Plan struct {
	Slots      []models.ScheduleSlot    `json:"slots"`
	Conflicts  []models.Conflict        `json:"conflicts"`
	Synergies  []models.DetectedSynergy `json:"synergies"`
	Violations []models.GapViolation    `json:"violations"`
}

// StackService plans supplement stacks over the loaded catalog.
type StackService interface {
	// BuildPlan resolves product ids, detects conflicts and synergies, and
	// generates the daily schedule. Inline products (synthetic foods from
	// analysis, items not in the catalog) are validated and planned alongside
	// the resolved ones.
	BuildPlan(ctx context.Context, productIDs []string, inline []models.Product, constraints models.Constraints) (*Plan, error)

	// DetectConflicts resolves product ids and returns their conflicts and
	// synergies without scheduling.
	DetectConflicts(ctx context.Context, productIDs []string) ([]models.Conflict, []models.DetectedSynergy, error)

	// BuildGraph returns the interaction graph for the selection.
	BuildGraph(ctx context.Context, productIDs []string) (*conflict.Graph, error)

	// Catalog exposes the loaded catalog for read-only listing.
	Catalog() *catalog.Catalog
}

type stackService struct {
	catalog   *catalog.Catalog
	detector  *conflict.Detector
	generator *schedule.Generator
	defaults  models.Constraints
	logger    *zap.Logger
}

// NewStackService creates the planning service. The defaults fill in any
// constraint fields a request leaves empty.
func NewStackService(cat *catalog.Catalog, defaults models.Constraints, logger *zap.Logger) StackService {
	return &stackService{
		catalog:   cat,
		detector:  conflict.NewDetector(cat.Rules(), logger),
		generator: schedule.NewGenerator(logger),
		defaults:  defaults,
		logger:    logger.Named("stack-service"),
	}
}

var _ StackService = (*stackService)(nil)

func (s *stackService) BuildPlan(ctx context.Context, productIDs []string, inline []models.Product, constraints models.Constraints) (*Plan, error) {
	products, err := s.catalog.ResolveProducts(productIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}
	for i := range inline {
		if err := inline[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidProduct, err)
		}
	}
	products = append(products, inline...)

	conflicts, err := s.detector.Detect(products)
	if err != nil {
		return nil, fmt.Errorf("detect conflicts: %w", err)
	}
	synergies := conflict.DetectSynergies(products, s.catalog.Synergies())

	slots, err := s.generator.Generate(products, conflicts, s.applyDefaults(constraints))
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}

	violations := schedule.Validate(slots, conflicts)
	if len(violations) > 0 {
		s.logger.Info("schedule retains gap violations",
			zap.Int("violations", len(violations)),
			zap.Int("products", len(products)))
	}

	return &Plan{
		Slots:      slots,
		Conflicts:  conflicts,
		Synergies:  synergies,
		Violations: violations,
	}, nil
}

func (s *stackService) DetectConflicts(ctx context.Context, productIDs []string) ([]models.Conflict, []models.DetectedSynergy, error) {
	products, err := s.catalog.ResolveProducts(productIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve products: %w", err)
	}
	conflicts, err := s.detector.Detect(products)
	if err != nil {
		return nil, nil, err
	}
	return conflicts, conflict.DetectSynergies(products, s.catalog.Synergies()), nil
}

func (s *stackService) BuildGraph(ctx context.Context, productIDs []string) (*conflict.Graph, error) {
	products, err := s.catalog.ResolveProducts(productIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}
	conflicts, err := s.detector.Detect(products)
	if err != nil {
		return nil, err
	}
	synergies := conflict.DetectSynergies(products, s.catalog.Synergies())
	return conflict.BuildGraph(products, conflicts, synergies), nil
}

func (s *stackService) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *stackService) applyDefaults(c models.Constraints) models.Constraints {
	if c.MealTimes.Breakfast == "" {
		c.MealTimes.Breakfast = s.defaults.MealTimes.Breakfast
	}
	if c.MealTimes.Lunch == "" {
		c.MealTimes.Lunch = s.defaults.MealTimes.Lunch
	}
	if c.MealTimes.Dinner == "" {
		c.MealTimes.Dinner = s.defaults.MealTimes.Dinner
	}
	if c.SleepTime == "" {
		c.SleepTime = s.defaults.SleepTime
	}
	return c
}
