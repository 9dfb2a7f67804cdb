package schedule

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/models"
)

// maxResolutionPasses bounds conflict resolution so mutually displacing
// products cannot loop forever.
const maxResolutionPasses = 10

// Generator builds daily schedules. Safe for concurrent use; all state is
// per-call.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a schedule generator.
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger.Named("schedule")}
}

// Generate places every product into a time slot derived from the
// constraints, then iteratively spreads conflicting products apart. The
// returned slots are non-empty and sorted by clock time. Conflicts that
// survive the pass limit stay in the caller's conflict list; they are never
// an error.
func (g *Generator) Generate(products []models.Product, conflicts []models.Conflict, constraints models.Constraints) ([]models.ScheduleSlot, error) {
	if len(products) == 0 {
		return nil, apperrors.ErrEmptyStack
	}

	slots, err := buildSlots(constraints)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].minutes < slots[j].minutes })

	for _, p := range products {
		s := slotFor(slots, p.OptimalTiming)
		s.products = append(s.products, p)
	}

	passes := 0
	for ; passes < maxResolutionPasses; passes++ {
		if !resolvePass(slots, conflicts) {
			break
		}
	}
	if passes == maxResolutionPasses {
		g.logger.Debug("conflict resolution hit the pass limit",
			zap.Int("passes", passes),
			zap.Int("products", len(products)))
	}

	out := make([]models.ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		if len(s.products) == 0 {
			continue
		}
		slot := models.ScheduleSlot{
			Time:      FormatClock(s.minutes),
			Products:  make([]models.ScheduledProduct, 0, len(s.products)),
			Reasoning: reasonFor(s.key),
		}
		for _, p := range s.products {
			slot.Products = append(slot.Products, models.ScheduledProduct{
				ProductID: p.ID,
				Name:      p.Name,
				Dosage:    p.DosagePerServing,
			})
		}
		out = append(out, slot)
	}
	return out, nil
}
