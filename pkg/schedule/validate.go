package schedule

import "github.com/sundial-labs/sundial-engine/pkg/models"

// Validate re-checks a generated schedule against the conflict list and
// returns every pair of conflicting products placed closer together than
// their required gap. Violations are data: an imperfect schedule is still a
// schedule.
func Validate(slots []models.ScheduleSlot, conflicts []models.Conflict) []models.GapViolation {
	type placement struct {
		productID string
		minutes   int
	}

	placements := []placement{}
	for _, slot := range slots {
		minutes, err := ParseClock(slot.Time)
		if err != nil {
			continue
		}
		for _, p := range slot.Products {
			placements = append(placements, placement{productID: p.ProductID, minutes: minutes})
		}
	}

	violations := []models.GapViolation{}
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			for k := range conflicts {
				c := &conflicts[k]
				if c.TimeGapMinutes <= 0 || !c.References(a.productID, b.productID) {
					continue
				}
				gap := ClockDistance(a.minutes, b.minutes)
				if gap < c.TimeGapMinutes {
					violations = append(violations, models.GapViolation{
						ProductAID:      a.productID,
						ProductBID:      b.productID,
						GapMinutes:      gap,
						RequiredMinutes: c.TimeGapMinutes,
					})
				}
			}
		}
	}
	return violations
}
