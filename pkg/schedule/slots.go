// Package schedule generates a 24-hour dosing plan from a product selection,
// placing products into named time slots and spreading conflicting products
// apart. The generator is a greedy heuristic with a fixed pass bound, not a
// constraint solver; result quality is communicated through the conflict and
// violation lists, never through errors.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/models"
)

const minutesPerDay = 1440

// Named candidate slots, in the order relocation considers them.
const (
	slotEmptyStomach = "empty-stomach"
	slotBreakfast    = "breakfast"
	slotLunch        = "lunch"
	slotAfternoon    = "afternoon"
	slotDinner       = "dinner"
	slotBedtime      = "bedtime"
	slotPreWorkout   = "pre-workout"
	slotPostWorkout  = "post-workout"
)

// Offsets from the anchoring constraint times, in minutes.
const (
	emptyStomachLead = 60
	bedtimeLead      = 30
	preWorkoutLead   = 30
	postWorkoutLag   = 60
)

// candidateSlot is a mutable working slot during generation.
type candidateSlot struct {
	key          string
	minutes      int
	withFood     bool
	emptyStomach bool
	products     []models.Product
}

// ParseClock converts an "HH:MM" 24-hour clock string to minutes from
// midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as "HH:MM". Values outside one
// day wrap around midnight.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockDistance returns the cyclic distance between two clock values in
// minutes. Distance wraps across midnight: 23:30 and 00:30 are 60 minutes
// apart, not 1380.
func ClockDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrap := minutesPerDay - d; wrap < d {
		return wrap
	}
	return d
}

// buildSlots derives the candidate slot set from the constraints. Pre- and
// post-workout slots exist only when a workout time is given.
func buildSlots(c models.Constraints) ([]*candidateSlot, error) {
	breakfast, err := ParseClock(c.MealTimes.Breakfast)
	if err != nil {
		return nil, fmt.Errorf("breakfast: %w", err)
	}
	lunch, err := ParseClock(c.MealTimes.Lunch)
	if err != nil {
		return nil, fmt.Errorf("lunch: %w", err)
	}
	dinner, err := ParseClock(c.MealTimes.Dinner)
	if err != nil {
		return nil, fmt.Errorf("dinner: %w", err)
	}
	sleep, err := ParseClock(c.SleepTime)
	if err != nil {
		return nil, fmt.Errorf("sleep: %w", err)
	}

	slots := []*candidateSlot{
		{key: slotEmptyStomach, minutes: breakfast - emptyStomachLead, emptyStomach: true},
		{key: slotBreakfast, minutes: breakfast, withFood: true},
		{key: slotLunch, minutes: lunch, withFood: true},
		{key: slotAfternoon, minutes: (lunch + dinner) / 2},
		{key: slotDinner, minutes: dinner, withFood: true},
		{key: slotBedtime, minutes: sleep - bedtimeLead},
	}

	if c.WorkoutTime != "" {
		workout, err := ParseClock(c.WorkoutTime)
		if err != nil {
			return nil, fmt.Errorf("workout: %w", err)
		}
		slots = append(slots,
			&candidateSlot{key: slotPreWorkout, minutes: workout - preWorkoutLead},
			&candidateSlot{key: slotPostWorkout, minutes: workout + postWorkoutLag},
		)
	}

	// Slots are unique by clock time. When a workout slot lands on another
	// slot's time, the earlier-defined slot wins.
	seen := map[int]bool{}
	unique := slots[:0]
	for _, s := range slots {
		s.minutes = ((s.minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
		if seen[s.minutes] {
			continue
		}
		seen[s.minutes] = true
		unique = append(unique, s)
	}
	return unique, nil
}

// slotFor maps a product's timing tag to its preferred slot key. Tags with no
// matching slot and unrecognized tags fall back to breakfast.
func slotFor(slots []*candidateSlot, timing models.TimingPreference) *candidateSlot {
	byKey := func(key string) *candidateSlot {
		for _, s := range slots {
			if s.key == key {
				return s
			}
		}
		return nil
	}

	var want string
	switch timing {
	case models.TimingMorningEmptyStomach:
		want = slotEmptyStomach
	case models.TimingMorningWithFood, models.TimingAnytime:
		want = slotBreakfast
	case models.TimingAfternoon:
		want = slotAfternoon
	case models.TimingEvening:
		want = slotDinner
	case models.TimingBeforeBed:
		want = slotBedtime
	case models.TimingPreWorkout:
		want = slotPreWorkout
	case models.TimingPostWorkout:
		want = slotPostWorkout
	default:
		want = slotBreakfast
	}

	if s := byKey(want); s != nil {
		return s
	}
	return byKey(slotBreakfast)
}

// needs returns the product's slot requirement derived from its timing tag:
// wantsFood for with-meal tags, wantsEmpty for empty-stomach tags.
func needs(timing models.TimingPreference) (wantsFood, wantsEmpty bool) {
	switch timing {
	case models.TimingMorningWithFood, models.TimingEvening:
		return true, false
	case models.TimingMorningEmptyStomach:
		return false, true
	default:
		return false, false
	}
}

// reasonFor is the stable per-slot reasoning string. It is driven by the
// slot's identity, not by the resolution step, so reruns explain the same
// slot the same way.
func reasonFor(key string) string {
	switch key {
	case slotEmptyStomach:
		return "Before breakfast on an empty stomach, when minerals and amino acids absorb best."
	case slotBreakfast:
		return "With breakfast; food improves tolerance and fat-soluble vitamin uptake."
	case slotLunch:
		return "With lunch, keeping this dose apart from morning supplements."
	case slotAfternoon:
		return "Mid-afternoon, between meals, to separate interacting nutrients."
	case slotDinner:
		return "With dinner; dietary fat aids absorption of fat-soluble ingredients."
	case slotBedtime:
		return "Before bed; supports overnight recovery and avoids daytime interactions."
	case slotPreWorkout:
		return "Shortly before training for peak availability during exercise."
	case slotPostWorkout:
		return "After training, in the recovery window."
	default:
		return "Scheduled to avoid known nutrient interactions."
	}
}
