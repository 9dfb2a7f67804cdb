package models

// MealTimes holds the user's meal clock times as "HH:MM" strings.
type MealTimes struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// Preferences are free-form scheduling hints. They bias slot selection but
// never override conflict avoidance.
type Preferences struct {
	MinimizeIntakes  bool `json:"minimize_intakes,omitempty"`
	SpreadThroughout bool `json:"spread_throughout,omitempty"`
}

// Constraints parameterize schedule generation. WorkoutTime is optional;
// when empty no pre/post-workout slots exist.
type Constraints struct {
	MealTimes   MealTimes   `json:"meal_times"`
	SleepTime   string      `json:"sleep_time"`
	WorkoutTime string      `json:"workout_time,omitempty"`
	Preferences Preferences `json:"preferences,omitempty"`
}

// ScheduledProduct is one product placed into a slot.
type ScheduledProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
}

// ScheduleSlot is a single time-of-day bucket in the generated daily plan.
// The full slot set is regenerated from scratch on every request.
type ScheduleSlot struct {
	Time      string             `json:"time"`
	Products  []ScheduledProduct `json:"products"`
	Reasoning string             `json:"reasoning"`
}

// GapViolation reports two co-scheduled conflicting products placed closer
// than their rule's required time gap. Violations are data, not errors: they
// remain after the pass limit when no qualifying slot exists.
type GapViolation struct {
	ProductAID      string `json:"product_a_id"`
	ProductBID      string `json:"product_b_id"`
	GapMinutes      int    `json:"gap_minutes"`
	RequiredMinutes int    `json:"required_minutes"`
}
