package models

import "fmt"

// Severity ranks how strongly a conflict should influence scheduling.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Weight returns the ordering weight of a severity. Higher is more severe.
// Unknown severities rank below LOW so malformed data never outranks real rules.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ConflictType describes the interaction mechanism class of a rule.
type ConflictType string

const (
	ConflictAbsorptionCompetition ConflictType = "ABSORPTION_COMPETITION"
	ConflictAbsorptionInhibition  ConflictType = "ABSORPTION_INHIBITION"
	ConflictAdverseInteraction    ConflictType = "ADVERSE_INTERACTION"
	ConflictOxidationRisk         ConflictType = "OXIDATION_RISK"
	ConflictSynergyReduced        ConflictType = "SYNERGY_REDUCED"
	ConflictAbsorptionEnhanced    ConflictType = "ABSORPTION_ENHANCED"
)

// DosageCondition gates a rule on the amount of one of its nutrients.
// The rule only fires when the triggering ingredient's amount, normalized to
// Unit, is at or above Threshold. Ingredients whose unit cannot be converted
// to Unit are treated as not satisfying the condition.
type DosageCondition struct {
	NutrientID string  `json:"nutrient_id"`
	Threshold  float64 `json:"threshold"`
	Unit       string  `json:"unit"`
}

// ConflictRule is one pairwise nutrient-interaction rule. Matching is
// symmetric: the order of NutrientA/NutrientB never affects whether a pair
// of products is flagged.
type ConflictRule struct {
	NutrientA      string           `json:"nutrient_a"`
	NutrientB      string           `json:"nutrient_b"`
	Severity       Severity         `json:"severity"`
	Type           ConflictType     `json:"type"`
	Explanation    string           `json:"explanation"`
	Mechanism      string           `json:"mechanism"`
	TimeGapMinutes int              `json:"time_gap_minutes"`
	Condition      *DosageCondition `json:"condition,omitempty"`
}

// Validate checks rule integrity. Rules with identical nutrients on both
// sides would match a single product against itself, so they are rejected.
func (r *ConflictRule) Validate() error {
	if r.NutrientA == "" || r.NutrientB == "" {
		return fmt.Errorf("rule %s/%s is missing a nutrient reference", r.NutrientA, r.NutrientB)
	}
	if r.NutrientA == r.NutrientB {
		return fmt.Errorf("rule %s/%s pairs a nutrient with itself", r.NutrientA, r.NutrientB)
	}
	if r.Severity.Weight() == 0 {
		return fmt.Errorf("rule %s/%s has unknown severity %q", r.NutrientA, r.NutrientB, r.Severity)
	}
	if r.TimeGapMinutes < 0 {
		return fmt.Errorf("rule %s/%s has negative time gap", r.NutrientA, r.NutrientB)
	}
	return nil
}

// Conflict is a detected pairwise interaction between two products. Computed
// fresh on every detection call; the cache variant stores copies, never the
// source of truth.
type Conflict struct {
	ID             string       `json:"id"`
	ProductAID     string       `json:"product_a_id"`
	ProductAName   string       `json:"product_a_name"`
	ProductBID     string       `json:"product_b_id"`
	ProductBName   string       `json:"product_b_name"`
	NutrientA      string       `json:"nutrient_a"`
	NutrientB      string       `json:"nutrient_b"`
	Severity       Severity     `json:"severity"`
	Type           ConflictType `json:"type"`
	Explanation    string       `json:"explanation"`
	Mechanism      string       `json:"mechanism"`
	TimeGapMinutes int          `json:"time_gap_minutes"`
}

// References reports whether the conflict is between the two given products,
// in either order.
func (c *Conflict) References(productA, productB string) bool {
	return (c.ProductAID == productA && c.ProductBID == productB) ||
		(c.ProductAID == productB && c.ProductBID == productA)
}

// Synergy is a beneficial multi-nutrient interaction. A synergy applies to a
// product selection when every nutrient in the group is covered by at least
// one selected product.
type Synergy struct {
	ID        string   `json:"id"`
	Nutrients []string `json:"nutrients"`
	Benefit   string   `json:"benefit"`
	Mechanism string   `json:"mechanism"`
}

// DetectedSynergy is a synergy that applies to a concrete product selection,
// with the products that contribute each nutrient.
type DetectedSynergy struct {
	Synergy
	ProductIDs []string `json:"product_ids"`
}
