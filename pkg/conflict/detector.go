// Package conflict implements pairwise nutrient-interaction detection over a
// product selection. Detection is a pure function of the input products and
// the rule table: no I/O, no shared state, deterministic.
package conflict

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/models"
	"github.com/sundial-labs/sundial-engine/pkg/units"
)

// Detector scans product pairs against a conflict rule table.
type Detector struct {
	rules  []models.ConflictRule
	logger *zap.Logger
}

// NewDetector creates a detector over the given rule table.
func NewDetector(rules []models.ConflictRule, logger *zap.Logger) *Detector {
	return &Detector{rules: rules, logger: logger.Named("conflict")}
}

// Detect checks every unordered pair of distinct products against every rule
// and returns the matching conflicts, unordered. Consumers sort or group by
// severity as needed. An empty product list is an input error so that callers
// can distinguish "no conflicts" from "nothing to check".
func (d *Detector) Detect(products []models.Product) ([]models.Conflict, error) {
	if len(products) == 0 {
		return nil, apperrors.ErrEmptyStack
	}

	nutrientSets := make([]map[string]bool, len(products))
	for i := range products {
		nutrientSets[i] = d.nutrientSet(&products[i])
	}

	conflicts := []models.Conflict{}
	for i := 0; i < len(products); i++ {
		for j := i + 1; j < len(products); j++ {
			for _, rule := range d.rules {
				c, ok := d.apply(&rule, &products[i], &products[j], nutrientSets[i], nutrientSets[j])
				if ok {
					conflicts = append(conflicts, c)
				}
			}
		}
	}
	return conflicts, nil
}

// nutrientSet collects the product's nutrient ids, skipping malformed
// ingredient entries with a warning rather than aborting the scan.
func (d *Detector) nutrientSet(p *models.Product) map[string]bool {
	set := make(map[string]bool, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		if ing.NutrientID == "" {
			d.logger.Warn("skipping ingredient without nutrient reference",
				zap.String("product_id", p.ID))
			continue
		}
		set[ing.NutrientID] = true
	}
	return set
}

// apply checks one rule against one product pair. The rule is symmetric:
// either product may carry either nutrient.
func (d *Detector) apply(rule *models.ConflictRule, a, b *models.Product, nutrientsA, nutrientsB map[string]bool) (models.Conflict, bool) {
	matched := (nutrientsA[rule.NutrientA] && nutrientsB[rule.NutrientB]) ||
		(nutrientsA[rule.NutrientB] && nutrientsB[rule.NutrientA])
	if !matched {
		return models.Conflict{}, false
	}

	if rule.Condition != nil && !d.conditionMet(rule, a, b) {
		return models.Conflict{}, false
	}

	return models.Conflict{
		ID:             fmt.Sprintf("conflict-%s-%s-%s-%s", a.ID, b.ID, rule.NutrientA, rule.NutrientB),
		ProductAID:     a.ID,
		ProductAName:   a.Name,
		ProductBID:     b.ID,
		ProductBName:   b.Name,
		NutrientA:      rule.NutrientA,
		NutrientB:      rule.NutrientB,
		Severity:       rule.Severity,
		Type:           rule.Type,
		Explanation:    rule.Explanation,
		Mechanism:      rule.Mechanism,
		TimeGapMinutes: rule.TimeGapMinutes,
	}, true
}

// conditionMet evaluates a rule's dosage condition against the specific
// ingredient entry that carries the conditioning nutrient. The amount is
// normalized to the condition's unit; an unconvertible unit means the
// condition is not met (the rule is skipped, never an error).
func (d *Detector) conditionMet(rule *models.ConflictRule, a, b *models.Product) bool {
	ing := a.Ingredient(rule.Condition.NutrientID)
	if ing == nil {
		ing = b.Ingredient(rule.Condition.NutrientID)
	}
	if ing == nil {
		return false
	}

	amount, ok := units.Normalize(rule.Condition.NutrientID, ing.Amount, ing.Unit, rule.Condition.Unit)
	if !ok {
		d.logger.Warn("no unit conversion for dosage condition; skipping rule",
			zap.String("nutrient", rule.Condition.NutrientID),
			zap.String("ingredient_unit", ing.Unit),
			zap.String("condition_unit", rule.Condition.Unit))
		return false
	}
	return amount >= rule.Condition.Threshold
}
