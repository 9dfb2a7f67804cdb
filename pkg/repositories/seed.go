package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/catalog"
)

// Seed populates an empty database with the built-in reference tables. A
// database that already holds products is left untouched, so operators can
// curate the catalog without redeploys clobbering their edits.
func (s *PostgresSource) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Catalog already seeded", zap.Int("products", count))
		return nil
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to build seed catalog: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, n := range cat.Nutrients() {
		if _, err := tx.Exec(ctx, `
			INSERT INTO nutrients (id, name, common_name, category, aliases)
			VALUES ($1, $2, $3, $4, $5)`,
			n.ID, n.Name, n.CommonName, n.Category, n.Aliases); err != nil {
			return fmt.Errorf("failed to seed nutrient %s: %w", n.ID, err)
		}
	}

	for pos, p := range cat.Products() {
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (id, name, brand, category, dosage_per_serving,
			                      servings_per_day, optimal_timing, price, rating, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.ID, p.Name, p.Brand, p.Category, p.DosagePerServing,
			p.ServingsPerDay, p.OptimalTiming, p.Price, p.Rating, pos); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
		for ingPos, ing := range p.Ingredients {
			if _, err := tx.Exec(ctx, `
				INSERT INTO product_ingredients (product_id, nutrient_id, amount, unit, percent_dv, position)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ID, ing.NutrientID, ing.Amount, ing.Unit, ing.PercentDV, ingPos); err != nil {
				return fmt.Errorf("failed to seed ingredient %s/%s: %w", p.ID, ing.NutrientID, err)
			}
		}
	}

	for _, r := range cat.Rules() {
		var (
			condNutrient  *string
			condThreshold *float64
			condUnit      *string
		)
		if r.Condition != nil {
			condNutrient = &r.Condition.NutrientID
			condThreshold = &r.Condition.Threshold
			condUnit = &r.Condition.Unit
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO conflict_rules (nutrient_a, nutrient_b, severity, conflict_type,
			                            explanation, mechanism, time_gap_minutes,
			                            condition_nutrient_id, condition_threshold, condition_unit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			r.NutrientA, r.NutrientB, r.Severity, r.Type, r.Explanation, r.Mechanism,
			r.TimeGapMinutes, condNutrient, condThreshold, condUnit); err != nil {
			return fmt.Errorf("failed to seed rule %s/%s: %w", r.NutrientA, r.NutrientB, err)
		}
	}

	for _, syn := range cat.Synergies() {
		if _, err := tx.Exec(ctx, `
			INSERT INTO synergies (id, nutrients, benefit, mechanism)
			VALUES ($1, $2, $3, $4)`,
			syn.ID, syn.Nutrients, syn.Benefit, syn.Mechanism); err != nil {
			return fmt.Errorf("failed to seed synergy %s: %w", syn.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	s.logger.Info("Seeded catalog",
		zap.Int("nutrients", len(cat.Nutrients())),
		zap.Int("products", len(cat.Products())),
		zap.Int("rules", len(cat.Rules())),
		zap.Int("synergies", len(cat.Synergies())))
	return nil
}
