// Package repositories provides Postgres-backed access to the reference
// catalog. The engine computes over an in-memory catalog either way; this
// package only loads and seeds the relational copy.
package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/catalog"
	"github.com/sundial-labs/sundial-engine/pkg/database"
	"github.com/sundial-labs/sundial-engine/pkg/models"
)

// PostgresSource loads the catalog from the relational schema created by the
// migrations. It satisfies catalog.Source so the rest of the engine never
// knows whether it is running off the database or the built-in tables.
type PostgresSource struct {
	db     *database.DB
	logger *zap.Logger
}

var _ catalog.Source = (*PostgresSource)(nil)

func NewPostgresSource(db *database.DB, logger *zap.Logger) *PostgresSource {
	return &PostgresSource{db: db, logger: logger.Named("catalog-source")}
}

// Load reads the full reference dataset and builds a validated catalog.
func (s *PostgresSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	nutrients, err := s.loadNutrients(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.loadRules(ctx)
	if err != nil {
		return nil, err
	}
	synergies, err := s.loadSynergies(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded catalog from database",
		zap.Int("nutrients", len(nutrients)),
		zap.Int("products", len(products)),
		zap.Int("rules", len(rules)),
		zap.Int("synergies", len(synergies)))

	return catalog.New(nutrients, products, rules, synergies)
}

func (s *PostgresSource) loadNutrients(ctx context.Context) ([]models.Nutrient, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, common_name, category, aliases
		FROM nutrients
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query nutrients: %w", err)
	}
	defer rows.Close()

	var nutrients []models.Nutrient
	for rows.Next() {
		var n models.Nutrient
		if err := rows.Scan(&n.ID, &n.Name, &n.CommonName, &n.Category, &n.Aliases); err != nil {
			return nil, fmt.Errorf("failed to scan nutrient: %w", err)
		}
		nutrients = append(nutrients, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nutrients: %w", err)
	}
	return nutrients, nil
}

func (s *PostgresSource) loadProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, brand, category, dosage_per_serving, servings_per_day,
		       optimal_timing, price, rating
		FROM products
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	index := make(map[string]int)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.DosagePerServing,
			&p.ServingsPerDay, &p.OptimalTiming, &p.Price, &p.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	ingRows, err := s.db.Query(ctx, `
		SELECT product_id, nutrient_id, amount, unit, percent_dv
		FROM product_ingredients
		ORDER BY product_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var productID string
		var ing models.Ingredient
		if err := ingRows.Scan(&productID, &ing.NutrientID, &ing.Amount, &ing.Unit, &ing.PercentDV); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		i, ok := index[productID]
		if !ok {
			return nil, fmt.Errorf("ingredient references unknown product %s", productID)
		}
		products[i].Ingredients = append(products[i].Ingredients, ing)
	}
	if err := ingRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}
	return products, nil
}

func (s *PostgresSource) loadRules(ctx context.Context) ([]models.ConflictRule, error) {
	rows, err := s.db.Query(ctx, `
		SELECT nutrient_a, nutrient_b, severity, conflict_type, explanation,
		       mechanism, time_gap_minutes,
		       condition_nutrient_id, condition_threshold, condition_unit
		FROM conflict_rules
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflict rules: %w", err)
	}
	defer rows.Close()

	var rules []models.ConflictRule
	for rows.Next() {
		var (
			r             models.ConflictRule
			condNutrient  *string
			condThreshold *float64
			condUnit      *string
		)
		if err := rows.Scan(&r.NutrientA, &r.NutrientB, &r.Severity, &r.Type,
			&r.Explanation, &r.Mechanism, &r.TimeGapMinutes,
			&condNutrient, &condThreshold, &condUnit); err != nil {
			return nil, fmt.Errorf("failed to scan conflict rule: %w", err)
		}
		r.Condition = ruleCondition(condNutrient, condThreshold, condUnit)
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conflict rules: %w", err)
	}
	return rules, nil
}

// ruleCondition assembles a dosage condition from its nullable columns. All
// three columns are set together or not at all; a partially filled condition
// is treated as absent rather than guessed at.
func ruleCondition(nutrientID *string, threshold *float64, unit *string) *models.DosageCondition {
	if nutrientID == nil || threshold == nil || unit == nil {
		return nil
	}
	return &models.DosageCondition{
		NutrientID: *nutrientID,
		Threshold:  *threshold,
		Unit:       *unit,
	}
}

func (s *PostgresSource) loadSynergies(ctx context.Context) ([]models.Synergy, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, nutrients, benefit, mechanism
		FROM synergies
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query synergies: %w", err)
	}
	defer rows.Close()

	var synergies []models.Synergy
	for rows.Next() {
		var syn models.Synergy
		if err := rows.Scan(&syn.ID, &syn.Nutrients, &syn.Benefit, &syn.Mechanism); err != nil {
			return nil, fmt.Errorf("failed to scan synergy: %w", err)
		}
		synergies = append(synergies, syn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating synergies: %w", err)
	}
	return synergies, nil
}
