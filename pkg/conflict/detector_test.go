package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/catalog"
	"github.com/sundial-labs/sundial-engine/pkg/models"
)

func testProduct(id string, timing models.TimingPreference, ingredients ...models.Ingredient) models.Product {
	return models.Product{
		ID:            id,
		Name:          id,
		Category:      models.ProductSingleVitamin,
		Ingredients:   ingredients,
		OptimalTiming: timing,
	}
}

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewDetector(cat.Rules(), zap.NewNop())
}

func TestDetectEmptyStack(t *testing.T) {
	d := newTestDetector(t)
	_, err := d.Detect(nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyStack)
}

func TestDetectNoConflicts(t *testing.T) {
	d := newTestDetector(t)
	conflicts, err := d.Detect([]models.Product{
		testProduct("d3", models.TimingMorningWithFood, models.Ingredient{NutrientID: "vit-d3", Amount: 25, Unit: "mcg"}),
		testProduct("b12", models.TimingMorningWithFood, models.Ingredient{NutrientID: "vit-b12", Amount: 500, Unit: "mcg"}),
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectCalciumIronCritical(t *testing.T) {
	d := newTestDetector(t)
	calcium := testProduct("cal", models.TimingEvening,
		models.Ingredient{NutrientID: "calcium", Amount: 600, Unit: "mg"},
		models.Ingredient{NutrientID: "vit-d3", Amount: 5, Unit: "mcg"})
	iron := testProduct("fe", models.TimingMorningEmptyStomach,
		models.Ingredient{NutrientID: "iron", Amount: 14, Unit: "mg"},
		models.Ingredient{NutrientID: "vit-c", Amount: 60, Unit: "mg"})

	conflicts, err := d.Detect([]models.Product{calcium, iron})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)

	c := conflicts[0]
	assert.Equal(t, models.SeverityCritical, c.Severity)
	assert.Equal(t, models.ConflictAbsorptionCompetition, c.Type)
	assert.Equal(t, 240, c.TimeGapMinutes)
	assert.True(t, c.References("cal", "fe"))
}

func TestDetectSymmetric(t *testing.T) {
	d := newTestDetector(t)
	a := testProduct("a", models.TimingAnytime, models.Ingredient{NutrientID: "iron", Amount: 18, Unit: "mg"})
	b := testProduct("b", models.TimingAnytime, models.Ingredient{NutrientID: "calcium", Amount: 500, Unit: "mg"})

	forward, err := d.Detect([]models.Product{a, b})
	require.NoError(t, err)
	reversed, err := d.Detect([]models.Product{b, a})
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, reversed, 1)
	assert.Equal(t, forward[0].Severity, reversed[0].Severity)
	assert.Equal(t, forward[0].NutrientA, reversed[0].NutrientA)
	assert.True(t, reversed[0].References("a", "b"))
}

func TestDetectMultipleRulesSamePair(t *testing.T) {
	d := newTestDetector(t)
	// Zinc vs a calcium+copper product trips two distinct rules.
	zinc := testProduct("zn", models.TimingEvening, models.Ingredient{NutrientID: "zinc", Amount: 50, Unit: "mg"})
	multi := testProduct("multi", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "calcium", Amount: 400, Unit: "mg"},
		models.Ingredient{NutrientID: "copper", Amount: 1, Unit: "mg"})

	conflicts, err := d.Detect([]models.Product{zinc, multi})
	require.NoError(t, err)
	require.Len(t, conflicts, 2)

	ids := map[string]bool{}
	for _, c := range conflicts {
		ids[c.ID] = true
	}
	assert.Len(t, ids, 2, "conflict ids must be unique per nutrient pair")
}

func TestDetectDosageConditionGate(t *testing.T) {
	d := newTestDetector(t)
	fishOil := testProduct("omega", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "epa", Amount: 540, Unit: "mg"},
		models.Ingredient{NutrientID: "dha", Amount: 360, Unit: "mg"})

	lowE := testProduct("e-low", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "vit-e", Amount: 100, Unit: "IU"})
	conflicts, err := d.Detect([]models.Product{lowE, fishOil})
	require.NoError(t, err)
	assert.Empty(t, conflicts, "below-threshold vitamin E must not trigger the fish oil rules")

	highE := testProduct("e-high", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "vit-e", Amount: 400, Unit: "IU"})
	conflicts, err = d.Detect([]models.Product{highE, fishOil})
	require.NoError(t, err)
	assert.Len(t, conflicts, 2, "EPA and DHA rules both fire at 400 IU")
}

func TestDetectDosageConditionUnitConversion(t *testing.T) {
	d := newTestDetector(t)
	fishOil := testProduct("omega", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "epa", Amount: 540, Unit: "mg"})

	// 268mg d-alpha-tocopherol == 400 IU.
	mgE := testProduct("e-mg", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "vit-e", Amount: 268, Unit: "mg"})
	conflicts, err := d.Detect([]models.Product{mgE, fishOil})
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	// An ingredient in a unit with no conversion path is treated as below
	// threshold instead of failing the scan.
	oddUnit := testProduct("e-odd", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "vit-e", Amount: 9000, Unit: "drops"})
	conflicts, err = d.Detect([]models.Product{oddUnit, fishOil})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectSkipsMalformedIngredients(t *testing.T) {
	d := newTestDetector(t)
	broken := testProduct("broken", models.TimingAnytime,
		models.Ingredient{NutrientID: "", Amount: 10, Unit: "mg"},
		models.Ingredient{NutrientID: "iron", Amount: 18, Unit: "mg"})
	tea := testProduct("tea", models.TimingAfternoon,
		models.Ingredient{NutrientID: "tannin", Amount: 200, Unit: "mg"})

	conflicts, err := d.Detect([]models.Product{broken, tea})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.SeverityCritical, conflicts[0].Severity)
}

func TestDetectSameProductNotSelfPaired(t *testing.T) {
	d := newTestDetector(t)
	// A single product carrying both nutrients of a rule is not a conflict;
	// rules apply across products only.
	multi := testProduct("multi", models.TimingMorningWithFood,
		models.Ingredient{NutrientID: "iron", Amount: 10, Unit: "mg"},
		models.Ingredient{NutrientID: "calcium", Amount: 200, Unit: "mg"})

	conflicts, err := d.Detect([]models.Product{multi})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectCatalogStack(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	d := NewDetector(cat.Rules(), zap.NewNop())

	products, err := cat.ResolveProducts([]string{"bh-calcium-d3", "nb-gentle-iron", "life-ext-green-tea"})
	require.NoError(t, err)

	conflicts, err := d.Detect(products)
	require.NoError(t, err)

	// iron/calcium, iron/tannin, iron/caffeine at minimum.
	critical := 0
	for _, c := range conflicts {
		if c.Severity == models.SeverityCritical {
			critical++
		}
	}
	assert.GreaterOrEqual(t, critical, 3)
}

func TestDetectEveryRuleFires(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	d := NewDetector(cat.Rules(), zap.NewNop())

	for _, rule := range cat.Rules() {
		rule := rule
		t.Run(rule.NutrientA+"_"+rule.NutrientB, func(t *testing.T) {
			ingA := models.Ingredient{NutrientID: rule.NutrientA, Amount: 100, Unit: "mg"}
			ingB := models.Ingredient{NutrientID: rule.NutrientB, Amount: 100, Unit: "mg"}
			if cond := rule.Condition; cond != nil {
				at := models.Ingredient{NutrientID: cond.NutrientID, Amount: cond.Threshold, Unit: cond.Unit}
				if cond.NutrientID == rule.NutrientA {
					ingA = at
				} else {
					ingB = at
				}
			}

			conflicts, err := d.Detect([]models.Product{
				testProduct("a", models.TimingAnytime, ingA),
				testProduct("b", models.TimingAnytime, ingB),
			})
			require.NoError(t, err)
			require.Len(t, conflicts, 1)
			assert.Equal(t, rule.Severity, conflicts[0].Severity)
			assert.Equal(t, rule.TimeGapMinutes, conflicts[0].TimeGapMinutes)
		})
	}
}
