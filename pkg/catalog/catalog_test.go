package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/models"
)

func TestDefaultCatalogValidates(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Products())
	assert.NotEmpty(t, c.Nutrients())
	assert.NotEmpty(t, c.Rules())
	assert.NotEmpty(t, c.Synergies())

	// Every rule nutrient must resolve.
	for _, r := range c.Rules() {
		_, ok := c.Nutrient(r.NutrientA)
		assert.True(t, ok, "rule nutrient %s not in catalog", r.NutrientA)
		_, ok = c.Nutrient(r.NutrientB)
		assert.True(t, ok, "rule nutrient %s not in catalog", r.NutrientB)
	}
}

func TestStaticSourceLoad(t *testing.T) {
	c, err := StaticSource{}.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewRejectsDanglingNutrient(t *testing.T) {
	nutrients := []models.Nutrient{{ID: "iron", Name: "Iron", Category: models.NutrientTraceMineral}}
	products := []models.Product{{
		ID: "p1", Name: "Mystery Pill", Category: models.ProductMineral,
		OptimalTiming: models.TimingAnytime,
		Ingredients:   []models.Ingredient{{NutrientID: "unobtainium", Amount: 1, Unit: "mg"}},
	}}

	_, err := New(nutrients, products, nil, nil)
	assert.ErrorContains(t, err, "unknown nutrient")
}

func TestNewRejectsSelfPairedRule(t *testing.T) {
	nutrients := []models.Nutrient{{ID: "iron", Name: "Iron", Category: models.NutrientTraceMineral}}
	rules := []models.ConflictRule{{
		NutrientA: "iron", NutrientB: "iron",
		Severity: models.SeverityLow, Type: models.ConflictAbsorptionCompetition,
	}}

	_, err := New(nutrients, nil, rules, nil)
	assert.ErrorContains(t, err, "itself")
}

func TestResolveProducts(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	products, err := c.ResolveProducts([]string{"bh-calcium-d3", "nb-gentle-iron"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "bh-calcium-d3", products[0].ID)

	_, err = c.ResolveProducts([]string{"bh-calcium-d3", "nope"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownProduct)
}

func TestFindProduct(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	p := c.FindProduct("GNC Triple Strength Fish Oil 1500mg")
	require.NotNil(t, p)
	assert.Equal(t, "gnc-triple-strength", p.ID)

	p = c.FindProduct("swisse multivitamin")
	require.NotNil(t, p)
	assert.Equal(t, "swisse-multivitamin", p.ID)

	assert.Nil(t, c.FindProduct("flux capacitor"))
	assert.Nil(t, c.FindProduct(""))
}

func TestFindNutrient(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	n := c.FindNutrient("Cholecalciferol")
	require.NotNil(t, n)
	assert.Equal(t, "vit-d3", n.ID)

	n = c.FindNutrient("tannic acid")
	require.NotNil(t, n)
	assert.Equal(t, "tannin", n.ID)
}

func TestInferIngredients(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	ings := c.InferIngredients("Green Tea (unsweetened)")
	require.NotEmpty(t, ings)
	assert.Equal(t, "tannin", ings[0].NutrientID)

	ings = c.InferIngredients("Spinach salad")
	require.Len(t, ings, 1)
	assert.Equal(t, "iron", ings[0].NutrientID)

	assert.Empty(t, c.InferIngredients("plain water"))
}

func TestTimingFromText(t *testing.T) {
	assert.Equal(t, models.TimingMorningEmptyStomach, TimingFromText("on an empty stomach"))
	assert.Equal(t, models.TimingBeforeBed, TimingFromText("30 minutes before bed"))
	assert.Equal(t, models.TimingMorningWithFood, TimingFromText("with breakfast"))
	assert.Equal(t, models.TimingAnytime, TimingFromText("whenever"))
	assert.Equal(t, models.TimingAnytime, TimingFromText(""))
}

func TestFoodCategory(t *testing.T) {
	assert.Equal(t, models.ProductBeverageTea, FoodCategory("Matcha latte", ""))
	assert.Equal(t, models.ProductFoodEgg, FoodCategory("Boiled eggs", ""))
	assert.Equal(t, models.ProductFoodMeat, FoodCategory("Grilled chicken", ""))
	// Explicit hint wins over name heuristics.
	assert.Equal(t, models.ProductSingleVitamin, FoodCategory("mystery capsule", "SINGLE_VITAMIN"))
}
