package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial-labs/sundial-engine/pkg/catalog"
	"github.com/sundial-labs/sundial-engine/pkg/models"
)

func TestBuildGraph(t *testing.T) {
	products := []models.Product{
		testProduct("cal", models.TimingEvening, models.Ingredient{NutrientID: "calcium", Amount: 600, Unit: "mg"}),
		testProduct("fe", models.TimingMorningEmptyStomach, models.Ingredient{NutrientID: "iron", Amount: 28, Unit: "mg"}),
		testProduct("d3", models.TimingMorningWithFood, models.Ingredient{NutrientID: "vit-d3", Amount: 25, Unit: "mcg"}),
	}
	conflicts := []models.Conflict{
		{
			ID: "conflict-cal-fe-iron-calcium", ProductAID: "cal", ProductBID: "fe",
			NutrientA: "iron", NutrientB: "calcium",
			Severity: models.SeverityCritical, Type: models.ConflictAbsorptionCompetition,
		},
	}
	synergies := []models.DetectedSynergy{
		{
			Synergy:    models.Synergy{ID: "syn-d3-calcium", Nutrients: []string{"vit-d3", "calcium"}, Benefit: "calcium absorption"},
			ProductIDs: []string{"cal", "d3"},
		},
	}

	g := BuildGraph(products, conflicts, synergies)
	require.Len(t, g.Nodes, 3, "every product is a node, edges or not")
	require.Len(t, g.Edges, 2)

	var conflictEdge, synergyEdge *GraphEdge
	for i := range g.Edges {
		if g.Edges[i].Synergy {
			synergyEdge = &g.Edges[i]
		} else {
			conflictEdge = &g.Edges[i]
		}
	}
	require.NotNil(t, conflictEdge)
	require.NotNil(t, synergyEdge)

	assert.Equal(t, 5, conflictEdge.Weight)
	assert.Equal(t, "iron / calcium", conflictEdge.Label)
	assert.Equal(t, 2, synergyEdge.Weight)
	assert.Equal(t, "calcium absorption", synergyEdge.Label)
}

func TestBuildGraphSeverityWeights(t *testing.T) {
	for severity, want := range map[models.Severity]int{
		models.SeverityCritical: 5,
		models.SeverityHigh:     4,
		models.SeverityMedium:   3,
		models.SeverityLow:      1,
	} {
		g := BuildGraph(nil, []models.Conflict{{ProductAID: "a", ProductBID: "b", Severity: severity}}, nil)
		require.Len(t, g.Edges, 1)
		assert.Equal(t, want, g.Edges[0].Weight, "severity %s", severity)
	}
}

func TestIsCombinationSafe(t *testing.T) {
	conflicts := []models.Conflict{
		{Severity: models.SeverityLow},
		{Severity: models.SeverityMedium},
	}
	assert.False(t, IsCombinationSafe(conflicts, models.SeverityMedium))
	assert.False(t, IsCombinationSafe(conflicts, models.SeverityLow))
	assert.True(t, IsCombinationSafe(conflicts, models.SeverityHigh))
	assert.True(t, IsCombinationSafe(nil, models.SeverityLow))
}

func TestDetectSynergies(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	products, err := cat.ResolveProducts([]string{"bh-calcium-d3", "nb-gentle-iron"})
	require.NoError(t, err)

	detected := DetectSynergies(products, cat.Synergies())

	byID := map[string]models.DetectedSynergy{}
	for _, s := range detected {
		byID[s.ID] = s
	}

	// bh-calcium-d3 alone covers vitamin D3 + calcium.
	d3cal, ok := byID["syn-d3-calcium"]
	require.True(t, ok)
	assert.Equal(t, []string{"bh-calcium-d3"}, d3cal.ProductIDs)

	// Iron + vitamin C come from the same product here.
	feC, ok := byID["syn-iron-vitc"]
	require.True(t, ok)
	assert.Equal(t, []string{"nb-gentle-iron"}, feC.ProductIDs)

	// Vitamin K2 is in no selected product.
	_, ok = byID["syn-d3-k2"]
	assert.False(t, ok)
}

func TestDetectSynergiesCrossProduct(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	products, err := cat.ResolveProducts([]string{"nm-vitd3", "doctors-best-mag"})
	require.NoError(t, err)

	detected := DetectSynergies(products, cat.Synergies())
	require.Len(t, detected, 1)
	assert.Equal(t, "syn-mag-d3", detected[0].ID)
	assert.ElementsMatch(t, []string{"nm-vitd3", "doctors-best-mag"}, detected[0].ProductIDs)
}
