package catalog

import "github.com/sundial-labs/sundial-engine/pkg/models"

// defaultSynergies is the built-in synergy table. It is intentionally small;
// synergy detection mirrors conflict detection but the evidence base here is
// thinner.
func defaultSynergies() []models.Synergy {
	return []models.Synergy{
		{
			ID:        "syn-d3-calcium",
			Nutrients: []string{"vit-d3", "calcium"},
			Benefit:   "Enhanced calcium absorption",
			Mechanism: "Vitamin D promotes intestinal calcium absorption via calbindin synthesis.",
		},
		{
			ID:        "syn-iron-vitc",
			Nutrients: []string{"iron", "vit-c"},
			Benefit:   "Enhanced iron absorption",
			Mechanism: "Vitamin C reduces ferric iron (Fe3+) to the better-absorbed ferrous form (Fe2+).",
		},
		{
			ID:        "syn-mag-d3",
			Nutrients: []string{"magnesium", "vit-d3"},
			Benefit:   "Vitamin D activation",
			Mechanism: "Magnesium is a cofactor for the enzymes that convert vitamin D into its active form.",
		},
		{
			ID:        "syn-d3-k2",
			Nutrients: []string{"vit-d3", "vit-k2"},
			Benefit:   "Directed calcium deposition",
			Mechanism: "Vitamin K2 activates osteocalcin, steering vitamin-D-mobilized calcium into bone.",
		},
		{
			ID:        "syn-curcumin-omega",
			Nutrients: []string{"curcumin", "dha"},
			Benefit:   "Improved curcumin bioavailability",
			Mechanism: "Co-ingestion with long-chain fats raises absorption of the lipophilic curcuminoids.",
		},
	}
}

// Default builds the full built-in catalog.
func Default() (*Catalog, error) {
	return New(defaultNutrients(), defaultProducts(), defaultRules(), defaultSynergies())
}
