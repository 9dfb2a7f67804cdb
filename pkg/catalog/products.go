package catalog

import "github.com/sundial-labs/sundial-engine/pkg/models"

func ptr(f float64) *float64 { return &f }

// defaultProducts is the built-in product catalog: popular branded items with
// label-accurate ingredient lists.
func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:       "bh-calcium-d3",
			Name:     "By-Health Liquid Calcium Softgels",
			Brand:    "By-Health",
			Category: models.ProductMineral,
			Ingredients: []models.Ingredient{
				{NutrientID: "calcium", Amount: 600, Unit: "mg", PercentDV: ptr(75)},
				{NutrientID: "vit-d3", Amount: 5, Unit: "mcg", PercentDV: ptr(100)},
			},
			DosagePerServing: "2 softgels",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingMorningWithFood,
			Price:            ptr(129),
			Rating:           ptr(4.7),
		},
		{
			ID:       "bh-omega3",
			Name:     "By-Health Deep Sea Fish Oil Softgels",
			Brand:    "By-Health",
			Category: models.ProductOmega,
			Ingredients: []models.Ingredient{
				{NutrientID: "epa", Amount: 180, Unit: "mg"},
				{NutrientID: "dha", Amount: 120, Unit: "mg"},
			},
			DosagePerServing: "2 softgels",
			ServingsPerDay:   2,
			OptimalTiming:    models.TimingMorningWithFood,
			Price:            ptr(198),
			Rating:           ptr(4.6),
		},
		{
			ID:       "swisse-multivitamin",
			Name:     "Swisse Men's Ultivite Multivitamin",
			Brand:    "Swisse",
			Category: models.ProductMultivitamin,
			Ingredients: []models.Ingredient{
				{NutrientID: "vit-a", Amount: 750, Unit: "mcg"},
				{NutrientID: "vit-c", Amount: 165, Unit: "mg"},
				{NutrientID: "vit-d3", Amount: 25, Unit: "mcg"},
				{NutrientID: "vit-e", Amount: 41, Unit: "mg"},
				{NutrientID: "vit-b12", Amount: 30, Unit: "mcg"},
				{NutrientID: "zinc", Amount: 8, Unit: "mg"},
			},
			DosagePerServing: "1 tablet",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingMorningWithFood,
			Price:            ptr(268),
			Rating:           ptr(4.8),
		},
		{
			ID:       "nm-vitd3",
			Name:     "Nature Made Vitamin D3 2000 IU",
			Brand:    "Nature Made",
			Category: models.ProductSingleVitamin,
			Ingredients: []models.Ingredient{
				{NutrientID: "vit-d3", Amount: 50, Unit: "mcg", PercentDV: ptr(250)},
			},
			DosagePerServing: "1 softgel",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingMorningWithFood,
			Price:            ptr(89),
			Rating:           ptr(4.9),
		},
		{
			ID:       "gnc-triple-strength",
			Name:     "GNC Triple Strength Fish Oil 1500mg",
			Brand:    "GNC",
			Category: models.ProductOmega,
			Ingredients: []models.Ingredient{
				{NutrientID: "epa", Amount: 647, Unit: "mg"},
				{NutrientID: "dha", Amount: 253, Unit: "mg"},
			},
			DosagePerServing: "1 softgel",
			ServingsPerDay:   2,
			OptimalTiming:    models.TimingMorningWithFood,
			Price:            ptr(328),
			Rating:           ptr(4.7),
		},
		{
			ID:       "xz-calcium-mag",
			Name:     "XiuZheng Calcium Magnesium Tablets",
			Brand:    "XiuZheng",
			Category: models.ProductMineral,
			Ingredients: []models.Ingredient{
				{NutrientID: "calcium", Amount: 500, Unit: "mg"},
				{NutrientID: "magnesium", Amount: 250, Unit: "mg"},
			},
			DosagePerServing: "2 tablets",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingBeforeBed,
			Price:            ptr(68),
			Rating:           ptr(4.4),
		},
		{
			ID:       "nb-gentle-iron",
			Name:     "Nature's Bounty Gentle Iron 28mg",
			Brand:    "Nature's Bounty",
			Category: models.ProductMineral,
			Ingredients: []models.Ingredient{
				{NutrientID: "iron", Amount: 28, Unit: "mg", PercentDV: ptr(156)},
				{NutrientID: "vit-c", Amount: 60, Unit: "mg"},
			},
			DosagePerServing: "1 capsule",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingMorningEmptyStomach,
			Price:            ptr(75),
			Rating:           ptr(4.5),
		},
		{
			ID:       "now-zinc-picolinate",
			Name:     "NOW Zinc Picolinate 50mg",
			Brand:    "NOW Foods",
			Category: models.ProductMineral,
			Ingredients: []models.Ingredient{
				{NutrientID: "zinc", Amount: 50, Unit: "mg", PercentDV: ptr(455)},
			},
			DosagePerServing: "1 capsule",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingEvening,
			Price:            ptr(55),
			Rating:           ptr(4.6),
		},
		{
			ID:       "life-ext-green-tea",
			Name:     "Life Extension Mega Green Tea Extract",
			Brand:    "Life Extension",
			Category: models.ProductHerbal,
			Ingredients: []models.Ingredient{
				{NutrientID: "green-tea", Amount: 725, Unit: "mg"},
				{NutrientID: "tannin", Amount: 246, Unit: "mg"},
				{NutrientID: "caffeine", Amount: 6, Unit: "mg"},
			},
			DosagePerServing: "1 vegetarian capsule",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingAfternoon,
			Price:            ptr(168),
			Rating:           ptr(4.3),
		},
		{
			ID:       "doctors-best-mag",
			Name:     "Doctor's Best High Absorption Magnesium",
			Brand:    "Doctor's Best",
			Category: models.ProductSleep,
			Ingredients: []models.Ingredient{
				{NutrientID: "magnesium", Amount: 200, Unit: "mg", PercentDV: ptr(48)},
			},
			DosagePerServing: "2 tablets",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingBeforeBed,
			Price:            ptr(98),
			Rating:           ptr(4.8),
		},
		{
			ID:       "nutrilite-protein",
			Name:     "Nutrilite All Plant Protein Powder",
			Brand:    "Nutrilite",
			Category: models.ProductProtein,
			Ingredients: []models.Ingredient{
				{NutrientID: "protein", Amount: 8, Unit: "g"},
				{NutrientID: "leucine", Amount: 660, Unit: "mg"},
				{NutrientID: "isoleucine", Amount: 390, Unit: "mg"},
				{NutrientID: "valine", Amount: 410, Unit: "mg"},
			},
			DosagePerServing: "1 scoop (10g)",
			ServingsPerDay:   2,
			OptimalTiming:    models.TimingPostWorkout,
			Price:            ptr(398),
			Rating:           ptr(4.6),
		},
		{
			ID:       "solgar-vit-e-400",
			Name:     "Solgar Vitamin E 400 IU",
			Brand:    "Solgar",
			Category: models.ProductSingleVitamin,
			Ingredients: []models.Ingredient{
				{NutrientID: "vit-e", Amount: 400, Unit: "IU", PercentDV: ptr(1787)},
			},
			DosagePerServing: "1 softgel",
			ServingsPerDay:   1,
			OptimalTiming:    models.TimingMorningWithFood,
			Price:            ptr(112),
			Rating:           ptr(4.7),
		},
	}
}
