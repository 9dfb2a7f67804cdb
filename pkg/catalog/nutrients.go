package catalog

import "github.com/sundial-labs/sundial-engine/pkg/models"

// defaultNutrients is the built-in nutrient reference table.
func defaultNutrients() []models.Nutrient {
	return []models.Nutrient{
		// Fat-soluble vitamins
		{ID: "vit-a", Name: "Vitamin A (Retinol)", CommonName: "Vitamin A", Category: models.NutrientVitaminFatSoluble, Aliases: []string{"Vitamin A", "Retinol", "VA"}},
		{ID: "vit-d2", Name: "Vitamin D2 (Ergocalciferol)", CommonName: "Vitamin D", Category: models.NutrientVitaminFatSoluble, Aliases: []string{"Vitamin D2", "Ergocalciferol"}},
		{ID: "vit-d3", Name: "Vitamin D3 (Cholecalciferol)", CommonName: "Vitamin D", Category: models.NutrientVitaminFatSoluble, Aliases: []string{"Vitamin D3", "Cholecalciferol", "VD3"}},
		{ID: "vit-e", Name: "Vitamin E (Tocopherol)", CommonName: "Vitamin E", Category: models.NutrientVitaminFatSoluble, Aliases: []string{"Vitamin E", "Tocopherol", "VE"}},
		{ID: "vit-k1", Name: "Vitamin K1 (Phylloquinone)", CommonName: "Vitamin K", Category: models.NutrientVitaminFatSoluble, Aliases: []string{"Vitamin K1", "Phylloquinone"}},
		{ID: "vit-k2", Name: "Vitamin K2 (Menaquinone)", CommonName: "Vitamin K", Category: models.NutrientVitaminFatSoluble, Aliases: []string{"Vitamin K2", "Menaquinone", "MK-7"}},

		// Water-soluble vitamins
		{ID: "vit-c", Name: "Vitamin C (Ascorbic Acid)", CommonName: "Vitamin C", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin C", "Ascorbic Acid", "VC"}},
		{ID: "vit-b1", Name: "Vitamin B1 (Thiamine)", CommonName: "Vitamin B1", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B1", "Thiamine", "VB1"}},
		{ID: "vit-b2", Name: "Vitamin B2 (Riboflavin)", CommonName: "Vitamin B2", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B2", "Riboflavin", "VB2"}},
		{ID: "vit-b3", Name: "Vitamin B3 (Niacin)", CommonName: "Vitamin B3", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B3", "Niacin", "VB3"}},
		{ID: "vit-b5", Name: "Vitamin B5 (Pantothenic Acid)", CommonName: "Vitamin B5", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B5", "Pantothenic Acid", "VB5"}},
		{ID: "vit-b6", Name: "Vitamin B6 (Pyridoxine)", CommonName: "Vitamin B6", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B6", "Pyridoxine", "VB6"}},
		{ID: "vit-b7", Name: "Vitamin B7 (Biotin)", CommonName: "Biotin", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B7", "Biotin", "VB7"}},
		{ID: "vit-b9", Name: "Vitamin B9 (Folate)", CommonName: "Folate", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B9", "Folic Acid", "Folate"}},
		{ID: "vit-b12", Name: "Vitamin B12 (Cobalamin)", CommonName: "Vitamin B12", Category: models.NutrientVitaminWaterSoluble, Aliases: []string{"Vitamin B12", "Cobalamin", "VB12"}},

		// Macro minerals
		{ID: "calcium", Name: "Calcium", CommonName: "Calcium", Category: models.NutrientMacroMineral, Aliases: []string{"Calcium", "Ca"}},
		{ID: "magnesium", Name: "Magnesium", CommonName: "Magnesium", Category: models.NutrientMacroMineral, Aliases: []string{"Magnesium", "Mg"}},
		{ID: "potassium", Name: "Potassium", CommonName: "Potassium", Category: models.NutrientMacroMineral, Aliases: []string{"Potassium", "K"}},
		{ID: "sodium", Name: "Sodium", CommonName: "Sodium", Category: models.NutrientMacroMineral, Aliases: []string{"Sodium", "Na"}},
		{ID: "phosphorus", Name: "Phosphorus", CommonName: "Phosphorus", Category: models.NutrientMacroMineral, Aliases: []string{"Phosphorus", "P"}},

		// Trace minerals
		{ID: "iron", Name: "Iron", CommonName: "Iron", Category: models.NutrientTraceMineral, Aliases: []string{"Iron", "Fe"}},
		{ID: "zinc", Name: "Zinc", CommonName: "Zinc", Category: models.NutrientTraceMineral, Aliases: []string{"Zinc", "Zn"}},
		{ID: "copper", Name: "Copper", CommonName: "Copper", Category: models.NutrientTraceMineral, Aliases: []string{"Copper", "Cu"}},
		{ID: "selenium", Name: "Selenium", CommonName: "Selenium", Category: models.NutrientTraceMineral, Aliases: []string{"Selenium", "Se"}},
		{ID: "iodine", Name: "Iodine", CommonName: "Iodine", Category: models.NutrientTraceMineral, Aliases: []string{"Iodine", "I"}},
		{ID: "chromium", Name: "Chromium", CommonName: "Chromium", Category: models.NutrientTraceMineral, Aliases: []string{"Chromium", "Cr"}},
		{ID: "manganese", Name: "Manganese", CommonName: "Manganese", Category: models.NutrientTraceMineral, Aliases: []string{"Manganese", "Mn"}},
		{ID: "molybdenum", Name: "Molybdenum", CommonName: "Molybdenum", Category: models.NutrientTraceMineral, Aliases: []string{"Molybdenum", "Mo"}},

		// Amino acids
		{ID: "leucine", Name: "Leucine", CommonName: "Leucine", Category: models.NutrientBCAA, Aliases: []string{"Leucine", "L-Leucine"}},
		{ID: "isoleucine", Name: "Isoleucine", CommonName: "Isoleucine", Category: models.NutrientBCAA, Aliases: []string{"Isoleucine", "L-Isoleucine"}},
		{ID: "valine", Name: "Valine", CommonName: "Valine", Category: models.NutrientBCAA, Aliases: []string{"Valine", "L-Valine"}},
		{ID: "lysine", Name: "Lysine", CommonName: "Lysine", Category: models.NutrientEssentialAmino, Aliases: []string{"Lysine", "L-Lysine"}},
		{ID: "methionine", Name: "Methionine", CommonName: "Methionine", Category: models.NutrientEssentialAmino, Aliases: []string{"Methionine", "L-Methionine"}},
		{ID: "phenylalanine", Name: "Phenylalanine", CommonName: "Phenylalanine", Category: models.NutrientEssentialAmino, Aliases: []string{"Phenylalanine", "L-Phenylalanine"}},
		{ID: "threonine", Name: "Threonine", CommonName: "Threonine", Category: models.NutrientEssentialAmino, Aliases: []string{"Threonine", "L-Threonine"}},
		{ID: "tryptophan", Name: "Tryptophan", CommonName: "Tryptophan", Category: models.NutrientEssentialAmino, Aliases: []string{"Tryptophan", "L-Tryptophan"}},
		{ID: "protein", Name: "Protein (complete)", CommonName: "Protein", Category: models.NutrientEssentialAmino, Aliases: []string{"Protein", "Whey", "Whey Protein"}},

		// Omega fatty acids
		{ID: "epa", Name: "EPA (Eicosapentaenoic Acid)", CommonName: "EPA", Category: models.NutrientOmega3, Aliases: []string{"EPA", "Eicosapentaenoic Acid", "Fish Oil"}},
		{ID: "dha", Name: "DHA (Docosahexaenoic Acid)", CommonName: "DHA", Category: models.NutrientOmega3, Aliases: []string{"DHA", "Docosahexaenoic Acid", "Fish Oil"}},
		{ID: "ala", Name: "ALA (Alpha-Linolenic Acid)", CommonName: "ALA", Category: models.NutrientOmega3, Aliases: []string{"ALA", "Alpha-Linolenic Acid"}},

		// Coenzymes and antioxidants
		{ID: "coq10", Name: "Coenzyme Q10", CommonName: "CoQ10", Category: models.NutrientCoenzyme, Aliases: []string{"CoQ10", "Ubiquinone"}},
		{ID: "glutathione", Name: "Glutathione", CommonName: "Glutathione", Category: models.NutrientAntioxidant, Aliases: []string{"Glutathione", "GSH"}},
		{ID: "resveratrol", Name: "Resveratrol", CommonName: "Resveratrol", Category: models.NutrientAntioxidant, Aliases: []string{"Resveratrol"}},
		{ID: "astaxanthin", Name: "Astaxanthin", CommonName: "Astaxanthin", Category: models.NutrientAntioxidant, Aliases: []string{"Astaxanthin"}},

		// Herbal extracts
		{ID: "curcumin", Name: "Curcumin", CommonName: "Curcumin", Category: models.NutrientHerbalExtract, Aliases: []string{"Curcumin", "Turmeric"}},
		{ID: "green-tea", Name: "Green Tea Extract", CommonName: "Green Tea", Category: models.NutrientHerbalExtract, Aliases: []string{"Green Tea Extract", "EGCG"}},
		{ID: "ginseng", Name: "Ginseng Extract", CommonName: "Ginseng", Category: models.NutrientHerbalExtract, Aliases: []string{"Ginseng", "Panax Ginseng"}},
		{ID: "ashwagandha", Name: "Ashwagandha", CommonName: "Ashwagandha", Category: models.NutrientHerbalExtract, Aliases: []string{"Ashwagandha", "Withania Somnifera"}},
		{ID: "rhodiola", Name: "Rhodiola", CommonName: "Rhodiola", Category: models.NutrientHerbalExtract, Aliases: []string{"Rhodiola", "Rhodiola Rosea"}},

		// Probiotic strains
		{ID: "lacto-acidophilus", Name: "Lactobacillus Acidophilus", CommonName: "L. Acidophilus", Category: models.NutrientProbioticStrain, Aliases: []string{"Lactobacillus Acidophilus"}},
		{ID: "bifido-bifidum", Name: "Bifidobacterium Bifidum", CommonName: "B. Bifidum", Category: models.NutrientProbioticStrain, Aliases: []string{"Bifidobacterium Bifidum"}},

		// Interaction-relevant compounds in everyday drinks
		{ID: "caffeine", Name: "Caffeine", CommonName: "Caffeine", Category: models.NutrientAntioxidant, Aliases: []string{"Caffeine", "Coffee"}},
		{ID: "tannin", Name: "Tannin / Tea Polyphenols", CommonName: "Tea Polyphenols", Category: models.NutrientAntioxidant, Aliases: []string{"Tannin", "Tannic Acid", "Tea Polyphenols"}},
	}
}
