package models

// NutrientCategory classifies a nutrient for grouping and graph coloring.
type NutrientCategory string

const (
	NutrientVitaminFatSoluble   NutrientCategory = "VITAMIN_FAT_SOLUBLE"
	NutrientVitaminWaterSoluble NutrientCategory = "VITAMIN_WATER_SOLUBLE"
	NutrientMacroMineral        NutrientCategory = "MACRO_MINERAL"
	NutrientTraceMineral        NutrientCategory = "TRACE_MINERAL"
	NutrientEssentialAmino      NutrientCategory = "ESSENTIAL_AMINO"
	NutrientBCAA                NutrientCategory = "BCAA"
	NutrientOmega3              NutrientCategory = "OMEGA_3"
	NutrientOmega6              NutrientCategory = "OMEGA_6"
	NutrientProbioticStrain     NutrientCategory = "PROBIOTIC_STRAIN"
	NutrientHerbalExtract       NutrientCategory = "HERBAL_EXTRACT"
	NutrientAntioxidant         NutrientCategory = "ANTIOXIDANT"
	NutrientCoenzyme            NutrientCategory = "COENZYME"
)

// Nutrient is a tracked biochemical substance. Reference data: built once at
// startup and never mutated afterwards.
type Nutrient struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	CommonName string           `json:"common_name"`
	Category   NutrientCategory `json:"category"`
	Aliases    []string         `json:"aliases,omitempty"`
}
