package catalog

import (
	"strings"

	"github.com/sundial-labs/sundial-engine/pkg/models"
)

// nutrientKeywords maps free-text food/supplement wording to the nutrients it
// implies, with rough typical amounts so that synthetic products participate
// in conflict detection. Amounts are order-of-magnitude estimates, not label
// claims.
var nutrientKeywords = []struct {
	keywords   []string
	nutrientID string
	amount     float64
	unit       string
}{
	{[]string{"vitamin c", "vit c", "ascorbic", "orange", "lemon", "kiwi", "acerola", "camu"}, "vit-c", 100, "mg"},
	{[]string{"iron", "spinach", "liver", "red meat", "beef"}, "iron", 10, "mg"},
	{[]string{"calcium", "milk", "yogurt", "cheese", "dairy"}, "calcium", 300, "mg"},
	{[]string{"zinc", "oyster", "pumpkin seed"}, "zinc", 8, "mg"},
	{[]string{"magnesium", "almond", "dark chocolate", "cacao"}, "magnesium", 80, "mg"},
	{[]string{"vitamin d", "vit d", "cholecalciferol", "sunshine"}, "vit-d3", 10, "mcg"},
	{[]string{"vitamin e", "vit e", "tocopherol"}, "vit-e", 15, "mg"},
	{[]string{"omega", "fish oil", "epa", "salmon", "sardine"}, "epa", 200, "mg"},
	{[]string{"dha", "cod liver"}, "dha", 150, "mg"},
	{[]string{"protein", "whey", "egg", "chicken breast"}, "protein", 20, "g"},
	{[]string{"green tea", "black tea", "oolong", "matcha", "tea"}, "tannin", 150, "mg"},
	{[]string{"coffee", "caffeine", "espresso", "energy drink"}, "caffeine", 90, "mg"},
	{[]string{"turmeric", "curcumin"}, "curcumin", 200, "mg"},
	{[]string{"probiotic", "kefir", "kimchi", "sauerkraut"}, "lacto-acidophilus", 1, "billion CFU"},
}

// InferIngredients guesses the interaction-relevant nutrient content of a
// food or unbranded supplement from its name. Used when influencer analysis
// mentions an item the catalog does not carry.
func (c *Catalog) InferIngredients(name string) []models.Ingredient {
	normalized := normalize(name)
	var out []models.Ingredient
	seen := make(map[string]bool)

	for _, entry := range nutrientKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(normalized, kw) {
				if _, ok := c.nutrients[entry.nutrientID]; ok && !seen[entry.nutrientID] {
					out = append(out, models.Ingredient{
						NutrientID: entry.nutrientID,
						Amount:     entry.amount,
						Unit:       entry.unit,
					})
					seen[entry.nutrientID] = true
				}
				break
			}
		}
	}
	return out
}

// FoodCategory maps a mention to a product category, preferring the LLM's
// category hint when it names a known value.
func FoodCategory(name, hint string) models.ProductCategory {
	switch models.ProductCategory(strings.ToUpper(strings.TrimSpace(hint))) {
	case models.ProductFoodMeat, models.ProductFoodEgg, models.ProductFoodVegetable, models.ProductFoodOrgan,
		models.ProductBeverageTea, models.ProductBeverageSoy, models.ProductBeverageJuice, models.ProductBeverageOther,
		models.ProductMultivitamin, models.ProductSingleVitamin, models.ProductMineral, models.ProductOmega,
		models.ProductProtein, models.ProductProbiotic, models.ProductHerbal, models.ProductSports,
		models.ProductSleep, models.ProductEnergy:
		return models.ProductCategory(strings.ToUpper(strings.TrimSpace(hint)))
	}

	n := normalize(name)
	switch {
	case strings.Contains(n, "tea") || strings.Contains(n, "matcha"):
		return models.ProductBeverageTea
	case strings.Contains(n, "juice"):
		return models.ProductBeverageJuice
	case strings.Contains(n, "soy") || strings.Contains(n, "tofu"):
		return models.ProductBeverageSoy
	case strings.Contains(n, "egg"):
		return models.ProductFoodEgg
	case strings.Contains(n, "liver") || strings.Contains(n, "organ"):
		return models.ProductFoodOrgan
	case strings.Contains(n, "beef") || strings.Contains(n, "chicken") || strings.Contains(n, "pork") || strings.Contains(n, "fish"):
		return models.ProductFoodMeat
	case strings.Contains(n, "spinach") || strings.Contains(n, "broccoli") || strings.Contains(n, "kale") || strings.Contains(n, "vegetable"):
		return models.ProductFoodVegetable
	default:
		return models.ProductBeverageOther
	}
}

// TimingFromText maps free-text timing wording to a timing preference.
// Unrecognized wording falls back to ANYTIME, which the scheduler places in
// the breakfast slot.
func TimingFromText(text string) models.TimingPreference {
	t := normalize(text)
	switch {
	case t == "":
		return models.TimingAnytime
	case strings.Contains(t, "empty stomach") || strings.Contains(t, "before breakfast") || strings.Contains(t, "fasted"):
		return models.TimingMorningEmptyStomach
	case strings.Contains(t, "breakfast") || strings.Contains(t, "morning"):
		return models.TimingMorningWithFood
	case strings.Contains(t, "before bed") || strings.Contains(t, "bedtime") || strings.Contains(t, "sleep"):
		return models.TimingBeforeBed
	case strings.Contains(t, "pre-workout") || strings.Contains(t, "before workout"):
		return models.TimingPreWorkout
	case strings.Contains(t, "post-workout") || strings.Contains(t, "after workout"):
		return models.TimingPostWorkout
	case strings.Contains(t, "afternoon") || strings.Contains(t, "lunch"):
		return models.TimingAfternoon
	case strings.Contains(t, "evening") || strings.Contains(t, "dinner"):
		return models.TimingEvening
	default:
		return models.TimingAnytime
	}
}
