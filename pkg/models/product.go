package models

import "fmt"

// ProductCategory classifies a product in the catalog.
type ProductCategory string

const (
	ProductMultivitamin  ProductCategory = "MULTIVITAMIN"
	ProductSingleVitamin ProductCategory = "SINGLE_VITAMIN"
	ProductMineral       ProductCategory = "MINERAL"
	ProductOmega         ProductCategory = "OMEGA"
	ProductProtein       ProductCategory = "PROTEIN"
	ProductProbiotic     ProductCategory = "PROBIOTIC"
	ProductHerbal        ProductCategory = "HERBAL"
	ProductSports        ProductCategory = "SPORTS"
	ProductBeauty        ProductCategory = "BEAUTY"
	ProductJoint         ProductCategory = "JOINT"
	ProductImmunity      ProductCategory = "IMMUNITY"
	ProductSleep         ProductCategory = "SLEEP"
	ProductEnergy        ProductCategory = "ENERGY"

	// Everyday foods and beverages detected from influencer content.
	ProductFoodMeat      ProductCategory = "FOOD_MEAT"
	ProductFoodEgg       ProductCategory = "FOOD_EGG"
	ProductFoodVegetable ProductCategory = "FOOD_VEGETABLE"
	ProductFoodOrgan     ProductCategory = "FOOD_ORGAN"
	ProductBeverageTea   ProductCategory = "BEVERAGE_TEA"
	ProductBeverageSoy   ProductCategory = "BEVERAGE_SOY"
	ProductBeverageJuice ProductCategory = "BEVERAGE_JUICE"
	ProductBeverageOther ProductCategory = "BEVERAGE_OTHER"
)

// TimingPreference is a per-product hint used to seed initial slot placement.
type TimingPreference string

const (
	TimingMorningEmptyStomach TimingPreference = "MORNING_EMPTY_STOMACH"
	TimingMorningWithFood     TimingPreference = "MORNING_WITH_FOOD"
	TimingAfternoon           TimingPreference = "AFTERNOON"
	TimingEvening             TimingPreference = "EVENING"
	TimingBeforeBed           TimingPreference = "BEFORE_BED"
	TimingPreWorkout          TimingPreference = "PRE_WORKOUT"
	TimingPostWorkout         TimingPreference = "POST_WORKOUT"
	TimingAnytime             TimingPreference = "ANYTIME"
)

// Ingredient is a single (nutrient, amount, unit) entry on a product label.
type Ingredient struct {
	NutrientID string   `json:"nutrient_id"`
	Amount     float64  `json:"amount"`
	Unit       string   `json:"unit"`
	PercentDV  *float64 `json:"percent_dv,omitempty"`
}

// Product is a purchasable or consumable item composed of nutrients.
// Catalog products are immutable; synthetic products (inferred from free
// text) are constructed at runtime with the same shape.
type Product struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Brand            string           `json:"brand,omitempty"`
	Category         ProductCategory  `json:"category"`
	Ingredients      []Ingredient     `json:"ingredients"`
	DosagePerServing string           `json:"dosage_per_serving,omitempty"`
	ServingsPerDay   int              `json:"servings_per_day,omitempty"`
	OptimalTiming    TimingPreference `json:"optimal_timing"`
	Price            *float64         `json:"price,omitempty"`
	Rating           *float64         `json:"rating,omitempty"`
}

// Validate checks that the product is well-formed enough for detection and
// scheduling. It does not resolve nutrient references; the catalog does that.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product has no id")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s has no name", p.ID)
	}
	for i, ing := range p.Ingredients {
		if ing.NutrientID == "" {
			return fmt.Errorf("product %s ingredient %d has no nutrient reference", p.ID, i)
		}
		if ing.Amount < 0 {
			return fmt.Errorf("product %s ingredient %s has negative amount", p.ID, ing.NutrientID)
		}
	}
	return nil
}

// NutrientIDs returns the set of nutrient ids present in the product.
func (p *Product) NutrientIDs() map[string]bool {
	ids := make(map[string]bool, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		if ing.NutrientID != "" {
			ids[ing.NutrientID] = true
		}
	}
	return ids
}

// Ingredient returns the first ingredient entry for the given nutrient id,
// or nil if the product does not contain it.
func (p *Product) Ingredient(nutrientID string) *Ingredient {
	for i := range p.Ingredients {
		if p.Ingredients[i].NutrientID == nutrientID {
			return &p.Ingredients[i]
		}
	}
	return nil
}
