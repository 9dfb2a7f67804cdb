package conflict

import "github.com/sundial-labs/sundial-engine/pkg/models"

// DetectSynergies returns every synergy whose nutrient set is fully covered
// by the product selection, annotated with the products contributing each
// nutrient. Products contributing nothing to a synergy are not listed on it.
func DetectSynergies(products []models.Product, synergies []models.Synergy) []models.DetectedSynergy {
	detected := []models.DetectedSynergy{}
	for _, syn := range synergies {
		contributors := map[string]bool{}
		covered := true
		for _, nutrientID := range syn.Nutrients {
			found := false
			for i := range products {
				if products[i].Ingredient(nutrientID) != nil {
					contributors[products[i].ID] = true
					found = true
				}
			}
			if !found {
				covered = false
				break
			}
		}
		if !covered {
			continue
		}

		ids := make([]string, 0, len(contributors))
		for i := range products {
			if contributors[products[i].ID] {
				ids = append(ids, products[i].ID)
			}
		}
		detected = append(detected, models.DetectedSynergy{Synergy: syn, ProductIDs: ids})
	}
	return detected
}
