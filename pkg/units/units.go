// Package units normalizes supplement label amounts across units so that
// dosage-gated conflict rules can compare thresholds without per-rule
// unit special cases.
package units

import "strings"

// Milligram factors for plain mass units.
var massInMg = map[string]float64{
	"g":   1000,
	"mg":  1,
	"mcg": 0.001,
	"ug":  0.001,
	"µg":  0.001,
}

// IU is substance-specific: the mass of one international unit differs per
// nutrient. Factors are mg per IU for the nutrients the rule table gates on.
// 400 IU of d-alpha-tocopherol is the commonly cited 270 mg threshold.
var iuToMg = map[string]float64{
	"vit-e":  0.67,
	"vit-d2": 0.000025,
	"vit-d3": 0.000025,
	"vit-a":  0.0003,
}

// Normalize converts amount from one unit to another for the given nutrient.
// It reports false when no conversion is defined; callers must then skip the
// comparison rather than guess.
func Normalize(nutrientID string, amount float64, fromUnit, toUnit string) (float64, bool) {
	from := canonical(fromUnit)
	to := canonical(toUnit)
	if from == to {
		return amount, true
	}

	inMg, ok := toMilligrams(nutrientID, amount, from)
	if !ok {
		return 0, false
	}
	return fromMilligrams(nutrientID, inMg, to)
}

func toMilligrams(nutrientID string, amount float64, unit string) (float64, bool) {
	if f, ok := massInMg[unit]; ok {
		return amount * f, true
	}
	if unit == "iu" {
		if f, ok := iuToMg[nutrientID]; ok {
			return amount * f, true
		}
	}
	return 0, false
}

func fromMilligrams(nutrientID string, mg float64, unit string) (float64, bool) {
	if f, ok := massInMg[unit]; ok {
		return mg / f, true
	}
	if unit == "iu" {
		if f, ok := iuToMg[nutrientID]; ok {
			return mg / f, true
		}
	}
	return 0, false
}

func canonical(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
