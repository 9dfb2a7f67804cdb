package models

import (
	"encoding/json"
	"time"

	"github.com/sundial-labs/sundial-engine/pkg/jsonutil"
)

// Mention is one supplement or food the LLM extracted from free text.
type Mention struct {
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Dosage    string `json:"dosage,omitempty"`
	Timing    string `json:"timing,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
	IsFood    bool   `json:"is_food,omitempty"`
	Category  string `json:"category,omitempty"`
}

// UnmarshalJSON tolerates the type drift LLMs produce: dosages as bare
// numbers, timings as booleans, and so on. Every text field goes through the
// flexible conversion instead of failing the whole extraction.
func (m *Mention) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      json.RawMessage `json:"name"`
		Brand     json.RawMessage `json:"brand"`
		Dosage    json.RawMessage `json:"dosage"`
		Timing    json.RawMessage `json:"timing"`
		Reasoning json.RawMessage `json:"reasoning"`
		IsFood    bool            `json:"is_food"`
		Category  json.RawMessage `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Name = jsonutil.FlexibleStringValue(raw.Name)
	m.Brand = jsonutil.FlexibleStringValue(raw.Brand)
	m.Dosage = jsonutil.FlexibleStringValue(raw.Dosage)
	m.Timing = jsonutil.FlexibleStringValue(raw.Timing)
	m.Reasoning = jsonutil.FlexibleStringValue(raw.Reasoning)
	m.IsFood = raw.IsFood
	m.Category = jsonutil.FlexibleStringValue(raw.Category)
	return nil
}

// ExtractionResult is the raw, validated shape parsed from the LLM response.
type ExtractionResult struct {
	Supplements      []Mention `json:"supplements"`
	Warnings         []string  `json:"warnings"`
	CredibilityScore int       `json:"credibilityScore"`
}

// UnmarshalJSON accepts a credibility score delivered as a number, a float,
// or a quoted number.
func (r *ExtractionResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Supplements      []Mention       `json:"supplements"`
		Warnings         []string        `json:"warnings"`
		CredibilityScore json.RawMessage `json:"credibilityScore"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Supplements = raw.Supplements
	r.Warnings = raw.Warnings
	r.CredibilityScore = jsonutil.FlexibleIntValue(raw.CredibilityScore)
	return nil
}

// Clamp forces the credibility score into [0,100] and nil-safe slices.
// LLM output is untrusted; the boundary normalizes it before anything
// downstream sees it.
func (r *ExtractionResult) Clamp() {
	if r.CredibilityScore < 0 {
		r.CredibilityScore = 0
	}
	if r.CredibilityScore > 100 {
		r.CredibilityScore = 100
	}
	if r.Supplements == nil {
		r.Supplements = []Mention{}
	}
	if r.Warnings == nil {
		r.Warnings = []string{}
	}
}

// Recommendation is one extracted mention resolved against the product
// catalog. MatchedProduct may be a catalog product or a synthetic one built
// from the mention; it is nil when nothing could be resolved.
type Recommendation struct {
	ProductName    string   `json:"product_name"`
	Brand          string   `json:"brand,omitempty"`
	Dosage         string   `json:"dosage,omitempty"`
	Timing         string   `json:"timing,omitempty"`
	Reasoning      string   `json:"reasoning,omitempty"`
	Confidence     float64  `json:"confidence"`
	MatchedProduct *Product `json:"matched_product,omitempty"`
}

// InfluencerAnalysis is the full result of analyzing influencer content.
type InfluencerAnalysis struct {
	ID               string           `json:"id"`
	SourceText       string           `json:"source_text"`
	AnalyzedAt       time.Time        `json:"analyzed_at"`
	Recommendations  []Recommendation `json:"recommendations"`
	CredibilityScore int              `json:"credibility_score"`
	Warnings         []string         `json:"warnings"`
}
