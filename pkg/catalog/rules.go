package catalog

import "github.com/sundial-labs/sundial-engine/pkg/models"

// defaultRules is the built-in nutrient-interaction rule table. Matching is
// symmetric; each entry is stated once regardless of nutrient order. The
// vitamin E rules are dosage-gated: below 400 IU (268 mg) the bleeding-risk
// interaction with fish oil is not clinically relevant.
func defaultRules() []models.ConflictRule {
	vitECondition := func() *models.DosageCondition {
		return &models.DosageCondition{NutrientID: "vit-e", Threshold: 400, Unit: "IU"}
	}

	return []models.ConflictRule{
		// Critical
		{
			NutrientA: "iron", NutrientB: "calcium",
			Severity: models.SeverityCritical, Type: models.ConflictAbsorptionCompetition,
			Explanation:    "Calcium strongly inhibits iron absorption (50-70% reduction); keep at least 4 hours apart.",
			Mechanism:      "Calcium and iron compete for binding at the intestinal DMT1 transporter.",
			TimeGapMinutes: 240,
		},
		{
			NutrientA: "iron", NutrientB: "tannin",
			Severity: models.SeverityCritical, Type: models.ConflictAbsorptionInhibition,
			Explanation:    "Tea polyphenols (tannic acid) form insoluble complexes with iron, blocking 60-90% of absorption.",
			Mechanism:      "Tannins chelate iron ions into non-absorbable complexes.",
			TimeGapMinutes: 120,
		},
		{
			NutrientA: "iron", NutrientB: "caffeine",
			Severity: models.SeverityCritical, Type: models.ConflictAbsorptionInhibition,
			Explanation:    "Caffeine markedly reduces iron absorption (roughly 40-60%).",
			Mechanism:      "Polyphenols accompanying caffeine bind dietary iron.",
			TimeGapMinutes: 120,
		},

		// High
		{
			NutrientA: "calcium", NutrientB: "magnesium",
			Severity: models.SeverityHigh, Type: models.ConflictAbsorptionCompetition,
			Explanation:    "High-dose calcium competitively inhibits magnesium absorption.",
			Mechanism:      "Shared intestinal transport channels.",
			TimeGapMinutes: 120,
		},
		{
			NutrientA: "calcium", NutrientB: "zinc",
			Severity: models.SeverityHigh, Type: models.ConflictAbsorptionCompetition,
			Explanation:    "High-dose calcium reduces zinc absorption efficiency.",
			Mechanism:      "Competitive inhibition of zinc transporters.",
			TimeGapMinutes: 120,
		},
		{
			NutrientA: "iron", NutrientB: "zinc",
			Severity: models.SeverityHigh, Type: models.ConflictAbsorptionCompetition,
			Explanation:    "Iron and zinc compete for absorption at high doses.",
			Mechanism:      "Shared divalent metal ion transport system.",
			TimeGapMinutes: 120,
		},
		{
			NutrientA: "vit-e", NutrientB: "epa",
			Severity: models.SeverityHigh, Type: models.ConflictAdverseInteraction,
			Explanation:    "High-dose vitamin E (>400 IU) taken with fish oil increases bleeding risk.",
			Mechanism:      "Both have anticoagulant effects; the combination is additive.",
			TimeGapMinutes: 0, // dosage-triggered, not timing-triggered
			Condition:      vitECondition(),
		},
		{
			NutrientA: "vit-e", NutrientB: "dha",
			Severity: models.SeverityHigh, Type: models.ConflictAdverseInteraction,
			Explanation:    "High-dose vitamin E (>400 IU) taken with fish oil increases bleeding risk.",
			Mechanism:      "Both have anticoagulant effects; the combination is additive.",
			TimeGapMinutes: 0,
			Condition:      vitECondition(),
		},

		// Medium
		{
			NutrientA: "vit-c", NutrientB: "copper",
			Severity: models.SeverityMedium, Type: models.ConflictAbsorptionInhibition,
			Explanation:    "High-dose vitamin C (>1000mg) may reduce copper absorption.",
			Mechanism:      "Competitive inhibition of copper ion uptake.",
			TimeGapMinutes: 60,
		},
		{
			NutrientA: "zinc", NutrientB: "copper",
			Severity: models.SeverityMedium, Type: models.ConflictAbsorptionCompetition,
			Explanation:    "High-dose zinc (>50mg) strongly suppresses copper absorption; long-term use risks copper deficiency.",
			Mechanism:      "Zinc induces metallothionein, which preferentially binds copper.",
			TimeGapMinutes: 120,
		},
		{
			NutrientA: "vit-c", NutrientB: "epa",
			Severity: models.SeverityMedium, Type: models.ConflictOxidationRisk,
			Explanation:    "High-dose vitamin C (>1000mg) taken with fish oil may accelerate lipid oxidation, reducing potency.",
			Mechanism:      "Ascorbate can act as a pro-oxidant toward lipids under some conditions.",
			TimeGapMinutes: 120,
		},
		{
			NutrientA: "vit-c", NutrientB: "dha",
			Severity: models.SeverityMedium, Type: models.ConflictOxidationRisk,
			Explanation:    "High-dose vitamin C (>1000mg) taken with fish oil may accelerate lipid oxidation, reducing potency.",
			Mechanism:      "Ascorbate can act as a pro-oxidant toward lipids under some conditions.",
			TimeGapMinutes: 120,
		},
		{
			NutrientA: "calcium", NutrientB: "protein",
			Severity: models.SeverityMedium, Type: models.ConflictAbsorptionCompetition,
			Explanation:    "High calcium intake may impair protein absorption; separate by 1-2 hours.",
			Mechanism:      "Calcium can form insoluble complexes with protein.",
			TimeGapMinutes: 90,
		},

		// Low
		{
			NutrientA: "vit-e", NutrientB: "vit-c",
			Severity: models.SeverityLow, Type: models.ConflictSynergyReduced,
			Explanation:    "Vitamins E and C are synergistic, but large doses taken together can oxidize each other; separate them.",
			Mechanism:      "Mutual redox interaction can reduce the stability of both.",
			TimeGapMinutes: 60,
		},
		{
			NutrientA: "iron", NutrientB: "protein",
			Severity: models.SeverityLow, Type: models.ConflictAbsorptionEnhanced,
			Explanation:    "Protein enhances iron absorption; beneficial, but watch for iron overload.",
			Mechanism:      "Amino acids assist iron transport.",
			TimeGapMinutes: 0,
		},
	}
}
