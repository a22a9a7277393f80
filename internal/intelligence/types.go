package intelligence

import "localization-srv/internal/model"

type RegulatoryQuery struct {
	BrandID         string
	Markets         []string
	TherapeuticArea string
	Text            string
}

type CulturalQuery struct {
	Text            string
	Markets         []string
	TherapeuticArea string
}

// Config holds the intelligence weights.
type Config struct {
	AvoidedTermPenalty   int
	MissingPillarPenalty int

	CulturalReferencePenalty int
	SensitiveTopicPenalty    int
	MarketNotePenalty        int

	LLMEnabled bool
}

func DefaultConfig() Config {
	return Config{
		AvoidedTermPenalty:       15,
		MissingPillarPenalty:     10,
		CulturalReferencePenalty: 10,
		SensitiveTopicPenalty:    15,
		MarketNotePenalty:        5,
	}
}

// DefaultBrandProfile is used when a brand has no stored profile.
func DefaultBrandProfile(brandID string) model.BrandProfile {
	return model.BrandProfile{
		BrandID: brandID,
		Name:    "default",
		Tone:    []string{"professional", "empathetic", "clear"},
		AvoidedTerms: []string{
			"cure", "guaranteed", "miracle", "100% safe", "no side effects", "risk-free", "best in class",
		},
	}
}

// CulturalReview is the structured answer requested from the LLM.
type CulturalReview struct {
	Appropriateness int      `json:"appropriateness" jsonschema:"required,minimum=0,maximum=100,description=Cultural appropriateness score for the target markets"`
	Issues          []string `json:"issues" jsonschema:"required,description=Concrete cultural issues found in the text"`
	Suggestions     []string `json:"suggestions" jsonschema:"required,description=Suggested adaptations"`
}
