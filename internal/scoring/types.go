package scoring

import "localization-srv/internal/model"

type ScoreInput struct {
	DocumentID      string
	Content         model.Content
	TargetMarkets   []string
	TargetLanguages []string
	// Asset metadata. Structured content may carry the same keys and is used when these are empty.
	AssetType      string
	Channels       []string
	ImageCount     int
	HasInfographic bool
}

// QualityInput describes one market. Nil signals fall back to derived or default values.
type QualityInput struct {
	DocumentID              string
	Market                  string
	Metrics                 model.ComplexityMetrics
	BrandConsistency        *int
	CulturalAppropriateness *int
}

type RiskInput = QualityInput

type ReadinessInput struct {
	DocumentID       string
	Markets          []string
	Metrics          model.ComplexityMetrics
	BrandConsistency *int
	// CulturalAppropriateness is keyed by market. Missing markets use the derived value.
	CulturalAppropriateness map[string]int
}
