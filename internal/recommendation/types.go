package recommendation

import "localization-srv/internal/model"

// SegmentMatches are one segment's ranked matches.
type SegmentMatches struct {
	SegmentID string
	Matches   []model.Match
}

type AggregateInput struct {
	DocumentID string
	// Segments keeps the document order.
	Segments   []SegmentMatches
	Brand      model.BrandIntelligence
	Regulatory model.RegulatoryIntelligence
	Cultural   model.CulturalIntelligence
}

type Config struct {
	BestMatchConfidenceMin int
	BestMatchLimit         int
	SuggestionsPerSegment  int
	BrandConsistencyMin    int
	CulturalMin            int
}

func DefaultConfig() Config {
	return Config{
		BestMatchConfidenceMin: 80,
		BestMatchLimit:         5,
		SuggestionsPerSegment:  3,
		BrandConsistencyMin:    80,
		CulturalMin:            70,
	}
}
