package repository

import (
	"time"

	"localization-srv/internal/model"
)

// SearchOptions is the query sent to a match source.
type SearchOptions struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	BrandID        string
	Limit          int

	AssetType              string
	TargetAudience         string
	TherapeuticArea        string
	BrandGuidelines        []string
	RegulatoryRequirements []string
}

// RawMatch is a match as returned by a source, before validation and ranking.
type RawMatch struct {
	TMUnitID              string                 `json:"tm_unit_id"`
	SourceText            string                 `json:"source_text"`
	TargetText            string                 `json:"target_text"`
	MatchPercentage       int                    `json:"match_percentage"`
	BrandConsistencyScore int                    `json:"brand_consistency_score"`
	RegulatoryStatus      model.RegulatoryStatus `json:"regulatory_status"`
	CulturalContext       *model.CulturalContext `json:"cultural_context,omitempty"`
	Confidence            int                    `json:"confidence"`
	UsageCount            int                    `json:"usage_count"`
	LastUsed              *time.Time             `json:"last_used,omitempty"`
	Origin                string                 `json:"origin"`
}

type IndexOptions struct {
	Units []model.TMUnit
}

type SaveMatchesOptions struct {
	Key     string
	Matches []RawMatch
	TTL     time.Duration
}
