package model

import "time"

type RegulatoryStatus string

const (
	RegulatoryStatusApproved RegulatoryStatus = "approved"
	RegulatoryStatusPending  RegulatoryStatus = "pending"
	RegulatoryStatusRejected RegulatoryStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s RegulatoryStatus) Valid() bool {
	switch s {
	case RegulatoryStatusApproved, RegulatoryStatusPending, RegulatoryStatusRejected:
		return true
	}
	return false
}

// CulturalContext is the cultural review attached to a TM unit.
type CulturalContext struct {
	Appropriateness int      `json:"appropriateness"`
	Notes           []string `json:"notes,omitempty"`
}

type ValidationFlags struct {
	BrandTerminology     bool `json:"brand_terminology"`
	RegulatoryCompliance bool `json:"regulatory_compliance"`
	CulturalSensitivity  bool `json:"cultural_sensitivity"`
}

// Match is a ranked reuse candidate for one segment.
type Match struct {
	TMUnitID              string           `json:"tm_unit_id"`
	SegmentID             string           `json:"segment_id"`
	SourceText            string           `json:"source_text"`
	TargetText            string           `json:"target_text"`
	MatchPercentage       int              `json:"match_percentage"`
	BrandConsistencyScore int              `json:"brand_consistency_score"`
	RegulatoryStatus      RegulatoryStatus `json:"regulatory_status"`
	CulturalContext       *CulturalContext `json:"cultural_context,omitempty"`
	Confidence            int              `json:"confidence"`
	ContentType           SegmentType      `json:"content_type"`
	ValidationFlags       ValidationFlags  `json:"validation_flags"`
	UsageCount            int              `json:"usage_count"`
	LastUsed              *time.Time       `json:"last_used,omitempty"`
	Origin                string           `json:"origin"`
}

// LocalizationContext scopes a TM lookup.
type LocalizationContext struct {
	BrandID                string   `json:"brand_id"`
	SourceLanguage         string   `json:"source_language"`
	TargetLanguage         string   `json:"target_language"`
	AssetType              string   `json:"asset_type"`
	TargetAudience         string   `json:"target_audience"`
	TherapeuticArea        string   `json:"therapeutic_area"`
	BrandGuidelines        []string `json:"brand_guidelines,omitempty"`
	RegulatoryRequirements []string `json:"regulatory_requirements,omitempty"`
}
