package model

import "time"

// TMUnit is an approved source/target pair stored in translation memory.
type TMUnit struct {
	ID                    string           `json:"id"`
	SourceText            string           `json:"source_text"`
	TargetText            string           `json:"target_text"`
	SourceLanguage        string           `json:"source_language"`
	TargetLanguage        string           `json:"target_language"`
	BrandID               string           `json:"brand_id"`
	AssetType             string           `json:"asset_type,omitempty"`
	TherapeuticArea       string           `json:"therapeutic_area,omitempty"`
	BrandConsistencyScore int              `json:"brand_consistency_score"`
	RegulatoryStatus      RegulatoryStatus `json:"regulatory_status"`
	// CulturalAppropriateness is nil when the unit was never culturally reviewed.
	CulturalAppropriateness *int       `json:"cultural_appropriateness,omitempty"`
	CulturalNotes           []string   `json:"cultural_notes,omitempty"`
	Confidence              int        `json:"confidence"`
	UsageCount              int        `json:"usage_count"`
	LastUsed                *time.Time `json:"last_used,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
}

// CulturalContext returns the unit's cultural review, or nil when absent.
func (u TMUnit) CulturalContext() *CulturalContext {
	if u.CulturalAppropriateness == nil {
		return nil
	}
	return &CulturalContext{Appropriateness: *u.CulturalAppropriateness, Notes: u.CulturalNotes}
}
