package elasticsearch

import (
	"time"

	"localization-srv/internal/model"
)

// Mapping is the index mapping for translation memory documents.
const Mapping = `{
  "mappings": {
    "properties": {
      "source_text":              {"type": "text"},
      "target_text":              {"type": "text", "index": false},
      "source_language":          {"type": "keyword"},
      "target_language":          {"type": "keyword"},
      "brand_id":                 {"type": "keyword"},
      "asset_type":               {"type": "keyword"},
      "therapeutic_area":         {"type": "keyword"},
      "brand_consistency_score":  {"type": "integer"},
      "regulatory_status":        {"type": "keyword"},
      "cultural_appropriateness": {"type": "integer"},
      "cultural_notes":           {"type": "keyword"},
      "confidence":               {"type": "integer"},
      "usage_count":              {"type": "integer"},
      "last_used":                {"type": "date"}
    }
  }
}`

type document struct {
	SourceText              string                 `json:"source_text"`
	TargetText              string                 `json:"target_text"`
	SourceLanguage          string                 `json:"source_language"`
	TargetLanguage          string                 `json:"target_language"`
	BrandID                 string                 `json:"brand_id"`
	AssetType               string                 `json:"asset_type,omitempty"`
	TherapeuticArea         string                 `json:"therapeutic_area,omitempty"`
	BrandConsistencyScore   int                    `json:"brand_consistency_score"`
	RegulatoryStatus        model.RegulatoryStatus `json:"regulatory_status"`
	CulturalAppropriateness *int                   `json:"cultural_appropriateness,omitempty"`
	CulturalNotes           []string               `json:"cultural_notes,omitempty"`
	Confidence              int                    `json:"confidence"`
	UsageCount              int                    `json:"usage_count"`
	LastUsed                *time.Time             `json:"last_used,omitempty"`
}

func toDocument(u model.TMUnit) document {
	return document{
		SourceText:              u.SourceText,
		TargetText:              u.TargetText,
		SourceLanguage:          u.SourceLanguage,
		TargetLanguage:          u.TargetLanguage,
		BrandID:                 u.BrandID,
		AssetType:               u.AssetType,
		TherapeuticArea:         u.TherapeuticArea,
		BrandConsistencyScore:   u.BrandConsistencyScore,
		RegulatoryStatus:        u.RegulatoryStatus,
		CulturalAppropriateness: u.CulturalAppropriateness,
		CulturalNotes:           u.CulturalNotes,
		Confidence:              u.Confidence,
		UsageCount:              u.UsageCount,
		LastUsed:                u.LastUsed,
	}
}
