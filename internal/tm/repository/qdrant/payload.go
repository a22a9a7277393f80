package qdrant

import (
	"time"

	"localization-srv/internal/model"
	"localization-srv/internal/tm/repository"
)

const (
	fieldSourceText              = "source_text"
	fieldTargetText              = "target_text"
	fieldSourceLanguage          = "source_language"
	fieldTargetLanguage          = "target_language"
	fieldBrandID                 = "brand_id"
	fieldAssetType               = "asset_type"
	fieldTherapeuticArea         = "therapeutic_area"
	fieldBrandConsistencyScore   = "brand_consistency_score"
	fieldRegulatoryStatus        = "regulatory_status"
	fieldCulturalAppropriateness = "cultural_appropriateness"
	fieldCulturalNotes           = "cultural_notes"
	fieldConfidence              = "confidence"
	fieldUsageCount              = "usage_count"
	fieldLastUsed                = "last_used"
)

func toPayload(u model.TMUnit) map[string]any {
	payload := map[string]any{
		fieldSourceText:            u.SourceText,
		fieldTargetText:            u.TargetText,
		fieldSourceLanguage:        u.SourceLanguage,
		fieldTargetLanguage:        u.TargetLanguage,
		fieldBrandID:               u.BrandID,
		fieldAssetType:             u.AssetType,
		fieldTherapeuticArea:       u.TherapeuticArea,
		fieldBrandConsistencyScore: int64(u.BrandConsistencyScore),
		fieldRegulatoryStatus:      string(u.RegulatoryStatus),
		fieldConfidence:            int64(u.Confidence),
		fieldUsageCount:            int64(u.UsageCount),
	}
	if u.CulturalAppropriateness != nil {
		payload[fieldCulturalAppropriateness] = int64(*u.CulturalAppropriateness)
	}
	if len(u.CulturalNotes) > 0 {
		notes := make([]any, len(u.CulturalNotes))
		for i, n := range u.CulturalNotes {
			notes[i] = n
		}
		payload[fieldCulturalNotes] = notes
	}
	if u.LastUsed != nil {
		payload[fieldLastUsed] = u.LastUsed.UTC().Format(time.RFC3339)
	}
	return payload
}

func fromPayload(id string, score float32, payload map[string]any) repository.RawMatch {
	m := repository.RawMatch{
		TMUnitID:              id,
		SourceText:            str(payload[fieldSourceText]),
		TargetText:            str(payload[fieldTargetText]),
		MatchPercentage:       scoreToPercentage(score),
		BrandConsistencyScore: integer(payload[fieldBrandConsistencyScore]),
		RegulatoryStatus:      model.RegulatoryStatus(str(payload[fieldRegulatoryStatus])),
		Confidence:            integer(payload[fieldConfidence]),
		UsageCount:            integer(payload[fieldUsageCount]),
		Origin:                Origin,
	}
	if v, ok := payload[fieldCulturalAppropriateness]; ok && v != nil {
		m.CulturalContext = &model.CulturalContext{
			Appropriateness: integer(v),
			Notes:           strs(payload[fieldCulturalNotes]),
		}
	}
	if t, err := time.Parse(time.RFC3339, str(payload[fieldLastUsed])); err == nil {
		m.LastUsed = &t
	}
	return m
}

// scoreToPercentage maps a cosine similarity to 0-100.
func scoreToPercentage(score float32) int {
	p := int(float64(score)*100 + 0.5)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func integer(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func strs(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
