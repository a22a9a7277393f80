package http

import (
	"fmt"
	"mime/multipart"
	"time"

	"localization-srv/internal/model"
	"localization-srv/internal/tm"
)

type localizationContextReq struct {
	BrandID                string   `json:"brand_id"`
	SourceLanguage         string   `json:"source_language"`
	TargetLanguage         string   `json:"target_language"`
	AssetType              string   `json:"asset_type"`
	TargetAudience         string   `json:"target_audience"`
	TherapeuticArea        string   `json:"therapeutic_area"`
	BrandGuidelines        []string `json:"brand_guidelines"`
	RegulatoryRequirements []string `json:"regulatory_requirements"`
}

func (r localizationContextReq) toModel() model.LocalizationContext {
	return model.LocalizationContext{
		BrandID:                r.BrandID,
		SourceLanguage:         r.SourceLanguage,
		TargetLanguage:         r.TargetLanguage,
		AssetType:              r.AssetType,
		TargetAudience:         r.TargetAudience,
		TherapeuticArea:        r.TherapeuticArea,
		BrandGuidelines:        r.BrandGuidelines,
		RegulatoryRequirements: r.RegulatoryRequirements,
	}
}

type matchSegmentReq struct {
	ID   string `json:"id"`
	Text string `json:"text" binding:"required"`
	Type string `json:"type"`
}

type matchReq struct {
	Segments []matchSegmentReq     `json:"segments" binding:"required,min=1,dive"`
	Context  localizationContextReq `json:"context"`
}

func (r matchReq) toSegments() []model.Segment {
	segments := make([]model.Segment, len(r.Segments))
	for i, s := range r.Segments {
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("seg-%d", i+1)
		}
		segType := model.SegmentType(s.Type)
		if segType == "" {
			segType = model.SegmentTypeGeneral
		}
		segments[i] = model.Segment{ID: id, Text: s.Text, Type: segType, Start: -1}
	}
	return segments
}

type segmentMatchesResp struct {
	SegmentID string        `json:"segment_id"`
	Matches   []model.Match `json:"matches"`
}

type matchResp struct {
	Results []segmentMatchesResp `json:"results"`
}

// newMatchResp lists results in request order.
func (h *handler) newMatchResp(segments []model.Segment, matches map[string][]model.Match) matchResp {
	resp := matchResp{Results: make([]segmentMatchesResp, len(segments))}
	for i, s := range segments {
		resp.Results[i] = segmentMatchesResp{SegmentID: s.ID, Matches: matches[s.ID]}
	}
	return resp
}

type unitReq struct {
	ID                      string     `json:"id"`
	SourceText              string     `json:"source_text" binding:"required"`
	TargetText              string     `json:"target_text" binding:"required"`
	SourceLanguage          string     `json:"source_language" binding:"required"`
	TargetLanguage          string     `json:"target_language" binding:"required"`
	BrandID                 string     `json:"brand_id"`
	AssetType               string     `json:"asset_type"`
	TherapeuticArea         string     `json:"therapeutic_area"`
	BrandConsistencyScore   int        `json:"brand_consistency_score" binding:"min=0,max=100"`
	RegulatoryStatus        string     `json:"regulatory_status" binding:"omitempty,oneof=approved pending rejected"`
	CulturalAppropriateness *int       `json:"cultural_appropriateness" binding:"omitempty,min=0,max=100"`
	CulturalNotes           []string   `json:"cultural_notes"`
	Confidence              int        `json:"confidence" binding:"min=0,max=100"`
	UsageCount              int        `json:"usage_count" binding:"min=0"`
	LastUsed                *time.Time `json:"last_used"`
}

type upsertReq struct {
	Units []unitReq `json:"units" binding:"required,min=1,dive"`
}

func (r upsertReq) toInput() tm.UpsertInput {
	units := make([]model.TMUnit, len(r.Units))
	for i, u := range r.Units {
		units[i] = model.TMUnit{
			ID:                      u.ID,
			SourceText:              u.SourceText,
			TargetText:              u.TargetText,
			SourceLanguage:          u.SourceLanguage,
			TargetLanguage:          u.TargetLanguage,
			BrandID:                 u.BrandID,
			AssetType:               u.AssetType,
			TherapeuticArea:         u.TherapeuticArea,
			BrandConsistencyScore:   u.BrandConsistencyScore,
			RegulatoryStatus:        model.RegulatoryStatus(u.RegulatoryStatus),
			CulturalAppropriateness: u.CulturalAppropriateness,
			CulturalNotes:           u.CulturalNotes,
			Confidence:              u.Confidence,
			UsageCount:              u.UsageCount,
			LastUsed:                u.LastUsed,
		}
	}
	return tm.UpsertInput{Units: units}
}

type upsertResp struct {
	IDs []string `json:"ids"`
}

type importReq struct {
	File           *multipart.FileHeader `form:"file"`
	BrandID        string                `form:"brand_id"`
	SourceLanguage string                `form:"source_language"`
	TargetLanguage string                `form:"target_language"`
}

type importResp struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	IDs      []string `json:"ids"`
}

func (h *handler) newImportResp(o tm.ImportOutput) importResp {
	return importResp{Imported: o.Imported, Skipped: o.Skipped, IDs: o.IDs}
}
