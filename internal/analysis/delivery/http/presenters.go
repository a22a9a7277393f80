package http

import (
	"encoding/json"
	"time"

	"localization-srv/internal/analysis"
	"localization-srv/internal/model"
	"localization-srv/pkg/paginator"
)

type analyzeReq struct {
	DocumentID             string        `json:"document_id"`
	Content                model.Content `json:"content" swaggertype:"object"`
	BrandID                string        `json:"brand_id"`
	SourceLanguage         string        `json:"source_language"`
	TargetLanguage         string        `json:"target_language"`
	TargetMarkets          []string      `json:"target_markets"`
	TargetLanguages        []string      `json:"target_languages"`
	AssetType              string        `json:"asset_type"`
	TargetAudience         string        `json:"target_audience"`
	TherapeuticArea        string        `json:"therapeutic_area"`
	Channels               []string      `json:"channels"`
	ImageCount             int           `json:"image_count" binding:"min=0"`
	HasInfographic         bool          `json:"has_infographic"`
	BrandGuidelines        []string      `json:"brand_guidelines"`
	RegulatoryRequirements []string      `json:"regulatory_requirements"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		DocumentID:             r.DocumentID,
		Content:                r.Content,
		BrandID:                r.BrandID,
		SourceLanguage:         r.SourceLanguage,
		TargetLanguage:         r.TargetLanguage,
		TargetMarkets:          r.TargetMarkets,
		TargetLanguages:        r.TargetLanguages,
		AssetType:              r.AssetType,
		TargetAudience:         r.TargetAudience,
		TherapeuticArea:        r.TherapeuticArea,
		Channels:               r.Channels,
		ImageCount:             r.ImageCount,
		HasInfographic:         r.HasInfographic,
		BrandGuidelines:        r.BrandGuidelines,
		RegulatoryRequirements: r.RegulatoryRequirements,
	}
}

type listReq struct {
	paginator.PaginateQuery
	Status string `form:"status" binding:"omitempty,oneof=processing completed failed"`
}

func (r listReq) toInput() analysis.ListInput {
	return analysis.ListInput{
		Status:   model.AnalysisStatus(r.Status),
		Paginate: r.PaginateQuery,
	}
}

type analysisIDReq struct {
	AnalysisID string
}

func (r analysisIDReq) toGetInput() analysis.GetInput {
	return analysis.GetInput{AnalysisID: r.AnalysisID}
}

func (r analysisIDReq) toDownloadInput() analysis.DownloadInput {
	return analysis.DownloadInput{AnalysisID: r.AnalysisID}
}

type submitResp struct {
	AnalysisID string `json:"analysis_id"`
	Status     string `json:"status"`
	Reused     bool   `json:"reused"`
}

type analysisResp struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	WorkspaceID       string      `json:"workspace_id,omitempty"`
	DocumentID        string      `json:"document_id,omitempty"`
	Status            string      `json:"status"`
	OverallComplexity int         `json:"overall_complexity"`
	ExportReady       bool        `json:"export_ready"`
	SegmentCount      int         `json:"segment_count"`
	MatchCount        int         `json:"match_count"`
	HasReport         bool        `json:"has_report"`
	ErrorMessage      string      `json:"error_message,omitempty"`
	Request           interface{} `json:"request,omitempty" swaggertype:"object"`
	CompletedAt       *string     `json:"completed_at,omitempty"`
	CreatedAt         string      `json:"created_at"`
}

type listResp struct {
	Analyses []analysisResp              `json:"analyses"`
	Paginate paginator.PaginatorResponse `json:"paginator"`
}

type downloadResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
}

func (h *handler) newSubmitResp(o analysis.SubmitOutput) submitResp {
	return submitResp{
		AnalysisID: o.AnalysisID,
		Status:     string(o.Status),
		Reused:     o.Reused,
	}
}

func newAnalysisResp(a model.Analysis) analysisResp {
	resp := analysisResp{
		ID:                a.ID,
		UserID:            a.UserID,
		WorkspaceID:       a.WorkspaceID,
		DocumentID:        a.DocumentID,
		Status:            string(a.Status),
		OverallComplexity: a.OverallComplexity,
		ExportReady:       a.ExportReady,
		SegmentCount:      a.SegmentCount,
		MatchCount:        a.MatchCount,
		HasReport:         a.ReportObject != "",
		ErrorMessage:      a.ErrorMessage,
		CreatedAt:         a.CreatedAt.Format(time.RFC3339),
	}
	if a.CompletedAt != nil {
		completed := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

func (h *handler) newAnalysisResp(o analysis.AnalysisOutput) analysisResp {
	resp := newAnalysisResp(o.Analysis)
	if len(o.Analysis.Request) > 0 {
		var request interface{}
		if err := json.Unmarshal(o.Analysis.Request, &request); err == nil {
			resp.Request = request
		}
	}
	return resp
}

func (h *handler) newListResp(o analysis.ListOutput) listResp {
	analyses := make([]analysisResp, 0, len(o.Analyses))
	for _, a := range o.Analyses {
		analyses = append(analyses, newAnalysisResp(a))
	}
	return listResp{
		Analyses: analyses,
		Paginate: o.Paginator.ToResponse(),
	}
}

func (h *handler) newDownloadResp(o analysis.DownloadOutput) downloadResp {
	return downloadResp{
		DownloadURL: o.URL,
		ExpiresAt:   o.ExpiresAt.Format(time.RFC3339),
		FileName:    o.FileName,
	}
}
