package analysis

import (
	"encoding/json"
	"time"

	"localization-srv/internal/model"
	"localization-srv/pkg/paginator"
)

const (
	defaultBucket         = "localization-reports"
	defaultDownloadExpiry = 30 * time.Minute
)

type Config struct {
	Bucket         string
	DownloadExpiry time.Duration
}

func DefaultConfig() Config {
	return Config{
		Bucket:         defaultBucket,
		DownloadExpiry: defaultDownloadExpiry,
	}
}

// AnalyzeInput is one document to run through the pipeline. It is stored verbatim with async requests.
type AnalyzeInput struct {
	DocumentID             string        `json:"document_id,omitempty"`
	Content                model.Content `json:"content"`
	BrandID                string        `json:"brand_id,omitempty"`
	SourceLanguage         string        `json:"source_language,omitempty"`
	TargetLanguage         string        `json:"target_language,omitempty"`
	TargetMarkets          []string      `json:"target_markets,omitempty"`
	TargetLanguages        []string      `json:"target_languages,omitempty"`
	AssetType              string        `json:"asset_type,omitempty"`
	TargetAudience         string        `json:"target_audience,omitempty"`
	TherapeuticArea        string        `json:"therapeutic_area,omitempty"`
	Channels               []string      `json:"channels,omitempty"`
	ImageCount             int           `json:"image_count,omitempty"`
	HasInfographic         bool          `json:"has_infographic,omitempty"`
	BrandGuidelines        []string      `json:"brand_guidelines,omitempty"`
	RegulatoryRequirements []string      `json:"regulatory_requirements,omitempty"`
}

type SubmitOutput struct {
	AnalysisID string
	Status     model.AnalysisStatus
	Reused     bool
}

type ProcessInput struct {
	AnalysisID string
}

type GetInput struct {
	AnalysisID string
}

type AnalysisOutput struct {
	Analysis model.Analysis
	Request  AnalyzeInput
}

type ListInput struct {
	Status   model.AnalysisStatus
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	Analyses  []model.Analysis
	Paginator paginator.Paginator
}

type DownloadInput struct {
	AnalysisID string
}

type DownloadOutput struct {
	URL       string
	ExpiresAt time.Time
	FileName  string
}

// AnalysisRequested asks the consumer to process a submitted analysis.
type AnalysisRequested struct {
	AnalysisID  string
	UserID      string
	WorkspaceID string
	RequestedAt time.Time
}

// AnalysisCompleted is announced once a report is ready.
type AnalysisCompleted struct {
	AnalysisID        string
	DocumentID        string
	UserID            string
	WorkspaceID       string
	OverallComplexity int
	ExportReady       bool
	ReportObject      string
	CompletedAt       time.Time
}

// DecodeRequest reads the request stored with an analysis record.
func DecodeRequest(a model.Analysis) (AnalyzeInput, error) {
	var in AnalyzeInput
	if len(a.Request) == 0 {
		return in, nil
	}
	err := json.Unmarshal(a.Request, &in)
	return in, err
}
