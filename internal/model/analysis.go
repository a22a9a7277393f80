package model

import (
	"encoding/json"
	"time"
)

type AnalysisStatus string

const (
	AnalysisStatusProcessing AnalysisStatus = "processing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

// Analysis is the audit record of one pipeline run.
type Analysis struct {
	ID          string
	UserID      string
	WorkspaceID string
	DocumentID  string
	ParamsHash  string
	Status      AnalysisStatus
	Request     json.RawMessage

	// Summary
	OverallComplexity int
	ExportReady       bool
	SegmentCount      int
	MatchCount        int

	// Archive
	ReportObject string
	ErrorMessage string

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Recommendations is the reduction of all matches and intelligence for one document.
type Recommendations struct {
	BestMatches        []Match            `json:"best_matches"`
	SegmentSuggestions map[string][]Match `json:"segment_suggestions"`
	ImprovementActions []string           `json:"improvement_actions"`
	ExportReadiness    bool               `json:"export_readiness"`
}

// AnalysisReport is the full result handed to callers and archived as JSON.
type AnalysisReport struct {
	AnalysisID        string                     `json:"analysis_id"`
	DocumentID        string                     `json:"document_id,omitempty"`
	Segments          []Segment                  `json:"segments"`
	PreservationRules []PreservationRule         `json:"preservation_rules"`
	Matches           map[string][]Match         `json:"matches"`
	Complexity        ComplexityMetrics          `json:"complexity"`
	Readiness         map[string]MarketReadiness `json:"readiness"`
	Brand             BrandIntelligence          `json:"brand"`
	Regulatory        RegulatoryIntelligence     `json:"regulatory"`
	Cultural          CulturalIntelligence       `json:"cultural"`
	Recommendations   Recommendations            `json:"recommendations"`
	GeneratedAt       time.Time                  `json:"generated_at"`
}
