package rabbitmq

import "time"

// AnalysisCompletedMessage is published on RoutingKeyAnalysisCompleted.
type AnalysisCompletedMessage struct {
	AnalysisID        string    `json:"analysis_id"`
	DocumentID        string    `json:"document_id,omitempty"`
	UserID            string    `json:"user_id"`
	WorkspaceID       string    `json:"workspace_id,omitempty"`
	OverallComplexity int       `json:"overall_complexity"`
	ExportReady       bool      `json:"export_ready"`
	ReportObject      string    `json:"report_object,omitempty"`
	CompletedAt       time.Time `json:"completed_at"`
}
