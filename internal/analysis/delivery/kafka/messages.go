package kafka

import "time"

// AnalysisRequestedMessage is the payload of TopicAnalysisRequested.
type AnalysisRequestedMessage struct {
	AnalysisID  string    `json:"analysis_id"`
	UserID      string    `json:"user_id"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}
