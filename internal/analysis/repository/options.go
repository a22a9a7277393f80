package repository

import (
	"time"

	"localization-srv/internal/model"
)

type CreateOptions struct {
	ID          string
	UserID      string
	WorkspaceID string
	DocumentID  string
	ParamsHash  string
	Status      model.AnalysisStatus
	Request     []byte
}

type GetByParamsHashOptions struct {
	ParamsHash string
	Statuses   []model.AnalysisStatus
}

type ListOptions struct {
	UserID      string
	WorkspaceID string
	Status      model.AnalysisStatus
	Limit       int64
	Offset      int64
}

type UpdateCompletedOptions struct {
	ID                string
	OverallComplexity int
	ExportReady       bool
	SegmentCount      int
	MatchCount        int
	ReportObject      string
	CompletedAt       time.Time
}

type UpdateFailedOptions struct {
	ID           string
	ErrorMessage string
}

type SaveOptions struct {
	AnalysisID string
	DocumentID string
	Report     []byte
}

type PresignOptions struct {
	Object string
	Expiry time.Duration
}
