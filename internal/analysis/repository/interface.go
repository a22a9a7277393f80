package repository

import (
	"context"
	"time"

	"localization-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Analysis, error)
	Get(ctx context.Context, id string) (model.Analysis, error)
	// GetByParamsHash returns the newest analysis with the hash in one of the statuses.
	GetByParamsHash(ctx context.Context, opts GetByParamsHashOptions) (model.Analysis, error)
	List(ctx context.Context, opts ListOptions) ([]model.Analysis, int64, error)
	UpdateCompleted(ctx context.Context, opts UpdateCompletedOptions) error
	UpdateFailed(ctx context.Context, opts UpdateFailedOptions) error
}

//go:generate mockery --name ArchiveRepository
type ArchiveRepository interface {
	// Save stores a JSON report and returns its object name.
	Save(ctx context.Context, opts SaveOptions) (string, error)
	PresignDownload(ctx context.Context, opts PresignOptions) (string, time.Time, error)
}
