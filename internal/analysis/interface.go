package analysis

import (
	"context"

	"localization-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze runs the whole pipeline synchronously.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (model.AnalysisReport, error)
	// Submit records the request and queues it for the consumer.
	Submit(ctx context.Context, sc model.Scope, input AnalyzeInput) (SubmitOutput, error)
	Process(ctx context.Context, sc model.Scope, input ProcessInput) error
	Get(ctx context.Context, sc model.Scope, input GetInput) (AnalysisOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Download(ctx context.Context, sc model.Scope, input DownloadInput) (DownloadOutput, error)
}

// Producer queues analysis requests.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishAnalysisRequested(ctx context.Context, event AnalysisRequested) error
}

// Notifier announces finished analyses.
//
//go:generate mockery --name Notifier
type Notifier interface {
	PublishAnalysisCompleted(ctx context.Context, event AnalysisCompleted) error
}
