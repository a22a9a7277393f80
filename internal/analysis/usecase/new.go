package usecase

import (
	"time"

	"localization-srv/internal/analysis"
	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/intelligence"
	"localization-srv/internal/recommendation"
	"localization-srv/internal/scoring"
	"localization-srv/internal/segmentation"
	"localization-srv/internal/tm"
	"localization-srv/pkg/log"
)

// Pipeline holds the stages an analysis runs through.
type Pipeline struct {
	Segmentation   segmentation.UseCase
	TM             tm.UseCase
	Intelligence   intelligence.UseCase
	Scoring        scoring.UseCase
	Recommendation recommendation.UseCase
}

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	archive  repository.ArchiveRepository
	producer analysis.Producer
	notifier analysis.Notifier
	pipeline Pipeline
	cfg      analysis.Config
	now      func() time.Time
}

// New builds the analysis use case. producer and notifier may be nil: without a producer Submit
// is unavailable, without a notifier completions are not announced.
func New(
	l log.Logger,
	repo repository.Repository,
	archive repository.ArchiveRepository,
	producer analysis.Producer,
	notifier analysis.Notifier,
	pipeline Pipeline,
	cfg analysis.Config,
) analysis.UseCase {
	def := analysis.DefaultConfig()
	if cfg.Bucket == "" {
		cfg.Bucket = def.Bucket
	}
	if cfg.DownloadExpiry <= 0 {
		cfg.DownloadExpiry = def.DownloadExpiry
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		archive:  archive,
		producer: producer,
		notifier: notifier,
		pipeline: pipeline,
		cfg:      cfg,
		now:      time.Now,
	}
}
