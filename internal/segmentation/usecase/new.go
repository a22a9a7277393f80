package usecase

import (
	"localization-srv/internal/segmentation"
	"localization-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	patterns []segmentation.Pattern
	fallback segmentation.Fallback
}

func New(l log.Logger) segmentation.UseCase {
	return NewWithPatterns(l, segmentation.DefaultPatterns(), segmentation.DefaultFallback())
}

// NewWithPatterns builds a segmenter over a custom pattern table.
func NewWithPatterns(l log.Logger, patterns []segmentation.Pattern, fallback segmentation.Fallback) segmentation.UseCase {
	return &implUseCase{
		l:        l,
		patterns: patterns,
		fallback: fallback,
	}
}
