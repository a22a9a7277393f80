package usecase

import (
	"localization-srv/internal/recommendation"
	"localization-srv/pkg/log"
)

type implUseCase struct {
	l   log.Logger
	cfg recommendation.Config
}

func New(l log.Logger, cfg recommendation.Config) recommendation.UseCase {
	return &implUseCase{
		l:   l,
		cfg: cfg,
	}
}
