package usecase

import (
	"localization-srv/internal/embedding"
	"localization-srv/internal/embedding/repository"
	"localization-srv/pkg/log"
	"localization-srv/pkg/util"
	"localization-srv/pkg/voyage"
)

type implUseCase struct {
	repo   repository.Repository
	voyage voyage.IVoyage
	cfg    embedding.Config
	l      log.Logger
}

// New builds the embedding use case. Zero config fields take their defaults.
func New(repo repository.Repository, voyage voyage.IVoyage, cfg embedding.Config, l log.Logger) embedding.UseCase {
	def := embedding.DefaultConfig()
	if cfg.Namespace == "" {
		cfg.Namespace = def.Namespace
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}
	return &implUseCase{
		repo:   repo,
		voyage: voyage,
		cfg:    cfg,
		l:      l,
	}
}

func (uc *implUseCase) key(purpose embedding.Purpose, text string) string {
	return util.Hash(uc.cfg.Namespace, string(purpose), text)
}
