package usecase

import (
	"localization-srv/internal/tm"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	store repository.Store
	cache repository.CacheRepository
	cfg   tm.Config
}

// New builds the matcher. cache may be nil to disable match caching.
func New(l log.Logger, store repository.Store, cache repository.CacheRepository, cfg tm.Config) tm.UseCase {
	def := tm.DefaultConfig()
	if cfg.MatchTimeout <= 0 {
		cfg.MatchTimeout = def.MatchTimeout
	}
	if cfg.MatchLimit <= 0 {
		cfg.MatchLimit = def.MatchLimit
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}
	return &implUseCase{
		l:     l,
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}
