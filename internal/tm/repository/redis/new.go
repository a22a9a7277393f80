package redis

import (
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
	pkgRedis "localization-srv/pkg/redis"
)

const (
	keyPrefix     = "localization:tm:"
	generationKey = keyPrefix + "generation"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New returns a match cache whose keys are scoped by a generation counter.
// Bumping the counter orphans older entries, which then expire on their TTL.
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
