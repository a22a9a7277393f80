package redis

import (
	"localization-srv/internal/embedding/repository"
	"localization-srv/pkg/log"
	pkgRedis "localization-srv/pkg/redis"
)

// keyPrefix keeps vectors apart from the TM match cache in the shared Redis.
const keyPrefix = "localization:embedding:"

type implRepository struct {
	redis  pkgRedis.IRedis
	prefix string
	l      log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{redis: redis, prefix: keyPrefix, l: l}
}

func (r *implRepository) key(k string) string {
	return r.prefix + k
}
