package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"localization-srv/internal/tm/repository"
	pkgRedis "localization-srv/pkg/redis"
)

func (r *implCacheRepository) GetMatches(ctx context.Context, key string) ([]repository.RawMatch, error) {
	gen, err := r.generation(ctx)
	if err != nil {
		return nil, err
	}

	data, err := r.redis.Get(ctx, r.key(gen, key))
	if err != nil {
		if pkgRedis.IsNil(err) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}

	var matches []repository.RawMatch
	if err := json.Unmarshal([]byte(data), &matches); err != nil {
		r.l.Errorf(ctx, "tm.repository.redis.GetMatches: failed to unmarshal matches: %v", err)
		return nil, err
	}
	return matches, nil
}

func (r *implCacheRepository) SaveMatches(ctx context.Context, opt repository.SaveMatchesOptions) error {
	gen, err := r.generation(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(opt.Matches)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, r.key(gen, opt.Key), data, opt.TTL); err != nil {
		r.l.Errorf(ctx, "tm.repository.redis.SaveMatches: failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) Invalidate(ctx context.Context) error {
	gen, err := r.redis.Incr(ctx, generationKey)
	if err != nil {
		r.l.Errorf(ctx, "tm.repository.redis.Invalidate: failed to bump generation: %v", err)
		return err
	}
	r.l.Debugf(ctx, "tm.repository.redis.Invalidate: match cache generation is now %d", gen)
	return nil
}

// generation reads the current counter. A missing counter is generation 0.
func (r *implCacheRepository) generation(ctx context.Context) (int64, error) {
	v, err := r.redis.Get(ctx, generationKey)
	if err != nil {
		if pkgRedis.IsNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func (r *implCacheRepository) key(gen int64, key string) string {
	return keyPrefix + strconv.FormatInt(gen, 10) + ":" + key
}
