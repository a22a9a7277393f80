package redis

import (
	"context"
	"encoding/json"

	"localization-srv/internal/embedding/repository"
	pkgRedis "localization-srv/pkg/redis"
)

func (r *implRepository) Get(ctx context.Context, opt repository.GetOptions) ([]float32, error) {
	key := r.key(opt.Key)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if pkgRedis.IsNil(err) {
			return nil, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "embedding.repository.redis.Get: Failed to read %s: %v", key, err)
		return nil, err
	}

	var vector []float32
	if err := json.Unmarshal([]byte(data), &vector); err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Get: Corrupt vector at %s: %v", key, err)
		return nil, err
	}
	return vector, nil
}

func (r *implRepository) Save(ctx context.Context, opt repository.SaveOptions) error {
	key := r.key(opt.Key)
	data, err := json.Marshal(opt.Vector)
	if err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Save: %v", err)
		return err
	}

	ttl := opt.TTL
	if ttl == 0 {
		ttl = repository.DefaultTTL
	}

	if err := r.redis.Set(ctx, key, data, ttl); err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Save: %v", err)
		return err
	}
	return nil
}
