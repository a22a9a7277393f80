package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/model"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
	pkgRedis "localization-srv/pkg/redis"
)

type fakeRedis struct {
	pkgRedis.IRedis
	data map[string]string
	ttl  map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = string(value.([]byte))
	f.ttl[key] = ttl
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Incr(_ context.Context, key string) (int64, error) {
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func TestMatchCacheRoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	repo := New(rdb, log.NewNop())
	ctx := context.Background()

	_, err := repo.GetMatches(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	want := []repository.RawMatch{{
		TMUnitID:         "u-1",
		MatchPercentage:  88,
		RegulatoryStatus: model.RegulatoryStatusApproved,
		CulturalContext:  &model.CulturalContext{Appropriateness: 72},
	}}
	require.NoError(t, repo.SaveMatches(ctx, repository.SaveMatchesOptions{Key: "k", Matches: want, TTL: time.Minute}))
	assert.Equal(t, time.Minute, rdb.ttl[keyPrefix+"0:k"])

	got, err := repo.GetMatches(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInvalidateOrphansEntries(t *testing.T) {
	rdb := newFakeRedis()
	repo := New(rdb, log.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.SaveMatches(ctx, repository.SaveMatchesOptions{
		Key:     "k",
		Matches: []repository.RawMatch{{TMUnitID: "old"}},
		TTL:     time.Minute,
	}))
	require.NoError(t, repo.Invalidate(ctx))

	_, err := repo.GetMatches(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	require.NoError(t, repo.SaveMatches(ctx, repository.SaveMatchesOptions{
		Key:     "k",
		Matches: []repository.RawMatch{{TMUnitID: "new"}},
		TTL:     time.Minute,
	}))
	assert.Contains(t, rdb.data, keyPrefix+"1:k")

	got, err := repo.GetMatches(ctx, "k")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].TMUnitID)
}

func TestCorruptGenerationIsAnError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data[generationKey] = "not-a-number"

	_, err := New(rdb, log.NewNop()).GetMatches(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}
