package repository

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by CacheRepository.GetMatches when nothing is cached.
var ErrCacheMiss = errors.New("repository: cache miss")

// MatchSource is an external translation memory search.
//
//go:generate mockery --name MatchSource
type MatchSource interface {
	Search(ctx context.Context, opt SearchOptions) ([]RawMatch, error)
}

// Store is a match source that can also index units.
//
//go:generate mockery --name Store
type Store interface {
	MatchSource
	Index(ctx context.Context, opt IndexOptions) error
	Name() string
}

// CacheRepository caches raw matches per lookup key. Invalidate drops every
// cached entry at once, so callers run it after the memory changes.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetMatches(ctx context.Context, key string) ([]RawMatch, error)
	SaveMatches(ctx context.Context, opt SaveMatchesOptions) error
	Invalidate(ctx context.Context) error
}
