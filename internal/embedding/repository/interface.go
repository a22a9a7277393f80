package repository

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is how long a cached vector lives.
const DefaultTTL = 7 * 24 * time.Hour

// ErrNotFound is returned by Get on a cache miss.
var ErrNotFound = errors.New("repository: embedding not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, opt GetOptions) ([]float32, error)
	Save(ctx context.Context, opt SaveOptions) error
}
