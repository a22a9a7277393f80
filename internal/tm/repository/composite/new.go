package composite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
)

// ErrNoStores is returned when the composite was built without any store.
var ErrNoStores = errors.New("composite: no stores configured")

type implRepository struct {
	stores []repository.Store
	l      log.Logger
}

// New merges several stores into one. Searches fan out to every store and fail only when all of them fail.
func New(l log.Logger, stores ...repository.Store) repository.Store {
	return &implRepository{
		stores: stores,
		l:      l,
	}
}

func (r *implRepository) Name() string {
	names := make([]string, len(r.stores))
	for i, s := range r.stores {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]repository.RawMatch, error) {
	if len(r.stores) == 0 {
		return nil, ErrNoStores
	}

	results := make([][]repository.RawMatch, len(r.stores))
	errs := make([]error, len(r.stores))

	var g errgroup.Group
	for i, store := range r.stores {
		g.Go(func() error {
			matches, err := store.Search(ctx, opt)
			if err != nil {
				r.l.Warnf(ctx, "tm.repository.composite.Search: %s source failed: %v", store.Name(), err)
				errs[i] = fmt.Errorf("%s: %w", store.Name(), err)
				return nil
			}
			results[i] = matches
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(r.stores) {
		return nil, errors.Join(errs...)
	}
	return merge(results), nil
}

func (r *implRepository) Index(ctx context.Context, opt repository.IndexOptions) error {
	var errs []error
	for _, store := range r.stores {
		if err := store.Index(ctx, opt); err != nil {
			r.l.Errorf(ctx, "tm.repository.composite.Index: %s index failed: %v", store.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", store.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// merge keeps one match per unit id with the highest match percentage, in first seen order.
func merge(results [][]repository.RawMatch) []repository.RawMatch {
	index := make(map[string]int)
	merged := make([]repository.RawMatch, 0)
	for _, matches := range results {
		for _, m := range matches {
			pos, ok := index[m.TMUnitID]
			if !ok {
				index[m.TMUnitID] = len(merged)
				merged = append(merged, m)
				continue
			}
			if m.MatchPercentage > merged[pos].MatchPercentage {
				merged[pos] = m
			}
		}
	}
	return merged
}
