package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"localization-srv/internal/model"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/util"
)

const cacheKeyPrefix = "tm_match:"

func (uc *implUseCase) MatchSegment(ctx context.Context, segment model.Segment, lctx model.LocalizationContext) []model.Match {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.MatchTimeout)
	defer cancel()

	raws, err := uc.search(ctx, segment.Text, lctx)
	if err != nil {
		uc.l.Warnf(ctx, "tm.usecase.MatchSegment: segment %s lookup failed: %v", segment.ID, err)
		return []model.Match{}
	}

	matches := make([]model.Match, len(raws))
	for i, raw := range raws {
		matches[i] = uc.enrich(segment, raw)
	}
	uc.rank(segment.Type, matches)
	return matches
}

func (uc *implUseCase) MatchSegments(ctx context.Context, segments []model.Segment, lctx model.LocalizationContext) map[string][]model.Match {
	results := make([][]model.Match, len(segments))

	var g errgroup.Group
	g.SetLimit(uc.cfg.Concurrency)
	for i, segment := range segments {
		g.Go(func() error {
			results[i] = uc.MatchSegment(ctx, segment, lctx)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string][]model.Match, len(segments))
	for i, segment := range segments {
		out[segment.ID] = results[i]
	}
	return out
}

// search reads through the cache and bounds the source call by ctx even when the source ignores it.
func (uc *implUseCase) search(ctx context.Context, text string, lctx model.LocalizationContext) ([]repository.RawMatch, error) {
	key, cacheable := cacheKey(text, lctx)
	if cacheable && uc.cache != nil {
		cached, err := uc.cache.GetMatches(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "tm.usecase.search: cache read failed: %v", err)
		}
	}

	type result struct {
		matches []repository.RawMatch
		err     error
	}
	done := make(chan result, 1)
	go func() {
		matches, err := uc.store.Search(ctx, repository.SearchOptions{
			Text:                   text,
			SourceLanguage:         lctx.SourceLanguage,
			TargetLanguage:         lctx.TargetLanguage,
			BrandID:                lctx.BrandID,
			Limit:                  uc.cfg.MatchLimit,
			AssetType:              lctx.AssetType,
			TargetAudience:         lctx.TargetAudience,
			TherapeuticArea:        lctx.TherapeuticArea,
			BrandGuidelines:        lctx.BrandGuidelines,
			RegulatoryRequirements: lctx.RegulatoryRequirements,
		})
		done <- result{matches: matches, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("match source: %w", ctx.Err())
	case res = <-done:
	}
	if res.err != nil {
		return nil, res.err
	}

	if cacheable && uc.cache != nil && len(res.matches) > 0 {
		if err := uc.cache.SaveMatches(ctx, repository.SaveMatchesOptions{
			Key:     key,
			Matches: res.matches,
			TTL:     uc.cfg.CacheTTL,
		}); err != nil {
			uc.l.Warnf(ctx, "tm.usecase.search: cache save failed: %v", err)
		}
	}
	return res.matches, nil
}

// cacheKey is only defined when every part of the lookup tuple is present.
func cacheKey(text string, lctx model.LocalizationContext) (string, bool) {
	if text == "" || lctx.SourceLanguage == "" || lctx.TargetLanguage == "" || lctx.BrandID == "" {
		return "", false
	}
	return cacheKeyPrefix + util.Hash(text, lctx.SourceLanguage, lctx.TargetLanguage, lctx.BrandID), true
}
