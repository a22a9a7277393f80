package usecase

import (
	"context"
	"errors"
	"fmt"

	"localization-srv/internal/embedding"
	"localization-srv/internal/embedding/repository"
)

func (uc *implUseCase) Generate(ctx context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	if input.Text == "" {
		return embedding.GenerateOutput{}, embedding.ErrEmptyText
	}

	key := uc.key(embedding.PurposeQuery, input.Text)

	// 1. Check cache
	if cached, ok := uc.lookup(ctx, key); ok {
		uc.l.Debugf(ctx, "embedding.usecase.Generate: cache hit")
		return embedding.GenerateOutput{Vector: cached}, nil
	}

	// 2. Call Voyage
	vector, err := uc.voyage.EmbedQuery(ctx, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: Voyage query embed failed: %v", err)
		return embedding.GenerateOutput{}, fmt.Errorf("embed query: %w", err)
	}
	if len(vector) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: no vector returned")
		return embedding.GenerateOutput{}, embedding.ErrNoVectorReturned
	}

	// 3. Save cache
	uc.store(ctx, key, vector)

	return embedding.GenerateOutput{Vector: vector}, nil
}

func (uc *implUseCase) GenerateMany(ctx context.Context, input embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	if len(input.Texts) == 0 {
		return embedding.GenerateManyOutput{}, embedding.ErrEmptyTexts
	}
	results := make([][]float32, len(input.Texts))
	keys := make([]string, len(input.Texts))
	missIndices := []int{}
	missTexts := []string{}

	// 1. Check cache for each
	for i, text := range input.Texts {
		if text == "" {
			return embedding.GenerateManyOutput{}, embedding.ErrEmptyText
		}
		keys[i] = uc.key(embedding.PurposeDocument, text)
		if cached, ok := uc.lookup(ctx, keys[i]); ok {
			results[i] = cached
			continue
		}
		missIndices = append(missIndices, i)
		missTexts = append(missTexts, text)
	}

	if len(missIndices) == 0 {
		return embedding.GenerateManyOutput{Vectors: results}, nil
	}

	// 2. Call Voyage for misses
	vectors, err := uc.voyage.Embed(ctx, missTexts)
	if err != nil {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: Voyage embed failed: %v", err)
		return embedding.GenerateManyOutput{}, fmt.Errorf("embed: %w", err)
	}
	if len(vectors) != len(missTexts) {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: got %d vectors for %d texts", len(vectors), len(missTexts))
		return embedding.GenerateManyOutput{}, embedding.ErrMismatchVectorCount
	}

	// 3. Save cache for misses and fill results
	for i, vector := range vectors {
		origIdx := missIndices[i]
		results[origIdx] = vector
		uc.store(ctx, keys[origIdx], vector)
	}

	return embedding.GenerateManyOutput{Vectors: results}, nil
}

func (uc *implUseCase) lookup(ctx context.Context, key string) ([]float32, bool) {
	cached, err := uc.repo.Get(ctx, repository.GetOptions{Key: key})
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "embedding.usecase.lookup: cache read failed: %v", err)
		}
		return nil, false
	}
	return cached, len(cached) > 0
}

// store writes through to the cache. Failures are logged only.
func (uc *implUseCase) store(ctx context.Context, key string, vector []float32) {
	if err := uc.repo.Save(ctx, repository.SaveOptions{Key: key, Vector: vector, TTL: uc.cfg.CacheTTL}); err != nil {
		uc.l.Warnf(ctx, "embedding.usecase.store: cache save failed: %v", err)
	}
}
