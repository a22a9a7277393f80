package qdrant

import (
	"context"
	"fmt"

	"localization-srv/internal/embedding"
	"localization-srv/internal/tm/repository"
	pkgQdrant "localization-srv/pkg/qdrant"
)

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]repository.RawMatch, error) {
	out, err := r.embeddingUC.Generate(ctx, embedding.GenerateInput{Text: opt.Text})
	if err != nil {
		r.l.Errorf(ctx, "tm.repository.qdrant.Search: embed query failed: %v", err)
		return nil, fmt.Errorf("embed query: %w", err)
	}

	filter := pkgQdrant.KeywordFilter(map[string]string{
		fieldBrandID:        opt.BrandID,
		fieldSourceLanguage: opt.SourceLanguage,
		fieldTargetLanguage: opt.TargetLanguage,
	})

	results, err := r.client.SearchWithFilter(ctx, r.collection, out.Vector, uint64(opt.Limit), filter)
	if err != nil {
		r.l.Errorf(ctx, "tm.repository.qdrant.Search: search failed: %v", err)
		return nil, err
	}

	matches := make([]repository.RawMatch, len(results))
	for i, res := range results {
		matches[i] = fromPayload(res.ID, res.Score, res.Payload)
	}
	return matches, nil
}

func (r *implRepository) Index(ctx context.Context, opt repository.IndexOptions) error {
	if len(opt.Units) == 0 {
		return nil
	}

	texts := make([]string, len(opt.Units))
	for i, u := range opt.Units {
		texts[i] = u.SourceText
	}
	out, err := r.embeddingUC.GenerateMany(ctx, embedding.GenerateManyInput{Texts: texts})
	if err != nil {
		r.l.Errorf(ctx, "tm.repository.qdrant.Index: embed units failed: %v", err)
		return fmt.Errorf("embed units: %w", err)
	}

	points := make([]pkgQdrant.Point, len(opt.Units))
	for i, u := range opt.Units {
		points[i] = pkgQdrant.Point{
			ID:      u.ID,
			Vector:  out.Vectors[i],
			Payload: toPayload(u),
		}
	}
	if err := r.client.UpsertPoints(ctx, r.collection, points); err != nil {
		r.l.Errorf(ctx, "tm.repository.qdrant.Index: upsert failed: %v", err)
		return err
	}
	return nil
}
