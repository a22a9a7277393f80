package elasticsearch

import (
	"context"
	"encoding/json"

	"localization-srv/internal/model"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/elasticsearch"
	"localization-srv/pkg/util"
)

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]repository.RawMatch, error) {
	hits, err := r.client.Search(ctx, r.index, buildQuery(opt), opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "tm.repository.elasticsearch.Search: search failed: %v", err)
		return nil, err
	}

	matches := make([]repository.RawMatch, 0, len(hits))
	for _, hit := range hits {
		var doc document
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			r.l.Warnf(ctx, "tm.repository.elasticsearch.Search: skip undecodable hit %s: %v", hit.ID, err)
			continue
		}
		m := repository.RawMatch{
			TMUnitID:              hit.ID,
			SourceText:            doc.SourceText,
			TargetText:            doc.TargetText,
			MatchPercentage:       util.Similarity(opt.Text, doc.SourceText),
			BrandConsistencyScore: doc.BrandConsistencyScore,
			RegulatoryStatus:      doc.RegulatoryStatus,
			Confidence:            doc.Confidence,
			UsageCount:            doc.UsageCount,
			LastUsed:              doc.LastUsed,
			Origin:                Origin,
		}
		if doc.CulturalAppropriateness != nil {
			m.CulturalContext = &model.CulturalContext{
				Appropriateness: *doc.CulturalAppropriateness,
				Notes:           doc.CulturalNotes,
			}
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (r *implRepository) Index(ctx context.Context, opt repository.IndexOptions) error {
	if len(opt.Units) == 0 {
		return nil
	}

	docs := make([]elasticsearch.Document, len(opt.Units))
	for i, u := range opt.Units {
		docs[i] = elasticsearch.Document{ID: u.ID, Body: toDocument(u)}
	}
	if err := r.client.IndexDocuments(ctx, r.index, docs); err != nil {
		r.l.Errorf(ctx, "tm.repository.elasticsearch.Index: bulk index failed: %v", err)
		return err
	}
	return nil
}

// buildQuery runs a fuzzy match on source_text restricted to the brand and language pair.
func buildQuery(opt repository.SearchOptions) map[string]any {
	var filters []any
	for field, value := range map[string]string{
		"brand_id":        opt.BrandID,
		"source_language": opt.SourceLanguage,
		"target_language": opt.TargetLanguage,
	} {
		if value != "" {
			filters = append(filters, map[string]any{"term": map[string]any{field: value}})
		}
	}

	boolQuery := map[string]any{
		"must": map[string]any{
			"match": map[string]any{
				"source_text": map[string]any{
					"query":     opt.Text,
					"fuzziness": "AUTO",
				},
			},
		},
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}
	return map[string]any{"query": map[string]any{"bool": boolQuery}}
}
