package usecase

import (
	"context"
	"fmt"
	"sort"

	"localization-srv/internal/model"
	"localization-srv/internal/recommendation"
)

const (
	actionBrand      = "Review brand terminology and voice before reuse"
	actionRegulatory = "Route content through regulatory review"
	actionCultural   = "Adapt cultural references for the target markets"
)

func (uc *implUseCase) Aggregate(ctx context.Context, input recommendation.AggregateInput) (out model.Recommendations, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "recommendation.usecase.Aggregate: document %s: recovered: %v", input.DocumentID, r)
			out = model.Recommendations{}
			err = fmt.Errorf("%w: %v", recommendation.ErrAggregationFailed, r)
		}
	}()

	out = model.Recommendations{
		BestMatches:        uc.bestMatches(input.Segments),
		SegmentSuggestions: uc.suggestions(input.Segments),
		ImprovementActions: []string{},
	}

	brandOK := input.Brand.ConsistencyScore >= uc.cfg.BrandConsistencyMin
	regulatoryOK := input.Regulatory.Status == model.ComplianceStatusCompliant
	culturalOK := input.Cultural.Appropriateness >= uc.cfg.CulturalMin
	if !brandOK {
		out.ImprovementActions = append(out.ImprovementActions, actionBrand)
	}
	if !regulatoryOK {
		out.ImprovementActions = append(out.ImprovementActions, actionRegulatory)
	}
	if !culturalOK {
		out.ImprovementActions = append(out.ImprovementActions, actionCultural)
	}

	out.ExportReadiness = brandOK && regulatoryOK && culturalOK && len(out.BestMatches) > 0
	return out, nil
}

func (uc *implUseCase) bestMatches(segments []recommendation.SegmentMatches) []model.Match {
	best := []model.Match{}
	for _, s := range segments {
		for _, m := range s.Matches {
			if m.Confidence >= uc.cfg.BestMatchConfidenceMin {
				best = append(best, m)
			}
		}
	}
	sort.SliceStable(best, func(i, j int) bool { return best[i].Confidence > best[j].Confidence })
	if len(best) > uc.cfg.BestMatchLimit {
		best = best[:uc.cfg.BestMatchLimit]
	}
	return best
}

// suggestions keeps each segment's ranking and cuts it to the first few.
func (uc *implUseCase) suggestions(segments []recommendation.SegmentMatches) map[string][]model.Match {
	out := make(map[string][]model.Match, len(segments))
	for _, s := range segments {
		n := min(len(s.Matches), uc.cfg.SuggestionsPerSegment)
		top := make([]model.Match, n)
		copy(top, s.Matches[:n])
		out[s.SegmentID] = top
	}
	return out
}
