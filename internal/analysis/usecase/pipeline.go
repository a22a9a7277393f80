package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"localization-srv/internal/analysis"
	"localization-srv/internal/intelligence"
	"localization-srv/internal/model"
	"localization-srv/internal/recommendation"
	"localization-srv/internal/scoring"
	"localization-srv/internal/segmentation"
)

// run executes every stage for one document. Only scoring and aggregation can fail it.
func (uc *implUseCase) run(ctx context.Context, analysisID string, input analysis.AnalyzeInput) (model.AnalysisReport, error) {
	text := input.Content.ExtractText()
	p := uc.pipeline

	seg := p.Segmentation.Segment(ctx, segmentation.SegmentInput{
		Text: text,
		Context: model.SegmentContext{
			AssetType:              input.AssetType,
			TargetAudience:         input.TargetAudience,
			TherapeuticArea:        input.TherapeuticArea,
			RegulatoryRequirements: input.RegulatoryRequirements,
		},
	})

	var (
		matches    map[string][]model.Match
		brand      model.BrandIntelligence
		regulatory model.RegulatoryIntelligence
		cultural   model.CulturalIntelligence
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches = p.TM.MatchSegments(gctx, seg.Segments, localizationContext(input))
		return nil
	})
	g.Go(func() error {
		brand = p.Intelligence.Brand(gctx, input.BrandID, text)
		return nil
	})
	g.Go(func() error {
		regulatory = p.Intelligence.Regulatory(gctx, intelligence.RegulatoryQuery{
			BrandID:         input.BrandID,
			Markets:         input.TargetMarkets,
			TherapeuticArea: input.TherapeuticArea,
			Text:            text,
		})
		return nil
	})
	g.Go(func() error {
		cultural = p.Intelligence.Cultural(gctx, intelligence.CulturalQuery{
			Text:            text,
			Markets:         input.TargetMarkets,
			TherapeuticArea: input.TherapeuticArea,
		})
		return nil
	})
	_ = g.Wait()

	complexity, err := p.Scoring.ScoreContent(ctx, scoring.ScoreInput{
		DocumentID:      input.DocumentID,
		Content:         input.Content,
		TargetMarkets:   input.TargetMarkets,
		TargetLanguages: input.TargetLanguages,
		AssetType:       input.AssetType,
		Channels:        input.Channels,
		ImageCount:      input.ImageCount,
		HasInfographic:  input.HasInfographic,
	})
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("complexity: %w", err)
	}

	brandScore := brand.ConsistencyScore
	readiness, err := p.Scoring.MarketReadiness(ctx, scoring.ReadinessInput{
		DocumentID:              input.DocumentID,
		Markets:                 input.TargetMarkets,
		Metrics:                 complexity,
		BrandConsistency:        &brandScore,
		CulturalAppropriateness: cultural.PerMarket,
	})
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("readiness: %w", err)
	}

	recs, err := p.Recommendation.Aggregate(ctx, recommendation.AggregateInput{
		DocumentID: input.DocumentID,
		Segments:   orderedMatches(seg.Segments, matches),
		Brand:      brand,
		Regulatory: regulatory,
		Cultural:   cultural,
	})
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("recommendations: %w", err)
	}

	if matches == nil {
		matches = map[string][]model.Match{}
	}
	return model.AnalysisReport{
		AnalysisID:        analysisID,
		DocumentID:        input.DocumentID,
		Segments:          seg.Segments,
		PreservationRules: seg.PreservationRules,
		Matches:           matches,
		Complexity:        complexity,
		Readiness:         readiness,
		Brand:             brand,
		Regulatory:        regulatory,
		Cultural:          cultural,
		Recommendations:   recs,
		GeneratedAt:       uc.now(),
	}, nil
}

func localizationContext(input analysis.AnalyzeInput) model.LocalizationContext {
	target := input.TargetLanguage
	if target == "" && len(input.TargetLanguages) > 0 {
		target = input.TargetLanguages[0]
	}
	return model.LocalizationContext{
		BrandID:                input.BrandID,
		SourceLanguage:         input.SourceLanguage,
		TargetLanguage:         target,
		AssetType:              input.AssetType,
		TargetAudience:         input.TargetAudience,
		TherapeuticArea:        input.TherapeuticArea,
		BrandGuidelines:        input.BrandGuidelines,
		RegulatoryRequirements: input.RegulatoryRequirements,
	}
}

// orderedMatches lays the match map out in segment order.
func orderedMatches(segments []model.Segment, matches map[string][]model.Match) []recommendation.SegmentMatches {
	out := make([]recommendation.SegmentMatches, 0, len(segments))
	for _, s := range segments {
		out = append(out, recommendation.SegmentMatches{SegmentID: s.ID, Matches: matches[s.ID]})
	}
	return out
}

func matchCount(matches map[string][]model.Match) int {
	n := 0
	for _, m := range matches {
		n += len(m)
	}
	return n
}
