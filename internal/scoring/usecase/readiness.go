package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"localization-srv/internal/lexicon"
	"localization-srv/internal/model"
	"localization-srv/internal/scoring"
	"localization-srv/pkg/util"
)

func (uc *implUseCase) PredictQuality(ctx context.Context, input scoring.QualityInput) (model.QualityPrediction, error) {
	var out model.QualityPrediction
	if err := uc.safely(ctx, "PredictQuality", func() {
		out = uc.predictQuality(input)
	}); err != nil {
		uc.l.Errorf(ctx, "scoring.usecase.PredictQuality: document %s market %s: %v", input.DocumentID, input.Market, err)
		return model.QualityPrediction{}, err
	}
	return out, nil
}

func (uc *implUseCase) AssessRisk(ctx context.Context, input scoring.RiskInput) (model.RiskAssessment, error) {
	var out model.RiskAssessment
	if err := uc.safely(ctx, "AssessRisk", func() {
		out = uc.assessRisk(input)
	}); err != nil {
		uc.l.Errorf(ctx, "scoring.usecase.AssessRisk: document %s market %s: %v", input.DocumentID, input.Market, err)
		return model.RiskAssessment{}, err
	}
	return out, nil
}

func (uc *implUseCase) MarketReadiness(ctx context.Context, input scoring.ReadinessInput) (map[string]model.MarketReadiness, error) {
	markets := util.Dedupe(input.Markets)
	out := make(map[string]model.MarketReadiness, len(markets))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, market := range markets {
		g.Go(func() error {
			q := scoring.QualityInput{
				DocumentID:       input.DocumentID,
				Market:           market,
				Metrics:          input.Metrics,
				BrandConsistency: input.BrandConsistency,
			}
			if v, ok := input.CulturalAppropriateness[market]; ok {
				q.CulturalAppropriateness = &v
			}

			quality, err := uc.PredictQuality(gctx, q)
			if err != nil {
				return err
			}
			risk, err := uc.AssessRisk(gctx, q)
			if err != nil {
				return err
			}

			mu.Lock()
			out[market] = model.MarketReadiness{
				Market:  market,
				Quality: quality,
				Risk:    risk,
				Ready:   quality.OverallScore >= uc.cfg.ReadyQualityMin && risk.RiskLevel != model.RiskLevelHigh,
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// factors derives the per-market quality factors from complexity metrics and optional signals.
func (uc *implUseCase) factors(input scoring.QualityInput) model.QualityFactors {
	cfg := uc.cfg
	region := lexicon.ResolveRegion(input.Market)
	m := input.Metrics

	cultural := m.CulturalComplexityScore
	if input.CulturalAppropriateness != nil {
		cultural = 100 - util.ClampScore(*input.CulturalAppropriateness)
	}

	regulatory, ok := cfg.RegulatoryComplexity[region]
	if !ok {
		regulatory = cfg.DefaultRegulatoryComplexity
	}

	translation := m.TextComplexityScore / 2
	if lexicon.DoubleByte(region) {
		translation += 25
	}
	if lexicon.RightToLeft(region) {
		translation += 20
	}
	if lexicon.TextExpansion(region) {
		translation += 10
	}

	brand := cfg.DefaultBrandConsistency
	if input.BrandConsistency != nil {
		brand = *input.BrandConsistency
	}

	return model.QualityFactors{
		ContentComplexity:     util.ClampScore(m.OverallComplexityScore),
		CulturalSensitivity:   util.ClampScore(cultural),
		RegulatoryComplexity:  util.ClampScore(regulatory),
		TranslationComplexity: util.ClampScore(translation),
		BrandConsistency:      util.ClampScore(brand),
	}
}

func weigh(w scoring.FactorWeights, f model.QualityFactors) float64 {
	return w.Content*float64(f.ContentComplexity) +
		w.Cultural*float64(f.CulturalSensitivity) +
		w.Regulatory*float64(f.RegulatoryComplexity) +
		w.Translation*float64(f.TranslationComplexity) +
		w.Brand*float64(100-f.BrandConsistency)
}

func (uc *implUseCase) bound(v float64) int {
	return util.Clamp(util.Round(v), uc.cfg.ScoreFloor, uc.cfg.ScoreCeiling)
}

func (uc *implUseCase) predictQuality(input scoring.QualityInput) model.QualityPrediction {
	f := uc.factors(input)
	difficulty := weigh(uc.cfg.QualityWeights, f)
	riskFactors, mitigations := uc.riskNotes(input.Market, f)
	return model.QualityPrediction{
		Market:       input.Market,
		OverallScore: uc.bound(100 - uc.cfg.QualityDifficultyFactor*difficulty),
		Factors:      f,
		RiskFactors:  riskFactors,
		Mitigations:  mitigations,
	}
}

func (uc *implUseCase) assessRisk(input scoring.RiskInput) model.RiskAssessment {
	f := uc.factors(input)
	risk := uc.bound(weigh(uc.cfg.RiskWeights, f))
	riskFactors, mitigations := uc.riskNotes(input.Market, f)
	return model.RiskAssessment{
		Market:      input.Market,
		OverallRisk: risk,
		RiskLevel:   uc.riskLevel(risk),
		Factors:     f,
		RiskFactors: riskFactors,
		Mitigations: mitigations,
	}
}

func (uc *implUseCase) riskLevel(risk int) model.RiskLevel {
	switch {
	case risk >= uc.cfg.RiskHighMin:
		return model.RiskLevelHigh
	case risk >= uc.cfg.RiskMediumMin:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

func (uc *implUseCase) riskNotes(market string, f model.QualityFactors) ([]string, []string) {
	risks := []string{}
	mits := []string{}
	threshold := uc.cfg.RiskFactorMin
	if f.ContentComplexity >= threshold {
		risks = append(risks, fmt.Sprintf("High content complexity (%d)", f.ContentComplexity))
		mits = append(mits, "Simplify source copy and brief translators on key terms")
	}
	if f.CulturalSensitivity >= threshold {
		risks = append(risks, fmt.Sprintf("Cultural sensitivity for %s (%d)", market, f.CulturalSensitivity))
		mits = append(mits, "Add an in-market cultural review step")
	}
	if f.RegulatoryComplexity >= threshold {
		risks = append(risks, fmt.Sprintf("Regulatory complexity for %s (%d)", market, f.RegulatoryComplexity))
		mits = append(mits, "Plan local regulatory submission and medical-legal review")
	}
	if f.TranslationComplexity >= threshold {
		risks = append(risks, fmt.Sprintf("Translation complexity (%d)", f.TranslationComplexity))
		mits = append(mits, "Use specialised linguists and translation memory for this language")
	}
	if f.BrandConsistency < uc.cfg.BrandConsistencyMin {
		risks = append(risks, fmt.Sprintf("Brand consistency below target (%d)", f.BrandConsistency))
		mits = append(mits, "Review copy against brand voice guidelines")
	}
	return risks, mits
}
