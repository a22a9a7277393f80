package usecase

import (
	"context"
	"fmt"
	"math"

	"localization-srv/internal/lexicon"
	"localization-srv/internal/model"
	"localization-srv/internal/scoring"
	"localization-srv/pkg/util"
)

func (uc *implUseCase) ScoreContent(ctx context.Context, input scoring.ScoreInput) (model.ComplexityMetrics, error) {
	var metrics model.ComplexityMetrics
	err := uc.safely(ctx, "ScoreContent", func() {
		metrics = uc.score(input)
	})
	if err != nil {
		uc.l.Errorf(ctx, "scoring.usecase.ScoreContent: document %s markets %v: %v", input.DocumentID, input.TargetMarkets, err)
		return model.ComplexityMetrics{}, err
	}
	return metrics, nil
}

func (uc *implUseCase) score(input scoring.ScoreInput) model.ComplexityMetrics {
	cfg := uc.cfg
	input = assetMetadata(input)
	text := input.Content.ExtractText()
	regions := lexicon.Regions(input.TargetMarkets)

	stats := analyzeText(cfg, text)
	factors := model.ComplexityFactors{
		SentenceCount:          stats.sentences,
		WordCount:              stats.words,
		AvgWordsPerSentence:    round2(stats.avgWords),
		ReadabilityScore:       round2(stats.readability),
		TechnicalTerms:         stats.technical,
		MedicalTerms:           stats.medical,
		CulturalReferences:     nonNil(lexicon.CulturalRefs(text)),
		SensitiveContent:       nonNil(lexicon.Sensitive(text)),
		MarketComplexityNotes:  marketNotes(cfg, input.TargetMarkets, regions),
		FormatRequirements:     formatRequirements(input.AssetType, regions),
		ChannelComplexityNotes: channelComplexity(input.Channels),
		LayoutComplexityNotes:  layoutComplexity(cfg, input.ImageCount, input.HasInfographic, regions),
	}

	base, assetHits := assetBase(cfg, input.AssetType)

	m := model.ComplexityMetrics{
		TextComplexityScore: textScore(cfg, stats),
		CulturalComplexityScore: util.ClampScore(
			cfg.CulturalReferenceWeight*len(factors.CulturalReferences) +
				cfg.SensitiveContentWeight*len(factors.SensitiveContent) +
				cfg.MarketNoteWeight*len(factors.MarketComplexityNotes),
		),
		TechnicalComplexityScore: util.ClampScore(
			base +
				cfg.FormatRequirementWeight*len(factors.FormatRequirements) +
				cfg.ChannelNoteWeight*len(factors.ChannelComplexityNotes),
		),
		VisualComplexityScore: util.ClampScore(cfg.LayoutNoteWeight * len(factors.LayoutComplexityNotes)),
		Factors:               factors,
	}

	m.OverallComplexityScore = uc.overall(m)
	m.EffortMultiplier = uc.effortMultiplier(m.OverallComplexityScore)
	m.TimelineImpactDays = uc.timelineDays(m.OverallComplexityScore, languageCount(input))
	m.CostImpactPercentage = util.Round(float64(m.OverallComplexityScore) * cfg.CostFactor)
	m.ComplexityBreakdown = uc.breakdown(m, stats, assetHits)
	return m
}

func (uc *implUseCase) overall(m model.ComplexityMetrics) int {
	w := uc.cfg.Weights
	return util.ClampScore(util.Round(
		w.Text*float64(m.TextComplexityScore) +
			w.Cultural*float64(m.CulturalComplexityScore) +
			w.Technical*float64(m.TechnicalComplexityScore) +
			w.Visual*float64(m.VisualComplexityScore),
	))
}

func (uc *implUseCase) effortMultiplier(overall int) float64 {
	for _, s := range uc.cfg.EffortSteps {
		if overall > s.Above {
			return s.Multiplier
		}
	}
	return uc.cfg.DefaultEffortMultiplier
}

func (uc *implUseCase) timelineDays(overall, languages int) int {
	scale := math.Max(1, float64(languages)/uc.cfg.LanguagesPerTimelineUnit)
	return util.Round(float64(overall) / uc.cfg.TimelineDivisor * scale)
}

func languageCount(input scoring.ScoreInput) int {
	if len(input.TargetLanguages) > 0 {
		return len(input.TargetLanguages)
	}
	return len(input.TargetMarkets)
}

var mitigations = struct {
	technical, medical, cultural, sensitive, market, format, channel, layout string
}{
	technical: "Provide a terminology glossary and lock approved technical terms",
	medical:   "Route medical terminology through medical-legal review",
	cultural:  "Engage in-market reviewers to adapt cultural references",
	sensitive: "Escalate sensitive topics to local compliance before translation",
	market:    "Schedule market-specific regulatory review early",
	format:    "Validate script, encoding and expansion in desktop publishing",
	channel:   "Adapt copy to each channel's format limits",
	layout:    "Budget for visual asset localization and layout rework",
}

// breakdown sorts factor descriptions into primary and secondary by their dimension's score.
func (uc *implUseCase) breakdown(m model.ComplexityMetrics, stats textStats, assetHits []string) model.ComplexityBreakdown {
	f := m.Factors

	var textFactors []string
	if above(stats.avgWords, uc.cfg.WordsPerSentenceAbove) > 0 {
		textFactors = append(textFactors, fmt.Sprintf("Long sentences (%.1f words on average)", stats.avgWords))
	}
	if n := len(f.TechnicalTerms); n > 0 {
		textFactors = append(textFactors, fmt.Sprintf("%d technical terms", n))
	}
	if n := len(f.MedicalTerms); n > 0 {
		textFactors = append(textFactors, fmt.Sprintf("%d medical terms", n))
	}
	if below(stats.readability, uc.cfg.ReadabilityBelow) > 0 {
		textFactors = append(textFactors, fmt.Sprintf("Low readability (%.0f)", stats.readability))
	}

	var culturalFactors []string
	if n := len(f.CulturalReferences); n > 0 {
		culturalFactors = append(culturalFactors, fmt.Sprintf("%d cultural references", n))
	}
	if n := len(f.SensitiveContent); n > 0 {
		culturalFactors = append(culturalFactors, fmt.Sprintf("%d sensitive topics", n))
	}
	culturalFactors = append(culturalFactors, f.MarketComplexityNotes...)

	var technicalFactors []string
	for _, a := range assetHits {
		technicalFactors = append(technicalFactors, fmt.Sprintf("%s asset production", a))
	}
	technicalFactors = append(technicalFactors, f.FormatRequirements...)
	technicalFactors = append(technicalFactors, f.ChannelComplexityNotes...)

	b := model.ComplexityBreakdown{
		PrimaryDrivers:       []string{},
		SecondaryFactors:     []string{},
		MitigationStrategies: []string{},
	}
	for _, dim := range []struct {
		score   int
		factors []string
	}{
		{m.TextComplexityScore, textFactors},
		{m.CulturalComplexityScore, culturalFactors},
		{m.TechnicalComplexityScore, technicalFactors},
		{m.VisualComplexityScore, f.LayoutComplexityNotes},
	} {
		if dim.score >= uc.cfg.PrimaryDriverMin {
			b.PrimaryDrivers = append(b.PrimaryDrivers, dim.factors...)
		} else {
			b.SecondaryFactors = append(b.SecondaryFactors, dim.factors...)
		}
	}

	for _, mit := range []struct {
		present bool
		text    string
	}{
		{len(f.TechnicalTerms) > 0, mitigations.technical},
		{len(f.MedicalTerms) > 0, mitigations.medical},
		{len(f.CulturalReferences) > 0, mitigations.cultural},
		{len(f.SensitiveContent) > 0, mitigations.sensitive},
		{len(f.MarketComplexityNotes) > 0, mitigations.market},
		{len(f.FormatRequirements) > 0, mitigations.format},
		{len(f.ChannelComplexityNotes) > 0, mitigations.channel},
		{len(f.LayoutComplexityNotes) > 0, mitigations.layout},
	} {
		if mit.present {
			b.MitigationStrategies = append(b.MitigationStrategies, mit.text)
		}
	}
	return b
}
