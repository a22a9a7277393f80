package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/model"
	"localization-srv/internal/scoring"
)

var testMetrics = model.ComplexityMetrics{
	TextComplexityScore:     40,
	CulturalComplexityScore: 20,
	OverallComplexityScore:  50,
}

func TestPredictQualityAndRiskJapan(t *testing.T) {
	uc := newTestUseCase()
	in := scoring.QualityInput{Market: "Japan", Metrics: testMetrics}

	q, err := uc.PredictQuality(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, model.QualityFactors{
		ContentComplexity:     50,
		CulturalSensitivity:   20,
		RegulatoryComplexity:  80,
		TranslationComplexity: 45,
		BrandConsistency:      80,
	}, q.Factors)
	// difficulty 44.5, quality round(100 - 35.6)
	assert.Equal(t, 64, q.OverallScore)
	assert.Contains(t, q.RiskFactors, "Regulatory complexity for Japan (80)")

	r, err := uc.AssessRisk(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 48, r.OverallRisk)
	assert.Equal(t, model.RiskLevelMedium, r.RiskLevel)
}

func TestScoreFloorAndCeiling(t *testing.T) {
	uc := newTestUseCase()
	brand := 100
	appropriate := 100
	in := scoring.QualityInput{Market: "Atlantis", BrandConsistency: &brand, CulturalAppropriateness: &appropriate}

	q, err := uc.PredictQuality(context.Background(), in)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, q.OverallScore, 20)
	assert.LessOrEqual(t, q.OverallScore, 100)

	cfg := scoring.DefaultConfig()
	cfg.DefaultRegulatoryComplexity = 0
	r, err := New(uc.l, cfg).AssessRisk(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 20, r.OverallRisk)
	assert.Equal(t, model.RiskLevelLow, r.RiskLevel)
}

func TestRiskLevels(t *testing.T) {
	uc := newTestUseCase()
	assert.Equal(t, model.RiskLevelHigh, uc.riskLevel(70))
	assert.Equal(t, model.RiskLevelMedium, uc.riskLevel(69))
	assert.Equal(t, model.RiskLevelMedium, uc.riskLevel(45))
	assert.Equal(t, model.RiskLevelLow, uc.riskLevel(44))
}

func TestMarketReadiness(t *testing.T) {
	uc := newTestUseCase()
	out, err := uc.MarketReadiness(context.Background(), scoring.ReadinessInput{
		DocumentID:              "doc-1",
		Markets:                 []string{"Japan", "US", "US"},
		Metrics:                 testMetrics,
		CulturalAppropriateness: map[string]int{"US": 90},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	jp := out["Japan"]
	assert.Equal(t, "Japan", jp.Market)
	assert.False(t, jp.Ready)

	us := out["US"]
	assert.Equal(t, 10, us.Quality.Factors.CulturalSensitivity)
	// difficulty 12.5+2+12+4+3 = 33.5, quality round(73.2)
	assert.Equal(t, 73, us.Quality.OverallScore)
	assert.Equal(t, model.RiskLevelLow, us.Risk.RiskLevel)
	assert.True(t, us.Ready)
}

func TestMarketReadinessEmpty(t *testing.T) {
	out, err := newTestUseCase().MarketReadiness(context.Background(), scoring.ReadinessInput{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
