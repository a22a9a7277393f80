package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/model"
	"localization-srv/internal/scoring"
	"localization-srv/pkg/log"
	"localization-srv/pkg/util"
)

func newTestUseCase() *implUseCase {
	return New(log.NewNop(), scoring.DefaultConfig()).(*implUseCase)
}

const e2eText = "Our drug reduces symptoms. Important safety information: do not take with alcohol. Learn more at our website."

func TestOverallWeights(t *testing.T) {
	uc := newTestUseCase()
	got := uc.overall(model.ComplexityMetrics{
		TextComplexityScore:      80,
		CulturalComplexityScore:  60,
		TechnicalComplexityScore: 40,
		VisualComplexityScore:    20,
	})
	assert.Equal(t, 53, got)
}

func TestEffortMultiplierSteps(t *testing.T) {
	uc := newTestUseCase()
	tests := map[int]float64{
		100: 2.5,
		81:  2.5,
		80:  2.0,
		61:  2.0,
		60:  1.5,
		41:  1.5,
		40:  1.2,
		21:  1.2,
		20:  1.0,
		0:   1.0,
	}
	for score, want := range tests {
		assert.Equal(t, want, uc.effortMultiplier(score), "score %d", score)
	}
}

func TestImpactFigures(t *testing.T) {
	uc := newTestUseCase()
	assert.Equal(t, 5, uc.timelineDays(53, 1))
	assert.Equal(t, 5, uc.timelineDays(53, 3))
	assert.Equal(t, 11, uc.timelineDays(53, 6))
	assert.Equal(t, 0, uc.timelineDays(0, 10))
}

func TestScoreContentEndToEnd(t *testing.T) {
	uc := newTestUseCase()
	m, err := uc.ScoreContent(context.Background(), scoring.ScoreInput{
		DocumentID:    "doc-1",
		Content:       model.PlainText(e2eText),
		TargetMarkets: []string{"Japan"},
	})
	require.NoError(t, err)

	assert.Greater(t, m.CulturalComplexityScore, 0)
	assert.Contains(t, m.Factors.MarketComplexityNotes[0], "Japan")
	assert.Equal(t, []string{"alcohol"}, m.Factors.SensitiveContent)
	assert.Equal(t, 20, m.CulturalComplexityScore)
	assert.Equal(t, 3, m.Factors.SentenceCount)
	assert.Equal(t, expectedOverall(m), m.OverallComplexityScore)
	assert.Equal(t, util.Round(float64(m.OverallComplexityScore)*0.8), m.CostImpactPercentage)
}

// expectedOverall recomputes the overall score from the sub-scores.
func expectedOverall(m model.ComplexityMetrics) int {
	return int(0.30*float64(m.TextComplexityScore) + 0.25*float64(m.CulturalComplexityScore) +
		0.25*float64(m.TechnicalComplexityScore) + 0.20*float64(m.VisualComplexityScore) + 0.5)
}

func TestTextComplexity(t *testing.T) {
	uc := newTestUseCase()
	text := strings.TrimSpace(strings.Repeat("word ", 30)) + "."

	m, err := uc.ScoreContent(context.Background(), scoring.ScoreInput{Content: model.PlainText(text)})
	require.NoError(t, err)
	// 30 words per sentence gives +30, readability 40 gives +12.
	assert.Equal(t, 42, m.TextComplexityScore)
	assert.Equal(t, 30.0, m.Factors.AvgWordsPerSentence)
	assert.Equal(t, 40.0, m.Factors.ReadabilityScore)
	assert.Contains(t, m.ComplexityBreakdown.SecondaryFactors, "Long sentences (30.0 words on average)")
}

func TestCulturalGenericMarketNote(t *testing.T) {
	uc := newTestUseCase()
	markets := []string{"Germany", "France", "Spain", "Italy", "Brazil", "Mexico"}

	m, err := uc.ScoreContent(context.Background(), scoring.ScoreInput{Content: model.PlainText("Hello."), TargetMarkets: markets})
	require.NoError(t, err)
	assert.Equal(t, []string{scoring.DefaultConfig().GenericMarketNote}, m.Factors.MarketComplexityNotes)
	assert.Equal(t, 5, m.CulturalComplexityScore)

	m, err = uc.ScoreContent(context.Background(), scoring.ScoreInput{Content: model.PlainText("Hello."), TargetMarkets: markets[:5]})
	require.NoError(t, err)
	assert.Empty(t, m.Factors.MarketComplexityNotes)
}

func TestTechnicalAndVisualFromStructuredContent(t *testing.T) {
	uc := newTestUseCase()
	content := model.Structured(map[string]any{
		"headline":        "Meet your new routine.",
		"asset_type":      "interactive video",
		"channels":        []any{"Email", "web", "email", "fax"},
		"image_count":     float64(6),
		"has_infographic": true,
	})

	m, err := uc.ScoreContent(context.Background(), scoring.ScoreInput{Content: content})
	require.NoError(t, err)

	// interactive 30 + video 25, one video format note, two channel notes.
	assert.Equal(t, 30+25+8+2*6, m.TechnicalComplexityScore)
	assert.Len(t, m.Factors.ChannelComplexityNotes, 2)
	// images, many images, infographic.
	assert.Equal(t, 36, m.VisualComplexityScore)
	assert.Contains(t, m.ComplexityBreakdown.MitigationStrategies, mitigations.layout)
	assert.Contains(t, m.ComplexityBreakdown.PrimaryDrivers, "interactive asset production")
}

func TestScoreBounds(t *testing.T) {
	uc := newTestUseCase()
	long := strings.Repeat("The FDA clinical trial of the API SDK showed efficacy in patients at Christmas with alcohol and gambling ", 500)
	inputs := []scoring.ScoreInput{
		{Content: model.PlainText("")},
		{Content: model.PlainText("   ")},
		{Content: model.PlainText(long), TargetMarkets: []string{"China", "Japan", "Saudi Arabia", "India", "Germany", "Brazil", "US"},
			AssetType: "interactive video animation pdf print", Channels: []string{"email", "social", "web", "mobile", "print", "video", "banner"},
			ImageCount: 50, HasInfographic: true},
	}
	for _, in := range inputs {
		m, err := uc.ScoreContent(context.Background(), in)
		require.NoError(t, err)
		for _, v := range []int{m.TextComplexityScore, m.CulturalComplexityScore, m.TechnicalComplexityScore, m.VisualComplexityScore, m.OverallComplexityScore} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}

func TestScoreContentIdempotent(t *testing.T) {
	uc := newTestUseCase()
	in := scoring.ScoreInput{
		Content:       model.PlainText(e2eText),
		TargetMarkets: []string{"Japan", "China", "Saudi Arabia"},
		Channels:      []string{"email", "social"},
	}
	a, err := uc.ScoreContent(context.Background(), in)
	require.NoError(t, err)
	b, err := uc.ScoreContent(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSafelyRecoversPanic(t *testing.T) {
	uc := newTestUseCase()
	err := uc.safely(context.Background(), "test", func() {
		var m map[string]int
		m["boom"] = 1
	})
	assert.ErrorIs(t, err, scoring.ErrScoringFailed)
}
