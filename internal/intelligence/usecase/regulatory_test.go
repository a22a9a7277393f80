package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/intelligence"
	"localization-srv/internal/intelligence/repository"
	"localization-srv/internal/model"
)

func rulesFor(market string) repository.ListRulesOptions {
	return repository.ListRulesOptions{BrandID: "brand-1", Market: market, TherapeuticArea: "oncology"}
}

func TestRegulatoryStatus(t *testing.T) {
	tcs := map[string]struct {
		text     string
		status   model.ComplianceStatus
		findings int
	}{
		"no match":    {text: "Talk to your doctor.", status: model.ComplianceStatusCompliant},
		"medium only": {text: "Clinically proven relief.", status: model.ComplianceStatusNeedsReview, findings: 1},
		"high wins":   {text: "Clinically proven to CURE pain.", status: model.ComplianceStatusNonCompliant, findings: 2},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := new(mockRepository)
			repo.On("ListRegulatoryRules", mock.Anything, rulesFor("Japan")).Return([]model.RegulatoryRule{
				{ID: "r1", Market: "Japan", RuleName: "cure claim", CompliancePattern: `\bcure[sd]?\b`, RiskLevel: model.RiskCategoryHigh},
			}, nil)
			repo.On("ListRegulatoryRules", mock.Anything, rulesFor("US")).Return([]model.RegulatoryRule{
				{ID: "r2", Market: "US", RuleName: "efficacy claim", CompliancePattern: `clinically proven`, RiskLevel: model.RiskCategoryMedium},
				{ID: "r3", Market: "US", RuleName: "broken", CompliancePattern: `(`, RiskLevel: model.RiskCategoryHigh},
			}, nil)

			got := newTestUseCase(repo, nil, intelligence.DefaultConfig()).Regulatory(context.Background(), intelligence.RegulatoryQuery{
				BrandID:         "brand-1",
				Markets:         []string{"Japan", "US", "Japan"},
				TherapeuticArea: "oncology",
				Text:            tc.text,
			})

			assert.Equal(t, tc.status, got.Status)
			assert.Len(t, got.Findings, tc.findings)
			assert.Equal(t, []string{"Japan", "US"}, got.MarketsChecked)
			assert.Equal(t, 2, got.RulesEvaluated)
		})
	}
}

func TestRegulatoryAbsorbsMarketFailure(t *testing.T) {
	repo := new(mockRepository)
	repo.On("ListRegulatoryRules", mock.Anything, rulesFor("Japan")).Return(nil, errors.New("timeout"))
	repo.On("ListRegulatoryRules", mock.Anything, rulesFor("US")).Return([]model.RegulatoryRule{
		{ID: "r1", Market: "US", RuleName: "cure claim", CompliancePattern: `cure`, RiskLevel: model.RiskCategoryHigh},
	}, nil)

	got := newTestUseCase(repo, nil, intelligence.DefaultConfig()).Regulatory(context.Background(), intelligence.RegulatoryQuery{
		BrandID:         "brand-1",
		Markets:         []string{"Japan", "US"},
		TherapeuticArea: "oncology",
		Text:            "A cure at last",
	})

	assert.Equal(t, model.ComplianceStatusNonCompliant, got.Status)
	require.Len(t, got.Findings, 1)
	assert.Equal(t, "US", got.Findings[0].Market)
	assert.Equal(t, "cure", got.Findings[0].Matched)
}

func TestRegulatoryLowRiskIsInformational(t *testing.T) {
	repo := new(mockRepository)
	repo.On("ListRegulatoryRules", mock.Anything, mock.Anything).Return([]model.RegulatoryRule{
		{ID: "r1", RuleName: "trademark", CompliancePattern: `brandex`, RiskLevel: model.RiskCategoryLow},
	}, nil)

	got := newTestUseCase(repo, nil, intelligence.DefaultConfig()).Regulatory(context.Background(), intelligence.RegulatoryQuery{
		Markets: []string{"EU"},
		Text:    "Ask about Brandex",
	})

	assert.Equal(t, model.ComplianceStatusCompliant, got.Status)
	assert.Len(t, got.Findings, 1)
}

func TestRegulatoryNoMarkets(t *testing.T) {
	repo := new(mockRepository)
	got := newTestUseCase(repo, nil, intelligence.DefaultConfig()).Regulatory(context.Background(), intelligence.RegulatoryQuery{Text: "cure"})

	assert.Equal(t, model.ComplianceStatusCompliant, got.Status)
	assert.Empty(t, got.MarketsChecked)
	assert.NotNil(t, got.Findings)
	repo.AssertNotCalled(t, "ListRegulatoryRules", mock.Anything, mock.Anything)
}
