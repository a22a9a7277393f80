package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"localization-srv/internal/analysis"
	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/intelligence"
	"localization-srv/internal/model"
	"localization-srv/internal/scoring"
	"localization-srv/internal/tm"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Analysis, error) {
	args := m.Called(opts)
	return args.Get(0).(model.Analysis), args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, id string) (model.Analysis, error) {
	args := m.Called(id)
	return args.Get(0).(model.Analysis), args.Error(1)
}

func (m *mockRepository) GetByParamsHash(ctx context.Context, opts repository.GetByParamsHashOptions) (model.Analysis, error) {
	args := m.Called(opts)
	return args.Get(0).(model.Analysis), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Analysis, int64, error) {
	args := m.Called(opts)
	return args.Get(0).([]model.Analysis), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	return m.Called(opts).Error(0)
}

func (m *mockRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	return m.Called(opts).Error(0)
}

type mockArchive struct {
	mock.Mock
}

func (m *mockArchive) Save(ctx context.Context, opts repository.SaveOptions) (string, error) {
	args := m.Called(opts)
	return args.String(0), args.Error(1)
}

func (m *mockArchive) PresignDownload(ctx context.Context, opts repository.PresignOptions) (string, time.Time, error) {
	args := m.Called(opts)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type fakeProducer struct {
	events []analysis.AnalysisRequested
	err    error
}

func (f *fakeProducer) PublishAnalysisRequested(ctx context.Context, event analysis.AnalysisRequested) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeNotifier struct {
	events []analysis.AnalysisCompleted
	err    error
}

func (f *fakeNotifier) PublishAnalysisCompleted(ctx context.Context, event analysis.AnalysisCompleted) error {
	f.events = append(f.events, event)
	return f.err
}

// fakeTM returns one match per segment.
type fakeTM struct {
	tm.UseCase

	mu  sync.Mutex
	ctx model.LocalizationContext
}

func (f *fakeTM) MatchSegments(ctx context.Context, segments []model.Segment, lctx model.LocalizationContext) map[string][]model.Match {
	f.mu.Lock()
	f.ctx = lctx
	f.mu.Unlock()

	out := make(map[string][]model.Match, len(segments))
	for _, s := range segments {
		out[s.ID] = []model.Match{{TMUnitID: "tm-" + s.ID, SegmentID: s.ID, Confidence: 90, ContentType: s.Type}}
	}
	return out
}

type fakeIntelligence struct{}

func (fakeIntelligence) Brand(ctx context.Context, brandID string, text string) model.BrandIntelligence {
	return model.BrandIntelligence{BrandID: brandID, ConsistencyScore: 90, Tone: []string{}, Violations: []string{}}
}

func (fakeIntelligence) Regulatory(ctx context.Context, query intelligence.RegulatoryQuery) model.RegulatoryIntelligence {
	return model.RegulatoryIntelligence{Status: model.ComplianceStatusCompliant, MarketsChecked: query.Markets}
}

func (fakeIntelligence) Cultural(ctx context.Context, query intelligence.CulturalQuery) model.CulturalIntelligence {
	per := map[string]int{}
	for _, m := range query.Markets {
		per[m] = 85
	}
	return model.CulturalIntelligence{Appropriateness: 85, PerMarket: per}
}

type failingScoring struct {
	scoring.UseCase
}

func (failingScoring) ScoreContent(ctx context.Context, input scoring.ScoreInput) (model.ComplexityMetrics, error) {
	return model.ComplexityMetrics{}, scoring.ErrScoringFailed
}
