package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/analysis"
	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/model"
	"localization-srv/internal/recommendation"
	recommendationUsecase "localization-srv/internal/recommendation/usecase"
	"localization-srv/internal/scoring"
	scoringUsecase "localization-srv/internal/scoring/usecase"
	segmentationUsecase "localization-srv/internal/segmentation/usecase"
	"localization-srv/pkg/log"
)

const pipelineText = "Our drug reduces symptoms. Important safety information: do not take with alcohol. Learn more at our website."

var (
	fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	testUser = model.Scope{UserID: "u1", WorkspaceID: "w1"}
)

type fixture struct {
	repo     *mockRepository
	archive  *mockArchive
	producer *fakeProducer
	notifier *fakeNotifier
	tm       *fakeTM
	uc       *implUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:     new(mockRepository),
		archive:  new(mockArchive),
		producer: &fakeProducer{},
		notifier: &fakeNotifier{},
		tm:       &fakeTM{},
	}
	l := log.NewNop()
	f.uc = New(l, f.repo, f.archive, f.producer, f.notifier, Pipeline{
		Segmentation:   segmentationUsecase.New(l),
		TM:             f.tm,
		Intelligence:   fakeIntelligence{},
		Scoring:        scoringUsecase.New(l, scoring.DefaultConfig()),
		Recommendation: recommendationUsecase.New(l, recommendation.DefaultConfig()),
	}, analysis.Config{}).(*implUseCase)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func pipelineInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		DocumentID:      "doc-1",
		Content:         model.PlainText(pipelineText),
		BrandID:         "brand-1",
		SourceLanguage:  "en",
		TargetLanguages: []string{"ja"},
		TargetMarkets:   []string{"Japan"},
	}
}

func TestAnalyzeRunsPipeline(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Create", mock.MatchedBy(func(o repository.CreateOptions) bool {
		return o.Status == model.AnalysisStatusProcessing && o.UserID == "u1" && o.ParamsHash != "" && len(o.Request) > 0
	})).Return(model.Analysis{}, nil)
	f.archive.On("Save", mock.Anything).Return("analyses/x.json", nil)
	f.repo.On("UpdateCompleted", mock.MatchedBy(func(o repository.UpdateCompletedOptions) bool {
		return o.ReportObject == "analyses/x.json" && o.SegmentCount > 0 && o.MatchCount == o.SegmentCount && o.ExportReady
	})).Return(nil)

	report, err := f.uc.Analyze(context.Background(), testUser, pipelineInput())
	require.NoError(t, err)

	assert.NotEmpty(t, report.AnalysisID)
	assert.Equal(t, "doc-1", report.DocumentID)
	assert.NotEmpty(t, report.Segments)
	assert.Len(t, report.Matches, len(report.Segments))
	assert.Greater(t, report.Complexity.CulturalComplexityScore, 0)
	assert.Contains(t, report.Readiness, "Japan")
	assert.True(t, report.Recommendations.ExportReadiness)
	assert.Len(t, report.Recommendations.BestMatches, min(5, len(report.Segments)))
	assert.Equal(t, fixedNow, report.GeneratedAt)

	assert.Equal(t, "ja", f.tm.ctx.TargetLanguage)
	assert.Equal(t, "brand-1", f.tm.ctx.BrandID)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, report.AnalysisID, f.notifier.events[0].AnalysisID)
	assert.Equal(t, "analyses/x.json", f.notifier.events[0].ReportObject)
	f.repo.AssertExpectations(t)
}

func TestAnalyzeSafetySegmentsAreStable(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Create", mock.Anything).Return(model.Analysis{}, nil)
	f.repo.On("UpdateCompleted", mock.Anything).Return(nil)
	f.archive.On("Save", mock.Anything).Return("obj", nil)

	first, err := f.uc.Analyze(context.Background(), testUser, pipelineInput())
	require.NoError(t, err)
	second, err := f.uc.Analyze(context.Background(), testUser, pipelineInput())
	require.NoError(t, err)

	safety := func(r model.AnalysisReport) []string {
		out := []string{}
		for _, s := range r.Segments {
			if s.Type == model.SegmentTypeSafety {
				out = append(out, s.Text)
			}
		}
		return out
	}
	assert.NotEmpty(t, safety(first))
	assert.Equal(t, safety(first), safety(second))
	assert.Equal(t, first.Complexity, second.Complexity)
}

func TestAnalyzeEmptyContent(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Analyze(context.Background(), testUser, analysis.AnalyzeInput{Content: model.PlainText("   ")})

	assert.ErrorIs(t, err, analysis.ErrEmptyContent)
	f.repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAnalyzeSurvivesSideEffectFailures(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("rabbit down")
	f.repo.On("Create", mock.Anything).Return(model.Analysis{}, errors.New("db down"))
	f.archive.On("Save", mock.Anything).Return("", errors.New("minio down"))

	report, err := f.uc.Analyze(context.Background(), testUser, pipelineInput())
	require.NoError(t, err)

	assert.NotEmpty(t, report.Segments)
	f.repo.AssertNotCalled(t, "UpdateCompleted", mock.Anything)
	require.Len(t, f.notifier.events, 1)
	assert.Empty(t, f.notifier.events[0].ReportObject)
}

func TestAnalyzeScoringFailureMarksFailed(t *testing.T) {
	f := newFixture(t)
	f.uc.pipeline.Scoring = failingScoring{}
	f.repo.On("Create", mock.Anything).Return(model.Analysis{}, nil)
	f.repo.On("UpdateFailed", mock.Anything).Return(nil)

	_, err := f.uc.Analyze(context.Background(), testUser, pipelineInput())

	assert.ErrorIs(t, err, scoring.ErrScoringFailed)
	f.repo.AssertCalled(t, "UpdateFailed", mock.Anything)
	f.archive.AssertNotCalled(t, "Save", mock.Anything)
	assert.Empty(t, f.notifier.events)
}

func TestFingerprintDependsOnWorkspace(t *testing.T) {
	_, a, err := fingerprint(model.Scope{WorkspaceID: "w1"}, pipelineInput())
	require.NoError(t, err)
	_, b, err := fingerprint(model.Scope{WorkspaceID: "w2"}, pipelineInput())
	require.NoError(t, err)
	_, c, err := fingerprint(model.Scope{WorkspaceID: "w1", UserID: "other"}, pipelineInput())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
}
