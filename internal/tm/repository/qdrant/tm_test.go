package qdrant

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/embedding"
	"localization-srv/internal/model"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
	pkgQdrant "localization-srv/pkg/qdrant"
)

type mockEmbedding struct {
	mock.Mock
}

func (m *mockEmbedding) Generate(ctx context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(embedding.GenerateOutput), args.Error(1)
}

func (m *mockEmbedding) GenerateMany(ctx context.Context, input embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(embedding.GenerateManyOutput), args.Error(1)
}

type fakeQdrant struct {
	pkgQdrant.IQdrant
	results  []pkgQdrant.SearchResult
	err      error
	filter   *pb.Filter
	upserted []pkgQdrant.Point
}

func (f *fakeQdrant) SearchWithFilter(_ context.Context, _ string, _ []float32, _ uint64, filter *pb.Filter) ([]pkgQdrant.SearchResult, error) {
	f.filter = filter
	return f.results, f.err
}

func (f *fakeQdrant) UpsertPoints(_ context.Context, _ string, points []pkgQdrant.Point) error {
	f.upserted = points
	return f.err
}

func TestSearchConvertsPayload(t *testing.T) {
	emb := new(mockEmbedding)
	emb.On("Generate", mock.Anything, embedding.GenerateInput{Text: "Do not take with alcohol."}).
		Return(embedding.GenerateOutput{Vector: []float32{0.1, 0.2}}, nil)

	client := &fakeQdrant{results: []pkgQdrant.SearchResult{{
		ID:    "u-1",
		Score: 0.914,
		Payload: map[string]any{
			"source_text":              "Do not take with alcohol.",
			"target_text":              "Nicht mit Alkohol einnehmen.",
			"brand_consistency_score":  int64(90),
			"regulatory_status":        "approved",
			"cultural_appropriateness": int64(75),
			"cultural_notes":           []any{"formal register"},
			"usage_count":              int64(4),
			"last_used":                "2026-01-02T03:04:05Z",
		},
	}}}

	repo := New(client, emb, "translation_memory", log.NewNop())
	matches, err := repo.Search(context.Background(), repository.SearchOptions{
		Text:           "Do not take with alcohol.",
		SourceLanguage: "en",
		TargetLanguage: "de",
		BrandID:        "brand-1",
		Limit:          5,
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, "u-1", m.TMUnitID)
	assert.Equal(t, 91, m.MatchPercentage)
	assert.Equal(t, 90, m.BrandConsistencyScore)
	assert.Equal(t, model.RegulatoryStatusApproved, m.RegulatoryStatus)
	require.NotNil(t, m.CulturalContext)
	assert.Equal(t, 75, m.CulturalContext.Appropriateness)
	assert.Equal(t, []string{"formal register"}, m.CulturalContext.Notes)
	assert.Equal(t, 4, m.UsageCount)
	require.NotNil(t, m.LastUsed)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), *m.LastUsed)
	assert.Equal(t, Origin, m.Origin)
	require.NotNil(t, client.filter)
	assert.Len(t, client.filter.Must, 3)
}

func TestSearchEmbedFailure(t *testing.T) {
	emb := new(mockEmbedding)
	emb.On("Generate", mock.Anything, mock.Anything).Return(embedding.GenerateOutput{}, errors.New("voyage down"))

	repo := New(&fakeQdrant{}, emb, "translation_memory", log.NewNop())
	_, err := repo.Search(context.Background(), repository.SearchOptions{Text: "x"})
	assert.Error(t, err)
}

func TestIndexBuildsPoints(t *testing.T) {
	emb := new(mockEmbedding)
	emb.On("GenerateMany", mock.Anything, embedding.GenerateManyInput{Texts: []string{"a", "b"}}).
		Return(embedding.GenerateManyOutput{Vectors: [][]float32{{1}, {2}}}, nil)

	client := &fakeQdrant{}
	repo := New(client, emb, "translation_memory", log.NewNop())
	score := 80
	err := repo.Index(context.Background(), repository.IndexOptions{Units: []model.TMUnit{
		{ID: "11111111-1111-1111-1111-111111111111", SourceText: "a", CulturalAppropriateness: &score, CulturalNotes: []string{"n"}},
		{ID: "22222222-2222-2222-2222-222222222222", SourceText: "b"},
	}})
	require.NoError(t, err)
	require.Len(t, client.upserted, 2)
	assert.Equal(t, []float32{2}, client.upserted[1].Vector)
	assert.Equal(t, int64(80), client.upserted[0].Payload["cultural_appropriateness"])
	assert.Equal(t, []any{"n"}, client.upserted[0].Payload["cultural_notes"])
	_, ok := client.upserted[1].Payload["cultural_appropriateness"]
	assert.False(t, ok)
}
