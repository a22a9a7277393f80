package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/model"
	"localization-srv/internal/tm"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
	"localization-srv/pkg/util"
)

var testContext = model.LocalizationContext{
	BrandID:        "brand-1",
	SourceLanguage: "en",
	TargetLanguage: "ja",
}

func newTestUseCase(store repository.Store, cache repository.CacheRepository) *implUseCase {
	return New(log.NewNop(), store, cache, tm.DefaultConfig()).(*implUseCase)
}

func TestMatchSegmentRanksCompliantFirstForSafety(t *testing.T) {
	store := new(mockStore)
	store.On("Search", mock.Anything, mock.Anything).Return([]repository.RawMatch{
		{TMUnitID: "noncompliant", MatchPercentage: 95, RegulatoryStatus: model.RegulatoryStatusPending},
		{TMUnitID: "compliant", MatchPercentage: 70, RegulatoryStatus: model.RegulatoryStatusApproved},
	}, nil)

	uc := newTestUseCase(store, nil)
	seg := model.Segment{ID: "seg-2", Text: "Do not take with alcohol.", Type: model.SegmentTypeSafety}
	got := uc.MatchSegment(context.Background(), seg, testContext)

	require.Len(t, got, 2)
	assert.Equal(t, "compliant", got[0].TMUnitID)
	assert.Equal(t, "noncompliant", got[1].TMUnitID)
	assert.Equal(t, model.SegmentTypeSafety, got[0].ContentType)
	assert.Equal(t, "seg-2", got[0].SegmentID)
}

func TestMatchSegmentRanksByBlendForBody(t *testing.T) {
	store := new(mockStore)
	store.On("Search", mock.Anything, mock.Anything).Return([]repository.RawMatch{
		{TMUnitID: "a", MatchPercentage: 90, BrandConsistencyScore: 40},
		{TMUnitID: "b", MatchPercentage: 80, BrandConsistencyScore: 80},
		{TMUnitID: "c", MatchPercentage: 100, BrandConsistencyScore: 25},
	}, nil)

	got := newTestUseCase(store, nil).MatchSegment(context.Background(),
		model.Segment{ID: "seg-1", Text: "Relief all day.", Type: model.SegmentTypeBody}, testContext)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].TMUnitID, got[1].TMUnitID, got[2].TMUnitID})
}

func TestEnrichFlagsAndConfidence(t *testing.T) {
	uc := newTestUseCase(new(mockStore), nil)
	seg := model.Segment{ID: "seg-1", Type: model.SegmentTypeBody}

	m := uc.enrich(seg, repository.RawMatch{
		MatchPercentage:       80,
		BrandConsistencyScore: 90,
		RegulatoryStatus:      model.RegulatoryStatusApproved,
		CulturalContext:       &model.CulturalContext{Appropriateness: 70},
	})
	assert.Equal(t, 87, m.Confidence)
	assert.True(t, m.ValidationFlags.BrandTerminology)
	assert.True(t, m.ValidationFlags.RegulatoryCompliance)
	assert.True(t, m.ValidationFlags.CulturalSensitivity)

	m = uc.enrich(seg, repository.RawMatch{
		MatchPercentage:       60,
		BrandConsistencyScore: 79,
		RegulatoryStatus:      model.RegulatoryStatusRejected,
		Confidence:            42,
	})
	assert.Equal(t, 42, m.Confidence)
	assert.False(t, m.ValidationFlags.BrandTerminology)
	assert.False(t, m.ValidationFlags.RegulatoryCompliance)
	assert.False(t, m.ValidationFlags.CulturalSensitivity)
}

func TestMatchSegmentSourceErrorYieldsEmpty(t *testing.T) {
	store := new(mockStore)
	store.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	got := newTestUseCase(store, nil).MatchSegment(context.Background(),
		model.Segment{ID: "seg-1", Text: "x"}, testContext)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchSegmentTimeout(t *testing.T) {
	store := new(mockStore)
	release := make(chan struct{})
	defer close(release)
	store.On("Search", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return([]repository.RawMatch{{TMUnitID: "late"}}, nil)

	cfg := tm.DefaultConfig()
	cfg.MatchTimeout = 20 * time.Millisecond
	uc := New(log.NewNop(), store, nil, cfg)

	start := time.Now()
	got := uc.MatchSegment(context.Background(), model.Segment{ID: "seg-1", Text: "x"}, testContext)
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), time.Second)
}

func TestMatchSegmentCache(t *testing.T) {
	key := cacheKeyPrefix + util.Hash("Learn more.", "en", "ja", "brand-1")

	t.Run("hit skips the source", func(t *testing.T) {
		store := new(mockStore)
		cache := new(mockCache)
		cache.On("GetMatches", mock.Anything, key).Return([]repository.RawMatch{{TMUnitID: "cached", MatchPercentage: 90}}, nil)

		got := newTestUseCase(store, cache).MatchSegment(context.Background(),
			model.Segment{ID: "seg-1", Text: "Learn more.", Type: model.SegmentTypeCTA}, testContext)
		require.Len(t, got, 1)
		assert.Equal(t, "cached", got[0].TMUnitID)
		store.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("miss saves", func(t *testing.T) {
		store := new(mockStore)
		cache := new(mockCache)
		raws := []repository.RawMatch{{TMUnitID: "fresh"}}
		cache.On("GetMatches", mock.Anything, key).Return(nil, repository.ErrCacheMiss)
		store.On("Search", mock.Anything, mock.Anything).Return(raws, nil)
		cache.On("SaveMatches", mock.Anything, repository.SaveMatchesOptions{Key: key, Matches: raws, TTL: 10 * time.Minute}).Return(nil)

		got := newTestUseCase(store, cache).MatchSegment(context.Background(),
			model.Segment{ID: "seg-1", Text: "Learn more."}, testContext)
		require.Len(t, got, 1)
		cache.AssertExpectations(t)
	})

	t.Run("bypassed without brand", func(t *testing.T) {
		store := new(mockStore)
		cache := new(mockCache)
		store.On("Search", mock.Anything, mock.Anything).Return([]repository.RawMatch{}, nil)

		lctx := testContext
		lctx.BrandID = ""
		newTestUseCase(store, cache).MatchSegment(context.Background(), model.Segment{ID: "seg-1", Text: "Learn more."}, lctx)
		cache.AssertNotCalled(t, "GetMatches", mock.Anything, mock.Anything)
	})
}

func TestMatchSegmentsReassociatesByID(t *testing.T) {
	store := new(mockStore)
	store.On("Search", mock.Anything, mock.MatchedBy(func(o repository.SearchOptions) bool { return o.Text == "one" })).
		Return([]repository.RawMatch{{TMUnitID: "u-one"}}, nil)
	store.On("Search", mock.Anything, mock.MatchedBy(func(o repository.SearchOptions) bool { return o.Text == "two" })).
		Return(nil, errors.New("boom"))
	store.On("Search", mock.Anything, mock.MatchedBy(func(o repository.SearchOptions) bool { return o.Text == "three" })).
		Return([]repository.RawMatch{{TMUnitID: "u-three"}}, nil)

	segments := []model.Segment{
		{ID: "seg-1", Text: "one"},
		{ID: "seg-2", Text: "two"},
		{ID: "seg-3", Text: "three"},
	}
	got := newTestUseCase(store, nil).MatchSegments(context.Background(), segments, model.LocalizationContext{})

	require.Len(t, got, 3)
	assert.Equal(t, "u-one", got["seg-1"][0].TMUnitID)
	assert.Empty(t, got["seg-2"])
	assert.Equal(t, "u-three", got["seg-3"][0].TMUnitID)
}

func TestMatchSegmentKeepsEveryCandidate(t *testing.T) {
	raw := make([]repository.RawMatch, 12)
	for i := range raw {
		raw[i] = repository.RawMatch{TMUnitID: string(rune('a' + i)), MatchPercentage: 60 + i, BrandConsistencyScore: 50}
	}
	store := new(mockStore)
	store.On("Search", mock.Anything, mock.MatchedBy(func(opt repository.SearchOptions) bool {
		return opt.Limit == 5
	})).Return(raw, nil)

	cfg := tm.DefaultConfig()
	cfg.MatchLimit = 5
	uc := New(log.NewNop(), store, nil, cfg)

	got := uc.MatchSegment(context.Background(),
		model.Segment{ID: "seg-1", Text: "Relief all day.", Type: model.SegmentTypeBody}, testContext)

	assert.Len(t, got, len(raw))
	assert.Equal(t, string(rune('a'+11)), got[0].TMUnitID)
	store.AssertExpectations(t)
}
