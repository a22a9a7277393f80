package composite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/model"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
)

type stubStore struct {
	name     string
	matches  []repository.RawMatch
	err      error
	indexed  int
	indexErr error
}

func (s *stubStore) Name() string { return s.name }

func (s *stubStore) Search(context.Context, repository.SearchOptions) ([]repository.RawMatch, error) {
	return s.matches, s.err
}

func (s *stubStore) Index(_ context.Context, opt repository.IndexOptions) error {
	s.indexed += len(opt.Units)
	return s.indexErr
}

func TestSearchMergesByUnitID(t *testing.T) {
	semantic := &stubStore{name: "semantic", matches: []repository.RawMatch{
		{TMUnitID: "a", MatchPercentage: 70, Origin: "semantic"},
		{TMUnitID: "b", MatchPercentage: 90, Origin: "semantic"},
	}}
	lexical := &stubStore{name: "lexical", matches: []repository.RawMatch{
		{TMUnitID: "a", MatchPercentage: 85, Origin: "lexical"},
		{TMUnitID: "c", MatchPercentage: 60, Origin: "lexical"},
	}}

	repo := New(log.NewNop(), semantic, lexical)
	got, err := repo.Search(context.Background(), repository.SearchOptions{Text: "x"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].TMUnitID)
	assert.Equal(t, 85, got[0].MatchPercentage)
	assert.Equal(t, "lexical", got[0].Origin)
	assert.Equal(t, "b", got[1].TMUnitID)
	assert.Equal(t, "c", got[2].TMUnitID)
	assert.Equal(t, "semantic+lexical", repo.Name())
}

func TestSearchPartialFailure(t *testing.T) {
	ok := &stubStore{name: "lexical", matches: []repository.RawMatch{{TMUnitID: "a", MatchPercentage: 50}}}
	bad := &stubStore{name: "semantic", err: errors.New("down")}

	got, err := New(log.NewNop(), bad, ok).Search(context.Background(), repository.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSearchAllFail(t *testing.T) {
	bad := &stubStore{name: "semantic", err: errors.New("down")}
	_, err := New(log.NewNop(), bad).Search(context.Background(), repository.SearchOptions{})
	assert.Error(t, err)

	_, err = New(log.NewNop()).Search(context.Background(), repository.SearchOptions{})
	assert.ErrorIs(t, err, ErrNoStores)
}

func TestIndexWritesEveryStore(t *testing.T) {
	a := &stubStore{name: "a"}
	b := &stubStore{name: "b", indexErr: errors.New("boom")}

	err := New(log.NewNop(), a, b).Index(context.Background(), repository.IndexOptions{Units: make([]model.TMUnit, 2)})
	assert.Error(t, err)
	assert.Equal(t, 2, a.indexed)
	assert.Equal(t, 2, b.indexed)
}
