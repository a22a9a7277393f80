package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"localization-srv/internal/model"
	"localization-srv/internal/tm"
	"localization-srv/internal/tm/repository"
)

func TestUpsert(t *testing.T) {
	store := new(mockStore)
	var indexed []model.TMUnit
	store.On("Index", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { indexed = args.Get(1).(repository.IndexOptions).Units }).
		Return(nil)

	out, err := newTestUseCase(store, nil).Upsert(context.Background(), model.Scope{UserID: "u"}, tm.UpsertInput{Units: []model.TMUnit{
		{SourceText: " Learn more. ", TargetText: "詳しくはこちら", SourceLanguage: "en", TargetLanguage: "ja", BrandConsistencyScore: 120},
	}})
	require.NoError(t, err)
	require.Len(t, out.IDs, 1)
	_, err = uuid.Parse(out.IDs[0])
	assert.NoError(t, err)

	require.Len(t, indexed, 1)
	assert.Equal(t, "Learn more.", indexed[0].SourceText)
	assert.Equal(t, model.RegulatoryStatusPending, indexed[0].RegulatoryStatus)
	assert.Equal(t, 100, indexed[0].BrandConsistencyScore)
	assert.False(t, indexed[0].CreatedAt.IsZero())
}

func TestUpsertInvalidatesMatchCache(t *testing.T) {
	tcs := map[string]error{
		"invalidated":         nil,
		"invalidation failed": errors.New("redis down"),
	}
	for name, invalidateErr := range tcs {
		t.Run(name, func(t *testing.T) {
			store := new(mockStore)
			store.On("Index", mock.Anything, mock.Anything).Return(nil)
			cache := new(mockCache)
			cache.On("Invalidate", mock.Anything).Return(invalidateErr).Once()

			out, err := newTestUseCase(store, cache).Upsert(context.Background(), model.Scope{}, tm.UpsertInput{Units: []model.TMUnit{
				{SourceText: "a", TargetText: "b", SourceLanguage: "en", TargetLanguage: "de"},
			}})
			require.NoError(t, err)
			assert.Len(t, out.IDs, 1)
			cache.AssertExpectations(t)
		})
	}
}

func TestUpsertIndexFailureKeepsCache(t *testing.T) {
	store := new(mockStore)
	store.On("Index", mock.Anything, mock.Anything).Return(errors.New("qdrant down"))
	cache := new(mockCache)

	_, err := newTestUseCase(store, cache).Upsert(context.Background(), model.Scope{}, tm.UpsertInput{Units: []model.TMUnit{
		{SourceText: "a", TargetText: "b", SourceLanguage: "en", TargetLanguage: "de"},
	}})
	assert.ErrorIs(t, err, tm.ErrIndexFailed)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestUpsertValidation(t *testing.T) {
	uc := newTestUseCase(new(mockStore), nil)
	ctx := context.Background()

	_, err := uc.Upsert(ctx, model.Scope{}, tm.UpsertInput{})
	assert.ErrorIs(t, err, tm.ErrNoUnits)

	tests := []model.TMUnit{
		{TargetText: "b", SourceLanguage: "en", TargetLanguage: "de"},
		{SourceText: "a", SourceLanguage: "en", TargetLanguage: "de"},
		{SourceText: "a", TargetText: "b"},
		{ID: "not-a-uuid", SourceText: "a", TargetText: "b", SourceLanguage: "en", TargetLanguage: "de"},
		{SourceText: "a", TargetText: "b", SourceLanguage: "en", TargetLanguage: "de", RegulatoryStatus: "maybe"},
	}
	for _, u := range tests {
		_, err := uc.Upsert(ctx, model.Scope{}, tm.UpsertInput{Units: []model.TMUnit{u}})
		assert.ErrorIs(t, err, tm.ErrInvalidUnit)
	}
}

func TestUpsertIndexFailure(t *testing.T) {
	store := new(mockStore)
	store.On("Index", mock.Anything, mock.Anything).Return(errors.New("qdrant down"))

	_, err := newTestUseCase(store, nil).Upsert(context.Background(), model.Scope{}, tm.UpsertInput{Units: []model.TMUnit{
		{SourceText: "a", TargetText: "b", SourceLanguage: "en", TargetLanguage: "de"},
	}})
	assert.ErrorIs(t, err, tm.ErrIndexFailed)
}

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImport(t *testing.T) {
	store := new(mockStore)
	var indexed []model.TMUnit
	store.On("Index", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { indexed = args.Get(1).(repository.IndexOptions).Units }).
		Return(nil)

	buf := workbook(t,
		[]any{"Source Text", "Target Text", "Target Language", "Status", "Brand Consistency"},
		[]any{"Learn more.", "En savoir plus.", "fr", "approved", "88"},
		[]any{"", "orphan", "fr", "", ""},
		[]any{"Do not take with alcohol.", "Ne pas prendre avec de l'alcool.", "", "Approved", ""},
	)

	out, err := newTestUseCase(store, nil).Import(context.Background(), model.Scope{}, tm.ImportInput{
		Reader:                buf,
		DefaultBrandID:        "brand-1",
		DefaultSourceLanguage: "en",
		DefaultTargetLanguage: "de",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Imported)
	assert.Equal(t, 1, out.Skipped)

	require.Len(t, indexed, 2)
	assert.Equal(t, "fr", indexed[0].TargetLanguage)
	assert.Equal(t, 88, indexed[0].BrandConsistencyScore)
	assert.Equal(t, model.RegulatoryStatusApproved, indexed[0].RegulatoryStatus)
	assert.Equal(t, "de", indexed[1].TargetLanguage)
	assert.Equal(t, "brand-1", indexed[1].BrandID)
	assert.Equal(t, model.RegulatoryStatusApproved, indexed[1].RegulatoryStatus)
}

func TestImportMissingColumn(t *testing.T) {
	buf := workbook(t, []any{"Source Text", "Notes"}, []any{"a", "b"})
	_, err := newTestUseCase(new(mockStore), nil).Import(context.Background(), model.Scope{}, tm.ImportInput{Reader: buf})
	assert.ErrorIs(t, err, tm.ErrMissingColumn)
}

func TestImportInvalidWorkbook(t *testing.T) {
	_, err := newTestUseCase(new(mockStore), nil).Import(context.Background(), model.Scope{}, tm.ImportInput{Reader: bytes.NewBufferString("not xlsx")})
	assert.ErrorIs(t, err, tm.ErrInvalidWorkbook)
}
