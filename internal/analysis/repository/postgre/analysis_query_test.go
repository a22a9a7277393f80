package postgre

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/model"
)

func TestBuildListQuery(t *testing.T) {
	page, count, args := buildListQuery(repository.ListOptions{
		UserID: "u1",
		Status: model.AnalysisStatusCompleted,
		Limit:  20,
	})

	assert.Contains(t, page, "WHERE user_id = $1 AND status = $2")
	assert.Contains(t, page, "LIMIT $3 OFFSET $4")
	assert.Equal(t, "SELECT count(*) FROM analyses WHERE user_id = $1 AND status = $2", count)
	assert.Equal(t, []any{"u1", "completed"}, args)
}

func TestBuildListQueryNoFilters(t *testing.T) {
	page, count, args := buildListQuery(repository.ListOptions{})

	assert.NotContains(t, page, "WHERE")
	assert.Contains(t, page, "LIMIT $1 OFFSET $2")
	assert.Equal(t, "SELECT count(*) FROM analyses", count)
	assert.Empty(t, args)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *[]byte:
			*p = r.values[i].([]byte)
		case *int:
			*p = r.values[i].(int)
		case *bool:
			*p = r.values[i].(bool)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			if s, ok := d.(interface{ Scan(any) error }); ok {
				if err := s.Scan(r.values[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func TestScanAnalysis(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	row := fakeRow{values: []any{
		"a1", "u1", "w1", "doc-1", "hash", "completed", []byte(`{"content":"x"}`),
		53, true, 4, 7, "reports/a1.json", "",
		now, now, now,
	}}

	a, err := scanAnalysis(row)
	require.NoError(t, err)
	assert.Equal(t, model.AnalysisStatusCompleted, a.Status)
	assert.Equal(t, 53, a.OverallComplexity)
	assert.True(t, a.ExportReady)
	require.NotNil(t, a.CompletedAt)
	assert.Equal(t, now, *a.CompletedAt)
	assert.JSONEq(t, `{"content":"x"}`, string(a.Request))
}

func TestScanAnalysisNullCompletedAt(t *testing.T) {
	row := fakeRow{values: []any{
		"a1", "u1", "", "", "hash", "processing", []byte(`{}`),
		0, false, 0, 0, "", "",
		nil, time.Time{}, time.Time{},
	}}

	a, err := scanAnalysis(row)
	require.NoError(t, err)
	assert.Nil(t, a.CompletedAt)
	assert.Equal(t, model.AnalysisStatusProcessing, a.Status)
}

func TestScanAnalysisError(t *testing.T) {
	_, err := scanAnalysis(fakeRow{err: errors.New("boom")})
	assert.Error(t, err)
}
