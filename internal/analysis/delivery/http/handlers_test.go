package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/analysis"
	"localization-srv/internal/middleware"
	"localization-srv/internal/model"
	"localization-srv/pkg/log"
	"localization-srv/pkg/paginator"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (model.AnalysisReport, error) {
	args := m.Called(input)
	return args.Get(0).(model.AnalysisReport), args.Error(1)
}

func (m *mockUseCase) Submit(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.SubmitOutput, error) {
	args := m.Called(input)
	return args.Get(0).(analysis.SubmitOutput), args.Error(1)
}

func (m *mockUseCase) Process(ctx context.Context, sc model.Scope, input analysis.ProcessInput) error {
	return m.Called(input).Error(0)
}

func (m *mockUseCase) Get(ctx context.Context, sc model.Scope, input analysis.GetInput) (analysis.AnalysisOutput, error) {
	args := m.Called(input)
	return args.Get(0).(analysis.AnalysisOutput), args.Error(1)
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input analysis.ListInput) (analysis.ListOutput, error) {
	args := m.Called(input)
	return args.Get(0).(analysis.ListOutput), args.Error(1)
}

func (m *mockUseCase) Download(ctx context.Context, sc model.Scope, input analysis.DownloadInput) (analysis.DownloadOutput, error) {
	args := m.Called(input)
	return args.Get(0).(analysis.DownloadOutput), args.Error(1)
}

func setupRouter(uc analysis.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	New(l, uc, nil).RegisterRoutes(r.Group(""), middleware.New(l))
	return r
}

func serve(uc analysis.UseCase, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	setupRouter(uc).ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestAnalyzeHandler(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Analyze", mock.MatchedBy(func(in analysis.AnalyzeInput) bool {
		return in.Content.ExtractText() == "Learn more." && in.BrandID == "b" && len(in.TargetMarkets) == 1
	})).Return(model.AnalysisReport{AnalysisID: "a1", Recommendations: model.Recommendations{ExportReadiness: true}}, nil)

	w := serve(uc, http.MethodPost, "/api/v1/analyses", `{"content":"Learn more.","brand_id":"b","target_markets":["Japan"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.AnalysisReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.Data.AnalysisID)
	assert.True(t, resp.Data.Recommendations.ExportReadiness)
}

func TestAnalyzeHandlerErrors(t *testing.T) {
	tcs := map[string]struct {
		body   string
		ucErr  error
		status int
	}{
		"malformed body":   {body: `{"content":`, status: http.StatusBadRequest},
		"negative images":  {body: `{"content":"x","image_count":-1}`, status: http.StatusBadRequest},
		"empty content":    {body: `{"content":""}`, ucErr: analysis.ErrEmptyContent, status: http.StatusBadRequest},
		"pipeline failure": {body: `{"content":"x"}`, ucErr: assert.AnError, status: http.StatusInternalServerError},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Analyze", mock.Anything).Return(model.AnalysisReport{}, tc.ucErr)

			w := serve(uc, http.MethodPost, "/api/v1/analyses", tc.body)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestSubmitHandler(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Submit", mock.Anything).Return(analysis.SubmitOutput{AnalysisID: "a1", Status: model.AnalysisStatusCompleted, Reused: true}, nil)

	w := serve(uc, http.MethodPost, "/api/v1/analyses/async", `{"content":{"headline":"Hi"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data submitResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, submitResp{AnalysisID: "a1", Status: "completed", Reused: true}, resp.Data)
}

func TestSubmitHandlerQueueFailure(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Submit", mock.Anything).Return(analysis.SubmitOutput{}, analysis.ErrSubmitFailed)

	w := serve(uc, http.MethodPost, "/api/v1/analyses/async", `{"content":"x"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListHandler(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("List", analysis.ListInput{
		Status:   model.AnalysisStatusCompleted,
		Paginate: paginator.PaginateQuery{Page: 2, Limit: 5},
	}).Return(analysis.ListOutput{
		Analyses:  []model.Analysis{{ID: "a1", Status: model.AnalysisStatusCompleted, ReportObject: "analyses/a1.json"}},
		Paginator: paginator.Paginator{Total: 6, Count: 1, PerPage: 5, CurrentPage: 2},
	}, nil)

	w := serve(uc, http.MethodGet, "/api/v1/analyses?page=2&limit=5&status=completed", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data listResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Analyses, 1)
	assert.True(t, resp.Data.Analyses[0].HasReport)
	assert.Equal(t, 2, resp.Data.Paginate.TotalPages)
	assert.True(t, resp.Data.Paginate.HasPrev)
}

func TestListHandlerRejectsUnknownStatus(t *testing.T) {
	w := serve(new(mockUseCase), http.MethodGet, "/api/v1/analyses?status=archived", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHandler(t *testing.T) {
	completed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := new(mockUseCase)
	uc.On("Get", analysis.GetInput{AnalysisID: "a1"}).Return(analysis.AnalysisOutput{
		Analysis: model.Analysis{
			ID:          "a1",
			Status:      model.AnalysisStatusCompleted,
			Request:     json.RawMessage(`{"content":"x"}`),
			CompletedAt: &completed,
		},
	}, nil)
	uc.On("Get", analysis.GetInput{AnalysisID: "missing"}).Return(analysis.AnalysisOutput{}, analysis.ErrAnalysisNotFound)

	w := serve(uc, http.MethodGet, "/api/v1/analyses/a1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data analysisResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.CompletedAt)
	assert.Equal(t, "2026-05-01T12:00:00Z", *resp.Data.CompletedAt)
	assert.Equal(t, map[string]interface{}{"content": "x"}, resp.Data.Request)

	w = serve(uc, http.MethodGet, "/api/v1/analyses/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadHandler(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Download", analysis.DownloadInput{AnalysisID: "a1"}).Return(analysis.DownloadOutput{
		URL:       "https://minio/a1",
		ExpiresAt: time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC),
		FileName:  "analysis_a1.json",
	}, nil)
	uc.On("Download", analysis.DownloadInput{AnalysisID: "a2"}).Return(analysis.DownloadOutput{}, analysis.ErrAnalysisNotCompleted)

	w := serve(uc, http.MethodGet, "/api/v1/analyses/a1/download", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data downloadResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, downloadResp{DownloadURL: "https://minio/a1", ExpiresAt: "2026-05-01T12:30:00Z", FileName: "analysis_a1.json"}, resp.Data)

	w = serve(uc, http.MethodGet, "/api/v1/analyses/a2/download", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}
