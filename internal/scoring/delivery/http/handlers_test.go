package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/middleware"
	"localization-srv/internal/model"
	"localization-srv/internal/scoring"
	"localization-srv/internal/scoring/usecase"
	"localization-srv/pkg/log"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	New(l, usecase.New(l, scoring.DefaultConfig()), nil).RegisterRoutes(r.Group(""), middleware.New(l))
	return r
}

func TestComplexityHandler(t *testing.T) {
	body := `{"content":"Our drug reduces symptoms. Important safety information: do not take with alcohol. Learn more at our website.","target_markets":["Japan"]}`
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/complexity", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.ComplexityMetrics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.Data.CulturalComplexityScore, 0)
}

func TestReadinessHandler(t *testing.T) {
	body := `{"content":{"headline":"Relief that lasts."},"target_markets":["Japan","US"],"brand_consistency":90}`
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/readiness", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data readinessResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Markets, 2)
	assert.Equal(t, 90, resp.Data.Markets["US"].Quality.Factors.BrandConsistency)
}

func TestReadinessHandlerValidation(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/readiness", strings.NewReader(`{"brand_consistency":150}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
