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
	"localization-srv/internal/segmentation/usecase"
	"localization-srv/pkg/log"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	New(l, usecase.New(l), nil).RegisterRoutes(r.Group(""), middleware.New(l))
	return r
}

func TestSegmentHandler(t *testing.T) {
	r := setupRouter()

	body := `{"content":{"headline":"Relief that lasts all day long.","body":"Do not take with alcohol."},"context":{"asset_type":"email"}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/segments", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data segmentResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Segments, 2)
	assert.Equal(t, "headline", resp.Data.Segments[0].Type)
	assert.Equal(t, "safety", resp.Data.Segments[1].Type)
	assert.Equal(t, "locked", resp.Data.Segments[1].Editability)
	assert.Len(t, resp.Data.PreservationRules, 1)
}

func TestSegmentHandlerWrongBody(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/segments", strings.NewReader(`{"content": 12}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
