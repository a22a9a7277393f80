package response

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "localization-srv/pkg/errors"
)

type noopReporter struct{}

func (noopReporter) ReportBug(context.Context, string) error { return nil }

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	var r Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestOK(t *testing.T) {
	c, w := newTestContext()
	OK(c, map[string]int{"n": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	r := decode(t, w)
	assert.Equal(t, CodeSuccess, r.ErrorCode)
	assert.Equal(t, MessageSuccess, r.Message)
}

func TestErrorHTTPError(t *testing.T) {
	c, w := newTestContext()
	Error(c, pkgErrors.NewHTTPError(404, "Analysis not found"), noopReporter{})

	assert.Equal(t, http.StatusNotFound, w.Code)
	r := decode(t, w)
	assert.Equal(t, 404, r.ErrorCode)
	assert.Equal(t, "Analysis not found", r.Message)
}

func TestErrorUnknown(t *testing.T) {
	c, w := newTestContext()
	Error(c, assert.AnError, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MessageInternalError, decode(t, w).Message)
}
