package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/model"
	pkgErrors "localization-srv/pkg/errors"
	"localization-srv/pkg/scope"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, model.Scope, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := pkgErrors.ValidationFields(err); ok {
			return req, model.Scope{}, err
		}
		return req, model.Scope{}, errWrongBody
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		if _, ok := pkgErrors.ValidationFields(err); ok {
			return req, model.Scope{}, err
		}
		return req, model.Scope{}, errWrongQuery
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processAnalysisIDRequest(c *gin.Context) (analysisIDReq, model.Scope) {
	req := analysisIDReq{
		AnalysisID: c.Param("analysis_id"),
	}
	return req, scope.GetScopeFromContext(c.Request.Context())
}
