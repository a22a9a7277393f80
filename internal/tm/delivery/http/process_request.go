package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/model"
	pkgErrors "localization-srv/pkg/errors"
	"localization-srv/pkg/scope"
)

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		if _, ok := pkgErrors.ValidationFields(err); ok {
			return err
		}
		return errWrongBody
	}
	return nil
}

func (h *handler) processMatchRequest(c *gin.Context) (matchReq, error) {
	var req matchReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpsertRequest(c *gin.Context) (upsertReq, model.Scope, error) {
	var req upsertReq
	if err := bindJSON(c, &req); err != nil {
		return req, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processImportRequest(c *gin.Context) (importReq, model.Scope, error) {
	var req importReq
	if err := c.ShouldBind(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}
	if req.File == nil {
		return req, model.Scope{}, errFileRequired
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}
