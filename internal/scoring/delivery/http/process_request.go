package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "localization-srv/pkg/errors"
)

func (h *handler) processComplexityRequest(c *gin.Context) (complexityReq, error) {
	var req complexityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := pkgErrors.ValidationFields(err); ok {
			return req, err
		}
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processReadinessRequest(c *gin.Context) (readinessReq, error) {
	var req readinessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := pkgErrors.ValidationFields(err); ok {
			return req, err
		}
		return req, errWrongBody
	}
	return req, nil
}
