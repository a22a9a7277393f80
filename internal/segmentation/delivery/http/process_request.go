package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "localization-srv/pkg/errors"
)

func (h *handler) processSegmentRequest(c *gin.Context) (segmentReq, error) {
	var req segmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := pkgErrors.ValidationFields(err); ok {
			return req, err
		}
		return req, errWrongBody
	}
	return req, nil
}
