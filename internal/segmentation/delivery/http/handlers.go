package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/pkg/response"
)

// Segment - Split content into typed segments
// @Summary Segment content
// @Description Split plain or structured content into headline, safety, disclaimer, CTA, key-phrase, medical-term and body segments
// @Tags Segmentation
// @Accept json
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param body body segmentReq true "Segment request"
// @Success 200 {object} segmentResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/segments [post]
func (h *handler) Segment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSegmentRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "segmentation.delivery.http.Segment: processSegmentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output := h.uc.Segment(ctx, req.toInput())
	response.OK(c, h.newSegmentResp(output))
}
