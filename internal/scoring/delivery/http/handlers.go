package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/scoring"
	"localization-srv/pkg/response"
)

// Complexity - Score localization complexity
// @Summary Score content complexity
// @Description Computes text, cultural, technical and visual complexity with effort, timeline and cost impact
// @Tags Scoring
// @Accept json
// @Produce json
// @Param body body complexityReq true "Complexity request"
// @Success 200 {object} model.ComplexityMetrics
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/complexity [post]
func (h *handler) Complexity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processComplexityRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "scoring.delivery.http.Complexity: processComplexityRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	metrics, err := h.uc.ScoreContent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.Complexity: usecase ScoreContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, metrics)
}

// Readiness - Predict quality and risk per market
// @Summary Market readiness
// @Description Scores complexity, then predicts quality and assesses risk for every target market
// @Tags Scoring
// @Accept json
// @Produce json
// @Param body body readinessReq true "Readiness request"
// @Success 200 {object} readinessResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/readiness [post]
func (h *handler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReadinessRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "scoring.delivery.http.Readiness: processReadinessRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	metrics, err := h.uc.ScoreContent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.Readiness: usecase ScoreContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	markets, err := h.uc.MarketReadiness(ctx, scoring.ReadinessInput{
		DocumentID:              req.DocumentID,
		Markets:                 req.TargetMarkets,
		Metrics:                 metrics,
		BrandConsistency:        req.BrandConsistency,
		CulturalAppropriateness: req.CulturalAppropriateness,
	})
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.Readiness: usecase MarketReadiness failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, readinessResp{Complexity: metrics, Markets: markets})
}
