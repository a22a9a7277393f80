package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/pkg/response"
)

// Analyze - Run the full analysis pipeline synchronously
// @Summary Analyze content
// @Description Segments the content, matches segments against translation memory, gathers brand, regulatory and cultural intelligence, scores complexity and market readiness and aggregates recommendations
// @Tags Analysis
// @Accept json
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param body body analyzeReq true "Analysis request"
// @Success 200 {object} model.AnalysisReport
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyses [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	report, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, report)
}

// Submit - Queue an analysis for background processing
// @Summary Submit analysis
// @Description Queues the request on Kafka. An identical request from the same workspace that is processing or completed is returned instead.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param body body analyzeReq true "Analysis request"
// @Success 200 {object} submitResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analyses/async [post]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Submit: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Submit: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// List - List analyses of the caller's workspace
// @Summary List analyses
// @Tags Analysis
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param page query int false "Page (1-indexed)"
// @Param limit query int false "Page size"
// @Param status query string false "processing, completed or failed"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/analyses [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Get - Get one analysis record
// @Summary Get analysis
// @Tags Analysis
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} analysisResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/analyses/{analysis_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processAnalysisIDRequest(c)
	output, err := h.uc.Get(ctx, sc, req.toGetInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalysisResp(output))
}

// Download - Presign the archived report of a completed analysis
// @Summary Download analysis report
// @Tags Analysis
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} downloadResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analyses/{analysis_id}/download [get]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processAnalysisIDRequest(c)
	output, err := h.uc.Download(ctx, sc, req.toDownloadInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Download: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(output))
}
