package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/tm"
	"localization-srv/pkg/response"
)

// Match - Find translation memory matches for segments
// @Summary Match segments against translation memory
// @Description Returns ranked TM matches per segment. A segment whose lookup fails or times out gets an empty list.
// @Tags TM
// @Accept json
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param body body matchReq true "Match request"
// @Success 200 {object} matchResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/tm/matches [post]
func (h *handler) Match(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processMatchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "tm.delivery.http.Match: processMatchRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	segments := req.toSegments()
	matches := h.uc.MatchSegments(ctx, segments, req.Context.toModel())

	// 3. Return response
	response.OK(c, h.newMatchResp(segments, matches))
}

// Upsert - Add or replace translation memory units
// @Summary Upsert TM units
// @Description Validates units, embeds their source text and indexes them into the semantic and lexical stores
// @Tags TM
// @Accept json
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param body body upsertReq true "Units"
// @Success 200 {object} upsertResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/tm/units [post]
func (h *handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpsertRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "tm.delivery.http.Upsert: processUpsertRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Upsert(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "tm.delivery.http.Upsert: usecase Upsert failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, upsertResp{IDs: output.IDs})
}

// Import - Import translation memory from an XLSX workbook
// @Summary Import TM workbook
// @Description Reads the first sheet, maps columns by header and upserts valid rows. Invalid rows are skipped and counted.
// @Tags TM
// @Accept multipart/form-data
// @Produce json
// @Param X-Scope header string false "Base64 encoded caller scope"
// @Param file formData file true "XLSX workbook"
// @Param brand_id formData string false "Default brand id"
// @Param source_language formData string false "Default source language"
// @Param target_language formData string false "Default target language"
// @Success 200 {object} importResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/tm/import [post]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processImportRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "tm.delivery.http.Import: processImportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	file, err := req.File.Open()
	if err != nil {
		h.l.Warnf(ctx, "tm.delivery.http.Import: open upload failed: %v", err)
		response.Error(c, errFileRequired, h.discord)
		return
	}
	defer file.Close()

	output, err := h.uc.Import(ctx, sc, tm.ImportInput{
		Reader:                file,
		DefaultBrandID:        req.BrandID,
		DefaultSourceLanguage: req.SourceLanguage,
		DefaultTargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		h.l.Errorf(ctx, "tm.delivery.http.Import: usecase Import failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newImportResp(output))
}
