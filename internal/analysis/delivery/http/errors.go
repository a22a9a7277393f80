package http

import (
	"errors"

	"localization-srv/internal/analysis"
	pkgErrors "localization-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errWrongQuery = pkgErrors.NewHTTPError(
		400, "Wrong query",
	)
	errEmptyContent = pkgErrors.NewHTTPError(
		400, "Content is empty",
	)
	errAnalysisNotFound = pkgErrors.NewHTTPError(
		404, "Analysis not found",
	)
	errAnalysisNotCompleted = pkgErrors.NewHTTPError(
		409, "Analysis is not completed",
	)
	errReportUnavailable = pkgErrors.NewHTTPError(
		409, "Report was not archived",
	)
	errSubmitFailed = pkgErrors.NewHTTPError(
		502, "Analysis could not be queued",
	)
	errDownloadURLFailed = pkgErrors.NewHTTPError(
		502, "Download link could not be created",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrEmptyContent):
		return errEmptyContent
	case errors.Is(err, analysis.ErrAnalysisNotFound):
		return errAnalysisNotFound
	case errors.Is(err, analysis.ErrAnalysisNotCompleted):
		return errAnalysisNotCompleted
	case errors.Is(err, analysis.ErrReportUnavailable):
		return errReportUnavailable
	case errors.Is(err, analysis.ErrSubmitFailed):
		return errSubmitFailed
	case errors.Is(err, analysis.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		return err
	}
}
