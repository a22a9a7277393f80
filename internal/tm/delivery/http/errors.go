package http

import (
	"errors"

	"localization-srv/internal/tm"
	pkgErrors "localization-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errFileRequired = pkgErrors.NewHTTPError(
		400, "File is required",
	)
	errNoUnits = pkgErrors.NewHTTPError(
		400, "No translation units to import",
	)
	errInvalidUnit = pkgErrors.NewHTTPError(
		400, "Invalid translation unit",
	)
	errInvalidWorkbook = pkgErrors.NewHTTPError(
		400, "Invalid workbook",
	)
	errMissingColumn = pkgErrors.NewHTTPError(
		400, "Workbook is missing source_text or target_text column",
	)
	errIndexFailed = pkgErrors.NewHTTPError(
		502, "Translation memory is unavailable",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tm.ErrNoUnits):
		return errNoUnits
	case errors.Is(err, tm.ErrInvalidUnit):
		return errInvalidUnit
	case errors.Is(err, tm.ErrInvalidWorkbook):
		return errInvalidWorkbook
	case errors.Is(err, tm.ErrMissingColumn):
		return errMissingColumn
	case errors.Is(err, tm.ErrIndexFailed):
		return errIndexFailed
	default:
		return err
	}
}
