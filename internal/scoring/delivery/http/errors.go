package http

import (
	"errors"

	"localization-srv/internal/scoring"
	pkgErrors "localization-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errScoringFailed = pkgErrors.NewHTTPError(
		500, "Complexity scoring failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scoring.ErrScoringFailed):
		return errScoringFailed
	default:
		return err
	}
}
