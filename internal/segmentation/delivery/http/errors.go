package http

import (
	pkgErrors "localization-srv/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "Wrong body")
