package tm

import "errors"

var (
	ErrNoUnits         = errors.New("tm: no units to upsert")
	ErrInvalidUnit     = errors.New("tm: invalid unit")
	ErrIndexFailed     = errors.New("tm: index failed")
	ErrInvalidWorkbook = errors.New("tm: invalid workbook")
	ErrMissingColumn   = errors.New("tm: missing required column")
)
