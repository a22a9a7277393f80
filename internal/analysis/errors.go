package analysis

import "errors"

var (
	ErrEmptyContent         = errors.New("analysis: content is empty")
	ErrAnalysisNotFound     = errors.New("analysis: not found")
	ErrAnalysisNotCompleted = errors.New("analysis: not completed")
	ErrReportUnavailable    = errors.New("analysis: report archive unavailable")
	ErrSubmitFailed         = errors.New("analysis: submit failed")
	ErrDownloadURLFailed    = errors.New("analysis: failed to generate download URL")
)
