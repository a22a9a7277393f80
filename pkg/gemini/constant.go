package gemini

import (
	"errors"
	"time"
)

const (
	BaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel = "gemini-2.0-flash"

	MimeTypeJSON = "application/json"

	defaultTimeout   = 60 * time.Second
	defaultRetries   = 3
	defaultRetryWait = time.Second
)

var (
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	ErrNoContent      = errors.New("gemini: no content generated")
)
