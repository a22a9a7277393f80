package http

import (
	"net/http"
	"time"
)

// ClientConfig controls timeouts and retries. The wait grows linearly with
// each attempt.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
