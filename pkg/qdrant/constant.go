package qdrant

import "time"

const (
	DefaultTimeout     = 30 * time.Second
	DefaultPingTimeout = 5 * time.Second
	// DefaultSearchLimit applies when a search passes limit 0.
	DefaultSearchLimit = 10

	apiKeyHeader = "api-key"
)
