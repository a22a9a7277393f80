package minio

import "time"

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
	disableKeepAlives   = false
)

const (
	// MaxFileSizeBytes caps a single upload at 5GB.
	MaxFileSizeBytes = 5 * 1024 * 1024 * 1024
	// MaxPresignedExpiry is the longest expiry MinIO accepts.
	MaxPresignedExpiry  = 7 * 24 * time.Hour
	DefaultEndpointPort = ":9000"
)

const (
	MethodGET = "GET"
	MethodPUT = "PUT"
)
