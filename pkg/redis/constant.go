package redis

import (
	"errors"
	"time"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultIOTimeout      = 3 * time.Second
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
	ErrInvalidDB    = errors.New("redis: db must not be negative")
)
