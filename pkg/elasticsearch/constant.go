package elasticsearch

import (
	"errors"
	"time"
)

const (
	DefaultPingTimeout = 5 * time.Second
	DefaultSearchSize  = 10
)

var (
	ErrAddressRequired = errors.New("elasticsearch: at least one address is required")
	ErrIndexRequired   = errors.New("elasticsearch: index is required")
)
