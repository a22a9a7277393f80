package qdrant

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig     = errors.New("qdrant: invalid configuration")
	ErrInvalidVector     = errors.New("qdrant: invalid vector")
	ErrInvalidPointID    = errors.New("qdrant: invalid point ID")
	ErrEmptyCollection   = errors.New("qdrant: collection name cannot be empty")
	ErrInvalidVectorSize = errors.New("qdrant: invalid vector size")
)

// WrapError wraps err with msg. A nil err stays nil.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
