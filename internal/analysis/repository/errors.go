package repository

import "errors"

var (
	ErrNotFound     = errors.New("repository: analysis not found")
	ErrCreateFailed = errors.New("repository: failed to create analysis")
	ErrUpdateFailed = errors.New("repository: failed to update analysis")
)
