package runner

import "errors"

var (
	ErrAlreadyRunning = errors.New("loop is already running")
	ErrNotRunning     = errors.New("loop is not running")
	ErrInvalidBatch   = errors.New("invalid batch options")
)
