package script

import "errors"

// Errors for script execution.
var (
	// ErrClosed is returned when running a script on a closed runner.
	ErrClosed = errors.New("script runner is closed")
)
