package compose

import "errors"

var (
	// ErrCommandFailed marks a non-zero exit; the wrapped message carries the
	// captured stderr of the child process.
	ErrCommandFailed = errors.New("compose command failed")

	// ErrUnavailable marks a spawn failure, typically a missing binary.
	ErrUnavailable = errors.New("compose is unavailable")
)
