package compose

import "time"

type Config struct {
	// Binary is the orchestration CLI, normally "docker"; the service always
	// invokes its "compose" subcommand.
	Binary string

	// Timeout bounds a single invocation. Zero means no limit.
	Timeout time.Duration
}
