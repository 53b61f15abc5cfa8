package git

import "time"

type Config struct {
	// Timeout bounds a single clone. Zero means no limit.
	Timeout time.Duration
}
