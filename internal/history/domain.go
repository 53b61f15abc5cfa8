package history

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success" // Operation completed
	OutcomeFailure Outcome = "failure" // Operation failed, detail carries the reason
	OutcomeSkipped Outcome = "skipped" // Operation was not attempted
)

// EntryDraft describes one external action taken for a configuration.
type EntryDraft struct {
	Command string  // Subcommand that ran: clone, start, stop
	Name    string  // Configuration name
	Outcome Outcome // success, failure, skipped
	Detail  string  // Free-form context, e.g. clone path or error text
}

type Entry struct {
	EntryDraft

	ID        uuid.UUID
	CreatedAt time.Time
}
