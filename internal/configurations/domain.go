package configurations

import (
	"context"

	"github.com/comphost/comphost/internal/history"
)

// Cloner materializes a repository URL into a local directory.
type Cloner interface {
	Clone(ctx context.Context, url, directory string) error
}

// Orchestrator drives the container orchestration tool for one project
// directory.
type Orchestrator interface {
	Up(ctx context.Context, dir string) error
	Down(ctx context.Context, dir string) error
}

// NetworkManager owns the shared bridge network.
type NetworkManager interface {
	Name() string
	Ensure(ctx context.Context) (bool, error)
	Connect(ctx context.Context, containerID string) error
	Containers(ctx context.Context, project string) ([]string, error)
}

// Recorder keeps the action history. Implementations must not fail the
// operation they record.
type Recorder interface {
	Record(ctx context.Context, draft history.EntryDraft)
}

// AddRequest is the collected input for one add operation. Input collection
// happens in the CLI layer so the service never prompts.
type AddRequest struct {
	Name string
	URL  string
}

// ToggleResult reports one name of an on/off operation.
type ToggleResult struct {
	Name  string
	Found bool
}

type CloneStatus string

const (
	CloneStatusCloned  CloneStatus = "cloned"  // Fresh clone succeeded
	CloneStatusSkipped CloneStatus = "skipped" // Directory already there, recorded as the clone
	CloneStatusFailed  CloneStatus = "failed"  // Err carries the reason
)

// CloneResult reports one active configuration of a clone operation.
type CloneResult struct {
	Name   string
	URL    string
	Path   string
	Status CloneStatus
	Err    error
}

// AttachResult reports one container attachment to the bridge network.
type AttachResult struct {
	ContainerID string
	Err         error
}

// StartResult reports one active configuration of a start operation.
// Configurations without a clone path are not started and produce no result.
type StartResult struct {
	Name        string
	Started     bool           // Orchestrator up succeeded
	Err         error          // Up failure, or container listing failure after a successful up
	Attachments []AttachResult // One per container of the started project
}

// StartReport is the outcome of a whole start operation.
type StartReport struct {
	NetworkCreated bool // The bridge network was created by this run
	Results        []StartResult
}

// StopResult reports one active configuration of a stop operation.
type StopResult struct {
	Name string
	Err  error
}
