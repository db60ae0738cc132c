// Package task defines the remote generation task model and its lifecycle states.
package task

// Status represents the remote lifecycle state of a generation task.
// States are assigned by the remote service and observed via polling;
// they are never mutated locally.
type Status string

const (
	// Non-terminal states
	StatusCreated    Status = "created"    // Accepted, not yet scheduled
	StatusQueueing   Status = "queueing"   // Waiting for processing capacity
	StatusProcessing Status = "processing" // Generation in progress

	// Terminal states (no further transitions are observed)
	StatusSuccess Status = "success" // Artifacts are ready for download
	StatusFailed  Status = "failed"  // Generation failed remotely
)

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// IsActive returns true if the task is still progressing remotely.
func (s Status) IsActive() bool {
	return s == StatusCreated || s == StatusQueueing || s == StatusProcessing
}

// IsValid returns true if the status is one of the known wire values.
func (s Status) IsValid() bool {
	return s.IsTerminal() || s.IsActive()
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
