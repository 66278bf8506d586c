package event

import "github-event-tracker/internal/model"

// List limits. Caller-supplied values are clamped into [1, MaxListLimit].
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// --- UseCase Inputs ---

// IngestInput carries one webhook delivery: the event-type discriminator
// from the X-GitHub-Event header plus the decoded JSON object payload.
type IngestInput struct {
	EventType string
	Payload   map[string]any
}

type ListInput struct {
	Limit int
}

// --- UseCase Outputs ---

// IngestOutput reports either a stored record id or an ignore reason.
// An ignored delivery is a successful outcome, not an error.
type IngestOutput struct {
	Stored bool
	ID     string
	Reason string
}

type ListOutput struct {
	Events []model.Event
}
