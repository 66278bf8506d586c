package model

// Action classifies a normalized GitHub event. The set is closed: nothing
// outside these three values is ever constructed or stored.
type Action string

const (
	ActionPush        Action = "PUSH"
	ActionPullRequest Action = "PULL_REQUEST"
	ActionMerge       Action = "MERGE"
)

// Event is the canonical record persisted for each tracked webhook delivery.
// It is constructed exactly once by the normalizer and never mutated.
type Event struct {
	RequestID  string // latest commit hash for pushes, PR id for pull requests
	Author     string // pusher name or PR author login
	Action     Action
	FromBranch string // empty (but present) for pushes
	ToBranch   string
	Timestamp  string // strict UTC ISO-8601, always "Z" suffixed
}

// NewEvent builds an Event from the six canonical fields. Content validation
// (branch names, timestamp format) is the normalizer's job, not the model's.
func NewEvent(requestID, author string, action Action, fromBranch, toBranch, timestamp string) Event {
	return Event{
		RequestID:  requestID,
		Author:     author,
		Action:     action,
		FromBranch: fromBranch,
		ToBranch:   toBranch,
		Timestamp:  timestamp,
	}
}

// Document converts the Event to a plain field mapping for storage or wire
// transmission. Exactly the six canonical fields, nothing else.
func (e Event) Document() map[string]any {
	return map[string]any{
		"request_id":  e.RequestID,
		"author":      e.Author,
		"action":      string(e.Action),
		"from_branch": e.FromBranch,
		"to_branch":   e.ToBranch,
		"timestamp":   e.Timestamp,
	}
}
