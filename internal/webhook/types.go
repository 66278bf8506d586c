package webhook

import "github-event-tracker/internal/model"

// ParseResult is the outcome of normalizing one webhook delivery. Either
// Event is set, or IgnoredReason explains why nothing will be stored.
// Ignored deliveries are a normal, frequent outcome — not errors.
type ParseResult struct {
	Event         *model.Event
	IgnoredReason string
}

func ignored(reason string) ParseResult {
	return ParseResult{IgnoredReason: reason}
}
