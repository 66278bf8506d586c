package repository

import "github-event-tracker/internal/model"

// InsertEventOptions holds parameters for appending a new event record.
type InsertEventOptions struct {
	Event model.Event
}

// LatestEventsOptions holds query parameters for the latest-N lookup.
type LatestEventsOptions struct {
	Limit int
}
