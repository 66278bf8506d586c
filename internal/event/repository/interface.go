package repository

import (
	"context"

	"github-event-tracker/internal/model"
)

// Repository is the event store contract. The store is append-only from the
// application's perspective: no updates, no deletes, no deduplication.
type Repository interface {
	// InsertEvent persists the event and returns the store-assigned id.
	// Every call creates a new record, even for duplicate field values.
	InsertEvent(ctx context.Context, opt InsertEventOptions) (string, error)
	// LatestEvents returns up to Limit events ordered by timestamp
	// descending. Relative order of timestamp ties is store-dependent.
	LatestEvents(ctx context.Context, opt LatestEventsOptions) ([]model.Event, error)
}
