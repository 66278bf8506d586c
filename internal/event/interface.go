package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Ingest normalizes one webhook delivery and persists it when tracked.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
	// List returns the most recent events, newest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
