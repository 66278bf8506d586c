package usecase

import (
	"context"

	"github-event-tracker/internal/event"
	repo "github-event-tracker/internal/event/repository"
)

// List returns the most recent events, newest first. The limit is clamped
// into [1, MaxListLimit] regardless of the caller-supplied value.
func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > event.MaxListLimit {
		limit = event.MaxListLimit
	}

	events, err := uc.repo.LatestEvents(ctx, repo.LatestEventsOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List LatestEvents: %v", err)
		return event.ListOutput{}, err
	}

	return event.ListOutput{Events: events}, nil
}
