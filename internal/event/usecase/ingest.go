package usecase

import (
	"context"

	"github-event-tracker/internal/event"
	repo "github-event-tracker/internal/event/repository"
	"github-event-tracker/internal/webhook"
)

// Ingest normalizes one webhook delivery and persists the canonical event
// when the delivery is tracked. A decline (unsupported type, untracked
// action, missing fields) is a successful outcome carrying a reason — only
// a store failure is an error.
func (uc *implUseCase) Ingest(ctx context.Context, input event.IngestInput) (event.IngestOutput, error) {
	parsed := webhook.ParseGitHubEvent(input.EventType, input.Payload)
	if parsed.Event == nil {
		uc.l.Infof(ctx, "uc.Ingest ignored delivery: %s", parsed.IgnoredReason)
		return event.IngestOutput{Stored: false, Reason: parsed.IgnoredReason}, nil
	}

	id, err := uc.repo.InsertEvent(ctx, repo.InsertEventOptions{Event: *parsed.Event})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest InsertEvent: %v", err)
		return event.IngestOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Ingest stored %s event %s as %s", parsed.Event.Action, parsed.Event.RequestID, id)
	return event.IngestOutput{Stored: true, ID: id}, nil
}
