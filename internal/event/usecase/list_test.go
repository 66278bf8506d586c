package usecase

import (
	"context"
	"errors"
	"testing"

	"github-event-tracker/internal/event"
	repo "github-event-tracker/internal/event/repository"
	"github-event-tracker/internal/model"
)

func TestList(t *testing.T) {
	t.Run("Passes Clamped Limit To Store", func(t *testing.T) {
		cases := []struct {
			name      string
			limit     int
			wantLimit int
		}{
			{"Zero Clamps To One", 0, 1},
			{"Negative Clamps To One", -5, 1},
			{"Within Range Unchanged", 50, 50},
			{"Above Max Clamps To Max", 10000, event.MaxListLimit},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				var gotLimit int
				mRepo := &mockRepository{
					latestFunc: func(opt repo.LatestEventsOptions) ([]model.Event, error) {
						gotLimit = opt.Limit
						return []model.Event{}, nil
					},
				}
				uc := New(mRepo, &mockLogger{})

				if _, err := uc.List(context.Background(), event.ListInput{Limit: tc.limit}); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if gotLimit != tc.wantLimit {
					t.Errorf("expected store limit %d, got %d", tc.wantLimit, gotLimit)
				}
			})
		}
	})

	t.Run("Returns Store Order Untouched", func(t *testing.T) {
		stored := []model.Event{
			model.NewEvent("c", "alice", model.ActionPush, "", "main", "2024-01-03T00:00:00Z"),
			model.NewEvent("b", "bob", model.ActionMerge, "f", "main", "2024-01-02T00:00:00Z"),
			model.NewEvent("a", "carol", model.ActionPullRequest, "g", "main", "2024-01-01T00:00:00Z"),
		}
		mRepo := &mockRepository{
			latestFunc: func(opt repo.LatestEventsOptions) ([]model.Event, error) {
				return stored, nil
			},
		}
		uc := New(mRepo, &mockLogger{})

		out, err := uc.List(context.Background(), event.ListInput{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(out.Events))
		}
		if out.Events[0].RequestID != "c" || out.Events[2].RequestID != "a" {
			t.Errorf("usecase must not reorder the store result")
		}
	})

	t.Run("Store Failure Propagates", func(t *testing.T) {
		mRepo := &mockRepository{
			latestFunc: func(opt repo.LatestEventsOptions) ([]model.Event, error) {
				return nil, repo.ErrFailedToList
			},
		}
		uc := New(mRepo, &mockLogger{})

		if _, err := uc.List(context.Background(), event.ListInput{Limit: 10}); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected list failure, got %v", err)
		}
	})
}
