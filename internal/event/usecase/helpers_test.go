package usecase

import (
	"context"

	repo "github-event-tracker/internal/event/repository"
	"github-event-tracker/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository with overridable behavior per test
type mockRepository struct {
	insertFunc func(opt repo.InsertEventOptions) (string, error)
	latestFunc func(opt repo.LatestEventsOptions) ([]model.Event, error)

	inserted []model.Event
}

func (m *mockRepository) InsertEvent(ctx context.Context, opt repo.InsertEventOptions) (string, error) {
	m.inserted = append(m.inserted, opt.Event)
	if m.insertFunc != nil {
		return m.insertFunc(opt)
	}
	return "store-id-1", nil
}

func (m *mockRepository) LatestEvents(ctx context.Context, opt repo.LatestEventsOptions) ([]model.Event, error) {
	if m.latestFunc != nil {
		return m.latestFunc(opt)
	}
	return []model.Event{}, nil
}
