package sqlite

import (
	"context"

	"github.com/google/uuid"

	repo "github-event-tracker/internal/event/repository"
	"github-event-tracker/internal/model"
)

// InsertEvent appends a new event row and returns the store-assigned id.
// No uniqueness check on any business field: redelivered payloads create
// new rows.
func (r *implRepository) InsertEvent(ctx context.Context, opt repo.InsertEventOptions) (string, error) {
	const query = `
		INSERT INTO events (id, request_id, author, action, from_branch, to_branch, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	e := opt.Event
	_, err := r.db.ExecContext(ctx, query,
		id, e.RequestID, e.Author, string(e.Action), e.FromBranch, e.ToBranch, e.Timestamp,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return "", repo.ErrFailedToInsert
	}
	return id, nil
}

// LatestEvents returns up to opt.Limit events, newest first. The projection
// exposes exactly the six canonical fields — never the row id.
func (r *implRepository) LatestEvents(ctx context.Context, opt repo.LatestEventsOptions) ([]model.Event, error) {
	const query = `
		SELECT request_id, author, action, from_branch, to_branch, timestamp
		FROM events
		ORDER BY timestamp DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LatestEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		var action string
		if err := rows.Scan(&e.RequestID, &e.Author, &action, &e.FromBranch, &e.ToBranch, &e.Timestamp); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("LatestEvents"), err)
			return nil, repo.ErrFailedToList
		}
		e.Action = model.Action(action)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("LatestEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}
