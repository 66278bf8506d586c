package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github-event-tracker/internal/event/repository"
	"github-event-tracker/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the SQLite database at path and sets up the
// events schema, including the descending timestamp index that serves the
// latest-N query without a full scan.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_foreign_keys=1")
	if err != nil {
		return nil, err
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS events (
        id TEXT PRIMARY KEY,
        request_id TEXT NOT NULL,
        author TEXT NOT NULL,
        action TEXT NOT NULL,
        from_branch TEXT NOT NULL,
        to_branch TEXT NOT NULL,
        timestamp TEXT NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp DESC);`)
	return err
}

// New creates a new SQLite-backed Repository for the event domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}
