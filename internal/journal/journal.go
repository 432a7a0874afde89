package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded event.
type Entry struct {
	ID         string
	SessionID  string
	Kind       string
	Detail     string
	RecordedAt time.Time
}

// Journal writes the events of one shell session.
type Journal struct {
	db      *sql.DB
	session string
	now     func() time.Time
}

// New opens the journal at path, applies the schema and starts a new session.
func New(path string) (*Journal, error) {
	db, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB starts a session on an already migrated db.
func NewWithDB(db *sql.DB) *Journal {
	return &Journal{db: db, session: uuid.NewString(), now: now}
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func (j *Journal) Session() string { return j.session }

func (j *Journal) Record(ctx context.Context, kind, detail string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO events (id, session_id, kind, detail, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), j.session, kind, detail, j.now(),
	)
	if err != nil {
		return fmt.Errorf("journal: record %s: %w", kind, err)
	}
	return nil
}

// Recent returns up to n entries of session, newest first. An empty session means
// every session.
func (j *Journal) Recent(ctx context.Context, session string, n int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, session_id, kind, detail, recorded_at
		FROM events
		WHERE ? = '' OR session_id = ?
		ORDER BY recorded_at DESC, rowid DESC
		LIMIT ?`, session, session, n)
	if err != nil {
		return nil, fmt.Errorf("journal: recent: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &e.Detail, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
