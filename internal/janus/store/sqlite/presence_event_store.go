package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "github.com/campusgate/janus/internal/db"
	"github.com/campusgate/janus/internal/janus/store"
)

type PresenceEventStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewPresenceEventStore(db *sql.DB, writer *dbpkg.Worker) *PresenceEventStore {
	return &PresenceEventStore{db: db, writer: writer}
}

const latestEventSQL = `
SELECT id, student_id, occurred_at_ms, status
FROM presence_events
WHERE student_id = ? AND occurred_at_ms BETWEEN ? AND ?
ORDER BY occurred_at_ms DESC, id DESC
LIMIT 1;`

func (s *PresenceEventStore) LatestFor(ctx context.Context, studentID string, from, to time.Time) (*store.PresenceEventRecord, error) {
	row := s.db.QueryRowContext(ctx, latestEventSQL,
		studentID, from.UnixMilli(), to.UnixMilli())

	rec, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("LatestFor %s: %w", studentID, err)
	}
	return &rec, nil
}

// Append re-reads the latest event id inside the write transaction and
// compares it against what the caller observed. A mismatch means another
// scan for the same student committed in between; nothing is written and
// store.ErrStaleLatest is returned so the caller can recompute the toggle.
func (s *PresenceEventStore) Append(ctx context.Context, rec store.PresenceEventRecord, from, to time.Time, prev *int64) (store.PresenceEventRecord, error) {
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now()
	}
	occurredMs := rec.OccurredAt.UnixMilli()

	var status int
	if rec.Status {
		status = 1
	}

	out := rec
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var latestID sql.NullInt64
		err := tx.QueryRowContext(ctx, `
SELECT id FROM presence_events
WHERE student_id = ? AND occurred_at_ms BETWEEN ? AND ?
ORDER BY occurred_at_ms DESC, id DESC
LIMIT 1;`, rec.StudentID, from.UnixMilli(), to.UnixMilli()).Scan(&latestID)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("Append read latest: %w", err)
		}

		if !sameLatest(latestID, prev) {
			return store.ErrStaleLatest
		}

		res, err := tx.ExecContext(ctx, `
INSERT INTO presence_events(student_id, occurred_at_ms, status)
VALUES (?, ?, ?);`, rec.StudentID, occurredMs, status)
		if err != nil {
			return fmt.Errorf("Append insert: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Append last insert id: %w", err)
		}
		out.ID = id
		return nil
	})
	if err != nil {
		return store.PresenceEventRecord{}, err
	}
	return out, nil
}

func sameLatest(observed sql.NullInt64, prev *int64) bool {
	if prev == nil {
		return !observed.Valid
	}
	return observed.Valid && observed.Int64 == *prev
}

// occurred_at_ms is server-assigned and non-decreasing per student in id
// order, so MAX(id) per student is the max-occurred_at event with the
// insertion-order tiebreak already applied.
const latestByStudentSQL = `
SELECT e.id, e.student_id, e.occurred_at_ms, e.status
FROM presence_events e
JOIN (
  SELECT student_id, MAX(id) AS id
  FROM presence_events
  WHERE occurred_at_ms BETWEEN ? AND ?
  GROUP BY student_id
) latest ON latest.id = e.id
ORDER BY e.student_id;`

func (s *PresenceEventStore) LatestByStudent(ctx context.Context, from, to time.Time) ([]store.PresenceEventRecord, error) {
	rows, err := s.db.QueryContext(ctx, latestByStudentSQL,
		from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("LatestByStudent query: %w", err)
	}
	defer rows.Close()

	var out []store.PresenceEventRecord
	for rows.Next() {
		rec, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("LatestByStudent scan: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LatestByStudent rows: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (store.PresenceEventRecord, error) {
	var (
		rec        store.PresenceEventRecord
		occurredMs int64
		status     int
	)
	if err := row.Scan(&rec.ID, &rec.StudentID, &occurredMs, &status); err != nil {
		return store.PresenceEventRecord{}, err
	}
	rec.OccurredAt = time.UnixMilli(occurredMs)
	rec.Status = status == 1
	return rec, nil
}
