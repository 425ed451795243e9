package store

import (
	"context"
	"errors"
	"time"
)

// PresenceEventRecord is one inside/outside transition for a student.
// Events are immutable once appended; nothing in the system updates or
// deletes them.
type PresenceEventRecord struct {
	ID         int64
	StudentID  string // normalized enrollment number
	OccurredAt time.Time
	Status     bool // true = entered (now inside), false = exited
}

// ErrStaleLatest is returned by Append when another event for the same
// student landed inside the window after the caller read its latest event.
// Callers re-read and retry.
var ErrStaleLatest = errors.New("latest presence event changed since read")

// PresenceEventStore persists presence events as an append-only ledger.
type PresenceEventStore interface {
	// LatestFor returns the event with the greatest OccurredAt for the
	// student within [from, to], ties broken by insertion id, or nil if
	// the student has no event in the window.
	LatestFor(ctx context.Context, studentID string, from, to time.Time) (*PresenceEventRecord, error)

	// Append persists rec. prev is the id of the latest event the caller
	// observed for rec.StudentID within [from, to], or nil when it
	// observed none. If the store's latest no longer matches, nothing is
	// written and ErrStaleLatest is returned.
	Append(ctx context.Context, rec PresenceEventRecord, from, to time.Time, prev *int64) (PresenceEventRecord, error)

	// LatestByStudent returns the latest event within [from, to] for
	// every student with at least one event there.
	LatestByStudent(ctx context.Context, from, to time.Time) ([]PresenceEventRecord, error)
}
