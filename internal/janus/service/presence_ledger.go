package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusgate/janus/internal/janus/store"
)

// ErrScanConflict is returned when repeated append attempts keep losing the
// race for a student's latest event. Callers may retry the whole scan.
var ErrScanConflict = errors.New("scan conflicted with a concurrent scan")

// maxToggleAttempts bounds the re-read-and-retry loop on ErrStaleLatest.
const maxToggleAttempts = 3

// PresenceLedger owns the toggle rule: each accepted scan flips the
// student's inside/outside state for the current day. Every day starts
// from "outside", so the first scan of a day always records an entry,
// whatever yesterday's final state was.
type PresenceLedger struct {
	events store.PresenceEventStore
	locks  *keyedLock

	// Now supplies the ledger's clock; tests override it to pin the day
	// window. Defaults to time.Now.
	Now func() time.Time
}

func NewPresenceLedger(events store.PresenceEventStore) *PresenceLedger {
	return &PresenceLedger{
		events: events,
		locks:  newKeyedLock(),
		Now:    time.Now,
	}
}

// RecordScan appends the next presence event for studentID and returns it.
// The caller is expected to have resolved studentID against the directory
// already; the ledger does not check existence.
//
// The read-latest-then-append pair runs under a per-student lock, so two
// concurrent scans for the same student cannot both observe the same latest
// event. The store independently rejects an append whose observed latest is
// stale, which covers deployments where this process is not the only writer.
func (l *PresenceLedger) RecordScan(ctx context.Context, studentID string) (store.PresenceEventRecord, error) {
	unlock := l.locks.Lock(studentID)
	defer unlock()

	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		now := l.Now()
		from, to := CurrentDayWindow(now)

		latest, err := l.events.LatestFor(ctx, studentID, from, to)
		if err != nil {
			return store.PresenceEventRecord{}, fmt.Errorf("record scan %s: %w", studentID, err)
		}

		status := true // no event today: first scan enters
		var prev *int64
		if latest != nil {
			status = !latest.Status
			prev = &latest.ID
		}

		rec, err := l.events.Append(ctx, store.PresenceEventRecord{
			StudentID:  studentID,
			OccurredAt: now.Truncate(time.Millisecond),
			Status:     status,
		}, from, to, prev)
		if errors.Is(err, store.ErrStaleLatest) {
			continue
		}
		if err != nil {
			return store.PresenceEventRecord{}, fmt.Errorf("record scan %s: %w", studentID, err)
		}
		return rec, nil
	}

	return store.PresenceEventRecord{}, fmt.Errorf("record scan %s: %w", studentID, ErrScanConflict)
}

// LatestFor reports the student's latest event within [from, to], or nil if
// the student has none there. Read-only.
func (l *PresenceLedger) LatestFor(ctx context.Context, studentID string, from, to time.Time) (*store.PresenceEventRecord, error) {
	return l.events.LatestFor(ctx, studentID, from, to)
}
