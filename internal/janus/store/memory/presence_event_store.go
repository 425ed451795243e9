package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusgate/janus/internal/janus/store"
)

// PresenceEventStore is an in-memory append-only presence ledger.
// It is intended for use in tests and dev environments.
type PresenceEventStore struct {
	mu     sync.Mutex
	nextID int64
	events []store.PresenceEventRecord
}

func NewPresenceEventStore() *PresenceEventStore {
	return &PresenceEventStore{nextID: 1}
}

func (s *PresenceEventStore) LatestFor(_ context.Context, studentID string, from, to time.Time) (*store.PresenceEventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestLocked(studentID, from, to), nil
}

// latestLocked relies on events for one student being appended in
// occurred-at order, so the last in-window match is the latest.
func (s *PresenceEventStore) latestLocked(studentID string, from, to time.Time) *store.PresenceEventRecord {
	for i := len(s.events) - 1; i >= 0; i-- {
		ev := s.events[i]
		if ev.StudentID != studentID || !inWindow(ev.OccurredAt, from, to) {
			continue
		}
		out := ev
		return &out
	}
	return nil
}

func (s *PresenceEventStore) Append(_ context.Context, rec store.PresenceEventRecord, from, to time.Time, prev *int64) (store.PresenceEventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest := s.latestLocked(rec.StudentID, from, to)
	if !sameLatest(latest, prev) {
		return store.PresenceEventRecord{}, store.ErrStaleLatest
	}

	rec.ID = s.nextID
	s.nextID++
	s.events = append(s.events, rec)
	return rec, nil
}

func sameLatest(latest *store.PresenceEventRecord, prev *int64) bool {
	if prev == nil {
		return latest == nil
	}
	return latest != nil && latest.ID == *prev
}

func (s *PresenceEventStore) LatestByStudent(_ context.Context, from, to time.Time) ([]store.PresenceEventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest := make(map[string]store.PresenceEventRecord)
	for _, ev := range s.events {
		if !inWindow(ev.OccurredAt, from, to) {
			continue
		}
		cur, ok := latest[ev.StudentID]
		if !ok || ev.OccurredAt.After(cur.OccurredAt) ||
			(ev.OccurredAt.Equal(cur.OccurredAt) && ev.ID > cur.ID) {
			latest[ev.StudentID] = ev
		}
	}

	out := make([]store.PresenceEventRecord, 0, len(latest))
	for _, ev := range latest {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// Events returns a copy of all recorded events.  Test-only helper.
func (s *PresenceEventStore) Events() []store.PresenceEventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.PresenceEventRecord, len(s.events))
	copy(out, s.events)
	return out
}
