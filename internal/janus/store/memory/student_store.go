package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusgate/janus/internal/janus/store"
)

type StudentStore struct {
	mu       sync.RWMutex
	students map[string]store.StudentRecord
}

func NewStudentStore() *StudentStore {
	return &StudentStore{students: make(map[string]store.StudentRecord)}
}

func (s *StudentStore) Create(_ context.Context, rec store.StudentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[rec.EnrollmentNumber]; ok {
		return store.ErrStudentExists
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	s.students[rec.EnrollmentNumber] = rec
	return nil
}

func (s *StudentStore) Lookup(_ context.Context, enrollmentNumber string) (*store.StudentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.students[enrollmentNumber]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

func (s *StudentStore) List(_ context.Context, f store.StudentFilter) ([]store.StudentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.StudentRecord, 0, len(s.students))
	for _, rec := range s.students {
		if f.Department != "" && rec.Department != f.Department {
			continue
		}
		if f.Batch != "" && rec.Batch != f.Batch {
			continue
		}
		if f.Semester != 0 && rec.Semester != f.Semester {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EnrollmentNumber < out[j].EnrollmentNumber
	})
	return out, nil
}

func (s *StudentStore) Delete(_ context.Context, enrollmentNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[enrollmentNumber]; !ok {
		return store.ErrStudentNotFound
	}
	delete(s.students, enrollmentNumber)
	return nil
}
