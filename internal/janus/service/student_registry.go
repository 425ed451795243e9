package service

import (
	"context"

	"github.com/campusgate/janus/internal/janus/store"
)

// StudentRegistry resolves scanned enrollment numbers against the student
// directory. The directory is authoritative for existence; callers treat a
// nil result as "unknown student".
type StudentRegistry struct {
	store store.StudentStore
}

func NewStudentRegistry(st store.StudentStore) *StudentRegistry {
	return &StudentRegistry{store: st}
}

// Lookup normalizes enrollmentNumber and fetches the matching student.
func (r *StudentRegistry) Lookup(ctx context.Context, enrollmentNumber string) (*store.StudentRecord, error) {
	return r.store.Lookup(ctx, NormalizeEnrollment(enrollmentNumber))
}
