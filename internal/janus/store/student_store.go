package store

import (
	"context"
	"errors"
	"time"
)

type StudentRecord struct {
	EnrollmentNumber string // normalized: leading zeros stripped
	Name             string
	Department       string
	MorShift         bool
	Batch            string
	Section          string
	Semester         int
	PhoneNo          string
	Address          string
	CreatedAt        time.Time
}

var (
	ErrStudentExists   = errors.New("student already exists")
	ErrStudentNotFound = errors.New("student not found")
)

// StudentFilter narrows List results. Zero values match everything.
type StudentFilter struct {
	Department string
	Batch      string
	Semester   int
}

// StudentStore is the student directory: the authoritative record of which
// enrollment numbers exist and their display attributes.
type StudentStore interface {
	// Create inserts a new student, failing with ErrStudentExists if the
	// enrollment number is already registered.
	Create(ctx context.Context, rec StudentRecord) error

	// Lookup returns the student with the given normalized enrollment
	// number, or nil if none exists.
	Lookup(ctx context.Context, enrollmentNumber string) (*StudentRecord, error)

	List(ctx context.Context, f StudentFilter) ([]StudentRecord, error)

	// Delete removes a student, failing with ErrStudentNotFound if absent.
	// Presence events referencing the student are left in place.
	Delete(ctx context.Context, enrollmentNumber string) error
}
