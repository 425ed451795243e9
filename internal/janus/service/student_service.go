package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusgate/janus/internal/janus/store"
	"github.com/campusgate/janus/internal/janus/types"
)

var ErrMissingStudentFields = errors.New("name, enrollment_number, department and batch are required")

// StudentService manages the student directory.
type StudentService struct {
	students store.StudentStore
}

func NewStudentService(st store.StudentStore) *StudentService {
	return &StudentService{students: st}
}

// AddStudent validates and stores a new directory entry. The enrollment
// number is normalized before storage so every later scan, however padded,
// resolves to the same record.
func (s *StudentService) AddStudent(ctx context.Context, req types.AddStudentRequest) (store.StudentRecord, error) {
	enrollment := strings.TrimSpace(req.EnrollmentNumber)
	if enrollment == "" {
		return store.StudentRecord{}, ErrInvalidEnrollment
	}

	name := strings.TrimSpace(req.Name)
	dept := strings.TrimSpace(req.Department)
	batch := strings.TrimSpace(req.Batch)
	if name == "" || dept == "" || batch == "" {
		return store.StudentRecord{}, ErrMissingStudentFields
	}

	morShift := true
	if req.MorShift != nil {
		morShift = *req.MorShift
	}
	semester := req.Semester
	if semester < 1 {
		semester = 1
	}

	rec := store.StudentRecord{
		EnrollmentNumber: NormalizeEnrollment(enrollment),
		Name:             name,
		Department:       dept,
		MorShift:         morShift,
		Batch:            batch,
		Section:          strings.TrimSpace(req.Section),
		Semester:         semester,
		PhoneNo:          strings.TrimSpace(req.PhoneNo),
		Address:          strings.TrimSpace(req.Address),
	}
	if err := s.students.Create(ctx, rec); err != nil {
		return store.StudentRecord{}, fmt.Errorf("add student %s: %w", rec.EnrollmentNumber, err)
	}
	return rec, nil
}

// GetStudent fetches a student by (possibly padded) enrollment number.
func (s *StudentService) GetStudent(ctx context.Context, enrollmentNumber string) (store.StudentRecord, error) {
	id := NormalizeEnrollment(enrollmentNumber)
	student, err := s.students.Lookup(ctx, id)
	if err != nil {
		return store.StudentRecord{}, fmt.Errorf("get student %s: %w", id, err)
	}
	if student == nil {
		return store.StudentRecord{}, fmt.Errorf("get student %s: %w", id, ErrUnknownStudent)
	}
	return *student, nil
}

func (s *StudentService) ListStudents(ctx context.Context, f store.StudentFilter) ([]store.StudentRecord, error) {
	return s.students.List(ctx, f)
}

// RemoveStudent deletes a directory entry. The student's presence events
// are retained; they simply stop contributing to the roster.
func (s *StudentService) RemoveStudent(ctx context.Context, enrollmentNumber string) error {
	id := NormalizeEnrollment(enrollmentNumber)
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			return fmt.Errorf("remove student %s: %w", id, ErrUnknownStudent)
		}
		return fmt.Errorf("remove student %s: %w", id, err)
	}
	return nil
}
