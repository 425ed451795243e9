package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusgate/janus/internal/janus/store"
	sqlitestore "github.com/campusgate/janus/internal/janus/store/sqlite"
)

func TestStudentStore_CreateLookupRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewStudentStore(conn, w)

	rec := store.StudentRecord{
		EnrollmentNumber: "42",
		Name:             "Ada Lovelace",
		Department:       "CSE",
		MorShift:         true,
		Batch:            "2024",
		Section:          "A",
		Semester:         3,
		PhoneNo:          "555-0142",
		Address:          "12 Analytical Lane",
		CreatedAt:        time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
	}
	if err := st.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := st.Lookup(context.Background(), "42")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got == nil {
		t.Fatal("expected a student")
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, rec.CreatedAt)
	}
	got.CreatedAt, rec.CreatedAt = time.Time{}, time.Time{}
	if *got != rec {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, rec)
	}
}

func TestStudentStore_CreateDuplicate(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewStudentStore(conn, w)

	rec := store.StudentRecord{
		EnrollmentNumber: "42", Name: "Ada Lovelace",
		Department: "CSE", Batch: "2024", Semester: 1,
	}
	if err := st.Create(context.Background(), rec); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := st.Create(context.Background(), rec)
	if !errors.Is(err, store.ErrStudentExists) {
		t.Fatalf("expected ErrStudentExists, got %v", err)
	}
}

func TestStudentStore_LookupMissing(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewStudentStore(conn, w)

	got, err := st.Lookup(context.Background(), "999")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing student, got %+v", got)
	}
}

func TestStudentStore_ListFilters(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewStudentStore(conn, w)

	for _, rec := range []store.StudentRecord{
		{EnrollmentNumber: "42", Name: "Ada Lovelace", Department: "CSE", Batch: "2024", Semester: 3},
		{EnrollmentNumber: "7", Name: "Grace Hopper", Department: "ECE", Batch: "2023", Semester: 5},
		{EnrollmentNumber: "1912", Name: "Alan Turing", Department: "CSE", Batch: "2023", Semester: 5},
	} {
		if err := st.Create(context.Background(), rec); err != nil {
			t.Fatalf("create %s: %v", rec.EnrollmentNumber, err)
		}
	}

	all, err := st.List(context.Background(), store.StudentFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 students, got %d", len(all))
	}

	cse, err := st.List(context.Background(), store.StudentFilter{Department: "CSE"})
	if err != nil {
		t.Fatalf("List CSE: %v", err)
	}
	if len(cse) != 2 {
		t.Fatalf("expected 2 CSE students, got %d", len(cse))
	}

	narrow, err := st.List(context.Background(), store.StudentFilter{Department: "CSE", Batch: "2023", Semester: 5})
	if err != nil {
		t.Fatalf("List narrow: %v", err)
	}
	if len(narrow) != 1 || narrow[0].Name != "Alan Turing" {
		t.Errorf("unexpected narrow result: %+v", narrow)
	}
}

func TestStudentStore_Delete(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewStudentStore(conn, w)

	rec := store.StudentRecord{
		EnrollmentNumber: "42", Name: "Ada Lovelace",
		Department: "CSE", Batch: "2024", Semester: 1,
	}
	if err := st.Create(context.Background(), rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := st.Delete(context.Background(), "42"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := st.Lookup(context.Background(), "42")
	if err != nil {
		t.Fatalf("Lookup after delete: %v", err)
	}
	if got != nil {
		t.Errorf("student should be gone, got %+v", got)
	}

	if err := st.Delete(context.Background(), "42"); !errors.Is(err, store.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
