package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	dbpkg "github.com/campusgate/janus/internal/db"
	"github.com/campusgate/janus/internal/janus/store"
)

type StudentStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewStudentStore(db *sql.DB, writer *dbpkg.Worker) *StudentStore {
	return &StudentStore{db: db, writer: writer}
}

func (s *StudentStore) Create(ctx context.Context, rec store.StudentRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	createdMs := rec.CreatedAt.UTC().UnixMilli()

	var morShift int
	if rec.MorShift {
		morShift = 1
	}

	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM students WHERE enrollment_number = ?;`,
			rec.EnrollmentNumber,
		).Scan(&exists)
		if err == nil {
			return store.ErrStudentExists
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("Create check existing: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
INSERT INTO students(
  enrollment_number, name, department, mor_shift, batch, section, semester,
  phone_no, address, created_at_ms, updated_at_ms
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			rec.EnrollmentNumber, rec.Name, rec.Department, morShift, rec.Batch,
			rec.Section, rec.Semester, rec.PhoneNo, rec.Address,
			createdMs, createdMs,
		); err != nil {
			return fmt.Errorf("Create insert %s: %w", rec.EnrollmentNumber, err)
		}
		return nil
	})
}

const studentColumns = `enrollment_number, name, department, mor_shift, batch,
section, semester, phone_no, address, created_at_ms`

func (s *StudentStore) Lookup(ctx context.Context, enrollmentNumber string) (*store.StudentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE enrollment_number = ?;`,
		enrollmentNumber)

	rec, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Lookup %s: %w", enrollmentNumber, err)
	}
	return &rec, nil
}

func (s *StudentStore) List(ctx context.Context, f store.StudentFilter) ([]store.StudentRecord, error) {
	var (
		where []string
		args  []any
	)
	if f.Department != "" {
		where = append(where, "department = ?")
		args = append(args, f.Department)
	}
	if f.Batch != "" {
		where = append(where, "batch = ?")
		args = append(args, f.Batch)
	}
	if f.Semester != 0 {
		where = append(where, "semester = ?")
		args = append(args, f.Semester)
	}

	q := `SELECT ` + studentColumns + ` FROM students`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY enrollment_number;`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("List query: %w", err)
	}
	defer rows.Close()

	var out []store.StudentRecord
	for rows.Next() {
		rec, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List rows: %w", err)
	}
	return out, nil
}

func (s *StudentStore) Delete(ctx context.Context, enrollmentNumber string) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM students WHERE enrollment_number = ?;`, enrollmentNumber)
		if err != nil {
			return fmt.Errorf("Delete %s: %w", enrollmentNumber, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("Delete rows affected: %w", err)
		}
		if n == 0 {
			return store.ErrStudentNotFound
		}
		return nil
	})
}

func scanStudent(row rowScanner) (store.StudentRecord, error) {
	var (
		rec       store.StudentRecord
		morShift  int
		createdMs int64
	)
	if err := row.Scan(
		&rec.EnrollmentNumber, &rec.Name, &rec.Department, &morShift,
		&rec.Batch, &rec.Section, &rec.Semester, &rec.PhoneNo, &rec.Address,
		&createdMs,
	); err != nil {
		return store.StudentRecord{}, err
	}
	rec.MorShift = morShift == 1
	rec.CreatedAt = time.UnixMilli(createdMs).UTC()
	return rec, nil
}
