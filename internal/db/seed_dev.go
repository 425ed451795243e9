package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedDev inserts a starter admin ("admin" / "changeme") and a couple of
// students so a fresh dev checkout can exercise every route without manual
// setup. Safe to run on every start.
func SeedDev(ctx context.Context, db *sql.DB) error {
	now := time.Now().UTC().UnixMilli()

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
INSERT INTO admins(admin_id, username, password_hash, created_at_ms)
VALUES (?, 'admin', ?, ?)
ON CONFLICT(username) DO NOTHING;`, uuid.NewString(), hash, now); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	students := []struct {
		enrollment, name, department, batch, section string
		semester                                     int
	}{
		{"42", "Ada Lovelace", "CSE", "2024", "A", 3},
		{"1771", "Charles Babbage", "ECE", "2023", "B", 5},
	}
	for _, s := range students {
		if _, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO students(
  enrollment_number, name, department, mor_shift, batch, section, semester,
  created_at_ms, updated_at_ms
) VALUES (?, ?, ?, 1, ?, ?, ?, ?, ?);`,
			s.enrollment, s.name, s.department, s.batch, s.section, s.semester, now, now,
		); err != nil {
			return fmt.Errorf("seed student %s: %w", s.enrollment, err)
		}
	}

	return nil
}
