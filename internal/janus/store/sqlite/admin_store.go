package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "github.com/campusgate/janus/internal/db"
	"github.com/campusgate/janus/internal/janus/store"
)

type AdminStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewAdminStore(db *sql.DB, writer *dbpkg.Worker) *AdminStore {
	return &AdminStore{db: db, writer: writer}
}

func (s *AdminStore) Create(ctx context.Context, rec store.AdminRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	createdMs := rec.CreatedAt.UTC().UnixMilli()

	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM admins WHERE username = ?;`, rec.Username,
		).Scan(&exists)
		if err == nil {
			return store.ErrAdminExists
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("Create check existing: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
INSERT INTO admins(admin_id, username, password_hash, created_at_ms)
VALUES (?, ?, ?, ?);`,
			rec.ID, rec.Username, rec.PasswordHash, createdMs,
		); err != nil {
			return fmt.Errorf("Create insert %s: %w", rec.Username, err)
		}
		return nil
	})
}

func (s *AdminStore) ByUsername(ctx context.Context, username string) (*store.AdminRecord, error) {
	var (
		rec       store.AdminRecord
		createdMs int64
	)
	err := s.db.QueryRowContext(ctx, `
SELECT admin_id, username, password_hash, created_at_ms
FROM admins WHERE username = ?;`, username,
	).Scan(&rec.ID, &rec.Username, &rec.PasswordHash, &createdMs)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ByUsername %s: %w", username, err)
	}
	rec.CreatedAt = time.UnixMilli(createdMs).UTC()
	return &rec, nil
}
