package store

import (
	"context"
	"errors"
	"time"
)

type AdminRecord struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

var ErrAdminExists = errors.New("admin already exists")

type AdminStore interface {
	// Create inserts a new admin, failing with ErrAdminExists if the
	// username is taken.
	Create(ctx context.Context, rec AdminRecord) error

	// ByUsername returns the admin with the given username, or nil.
	ByUsername(ctx context.Context, username string) (*AdminRecord, error)
}
