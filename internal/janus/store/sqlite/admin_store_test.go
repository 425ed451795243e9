package sqlite_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/campusgate/janus/internal/janus/store"
	sqlitestore "github.com/campusgate/janus/internal/janus/store/sqlite"
)

func TestAdminStore_CreateAndByUsername(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewAdminStore(conn, w)

	rec := store.AdminRecord{
		ID:           "0b1e3a66-0000-4000-8000-000000000001",
		Username:     "gatekeeper",
		PasswordHash: []byte("$2a$12$notarealhashbutgoodenough"),
	}
	if err := st.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := st.ByUsername(context.Background(), "gatekeeper")
	if err != nil {
		t.Fatalf("ByUsername: %v", err)
	}
	if got == nil {
		t.Fatal("expected an admin")
	}
	if got.ID != rec.ID {
		t.Errorf("ID = %q, want %q", got.ID, rec.ID)
	}
	if !bytes.Equal(got.PasswordHash, rec.PasswordHash) {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, rec.PasswordHash)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the store")
	}
}

func TestAdminStore_CreateDuplicateUsername(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewAdminStore(conn, w)

	rec := store.AdminRecord{
		ID:           "0b1e3a66-0000-4000-8000-000000000001",
		Username:     "gatekeeper",
		PasswordHash: []byte("hash-one"),
	}
	if err := st.Create(context.Background(), rec); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := rec
	dup.ID = "0b1e3a66-0000-4000-8000-000000000002"
	if err := st.Create(context.Background(), dup); !errors.Is(err, store.ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAdminStore_ByUsernameMissing(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	st := sqlitestore.NewAdminStore(conn, w)

	got, err := st.ByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ByUsername: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing admin, got %+v", got)
	}
}
