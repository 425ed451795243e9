package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campusgate/janus/internal/janus/store"
)

type AdminStore struct {
	mu     sync.RWMutex
	admins map[string]store.AdminRecord // keyed by username
}

func NewAdminStore() *AdminStore {
	return &AdminStore{admins: make(map[string]store.AdminRecord)}
}

func (s *AdminStore) Create(_ context.Context, rec store.AdminRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[rec.Username]; ok {
		return store.ErrAdminExists
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	s.admins[rec.Username] = rec
	return nil
}

func (s *AdminStore) ByUsername(_ context.Context, username string) (*store.AdminRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.admins[username]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}
