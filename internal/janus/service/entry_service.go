package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusgate/janus/internal/janus/types"
)

var (
	ErrInvalidEnrollment = errors.New("enrollment_number is required")
	ErrUnknownStudent    = errors.New("no student with this enrollment number")
)

const (
	StatusIn  = "IN"
	StatusOut = "OUT"
)

// EntryService handles checkpoint scans: each scan toggles the scanned
// student's inside/outside state for the current day.
type EntryService struct {
	registry *StudentRegistry
	ledger   *PresenceLedger
}

func NewEntryService(reg *StudentRegistry, ledger *PresenceLedger) *EntryService {
	return &EntryService{registry: reg, ledger: ledger}
}

// RecordEntry resolves the scanned enrollment number and appends the next
// presence event for it. Unknown students are rejected before the ledger is
// touched.
func (s *EntryService) RecordEntry(ctx context.Context, req types.EntryRequest) (types.EntryResponse, error) {
	raw := strings.TrimSpace(req.EnrollmentNumber)
	if raw == "" {
		return types.EntryResponse{}, ErrInvalidEnrollment
	}

	student, err := s.registry.Lookup(ctx, raw)
	if err != nil {
		return types.EntryResponse{}, fmt.Errorf("entry lookup %q: %w", raw, err)
	}
	if student == nil {
		return types.EntryResponse{}, fmt.Errorf("entry %q: %w", NormalizeEnrollment(raw), ErrUnknownStudent)
	}

	ev, err := s.ledger.RecordScan(ctx, student.EnrollmentNumber)
	if err != nil {
		return types.EntryResponse{}, err
	}

	status := StatusOut
	if ev.Status {
		status = StatusIn
	}

	return types.EntryResponse{
		OK:               true,
		EnrollmentNumber: student.EnrollmentNumber,
		Name:             student.Name,
		Status:           status,
		OccurredAt:       ev.OccurredAt.Format(time.RFC3339Nano),
	}, nil
}
