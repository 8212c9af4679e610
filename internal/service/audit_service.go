package service

import (
	"context"
	"time"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

// Audit pagination bounds.
const (
	DefaultAuditPageSize = 50
	MaxAuditPageSize     = 200
)

// AuditService records and reads the booking audit trail.
type AuditService struct {
	store repository.Store
	clock Clock
	log   *logger.Logger
}

// NewAuditService creates a new AuditService.
func NewAuditService(store repository.Store, clock Clock, log *logger.Logger) *AuditService {
	if clock == nil {
		clock = time.Now
	}
	return &AuditService{store: store, clock: clock, log: log}
}

// AuditEntry is the input to LogAction.
type AuditEntry struct {
	BookingID   string
	Action      repository.AuditAction
	PerformedBy *string
	OldValue    map[string]any
	NewValue    map[string]any
	Notes       *string
}

// LogAction appends one record inside the caller's transaction. Its error must
// be returned from the transaction function so the mutation rolls back with it.
func (s *AuditService) LogAction(ctx context.Context, tx repository.Tx, entry AuditEntry) (*repository.AuditRecord, error) {
	if !entry.Action.Valid() {
		return nil, errors.New(errors.ErrCodeInternal, "unknown audit action "+string(entry.Action))
	}
	if entry.BookingID == "" {
		return nil, errors.New(errors.ErrCodeInternal, "audit record without booking id")
	}

	rec := &repository.AuditRecord{
		BookingID:   entry.BookingID,
		Action:      entry.Action,
		PerformedBy: entry.PerformedBy,
		OldValue:    entry.OldValue,
		NewValue:    entry.NewValue,
		Notes:       entry.Notes,
	}
	if err := tx.AppendAudit(ctx, rec); err != nil {
		s.log.Error().Err(err).
			Str("booking_id", entry.BookingID).
			Str("action", string(entry.Action)).
			Msg("Failed to append audit record")
		return nil, err
	}
	return rec, nil
}

// GetAuditHistory returns the full trail of a booking, newest first.
func (s *AuditService) GetAuditHistory(ctx context.Context, bookingID string) ([]*repository.AuditRecord, error) {
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	return s.store.ListAuditByBooking(ctx, bookingID)
}

// GetAuditByAction returns a page of records with the given action.
func (s *AuditService) GetAuditByAction(ctx context.Context, action string, limit, offset int) ([]*repository.AuditRecord, error) {
	a := repository.AuditAction(action)
	if !a.Valid() {
		return nil, errors.InvalidInput("action", "unknown audit action")
	}
	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, err
	}
	return s.store.ListAuditByAction(ctx, a, limit, offset)
}

// GetRecentAuditRecords returns a page of the whole log.
func (s *AuditService) GetRecentAuditRecords(ctx context.Context, limit, offset int) ([]*repository.AuditRecord, error) {
	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, err
	}
	return s.store.ListRecentAudit(ctx, limit, offset)
}

// PurgeOldRecords deletes records older than the given number of days and
// returns how many were removed.
func (s *AuditService) PurgeOldRecords(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays < 1 {
		return 0, errors.InvalidInput("older_than_days", "must be at least 1")
	}

	cutoff := s.clock().AddDate(0, 0, -olderThanDays)
	n, err := s.store.PurgeAuditBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int("older_than_days", olderThanDays).
		Time("cutoff", cutoff).
		Int64("deleted", n).
		Msg("Audit records purged")

	return n, nil
}

func normalizePage(limit, offset int) (int, int, error) {
	if offset < 0 {
		return 0, 0, errors.InvalidInput("offset", "must not be negative")
	}
	if limit <= 0 {
		limit = DefaultAuditPageSize
	}
	if limit > MaxAuditPageSize {
		limit = MaxAuditPageSize
	}
	return limit, offset, nil
}
