package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/database"
)

// Tx is the set of writes available inside a mutating transaction. Lock*
// methods take row locks that are held until the transaction ends, so a
// state check made after a Lock call stays valid for the rest of fn.
type Tx interface {
	LockBooking(ctx context.Context, id string) (*Booking, error)
	LockSlip(ctx context.Context, id string) (*Slip, error)
	ListSlips(ctx context.Context, bookingID string) ([]*Slip, error)

	CreateBooking(ctx context.Context, b *Booking) error
	UpdateBooking(ctx context.Context, b *Booking) error

	CreateSlip(ctx context.Context, s *Slip) error
	UpdateSlip(ctx context.Context, s *Slip) error
	DeleteSlip(ctx context.Context, id string) error

	AppendAudit(ctx context.Context, rec *AuditRecord) error
}

// Store is the persistence boundary used by the service layer.
type Store interface {
	// InTransaction runs fn atomically; any error rolls back every write made
	// through tx, including audit records.
	InTransaction(ctx context.Context, fn func(tx Tx) error) error

	GetBooking(ctx context.Context, id string) (*Booking, error)
	GetSlip(ctx context.Context, id string) (*Slip, error)
	ListSlips(ctx context.Context, bookingID string) ([]*Slip, error)
	ListStalePendingSlips(ctx context.Context, attemptedBefore time.Time, limit int) ([]*Slip, error)
	MarkSlipDispatched(ctx context.Context, id string, at time.Time) error

	ListAuditByBooking(ctx context.Context, bookingID string) ([]*AuditRecord, error)
	ListAuditByAction(ctx context.Context, action AuditAction, limit, offset int) ([]*AuditRecord, error)
	ListRecentAudit(ctx context.Context, limit, offset int) ([]*AuditRecord, error)
	PurgeAuditBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PostgresStore implements Store on top of pgx.
type PostgresStore struct {
	db       *database.DB
	bookings *BookingRepository
	slips    *SlipRepository
	audit    *AuditRepository
}

// NewPostgresStore creates a store bound to the connection pool.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{
		db:       db,
		bookings: NewBookingRepository(db),
		slips:    NewSlipRepository(db),
		audit:    NewAuditRepository(db),
	}
}

// InTransaction implements Store.
func (s *PostgresStore) InTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.InTransaction(ctx, func(tx pgx.Tx) error {
		return fn(&pgTx{
			bookings: NewBookingRepository(tx),
			slips:    NewSlipRepository(tx),
			audit:    NewAuditRepository(tx),
		})
	})
}

func (s *PostgresStore) GetBooking(ctx context.Context, id string) (*Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *PostgresStore) GetSlip(ctx context.Context, id string) (*Slip, error) {
	return s.slips.GetByID(ctx, id)
}

func (s *PostgresStore) ListSlips(ctx context.Context, bookingID string) ([]*Slip, error) {
	return s.slips.ListByBooking(ctx, bookingID)
}

func (s *PostgresStore) ListStalePendingSlips(ctx context.Context, attemptedBefore time.Time, limit int) ([]*Slip, error) {
	return s.slips.ListStalePending(ctx, attemptedBefore, limit)
}

func (s *PostgresStore) MarkSlipDispatched(ctx context.Context, id string, at time.Time) error {
	return s.slips.MarkDispatched(ctx, id, at)
}

func (s *PostgresStore) ListAuditByBooking(ctx context.Context, bookingID string) ([]*AuditRecord, error) {
	return s.audit.GetByBookingID(ctx, bookingID)
}

func (s *PostgresStore) ListAuditByAction(ctx context.Context, action AuditAction, limit, offset int) ([]*AuditRecord, error) {
	return s.audit.GetByAction(ctx, action, limit, offset)
}

func (s *PostgresStore) ListRecentAudit(ctx context.Context, limit, offset int) ([]*AuditRecord, error) {
	return s.audit.GetRecent(ctx, limit, offset)
}

func (s *PostgresStore) PurgeAuditBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.audit.DeleteBefore(ctx, cutoff)
}

// pgTx binds the repositories to a single pgx transaction.
type pgTx struct {
	bookings *BookingRepository
	slips    *SlipRepository
	audit    *AuditRepository
}

func (t *pgTx) LockBooking(ctx context.Context, id string) (*Booking, error) {
	return t.bookings.GetForUpdate(ctx, id)
}

func (t *pgTx) LockSlip(ctx context.Context, id string) (*Slip, error) {
	return t.slips.GetForUpdate(ctx, id)
}

func (t *pgTx) ListSlips(ctx context.Context, bookingID string) ([]*Slip, error) {
	return t.slips.ListByBooking(ctx, bookingID)
}

func (t *pgTx) CreateBooking(ctx context.Context, b *Booking) error {
	return t.bookings.Create(ctx, b)
}

func (t *pgTx) UpdateBooking(ctx context.Context, b *Booking) error {
	return t.bookings.Update(ctx, b)
}

func (t *pgTx) CreateSlip(ctx context.Context, s *Slip) error {
	return t.slips.Create(ctx, s)
}

func (t *pgTx) UpdateSlip(ctx context.Context, s *Slip) error {
	return t.slips.Update(ctx, s)
}

func (t *pgTx) DeleteSlip(ctx context.Context, id string) error {
	return t.slips.Delete(ctx, id)
}

func (t *pgTx) AppendAudit(ctx context.Context, rec *AuditRecord) error {
	return t.audit.Append(ctx, rec)
}
