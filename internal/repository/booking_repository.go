package repository

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/database"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

// BookingRepository reads and writes booking rows.
type BookingRepository struct {
	q database.Querier
}

// NewBookingRepository creates a repository over a pool or a transaction.
func NewBookingRepository(q database.Querier) *BookingRepository {
	return &BookingRepository{q: q}
}

const bookingColumns = `
	id, user_id, room_type_id, check_in_date, check_out_date, num_guests,
	total_price, payment_type, payment_amount, discount_amount, discount_reason,
	status, cancelled_by_admin, cancellation_reason, cancelled_at,
	notes, admin_notes, created_at, updated_at`

// Create inserts a booking and fills in generated columns.
func (r *BookingRepository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings
		    (user_id, room_type_id, check_in_date, check_out_date, num_guests,
		     total_price, payment_type, payment_amount, discount_amount, discount_reason,
		     status, notes)
		VALUES ($1, $2, $3, $4, $5,
		        $6, $7, $8, $9, $10,
		        $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		b.UserID,
		b.RoomTypeID,
		b.CheckInDate,
		b.CheckOutDate,
		b.NumGuests,
		b.TotalPrice,
		b.PaymentType,
		b.PaymentAmount,
		b.DiscountAmount,
		b.DiscountReason,
		b.Status,
		b.Notes,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create booking")
	}
	return nil
}

// GetByID returns a booking without locking it.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetForUpdate returns a booking and holds a row lock until the enclosing
// transaction ends.
func (r *BookingRepository) GetForUpdate(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *BookingRepository) get(ctx context.Context, query, id string) (*Booking, error) {
	b, err := scanBooking(r.q.QueryRow(ctx, query, id))
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, errors.NotFound("booking", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get booking")
	}
	return b, nil
}

// Update writes every mutable column of b.
func (r *BookingRepository) Update(ctx context.Context, b *Booking) error {
	query := `
		UPDATE bookings
		SET check_in_date       = $2,
		    check_out_date      = $3,
		    num_guests          = $4,
		    total_price         = $5,
		    payment_type        = $6,
		    payment_amount      = $7,
		    discount_amount     = $8,
		    discount_reason     = $9,
		    status              = $10,
		    cancelled_by_admin  = $11,
		    cancellation_reason = $12,
		    cancelled_at        = $13,
		    notes               = $14,
		    admin_notes         = $15,
		    updated_at          = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.q.QueryRow(ctx, query,
		b.ID,
		b.CheckInDate,
		b.CheckOutDate,
		b.NumGuests,
		b.TotalPrice,
		b.PaymentType,
		b.PaymentAmount,
		b.DiscountAmount,
		b.DiscountReason,
		b.Status,
		b.CancelledByAdmin,
		b.CancellationReason,
		b.CancelledAt,
		b.Notes,
		b.AdminNotes,
	).Scan(&b.UpdatedAt)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return errors.NotFound("booking", b.ID)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to update booking")
	}
	return nil
}

type bookingScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingScanner) (*Booking, error) {
	b := &Booking{}
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.RoomTypeID,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.NumGuests,
		&b.TotalPrice,
		&b.PaymentType,
		&b.PaymentAmount,
		&b.DiscountAmount,
		&b.DiscountReason,
		&b.Status,
		&b.CancelledByAdmin,
		&b.CancellationReason,
		&b.CancelledAt,
		&b.Notes,
		&b.AdminNotes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}
