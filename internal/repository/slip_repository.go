package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/database"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

// SlipRepository reads and writes booking_slips rows.
type SlipRepository struct {
	q database.Querier
}

// NewSlipRepository creates a repository over a pool or a transaction.
func NewSlipRepository(q database.Querier) *SlipRepository {
	return &SlipRepository{q: q}
}

const slipColumns = `
	id, booking_id, slip_url, uploaded_by, uploaded_at, is_primary,
	slipok_status, slipok_ref, slipok_checked_at,
	admin_status, verified_by, verified_at, notes, last_dispatched_at`

// Create inserts a slip and fills in id and uploaded_at.
func (r *SlipRepository) Create(ctx context.Context, s *Slip) error {
	query := `
		INSERT INTO booking_slips
		    (booking_id, slip_url, uploaded_by, is_primary,
		     slipok_status, admin_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, uploaded_at
	`

	err := r.q.QueryRow(ctx, query,
		s.BookingID,
		s.SlipURL,
		s.UploadedBy,
		s.IsPrimary,
		s.SlipokStatus,
		s.AdminStatus,
		s.Notes,
	).Scan(&s.ID, &s.UploadedAt)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create slip")
	}
	return nil
}

// GetByID returns a slip without locking it.
func (r *SlipRepository) GetByID(ctx context.Context, id string) (*Slip, error) {
	return r.get(ctx, `SELECT `+slipColumns+` FROM booking_slips WHERE id = $1`, id)
}

// GetForUpdate returns a slip holding a row lock for the rest of the transaction.
func (r *SlipRepository) GetForUpdate(ctx context.Context, id string) (*Slip, error) {
	return r.get(ctx, `SELECT `+slipColumns+` FROM booking_slips WHERE id = $1 FOR UPDATE`, id)
}

func (r *SlipRepository) get(ctx context.Context, query, id string) (*Slip, error) {
	s, err := scanSlip(r.q.QueryRow(ctx, query, id))
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, errors.NotFound("slip", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get slip")
	}
	return s, nil
}

// ListByBooking returns a booking's slips, oldest upload first.
func (r *SlipRepository) ListByBooking(ctx context.Context, bookingID string) ([]*Slip, error) {
	query := `
		SELECT ` + slipColumns + `
		FROM booking_slips
		WHERE booking_id = $1
		ORDER BY uploaded_at ASC, id ASC
	`
	return r.list(ctx, query, bookingID)
}

// ListStalePending returns slips still awaiting automated verification whose
// last upload or re-dispatch happened before the given instant, least
// recently attempted first.
func (r *SlipRepository) ListStalePending(ctx context.Context, attemptedBefore time.Time, limit int) ([]*Slip, error) {
	query := `
		SELECT ` + slipColumns + `
		FROM booking_slips
		WHERE slipok_status = 'pending'
		  AND GREATEST(uploaded_at, last_dispatched_at) < $1
		ORDER BY GREATEST(uploaded_at, last_dispatched_at) ASC, id ASC
		LIMIT $2
	`
	return r.list(ctx, query, attemptedBefore, limit)
}

// MarkDispatched records a re-dispatch of a still-pending slip.
func (r *SlipRepository) MarkDispatched(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `
		UPDATE booking_slips
		SET last_dispatched_at = $2
		WHERE id = $1 AND slipok_status = 'pending'
	`, id, at)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to mark slip dispatched")
	}
	return nil
}

func (r *SlipRepository) list(ctx context.Context, query string, args ...any) ([]*Slip, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to list slips")
	}
	defer rows.Close()

	slips := make([]*Slip, 0)
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to scan slip")
		}
		slips = append(slips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to list slips")
	}
	return slips, nil
}

// Update writes every mutable column of s.
func (r *SlipRepository) Update(ctx context.Context, s *Slip) error {
	query := `
		UPDATE booking_slips
		SET slip_url          = $2,
		    uploaded_by       = $3,
		    uploaded_at       = $4,
		    is_primary        = $5,
		    slipok_status     = $6,
		    slipok_ref        = $7,
		    slipok_checked_at = $8,
		    admin_status      = $9,
		    verified_by       = $10,
		    verified_at       = $11,
		    notes             = $12
		WHERE id = $1
	`

	tag, err := r.q.Exec(ctx, query,
		s.ID,
		s.SlipURL,
		s.UploadedBy,
		s.UploadedAt,
		s.IsPrimary,
		s.SlipokStatus,
		s.SlipokRef,
		s.SlipokCheckedAt,
		s.AdminStatus,
		s.VerifiedBy,
		s.VerifiedAt,
		s.Notes,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to update slip")
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFound("slip", s.ID)
	}
	return nil
}

// Delete removes a slip row.
func (r *SlipRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM booking_slips WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to delete slip")
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFound("slip", id)
	}
	return nil
}

func scanSlip(row bookingScanner) (*Slip, error) {
	s := &Slip{}
	err := row.Scan(
		&s.ID,
		&s.BookingID,
		&s.SlipURL,
		&s.UploadedBy,
		&s.UploadedAt,
		&s.IsPrimary,
		&s.SlipokStatus,
		&s.SlipokRef,
		&s.SlipokCheckedAt,
		&s.AdminStatus,
		&s.VerifiedBy,
		&s.VerifiedAt,
		&s.Notes,
		&s.LastDispatchedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
