package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/database"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

// AuditRepository appends and reads immutable booking audit log entries.
type AuditRepository struct {
	q database.Querier
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(q database.Querier) *AuditRepository {
	return &AuditRepository{q: q}
}

const auditColumns = `
	id, booking_id, action, performed_by, performed_at,
	old_value, new_value, notes`

// Append inserts one audit entry. The table has an update-prevention trigger,
// so inserts and the retention purge are the only mutations.
func (r *AuditRepository) Append(ctx context.Context, rec *AuditRecord) error {
	oldJSON, err := marshalValue(rec.OldValue)
	if err != nil {
		return err
	}
	newJSON, err := marshalValue(rec.NewValue)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO booking_audit_log
		    (booking_id, action, performed_by, old_value, new_value, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, performed_at
	`

	err = r.q.QueryRow(ctx, query,
		rec.BookingID,
		rec.Action,
		rec.PerformedBy,
		oldJSON,
		newJSON,
		rec.Notes,
	).Scan(&rec.ID, &rec.PerformedAt)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to append audit record")
	}
	return nil
}

// GetByBookingID returns the audit trail for a booking, newest first.
func (r *AuditRepository) GetByBookingID(ctx context.Context, bookingID string) ([]*AuditRecord, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM booking_audit_log
		WHERE booking_id = $1
		ORDER BY performed_at DESC, seq DESC
	`

	rows, err := r.q.Query(ctx, query, bookingID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get audit log")
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// GetByAction returns a page of entries with the given action, newest first.
func (r *AuditRepository) GetByAction(ctx context.Context, action AuditAction, limit, offset int) ([]*AuditRecord, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM booking_audit_log
		WHERE action = $1
		ORDER BY performed_at DESC, seq DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.q.Query(ctx, query, action, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get audit log by action")
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// GetRecent returns a page of the whole log, newest first.
func (r *AuditRepository) GetRecent(ctx context.Context, limit, offset int) ([]*AuditRecord, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM booking_audit_log
		ORDER BY performed_at DESC, seq DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get recent audit log")
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// DeleteBefore removes entries older than cutoff and returns how many went.
func (r *AuditRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM booking_audit_log WHERE performed_at < $1`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeInternal, "failed to purge audit log")
	}
	return tag.RowsAffected(), nil
}

// ── scan helpers ──────────────────────────────────────────────────────────────

func (r *AuditRepository) scanRows(rows pgx.Rows) ([]*AuditRecord, error) {
	records := make([]*AuditRecord, 0)
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to read audit log")
	}
	return records, nil
}

type auditScanner interface {
	Scan(dest ...any) error
}

func (r *AuditRepository) scanRecord(sc auditScanner) (*AuditRecord, error) {
	rec := &AuditRecord{}
	var oldJSON, newJSON []byte

	err := sc.Scan(
		&rec.ID,
		&rec.BookingID,
		&rec.Action,
		&rec.PerformedBy,
		&rec.PerformedAt,
		&oldJSON,
		&newJSON,
		&rec.Notes,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to scan audit record")
	}

	if oldJSON != nil {
		if err := json.Unmarshal(oldJSON, &rec.OldValue); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to unmarshal audit old_value")
		}
	}
	if newJSON != nil {
		if err := json.Unmarshal(newJSON, &rec.NewValue); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to unmarshal audit new_value")
		}
	}

	return rec, nil
}

func marshalValue(v map[string]any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal audit value")
	}
	return b, nil
}
