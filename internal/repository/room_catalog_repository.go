package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/database"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

// RoomCatalogRepository is a read-only view over the room catalog tables,
// which are owned by another service.
type RoomCatalogRepository struct {
	q database.Querier
}

// NewRoomCatalogRepository creates a new RoomCatalogRepository.
func NewRoomCatalogRepository(q database.Querier) *RoomCatalogRepository {
	return &RoomCatalogRepository{q: q}
}

// GetRoomType returns a room type by id.
func (r *RoomCatalogRepository) GetRoomType(ctx context.Context, id string) (*RoomType, error) {
	query := `
		SELECT id, name, price_per_night, max_guests, is_active
		FROM room_types
		WHERE id = $1
	`

	rt := &RoomType{}
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rt.ID,
		&rt.Name,
		&rt.PricePerNight,
		&rt.MaxGuests,
		&rt.IsActive,
	)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, errors.NotFound("room type", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get room type")
	}
	return rt, nil
}

// AvailableRooms returns the number of active rooms of the type that are not
// taken by a confirmed booking overlapping [checkIn, checkOut).
func (r *RoomCatalogRepository) AvailableRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	query := `
		SELECT
		    (SELECT COUNT(*) FROM rooms WHERE room_type_id = $1 AND is_active)
		  - (SELECT COUNT(*) FROM bookings
		     WHERE room_type_id = $1
		       AND status = 'confirmed'
		       AND check_in_date < $3
		       AND check_out_date > $2)
	`

	var n int
	if err := r.q.QueryRow(ctx, query, roomTypeID, checkIn, checkOut).Scan(&n); err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeInternal, "failed to check room availability")
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
