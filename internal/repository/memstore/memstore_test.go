package memstore

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

func day(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

func seedBooking(t *testing.T, s *Store, roomTypeID string, in, out time.Time) *repository.Booking {
	t.Helper()
	b := &repository.Booking{
		UserID:       uuid.NewString(),
		RoomTypeID:   roomTypeID,
		CheckInDate:  in,
		CheckOutDate: out,
		NumGuests:    1,
		TotalPrice:   100,
		PaymentType:  repository.PaymentTypeFull,
		Status:       repository.BookingStatusConfirmed,
	}
	require.NoError(t, s.InTransaction(context.Background(), func(tx repository.Tx) error {
		return tx.CreateBooking(context.Background(), b)
	}))
	return b
}

func TestInTransaction_RollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	b := seedBooking(t, s, uuid.NewString(), day(20), day(22))

	boom := stderrors.New("boom")
	err := s.InTransaction(ctx, func(tx repository.Tx) error {
		slip := &repository.Slip{BookingID: b.ID, SlipURL: "/storage/slips/a.jpg", IsPrimary: true,
			SlipokStatus: repository.SlipokStatusPending, AdminStatus: repository.AdminStatusPending}
		if err := tx.CreateSlip(ctx, slip); err != nil {
			return err
		}
		if err := tx.AppendAudit(ctx, &repository.AuditRecord{BookingID: b.ID, Action: repository.ActionSlipUploaded}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	slips, err := s.ListSlips(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, slips)
	assert.Zero(t, s.AuditCount())
}

func TestFailNextAudit(t *testing.T) {
	s := New()
	ctx := context.Background()
	b := seedBooking(t, s, uuid.NewString(), day(20), day(22))

	s.FailNextAudit(stderrors.New("disk full"))
	err := s.InTransaction(ctx, func(tx repository.Tx) error {
		return tx.AppendAudit(ctx, &repository.AuditRecord{BookingID: b.ID, Action: repository.ActionSlipUploaded})
	})
	assert.True(t, errors.Is(err, errors.ErrCodeInternal))

	// Only the next append fails.
	require.NoError(t, s.InTransaction(ctx, func(tx repository.Tx) error {
		return tx.AppendAudit(ctx, &repository.AuditRecord{BookingID: b.ID, Action: repository.ActionSlipUploaded})
	}))
	assert.Equal(t, 1, s.AuditCount())
}

func TestSinglePrimarySlip(t *testing.T) {
	s := New()
	ctx := context.Background()
	b := seedBooking(t, s, uuid.NewString(), day(20), day(22))

	err := s.InTransaction(ctx, func(tx repository.Tx) error {
		for i := 0; i < 2; i++ {
			if err := tx.CreateSlip(ctx, &repository.Slip{BookingID: b.ID, SlipURL: "/storage/slips/a.jpg", IsPrimary: true}); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Error(t, err)
}

func TestAvailableRooms_CountsOverlapsOnly(t *testing.T) {
	s := New()
	ctx := context.Background()
	rt := uuid.NewString()
	s.AddRoomType(repository.RoomType{ID: rt, PricePerNight: 100, MaxGuests: 2, IsActive: true}, 2)

	seedBooking(t, s, rt, day(20), day(22))
	seedBooking(t, s, rt, day(22), day(24))

	n, err := s.AvailableRooms(ctx, rt, day(21), day(22))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.AvailableRooms(ctx, rt, day(21), day(23))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = s.AvailableRooms(ctx, rt, day(24), day(25))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAuditOrderingAndPurge(t *testing.T) {
	now := day(10)
	s := New()
	s.SetClock(func() time.Time { return now })
	ctx := context.Background()
	b := seedBooking(t, s, uuid.NewString(), day(20), day(22))

	appendAudit := func(a repository.AuditAction) {
		require.NoError(t, s.InTransaction(ctx, func(tx repository.Tx) error {
			return tx.AppendAudit(ctx, &repository.AuditRecord{BookingID: b.ID, Action: a})
		}))
	}
	appendAudit(repository.ActionSlipUploaded)
	appendAudit(repository.ActionAdminVerified)
	now = day(12)
	appendAudit(repository.ActionDiscountApplied)

	recs, err := s.ListAuditByBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, repository.ActionDiscountApplied, recs[0].Action)
	assert.Equal(t, repository.ActionAdminVerified, recs[1].Action)
	assert.Equal(t, repository.ActionSlipUploaded, recs[2].Action)

	page, err := s.ListRecentAudit(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, repository.ActionAdminVerified, page[0].Action)

	n, err := s.PurgeAuditBefore(ctx, day(11))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = s.PurgeAuditBefore(ctx, day(11))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStalePending_OrderedByLastAttempt(t *testing.T) {
	now := day(10)
	s := New()
	s.SetClock(func() time.Time { return now })
	ctx := context.Background()
	b := seedBooking(t, s, uuid.NewString(), day(20), day(22))

	create := func(url, status string) *repository.Slip {
		sl := &repository.Slip{BookingID: b.ID, SlipURL: url, SlipokStatus: status, AdminStatus: repository.AdminStatusPending}
		require.NoError(t, s.InTransaction(ctx, func(tx repository.Tx) error { return tx.CreateSlip(ctx, sl) }))
		return sl
	}
	first := create("/storage/slips/1.jpg", repository.SlipokStatusPending)
	now = day(11)
	second := create("/storage/slips/2.jpg", repository.SlipokStatusPending)
	done := create("/storage/slips/3.jpg", repository.SlipokStatusVerified)

	require.NoError(t, s.MarkSlipDispatched(ctx, first.ID, day(12)))
	require.NoError(t, s.MarkSlipDispatched(ctx, done.ID, day(12)))

	stale, err := s.ListStalePendingSlips(ctx, day(13), 0)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.Equal(t, second.ID, stale[0].ID)
	assert.Equal(t, first.ID, stale[1].ID)
	require.NotNil(t, stale[1].LastDispatchedAt)

	// The stamp counts as an attempt.
	stale, err = s.ListStalePendingSlips(ctx, day(12), 0)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, second.ID, stale[0].ID)

	got, err := s.GetSlip(ctx, done.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastDispatchedAt)
}
