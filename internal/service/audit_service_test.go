package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

func TestAuditHistory_NewestFirst(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	s := f.upload(t, b.ID)
	f.advance(time.Hour)
	_, err := f.bookings.ApplyDiscount(ctx, b.ID, 100, "loyalty", f.admin)
	require.NoError(t, err)
	// Same timestamp as the discount: insertion order breaks the tie.
	_, err = f.slips.AdminVerifySlip(ctx, s.ID, f.admin, nil)
	require.NoError(t, err)

	recs := f.history(t, b.ID)
	require.Len(t, recs, 3)
	assert.Equal(t, []repository.AuditAction{
		repository.ActionAdminVerified,
		repository.ActionDiscountApplied,
		repository.ActionSlipUploaded,
	}, actions(recs))
	for i := 1; i < len(recs); i++ {
		assert.False(t, recs[i].PerformedAt.After(recs[i-1].PerformedAt))
	}
}

func TestAuditHistory_InvalidBookingID(t *testing.T) {
	f := newFixture(t)
	_, err := f.audit.GetAuditHistory(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestGetAuditByAction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		b := f.book(t, 5+i*3)
		f.upload(t, b.ID)
		f.advance(time.Minute)
	}

	recs, err := f.audit.GetAuditByAction(ctx, string(repository.ActionSlipUploaded), 2, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	rest, err := f.audit.GetAuditByAction(ctx, string(repository.ActionSlipUploaded), 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.True(t, rest[0].PerformedAt.Before(recs[1].PerformedAt))

	_, err = f.audit.GetAuditByAction(ctx, "deleted_everything", 10, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = f.audit.GetRecentAuditRecords(ctx, 10, -1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestPurgeOldRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	old := f.book(t, 5)
	f.upload(t, old.ID)
	f.advance(100 * 24 * time.Hour)
	fresh := f.book(t, 5)
	f.upload(t, fresh.ID)

	_, err := f.audit.PurgeOldRecords(ctx, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	n, err := f.audit.PurgeOldRecords(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Empty(t, f.history(t, old.ID))
	assert.Len(t, f.history(t, fresh.ID), 1)

	n, err = f.audit.PurgeOldRecords(ctx, 90)
	require.NoError(t, err)
	assert.Zero(t, n)
}
