package service

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

func TestUploadSlip_PersistsPendingAndDispatches(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)

	s := f.upload(t, b.ID)
	assert.True(t, s.IsPrimary)
	assert.Equal(t, repository.SlipokStatusPending, s.SlipokStatus)
	assert.Equal(t, repository.AdminStatusPending, s.AdminStatus)
	assert.Equal(t, f.user.ID, s.UploadedBy)

	assert.Equal(t, []dispatched{{s.ID, b.ID, testSlipURL}}, f.dispatcher.Jobs())
	assert.Equal(t, []repository.AuditAction{repository.ActionSlipUploaded}, actions(f.history(t, b.ID)))
	assert.Contains(t, f.notifier.Events(), EventSlipUploaded)
}

func TestUploadSlip_Rejections(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	tests := []struct {
		name      string
		bookingID string
		url       string
		actor     Actor
		code      errors.Code
	}{
		{name: "bad booking id", bookingID: "x", url: testSlipURL, actor: f.user, code: errors.ErrCodeInvalidInput},
		{name: "wrong prefix", bookingID: b.ID, url: "https://evil.example/slip.jpg", actor: f.user, code: errors.ErrCodeInvalidInput},
		{name: "prefix only", bookingID: b.ID, url: "/storage/slips/", actor: f.user, code: errors.ErrCodeInvalidInput},
		{name: "traversal", bookingID: b.ID, url: "/storage/slips/../secret", actor: f.user, code: errors.ErrCodeInvalidInput},
		{name: "unknown booking", bookingID: uuid.NewString(), url: testSlipURL, actor: f.user, code: errors.ErrCodeNotFound},
		{name: "not owner", bookingID: b.ID, url: testSlipURL, actor: Actor{ID: uuid.NewString()}, code: errors.ErrCodeForbidden},
		{name: "anonymous", bookingID: b.ID, url: testSlipURL, actor: Actor{}, code: errors.ErrCodeUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.slips.UploadSlip(ctx, tt.bookingID, tt.url, tt.actor)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
	assert.Zero(t, f.store.AuditCount())
	assert.Empty(t, f.dispatcher.Jobs())
}

func TestUploadSlip_CancelledBookingConflicts(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	_, err := f.bookings.AdminCancelBooking(ctx, b.ID, f.admin, "duplicate")
	require.NoError(t, err)

	_, err = f.slips.UploadSlip(ctx, b.ID, testSlipURL, f.user)
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))
}

func TestUploadAndAddSlip_SinglePrimary(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	first := f.upload(t, b.ID)
	f.advance(time.Minute)
	extra, err := f.slips.AddSlip(ctx, b.ID, "/storage/slips/extra.jpg", f.user)
	require.NoError(t, err)
	assert.False(t, extra.IsPrimary)

	f.advance(time.Minute)
	second, err := f.slips.UploadSlip(ctx, b.ID, "/storage/slips/second.jpg", f.user)
	require.NoError(t, err)
	assert.True(t, second.IsPrimary)

	slips, err := f.slips.ListSlips(ctx, b.ID, f.user)
	require.NoError(t, err)
	require.Len(t, slips, 3)
	primaries := 0
	for _, s := range slips {
		if s.IsPrimary {
			primaries++
			assert.Equal(t, second.ID, s.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	recs := f.history(t, b.ID)
	require.Len(t, recs, 3)
	assert.Equal(t, repository.ActionSlipUploaded, recs[0].Action)
	assert.Equal(t, first.ID, recs[0].OldValue["previous_primary_slip_id"])
	assert.Equal(t, repository.ActionSlipAdded, recs[1].Action)
}

func TestAddSlip_FirstSlipBecomesPrimary(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)

	s, err := f.slips.AddSlip(context.Background(), b.ID, testSlipURL, f.user)
	require.NoError(t, err)
	assert.True(t, s.IsPrimary)
}

func TestUploadSlip_MaxSlips(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := f.slips.AddSlip(ctx, b.ID, testSlipURL, f.user)
		require.NoError(t, err)
	}
	_, err := f.slips.AddSlip(ctx, b.ID, testSlipURL, f.user)
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))
}

// Scenario B
func TestRemoveSlip_PendingSlipWithoutAudit(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	s := f.upload(t, b.ID)
	require.NoError(t, f.slips.RemoveSlip(ctx, s.ID, f.user))

	_, err := f.slips.GetSlip(ctx, s.ID)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
	assert.Equal(t, []repository.AuditAction{repository.ActionSlipUploaded}, actions(f.history(t, b.ID)))
}

func TestRemoveSlip_PromotesNewestRemaining(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	primary := f.upload(t, b.ID)
	f.advance(time.Minute)
	older, err := f.slips.AddSlip(ctx, b.ID, "/storage/slips/a.jpg", f.user)
	require.NoError(t, err)
	f.advance(time.Minute)
	newer, err := f.slips.AddSlip(ctx, b.ID, "/storage/slips/b.jpg", f.user)
	require.NoError(t, err)

	require.NoError(t, f.slips.RemoveSlip(ctx, primary.ID, f.user))

	got, err := f.slips.GetSlip(ctx, newer.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimary)
	got, err = f.slips.GetSlip(ctx, older.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPrimary)
}

func TestRemoveSlip_VerifiedConflicts(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	s := f.upload(t, b.ID)
	_, err := f.slips.AdminVerifySlip(ctx, s.ID, f.admin, nil)
	require.NoError(t, err)
	before := f.store.AuditCount()

	err = f.slips.RemoveSlip(ctx, s.ID, f.user)
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))
	err = f.slips.RemoveSlip(ctx, s.ID, f.admin)
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))
	assert.Equal(t, before, f.store.AuditCount())
}

func TestRemoveSlip_RacingVerifyNeverLosesVerifiedSlip(t *testing.T) {
	for i := 0; i < 25; i++ {
		f := newFixture(t)
		b := f.book(t, 5)
		s := f.upload(t, b.ID)
		ctx := context.Background()

		var wg sync.WaitGroup
		var verifyErr, removeErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, verifyErr = f.slips.AdminVerifySlip(ctx, s.ID, f.admin, nil)
		}()
		go func() {
			defer wg.Done()
			removeErr = f.slips.RemoveSlip(ctx, s.ID, f.user)
		}()
		wg.Wait()

		got, getErr := f.slips.GetSlip(ctx, s.ID)
		if removeErr == nil {
			// Remove won: the slip is gone and verify saw no slip.
			assert.True(t, errors.Is(getErr, errors.ErrCodeNotFound))
			assert.True(t, errors.Is(verifyErr, errors.ErrCodeNotFound))
			assert.Equal(t, []repository.AuditAction{repository.ActionSlipUploaded}, actions(f.history(t, b.ID)))
			continue
		}
		// Verify won: removal was refused and the slip survives verified.
		assert.True(t, errors.Is(removeErr, errors.ErrCodeConflict))
		require.NoError(t, verifyErr)
		require.NoError(t, getErr)
		assert.Equal(t, repository.AdminStatusVerified, got.AdminStatus)
	}
}

func TestAdminVerifySlip_Idempotent(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()
	s := f.upload(t, b.ID)

	notes := "matches bank statement"
	got, err := f.slips.AdminVerifySlip(ctx, s.ID, f.admin, &notes)
	require.NoError(t, err)
	assert.Equal(t, repository.AdminStatusVerified, got.AdminStatus)
	assert.Equal(t, f.admin.ID, *got.VerifiedBy)
	require.NotNil(t, got.VerifiedAt)

	again, err := f.slips.AdminVerifySlip(ctx, s.ID, f.admin, nil)
	require.NoError(t, err)
	assert.Equal(t, got.VerifiedAt, again.VerifiedAt)

	assert.Equal(t, []repository.AuditAction{
		repository.ActionAdminVerified,
		repository.ActionSlipUploaded,
	}, actions(f.history(t, b.ID)))
}

func TestAdminVerifySlip_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	s := f.upload(t, b.ID)

	_, err := f.slips.AdminVerifySlip(context.Background(), s.ID, f.user, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeForbidden))
}

// Scenario D
func TestMarkSlipNeedsAction_EmptyNotesRejected(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()
	s := f.upload(t, b.ID)

	for _, notes := range []string{"", "   "} {
		_, err := f.slips.MarkSlipNeedsAction(ctx, s.ID, f.admin, notes)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	}

	got, err := f.slips.GetSlip(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.AdminStatusPending, got.AdminStatus)
	assert.Equal(t, 1, f.store.AuditCount())
}

func TestMarkSlipNeedsAction(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()
	s := f.upload(t, b.ID)

	got, err := f.slips.MarkSlipNeedsAction(ctx, s.ID, f.admin, "amount does not match")
	require.NoError(t, err)
	assert.Equal(t, repository.AdminStatusNeedsAction, got.AdminStatus)
	assert.Equal(t, "amount does not match", *got.Notes)

	recs := f.history(t, b.ID)
	assert.Equal(t, repository.ActionAdminNeedsAction, recs[0].Action)
	assert.Equal(t, repository.AdminStatusPending, recs[0].OldValue["admin_status"])
	assert.Equal(t, repository.AdminStatusNeedsAction, recs[0].NewValue["admin_status"])
	assert.Contains(t, f.notifier.Events(), EventSlipNeedsAction)

	// needs_action can still be verified later
	_, err = f.slips.AdminVerifySlip(ctx, s.ID, f.admin, nil)
	require.NoError(t, err)
	_, err = f.slips.MarkSlipNeedsAction(ctx, s.ID, f.admin, "too late")
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))
}

func TestBookingLevelReviewUsesPrimarySlip(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	_, err := f.slips.VerifyBookingSlip(ctx, b.ID, f.admin, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))

	primary := f.upload(t, b.ID)
	f.advance(time.Minute)
	_, err = f.slips.AddSlip(ctx, b.ID, "/storage/slips/extra.jpg", f.user)
	require.NoError(t, err)

	got, err := f.slips.MarkBookingSlipNeedsAction(ctx, b.ID, f.admin, "blurry")
	require.NoError(t, err)
	assert.Equal(t, primary.ID, got.ID)

	got, err = f.slips.VerifyBookingSlip(ctx, b.ID, f.admin, nil)
	require.NoError(t, err)
	assert.Equal(t, primary.ID, got.ID)
	assert.Equal(t, repository.AdminStatusVerified, got.AdminStatus)

	recs := f.history(t, b.ID)
	assert.Equal(t, repository.ActionSlipVerified, recs[0].Action)
	assert.Equal(t, repository.ActionSlipNeedsAction, recs[1].Action)
}

func TestReplaceSlip_AlwaysResetsAutomatedTrack(t *testing.T) {
	outcomes := []VerificationOutcome{OutcomeVerified, OutcomeFailed, OutcomeQuotaExceeded}
	for _, outcome := range outcomes {
		t.Run(string(outcome), func(t *testing.T) {
			f := newFixture(t)
			b := f.book(t, 5)
			ctx := context.Background()
			s := f.upload(t, b.ID)

			applied, err := f.slips.ApplyVerificationResult(ctx, s.ID, s.SlipURL, VerificationResult{Outcome: outcome})
			require.NoError(t, err)
			require.True(t, applied)
			_, err = f.slips.AdminVerifySlip(ctx, s.ID, f.admin, nil)
			require.NoError(t, err)

			f.advance(time.Hour)
			got, err := f.slips.ReplaceSlip(ctx, b.ID, "/storage/slips/new.jpg", f.admin, nil)
			require.NoError(t, err)
			assert.Equal(t, s.ID, got.ID)
			assert.Equal(t, "/storage/slips/new.jpg", got.SlipURL)
			assert.Equal(t, repository.SlipokStatusPending, got.SlipokStatus)
			assert.Equal(t, repository.AdminStatusPending, got.AdminStatus)
			assert.Nil(t, got.SlipokRef)
			assert.Nil(t, got.VerifiedBy)

			recs := f.history(t, b.ID)
			assert.Equal(t, repository.ActionSlipReplaced, recs[0].Action)
			assert.Equal(t, string(outcome), recs[0].OldValue["slipok_status"])
			assert.Equal(t, repository.SlipokStatusPending, recs[0].NewValue["slipok_status"])

			jobs := f.dispatcher.Jobs()
			require.Len(t, jobs, 2)
			assert.Equal(t, "/storage/slips/new.jpg", jobs[1].SlipURL)
		})
	}
}

func TestReplaceSlip_CancelledBookingConflicts(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()
	f.upload(t, b.ID)

	_, err := f.bookings.AdminCancelBooking(ctx, b.ID, f.admin, "fraud")
	require.NoError(t, err)
	_, err = f.slips.ReplaceSlip(ctx, b.ID, "/storage/slips/new.jpg", f.admin, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))
}

func TestApplyVerificationResult(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()
	s := f.upload(t, b.ID)

	ref := "TX-123"
	applied, err := f.slips.ApplyVerificationResult(ctx, s.ID, s.SlipURL, VerificationResult{Outcome: OutcomeVerified, TransRef: &ref})
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := f.slips.GetSlip(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.SlipokStatusVerified, got.SlipokStatus)
	assert.Equal(t, ref, *got.SlipokRef)
	assert.Equal(t, repository.AdminStatusPending, got.AdminStatus)

	recs := f.history(t, b.ID)
	assert.Equal(t, repository.ActionSlipokVerified, recs[0].Action)
	assert.Nil(t, recs[0].PerformedBy)
	assert.Contains(t, f.notifier.Events(), EventSlipAutoVerified)

	// Terminal: a duplicate delivery is dropped.
	applied, err = f.slips.ApplyVerificationResult(ctx, s.ID, s.SlipURL, VerificationResult{Outcome: OutcomeFailed})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Len(t, f.history(t, b.ID), 2)
}

func TestApplyVerificationResult_StaleOrMissingSlipDropped(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()
	s := f.upload(t, b.ID)

	_, err := f.slips.ReplaceSlip(ctx, b.ID, "/storage/slips/new.jpg", f.admin, nil)
	require.NoError(t, err)

	applied, err := f.slips.ApplyVerificationResult(ctx, s.ID, testSlipURL, VerificationResult{Outcome: OutcomeFailed})
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = f.slips.ApplyVerificationResult(ctx, uuid.NewString(), testSlipURL, VerificationResult{Outcome: OutcomeFailed})
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := f.slips.GetSlip(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.SlipokStatusPending, got.SlipokStatus)
}

func TestApplyVerificationResult_AuditFailureLeavesPending(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()
	s := f.upload(t, b.ID)

	f.store.FailNextAudit(stderrors.New("connection reset"))
	_, err := f.slips.ApplyVerificationResult(ctx, s.ID, s.SlipURL, VerificationResult{Outcome: OutcomeVerified})
	require.Error(t, err)

	got, err := f.slips.GetSlip(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.SlipokStatusPending, got.SlipokStatus)
}

func TestUploadSlip_DispatchFailureIsNotUserFacing(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	f.dispatcher.err = stderrors.New("broker down")

	s, err := f.slips.UploadSlip(context.Background(), b.ID, testSlipURL, f.user)
	require.NoError(t, err)
	assert.Equal(t, repository.SlipokStatusPending, s.SlipokStatus)
}

func TestRedispatchStalePending(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	stale := f.upload(t, b.ID)
	f.advance(20 * time.Minute)
	done, err := f.slips.AddSlip(ctx, b.ID, "/storage/slips/done.jpg", f.user)
	require.NoError(t, err)
	_, err = f.slips.ApplyVerificationResult(ctx, done.ID, done.SlipURL, VerificationResult{Outcome: OutcomeFailed})
	require.NoError(t, err)
	f.advance(time.Minute)
	_, err = f.slips.AddSlip(ctx, b.ID, "/storage/slips/fresh.jpg", f.user)
	require.NoError(t, err)

	n, err := f.slips.RedispatchStalePending(ctx, 15*time.Minute, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	jobs := f.dispatcher.Jobs()
	assert.Equal(t, stale.ID, jobs[len(jobs)-1].SlipID)
}

func TestRedispatchStalePending_RotatesAndStopsWhenBusy(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	a := f.upload(t, b.ID)
	f.advance(time.Minute)
	bSlip, err := f.slips.AddSlip(ctx, b.ID, "/storage/slips/b.jpg", f.user)
	require.NoError(t, err)
	f.advance(time.Minute)
	c, err := f.slips.AddSlip(ctx, b.ID, "/storage/slips/c.jpg", f.user)
	require.NoError(t, err)

	lastJob := func() string {
		jobs := f.dispatcher.Jobs()
		return jobs[len(jobs)-1].SlipID
	}

	// One free worker per sweep. Every sweep takes the least recently
	// attempted slip, and the first refusal ends it.
	for _, want := range []string{a.ID, bSlip.ID, c.ID, a.ID} {
		f.advance(20 * time.Minute)
		f.dispatcher.limit(1)

		n, err := f.slips.RedispatchStalePending(ctx, 15*time.Minute, 100)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, want, lastJob())
		assert.Equal(t, 2, f.dispatcher.Attempts())
	}
}

func TestRedispatchStalePending_RecentlyDispatchedIsNotStale(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, 5)
	ctx := context.Background()

	f.upload(t, b.ID)
	f.advance(20 * time.Minute)
	n, err := f.slips.RedispatchStalePending(ctx, 15*time.Minute, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f.advance(5 * time.Minute)
	n, err = f.slips.RedispatchStalePending(ctx, 15*time.Minute, 100)
	require.NoError(t, err)
	assert.Zero(t, n)
}
