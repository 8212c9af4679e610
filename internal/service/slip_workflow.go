package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

// VerificationOutcome is the terminal result of automated slip verification.
type VerificationOutcome string

const (
	OutcomeVerified      VerificationOutcome = repository.SlipokStatusVerified
	OutcomeFailed        VerificationOutcome = repository.SlipokStatusFailed
	OutcomeQuotaExceeded VerificationOutcome = repository.SlipokStatusQuotaExceeded
)

// VerificationResult is what the automated verifier concluded for one slip.
type VerificationResult struct {
	Outcome  VerificationOutcome
	TransRef *string
	Message  string
}

// SlipWorkflowConfig holds slip policy settings.
type SlipWorkflowConfig struct {
	URLPrefix          string
	MaxSlipsPerBooking int
}

// SlipWorkflow owns the per-slip dual-track state machine: the automated
// (slipok) track and the admin review track.
type SlipWorkflow struct {
	store      repository.Store
	audit      *AuditService
	dispatcher VerificationDispatcher
	notifier   NotificationPublisherInterface
	clock      Clock
	cfg        SlipWorkflowConfig
	log        *logger.Logger
}

// NewSlipWorkflow creates a new SlipWorkflow. A nil dispatcher or notifier
// disables that side effect.
func NewSlipWorkflow(
	store repository.Store,
	audit *AuditService,
	dispatcher VerificationDispatcher,
	notifier NotificationPublisherInterface,
	clock Clock,
	cfg SlipWorkflowConfig,
	log *logger.Logger,
) *SlipWorkflow {
	if dispatcher == nil {
		dispatcher = nopDispatcher{}
	}
	if notifier == nil {
		notifier = nopPublisher{}
	}
	if clock == nil {
		clock = time.Now
	}
	if cfg.URLPrefix == "" {
		cfg.URLPrefix = defaultSlipPrefix
	}
	return &SlipWorkflow{
		store:      store,
		audit:      audit,
		dispatcher: dispatcher,
		notifier:   notifier,
		clock:      clock,
		cfg:        cfg,
		log:        log,
	}
}

// ── Upload ────────────────────────────────────────────────────────────────────

// UploadSlip attaches a new primary slip to a booking and queues it for
// automated verification. It returns as soon as the slip is stored.
func (w *SlipWorkflow) UploadSlip(ctx context.Context, bookingID, slipURL string, uploader Actor) (*repository.Slip, error) {
	return w.createSlip(ctx, bookingID, slipURL, uploader, true)
}

// AddSlip attaches an additional slip. It becomes primary only when the
// booking has no slips yet.
func (w *SlipWorkflow) AddSlip(ctx context.Context, bookingID, slipURL string, uploader Actor) (*repository.Slip, error) {
	return w.createSlip(ctx, bookingID, slipURL, uploader, false)
}

func (w *SlipWorkflow) createSlip(ctx context.Context, bookingID, slipURL string, uploader Actor, makePrimary bool) (*repository.Slip, error) {
	// Validate input before touching storage
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	if err := validateActor(uploader); err != nil {
		return nil, err
	}
	slipURL, err := validateSlipURL(w.cfg.URLPrefix, slipURL)
	if err != nil {
		return nil, err
	}

	action := repository.ActionSlipAdded
	if makePrimary {
		action = repository.ActionSlipUploaded
	}

	var slip *repository.Slip
	var booking *repository.Booking
	err = w.store.InTransaction(ctx, func(tx repository.Tx) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		booking = b
		if booking.UserID != uploader.ID && !uploader.IsAdmin() {
			return errors.Forbidden("only the booking owner can upload slips")
		}
		if booking.Status != repository.BookingStatusConfirmed {
			return errors.Conflict(fmt.Sprintf("cannot upload slip for booking with status '%s'", booking.Status))
		}

		existing, err := tx.ListSlips(ctx, bookingID)
		if err != nil {
			return err
		}
		if w.cfg.MaxSlipsPerBooking > 0 && len(existing) >= w.cfg.MaxSlipsPerBooking {
			return errors.Conflict(fmt.Sprintf("booking already has the maximum of %d slips", w.cfg.MaxSlipsPerBooking))
		}

		// Demote the current primary before inserting the new one
		var oldValue map[string]any
		if makePrimary {
			for _, s := range existing {
				if !s.IsPrimary {
					continue
				}
				s.IsPrimary = false
				if err := tx.UpdateSlip(ctx, s); err != nil {
					return err
				}
				oldValue = map[string]any{"previous_primary_slip_id": s.ID}
			}
		}

		slip = &repository.Slip{
			BookingID:    bookingID,
			SlipURL:      slipURL,
			UploadedBy:   uploader.ID,
			IsPrimary:    makePrimary || len(existing) == 0,
			SlipokStatus: repository.SlipokStatusPending,
			AdminStatus:  repository.AdminStatusPending,
		}
		if err := tx.CreateSlip(ctx, slip); err != nil {
			return err
		}

		_, err = w.audit.LogAction(ctx, tx, AuditEntry{
			BookingID:   bookingID,
			Action:      action,
			PerformedBy: strPtr(uploader.ID),
			OldValue:    oldValue,
			NewValue:    slipSnapshot(slip),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	w.log.Info().
		Str("booking_id", bookingID).
		Str("slip_id", slip.ID).
		Str("uploaded_by", uploader.ID).
		Bool("is_primary", slip.IsPrimary).
		Msg("Slip uploaded")

	w.dispatch(ctx, slip)
	w.notifier.PublishBookingEvent(ctx, EventSlipUploaded, bookingID, uploader.ID,
		[]string{booking.UserID}, map[string]any{"slip_id": slip.ID})

	return slip, nil
}

// ── Removal ───────────────────────────────────────────────────────────────────

// RemoveSlip deletes a slip that has not been admin-verified. Removal is not
// audited. When the primary slip goes, the newest remaining slip is promoted.
func (w *SlipWorkflow) RemoveSlip(ctx context.Context, slipID string, requester Actor) error {
	if err := validateID("slip_id", slipID); err != nil {
		return err
	}
	if err := validateActor(requester); err != nil {
		return err
	}

	err := w.withLockedSlip(ctx, slipID, func(tx repository.Tx, booking *repository.Booking, slip *repository.Slip) error {
		if booking.UserID != requester.ID && !requester.IsAdmin() {
			return errors.Forbidden("only the booking owner can remove slips")
		}
		// Re-checked under the row lock so a concurrent verify cannot be lost
		if slip.AdminStatus == repository.AdminStatusVerified {
			return errors.Conflict("cannot remove a slip that has been verified by an admin")
		}

		if err := tx.DeleteSlip(ctx, slip.ID); err != nil {
			return err
		}
		if !slip.IsPrimary {
			return nil
		}

		remaining, err := tx.ListSlips(ctx, booking.ID)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return nil
		}
		newest := remaining[len(remaining)-1]
		newest.IsPrimary = true
		return tx.UpdateSlip(ctx, newest)
	})
	if err != nil {
		return err
	}

	w.log.Info().
		Str("slip_id", slipID).
		Str("removed_by", requester.ID).
		Msg("Slip removed")

	return nil
}

// ── Admin review track ────────────────────────────────────────────────────────

// AdminVerifySlip marks a slip as verified by an admin. Verifying an already
// verified slip returns it unchanged without a new audit record.
func (w *SlipWorkflow) AdminVerifySlip(ctx context.Context, slipID string, admin Actor, notes *string) (*repository.Slip, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("slip_id", slipID); err != nil {
		return nil, err
	}
	notes, err := optionalText("notes", notes, maxNotesLength)
	if err != nil {
		return nil, err
	}

	var out *repository.Slip
	var changed bool
	var booking *repository.Booking
	err = w.withLockedSlip(ctx, slipID, func(tx repository.Tx, b *repository.Booking, slip *repository.Slip) error {
		booking = b
		out = slip
		var verr error
		changed, verr = w.verify(ctx, tx, slip, admin, notes, repository.ActionAdminVerified)
		return verr
	})
	if err != nil {
		return nil, err
	}
	if changed {
		w.afterVerify(ctx, booking, out, admin)
	}
	return out, nil
}

// MarkSlipNeedsAction flags a slip for follow-up. Notes are mandatory.
func (w *SlipWorkflow) MarkSlipNeedsAction(ctx context.Context, slipID string, admin Actor, notes string) (*repository.Slip, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("slip_id", slipID); err != nil {
		return nil, err
	}
	notes, err := requireText("notes", notes, maxNotesLength)
	if err != nil {
		return nil, err
	}

	var out *repository.Slip
	var booking *repository.Booking
	err = w.withLockedSlip(ctx, slipID, func(tx repository.Tx, b *repository.Booking, slip *repository.Slip) error {
		booking = b
		out = slip
		return w.markNeedsAction(ctx, tx, slip, admin, notes, repository.ActionAdminNeedsAction)
	})
	if err != nil {
		return nil, err
	}
	w.afterNeedsAction(ctx, booking, out, admin, notes)
	return out, nil
}

// VerifyBookingSlip verifies the booking's primary slip.
func (w *SlipWorkflow) VerifyBookingSlip(ctx context.Context, bookingID string, admin Actor, notes *string) (*repository.Slip, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	notes, err := optionalText("notes", notes, maxNotesLength)
	if err != nil {
		return nil, err
	}

	var out *repository.Slip
	var changed bool
	var booking *repository.Booking
	err = w.withPrimarySlip(ctx, bookingID, func(tx repository.Tx, b *repository.Booking, slip *repository.Slip) error {
		booking = b
		out = slip
		var verr error
		changed, verr = w.verify(ctx, tx, slip, admin, notes, repository.ActionSlipVerified)
		return verr
	})
	if err != nil {
		return nil, err
	}
	if changed {
		w.afterVerify(ctx, booking, out, admin)
	}
	return out, nil
}

// MarkBookingSlipNeedsAction flags the booking's primary slip for follow-up.
func (w *SlipWorkflow) MarkBookingSlipNeedsAction(ctx context.Context, bookingID string, admin Actor, notes string) (*repository.Slip, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	notes, err := requireText("notes", notes, maxNotesLength)
	if err != nil {
		return nil, err
	}

	var out *repository.Slip
	var booking *repository.Booking
	err = w.withPrimarySlip(ctx, bookingID, func(tx repository.Tx, b *repository.Booking, slip *repository.Slip) error {
		booking = b
		out = slip
		return w.markNeedsAction(ctx, tx, slip, admin, notes, repository.ActionSlipNeedsAction)
	})
	if err != nil {
		return nil, err
	}
	w.afterNeedsAction(ctx, booking, out, admin, notes)
	return out, nil
}

func (w *SlipWorkflow) verify(ctx context.Context, tx repository.Tx, slip *repository.Slip, admin Actor, notes *string, action repository.AuditAction) (bool, error) {
	if slip.AdminStatus == repository.AdminStatusVerified {
		return false, nil
	}

	before := map[string]any{"slip_id": slip.ID, "admin_status": slip.AdminStatus}
	now := w.clock()
	slip.AdminStatus = repository.AdminStatusVerified
	slip.VerifiedBy = strPtr(admin.ID)
	slip.VerifiedAt = &now
	if notes != nil {
		slip.Notes = notes
	}
	if err := tx.UpdateSlip(ctx, slip); err != nil {
		return false, err
	}

	_, err := w.audit.LogAction(ctx, tx, AuditEntry{
		BookingID:   slip.BookingID,
		Action:      action,
		PerformedBy: strPtr(admin.ID),
		OldValue:    before,
		NewValue: map[string]any{
			"slip_id":      slip.ID,
			"admin_status": slip.AdminStatus,
			"verified_by":  admin.ID,
			"verified_at":  now.UTC().Format(time.RFC3339),
		},
		Notes: notes,
	})
	return err == nil, err
}

func (w *SlipWorkflow) markNeedsAction(ctx context.Context, tx repository.Tx, slip *repository.Slip, admin Actor, notes string, action repository.AuditAction) error {
	if slip.AdminStatus == repository.AdminStatusVerified {
		return errors.Conflict("slip has already been verified; replace it instead")
	}

	before := map[string]any{"slip_id": slip.ID, "admin_status": slip.AdminStatus, "notes": derefString(slip.Notes)}
	slip.AdminStatus = repository.AdminStatusNeedsAction
	slip.Notes = strPtr(notes)
	if err := tx.UpdateSlip(ctx, slip); err != nil {
		return err
	}

	_, err := w.audit.LogAction(ctx, tx, AuditEntry{
		BookingID:   slip.BookingID,
		Action:      action,
		PerformedBy: strPtr(admin.ID),
		OldValue:    before,
		NewValue:    map[string]any{"slip_id": slip.ID, "admin_status": slip.AdminStatus, "notes": notes},
		Notes:       strPtr(notes),
	})
	return err
}

func (w *SlipWorkflow) afterVerify(ctx context.Context, booking *repository.Booking, slip *repository.Slip, admin Actor) {
	w.log.Info().
		Str("booking_id", slip.BookingID).
		Str("slip_id", slip.ID).
		Str("verified_by", admin.ID).
		Msg("Slip verified")

	w.notifier.PublishBookingEvent(ctx, EventSlipVerified, slip.BookingID, admin.ID,
		[]string{booking.UserID}, map[string]any{"slip_id": slip.ID})
}

func (w *SlipWorkflow) afterNeedsAction(ctx context.Context, booking *repository.Booking, slip *repository.Slip, admin Actor, notes string) {
	w.log.Info().
		Str("booking_id", slip.BookingID).
		Str("slip_id", slip.ID).
		Str("marked_by", admin.ID).
		Msg("Slip marked as needing action")

	w.notifier.PublishBookingEvent(ctx, EventSlipNeedsAction, slip.BookingID, admin.ID,
		[]string{booking.UserID}, map[string]any{"slip_id": slip.ID, "notes": notes})
}

// ── Replace ───────────────────────────────────────────────────────────────────

// ReplaceSlip swaps the image of the booking's primary slip and restarts both
// verification tracks.
func (w *SlipWorkflow) ReplaceSlip(ctx context.Context, bookingID, newSlipURL string, admin Actor, notes *string) (*repository.Slip, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	newSlipURL, err := validateSlipURL(w.cfg.URLPrefix, newSlipURL)
	if err != nil {
		return nil, err
	}
	notes, err = optionalText("notes", notes, maxNotesLength)
	if err != nil {
		return nil, err
	}

	var out *repository.Slip
	err = w.withPrimarySlip(ctx, bookingID, func(tx repository.Tx, booking *repository.Booking, slip *repository.Slip) error {
		if booking.Status == repository.BookingStatusCancelled {
			return errors.Conflict("cannot replace slip on a cancelled booking")
		}

		before := slipSnapshot(slip)
		slip.SlipURL = newSlipURL
		slip.UploadedBy = admin.ID
		slip.UploadedAt = w.clock()
		slip.SlipokStatus = repository.SlipokStatusPending
		slip.SlipokRef = nil
		slip.SlipokCheckedAt = nil
		slip.AdminStatus = repository.AdminStatusPending
		slip.VerifiedBy = nil
		slip.VerifiedAt = nil
		slip.Notes = notes
		if err := tx.UpdateSlip(ctx, slip); err != nil {
			return err
		}

		out = slip
		_, err := w.audit.LogAction(ctx, tx, AuditEntry{
			BookingID:   bookingID,
			Action:      repository.ActionSlipReplaced,
			PerformedBy: strPtr(admin.ID),
			OldValue:    before,
			NewValue:    slipSnapshot(slip),
			Notes:       notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	w.log.Info().
		Str("booking_id", bookingID).
		Str("slip_id", out.ID).
		Str("replaced_by", admin.ID).
		Msg("Slip replaced")

	w.dispatch(ctx, out)
	return out, nil
}

// ── Automated track ───────────────────────────────────────────────────────────

// ApplyVerificationResult records the automated verdict for a slip. The
// result is applied only while the slip still exists, still points at the
// verified image and is still pending, so stale and duplicate deliveries are
// dropped. It reports whether the result was applied.
func (w *SlipWorkflow) ApplyVerificationResult(ctx context.Context, slipID, slipURL string, result VerificationResult) (bool, error) {
	if err := validateID("slip_id", slipID); err != nil {
		return false, err
	}

	var action repository.AuditAction
	event := EventSlipAutoRejected
	switch result.Outcome {
	case OutcomeVerified:
		action = repository.ActionSlipokVerified
		event = EventSlipAutoVerified
	case OutcomeFailed:
		action = repository.ActionSlipokFailed
	case OutcomeQuotaExceeded:
		action = repository.ActionSlipokQuotaExceeded
	default:
		return false, errors.InvalidInput("outcome", "unknown verification outcome")
	}

	var applied bool
	var booking *repository.Booking
	err := w.withLockedSlip(ctx, slipID, func(tx repository.Tx, b *repository.Booking, slip *repository.Slip) error {
		if slip.SlipURL != slipURL || slip.SlipokStatus != repository.SlipokStatusPending {
			return nil
		}
		booking = b

		now := w.clock()
		slip.SlipokStatus = string(result.Outcome)
		slip.SlipokRef = result.TransRef
		slip.SlipokCheckedAt = &now
		if err := tx.UpdateSlip(ctx, slip); err != nil {
			return err
		}

		newValue := map[string]any{"slip_id": slip.ID, "slipok_status": slip.SlipokStatus}
		if result.TransRef != nil {
			newValue["slipok_ref"] = *result.TransRef
		}
		var notes *string
		if result.Message != "" {
			notes = strPtr(result.Message)
		}

		_, err := w.audit.LogAction(ctx, tx, AuditEntry{
			BookingID: slip.BookingID,
			Action:    action,
			OldValue:  map[string]any{"slip_id": slip.ID, "slipok_status": repository.SlipokStatusPending},
			NewValue:  newValue,
			Notes:     notes,
		})
		applied = err == nil
		return err
	})
	if errors.Is(err, errors.ErrCodeNotFound) {
		w.log.Debug().Str("slip_id", slipID).Msg("Verification result for missing slip dropped")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !applied {
		w.log.Debug().Str("slip_id", slipID).Msg("Stale verification result dropped")
		return false, nil
	}

	w.log.Info().
		Str("booking_id", booking.ID).
		Str("slip_id", slipID).
		Str("slipok_status", string(result.Outcome)).
		Msg("Slip verification result applied")

	w.notifier.PublishBookingEvent(ctx, event, booking.ID, "",
		[]string{booking.UserID}, map[string]any{"slip_id": slipID, "slipok_status": string(result.Outcome)})

	return true, nil
}

// RedispatchStalePending re-queues slips whose automated verification has been
// pending for longer than olderThan, least recently attempted first. Each
// queued slip is stamped so a slip that never resolves moves behind the others
// on the next sweep. The sweep stops at the first refusal since the
// dispatcher is then full or down. It returns how many were queued.
func (w *SlipWorkflow) RedispatchStalePending(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	now := w.clock()
	slips, err := w.store.ListStalePendingSlips(ctx, now.Add(-olderThan), limit)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, s := range slips {
		if err := w.dispatcher.Dispatch(ctx, s.ID, s.BookingID, s.SlipURL); err != nil {
			w.log.Warn().Err(err).
				Str("slip_id", s.ID).
				Int("remaining", len(slips)-queued).
				Msg("Re-dispatch refused, stopping sweep")
			break
		}
		if err := w.store.MarkSlipDispatched(ctx, s.ID, now); err != nil {
			w.log.Warn().Err(err).Str("slip_id", s.ID).Msg("Failed to stamp re-dispatched slip")
		}
		queued++
	}

	if queued > 0 {
		w.log.Info().Int("queued", queued).Msg("Stale pending slips re-dispatched")
	}
	return queued, nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

// ListSlips returns a booking's slips to its owner or an admin.
func (w *SlipWorkflow) ListSlips(ctx context.Context, bookingID string, requester Actor) ([]*repository.Slip, error) {
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	if err := validateActor(requester); err != nil {
		return nil, err
	}

	booking, err := w.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requester.ID && !requester.IsAdmin() {
		return nil, errors.Forbidden("not allowed to view this booking")
	}
	return w.store.ListSlips(ctx, bookingID)
}

// GetSlip returns a single slip.
func (w *SlipWorkflow) GetSlip(ctx context.Context, slipID string) (*repository.Slip, error) {
	if err := validateID("slip_id", slipID); err != nil {
		return nil, err
	}
	return w.store.GetSlip(ctx, slipID)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// withLockedSlip locks the slip's booking and then the slip itself, always in
// that order, and hands both to fn inside one transaction.
func (w *SlipWorkflow) withLockedSlip(ctx context.Context, slipID string, fn func(tx repository.Tx, booking *repository.Booking, slip *repository.Slip) error) error {
	located, err := w.store.GetSlip(ctx, slipID)
	if err != nil {
		return err
	}

	return w.store.InTransaction(ctx, func(tx repository.Tx) error {
		booking, err := tx.LockBooking(ctx, located.BookingID)
		if err != nil {
			return err
		}
		slip, err := tx.LockSlip(ctx, slipID)
		if err != nil {
			return err
		}
		return fn(tx, booking, slip)
	})
}

// withPrimarySlip locks a booking and its primary slip.
func (w *SlipWorkflow) withPrimarySlip(ctx context.Context, bookingID string, fn func(tx repository.Tx, booking *repository.Booking, slip *repository.Slip) error) error {
	return w.store.InTransaction(ctx, func(tx repository.Tx) error {
		booking, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		slips, err := tx.ListSlips(ctx, bookingID)
		if err != nil {
			return err
		}
		if len(slips) == 0 {
			return errors.NotFound("slip for booking", bookingID)
		}

		target := slips[len(slips)-1]
		for _, s := range slips {
			if s.IsPrimary {
				target = s
				break
			}
		}

		slip, err := tx.LockSlip(ctx, target.ID)
		if err != nil {
			return err
		}
		return fn(tx, booking, slip)
	})
}

func (w *SlipWorkflow) dispatch(ctx context.Context, slip *repository.Slip) {
	// The request may finish before the broker acks; keep values, drop cancellation.
	ctx = context.WithoutCancel(ctx)
	if err := w.dispatcher.Dispatch(ctx, slip.ID, slip.BookingID, slip.SlipURL); err != nil {
		w.log.Warn().Err(err).
			Str("slip_id", slip.ID).
			Msg("Failed to dispatch slip verification; slip stays pending")
	}
}

func slipSnapshot(s *repository.Slip) map[string]any {
	return map[string]any{
		"slip_id":       s.ID,
		"slip_url":      s.SlipURL,
		"is_primary":    s.IsPrimary,
		"slipok_status": s.SlipokStatus,
		"admin_status":  s.AdminStatus,
	}
}
