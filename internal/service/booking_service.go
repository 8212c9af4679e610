package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

// BookingPolicy holds booking rules that vary per deployment.
type BookingPolicy struct {
	// CancellationWindowDays is how many days before check-in a guest may no
	// longer cancel. 0 refuses same-day cancellation.
	CancellationWindowDays int
	Location               *time.Location
}

// BookingService handles booking lifecycle business logic.
type BookingService struct {
	store      repository.Store
	catalog    RoomCatalog
	audit      *AuditService
	calculator *DiscountCalculator
	notifier   NotificationPublisherInterface
	clock      Clock
	policy     BookingPolicy
	log        *logger.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(
	store repository.Store,
	catalog RoomCatalog,
	audit *AuditService,
	calculator *DiscountCalculator,
	notifier NotificationPublisherInterface,
	clock Clock,
	policy BookingPolicy,
	log *logger.Logger,
) *BookingService {
	if notifier == nil {
		notifier = nopPublisher{}
	}
	if clock == nil {
		clock = time.Now
	}
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return &BookingService{
		store:      store,
		catalog:    catalog,
		audit:      audit,
		calculator: calculator,
		notifier:   notifier,
		clock:      clock,
		policy:     policy,
		log:        log,
	}
}

// CreateBookingRequest represents a create booking request
type CreateBookingRequest struct {
	RoomTypeID   string
	CheckInDate  string
	CheckOutDate string
	NumGuests    int
	PaymentType  string
	Notes        *string
}

// UpdateBookingRequest carries the admin-editable fields. Nil means unchanged.
type UpdateBookingRequest struct {
	CheckInDate  *string
	CheckOutDate *string
	NumGuests    *int
	TotalPrice   *int64
	Notes        *string
	AdminNotes   *string
}

// BookingWithAudit is a booking together with its slips and audit trail.
type BookingWithAudit struct {
	Booking *repository.Booking
	Slips   []*repository.Slip
	Audit   []*repository.AuditRecord
	Payment *PaymentSummary
}

// CreateBooking reserves a room type for the caller.
func (s *BookingService) CreateBooking(ctx context.Context, user Actor, req *CreateBookingRequest) (*repository.Booking, error) {
	if err := validateActor(user); err != nil {
		return nil, err
	}
	if err := validateID("room_type_id", req.RoomTypeID); err != nil {
		return nil, err
	}

	// Validate dates
	checkIn, err := parseDate("check_in_date", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out_date", req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, errors.InvalidInput("check_out_date", "check-out must be after check-in")
	}
	if checkIn.Before(s.today()) {
		return nil, errors.InvalidInput("check_in_date", "check-in cannot be in the past")
	}

	// Validate guests and payment type
	if req.NumGuests < 1 {
		return nil, errors.InvalidInput("num_guests", "at least one guest is required")
	}
	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = repository.PaymentTypeFull
	}
	if paymentType != repository.PaymentTypeFull && paymentType != repository.PaymentTypeDeposit {
		return nil, errors.InvalidInput("payment_type", "must be 'deposit' or 'full'")
	}
	notes, err := optionalText("notes", req.Notes, maxNotesLength)
	if err != nil {
		return nil, err
	}

	// Quote from the catalog
	roomType, err := s.catalog.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if !roomType.IsActive {
		return nil, errors.Conflict("room type is not available for booking")
	}
	if req.NumGuests > roomType.MaxGuests {
		return nil, errors.InvalidInput("num_guests",
			fmt.Sprintf("room type allows at most %d guests", roomType.MaxGuests))
	}
	available, err := s.catalog.AvailableRooms(ctx, roomType.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if available < 1 {
		return nil, errors.Conflict("no rooms available for the selected dates")
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	total := nights * roomType.PricePerNight
	if total <= 0 {
		return nil, errors.New(errors.ErrCodeInternal, "room type has no price")
	}

	booking := &repository.Booking{
		UserID:        user.ID,
		RoomTypeID:    roomType.ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		NumGuests:     req.NumGuests,
		TotalPrice:    total,
		PaymentType:   paymentType,
		PaymentAmount: total,
		Status:        repository.BookingStatusConfirmed,
		Notes:         notes,
	}

	err = s.store.InTransaction(ctx, func(tx repository.Tx) error {
		return tx.CreateBooking(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("user_id", user.ID).
		Str("room_type_id", roomType.ID).
		Int64("total_price", total).
		Int64("nights", nights).
		Msg("Booking created")

	return booking, nil
}

// GetBooking returns a booking to its owner or an admin.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string, requester Actor) (*repository.Booking, error) {
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	if err := validateActor(requester); err != nil {
		return nil, err
	}

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requester.ID && !requester.IsAdmin() {
		return nil, errors.Forbidden("not allowed to view this booking")
	}
	return booking, nil
}

// GetBookingWithAudit returns the admin view of a booking.
func (s *BookingService) GetBookingWithAudit(ctx context.Context, bookingID string, admin Actor) (*BookingWithAudit, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	slips, err := s.store.ListSlips(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	history, err := s.audit.GetAuditHistory(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	summary, err := s.calculator.Summarize(booking.TotalPrice, booking.DiscountAmount, booking.PaymentType)
	if err != nil {
		return nil, err
	}

	return &BookingWithAudit{Booking: booking, Slips: slips, Audit: history, Payment: summary}, nil
}

// PaymentSummary returns the deposit and full amounts for a booking.
func (s *BookingService) PaymentSummary(ctx context.Context, bookingID string, requester Actor) (*PaymentSummary, error) {
	booking, err := s.GetBooking(ctx, bookingID, requester)
	if err != nil {
		return nil, err
	}
	return s.calculator.Summarize(booking.TotalPrice, booking.DiscountAmount, booking.PaymentType)
}

// CancelBooking cancels a booking on behalf of its owner.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string, user Actor, reason *string) (*repository.Booking, error) {
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	if err := validateActor(user); err != nil {
		return nil, err
	}
	reason, err := optionalText("reason", reason, maxReasonLength)
	if err != nil {
		return nil, err
	}

	var booking *repository.Booking
	err = s.store.InTransaction(ctx, func(tx repository.Tx) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.UserID != user.ID {
			return errors.Forbidden("only the booking owner can cancel this booking")
		}
		if b.Status != repository.BookingStatusConfirmed {
			return errors.Conflict(fmt.Sprintf("cannot cancel booking with status '%s'", b.Status))
		}
		daysLeft := int(truncateDay(b.CheckInDate).Sub(s.today()).Hours() / 24)
		if daysLeft <= s.policy.CancellationWindowDays {
			return errors.Conflict("booking can no longer be cancelled this close to check-in")
		}

		booking = b
		return s.cancel(ctx, tx, b, user, reason, false)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", bookingID).
		Str("cancelled_by", user.ID).
		Msg("Booking cancelled")

	s.notifier.PublishBookingEvent(ctx, EventBookingCancelled, bookingID, user.ID,
		[]string{booking.UserID}, map[string]any{"cancelled_by_admin": false})

	return booking, nil
}

// AdminCancelBooking cancels a booking regardless of the check-in date.
func (s *BookingService) AdminCancelBooking(ctx context.Context, bookingID string, admin Actor, reason string) (*repository.Booking, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	reason, err := requireText("reason", reason, maxReasonLength)
	if err != nil {
		return nil, err
	}

	var booking *repository.Booking
	err = s.store.InTransaction(ctx, func(tx repository.Tx) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status != repository.BookingStatusConfirmed {
			return errors.Conflict(fmt.Sprintf("cannot cancel booking with status '%s'", b.Status))
		}

		booking = b
		return s.cancel(ctx, tx, b, admin, &reason, true)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", bookingID).
		Str("cancelled_by", admin.ID).
		Str("reason", reason).
		Msg("Booking cancelled by admin")

	s.notifier.PublishBookingEvent(ctx, EventBookingCancelled, bookingID, admin.ID,
		[]string{booking.UserID}, map[string]any{"cancelled_by_admin": true, "reason": reason})

	return booking, nil
}

func (s *BookingService) cancel(ctx context.Context, tx repository.Tx, b *repository.Booking, actor Actor, reason *string, byAdmin bool) error {
	now := s.clock()
	oldStatus := b.Status
	b.Status = repository.BookingStatusCancelled
	b.CancelledByAdmin = byAdmin
	b.CancellationReason = reason
	b.CancelledAt = &now
	if err := tx.UpdateBooking(ctx, b); err != nil {
		return err
	}

	action := repository.ActionBookingCancelled
	if byAdmin {
		action = repository.ActionBookingCancelledByAdmin
	}
	_, err := s.audit.LogAction(ctx, tx, AuditEntry{
		BookingID:   b.ID,
		Action:      action,
		PerformedBy: strPtr(actor.ID),
		OldValue:    map[string]any{"status": oldStatus},
		NewValue: map[string]any{
			"status":             b.Status,
			"cancelled_by_admin": byAdmin,
			"reason":             derefString(reason),
		},
		Notes: reason,
	})
	return err
}

// ApplyDiscount takes a fixed amount off the booking total.
func (s *BookingService) ApplyDiscount(ctx context.Context, bookingID string, amount int64, reason string, admin Actor) (*repository.Booking, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errors.InvalidInput("amount", "discount must be positive")
	}
	reason, err := requireText("reason", reason, maxReasonLength)
	if err != nil {
		return nil, err
	}

	var booking *repository.Booking
	err = s.store.InTransaction(ctx, func(tx repository.Tx) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status == repository.BookingStatusCancelled {
			return errors.Conflict("cannot discount a cancelled booking")
		}

		payment, err := s.calculator.ApplyDiscount(b.TotalPrice, amount)
		if err != nil {
			return err
		}

		before := map[string]any{
			"payment_amount":  b.PaymentAmount,
			"discount_amount": b.DiscountAmount,
			"discount_reason": derefString(b.DiscountReason),
		}
		b.DiscountAmount = amount
		b.DiscountReason = strPtr(reason)
		b.PaymentAmount = payment
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		booking = b
		_, err = s.audit.LogAction(ctx, tx, AuditEntry{
			BookingID:   b.ID,
			Action:      repository.ActionDiscountApplied,
			PerformedBy: strPtr(admin.ID),
			OldValue:    before,
			NewValue: map[string]any{
				"payment_amount":  b.PaymentAmount,
				"discount_amount": b.DiscountAmount,
				"discount_reason": reason,
			},
			Notes: strPtr(reason),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", bookingID).
		Int64("discount_amount", amount).
		Int64("payment_amount", booking.PaymentAmount).
		Str("applied_by", admin.ID).
		Msg("Discount applied")

	s.notifier.PublishBookingEvent(ctx, EventDiscountApplied, bookingID, admin.ID,
		[]string{booking.UserID}, map[string]any{"payment_amount": booking.PaymentAmount})

	return booking, nil
}

// ChangePaymentType switches a booking between deposit and full payment.
func (s *BookingService) ChangePaymentType(ctx context.Context, bookingID, paymentType string, admin Actor) (*repository.Booking, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}
	if paymentType != repository.PaymentTypeFull && paymentType != repository.PaymentTypeDeposit {
		return nil, errors.InvalidInput("payment_type", "must be 'deposit' or 'full'")
	}

	var booking *repository.Booking
	err := s.store.InTransaction(ctx, func(tx repository.Tx) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		booking = b
		if b.PaymentType == paymentType {
			return nil
		}
		if b.Status != repository.BookingStatusConfirmed {
			return errors.Conflict(fmt.Sprintf("cannot change payment type of booking with status '%s'", b.Status))
		}

		old := b.PaymentType
		b.PaymentType = paymentType
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		_, err = s.audit.LogAction(ctx, tx, AuditEntry{
			BookingID:   b.ID,
			Action:      repository.ActionPaymentTypeChanged,
			PerformedBy: strPtr(admin.ID),
			OldValue:    map[string]any{"payment_type": old},
			NewValue:    map[string]any{"payment_type": paymentType},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", bookingID).
		Str("payment_type", paymentType).
		Str("changed_by", admin.ID).
		Msg("Payment type changed")

	return booking, nil
}

// UpdateBooking applies admin edits. Only fields whose value actually changes
// are written and audited; a request that changes nothing is a no-op.
func (s *BookingService) UpdateBooking(ctx context.Context, bookingID string, req *UpdateBookingRequest, admin Actor) (*repository.Booking, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if err := validateID("booking_id", bookingID); err != nil {
		return nil, err
	}

	// Parse and validate the requested values before touching storage
	var checkIn, checkOut *time.Time
	if req.CheckInDate != nil {
		t, err := parseDate("check_in_date", *req.CheckInDate)
		if err != nil {
			return nil, err
		}
		checkIn = &t
	}
	if req.CheckOutDate != nil {
		t, err := parseDate("check_out_date", *req.CheckOutDate)
		if err != nil {
			return nil, err
		}
		checkOut = &t
	}
	if req.NumGuests != nil && *req.NumGuests < 1 {
		return nil, errors.InvalidInput("num_guests", "at least one guest is required")
	}
	if req.TotalPrice != nil && *req.TotalPrice <= 0 {
		return nil, errors.InvalidInput("total_price", "must be positive")
	}
	if req.Notes != nil && len(*req.Notes) > maxNotesLength {
		return nil, errors.InvalidInput("notes", "is too long")
	}
	if req.AdminNotes != nil && len(*req.AdminNotes) > maxNotesLength {
		return nil, errors.InvalidInput("admin_notes", "is too long")
	}

	var booking *repository.Booking
	var changed []string
	err := s.store.InTransaction(ctx, func(tx repository.Tx) error {
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		booking = b

		diff := newBookingDiff()
		if checkIn != nil && !checkIn.Equal(b.CheckInDate) {
			diff.add("check_in_date", b.CheckInDate.Format(dateLayout), checkIn.Format(dateLayout))
			b.CheckInDate = *checkIn
		}
		if checkOut != nil && !checkOut.Equal(b.CheckOutDate) {
			diff.add("check_out_date", b.CheckOutDate.Format(dateLayout), checkOut.Format(dateLayout))
			b.CheckOutDate = *checkOut
		}
		if req.NumGuests != nil && *req.NumGuests != b.NumGuests {
			diff.add("num_guests", b.NumGuests, *req.NumGuests)
			b.NumGuests = *req.NumGuests
		}
		if req.TotalPrice != nil && *req.TotalPrice != b.TotalPrice {
			if *req.TotalPrice < b.DiscountAmount {
				return errors.InvalidInput("total_price", "cannot be below the applied discount")
			}
			diff.add("total_price", b.TotalPrice, *req.TotalPrice)
			b.TotalPrice = *req.TotalPrice

			payment := max(0, b.TotalPrice-b.DiscountAmount)
			if payment != b.PaymentAmount {
				diff.add("payment_amount", b.PaymentAmount, payment)
				b.PaymentAmount = payment
			}
		}
		if req.Notes != nil && !sameText(b.Notes, *req.Notes) {
			diff.add("notes", derefString(b.Notes), *req.Notes)
			b.Notes = nilIfEmpty(*req.Notes)
		}
		if req.AdminNotes != nil && !sameText(b.AdminNotes, *req.AdminNotes) {
			diff.add("admin_notes", derefString(b.AdminNotes), *req.AdminNotes)
			b.AdminNotes = nilIfEmpty(*req.AdminNotes)
		}

		if diff.empty() {
			return nil
		}
		if !b.CheckOutDate.After(b.CheckInDate) {
			return errors.InvalidInput("check_out_date", "check-out must be after check-in")
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}
		changed = diff.fields

		_, err = s.audit.LogAction(ctx, tx, AuditEntry{
			BookingID:   b.ID,
			Action:      repository.ActionBookingUpdated,
			PerformedBy: strPtr(admin.ID),
			OldValue:    diff.old,
			NewValue:    diff.new,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		s.log.Info().
			Str("booking_id", bookingID).
			Strs("fields", changed).
			Str("updated_by", admin.ID).
			Msg("Booking updated")
	}

	return booking, nil
}

func (s *BookingService) today() time.Time {
	return truncateDay(s.clock().In(s.policy.Location))
}

// bookingDiff collects old and new values of the fields an update touches.
type bookingDiff struct {
	old    map[string]any
	new    map[string]any
	fields []string
}

func newBookingDiff() *bookingDiff {
	return &bookingDiff{old: map[string]any{}, new: map[string]any{}}
}

func (d *bookingDiff) add(field string, oldValue, newValue any) {
	d.old[field] = oldValue
	d.new[field] = newValue
	d.fields = append(d.fields, field)
}

func (d *bookingDiff) empty() bool { return len(d.fields) == 0 }

// sameText treats a nil pointer and an empty string as equal.
func sameText(cur *string, next string) bool {
	if cur == nil {
		return next == ""
	}
	return *cur == next
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
