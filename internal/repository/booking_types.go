package repository

import "time"

// ── Booking ───────────────────────────────────────────────────────────────────

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment types.
const (
	PaymentTypeDeposit = "deposit"
	PaymentTypeFull    = "full"
)

// Booking is a room reservation. Monetary fields are minor units (satang).
type Booking struct {
	ID                 string
	UserID             string
	RoomTypeID         string
	CheckInDate        time.Time
	CheckOutDate       time.Time
	NumGuests          int
	TotalPrice         int64
	PaymentType        string
	PaymentAmount      int64
	DiscountAmount     int64
	DiscountReason     *string
	Status             string
	CancelledByAdmin   bool
	CancellationReason *string
	CancelledAt        *time.Time
	Notes              *string
	AdminNotes         *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Nights returns the length of stay.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Clone returns a deep copy so callers can diff before/after states.
func (b *Booking) Clone() *Booking {
	c := *b
	c.DiscountReason = cloneString(b.DiscountReason)
	c.CancellationReason = cloneString(b.CancellationReason)
	c.Notes = cloneString(b.Notes)
	c.AdminNotes = cloneString(b.AdminNotes)
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		c.CancelledAt = &t
	}
	return &c
}

// ── Slip ──────────────────────────────────────────────────────────────────────

// Automated (SlipOK) verification track.
const (
	SlipokStatusPending       = "pending"
	SlipokStatusVerified      = "verified"
	SlipokStatusFailed        = "failed"
	SlipokStatusQuotaExceeded = "quota_exceeded"
)

// Human (admin) review track.
const (
	AdminStatusPending     = "pending"
	AdminStatusVerified    = "verified"
	AdminStatusNeedsAction = "needs_action"
)

// Slip is an uploaded proof-of-payment image attached to a booking.
type Slip struct {
	ID              string
	BookingID       string
	SlipURL         string
	UploadedBy      string
	UploadedAt      time.Time
	IsPrimary       bool
	SlipokStatus    string
	SlipokRef       *string
	SlipokCheckedAt *time.Time
	AdminStatus     string
	VerifiedBy      *string
	VerifiedAt      *time.Time
	Notes           *string

	// LastDispatchedAt is when the stale sweep last re-queued the slip.
	// Only MarkSlipDispatched writes it.
	LastDispatchedAt *time.Time
}

// LastAttemptAt is the later of the upload and the last re-dispatch. The
// stale sweep orders by it so slips that keep failing rotate to the back.
func (s *Slip) LastAttemptAt() time.Time {
	if s.LastDispatchedAt != nil && s.LastDispatchedAt.After(s.UploadedAt) {
		return *s.LastDispatchedAt
	}
	return s.UploadedAt
}

// Clone returns a deep copy.
func (s *Slip) Clone() *Slip {
	c := *s
	c.SlipokRef = cloneString(s.SlipokRef)
	c.VerifiedBy = cloneString(s.VerifiedBy)
	c.Notes = cloneString(s.Notes)
	if s.SlipokCheckedAt != nil {
		t := *s.SlipokCheckedAt
		c.SlipokCheckedAt = &t
	}
	if s.VerifiedAt != nil {
		t := *s.VerifiedAt
		c.VerifiedAt = &t
	}
	if s.LastDispatchedAt != nil {
		t := *s.LastDispatchedAt
		c.LastDispatchedAt = &t
	}
	return &c
}

// ── Audit ─────────────────────────────────────────────────────────────────────

// AuditAction names a state transition recorded in the audit log.
type AuditAction string

const (
	ActionSlipUploaded            AuditAction = "slip_uploaded"
	ActionSlipAdded               AuditAction = "slip_added"
	ActionSlipVerified            AuditAction = "slip_verified"
	ActionSlipNeedsAction         AuditAction = "slip_needs_action"
	ActionSlipokVerified          AuditAction = "slipok_verified"
	ActionSlipokFailed            AuditAction = "slipok_failed"
	ActionSlipokQuotaExceeded     AuditAction = "slipok_quota_exceeded"
	ActionAdminVerified           AuditAction = "admin_verified"
	ActionAdminNeedsAction        AuditAction = "admin_needs_action"
	ActionSlipReplaced            AuditAction = "slip_replaced"
	ActionDiscountApplied         AuditAction = "discount_applied"
	ActionBookingUpdated          AuditAction = "booking_updated"
	ActionPaymentTypeChanged      AuditAction = "payment_type_changed"
	ActionBookingCancelledByAdmin AuditAction = "booking_cancelled_by_admin"
	ActionBookingCancelled        AuditAction = "booking_cancelled"
)

var auditActions = map[AuditAction]struct{}{
	ActionSlipUploaded: {}, ActionSlipAdded: {}, ActionSlipVerified: {},
	ActionSlipNeedsAction: {}, ActionSlipokVerified: {}, ActionSlipokFailed: {},
	ActionSlipokQuotaExceeded: {}, ActionAdminVerified: {}, ActionAdminNeedsAction: {},
	ActionSlipReplaced: {}, ActionDiscountApplied: {}, ActionBookingUpdated: {},
	ActionPaymentTypeChanged: {}, ActionBookingCancelledByAdmin: {}, ActionBookingCancelled: {},
}

// Valid reports whether a is a known action.
func (a AuditAction) Valid() bool {
	_, ok := auditActions[a]
	return ok
}

// AuditRecord is one immutable entry in the booking audit log.
// PerformedBy is nil for system actions (automated verification).
type AuditRecord struct {
	ID          string
	BookingID   string
	Action      AuditAction
	PerformedBy *string
	PerformedAt time.Time
	OldValue    map[string]any
	NewValue    map[string]any
	Notes       *string
}

// ── Room catalog (read-only) ──────────────────────────────────────────────────

// RoomType is the subset of the catalog needed to price a stay.
type RoomType struct {
	ID            string
	Name          string
	PricePerNight int64
	MaxGuests     int
	IsActive      bool
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
