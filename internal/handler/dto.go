package handler

import (
	"time"

	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
)

const dateLayout = "2006-01-02"

// Wire representations shared by the HTTP and gRPC transports.

type BookingResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	RoomTypeID         string     `json:"room_type_id"`
	CheckInDate        string     `json:"check_in_date"`
	CheckOutDate       string     `json:"check_out_date"`
	Nights             int        `json:"nights"`
	NumGuests          int        `json:"num_guests"`
	TotalPrice         int64      `json:"total_price"`
	PaymentType        string     `json:"payment_type"`
	PaymentAmount      int64      `json:"payment_amount"`
	DiscountAmount     int64      `json:"discount_amount"`
	DiscountReason     *string    `json:"discount_reason,omitempty"`
	Status             string     `json:"status"`
	CancelledByAdmin   bool       `json:"cancelled_by_admin"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	AdminNotes         *string    `json:"admin_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type SlipResponse struct {
	ID              string     `json:"id"`
	BookingID       string     `json:"booking_id"`
	SlipURL         string     `json:"slip_url"`
	UploadedBy      string     `json:"uploaded_by"`
	UploadedAt      time.Time  `json:"uploaded_at"`
	IsPrimary       bool       `json:"is_primary"`
	SlipokStatus    string     `json:"slipok_status"`
	SlipokRef       *string    `json:"slipok_ref,omitempty"`
	SlipokCheckedAt *time.Time `json:"slipok_checked_at,omitempty"`
	AdminStatus     string     `json:"admin_status"`
	VerifiedBy      *string    `json:"verified_by,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

type AuditRecordResponse struct {
	ID          string         `json:"id"`
	BookingID   string         `json:"booking_id"`
	Action      string         `json:"action"`
	PerformedBy *string        `json:"performed_by"`
	PerformedAt time.Time      `json:"performed_at"`
	OldValue    map[string]any `json:"old_value,omitempty"`
	NewValue    map[string]any `json:"new_value,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
}

type BookingDetailResponse struct {
	Booking *BookingResponse        `json:"booking"`
	Slips   []*SlipResponse         `json:"slips"`
	Audit   []*AuditRecordResponse  `json:"audit"`
	Payment *service.PaymentSummary `json:"payment,omitempty"`
}

func toBookingResponse(b *repository.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		RoomTypeID:         b.RoomTypeID,
		CheckInDate:        b.CheckInDate.Format(dateLayout),
		CheckOutDate:       b.CheckOutDate.Format(dateLayout),
		Nights:             b.Nights(),
		NumGuests:          b.NumGuests,
		TotalPrice:         b.TotalPrice,
		PaymentType:        b.PaymentType,
		PaymentAmount:      b.PaymentAmount,
		DiscountAmount:     b.DiscountAmount,
		DiscountReason:     b.DiscountReason,
		Status:             b.Status,
		CancelledByAdmin:   b.CancelledByAdmin,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		Notes:              b.Notes,
		AdminNotes:         b.AdminNotes,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func toSlipResponse(s *repository.Slip) *SlipResponse {
	if s == nil {
		return nil
	}
	return &SlipResponse{
		ID:              s.ID,
		BookingID:       s.BookingID,
		SlipURL:         s.SlipURL,
		UploadedBy:      s.UploadedBy,
		UploadedAt:      s.UploadedAt,
		IsPrimary:       s.IsPrimary,
		SlipokStatus:    s.SlipokStatus,
		SlipokRef:       s.SlipokRef,
		SlipokCheckedAt: s.SlipokCheckedAt,
		AdminStatus:     s.AdminStatus,
		VerifiedBy:      s.VerifiedBy,
		VerifiedAt:      s.VerifiedAt,
		Notes:           s.Notes,
	}
}

func toSlipResponses(slips []*repository.Slip) []*SlipResponse {
	out := make([]*SlipResponse, 0, len(slips))
	for _, s := range slips {
		out = append(out, toSlipResponse(s))
	}
	return out
}

func toAuditResponses(records []*repository.AuditRecord) []*AuditRecordResponse {
	out := make([]*AuditRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, &AuditRecordResponse{
			ID:          r.ID,
			BookingID:   r.BookingID,
			Action:      string(r.Action),
			PerformedBy: r.PerformedBy,
			PerformedAt: r.PerformedAt,
			OldValue:    r.OldValue,
			NewValue:    r.NewValue,
			Notes:       r.Notes,
		})
	}
	return out
}

func toBookingDetail(d *service.BookingWithAudit) *BookingDetailResponse {
	return &BookingDetailResponse{
		Booking: toBookingResponse(d.Booking),
		Slips:   toSlipResponses(d.Slips),
		Audit:   toAuditResponses(d.Audit),
		Payment: d.Payment,
	}
}
