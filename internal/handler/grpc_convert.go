package handler

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
	bookingsv1 "github.com/pesio-ai/be-hotel-bookings/proto/bookings/v1"
)

// Protobuf views of the domain types.

func toBookingPB(b *repository.Booking) *bookingsv1.Booking {
	if b == nil {
		return nil
	}
	return &bookingsv1.Booking{
		Id:                 b.ID,
		UserId:             b.UserID,
		RoomTypeId:         b.RoomTypeID,
		CheckInDate:        b.CheckInDate.Format(dateLayout),
		CheckOutDate:       b.CheckOutDate.Format(dateLayout),
		Nights:             int32(b.Nights()),
		NumGuests:          int32(b.NumGuests),
		TotalPrice:         b.TotalPrice,
		PaymentType:        b.PaymentType,
		PaymentAmount:      b.PaymentAmount,
		DiscountAmount:     b.DiscountAmount,
		DiscountReason:     b.DiscountReason,
		Status:             b.Status,
		CancelledByAdmin:   b.CancelledByAdmin,
		CancellationReason: b.CancellationReason,
		CancelledAt:        timestampOrNil(b.CancelledAt),
		Notes:              b.Notes,
		AdminNotes:         b.AdminNotes,
		CreatedAt:          timestamppb.New(b.CreatedAt),
		UpdatedAt:          timestamppb.New(b.UpdatedAt),
	}
}

func toSlipPB(s *repository.Slip) *bookingsv1.Slip {
	if s == nil {
		return nil
	}
	return &bookingsv1.Slip{
		Id:              s.ID,
		BookingId:       s.BookingID,
		SlipUrl:         s.SlipURL,
		UploadedBy:      s.UploadedBy,
		UploadedAt:      timestamppb.New(s.UploadedAt),
		IsPrimary:       s.IsPrimary,
		SlipokStatus:    s.SlipokStatus,
		SlipokRef:       s.SlipokRef,
		SlipokCheckedAt: timestampOrNil(s.SlipokCheckedAt),
		AdminStatus:     s.AdminStatus,
		VerifiedBy:      s.VerifiedBy,
		VerifiedAt:      timestampOrNil(s.VerifiedAt),
		Notes:           s.Notes,
	}
}

func toSlipPBs(slips []*repository.Slip) []*bookingsv1.Slip {
	out := make([]*bookingsv1.Slip, 0, len(slips))
	for _, s := range slips {
		out = append(out, toSlipPB(s))
	}
	return out
}

// toAuditPBs fails only when an old/new value holds a type structpb cannot
// represent.
func toAuditPBs(records []*repository.AuditRecord) ([]*bookingsv1.AuditRecord, error) {
	out := make([]*bookingsv1.AuditRecord, 0, len(records))
	for _, r := range records {
		oldValue, err := structOrNil(r.OldValue)
		if err != nil {
			return nil, err
		}
		newValue, err := structOrNil(r.NewValue)
		if err != nil {
			return nil, err
		}
		out = append(out, &bookingsv1.AuditRecord{
			Id:          r.ID,
			BookingId:   r.BookingID,
			Action:      string(r.Action),
			PerformedBy: r.PerformedBy,
			PerformedAt: timestamppb.New(r.PerformedAt),
			OldValue:    oldValue,
			NewValue:    newValue,
			Notes:       r.Notes,
		})
	}
	return out, nil
}

func toPaymentPB(p *service.PaymentSummary) *bookingsv1.PaymentSummary {
	if p == nil {
		return nil
	}
	return &bookingsv1.PaymentSummary{
		TotalPrice:     p.TotalPrice,
		DiscountAmount: p.DiscountAmount,
		PaymentAmount:  p.PaymentAmount,
		DepositAmount:  p.DepositAmount,
		FullAmount:     p.FullAmount,
		PaymentType:    p.PaymentType,
		AmountDueNow:   p.AmountDueNow,
	}
}

func toBookingDetailPB(d *service.BookingWithAudit) (*bookingsv1.BookingDetail, error) {
	audit, err := toAuditPBs(d.Audit)
	if err != nil {
		return nil, err
	}
	return &bookingsv1.BookingDetail{
		Booking: toBookingPB(d.Booking),
		Slips:   toSlipPBs(d.Slips),
		Audit:   audit,
		Payment: toPaymentPB(d.Payment),
	}, nil
}

func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func structOrNil(m map[string]any) (*structpb.Struct, error) {
	if m == nil {
		return nil, nil
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "encode audit value")
	}
	return s, nil
}
