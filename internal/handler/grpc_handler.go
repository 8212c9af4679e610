package handler

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/auth"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
	bookingsv1 "github.com/pesio-ai/be-hotel-bookings/proto/bookings/v1"
)

// GRPCHandler implements the BookingSlipService gRPC interface
type GRPCHandler struct {
	bookingsv1.UnimplementedBookingSlipServiceServer
	bookings *service.BookingService
	slips    *service.SlipWorkflow
	audit    *service.AuditService
	logger   zerolog.Logger
}

// NewGRPCHandler creates a new gRPC handler
func NewGRPCHandler(bookings *service.BookingService, slips *service.SlipWorkflow, audit *service.AuditService, logger zerolog.Logger) *GRPCHandler {
	return &GRPCHandler{
		bookings: bookings,
		slips:    slips,
		audit:    audit,
		logger:   logger.With().Str("handler", "grpc").Logger(),
	}
}

// actor extracts the authenticated caller from context. The auth interceptor
// has already rejected calls without claims.
func actor(ctx context.Context) service.Actor {
	if c, ok := auth.FromContext(ctx); ok {
		return service.Actor{ID: c.Sub, Role: c.Role}
	}
	return service.Actor{}
}

// ── Bookings ──────────────────────────────────────────────────────────────────

// CreateBooking creates a new booking for the caller
func (h *GRPCHandler) CreateBooking(ctx context.Context, req *bookingsv1.CreateBookingRequest) (*bookingsv1.Booking, error) {
	h.logger.Info().
		Str("room_type_id", req.GetRoomTypeId()).
		Str("check_in_date", req.GetCheckInDate()).
		Msg("gRPC CreateBooking called")

	booking, err := h.bookings.CreateBooking(ctx, actor(ctx), &service.CreateBookingRequest{
		RoomTypeID:   req.GetRoomTypeId(),
		CheckInDate:  req.GetCheckInDate(),
		CheckOutDate: req.GetCheckOutDate(),
		NumGuests:    int(req.GetNumGuests()),
		PaymentType:  req.GetPaymentType(),
		Notes:        req.Notes,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create booking")
		return nil, mapErrorToGRPC(err)
	}
	return toBookingPB(booking), nil
}

// GetBooking retrieves a booking by ID
func (h *GRPCHandler) GetBooking(ctx context.Context, req *bookingsv1.BookingIdRequest) (*bookingsv1.Booking, error) {
	booking, err := h.bookings.GetBooking(ctx, req.GetBookingId(), actor(ctx))
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toBookingPB(booking), nil
}

// CancelBooking cancels the caller's booking
func (h *GRPCHandler) CancelBooking(ctx context.Context, req *bookingsv1.CancelBookingRequest) (*bookingsv1.Booking, error) {
	h.logger.Info().Str("booking_id", req.GetBookingId()).Msg("gRPC CancelBooking called")

	booking, err := h.bookings.CancelBooking(ctx, req.GetBookingId(), actor(ctx), req.Reason)
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toBookingPB(booking), nil
}

// GetBookingWithAudit returns the admin view of a booking
func (h *GRPCHandler) GetBookingWithAudit(ctx context.Context, req *bookingsv1.BookingIdRequest) (*bookingsv1.BookingDetail, error) {
	detail, err := h.bookings.GetBookingWithAudit(ctx, req.GetBookingId(), actor(ctx))
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	out, err := toBookingDetailPB(detail)
	if err != nil {
		h.logger.Error().Err(err).Str("booking_id", req.GetBookingId()).Msg("Failed to encode audit values")
		return nil, mapErrorToGRPC(err)
	}
	return out, nil
}

// UpdateBooking edits admin-editable booking fields
func (h *GRPCHandler) UpdateBooking(ctx context.Context, req *bookingsv1.UpdateBookingRequest) (*bookingsv1.Booking, error) {
	h.logger.Info().Str("booking_id", req.GetBookingId()).Msg("gRPC UpdateBooking called")

	update := &service.UpdateBookingRequest{
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalPrice:   req.TotalPrice,
		Notes:        req.Notes,
		AdminNotes:   req.AdminNotes,
	}
	if req.NumGuests != nil {
		n := int(req.GetNumGuests())
		update.NumGuests = &n
	}
	booking, err := h.bookings.UpdateBooking(ctx, req.GetBookingId(), update, actor(ctx))
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toBookingPB(booking), nil
}

// AdminCancelBooking cancels any booking with a mandatory reason
func (h *GRPCHandler) AdminCancelBooking(ctx context.Context, req *bookingsv1.AdminCancelBookingRequest) (*bookingsv1.Booking, error) {
	h.logger.Info().Str("booking_id", req.GetBookingId()).Msg("gRPC AdminCancelBooking called")

	booking, err := h.bookings.AdminCancelBooking(ctx, req.GetBookingId(), actor(ctx), req.GetReason())
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toBookingPB(booking), nil
}

// ApplyDiscount takes a fixed amount off a booking
func (h *GRPCHandler) ApplyDiscount(ctx context.Context, req *bookingsv1.ApplyDiscountRequest) (*bookingsv1.Booking, error) {
	h.logger.Info().
		Str("booking_id", req.GetBookingId()).
		Int64("amount", req.GetAmount()).
		Msg("gRPC ApplyDiscount called")

	booking, err := h.bookings.ApplyDiscount(ctx, req.GetBookingId(), req.GetAmount(), req.GetReason(), actor(ctx))
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toBookingPB(booking), nil
}

// ChangePaymentType switches between deposit and full payment
func (h *GRPCHandler) ChangePaymentType(ctx context.Context, req *bookingsv1.ChangePaymentTypeRequest) (*bookingsv1.Booking, error) {
	booking, err := h.bookings.ChangePaymentType(ctx, req.GetBookingId(), req.GetPaymentType(), actor(ctx))
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toBookingPB(booking), nil
}

// ── Slips ─────────────────────────────────────────────────────────────────────

// UploadSlip attaches a payment slip to a booking
func (h *GRPCHandler) UploadSlip(ctx context.Context, req *bookingsv1.UploadSlipRequest) (*bookingsv1.Slip, error) {
	h.logger.Info().
		Str("booking_id", req.GetBookingId()).
		Bool("additional", req.GetAdditional()).
		Msg("gRPC UploadSlip called")

	upload := h.slips.UploadSlip
	if req.GetAdditional() {
		upload = h.slips.AddSlip
	}
	slip, err := upload(ctx, req.GetBookingId(), req.GetSlipUrl(), actor(ctx))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upload slip")
		return nil, mapErrorToGRPC(err)
	}
	return toSlipPB(slip), nil
}

// ListSlips lists a booking's slips
func (h *GRPCHandler) ListSlips(ctx context.Context, req *bookingsv1.BookingIdRequest) (*bookingsv1.ListSlipsResponse, error) {
	slips, err := h.slips.ListSlips(ctx, req.GetBookingId(), actor(ctx))
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return &bookingsv1.ListSlipsResponse{Slips: toSlipPBs(slips)}, nil
}

// RemoveSlip deletes an unverified slip
func (h *GRPCHandler) RemoveSlip(ctx context.Context, req *bookingsv1.SlipIdRequest) (*emptypb.Empty, error) {
	h.logger.Info().Str("slip_id", req.GetSlipId()).Msg("gRPC RemoveSlip called")

	if err := h.slips.RemoveSlip(ctx, req.GetSlipId(), actor(ctx)); err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return &emptypb.Empty{}, nil
}

// VerifySlip records an admin verification
func (h *GRPCHandler) VerifySlip(ctx context.Context, req *bookingsv1.ReviewSlipRequest) (*bookingsv1.Slip, error) {
	h.logger.Info().
		Str("slip_id", req.GetSlipId()).
		Str("booking_id", req.GetBookingId()).
		Msg("gRPC VerifySlip called")

	if err := oneTarget(req); err != nil {
		return nil, mapErrorToGRPC(err)
	}
	verify := h.slips.AdminVerifySlip
	id := req.GetSlipId()
	if req.GetBookingId() != "" {
		verify = h.slips.VerifyBookingSlip
		id = req.GetBookingId()
	}
	slip, err := verify(ctx, id, actor(ctx), req.Notes)
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toSlipPB(slip), nil
}

// MarkSlipNeedsAction asks the guest to fix their payment
func (h *GRPCHandler) MarkSlipNeedsAction(ctx context.Context, req *bookingsv1.ReviewSlipRequest) (*bookingsv1.Slip, error) {
	h.logger.Info().
		Str("slip_id", req.GetSlipId()).
		Str("booking_id", req.GetBookingId()).
		Msg("gRPC MarkSlipNeedsAction called")

	if err := oneTarget(req); err != nil {
		return nil, mapErrorToGRPC(err)
	}
	mark := h.slips.MarkSlipNeedsAction
	id := req.GetSlipId()
	if req.GetBookingId() != "" {
		mark = h.slips.MarkBookingSlipNeedsAction
		id = req.GetBookingId()
	}
	slip, err := mark(ctx, id, actor(ctx), req.GetNotes())
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toSlipPB(slip), nil
}

// ReplaceSlip swaps the primary slip image and restarts verification
func (h *GRPCHandler) ReplaceSlip(ctx context.Context, req *bookingsv1.ReplaceSlipRequest) (*bookingsv1.Slip, error) {
	h.logger.Info().Str("booking_id", req.GetBookingId()).Msg("gRPC ReplaceSlip called")

	slip, err := h.slips.ReplaceSlip(ctx, req.GetBookingId(), req.GetSlipUrl(), actor(ctx), req.Notes)
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	return toSlipPB(slip), nil
}

// GetAuditHistory returns a booking's audit trail, newest first
func (h *GRPCHandler) GetAuditHistory(ctx context.Context, req *bookingsv1.BookingIdRequest) (*bookingsv1.AuditHistoryResponse, error) {
	if !actor(ctx).IsAdmin() {
		return nil, mapErrorToGRPC(errors.Forbidden("admin role required"))
	}
	records, err := h.audit.GetAuditHistory(ctx, req.GetBookingId())
	if err != nil {
		return nil, mapErrorToGRPC(err)
	}
	out, err := toAuditPBs(records)
	if err != nil {
		h.logger.Error().Err(err).Str("booking_id", req.GetBookingId()).Msg("Failed to encode audit values")
		return nil, mapErrorToGRPC(err)
	}
	return &bookingsv1.AuditHistoryResponse{Records: out}, nil
}

func oneTarget(req *bookingsv1.ReviewSlipRequest) error {
	if (req.GetSlipId() == "") == (req.GetBookingId() == "") {
		return errors.InvalidInput("slip_id", "exactly one of slip_id or booking_id is required")
	}
	return nil
}

func mapErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	switch errors.CodeOf(err) {
	case errors.ErrCodeInvalidInput:
		return status.Error(codes.InvalidArgument, errMsg)
	case errors.ErrCodeNotFound:
		return status.Error(codes.NotFound, errMsg)
	case errors.ErrCodeUnauthorized:
		return status.Error(codes.Unauthenticated, errMsg)
	case errors.ErrCodeForbidden:
		return status.Error(codes.PermissionDenied, errMsg)
	case errors.ErrCodeConflict:
		return status.Error(codes.FailedPrecondition, errMsg)
	case errors.ErrCodeExternalService:
		return status.Error(codes.Unavailable, errMsg)
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
