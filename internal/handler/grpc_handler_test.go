package handler

import (
	"context"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
	bookingsv1 "github.com/pesio-ai/be-hotel-bookings/proto/bookings/v1"
)

func TestMapErrorToGRPC(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{errors.InvalidInput("notes", "is required"), codes.InvalidArgument},
		{errors.NotFound("slip", "1"), codes.NotFound},
		{errors.Unauthorized("no token"), codes.Unauthenticated},
		{errors.Forbidden("admin only"), codes.PermissionDenied},
		{errors.Conflict("verified"), codes.FailedPrecondition},
		{errors.New(errors.ErrCodeExternalService, "slipok down"), codes.Unavailable},
		{errors.New(errors.ErrCodeInternal, "sql: connection reset"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Code(mapErrorToGRPC(tt.err)), tt.err.Error())
	}
	assert.Nil(t, mapErrorToGRPC(nil))

	st, _ := status.FromError(mapErrorToGRPC(errors.New(errors.ErrCodeInternal, "sql: connection reset")))
	assert.Equal(t, "internal error", st.Message())
}

func startGRPC(t *testing.T, e *testEnv) bookingsv1.BookingSlipServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor(zerolog.Nop()),
		AuthInterceptor(e.verifier),
	))
	bookingsv1.RegisterBookingSlipServiceServer(srv, NewGRPCHandler(e.bookings, e.slips, e.audit, zerolog.Nop()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return bookingsv1.NewBookingSlipServiceClient(conn)
}

func callAs(t *testing.T, e *testEnv, sub, role string) context.Context {
	t.Helper()
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+e.token(t, sub, role))
}

func TestGRPC_SlipReviewOverWire(t *testing.T) {
	e := newTestEnv(t)
	c := startGRPC(t, e)
	userCtx := callAs(t, e, e.userID, "user")
	adminCtx := callAs(t, e, e.adminID, service.RoleAdmin)

	booking, err := c.CreateBooking(userCtx, &bookingsv1.CreateBookingRequest{
		RoomTypeId:   e.roomTypeID,
		CheckInDate:  "2026-03-20",
		CheckOutDate: "2026-03-21",
		NumGuests:    1,
		PaymentType:  "full",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500), booking.GetTotalPrice())
	assert.Equal(t, int32(1), booking.GetNights())
	assert.Nil(t, booking.CancelledAt)

	slip, err := c.UploadSlip(userCtx, &bookingsv1.UploadSlipRequest{BookingId: booking.GetId(), SlipUrl: "/storage/slips/g.jpg"})
	require.NoError(t, err)
	assert.True(t, slip.GetIsPrimary())
	assert.Equal(t, "pending", slip.GetSlipokStatus())

	// Both targets at once is ambiguous.
	_, err = c.VerifySlip(adminCtx, &bookingsv1.ReviewSlipRequest{SlipId: slip.GetId(), BookingId: booking.GetId()})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.VerifySlip(userCtx, &bookingsv1.ReviewSlipRequest{SlipId: slip.GetId()})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	verified, err := c.VerifySlip(adminCtx, &bookingsv1.ReviewSlipRequest{BookingId: booking.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "verified", verified.GetAdminStatus())
	require.NotNil(t, verified.GetVerifiedAt())
	assert.Equal(t, e.adminID, verified.GetVerifiedBy())

	_, err = c.RemoveSlip(userCtx, &bookingsv1.SlipIdRequest{SlipId: slip.GetId()})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = c.GetAuditHistory(userCtx, &bookingsv1.BookingIdRequest{BookingId: booking.GetId()})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	audit, err := c.GetAuditHistory(adminCtx, &bookingsv1.BookingIdRequest{BookingId: booking.GetId()})
	require.NoError(t, err)
	require.Len(t, audit.GetRecords(), 2)
	assert.Equal(t, "slip_verified", audit.GetRecords()[0].GetAction())
	assert.Equal(t, "verified", audit.GetRecords()[0].GetNewValue().AsMap()["admin_status"])
}

func TestGRPC_DiscountAuditValuesAsStruct(t *testing.T) {
	e := newTestEnv(t)
	c := startGRPC(t, e)
	userCtx := callAs(t, e, e.userID, "user")
	adminCtx := callAs(t, e, e.adminID, service.RoleAdmin)

	booking, err := c.CreateBooking(userCtx, &bookingsv1.CreateBookingRequest{
		RoomTypeId:   e.roomTypeID,
		CheckInDate:  "2026-03-20",
		CheckOutDate: "2026-03-22",
		NumGuests:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "full", booking.GetPaymentType())

	discounted, err := c.ApplyDiscount(adminCtx, &bookingsv1.ApplyDiscountRequest{BookingId: booking.GetId(), Amount: 200, Reason: "loyalty"})
	require.NoError(t, err)
	assert.Equal(t, int64(800), discounted.GetPaymentAmount())
	assert.Equal(t, "loyalty", discounted.GetDiscountReason())

	detail, err := c.GetBookingWithAudit(adminCtx, &bookingsv1.BookingIdRequest{BookingId: booking.GetId()})
	require.NoError(t, err)
	assert.Equal(t, int64(800), detail.GetPayment().GetAmountDueNow())
	require.Len(t, detail.GetAudit(), 1)
	rec := detail.GetAudit()[0]
	assert.Equal(t, "discount_applied", rec.GetAction())
	assert.EqualValues(t, 1000, rec.GetOldValue().AsMap()["payment_amount"])
	assert.EqualValues(t, 800, rec.GetNewValue().AsMap()["payment_amount"])
	assert.Equal(t, e.adminID, rec.GetPerformedBy())
}

func TestGRPC_UpdateBookingLeavesUnsetFields(t *testing.T) {
	e := newTestEnv(t)
	c := startGRPC(t, e)
	userCtx := callAs(t, e, e.userID, "user")
	adminCtx := callAs(t, e, e.adminID, service.RoleAdmin)

	notes := "late arrival"
	booking, err := c.CreateBooking(userCtx, &bookingsv1.CreateBookingRequest{
		RoomTypeId:   e.roomTypeID,
		CheckInDate:  "2026-03-20",
		CheckOutDate: "2026-03-22",
		NumGuests:    1,
		PaymentType:  "deposit",
		Notes:        &notes,
	})
	require.NoError(t, err)

	guests := int32(2)
	updated, err := c.UpdateBooking(adminCtx, &bookingsv1.UpdateBookingRequest{BookingId: booking.GetId(), NumGuests: &guests})
	require.NoError(t, err)
	assert.Equal(t, int32(2), updated.GetNumGuests())
	assert.Equal(t, "late arrival", updated.GetNotes())
	assert.Equal(t, booking.GetCheckInDate(), updated.GetCheckInDate())
}

func TestGRPC_RejectsMissingToken(t *testing.T) {
	e := newTestEnv(t)
	c := startGRPC(t, e)

	_, err := c.GetBooking(context.Background(), &bookingsv1.BookingIdRequest{BookingId: uuid.NewString()})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestBookingSlipServiceDescriptorRegistered(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath(bookingsv1.BookingSlipService_ServiceDesc.Metadata.(string))
	require.NoError(t, err)
	svc := fd.Services().ByName("BookingSlipService")
	require.NotNil(t, svc)
	assert.Equal(t, len(bookingsv1.BookingSlipService_ServiceDesc.Methods), svc.Methods().Len())
	assert.Equal(t, "bookings.v1.BookingSlipService", string(svc.FullName()))
}
