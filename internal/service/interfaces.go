package service

import (
	"context"
	"time"

	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

// RoleAdmin is the JWT role that unlocks back-office operations.
const RoleAdmin = "admin"

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// VerificationDispatcher hands a slip to the automated verification pipeline.
// Implementations must not block on the external call.
type VerificationDispatcher interface {
	Dispatch(ctx context.Context, slipID, bookingID, slipURL string) error
}

// NotificationPublisherInterface publishes booking events. Failures are the
// publisher's concern and never reach the caller.
type NotificationPublisherInterface interface {
	PublishBookingEvent(ctx context.Context, eventType, bookingID, actorID string, recipients []string, payload map[string]any)
}

// RoomCatalog is the read-only room catalog collaborator.
type RoomCatalog interface {
	GetRoomType(ctx context.Context, id string) (*repository.RoomType, error)
	AvailableRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(context.Context, string, string, string) error { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishBookingEvent(context.Context, string, string, string, []string, map[string]any) {
}

// Notification event types, published on notifications.bookings.<event>.
const (
	EventSlipUploaded     = "slip_uploaded"
	EventSlipVerified     = "slip_verified"
	EventSlipNeedsAction  = "slip_needs_action"
	EventSlipAutoVerified = "slip_auto_verified"
	EventSlipAutoRejected = "slip_auto_rejected"
	EventBookingCancelled = "booking_cancelled"
	EventDiscountApplied  = "discount_applied"
)
