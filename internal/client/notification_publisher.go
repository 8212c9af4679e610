package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// natsPublisher is the subset of the NATS client the publisher needs.
type natsPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// NotificationPublisher publishes booking events to NATS for consumption by
// the notifications service.
//
// Subject convention: notifications.bookings.<event_type>
// Event types: slip_uploaded, slip_verified, slip_needs_action,
//              slip_auto_verified, slip_auto_rejected, booking_cancelled,
//              discount_applied
//
// All publish operations are non-fatal. Errors are logged but never
// propagated, so notification failures never interrupt booking operations.
type NotificationPublisher struct {
	nats natsPublisher
	log  zerolog.Logger
}

// NotificationEvent is the JSON schema published to NATS.
type NotificationEvent struct {
	EventType    string         `json:"event_type"`
	ActorID      string         `json:"actor_id,omitempty"`
	Recipients   []string       `json:"recipients"`
	ResourceType string         `json:"resource_type,omitempty"`
	ResourceID   string         `json:"resource_id,omitempty"`
	Severity     string         `json:"severity,omitempty"`
	Category     string         `json:"category,omitempty"`
	Payload      map[string]any `json:"payload,omitempty"`
}

// NewNotificationPublisher creates a publisher backed by the given NATS
// client. A nil client disables publishing.
func NewNotificationPublisher(nats natsPublisher, log zerolog.Logger) *NotificationPublisher {
	return &NotificationPublisher{nats: nats, log: log}
}

// PublishBookingEvent publishes a booking event to NATS.
// Subject: notifications.bookings.<eventType>
func (p *NotificationPublisher) PublishBookingEvent(ctx context.Context, eventType, bookingID, actorID string, recipients []string, payload map[string]any) {
	if p.nats == nil {
		return
	}
	if len(recipients) == 0 {
		return
	}

	event := &NotificationEvent{
		EventType:    eventType,
		ActorID:      actorID,
		Recipients:   recipients,
		ResourceType: "booking",
		ResourceID:   bookingID,
		Severity:     severityFor(eventType),
		Category:     "booking_payment",
		Payload:      payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.log.Warn().Err(err).Str("event_type", eventType).Msg("notification: failed to marshal event")
		return
	}

	subject := fmt.Sprintf("notifications.bookings.%s", eventType)
	if err := p.nats.Publish(ctx, subject, data); err != nil {
		p.log.Warn().Err(err).
			Str("subject", subject).
			Str("booking_id", bookingID).
			Msg("notification: failed to publish NATS event (non-fatal)")
		return
	}

	p.log.Debug().
		Str("subject", subject).
		Str("booking_id", bookingID).
		Int("recipients", len(recipients)).
		Msg("notification: event published")
}

func severityFor(eventType string) string {
	switch eventType {
	case "slip_needs_action", "slip_auto_rejected", "booking_cancelled":
		return "warning"
	default:
		return "info"
	}
}
