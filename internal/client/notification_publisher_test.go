package client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMsg struct {
	subject string
	data    []byte
}

type fakeNATS struct {
	msgs []publishedMsg
	err  error
}

func (f *fakeNATS) Publish(_ context.Context, subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, publishedMsg{subject, data})
	return nil
}

func TestPublishBookingEvent(t *testing.T) {
	nc := &fakeNATS{}
	p := NewNotificationPublisher(nc, zerolog.Nop())

	p.PublishBookingEvent(context.Background(), "slip_needs_action", "b-1", "admin-1",
		[]string{"user-1"}, map[string]any{"slip_id": "s-1"})

	require.Len(t, nc.msgs, 1)
	assert.Equal(t, "notifications.bookings.slip_needs_action", nc.msgs[0].subject)

	var ev NotificationEvent
	require.NoError(t, json.Unmarshal(nc.msgs[0].data, &ev))
	assert.Equal(t, "slip_needs_action", ev.EventType)
	assert.Equal(t, "b-1", ev.ResourceID)
	assert.Equal(t, "booking", ev.ResourceType)
	assert.Equal(t, "warning", ev.Severity)
	assert.Equal(t, []string{"user-1"}, ev.Recipients)
	assert.Equal(t, "s-1", ev.Payload["slip_id"])
}

func TestPublishBookingEvent_SkipsAndSwallows(t *testing.T) {
	nc := &fakeNATS{}
	p := NewNotificationPublisher(nc, zerolog.Nop())
	p.PublishBookingEvent(context.Background(), "slip_verified", "b-1", "", nil, nil)
	assert.Empty(t, nc.msgs)

	failing := NewNotificationPublisher(&fakeNATS{err: stderrors.New("no responders")}, zerolog.Nop())
	assert.NotPanics(t, func() {
		failing.PublishBookingEvent(context.Background(), "slip_verified", "b-1", "", []string{"u"}, nil)
	})

	disabled := NewNotificationPublisher(nil, zerolog.Nop())
	assert.NotPanics(t, func() {
		disabled.PublishBookingEvent(context.Background(), "slip_verified", "b-1", "", []string{"u"}, nil)
	})
}
