package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository/memstore"
)

type dispatched struct {
	SlipID, BookingID, SlipURL string
}

type recordingDispatcher struct {
	mu       sync.Mutex
	jobs     []dispatched
	err      error
	attempts int
	// free is the number of jobs accepted before refusing; negative means
	// unlimited.
	free int
}

func (d *recordingDispatcher) Dispatch(_ context.Context, slipID, bookingID, slipURL string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attempts++
	if d.err != nil {
		return d.err
	}
	if d.free == 0 {
		return errors.New("verification workers busy")
	}
	if d.free > 0 {
		d.free--
	}
	d.jobs = append(d.jobs, dispatched{slipID, bookingID, slipURL})
	return nil
}

// limit makes the dispatcher accept n more jobs and then refuse. It also
// resets the attempt counter.
func (d *recordingDispatcher) limit(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.free = n
	d.attempts = 0
}

func (d *recordingDispatcher) Attempts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attempts
}

func (d *recordingDispatcher) Jobs() []dispatched {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]dispatched(nil), d.jobs...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, eventType, _, _ string, _ []string, _ map[string]any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

type fixture struct {
	store      *memstore.Store
	bookings   *BookingService
	slips      *SlipWorkflow
	audit      *AuditService
	dispatcher *recordingDispatcher
	notifier   *recordingPublisher

	mu  sync.Mutex
	now time.Time

	roomTypeID string
	user       Actor
	admin      Actor
}

const testSlipURL = "/storage/slips/abc.jpg"

// newFixture wires the services over an in-memory store with a clock pinned
// to 2026-03-10 09:00 UTC.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:      memstore.New(),
		dispatcher: &recordingDispatcher{free: -1},
		notifier:   &recordingPublisher{},
		now:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		roomTypeID: uuid.NewString(),
		user:       Actor{ID: uuid.NewString(), Role: "user"},
		admin:      Actor{ID: uuid.NewString(), Role: RoleAdmin},
	}
	f.store.SetClock(f.clock)
	f.store.AddRoomType(repository.RoomType{
		ID:            f.roomTypeID,
		Name:          "Deluxe",
		PricePerNight: 500,
		MaxGuests:     2,
		IsActive:      true,
	}, 3)

	calc, err := NewDiscountCalculator(DefaultDepositRate)
	require.NoError(t, err)

	log := logger.Nop()
	f.audit = NewAuditService(f.store, f.clock, log)
	f.slips = NewSlipWorkflow(f.store, f.audit, f.dispatcher, f.notifier, f.clock,
		SlipWorkflowConfig{URLPrefix: defaultSlipPrefix, MaxSlipsPerBooking: 5}, log)
	f.bookings = NewBookingService(f.store, f.store, f.audit, calc, f.notifier, f.clock,
		BookingPolicy{CancellationWindowDays: 0, Location: time.UTC}, log)
	return f
}

func (f *fixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fixture) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// book creates a two-night booking (total 1000) starting daysAhead from today.
func (f *fixture) book(t *testing.T, daysAhead int) *repository.Booking {
	t.Helper()
	in := f.clock().AddDate(0, 0, daysAhead)
	b, err := f.bookings.CreateBooking(context.Background(), f.user, &CreateBookingRequest{
		RoomTypeID:   f.roomTypeID,
		CheckInDate:  in.Format(dateLayout),
		CheckOutDate: in.AddDate(0, 0, 2).Format(dateLayout),
		NumGuests:    2,
		PaymentType:  repository.PaymentTypeFull,
	})
	require.NoError(t, err)
	return b
}

func (f *fixture) upload(t *testing.T, bookingID string) *repository.Slip {
	t.Helper()
	s, err := f.slips.UploadSlip(context.Background(), bookingID, testSlipURL, f.user)
	require.NoError(t, err)
	return s
}

func (f *fixture) history(t *testing.T, bookingID string) []*repository.AuditRecord {
	t.Helper()
	recs, err := f.audit.GetAuditHistory(context.Background(), bookingID)
	require.NoError(t, err)
	return recs
}

func actions(recs []*repository.AuditRecord) []repository.AuditAction {
	out := make([]repository.AuditAction, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Action)
	}
	return out
}
