// Package memstore is an in-memory repository.Store used by tests and local
// runs without PostgreSQL. Transactions are serialised, which gives the same
// isolation the row locks give in PostgreSQL.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
)

type auditEntry struct {
	seq int64
	rec *repository.AuditRecord
}

// Store implements repository.Store and the service's room catalog.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	now       func() time.Time
	seq       int64
	bookings  map[string]*repository.Booking
	slips     map[string]*repository.Slip
	audit     []auditEntry
	roomTypes map[string]*repository.RoomType
	rooms     map[string]int

	failAudit error
}

// New creates an empty store using the wall clock.
func New() *Store {
	return &Store{
		now:       time.Now,
		bookings:  make(map[string]*repository.Booking),
		slips:     make(map[string]*repository.Slip),
		roomTypes: make(map[string]*repository.RoomType),
		rooms:     make(map[string]int),
	}
}

// SetClock replaces the time source used for generated timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailNextAudit makes the next AppendAudit call return err.
func (s *Store) FailNextAudit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAudit = err
}

// AddRoomType registers a room type with the given number of active rooms.
func (s *Store) AddRoomType(rt repository.RoomType, rooms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := rt
	s.roomTypes[rt.ID] = &c
	s.rooms[rt.ID] = rooms
}

// InTransaction implements repository.Store. fn works on a private copy of the
// data which is published only when fn returns nil.
func (s *Store) InTransaction(ctx context.Context, fn func(tx repository.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	t := &memTx{
		store:    s,
		bookings: make(map[string]*repository.Booking, len(s.bookings)),
		slips:    make(map[string]*repository.Slip, len(s.slips)),
		seq:      s.seq,
	}
	for id, b := range s.bookings {
		t.bookings[id] = b.Clone()
	}
	for id, sl := range s.slips {
		t.slips[id] = sl.Clone()
	}
	s.mu.RUnlock()

	if err := fn(t); err != nil {
		return err
	}

	s.mu.Lock()
	s.bookings = t.bookings
	s.slips = t.slips
	s.audit = append(s.audit, t.audit...)
	s.seq = t.seq
	s.mu.Unlock()
	return nil
}

func (s *Store) GetBooking(_ context.Context, id string) (*repository.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, errors.NotFound("booking", id)
	}
	return b.Clone(), nil
}

func (s *Store) GetSlip(_ context.Context, id string) (*repository.Slip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.slips[id]
	if !ok {
		return nil, errors.NotFound("slip", id)
	}
	return sl.Clone(), nil
}

func (s *Store) ListSlips(_ context.Context, bookingID string) ([]*repository.Slip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listSlips(s.slips, bookingID), nil
}

func (s *Store) ListStalePendingSlips(_ context.Context, attemptedBefore time.Time, limit int) ([]*repository.Slip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*repository.Slip, 0)
	for _, sl := range s.slips {
		if sl.SlipokStatus == repository.SlipokStatusPending && sl.LastAttemptAt().Before(attemptedBefore) {
			out = append(out, sl.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i].LastAttemptAt(), out[j].LastAttemptAt()
		if !ai.Equal(aj) {
			return ai.Before(aj)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MarkSlipDispatched waits for running transactions so their commit cannot
// overwrite the stamp.
func (s *Store) MarkSlipDispatched(_ context.Context, id string, at time.Time) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok := s.slips[id]; ok && sl.SlipokStatus == repository.SlipokStatusPending {
		c := sl.Clone()
		c.LastDispatchedAt = &at
		s.slips[id] = c
	}
	return nil
}

func (s *Store) ListAuditByBooking(_ context.Context, bookingID string) ([]*repository.AuditRecord, error) {
	return s.auditWhere(func(r *repository.AuditRecord) bool { return r.BookingID == bookingID }, 0, 0), nil
}

func (s *Store) ListAuditByAction(_ context.Context, action repository.AuditAction, limit, offset int) ([]*repository.AuditRecord, error) {
	return s.auditWhere(func(r *repository.AuditRecord) bool { return r.Action == action }, limit, offset), nil
}

func (s *Store) ListRecentAudit(_ context.Context, limit, offset int) ([]*repository.AuditRecord, error) {
	return s.auditWhere(func(*repository.AuditRecord) bool { return true }, limit, offset), nil
}

func (s *Store) PurgeAuditBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.audit[:0]
	var n int64
	for _, e := range s.audit {
		if e.rec.PerformedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, e)
	}
	s.audit = kept
	return n, nil
}

// GetRoomType returns a registered room type.
func (s *Store) GetRoomType(_ context.Context, id string) (*repository.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rt, ok := s.roomTypes[id]
	if !ok {
		return nil, errors.NotFound("room type", id)
	}
	c := *rt
	return &c, nil
}

// AvailableRooms mirrors the PostgreSQL overlap query.
func (s *Store) AvailableRooms(_ context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.rooms[roomTypeID]
	for _, b := range s.bookings {
		if b.RoomTypeID == roomTypeID &&
			b.Status == repository.BookingStatusConfirmed &&
			b.CheckInDate.Before(checkOut) &&
			b.CheckOutDate.After(checkIn) {
			n--
		}
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// AuditCount returns the total number of stored audit records.
func (s *Store) AuditCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.audit)
}

func (s *Store) auditWhere(match func(*repository.AuditRecord) bool, limit, offset int) []*repository.AuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []auditEntry
	for _, e := range s.audit {
		if match(e.rec) {
			hits = append(hits, e)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if !a.rec.PerformedAt.Equal(b.rec.PerformedAt) {
			return a.rec.PerformedAt.After(b.rec.PerformedAt)
		}
		return a.seq > b.seq
	})

	if offset > len(hits) {
		offset = len(hits)
	}
	hits = hits[offset:]
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]*repository.AuditRecord, 0, len(hits))
	for _, e := range hits {
		out = append(out, cloneAudit(e.rec))
	}
	return out
}

func listSlips(all map[string]*repository.Slip, bookingID string) []*repository.Slip {
	out := make([]*repository.Slip, 0)
	for _, sl := range all {
		if sl.BookingID == bookingID {
			out = append(out, sl.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].UploadedAt.Before(out[j].UploadedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func cloneAudit(r *repository.AuditRecord) *repository.AuditRecord {
	c := *r
	c.OldValue = cloneMap(r.OldValue)
	c.NewValue = cloneMap(r.NewValue)
	return &c
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// memTx is the working copy a transaction mutates.
type memTx struct {
	store    *Store
	bookings map[string]*repository.Booking
	slips    map[string]*repository.Slip
	audit    []auditEntry
	seq      int64
}

func (t *memTx) now() time.Time {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.now()
}

func (t *memTx) LockBooking(_ context.Context, id string) (*repository.Booking, error) {
	b, ok := t.bookings[id]
	if !ok {
		return nil, errors.NotFound("booking", id)
	}
	return b.Clone(), nil
}

func (t *memTx) LockSlip(_ context.Context, id string) (*repository.Slip, error) {
	sl, ok := t.slips[id]
	if !ok {
		return nil, errors.NotFound("slip", id)
	}
	return sl.Clone(), nil
}

func (t *memTx) ListSlips(_ context.Context, bookingID string) ([]*repository.Slip, error) {
	return listSlips(t.slips, bookingID), nil
}

func (t *memTx) CreateBooking(_ context.Context, b *repository.Booking) error {
	now := t.now()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	t.bookings[b.ID] = b.Clone()
	return nil
}

func (t *memTx) UpdateBooking(_ context.Context, b *repository.Booking) error {
	if _, ok := t.bookings[b.ID]; !ok {
		return errors.NotFound("booking", b.ID)
	}
	b.UpdatedAt = t.now()
	t.bookings[b.ID] = b.Clone()
	return nil
}

func (t *memTx) CreateSlip(_ context.Context, s *repository.Slip) error {
	if _, ok := t.bookings[s.BookingID]; !ok {
		return errors.New(errors.ErrCodeInternal, "slip references unknown booking")
	}
	if s.IsPrimary {
		for _, other := range t.slips {
			if other.BookingID == s.BookingID && other.IsPrimary {
				return errors.New(errors.ErrCodeInternal, "booking already has a primary slip")
			}
		}
	}
	s.ID = uuid.NewString()
	s.UploadedAt = t.now()
	t.slips[s.ID] = s.Clone()
	return nil
}

func (t *memTx) UpdateSlip(_ context.Context, s *repository.Slip) error {
	if _, ok := t.slips[s.ID]; !ok {
		return errors.NotFound("slip", s.ID)
	}
	if s.IsPrimary {
		for id, other := range t.slips {
			if id != s.ID && other.BookingID == s.BookingID && other.IsPrimary {
				return errors.New(errors.ErrCodeInternal, "booking already has a primary slip")
			}
		}
	}
	t.slips[s.ID] = s.Clone()
	return nil
}

func (t *memTx) DeleteSlip(_ context.Context, id string) error {
	if _, ok := t.slips[id]; !ok {
		return errors.NotFound("slip", id)
	}
	delete(t.slips, id)
	return nil
}

func (t *memTx) AppendAudit(_ context.Context, rec *repository.AuditRecord) error {
	t.store.mu.Lock()
	failErr := t.store.failAudit
	t.store.failAudit = nil
	t.store.mu.Unlock()
	if failErr != nil {
		return errors.Wrap(failErr, errors.ErrCodeInternal, "failed to append audit record")
	}

	if _, ok := t.bookings[rec.BookingID]; !ok {
		return errors.New(errors.ErrCodeInternal, "audit record references unknown booking")
	}

	t.seq++
	rec.ID = uuid.NewString()
	rec.PerformedAt = t.now()
	t.audit = append(t.audit, auditEntry{seq: t.seq, rec: cloneAudit(rec)})
	return nil
}
