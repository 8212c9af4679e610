package client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// InProcessDispatcher runs verification jobs on a bounded set of goroutines.
// It is used when no broker is configured.
type InProcessDispatcher struct {
	handle  JobHandler
	sem     *semaphore.Weighted
	workers int64
	ctx     context.Context
	cancel  context.CancelFunc
	log     zerolog.Logger
}

// NewInProcessDispatcher creates a dispatcher running at most workers jobs at once.
func NewInProcessDispatcher(workers int, handle JobHandler, log zerolog.Logger) *InProcessDispatcher {
	if workers <= 0 {
		workers = 4
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &InProcessDispatcher{
		handle:  handle,
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: int64(workers),
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
	}
}

// Dispatch starts the job in the background. When every worker is busy the
// job is refused; the slip stays pending until the stale sweep retries it.
func (d *InProcessDispatcher) Dispatch(_ context.Context, slipID, bookingID, slipURL string) error {
	if d.ctx.Err() != nil {
		return fmt.Errorf("dispatcher is shut down")
	}
	if !d.sem.TryAcquire(1) {
		return fmt.Errorf("verification workers busy")
	}

	job := VerificationJob{
		SlipID:     slipID,
		BookingID:  bookingID,
		SlipURL:    slipURL,
		EnqueuedAt: time.Now().UTC(),
	}
	go func() {
		defer d.sem.Release(1)
		if err := d.handle(d.ctx, job); err != nil {
			d.log.Warn().Err(err).
				Str("slip_id", slipID).
				Msg("in-process verification failed (slip stays pending)")
		}
	}()
	return nil
}

// Shutdown stops accepting jobs and waits for running ones until ctx expires.
func (d *InProcessDispatcher) Shutdown(ctx context.Context) error {
	if err := d.sem.Acquire(ctx, d.workers); err != nil {
		d.cancel()
		return err
	}
	d.cancel()
	d.sem.Release(d.workers)
	return nil
}
