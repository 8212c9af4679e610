package client

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcessDispatcher_RunsAndRefusesWhenBusy(t *testing.T) {
	release := make(chan struct{})
	started := make(chan VerificationJob, 2)
	d := NewInProcessDispatcher(1, func(ctx context.Context, job VerificationJob) error {
		started <- job
		<-release
		return nil
	}, zerolog.Nop())

	require.NoError(t, d.Dispatch(context.Background(), "s-1", "b-1", "/storage/slips/a.jpg"))

	select {
	case job := <-started:
		assert.Equal(t, "s-1", job.SlipID)
		assert.Equal(t, "/storage/slips/a.jpg", job.SlipURL)
	case <-time.After(time.Second):
		t.Fatal("job did not start")
	}

	assert.Error(t, d.Dispatch(context.Background(), "s-2", "b-1", "/storage/slips/b.jpg"))

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))

	assert.Error(t, d.Dispatch(context.Background(), "s-3", "b-1", "/storage/slips/c.jpg"))
}
