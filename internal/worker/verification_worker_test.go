package worker

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/client"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
)

type stubVerifier struct {
	res *client.SlipCheckResult
	err error
}

func (s stubVerifier) VerifySlipURL(context.Context, string) (*client.SlipCheckResult, error) {
	return s.res, s.err
}

type appliedResult struct {
	slipID, slipURL string
	result          service.VerificationResult
}

type stubApplier struct {
	calls []appliedResult
	err   error
}

func (s *stubApplier) ApplyVerificationResult(_ context.Context, slipID, slipURL string, result service.VerificationResult) (bool, error) {
	s.calls = append(s.calls, appliedResult{slipID, slipURL, result})
	return s.err == nil, s.err
}

var testJob = client.VerificationJob{SlipID: "s-1", BookingID: "b-1", SlipURL: "/storage/slips/a.jpg"}

func TestHandle_MapsOutcomes(t *testing.T) {
	ref := "TX9"
	tests := []struct {
		status string
		want   service.VerificationOutcome
	}{
		{client.SlipCheckVerified, service.OutcomeVerified},
		{client.SlipCheckFailed, service.OutcomeFailed},
		{client.SlipCheckQuotaExceeded, service.OutcomeQuotaExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			applier := &stubApplier{}
			w := NewVerificationWorker(stubVerifier{res: &client.SlipCheckResult{Status: tt.status, TransRef: &ref, Message: "m"}},
				applier, time.Second, logger.Nop())

			require.NoError(t, w.Handle(context.Background(), testJob))
			require.Len(t, applier.calls, 1)
			assert.Equal(t, "s-1", applier.calls[0].slipID)
			assert.Equal(t, testJob.SlipURL, applier.calls[0].slipURL)
			assert.Equal(t, tt.want, applier.calls[0].result.Outcome)
			assert.Equal(t, "m", applier.calls[0].result.Message)
		})
	}
}

func TestHandle_VerifierUnavailableLeavesSlipPending(t *testing.T) {
	applier := &stubApplier{}
	w := NewVerificationWorker(stubVerifier{err: errors.New(errors.ErrCodeExternalService, "timeout")},
		applier, time.Second, logger.Nop())

	assert.NoError(t, w.Handle(context.Background(), testJob))
	assert.Empty(t, applier.calls)
}

func TestHandle_UnknownStatusIgnored(t *testing.T) {
	applier := &stubApplier{}
	w := NewVerificationWorker(stubVerifier{res: &client.SlipCheckResult{Status: "maybe"}}, applier, time.Second, logger.Nop())

	assert.NoError(t, w.Handle(context.Background(), testJob))
	assert.Empty(t, applier.calls)
}

func TestHandle_ApplyFailureReturned(t *testing.T) {
	applier := &stubApplier{err: stderrors.New("db down")}
	w := NewVerificationWorker(stubVerifier{res: &client.SlipCheckResult{Status: client.SlipCheckFailed}}, applier, time.Second, logger.Nop())

	assert.Error(t, w.Handle(context.Background(), testJob))
}
