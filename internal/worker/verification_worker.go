// Package worker runs background verification jobs and scheduled maintenance.
package worker

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pesio-ai/be-hotel-bookings/internal/client"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
)

// SlipVerifier reaches a verdict for a slip image.
type SlipVerifier interface {
	VerifySlipURL(ctx context.Context, slipURL string) (*client.SlipCheckResult, error)
}

// ResultApplier records a verdict on a slip.
type ResultApplier interface {
	ApplyVerificationResult(ctx context.Context, slipID, slipURL string, result service.VerificationResult) (bool, error)
}

// VerificationWorker turns queued jobs into slip verdicts.
type VerificationWorker struct {
	verifier SlipVerifier
	applier  ResultApplier
	timeout  time.Duration
	log      *logger.Logger
}

// NewVerificationWorker creates a worker that bounds each external call by timeout.
func NewVerificationWorker(verifier SlipVerifier, applier ResultApplier, timeout time.Duration, log *logger.Logger) *VerificationWorker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &VerificationWorker{verifier: verifier, applier: applier, timeout: timeout, log: log}
}

// Handle processes one job. An unreachable verifier is not an error: the slip
// stays pending for admin review or a later sweep. Only failures to record a
// verdict are returned.
func (w *VerificationWorker) Handle(ctx context.Context, job client.VerificationJob) error {
	ctx, span := otel.Tracer("worker").Start(ctx, "verification.handle")
	defer span.End()
	span.SetAttributes(
		attribute.String("slip.id", job.SlipID),
		attribute.String("booking.id", job.BookingID),
	)
	log := w.log.WithTrace(ctx)

	callCtx, cancel := context.WithTimeout(ctx, w.timeout)
	res, err := w.verifier.VerifySlipURL(callCtx, job.SlipURL)
	cancel()
	if err != nil {
		log.Warn().Err(err).
			Str("slip_id", job.SlipID).
			Str("booking_id", job.BookingID).
			Str("code", string(errors.ErrCodeExternalService)).
			Msg("Slip verification unavailable; slip stays pending")
		return nil
	}

	result, ok := toVerificationResult(res)
	if !ok {
		log.Warn().
			Str("slip_id", job.SlipID).
			Str("status", res.Status).
			Msg("Unknown verification status ignored")
		return nil
	}

	applied, err := w.applier.ApplyVerificationResult(ctx, job.SlipID, job.SlipURL, result)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Bool("result.applied", applied))
	return nil
}

func toVerificationResult(res *client.SlipCheckResult) (service.VerificationResult, bool) {
	var outcome service.VerificationOutcome
	switch res.Status {
	case client.SlipCheckVerified:
		outcome = service.OutcomeVerified
	case client.SlipCheckFailed:
		outcome = service.OutcomeFailed
	case client.SlipCheckQuotaExceeded:
		outcome = service.OutcomeQuotaExceeded
	default:
		return service.VerificationResult{}, false
	}
	return service.VerificationResult{Outcome: outcome, TransRef: res.TransRef, Message: res.Message}, true
}
