package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/httpclient"
)

// SlipOK result statuses.
const (
	SlipCheckVerified      = "verified"
	SlipCheckFailed        = "failed"
	SlipCheckQuotaExceeded = "quota_exceeded"
)

// slipokQuotaExceededCode is the body error code SlipOK returns once the
// monthly quota is used up.
const slipokQuotaExceededCode = 1008

// ErrSlipOKNotConfigured is returned when no API key or branch is set.
var ErrSlipOKNotConfigured = errors.New(errors.ErrCodeExternalService, "slipok is not configured")

// SlipOKConfig holds SlipOK API settings.
type SlipOKConfig struct {
	APIURL        string
	BranchID      string
	APIKey        string
	PublicBaseURL string
	Timeout       time.Duration
}

// SlipCheckResult is the verdict SlipOK gave for one slip image.
type SlipCheckResult struct {
	Status   string
	TransRef *string
	Amount   *float64
	Code     int
	Message  string
}

// slipOKRequest is the SlipOK verify-by-URL payload.
type slipOKRequest struct {
	URL string `json:"url"`
	Log bool   `json:"log"`
}

// slipOKResponse is the subset of the SlipOK response the service uses.
type slipOKResponse struct {
	Success  bool     `json:"success"`
	Code     int      `json:"code,omitempty"`
	Message  string   `json:"message,omitempty"`
	TransRef *string  `json:"transRef,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Data     *struct {
		Success  bool     `json:"success"`
		TransRef *string  `json:"transRef,omitempty"`
		Amount   *float64 `json:"amount,omitempty"`
	} `json:"data,omitempty"`
}

// SlipOKClient verifies payment slips against the SlipOK API.
type SlipOKClient struct {
	cfg    SlipOKConfig
	client *httpclient.Client
}

// NewSlipOKClient creates a new SlipOK client.
func NewSlipOKClient(cfg SlipOKConfig) *SlipOKClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SlipOKClient{
		cfg: cfg,
		client: httpclient.NewClient(cfg.APIURL,
			httpclient.WithTimeout(cfg.Timeout),
			httpclient.WithHeader("x-authorization", cfg.APIKey),
		),
	}
}

// Configured reports whether credentials are present.
func (c *SlipOKClient) Configured() bool {
	return c.cfg.APIURL != "" && c.cfg.BranchID != "" && c.cfg.APIKey != ""
}

// VerifySlipURL asks SlipOK to verify the slip image at slipURL. Relative URLs
// are resolved against the public base URL. A returned error means no verdict
// was reached (transport failure, timeout, 5xx, or missing configuration).
func (c *SlipOKClient) VerifySlipURL(ctx context.Context, slipURL string) (*SlipCheckResult, error) {
	ctx, span := otel.Tracer("slipok").Start(ctx, "slipok.verify")
	defer span.End()

	if !c.Configured() {
		span.SetStatus(codes.Error, "not configured")
		return nil, ErrSlipOKNotConfigured
	}

	imageURL, err := c.absoluteURL(slipURL)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var resp slipOKResponse
	err = c.client.Post(ctx, "/"+url.PathEscape(c.cfg.BranchID), slipOKRequest{URL: imageURL, Log: true}, &resp)

	var statusErr *httpclient.StatusError
	switch {
	case err == nil:
		result := interpretBody(&resp)
		span.SetAttributes(attribute.String("slipok.status", result.Status))
		return result, nil

	case stderrors.As(err, &statusErr):
		span.SetAttributes(attribute.Int("http.status_code", statusErr.StatusCode))
		if statusErr.StatusCode == 429 || resp.Code == slipokQuotaExceededCode {
			return &SlipCheckResult{Status: SlipCheckQuotaExceeded, Code: resp.Code, Message: resp.Message}, nil
		}
		if statusErr.StatusCode >= 500 {
			span.SetStatus(codes.Error, "upstream error")
			return nil, errors.Wrap(err, errors.ErrCodeExternalService, "slipok upstream error")
		}
		msg := resp.Message
		if msg == "" {
			msg = strings.TrimSpace(string(statusErr.Body))
		}
		return &SlipCheckResult{
			Status:  SlipCheckFailed,
			Code:    resp.Code,
			Message: fmt.Sprintf("HTTP_%d: %s", statusErr.StatusCode, msg),
		}, nil

	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, errors.Wrap(err, errors.ErrCodeExternalService, "slipok request failed")
	}
}

func interpretBody(resp *slipOKResponse) *SlipCheckResult {
	success, ref, amount := resp.Success, resp.TransRef, resp.Amount
	if resp.Data != nil {
		success = success || resp.Data.Success
		if ref == nil {
			ref = resp.Data.TransRef
		}
		if amount == nil {
			amount = resp.Data.Amount
		}
	}

	if success {
		return &SlipCheckResult{Status: SlipCheckVerified, TransRef: ref, Amount: amount, Message: resp.Message}
	}
	if resp.Code == slipokQuotaExceededCode {
		return &SlipCheckResult{Status: SlipCheckQuotaExceeded, Code: resp.Code, Message: resp.Message}
	}
	msg := resp.Message
	if msg == "" {
		msg = "slip verification failed"
	}
	return &SlipCheckResult{Status: SlipCheckFailed, Code: resp.Code, Message: msg}
}

func (c *SlipOKClient) absoluteURL(slipURL string) (string, error) {
	u, err := url.Parse(slipURL)
	if err != nil {
		return "", errors.InvalidInput("slip_url", "is not a valid URL")
	}
	if u.IsAbs() {
		return slipURL, nil
	}
	if c.cfg.PublicBaseURL == "" {
		return "", errors.New(errors.ErrCodeExternalService, "relative slip URL and no public base URL configured")
	}
	return strings.TrimRight(c.cfg.PublicBaseURL, "/") + "/" + strings.TrimLeft(slipURL, "/"), nil
}
