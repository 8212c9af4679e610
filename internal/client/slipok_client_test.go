package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

func newSlipOKServer(t *testing.T, status int, body string) (*httptest.Server, *slipOKRequest) {
	t.Helper()
	var got slipOKRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/branch-1", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("x-authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func newTestSlipOK(apiURL string) *SlipOKClient {
	return NewSlipOKClient(SlipOKConfig{
		APIURL:        apiURL,
		BranchID:      "branch-1",
		APIKey:        "secret-key",
		PublicBaseURL: "https://hotel.example/",
	})
}

func TestSlipOK_Verified(t *testing.T) {
	srv, req := newSlipOKServer(t, http.StatusOK, `{"success":true,"data":{"success":true,"transRef":"TX1","amount":1000}}`)

	res, err := newTestSlipOK(srv.URL).VerifySlipURL(context.Background(), "/storage/slips/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, SlipCheckVerified, res.Status)
	require.NotNil(t, res.TransRef)
	assert.Equal(t, "TX1", *res.TransRef)
	assert.Equal(t, 1000.0, *res.Amount)

	assert.Equal(t, "https://hotel.example/storage/slips/a.jpg", req.URL)
	assert.True(t, req.Log)
}

func TestSlipOK_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "rejected slip", status: http.StatusBadRequest, body: `{"success":false,"code":1012,"message":"duplicate slip"}`, want: SlipCheckFailed},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, want: SlipCheckQuotaExceeded},
		{name: "quota code", status: http.StatusBadRequest, body: `{"success":false,"code":1008,"message":"quota"}`, want: SlipCheckQuotaExceeded},
		{name: "unsuccessful 200", status: http.StatusOK, body: `{"success":false}`, want: SlipCheckFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newSlipOKServer(t, tt.status, tt.body)
			res, err := newTestSlipOK(srv.URL).VerifySlipURL(context.Background(), "https://cdn.example/a.jpg")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

func TestSlipOK_FailedMessageCarriesStatus(t *testing.T) {
	srv, _ := newSlipOKServer(t, http.StatusBadRequest, `{"success":false,"code":1012,"message":"duplicate slip"}`)
	res, err := newTestSlipOK(srv.URL).VerifySlipURL(context.Background(), "https://cdn.example/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "HTTP_400: duplicate slip", res.Message)
	assert.Equal(t, 1012, res.Code)
}

func TestSlipOK_UpstreamErrorIsNoVerdict(t *testing.T) {
	srv, _ := newSlipOKServer(t, http.StatusBadGateway, `oops`)
	_, err := newTestSlipOK(srv.URL).VerifySlipURL(context.Background(), "https://cdn.example/a.jpg")
	assert.True(t, errors.Is(err, errors.ErrCodeExternalService))
}

func TestSlipOK_NotConfigured(t *testing.T) {
	c := NewSlipOKClient(SlipOKConfig{APIURL: "http://unused"})
	assert.False(t, c.Configured())

	_, err := c.VerifySlipURL(context.Background(), "https://cdn.example/a.jpg")
	assert.ErrorIs(t, err, ErrSlipOKNotConfigured)
}

func TestSlipOK_RelativeURLWithoutBase(t *testing.T) {
	c := NewSlipOKClient(SlipOKConfig{APIURL: "http://unused", BranchID: "b", APIKey: "k"})
	_, err := c.VerifySlipURL(context.Background(), "/storage/slips/a.jpg")
	assert.True(t, errors.Is(err, errors.ErrCodeExternalService))
}
