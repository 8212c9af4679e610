package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/auth"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository/memstore"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
)

type testEnv struct {
	store      *memstore.Store
	bookings   *service.BookingService
	slips      *service.SlipWorkflow
	audit      *service.AuditService
	verifier   *auth.Verifier
	router     *gin.Engine
	roomTypeID string
	userID     string
	adminID    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	e := &testEnv{
		store:      memstore.New(),
		verifier:   auth.NewVerifier("test-secret"),
		roomTypeID: uuid.NewString(),
		userID:     uuid.NewString(),
		adminID:    uuid.NewString(),
	}
	e.store.SetClock(clock)
	e.store.AddRoomType(repository.RoomType{ID: e.roomTypeID, Name: "Twin", PricePerNight: 500, MaxGuests: 2, IsActive: true}, 2)

	calc, err := service.NewDiscountCalculator(service.DefaultDepositRate)
	require.NoError(t, err)
	log := logger.Nop()
	e.audit = service.NewAuditService(e.store, clock, log)
	e.slips = service.NewSlipWorkflow(e.store, e.audit, nil, nil, clock, service.SlipWorkflowConfig{}, log)
	e.bookings = service.NewBookingService(e.store, e.store, e.audit, calc, nil, clock,
		service.BookingPolicy{Location: time.UTC}, log)

	e.router = gin.New()
	e.router.Use(RequestLogger(log))
	NewHTTPHandler(e.bookings, e.slips, e.audit, log).Register(e.router, e.verifier)
	return e
}

func (e *testEnv) token(t *testing.T, sub, role string) string {
	t.Helper()
	tok, err := e.verifier.CreateAccessToken(sub, role, "", time.Hour)
	require.NoError(t, err)
	return tok
}

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func (e *testEnv) createBooking(t *testing.T, token string) BookingResponse {
	t.Helper()
	code, env := e.do(t, http.MethodPost, "/api/v1/bookings", token, gin.H{
		"room_type_id":   e.roomTypeID,
		"check_in_date":  "2026-03-20",
		"check_out_date": "2026-03-22",
		"num_guests":     2,
		"payment_type":   "deposit",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var b BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &b))
	return b
}

func TestHTTP_RequiresToken(t *testing.T) {
	e := newTestEnv(t)

	code, env := e.do(t, http.MethodGet, "/api/v1/bookings/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "UNAUTHORIZED", env.Code)

	code, _ = e.do(t, http.MethodGet, "/api/v1/bookings/"+uuid.NewString(), "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestHTTP_AdminRoutesNeedAdminRole(t *testing.T) {
	e := newTestEnv(t)
	user := e.token(t, e.userID, "user")

	code, env := e.do(t, http.MethodGet, "/api/v1/admin/audit", user, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", env.Code)
}

func TestHTTP_BookingAndSlipFlow(t *testing.T) {
	e := newTestEnv(t)
	user := e.token(t, e.userID, "user")
	admin := e.token(t, e.adminID, service.RoleAdmin)

	b := e.createBooking(t, user)
	assert.Equal(t, int64(1000), b.TotalPrice)
	assert.Equal(t, 2, b.Nights)
	assert.Equal(t, "2026-03-20", b.CheckInDate)

	code, env := e.do(t, http.MethodGet, "/api/v1/bookings/"+b.ID+"/payment", user, nil)
	require.Equal(t, http.StatusOK, code)
	var pay service.PaymentSummary
	require.NoError(t, json.Unmarshal(env.Data, &pay))
	assert.Equal(t, int64(300), pay.AmountDueNow)

	code, env = e.do(t, http.MethodPost, "/api/v1/bookings/"+b.ID+"/slips", user, gin.H{"slip_url": "/storage/slips/x.jpg"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var slip SlipResponse
	require.NoError(t, json.Unmarshal(env.Data, &slip))
	assert.Equal(t, "pending", slip.SlipokStatus)
	assert.True(t, slip.IsPrimary)

	// Notes are mandatory when asking for action.
	code, env = e.do(t, http.MethodPost, "/api/v1/admin/slips/"+slip.ID+"/needs-action", admin, gin.H{"notes": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", env.Code)

	code, _ = e.do(t, http.MethodPost, "/api/v1/admin/slips/"+slip.ID+"/verify", admin, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = e.do(t, http.MethodDelete, "/api/v1/slips/"+slip.ID, user, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", env.Code)

	code, env = e.do(t, http.MethodGet, "/api/v1/admin/bookings/"+b.ID+"/audit", admin, nil)
	require.Equal(t, http.StatusOK, code)
	var recs []AuditRecordResponse
	require.NoError(t, json.Unmarshal(env.Data, &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "admin_verified", recs[0].Action)
	assert.Equal(t, "slip_uploaded", recs[1].Action)

	code, env = e.do(t, http.MethodGet, "/api/v1/admin/bookings/"+b.ID, admin, nil)
	require.Equal(t, http.StatusOK, code)
	var detail BookingDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Len(t, detail.Slips, 1)
	assert.Len(t, detail.Audit, 2)
}

func TestHTTP_CreateBookingDefaultsToFullPayment(t *testing.T) {
	e := newTestEnv(t)
	user := e.token(t, e.userID, "user")

	code, env := e.do(t, http.MethodPost, "/api/v1/bookings", user, gin.H{
		"room_type_id":   e.roomTypeID,
		"check_in_date":  "2026-03-20",
		"check_out_date": "2026-03-21",
		"num_guests":     1,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var b BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, "full", b.PaymentType)
	assert.Equal(t, int64(500), b.PaymentAmount)
}

func TestHTTP_RemovePendingSlip(t *testing.T) {
	e := newTestEnv(t)
	user := e.token(t, e.userID, "user")
	b := e.createBooking(t, user)

	_, env := e.do(t, http.MethodPost, "/api/v1/bookings/"+b.ID+"/slips", user, gin.H{"slip_url": "/storage/slips/x.jpg"})
	var slip SlipResponse
	require.NoError(t, json.Unmarshal(env.Data, &slip))

	code, _ := e.do(t, http.MethodDelete, "/api/v1/slips/"+slip.ID, user, nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, env = e.do(t, http.MethodGet, "/api/v1/slips/"+slip.ID, user, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestHTTP_OtherUsersCannotSeeBooking(t *testing.T) {
	e := newTestEnv(t)
	b := e.createBooking(t, e.token(t, e.userID, "user"))
	other := e.token(t, uuid.NewString(), "user")

	code, _ := e.do(t, http.MethodGet, "/api/v1/bookings/"+b.ID, other, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = e.do(t, http.MethodGet, "/api/v1/bookings/"+b.ID+"/slips", other, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestHTTP_DiscountAndAuditQueries(t *testing.T) {
	e := newTestEnv(t)
	admin := e.token(t, e.adminID, service.RoleAdmin)
	b := e.createBooking(t, e.token(t, e.userID, "user"))

	code, env := e.do(t, http.MethodPost, "/api/v1/admin/bookings/"+b.ID+"/discount", admin, gin.H{"amount": 1500, "reason": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", env.Code)

	code, env = e.do(t, http.MethodPost, "/api/v1/admin/bookings/"+b.ID+"/discount", admin, gin.H{"amount": 300, "reason": "returning guest"})
	require.Equal(t, http.StatusOK, code, env.Message)
	var got BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(700), got.PaymentAmount)

	code, env = e.do(t, http.MethodGet, "/api/v1/admin/audit?action=discount_applied&limit=10", admin, nil)
	require.Equal(t, http.StatusOK, code)
	var recs []AuditRecordResponse
	require.NoError(t, json.Unmarshal(env.Data, &recs))
	require.Len(t, recs, 1)
	assert.EqualValues(t, 1000, recs[0].OldValue["payment_amount"])
	assert.EqualValues(t, 700, recs[0].NewValue["payment_amount"])

	code, _ = e.do(t, http.MethodGet, "/api/v1/admin/audit?limit=ten", admin, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = e.do(t, http.MethodGet, "/api/v1/admin/audit?action=bogus", admin, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = e.do(t, http.MethodPost, "/api/v1/admin/audit/purge", admin, gin.H{"older_than_days": 30})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"deleted":0}`, string(env.Data))
}

func TestCORS_AllowAll(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
