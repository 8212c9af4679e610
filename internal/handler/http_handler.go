package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/auth"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
)

// HTTPHandler handles HTTP requests
type HTTPHandler struct {
	bookings *service.BookingService
	slips    *service.SlipWorkflow
	audit    *service.AuditService
	log      *logger.Logger
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(bookings *service.BookingService, slips *service.SlipWorkflow, audit *service.AuditService, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		bookings: bookings,
		slips:    slips,
		audit:    audit,
		log:      log,
	}
}

// Register mounts all routes under /api/v1.
func (h *HTTPHandler) Register(r gin.IRouter, verifier *auth.Verifier) {
	v1 := r.Group("/api/v1")
	v1.Use(JWTAuth(verifier))

	b := v1.Group("/bookings")
	{
		b.POST("", h.CreateBooking)
		b.GET("/:id", h.GetBooking)
		b.GET("/:id/payment", h.GetPaymentSummary)
		b.POST("/:id/cancel", h.CancelBooking)
		b.GET("/:id/slips", h.ListSlips)
		b.POST("/:id/slips", h.UploadSlip)
		b.POST("/:id/slips/additional", h.AddSlip)
	}

	s := v1.Group("/slips")
	{
		s.GET("/:id", h.GetSlip)
		s.DELETE("/:id", h.RemoveSlip)
	}

	admin := v1.Group("/admin")
	admin.Use(RequireRole(service.RoleAdmin))
	{
		admin.GET("/bookings/:id", h.GetBookingWithAudit)
		admin.PATCH("/bookings/:id", h.UpdateBooking)
		admin.POST("/bookings/:id/cancel", h.AdminCancelBooking)
		admin.POST("/bookings/:id/discount", h.ApplyDiscount)
		admin.POST("/bookings/:id/payment-type", h.ChangePaymentType)
		admin.POST("/bookings/:id/slip/verify", h.VerifyBookingSlip)
		admin.POST("/bookings/:id/slip/needs-action", h.MarkBookingSlipNeedsAction)
		admin.POST("/bookings/:id/slip/replace", h.ReplaceSlip)
		admin.POST("/slips/:id/verify", h.AdminVerifySlip)
		admin.POST("/slips/:id/needs-action", h.MarkSlipNeedsAction)
		admin.GET("/bookings/:id/audit", h.GetAuditHistory)
		admin.GET("/audit", h.ListAudit)
		admin.POST("/audit/purge", h.PurgeAudit)
	}
}

// ── Bookings ──────────────────────────────────────────────────────────────────

type createBookingBody struct {
	RoomTypeID   string  `json:"room_type_id" binding:"required"`
	CheckInDate  string  `json:"check_in_date" binding:"required"`
	CheckOutDate string  `json:"check_out_date" binding:"required"`
	NumGuests    int     `json:"num_guests" binding:"required"`
	PaymentType  string  `json:"payment_type"`
	Notes        *string `json:"notes"`
}

// CreateBooking handles POST /api/v1/bookings
func (h *HTTPHandler) CreateBooking(c *gin.Context) {
	var in createBookingBody
	if !bindJSON(c, &in) {
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), actorFrom(c), &service.CreateBookingRequest{
		RoomTypeID:   in.RoomTypeID,
		CheckInDate:  in.CheckInDate,
		CheckOutDate: in.CheckOutDate,
		NumGuests:    in.NumGuests,
		PaymentType:  in.PaymentType,
		Notes:        in.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toBookingResponse(booking))
}

// GetBooking handles GET /api/v1/bookings/:id
func (h *HTTPHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookings.GetBooking(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toBookingResponse(booking))
}

// GetPaymentSummary handles GET /api/v1/bookings/:id/payment
func (h *HTTPHandler) GetPaymentSummary(c *gin.Context) {
	summary, err := h.bookings.PaymentSummary(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, summary)
}

type reasonBody struct {
	Reason *string `json:"reason"`
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
func (h *HTTPHandler) CancelBooking(c *gin.Context) {
	var in reasonBody
	if !bindOptionalJSON(c, &in) {
		return
	}
	booking, err := h.bookings.CancelBooking(c.Request.Context(), c.Param("id"), actorFrom(c), in.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toBookingResponse(booking))
}

// ── Slips ─────────────────────────────────────────────────────────────────────

type slipBody struct {
	SlipURL string `json:"slip_url" binding:"required"`
}

// UploadSlip handles POST /api/v1/bookings/:id/slips
func (h *HTTPHandler) UploadSlip(c *gin.Context) {
	var in slipBody
	if !bindJSON(c, &in) {
		return
	}
	slip, err := h.slips.UploadSlip(c.Request.Context(), c.Param("id"), in.SlipURL, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toSlipResponse(slip))
}

// AddSlip handles POST /api/v1/bookings/:id/slips/additional
func (h *HTTPHandler) AddSlip(c *gin.Context) {
	var in slipBody
	if !bindJSON(c, &in) {
		return
	}
	slip, err := h.slips.AddSlip(c.Request.Context(), c.Param("id"), in.SlipURL, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toSlipResponse(slip))
}

// ListSlips handles GET /api/v1/bookings/:id/slips
func (h *HTTPHandler) ListSlips(c *gin.Context) {
	slips, err := h.slips.ListSlips(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSlipResponses(slips))
}

// GetSlip handles GET /api/v1/slips/:id. Non-admins only see slips of their
// own bookings.
func (h *HTTPHandler) GetSlip(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFrom(c)

	slip, err := h.slips.GetSlip(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !actor.IsAdmin() {
		if _, err := h.bookings.GetBooking(ctx, slip.BookingID, actor); err != nil {
			h.respondError(c, err)
			return
		}
	}
	respond(c, http.StatusOK, toSlipResponse(slip))
}

// RemoveSlip handles DELETE /api/v1/slips/:id
func (h *HTTPHandler) RemoveSlip(c *gin.Context) {
	if err := h.slips.RemoveSlip(c.Request.Context(), c.Param("id"), actorFrom(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Admin ─────────────────────────────────────────────────────────────────────

// GetBookingWithAudit handles GET /api/v1/admin/bookings/:id
func (h *HTTPHandler) GetBookingWithAudit(c *gin.Context) {
	detail, err := h.bookings.GetBookingWithAudit(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toBookingDetail(detail))
}

type updateBookingBody struct {
	CheckInDate  *string `json:"check_in_date"`
	CheckOutDate *string `json:"check_out_date"`
	NumGuests    *int    `json:"num_guests"`
	TotalPrice   *int64  `json:"total_price"`
	Notes        *string `json:"notes"`
	AdminNotes   *string `json:"admin_notes"`
}

// UpdateBooking handles PATCH /api/v1/admin/bookings/:id
func (h *HTTPHandler) UpdateBooking(c *gin.Context) {
	var in updateBookingBody
	if !bindJSON(c, &in) {
		return
	}
	booking, err := h.bookings.UpdateBooking(c.Request.Context(), c.Param("id"), &service.UpdateBookingRequest{
		CheckInDate:  in.CheckInDate,
		CheckOutDate: in.CheckOutDate,
		NumGuests:    in.NumGuests,
		TotalPrice:   in.TotalPrice,
		Notes:        in.Notes,
		AdminNotes:   in.AdminNotes,
	}, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toBookingResponse(booking))
}

type adminCancelBody struct {
	Reason string `json:"reason" binding:"required"`
}

// AdminCancelBooking handles POST /api/v1/admin/bookings/:id/cancel
func (h *HTTPHandler) AdminCancelBooking(c *gin.Context) {
	var in adminCancelBody
	if !bindJSON(c, &in) {
		return
	}
	booking, err := h.bookings.AdminCancelBooking(c.Request.Context(), c.Param("id"), actorFrom(c), in.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toBookingResponse(booking))
}

type discountBody struct {
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// ApplyDiscount handles POST /api/v1/admin/bookings/:id/discount
func (h *HTTPHandler) ApplyDiscount(c *gin.Context) {
	var in discountBody
	if !bindJSON(c, &in) {
		return
	}
	booking, err := h.bookings.ApplyDiscount(c.Request.Context(), c.Param("id"), in.Amount, in.Reason, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toBookingResponse(booking))
}

type paymentTypeBody struct {
	PaymentType string `json:"payment_type" binding:"required"`
}

// ChangePaymentType handles POST /api/v1/admin/bookings/:id/payment-type
func (h *HTTPHandler) ChangePaymentType(c *gin.Context) {
	var in paymentTypeBody
	if !bindJSON(c, &in) {
		return
	}
	booking, err := h.bookings.ChangePaymentType(c.Request.Context(), c.Param("id"), in.PaymentType, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toBookingResponse(booking))
}

type notesBody struct {
	Notes *string `json:"notes"`
}

type requiredNotesBody struct {
	Notes string `json:"notes" binding:"required"`
}

// VerifyBookingSlip handles POST /api/v1/admin/bookings/:id/slip/verify
func (h *HTTPHandler) VerifyBookingSlip(c *gin.Context) {
	var in notesBody
	if !bindOptionalJSON(c, &in) {
		return
	}
	slip, err := h.slips.VerifyBookingSlip(c.Request.Context(), c.Param("id"), actorFrom(c), in.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSlipResponse(slip))
}

// MarkBookingSlipNeedsAction handles POST /api/v1/admin/bookings/:id/slip/needs-action
func (h *HTTPHandler) MarkBookingSlipNeedsAction(c *gin.Context) {
	var in requiredNotesBody
	if !bindJSON(c, &in) {
		return
	}
	slip, err := h.slips.MarkBookingSlipNeedsAction(c.Request.Context(), c.Param("id"), actorFrom(c), in.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSlipResponse(slip))
}

type replaceSlipBody struct {
	SlipURL string  `json:"slip_url" binding:"required"`
	Notes   *string `json:"notes"`
}

// ReplaceSlip handles POST /api/v1/admin/bookings/:id/slip/replace
func (h *HTTPHandler) ReplaceSlip(c *gin.Context) {
	var in replaceSlipBody
	if !bindJSON(c, &in) {
		return
	}
	slip, err := h.slips.ReplaceSlip(c.Request.Context(), c.Param("id"), in.SlipURL, actorFrom(c), in.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSlipResponse(slip))
}

// AdminVerifySlip handles POST /api/v1/admin/slips/:id/verify
func (h *HTTPHandler) AdminVerifySlip(c *gin.Context) {
	var in notesBody
	if !bindOptionalJSON(c, &in) {
		return
	}
	slip, err := h.slips.AdminVerifySlip(c.Request.Context(), c.Param("id"), actorFrom(c), in.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSlipResponse(slip))
}

// MarkSlipNeedsAction handles POST /api/v1/admin/slips/:id/needs-action
func (h *HTTPHandler) MarkSlipNeedsAction(c *gin.Context) {
	var in requiredNotesBody
	if !bindJSON(c, &in) {
		return
	}
	slip, err := h.slips.MarkSlipNeedsAction(c.Request.Context(), c.Param("id"), actorFrom(c), in.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSlipResponse(slip))
}

// ── Audit ─────────────────────────────────────────────────────────────────────

// GetAuditHistory handles GET /api/v1/admin/bookings/:id/audit
func (h *HTTPHandler) GetAuditHistory(c *gin.Context) {
	records, err := h.audit.GetAuditHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toAuditResponses(records))
}

// ListAudit handles GET /api/v1/admin/audit?action=&limit=&offset=
func (h *HTTPHandler) ListAudit(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		h.respondError(c, err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	var records = []*AuditRecordResponse{}
	if action := c.Query("action"); action != "" {
		recs, err := h.audit.GetAuditByAction(ctx, action, limit, offset)
		if err != nil {
			h.respondError(c, err)
			return
		}
		records = toAuditResponses(recs)
	} else {
		recs, err := h.audit.GetRecentAuditRecords(ctx, limit, offset)
		if err != nil {
			h.respondError(c, err)
			return
		}
		records = toAuditResponses(recs)
	}
	respond(c, http.StatusOK, records)
}

type purgeBody struct {
	OlderThanDays int `json:"older_than_days" binding:"required"`
}

// PurgeAudit handles POST /api/v1/admin/audit/purge
func (h *HTTPHandler) PurgeAudit(c *gin.Context) {
	var in purgeBody
	if !bindJSON(c, &in) {
		return
	}
	deleted, err := h.audit.PurgeOldRecords(c.Request.Context(), in.OlderThanDays)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": deleted})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

func (h *HTTPHandler) respondError(c *gin.Context, err error) {
	code := errors.CodeOf(err)
	if code == errors.ErrCodeInternal {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	writeError(c, err)
}

func writeError(c *gin.Context, err error) {
	code := errors.CodeOf(err)
	msg := err.Error()
	if code == errors.ErrCodeInternal {
		msg = "internal error"
	}
	c.JSON(errors.HTTPStatus(code), gin.H{"status": "error", "code": code, "message": msg})
}

func abortWithError(c *gin.Context, err error) {
	writeError(c, err)
	c.Abort()
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errors.InvalidInput("body", err.Error()))
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, dst)
}

func queryInt(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.InvalidInput(key, "must be an integer")
	}
	return n, nil
}
