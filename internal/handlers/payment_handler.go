package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/httpresp"
	ucPayment "github.com/handykonnect/handykonnect-api/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	createIntentUC *ucPayment.CreateIntent
	confirmUC      *ucPayment.ConfirmPayment
	manualUC       *ucPayment.RecordManualPayment
	refundUC       *ucPayment.RefundPayment
	listUC         *ucPayment.ListPayments
}

func NewPaymentHandler(
	createIntentUC *ucPayment.CreateIntent,
	confirmUC *ucPayment.ConfirmPayment,
	manualUC *ucPayment.RecordManualPayment,
	refundUC *ucPayment.RefundPayment,
	listUC *ucPayment.ListPayments,
) *PaymentHandler {
	return &PaymentHandler{
		createIntentUC: createIntentUC,
		confirmUC:      confirmUC,
		manualUC:       manualUC,
		refundUC:       refundUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateIntentRequest struct {
	BookingID uint    `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type ManualPaymentRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Method    string `json:"method" binding:"required"`
}

// ======================================================
// CARD FLOW
// ======================================================

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	act := actorFrom(c)

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment data.")
		return
	}

	out, err := h.createIntentUC.Execute(c.Request.Context(), ucPayment.CreateIntentInput{
		Actor:     act,
		BookingID: req.BookingID,
		Amount:    req.Amount,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_intent", "Could not initialize payment.")
		return
	}

	c.JSON(200, gin.H{
		"client_secret": out.ClientSecret,
		"payment_id":    out.Payment.ID,
	})
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A payment intent id is required.")
		return
	}

	p, err := h.confirmUC.Execute(c.Request.Context(), req.PaymentIntentID)
	if err != nil {
		writeBusinessError(c, err, "failed_to_confirm_payment", "Could not confirm payment.")
		return
	}

	c.JSON(200, gin.H{
		"status":  p.Status,
		"payment": p,
	})
}

// ======================================================
// MANUAL FLOW (bank transfer / bitcoin)
// ======================================================

func (h *PaymentHandler) RecordManual(c *gin.Context) {
	act := actorFrom(c)

	var req ManualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment data.")
		return
	}

	p, err := h.manualUC.Execute(c.Request.Context(), ucPayment.RecordManualInput{
		Actor:     act,
		BookingID: req.BookingID,
		Method:    domain.Method(req.Method),
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_record_payment", "Could not record payment.")
		return
	}

	c.JSON(200, gin.H{
		"status":  p.Status,
		"payment": p,
	})
}

// ======================================================
// REFUND
// ======================================================

func (h *PaymentHandler) Refund(c *gin.Context) {
	act := actorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_id", "Invalid payment id.")
		return
	}

	out, err := h.refundUC.Execute(c.Request.Context(), uint(id), act)
	if err != nil {
		writeBusinessError(c, err, "failed_to_process_refund", "Could not process refund.")
		return
	}

	c.JSON(200, gin.H{
		"success":   true,
		"refund_id": out.RefundID,
		"status":    out.Status,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *PaymentHandler) ListMine(c *gin.Context) {
	act := actorFrom(c)

	payments, err := h.listUC.ForClient(c.Request.Context(), act.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Could not load payments.")
		return
	}

	httpresp.List(c, payments)
}

func (h *PaymentHandler) ListAll(c *gin.Context) {
	act := actorFrom(c)

	payments, err := h.listUC.All(c.Request.Context(), act)
	if err != nil {
		writeBusinessError(c, err, "failed_to_list_payments", "Could not load payments.")
		return
	}

	httpresp.List(c, payments)
}
