package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/httpresp"
	ucBooking "github.com/handykonnect/handykonnect-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC     *ucBooking.CreateBooking
	transitionUC *ucBooking.TransitionBooking
	listUC       *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	transitionUC *ucBooking.TransitionBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID   uint      `json:"service_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Address     string    `json:"address" binding:"required"`
	Notes       string    `json:"notes"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	act := actorFrom(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:       act,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_booking", "Could not create booking.")
		return
	}

	c.JSON(201, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	act := actorFrom(c)

	bookings, err := h.listUC.ForClient(c.Request.Context(), act.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	act := actorFrom(c)

	bookings, err := h.listUC.All(c.Request.Context(), act)
	if err != nil {
		writeBusinessError(c, err, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// TRANSITION
// ======================================================

func (h *BookingHandler) Transition(c *gin.Context) {
	act := actorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A target status is required.")
		return
	}

	b, err := h.transitionUC.Execute(
		c.Request.Context(),
		uint(id),
		domain.Status(req.Status),
		act,
	)
	if err != nil {
		writeBusinessError(c, err, "failed_to_update_booking", "Could not update booking.")
		return
	}

	c.JSON(200, b)
}
