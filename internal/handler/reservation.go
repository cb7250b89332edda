package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bayanihan/restaurant-reservation/internal/cache"
	"github.com/bayanihan/restaurant-reservation/internal/model"
	"github.com/bayanihan/restaurant-reservation/internal/queue"
	"github.com/bayanihan/restaurant-reservation/internal/repository"
	"github.com/bayanihan/restaurant-reservation/internal/schedule"
	queue_publisher "github.com/bayanihan/restaurant-reservation/internal/service"
	"github.com/bayanihan/restaurant-reservation/internal/utils"
)

// Notifier delivers a confirmation message for a persisted
// reservation.  Implementations must be best-effort; the handler logs
// and ignores any error.
type Notifier interface {
	SendConfirmation(res model.Reservation, confirmation string) error
}

// ReservationHandler owns the booking write path and reservation
// lookup/cancellation.  All validation happens before any write; the
// store's Reserve is the only way a reservation row comes into being.
type ReservationHandler struct {
	Store   ReservationStore
	Tables  TableStore
	Cache   *cache.Availability // nil disables cache invalidation
	Mailer  Notifier            // nil disables email entirely
	AMQPURL string              // empty disables event publishing

	// publish is swapped out in tests; defaults to the RabbitMQ publisher.
	publish func(ctx context.Context, url string, ev queue.ReservationConfirmedEvent) error
}

// NewReservationHandler constructs a ReservationHandler.  Cache and
// Mailer may be nil; AMQPURL may be empty.
func NewReservationHandler(store ReservationStore, tables TableStore, c *cache.Availability, mailer Notifier, amqpURL string) *ReservationHandler {
	if store == nil || tables == nil {
		panic("nil store passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Store:   store,
		Tables:  tables,
		Cache:   c,
		Mailer:  mailer,
		AMQPURL: amqpURL,
		publish: queue_publisher.PublishReservationConfirmed,
	}
}

// createRequest is the POST /api/reservations body.  PartySize is a
// json.Number so an absent field, a zero, and a fractional value can
// each be rejected with a distinct check instead of all collapsing to
// the int zero value.
type createRequest struct {
	GuestName  string      `json:"guestName"`
	GuestEmail string      `json:"guestEmail"`
	GuestPhone string      `json:"guestPhone"`
	PartySize  json.Number `json:"partySize"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
}

// reservationResponse is the persisted row plus the public confirmation
// number derived from its id.
type reservationResponse struct {
	model.Reservation
	ConfirmationNumber string `json:"confirmationNumber"`
	Message            string `json:"message,omitempty"`
}

// Create handles POST /api/reservations.  Validation short-circuits in
// a fixed order before any write: required fields, time normalization,
// party size parsing, the schema ceiling, the largest-table bound, and
// finally the atomic reserve-if-free.  On success the confirmation
// number is derived from the new row's id and notification is fired
// best-effort; a notification failure never fails the booking.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.GuestName == "" || req.GuestEmail == "" || req.PartySize.String() == "" || req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}
	if !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date"})
	}
	start, err := schedule.NormalizeTime(req.Time)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid time"})
	}
	partySize64, err := req.PartySize.Int64()
	if err != nil || partySize64 <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid party size"})
	}
	partySize := int(partySize64)
	if partySize > schedule.MaxPartySize {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Party size exceeds the maximum we can seat"})
	}

	ctx := c.Request().Context()
	maxCap, err := h.Tables.MaxCapacity(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	if partySize > maxCap {
		return c.JSON(http.StatusConflict, echo.Map{"error": "No table large enough for this party"})
	}

	res := &model.Reservation{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		PartySize:  partySize,
		Date:       req.Date,
		Time:       start,
	}
	table, err := h.Store.Reserve(ctx, res)
	if err != nil {
		if errors.Is(err, repository.ErrNoFreeTable) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "No available tables for this time slot"})
		}
		log.Printf("reservation: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}

	confirmation := utils.EncodeConfirmation(res.ID)
	h.notify(*res, table, confirmation)
	h.Cache.InvalidateDate(ctx, res.Date)

	return c.JSON(http.StatusCreated, reservationResponse{
		Reservation:        *res,
		ConfirmationNumber: confirmation,
		Message:            "Reservation created successfully",
	})
}

// notify fires the confirmation email and the reservation.confirmed
// event.  Both paths log and swallow failures.
func (h *ReservationHandler) notify(res model.Reservation, table model.Table, confirmation string) {
	if h.Mailer != nil {
		if err := h.Mailer.SendConfirmation(res, confirmation); err != nil {
			log.Printf("reservation: confirmation notify failed for %s: %v", confirmation, err)
		}
	}
	if h.AMQPURL == "" {
		return
	}
	ev := queue.ReservationConfirmedEvent{
		ReservationID:      res.ID,
		ConfirmationNumber: confirmation,
		GuestName:          res.GuestName,
		GuestEmail:         res.GuestEmail,
		PartySize:          res.PartySize,
		Date:               res.Date,
		Time:               res.Time,
		TableNumber:        table.TableNumber,
		ConfirmedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.publish(ctx, h.AMQPURL, ev)
	}()
}

// Get handles GET /api/reservations/:id.  The path parameter is either
// a raw numeric id or a confirmation number; a value carrying the
// confirmation prefix must be a well-formed code.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := utils.ParseReservationRef(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid reservation reference"})
	}
	res, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	return c.JSON(http.StatusOK, res)
}

// Cancel handles DELETE /api/reservations/:id.  Cancellation flips the
// status to cancelled and frees the table for the former slot; it is
// idempotent, so cancelling twice succeeds both times.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := utils.ParseReservationRef(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid reservation reference"})
	}
	ctx := c.Request().Context()
	res, err := h.Store.CancelByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	h.Cache.InvalidateDate(ctx, res.Date)
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Reservation cancelled successfully",
		"reservation": res,
	})
}
