package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bayanihan/restaurant-reservation/internal/cache"
	"github.com/bayanihan/restaurant-reservation/internal/schedule"
)

// AvailabilityHandler computes the free time slots for a requested
// date and party size.  Results are cached per (date, partySize); the
// reservation handler invalidates the date whenever a booking changes.
type AvailabilityHandler struct {
	Tables       TableStore
	Reservations ReservationStore
	Cache        *cache.Availability // nil disables caching
}

// NewAvailabilityHandler constructs an AvailabilityHandler.  The cache
// may be nil.
func NewAvailabilityHandler(tables TableStore, reservations ReservationStore, c *cache.Availability) *AvailabilityHandler {
	if tables == nil || reservations == nil {
		panic("nil store passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{Tables: tables, Reservations: reservations, Cache: c}
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD&partySize=N.
// It returns the ordered list of slot start times for which at least
// one sufficiently large table is free for a full seating window.  An
// empty list is a valid answer: fully booked, or no table big enough.
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	date := c.QueryParam("date")
	partyRaw := c.QueryParam("partySize")
	if date == "" || partyRaw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing date or party size"})
	}
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date"})
	}
	partySize, err := strconv.Atoi(partyRaw)
	if err != nil || partySize <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid party size"})
	}

	ctx := c.Request().Context()
	cached, ver, ok := h.Cache.Get(ctx, date, partySize)
	if ok {
		return c.JSON(http.StatusOK, echo.Map{"availableSlots": cached})
	}

	tables, err := h.Tables.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	bookings, err := h.Reservations.ListActiveByDate(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	slots := schedule.AvailableSlots(tables, bookings, partySize)
	// Stored under the version observed before the database reads, so a
	// booking racing this computation leaves the entry unreachable.
	h.Cache.Set(ctx, date, partySize, ver, slots)
	return c.JSON(http.StatusOK, echo.Map{"availableSlots": slots})
}
