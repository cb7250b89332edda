package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihan/restaurant-reservation/internal/handler"
	"github.com/bayanihan/restaurant-reservation/internal/schedule"
)

func availabilityResponse(t *testing.T, body []byte) []string {
	t.Helper()
	var resp struct {
		AvailableSlots []string `json:"availableSlots"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.AvailableSlots
}

func TestGetAvailabilityMissingParams(t *testing.T) {
	h := handler.NewAvailabilityHandler(newFakeTables(), newFakeStore(), nil)

	for _, target := range []string{
		"/api/availability",
		"/api/availability?date=2026-09-01",
		"/api/availability?partySize=4",
	} {
		c, rec := request(http.MethodGet, target, "")
		require.NoError(t, h.GetAvailability(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestGetAvailabilityInvalidParams(t *testing.T) {
	h := handler.NewAvailabilityHandler(newFakeTables(), newFakeStore(), nil)

	for _, target := range []string{
		"/api/availability?date=2026-09-01&partySize=abc",
		"/api/availability?date=2026-09-01&partySize=0",
		"/api/availability?date=2026-09-01&partySize=-2",
		"/api/availability?date=not-a-date&partySize=4",
	} {
		c, rec := request(http.MethodGet, target, "")
		require.NoError(t, h.GetAvailability(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestGetAvailabilityEmptyDay(t *testing.T) {
	h := handler.NewAvailabilityHandler(newFakeTables(), newFakeStore(), nil)

	c, rec := request(http.MethodGet, "/api/availability?date=2026-09-01&partySize=4", "")
	require.NoError(t, h.GetAvailability(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, schedule.Slots(), availabilityResponse(t, rec.Body.Bytes()))
}

func TestGetAvailabilityExcludesBookedWindows(t *testing.T) {
	store := newFakeStore()
	// Every table that seats four or more is taken at 18:00.
	store.bookings = []schedule.Booking{
		{TableID: 3, Start: "18:00:00"},
		{TableID: 4, Start: "18:00:00"},
		{TableID: 5, Start: "18:00:00"},
		{TableID: 6, Start: "18:00:00"},
	}
	h := handler.NewAvailabilityHandler(newFakeTables(), store, nil)

	c, rec := request(http.MethodGet, "/api/availability?date=2026-09-01&partySize=4", "")
	require.NoError(t, h.GetAvailability(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"20:00:00", "20:30:00", "21:00:00", "21:30:00"},
		availabilityResponse(t, rec.Body.Bytes()))
}

func TestGetAvailabilityNoTableBigEnough(t *testing.T) {
	h := handler.NewAvailabilityHandler(newFakeTables(), newFakeStore(), nil)

	c, rec := request(http.MethodGet, "/api/availability?date=2026-09-01&partySize=7", "")
	require.NoError(t, h.GetAvailability(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, availabilityResponse(t, rec.Body.Bytes()))
}
