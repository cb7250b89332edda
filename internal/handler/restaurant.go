package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bayanihan/restaurant-reservation/internal/model"
)

// GetRestaurant handles GET /api/restaurant/:id.  There is a single
// restaurant, so the id is accepted but ignored and the fixed metadata
// with weekly operating hours is returned.  No database access.
func GetRestaurant(c echo.Context) error {
	return c.JSON(http.StatusOK, model.DefaultRestaurant())
}
