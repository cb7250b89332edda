package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is a simple liveness endpoint used by load balancers and
// monitoring systems.  It reports a running status with the current
// timestamp.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "Server is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
