package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bayanihan/restaurant-reservation/internal/utils"
)

// AdminHandler serves the operator surface: login and the day view of
// reservations.  It is only registered when both the signing secret
// and the operator password hash are configured.
type AdminHandler struct {
	Store        ReservationStore
	JWTSecret    string
	PasswordHash string // bcrypt hash of the operator password
	TokenTTLMin  int
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(store ReservationStore, jwtSecret, passwordHash string, tokenTTLMin int) *AdminHandler {
	if store == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{
		Store:        store,
		JWTSecret:    jwtSecret,
		PasswordHash: passwordHash,
		TokenTTLMin:  tokenTTLMin,
	}
}

// Login handles POST /api/admin/login.  There is a single operator
// account; the submitted password is checked against the configured
// bcrypt hash and a short-lived admin token is issued on success.
func (h *AdminHandler) Login(c echo.Context) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}
	if !utils.VerifyPassword(h.PasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAdminToken(h.JWTSecret, h.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":      tok.Token,
		"expires_at": tok.Exp.Format(time.RFC3339),
	})
}

// ListReservations handles GET /api/admin/reservations?date=YYYY-MM-DD.
// It returns every reservation for the date, active and cancelled,
// joined with table numbers for the floor plan.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" || !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required (YYYY-MM-DD)"})
	}
	items, err := h.Store.ListByDate(c.Request().Context(), date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
