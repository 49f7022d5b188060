package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echart-dentnu/echart-api/internal/api/metrics"
	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginRequest mirrors the legacy field names the frontend already sends.
type loginRequest struct {
	Users string `json:"Users"`
	Passw string `json:"Passw"`
}

type messageResponse struct {
	Message string `json:"Message"`
}

// Login authenticates a staff account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.TokenResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Users == "" || req.Passw == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Users, req.Passw)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginFailureLabel(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, result)
}

// Logout marks the authenticated account as logged out. The bearer token
// itself stays valid until expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LogoutsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LogoutsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LogoutsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

func loginFailureLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrWrongPassword):
		return "wrong_password"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrMissingCredentials):
		return "invalid"
	default:
		return "error"
	}
}
