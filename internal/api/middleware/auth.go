package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/echart-dentnu/echart-api/internal/infrastructure/auth"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxSubject  = "sub"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth validates the bearer token and injects the subject, username and
// role claims into the echo context. Signature, issuer, audience and
// lifetime are all checked by the issuer's Parse with zero skew tolerance.
func Auth(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxSubject, claims.Subject)
			c.Set(CtxUsername, claims.Name)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
