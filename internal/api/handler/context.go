package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apimw "github.com/echart-dentnu/echart-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated account id from the token subject
// injected by the Auth middleware. A missing or non-integer subject means
// the token was issued with a broken identity claim: reject with 401
// before any service call.
func ctxUserID(c echo.Context) (int, error) {
	sub, _ := c.Get(apimw.CtxSubject).(string)
	userID, err := strconv.Atoi(sub)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid user identifier in token")
	}
	return userID, nil
}
