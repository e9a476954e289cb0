package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HairulDev/tsn-asia-next/internal/api/middleware"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware and
// fast-fails when it is absent — presence proves the middleware ran.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
