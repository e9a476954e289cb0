package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HairulDev/tsn-asia-next/internal/core/controller"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// RequireScreen blocks sessions whose role may not reach screen. Unknown or
// absent roles are denied — the gate fails closed.
func RequireScreen(screen domain.Screen) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(SessionKey).(*domain.Session)
			if sess == nil || !controller.CanAccess(sess.Role, screen) {
				return c.JSON(http.StatusForbidden, map[string]any{
					"success": false,
					"message": "forbidden",
				})
			}
			return next(c)
		}
	}
}
