package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HairulDev/tsn-asia-next/internal/core/controller"
)

// NavigationHandler answers which screens the session's role may reach.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Navigation returns the role's menu. Unrecognised roles get an empty menu,
// never an error — the gate fails closed, not loud.
//
// @Summary      Navigation entries for the current role
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  errorResponse
// @Router       /navigation [get]
func (h *NavigationHandler) Navigation(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, navigationResponse{
		Success: true,
		Data:    controller.NavigationFor(sess.Role),
	})
}
