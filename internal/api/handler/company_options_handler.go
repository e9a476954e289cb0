package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// CompanyOptions serves the user form's company select: a paged company
// search on the user management screen, independent of the company screen's
// own list state.
func (h *ScreenHandler[R, D]) CompanyOptions(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	set := h.registry.For(sess)
	if set.companyPicker == nil {
		return echo.NewHTTPError(http.StatusForbidden, "screen not available")
	}

	q := domain.PageQuery{Page: 1, Limit: 20, Search: c.QueryParam("search")}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && domain.ValidLimit(limit) {
		q.Limit = limit
	}

	result, err := set.companyPicker.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyOptionsResponse{
		Success: true,
		Data:    result.Items,
		Meta:    result.Meta,
	})
}
