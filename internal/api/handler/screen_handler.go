package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// ScreenHandler exposes one screen's controllers over HTTP. The four screens
// are instances of this one type; only their record/draft types and gateway
// paths differ.
type ScreenHandler[R any, D any] struct {
	registry *Registry
	pick     func(*ScreenSet) *screenPair[R, D]
}

func NewScreenHandler[R any, D any](registry *Registry, pick func(*ScreenSet) *screenPair[R, D]) *ScreenHandler[R, D] {
	return &ScreenHandler[R, D]{registry: registry, pick: pick}
}

// Register mounts the screen's routes on g. Read-only screens get neither
// form nor delete routes.
func (h *ScreenHandler[R, D]) Register(g *echo.Group, readOnly bool) {
	g.GET("", h.View)
	g.POST("/search", h.Search)
	g.POST("/page", h.Page)
	g.POST("/limit", h.Limit)
	g.GET("/items/:id", h.Detail)
	if readOnly {
		return
	}
	g.DELETE("/items/:id", h.Delete)
	g.POST("/form/create", h.FormCreate)
	g.POST("/form/edit/:id", h.FormEdit)
	g.POST("/form/cancel", h.FormCancel)
	g.POST("/form/validate", h.FormValidate)
	g.POST("/form/submit", h.FormSubmit)
}

func (h *ScreenHandler[R, D]) pair(c echo.Context) (*ScreenSet, *screenPair[R, D], error) {
	sess, err := ctxSession(c)
	if err != nil {
		return nil, nil, err
	}
	set := h.registry.For(sess)
	pair := h.pick(set)
	if pair == nil {
		// the role gate should have stopped this request already
		return nil, nil, echo.NewHTTPError(http.StatusForbidden, "screen not available")
	}
	return set, pair, nil
}

func (h *ScreenHandler[R, D]) respondView(c echo.Context, set *ScreenSet, pair *screenPair[R, D]) error {
	view := screenView[R, D]{
		List:    pair.list.View(),
		Notices: set.notices.Drain(),
	}
	if pair.form != nil {
		fv := pair.form.View()
		view.Form = &fv
	}
	return c.JSON(http.StatusOK, screenResponse[R, D]{Success: true, Data: view})
}

// View renders the screen's current state, issuing the initial query on the
// first render. A failed initial query still renders: the empty list plus the
// error notice, exactly like a failed refresh later on.
func (h *ScreenHandler[R, D]) View(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	if !pair.list.Loaded() {
		_ = pair.list.Refresh(c.Request().Context())
	}
	return h.respondView(c, set, pair)
}

// Search resets to page 1 with a new filter and re-renders.
func (h *ScreenHandler[R, D]) Search(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := pair.list.Search(c.Request().Context(), req.Query); err != nil {
		return err
	}
	return h.respondView(c, set, pair)
}

// Page navigates to the requested page (clamped) and re-renders.
func (h *ScreenHandler[R, D]) Page(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := pair.list.ChangePage(c.Request().Context(), req.Page); err != nil {
		return err
	}
	return h.respondView(c, set, pair)
}

// Limit switches the page size (resetting to page 1) and re-renders.
func (h *ScreenHandler[R, D]) Limit(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	var req limitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := pair.list.ChangeLimit(c.Request().Context(), req.Limit); err != nil {
		return err
	}
	return h.respondView(c, set, pair)
}

// Detail fetches one full record without touching list state.
func (h *ScreenHandler[R, D]) Detail(c echo.Context) error {
	_, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	record, err := pair.list.RequestDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse[R]{Success: true, Data: record})
}

// Delete removes a record. The destructive call is only issued when the
// request carries confirm=true.
func (h *ScreenHandler[R, D]) Delete(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	confirmed := c.QueryParam("confirm") == "true"
	if err := pair.list.RequestDelete(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return err
	}
	return h.respondView(c, set, pair)
}

// FormCreate opens a fresh create-mode draft.
func (h *ScreenHandler[R, D]) FormCreate(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	pair.form.OpenCreate()
	return h.respondView(c, set, pair)
}

// FormEdit fetches the record and opens an edit-mode draft populated from it.
func (h *ScreenHandler[R, D]) FormEdit(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	if _, err := pair.form.OpenEdit(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return h.respondView(c, set, pair)
}

// FormCancel destroys the draft without submitting.
func (h *ScreenHandler[R, D]) FormCancel(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	pair.form.Cancel()
	return h.respondView(c, set, pair)
}

// FormValidate evaluates a draft without submitting — the validate-on-change
// path for thin clients.
func (h *ScreenHandler[R, D]) FormValidate(c echo.Context) error {
	_, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	var draft D
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	verr := pair.form.Validate(draft)
	resp := validateResponse{Success: true, Valid: verr == nil, Errors: []domain.FieldError{}}
	if verr != nil {
		resp.Errors = verr.Fields
	}
	return c.JSON(http.StatusOK, resp)
}

// FormSubmit validates and dispatches the draft (create or update per mode).
func (h *ScreenHandler[R, D]) FormSubmit(c echo.Context) error {
	set, pair, err := h.pair(c)
	if err != nil {
		return err
	}
	var draft D
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := pair.form.Submit(c.Request().Context(), draft); err != nil {
		return err
	}
	return h.respondView(c, set, pair)
}
