// Package controller implements the interaction pattern shared by every portal
// screen: a paged, searchable list with create/edit/delete actions, a single
// form draft with local validation, and the role gate that decides which
// screens a session can reach. Controllers never render anything — they own
// state, talk to upstream gateways and emit notices.
package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/HairulDev/tsn-asia-next/internal/api/metrics"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
	"github.com/HairulDev/tsn-asia-next/internal/core/ports"
)

// ListConfig tunes one list controller instance.
type ListConfig struct {
	// Resource names the screen in logs and metrics (e.g. "companies").
	Resource string
	// DefaultLimit is the page size before the user picks one.
	DefaultLimit int
	// ReadOnly disables deletion (the announcement viewer).
	ReadOnly bool
}

// ListView is a snapshot of a list controller for rendering.
type ListView[R any] struct {
	Items   []R              `json:"items"`
	Meta    domain.PageMeta  `json:"meta"`
	Query   domain.PageQuery `json:"query"`
	Loading bool             `json:"loading"`
}

// ListController owns the paging/search/limit state of one screen and issues
// paged queries against its gateway. Responses carry a monotonically
// increasing sequence number; only the latest issued query may replace the
// displayed page, so rapid retyping can never render a stale result
// (last-issued-wins, not last-resolved-wins).
type ListController[R any] struct {
	gateway  ports.ListGateway[R]
	notifier ports.Notifier
	log      zerolog.Logger
	cfg      ListConfig

	mu       sync.Mutex
	page     int
	limit    int
	search   string
	inflight int
	seq      uint64
	current  *domain.Page[R]
}

// NewListController builds a controller with no data loaded yet. The first
// Refresh (or Query) populates it.
func NewListController[R any](gateway ports.ListGateway[R], notifier ports.Notifier, log zerolog.Logger, cfg ListConfig) *ListController[R] {
	if !domain.ValidLimit(cfg.DefaultLimit) {
		cfg.DefaultLimit = domain.Limits[0]
	}
	return &ListController[R]{
		gateway:  gateway,
		notifier: notifier,
		log:      log.With().Str("resource", cfg.Resource).Logger(),
		cfg:      cfg,
		page:     1,
		limit:    cfg.DefaultLimit,
	}
}

// View returns the current renderable state. The previous page stays visible
// while a query is in flight or after a failed one.
func (c *ListController[R]) View() ListView[R] {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := ListView[R]{
		Query:   domain.PageQuery{Page: c.page, Limit: c.limit, Search: c.search},
		Loading: c.inflight > 0,
	}
	if c.current != nil {
		view.Items = c.current.Items
		view.Meta = c.current.Meta
	}
	if view.Items == nil {
		view.Items = []R{}
	}
	return view
}

// Loaded reports whether any page has been displayed yet. The surface issues
// the initial query on the first render of a screen.
func (c *ListController[R]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// Query performs a paged, filtered fetch and, on success, replaces the entire
// displayed page. On failure the prior page is left in place and an error
// notice is emitted. Responses superseded by a newer Query are discarded.
func (c *ListController[R]) Query(ctx context.Context, page int, search string, limit int) error {
	if !domain.ValidLimit(limit) {
		return fmt.Errorf("query %s: %w: %d", c.cfg.Resource, domain.ErrInvalidLimit, limit)
	}
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.seq++
	mine := c.seq
	c.inflight++
	c.mu.Unlock()

	q := domain.PageQuery{Page: page, Limit: limit, Search: search}
	result, err := c.gateway.List(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if err != nil {
		metrics.ListQueriesTotal.WithLabelValues(c.cfg.Resource, "error").Inc()
		c.log.Error().Err(err).Int("page", page).Str("search", search).Msg("list query failed")
		c.notifier.Notify(domain.Notice{Kind: domain.NoticeError, Message: listErrorMessage(err)})
		return fmt.Errorf("query %s: %w", c.cfg.Resource, err)
	}

	if mine != c.seq {
		metrics.StaleResponsesTotal.WithLabelValues(c.cfg.Resource).Inc()
		c.log.Debug().Uint64("seq", mine).Uint64("latest", c.seq).Msg("stale list response discarded")
		return nil
	}

	metrics.ListQueriesTotal.WithLabelValues(c.cfg.Resource, "ok").Inc()
	c.current = result
	c.page = result.Meta.Page
	if c.page < 1 {
		c.page = q.Page
	}
	c.limit = q.Limit
	c.search = q.Search
	return nil
}

// Search resets to page 1 with a new filter.
func (c *ListController[R]) Search(ctx context.Context, text string) error {
	c.mu.Lock()
	limit := c.limit
	c.mu.Unlock()
	return c.Query(ctx, 1, text, limit)
}

// ChangeLimit resets to page 1 with a new page size.
func (c *ListController[R]) ChangeLimit(ctx context.Context, limit int) error {
	if !domain.ValidLimit(limit) {
		return fmt.Errorf("change limit: %w: %d", domain.ErrInvalidLimit, limit)
	}
	c.mu.Lock()
	search := c.search
	c.mu.Unlock()
	return c.Query(ctx, 1, search, limit)
}

// ChangePage navigates to target, clamped into [1, totalPages]. The UI keeps
// boundary buttons disabled, but the controller still refuses to issue an
// out-of-range request.
func (c *ListController[R]) ChangePage(ctx context.Context, target int) error {
	c.mu.Lock()
	total := 1
	if c.current != nil && c.current.Meta.TotalPages > 0 {
		total = c.current.Meta.TotalPages
	}
	search, limit := c.search, c.limit
	c.mu.Unlock()

	if target < 1 {
		target = 1
	}
	if target > total {
		target = total
	}
	return c.Query(ctx, target, search, limit)
}

// Refresh re-queries at the current page/search/limit.
func (c *ListController[R]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	page, search, limit := c.page, c.search, c.limit
	c.mu.Unlock()
	return c.Query(ctx, page, search, limit)
}

// RequestDetail fetches a single full record. List state is never touched,
// even on failure.
func (c *ListController[R]) RequestDetail(ctx context.Context, id string) (R, error) {
	record, err := c.gateway.Get(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Str("id", id).Msg("detail fetch failed")
		c.notifier.Notify(domain.Notice{Kind: domain.NoticeError, Message: listErrorMessage(err)})
		return record, fmt.Errorf("detail %s: %w", c.cfg.Resource, err)
	}
	return record, nil
}

// RequestDelete removes one record after explicit confirmation, then
// re-queries. If the deletion emptied the tail of the result set, the page is
// clamped to the new last page instead of staying stuck out of range.
func (c *ListController[R]) RequestDelete(ctx context.Context, id string, confirmed bool) error {
	if c.cfg.ReadOnly {
		return fmt.Errorf("delete %s: %w", c.cfg.Resource, domain.ErrForbidden)
	}
	if !confirmed {
		metrics.DeletesBlockedTotal.WithLabelValues(c.cfg.Resource).Inc()
		return fmt.Errorf("delete %s: %w", c.cfg.Resource, domain.ErrConfirmationRequired)
	}

	if err := c.gateway.Delete(ctx, id); err != nil {
		metrics.WritesTotal.WithLabelValues(c.cfg.Resource, "delete", "error").Inc()
		c.log.Error().Err(err).Str("id", id).Msg("delete failed")
		c.notifier.Notify(domain.Notice{Kind: domain.NoticeError, Message: listErrorMessage(err)})
		return fmt.Errorf("delete %s: %w", c.cfg.Resource, err)
	}

	metrics.WritesTotal.WithLabelValues(c.cfg.Resource, "delete", "ok").Inc()
	c.log.Info().Str("id", id).Msg("record deleted")
	c.notifier.Notify(domain.Notice{Kind: domain.NoticeSuccess, Message: "Data berhasil dihapus"})

	if err := c.Refresh(ctx); err != nil {
		return nil // delete itself succeeded; refresh failure was already surfaced
	}

	c.mu.Lock()
	page, total := c.page, 0
	if c.current != nil {
		total = c.current.Meta.TotalPages
	}
	search, limit := c.search, c.limit
	c.mu.Unlock()

	if page > total {
		clamped := total
		if clamped < 1 {
			clamped = 1
		}
		return c.Query(ctx, clamped, search, limit)
	}
	return nil
}

// listErrorMessage prefers the upstream's own message when one exists.
func listErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
