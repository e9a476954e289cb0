package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub gateway
// ---------------------------------------------------------------------------

type stubCompanyGateway struct {
	mu        sync.Mutex
	companies []domain.Company
	listErr   error
	getErr    error
	deleteErr error

	listCalls   int
	deleteCalls []string

	// holdSearch blocks List calls carrying this search text until release
	// is closed, so tests can interleave an overlapping query.
	holdSearch string
	release    chan struct{}
}

func newStubCompanyGateway(n int) *stubCompanyGateway {
	g := &stubCompanyGateway{}
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta"}
	for i := 0; i < n; i++ {
		g.companies = append(g.companies, domain.Company{
			ID:   names[i%len(names)],
			Name: names[i%len(names)],
		})
	}
	return g
}

func (g *stubCompanyGateway) List(_ context.Context, q domain.PageQuery) (*domain.Page[domain.Company], error) {
	g.mu.Lock()
	g.listCalls++
	hold := g.holdSearch != "" && q.Search == g.holdSearch
	release := g.release
	listErr := g.listErr
	var matched []domain.Company
	for _, c := range g.companies {
		if q.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, c)
	}
	g.mu.Unlock()

	if hold {
		<-release
	}
	if listErr != nil {
		return nil, listErr
	}

	total := len(matched)
	totalPages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	var items []domain.Company
	if start < total {
		end := start + q.Limit
		if end > total {
			end = total
		}
		items = matched[start:end]
	}
	return &domain.Page[domain.Company]{
		Items: items,
		Meta: domain.PageMeta{
			Page:        q.Page,
			Limit:       q.Limit,
			TotalItems:  total,
			TotalPages:  totalPages,
			HasNextPage: q.Page < totalPages,
			HasPrevPage: q.Page > 1,
			SearchQuery: q.Search,
		},
	}, nil
}

func (g *stubCompanyGateway) Get(_ context.Context, id string) (domain.Company, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.getErr != nil {
		return domain.Company{}, g.getErr
	}
	for _, c := range g.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrNotFound
}

func (g *stubCompanyGateway) Delete(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleteCalls = append(g.deleteCalls, id)
	if g.deleteErr != nil {
		return g.deleteErr
	}
	kept := g.companies[:0]
	for _, c := range g.companies {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	g.companies = kept
	return nil
}

func newListUnderTest(g *stubCompanyGateway, cfg ListConfig) (*ListController[domain.Company], *NoticeFeed) {
	feed := NewNoticeFeed(0)
	if cfg.Resource == "" {
		cfg.Resource = "companies"
	}
	return NewListController[domain.Company](g, feed, zerolog.Nop(), cfg), feed
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestListController_InitialRefresh(t *testing.T) {
	g := newStubCompanyGateway(5)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2})

	if c.Loaded() {
		t.Fatalf("controller should start with no page loaded")
	}
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !c.Loaded() {
		t.Fatalf("page should be loaded after refresh")
	}

	view := c.View()
	if len(view.Items) != 2 {
		t.Fatalf("expected 2 items on first page, got %d", len(view.Items))
	}
	if view.Meta.TotalItems != 5 || view.Meta.TotalPages != 3 {
		t.Fatalf("unexpected meta: %+v", view.Meta)
	}
	if view.Query.Page != 1 || view.Query.Limit != 2 {
		t.Fatalf("unexpected query state: %+v", view.Query)
	}
}

func TestListController_DefaultLimitFallback(t *testing.T) {
	g := newStubCompanyGateway(3)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 7}) // not a selectable size

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := c.View().Query.Limit; got != domain.Limits[0] {
		t.Fatalf("expected fallback limit %d, got %d", domain.Limits[0], got)
	}
}

func TestListController_SearchResetsToFirstPage(t *testing.T) {
	g := newStubCompanyGateway(7)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2})
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := c.ChangePage(ctx, 3); err != nil {
		t.Fatalf("change page: %v", err)
	}
	if err := c.Search(ctx, "alpha"); err != nil {
		t.Fatalf("search: %v", err)
	}

	view := c.View()
	if view.Query.Page != 1 {
		t.Fatalf("search should reset to page 1, got %d", view.Query.Page)
	}
	if view.Query.Search != "alpha" {
		t.Fatalf("search text not retained: %q", view.Query.Search)
	}
	if view.Meta.SearchQuery != "alpha" {
		t.Fatalf("meta should echo the filter: %+v", view.Meta)
	}
}

func TestListController_ChangeLimitResetsToFirstPage(t *testing.T) {
	g := newStubCompanyGateway(7)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2})
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := c.ChangePage(ctx, 2); err != nil {
		t.Fatalf("change page: %v", err)
	}
	if err := c.ChangeLimit(ctx, 5); err != nil {
		t.Fatalf("change limit: %v", err)
	}

	view := c.View()
	if view.Query.Page != 1 || view.Query.Limit != 5 {
		t.Fatalf("expected page 1 limit 5, got %+v", view.Query)
	}
}

func TestListController_InvalidLimitRejected(t *testing.T) {
	g := newStubCompanyGateway(3)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2})

	err := c.ChangeLimit(context.Background(), 3)
	if !errors.Is(err, domain.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
	if g.listCalls != 0 {
		t.Fatalf("invalid limit must not reach the gateway")
	}
}

func TestListController_ChangePageClampsToBounds(t *testing.T) {
	g := newStubCompanyGateway(5) // 3 pages at limit 2
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2})
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if err := c.ChangePage(ctx, 99); err != nil {
		t.Fatalf("change page: %v", err)
	}
	if got := c.View().Query.Page; got != 3 {
		t.Fatalf("expected clamp to last page 3, got %d", got)
	}

	if err := c.ChangePage(ctx, -4); err != nil {
		t.Fatalf("change page: %v", err)
	}
	if got := c.View().Query.Page; got != 1 {
		t.Fatalf("expected clamp to page 1, got %d", got)
	}
}

func TestListController_QueryFailureKeepsPriorPage(t *testing.T) {
	g := newStubCompanyGateway(5)
	c, feed := newListUnderTest(g, ListConfig{DefaultLimit: 2})
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	before := c.View()
	feed.Drain()

	g.mu.Lock()
	g.listErr = errors.New("upstream down")
	g.mu.Unlock()

	if err := c.ChangePage(ctx, 2); err == nil {
		t.Fatalf("expected query error")
	}

	after := c.View()
	if after.Query.Page != before.Query.Page {
		t.Fatalf("failed query must not move the page: %d -> %d", before.Query.Page, after.Query.Page)
	}
	if len(after.Items) != len(before.Items) {
		t.Fatalf("failed query must keep prior items")
	}

	notices := feed.Drain()
	if len(notices) != 1 || notices[0].Kind != domain.NoticeError {
		t.Fatalf("expected one error notice, got %+v", notices)
	}
}

func TestListController_StaleResponseDiscarded(t *testing.T) {
	g := newStubCompanyGateway(5)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2})
	ctx := context.Background()

	g.release = make(chan struct{})
	g.holdSearch = "slow"

	done := make(chan error, 1)
	go func() {
		done <- c.Search(ctx, "slow")
	}()

	// Wait until the slow query is parked inside the gateway.
	for {
		g.mu.Lock()
		started := g.listCalls >= 1
		g.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// A newer query supersedes it and completes first.
	if err := c.Search(ctx, "alpha"); err != nil {
		t.Fatalf("second search: %v", err)
	}

	close(g.release)
	if err := <-done; err != nil {
		t.Fatalf("superseded search should not error: %v", err)
	}

	view := c.View()
	if view.Query.Search != "alpha" {
		t.Fatalf("stale response overwrote the newer one: %+v", view.Query)
	}
	if view.Meta.SearchQuery != "alpha" {
		t.Fatalf("stale meta applied: %+v", view.Meta)
	}
}

func TestListController_DeleteRequiresConfirmation(t *testing.T) {
	g := newStubCompanyGateway(3)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2})

	err := c.RequestDelete(context.Background(), "Alpha", false)
	if !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if len(g.deleteCalls) != 0 {
		t.Fatalf("unconfirmed delete must not reach the gateway")
	}
}

func TestListController_ReadOnlyDeleteForbidden(t *testing.T) {
	g := newStubCompanyGateway(3)
	c, _ := newListUnderTest(g, ListConfig{DefaultLimit: 2, ReadOnly: true})

	err := c.RequestDelete(context.Background(), "Alpha", true)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(g.deleteCalls) != 0 {
		t.Fatalf("read-only delete must not reach the gateway")
	}
}

func TestListController_DeleteClampsEmptiedLastPage(t *testing.T) {
	g := newStubCompanyGateway(5) // 3 pages at limit 2, last page has 1 row
	c, feed := newListUnderTest(g, ListConfig{DefaultLimit: 2})
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := c.ChangePage(ctx, 3); err != nil {
		t.Fatalf("change page: %v", err)
	}
	last := c.View()
	if len(last.Items) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(last.Items))
	}

	if err := c.RequestDelete(ctx, last.Items[0].ID, true); err != nil {
		t.Fatalf("delete: %v", err)
	}

	view := c.View()
	if view.Query.Page != 2 {
		t.Fatalf("expected clamp to new last page 2, got %d", view.Query.Page)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected a full page after clamp, got %d items", len(view.Items))
	}

	var success bool
	for _, n := range feed.Drain() {
		if n.Kind == domain.NoticeSuccess {
			success = true
		}
	}
	if !success {
		t.Fatalf("expected a success notice after delete")
	}
}

func TestListController_DetailFailureLeavesListUntouched(t *testing.T) {
	g := newStubCompanyGateway(3)
	c, feed := newListUnderTest(g, ListConfig{DefaultLimit: 2})
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	before := c.View()
	feed.Drain()

	g.mu.Lock()
	g.getErr = errors.New("boom")
	g.mu.Unlock()

	if _, err := c.RequestDetail(ctx, "Alpha"); err == nil {
		t.Fatalf("expected detail error")
	}

	after := c.View()
	if after.Query != before.Query || len(after.Items) != len(before.Items) {
		t.Fatalf("detail failure must not disturb list state")
	}
	if notices := feed.Drain(); len(notices) != 1 {
		t.Fatalf("expected one error notice, got %d", len(notices))
	}
}
