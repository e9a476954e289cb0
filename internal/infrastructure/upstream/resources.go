package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// resourceGateway is one CRUD surface of the backend, parameterised by record
// and draft type. The four concrete gateways below differ only in paths.
type resourceGateway[R any, D any] struct {
	c        *Client
	listPath string
	// getPath maps an id to its detail endpoint. The admin screens use
	// "<base>/{id}"; the viewer uses "/announcements/detail/{id}".
	getPath  func(id string) string
	basePath string
	// readOnly gateways reject writes locally; the viewer never mutates.
	readOnly bool
}

// List performs GET <listPath>?search=&page=&limit= and parses the page.
func (g *resourceGateway[R, D]) List(ctx context.Context, q domain.PageQuery) (*domain.Page[R], error) {
	query := url.Values{}
	query.Set("search", q.Search)
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))

	raw, status, err := g.c.do(ctx, http.MethodGet, g.listPath, query, nil)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(g.listPath, status, raw)
	if err != nil {
		return nil, err
	}
	return parsePage[R](g.listPath, env)
}

// Get fetches one full record.
func (g *resourceGateway[R, D]) Get(ctx context.Context, id string) (R, error) {
	path := g.getPath(id)
	var record R
	raw, status, err := g.c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return record, err
	}
	env, err := decodeEnvelope(path, status, raw)
	if err != nil {
		return record, err
	}
	return parseRecord[R](path, env)
}

// Create POSTs a draft to the collection endpoint.
func (g *resourceGateway[R, D]) Create(ctx context.Context, draft D) error {
	if g.readOnly {
		return fmt.Errorf("create %s: %w", g.basePath, domain.ErrForbidden)
	}
	raw, status, err := g.c.do(ctx, http.MethodPost, g.basePath, nil, draft)
	if err != nil {
		return err
	}
	_, err = decodeEnvelope(g.basePath, status, raw)
	return err
}

// Update PUTs a draft to the record endpoint.
func (g *resourceGateway[R, D]) Update(ctx context.Context, id string, draft D) error {
	if g.readOnly {
		return fmt.Errorf("update %s: %w", g.basePath, domain.ErrForbidden)
	}
	path := g.basePath + "/" + id
	raw, status, err := g.c.do(ctx, http.MethodPut, path, nil, draft)
	if err != nil {
		return err
	}
	_, err = decodeEnvelope(path, status, raw)
	return err
}

// Delete removes one record.
func (g *resourceGateway[R, D]) Delete(ctx context.Context, id string) error {
	if g.readOnly {
		return fmt.Errorf("delete %s: %w", g.basePath, domain.ErrForbidden)
	}
	path := g.basePath + "/" + id
	raw, status, err := g.c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	_, err = decodeEnvelope(path, status, raw)
	return err
}

// CompanyGateway serves the company management screen.
type CompanyGateway struct {
	resourceGateway[domain.Company, domain.CompanyDraft]
}

func (c *Client) Companies() *CompanyGateway {
	return &CompanyGateway{resourceGateway[domain.Company, domain.CompanyDraft]{
		c:        c,
		listPath: "/companies",
		basePath: "/companies",
		getPath:  func(id string) string { return "/companies/" + id },
	}}
}

// UserGateway serves the user management screen.
type UserGateway struct {
	resourceGateway[domain.User, domain.UserDraft]
}

func (c *Client) Users() *UserGateway {
	return &UserGateway{resourceGateway[domain.User, domain.UserDraft]{
		c:        c,
		listPath: "/users",
		basePath: "/users",
		getPath:  func(id string) string { return "/users/" + id },
	}}
}

// AnnouncementGateway serves the announcement authoring screen.
type AnnouncementGateway struct {
	resourceGateway[domain.Announcement, domain.AnnouncementDraft]
}

func (c *Client) Announcements() *AnnouncementGateway {
	return &AnnouncementGateway{resourceGateway[domain.Announcement, domain.AnnouncementDraft]{
		c:        c,
		listPath: "/announcements",
		basePath: "/announcements",
		getPath:  func(id string) string { return "/announcements/" + id },
	}}
}

// AnnouncementFeedGateway serves the read-only viewer: titles without content
// for the list, the dedicated detail endpoint for full records.
type AnnouncementFeedGateway struct {
	resourceGateway[domain.Announcement, domain.AnnouncementDraft]
}

func (c *Client) AnnouncementFeed() *AnnouncementFeedGateway {
	return &AnnouncementFeedGateway{resourceGateway[domain.Announcement, domain.AnnouncementDraft]{
		c:        c,
		listPath: "/announcements/titles",
		basePath: "/announcements",
		getPath:  func(id string) string { return "/announcements/detail/" + id },
		readOnly: true,
	}}
}
