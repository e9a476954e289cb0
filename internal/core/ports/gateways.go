package ports

import (
	"context"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// ListGateway is the upstream access a list controller needs: paged listing,
// single-record detail and deletion. R is the record type rendered in rows.
type ListGateway[R any] interface {
	// List performs a server-side paged, filtered fetch.
	List(ctx context.Context, q domain.PageQuery) (*domain.Page[R], error)
	// Get fetches one full record for detail display or draft population.
	Get(ctx context.Context, id string) (R, error)
	// Delete removes one record. Callers confirm before invoking.
	Delete(ctx context.Context, id string) error
}

// FormGateway is the upstream access a form controller needs. R is the record
// type a draft is populated from, D the draft payload sent on writes.
type FormGateway[R any, D any] interface {
	Get(ctx context.Context, id string) (R, error)
	Create(ctx context.Context, draft D) error
	Update(ctx context.Context, id string, draft D) error
}

// AuthResult is a successful upstream authentication: the bearer credential
// plus the profile the navigation shell renders.
type AuthResult struct {
	Token       string
	User        domain.User
	CompanyName string
}

// AuthGateway authenticates against the upstream backend.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// Notifier receives user-facing notices from controllers. Implementations must
// not block: a notice is fire-and-forget from the controller's point of view.
type Notifier interface {
	Notify(n domain.Notice)
}
