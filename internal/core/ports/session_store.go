package ports

import (
	"context"
	"time"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// SessionStore persists authenticated sessions between requests.
// Implementations apply ttl as the storage expiry so abandoned sessions
// disappear without an explicit logout.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Find returns domain.ErrSessionNotFound for unknown or expired ids.
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
