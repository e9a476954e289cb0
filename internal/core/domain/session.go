package domain

import "time"

// Session is the authenticated identity held for the duration of a login.
// It is written once at login, deleted at logout, and read-only everywhere
// else: screens receive it explicitly instead of reading ambient state.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CompanyID   string    `json:"company_id,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	// Token is the upstream bearer credential attached to every backend call
	// made on behalf of this session.
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
