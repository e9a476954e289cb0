package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

func gateRequest(t *testing.T, sess *domain.Session, screen domain.Screen) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(SessionKey, sess)
	}

	called := false
	handler := RequireScreen(screen)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestRequireScreen_AllowsMatchingRole(t *testing.T) {
	rec, called := gateRequest(t, &domain.Session{Role: domain.RoleAdmin}, domain.ScreenUsers)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("admin should reach users, got %d", rec.Code)
	}
}

func TestRequireScreen_BlocksWrongRole(t *testing.T) {
	rec, called := gateRequest(t, &domain.Session{Role: domain.RoleEmployee}, domain.ScreenUsers)
	if called {
		t.Fatalf("employee must not reach users")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireScreen_BlocksUnknownRole(t *testing.T) {
	rec, called := gateRequest(t, &domain.Session{Role: "superuser"}, domain.ScreenCompanies)
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("unknown role must be denied, got %d", rec.Code)
	}
}

func TestRequireScreen_BlocksMissingSession(t *testing.T) {
	rec, called := gateRequest(t, nil, domain.ScreenAnnouncementFeed)
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("missing session must be denied, got %d", rec.Code)
	}
}
