package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/service"
)

type stubRoleResolver struct {
	roles map[string][]string
	err   error
}

func (s *stubRoleResolver) RolesForSubject(_ context.Context, email string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.roles[email], nil
}

func authedContext(e *echo.Echo, subject, targetURL string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, targetURL, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if subject != "" {
		c.Set(identityKey, domain.Identity{Subject: subject})
	}
	return c, rec
}

func TestAuthorize_AdminReadsAnyRecord(t *testing.T) {
	e := echo.New()
	resolver := &stubRoleResolver{roles: map[string][]string{"admin@x.com": {"ADMIN"}}}
	c, _ := authedContext(e, "admin@x.com", "/api/v1/users?email=bob@x.com")

	called := false
	mw := Authorize(service.NewReadPolicy(), resolver, "users")
	if err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthorize_ClientOwnRecordOnly(t *testing.T) {
	e := echo.New()
	resolver := &stubRoleResolver{roles: map[string][]string{"alice@x.com": {"CLIENT"}}}
	mw := Authorize(service.NewReadPolicy(), resolver, "users")

	// Own record: granted.
	c, _ := authedContext(e, "alice@x.com", "/api/v1/users?email=alice@x.com")
	called := false
	if err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c); err != nil || !called {
		t.Fatalf("expected grant for own record, err=%v called=%v", err, called)
	}

	// Another client's record: denied.
	c, _ = authedContext(e, "alice@x.com", "/api/v1/users?email=bob@x.com")
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Missing email parameter: denied, not an error.
	c, _ = authedContext(e, "alice@x.com", "/api/v1/users")
	err = mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for missing email, got %v", err)
	}
}

func TestAuthorize_UnauthenticatedDenied(t *testing.T) {
	e := echo.New()
	resolver := &stubRoleResolver{}
	c, _ := authedContext(e, "", "/api/v1/users?email=bob@x.com")

	err := Authorize(service.NewReadPolicy(), resolver, "users")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_ResolverFailurePropagates(t *testing.T) {
	e := echo.New()
	resolver := &stubRoleResolver{err: errors.New("store down")}
	c, _ := authedContext(e, "alice@x.com", "/api/v1/users?email=alice@x.com")

	err := Authorize(service.NewReadPolicy(), resolver, "users")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)
	if err == nil || errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected infrastructure error to propagate, got %v", err)
	}
}
