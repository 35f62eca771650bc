package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
	"github.com/beneficios/portal-api/internal/core/service"
	"github.com/beneficios/portal-api/internal/infrastructure/memory"
)

type memPointer struct{ id string }

func (p *memPointer) Load(context.Context) (string, error)    { return p.id, nil }
func (p *memPointer) Save(_ context.Context, id string) error { p.id = id; return nil }
func (p *memPointer) Clear(context.Context) error             { p.id = ""; return nil }

func newSessions() ports.SessionService {
	dir := memory.NewDirectory(memory.SeedUsers())
	return service.NewSessionService(dir, &memPointer{}, nil, zerolog.Nop())
}

func invoke(t *testing.T, mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	sessions := newSessions()

	rec, called := invoke(t, Guard(sessions, domain.RoleAdmin))
	if called {
		t.Fatalf("handler must not run for anonymous session")
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != LoginPath {
		t.Fatalf("expected redirect to %s, got %d %s", LoginPath, rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestGuard_AnonymousNeverForbidden(t *testing.T) {
	sessions := newSessions()

	// Even on a role-restricted route, an anonymous session redirects to
	// login, never to access-denied.
	rec, _ := invoke(t, Guard(sessions, domain.RoleAdmin))
	if rec.Header().Get(echo.HeaderLocation) == AccessDeniedPath {
		t.Fatalf("anonymous navigation must redirect to login, not access-denied")
	}
}

func TestGuard_MissingRoleRedirectsToAccessDenied(t *testing.T) {
	sessions := newSessions()
	sessions.LoginAsPreset(context.Background(), "1") // COLABORADOR

	rec, called := invoke(t, Guard(sessions, domain.RoleHRManager, domain.RoleAdmin))
	if called {
		t.Fatalf("handler must not run without a required role")
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != AccessDeniedPath {
		t.Fatalf("expected redirect to %s, got %d %s", AccessDeniedPath, rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestGuard_MatchingRoleRenders(t *testing.T) {
	sessions := newSessions()
	sessions.LoginAsPreset(context.Background(), "2") // GESTOR_RH

	rec, called := invoke(t, Guard(sessions, domain.RoleHRManager, domain.RoleAdmin))
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected render, got %d (called=%v)", rec.Code, called)
	}
}

func TestGuard_EmptyRoleSetMeansAuthenticatedOnly(t *testing.T) {
	sessions := newSessions()
	sessions.LoginAsPreset(context.Background(), "1")

	_, called := invoke(t, Guard(sessions))
	if !called {
		t.Fatalf("any authenticated identity must pass an unrestricted guard")
	}
}

func TestGuard_InjectsIdentity(t *testing.T) {
	sessions := newSessions()
	sessions.LoginAsPreset(context.Background(), "3")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(sessions)(func(c echo.Context) error {
		u := CurrentUser(c)
		if u == nil || u.ID != "3" {
			t.Fatalf("expected injected identity 3, got %+v", u)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestGuard_RecomputesAfterRoleUpdate(t *testing.T) {
	sessions := newSessions()
	sessions.LoginAsPreset(context.Background(), "2")

	adminOnly := Guard(sessions, domain.RoleAdmin)

	rec, _ := invoke(t, adminOnly)
	if rec.Header().Get(echo.HeaderLocation) != AccessDeniedPath {
		t.Fatalf("GESTOR_RH must not pass an ADMIN-only guard")
	}

	sessions.UpdateRole(context.Background(), "2", domain.RoleAdmin)

	// Same middleware value, next navigation: the decision is recomputed,
	// so the promotion applies without re-login.
	rec, called := invoke(t, adminOnly)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected render after promotion, got %d", rec.Code)
	}
}

func TestGuard_LogoutThenNavigateRedirectsToLogin(t *testing.T) {
	sessions := newSessions()
	sessions.LoginAsPreset(context.Background(), "3")
	sessions.Logout(context.Background())

	rec, called := invoke(t, Guard(sessions))
	if called {
		t.Fatalf("handler must not run after logout")
	}
	if rec.Header().Get(echo.HeaderLocation) != LoginPath {
		t.Fatalf("expected login redirect after logout")
	}
}
