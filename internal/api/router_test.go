package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/beneficios/portal-api/internal/api/middleware"
	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/service"
	"github.com/beneficios/portal-api/internal/infrastructure/memory"
)

type memPointer struct{ id string }

func (p *memPointer) Load(context.Context) (string, error)    { return p.id, nil }
func (p *memPointer) Save(_ context.Context, id string) error { p.id = id; return nil }
func (p *memPointer) Clear(context.Context) error             { p.id = ""; return nil }

type stubActivityRepo struct {
	mu      sync.Mutex
	entries []*domain.ActivityLog
}

func (r *stubActivityRepo) Insert(_ context.Context, entry *domain.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubActivityRepo) ListRecent(context.Context, int64) ([]*domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.ActivityLog(nil), r.entries...), nil
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, target string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != target {
		t.Fatalf("expected redirect to %s, got %s", target, loc)
	}
}

// TestPortalNavigation walks the full demonstration scenario through the real
// route table. The router is built once: echoprometheus registers its
// collectors with the default registry and must not be registered twice.
func TestPortalNavigation(t *testing.T) {
	dir := memory.NewDirectory(memory.SeedUsers())
	sessions := service.NewSessionService(dir, &memPointer{}, nil, zerolog.Nop())
	activity := &stubActivityRepo{}

	e := NewRouter(Deps{
		Sessions:  sessions,
		Directory: dir,
		Activity:  activity,
		Fixtures:  memory.NewFixtureStore(),
		Log:       zerolog.Nop(),
		DemoLogin: true,
	})

	t.Run("anonymous navigation always redirects to login", func(t *testing.T) {
		expectRedirect(t, do(e, http.MethodGet, "/home", ""), middleware.LoginPath)
		// Role-restricted routes included: never access-denied while anonymous.
		expectRedirect(t, do(e, http.MethodGet, "/admin/usuarios", ""), middleware.LoginPath)
	})

	t.Run("root redirects to login view", func(t *testing.T) {
		expectRedirect(t, do(e, http.MethodGet, "/", ""), middleware.LoginPath)
	})

	t.Run("login view lists demo presets", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/login", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"presets"`) {
			t.Fatalf("expected demo presets in login view: %s", rec.Body.String())
		}
	})

	t.Run("quick login as HR manager", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/auth/quick-login", `{"user_id":"2"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("HR manager renders HR views", func(t *testing.T) {
		if rec := do(e, http.MethodGet, "/admin/colaboradores", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec := do(e, http.MethodGet, "/home", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("HR manager is forbidden on admin-only view", func(t *testing.T) {
		expectRedirect(t, do(e, http.MethodGet, "/admin/usuarios", ""), middleware.AccessDeniedPath)
	})

	t.Run("promotion applies on the next navigation", func(t *testing.T) {
		sessions.UpdateRole(context.Background(), "2", domain.RoleAdmin)

		if rec := do(e, http.MethodGet, "/admin/usuarios", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected render after promotion, got %d", rec.Code)
		}
	})

	t.Run("admin updates another user's role over HTTP", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/admin/usuarios/1/papel", `{"role":"GESTOR_RH"}`)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
		}
		u, _ := dir.ByID("1")
		if u.Role != domain.RoleHRManager {
			t.Fatalf("role update not applied, got %s", u.Role)
		}

		// Demote back so the collaborator scenario below starts clean.
		if rec := do(e, http.MethodPut, "/admin/usuarios/1/papel", `{"role":"COLABORADOR"}`); rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("role payload is validated", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/admin/usuarios/1/papel", `{"role":"SUPREMO"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown role, got %d", rec.Code)
		}
	})

	t.Run("activity logs view renders for admin", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/admin/logs", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("unknown employee id maps to 404", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/admin/colaboradores/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("logout then navigation redirects to login", func(t *testing.T) {
		if rec := do(e, http.MethodPost, "/auth/logout", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		expectRedirect(t, do(e, http.MethodGet, "/home", ""), middleware.LoginPath)
	})

	t.Run("credential login and collaborator views", func(t *testing.T) {
		if rec := do(e, http.MethodPost, "/auth/login", `{"identifier":"ana.souza","secret":"errada"}`); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for bad secret, got %d", rec.Code)
		}
		if rec := do(e, http.MethodPost, "/auth/login", `{"identifier":"ana.souza","secret":"colab123"}`); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if rec := do(e, http.MethodGet, "/beneficios", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec := do(e, http.MethodGet, "/meus-dados", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		// Collaborator lacks HR and admin roles.
		expectRedirect(t, do(e, http.MethodGet, "/admin/colaboradores", ""), middleware.AccessDeniedPath)
		expectRedirect(t, do(e, http.MethodGet, "/admin/usuarios", ""), middleware.AccessDeniedPath)
	})

	t.Run("liveness probe is public", func(t *testing.T) {
		if rec := do(e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
