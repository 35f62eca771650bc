package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
	"github.com/beneficios/portal-api/internal/pkg/metrics"
)

// Navigation targets the guard redirects to. They mirror the portal's login
// and access-denied views.
const (
	LoginPath        = "/login"
	AccessDeniedPath = "/acesso-negado"
)

const identityKey = "identity"

// Guard composes authentication and authorization into the single gate every
// protected route passes through. The decision is recomputed on every request
// so a role update takes effect on the very next navigation:
//
//  1. anonymous session → redirect to the login view;
//  2. requiredRoles non-empty and the bound identity holds none of them →
//     redirect to the access-denied view;
//  3. otherwise inject the identity and render the target.
//
// An empty requiredRoles list means authenticated-only.
func Guard(sessions ports.SessionService, requiredRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := sessions.Current()

			if user == nil {
				metrics.GuardDecisionsTotal.WithLabelValues("login_redirect").Inc()
				return c.Redirect(http.StatusFound, LoginPath)
			}

			if len(requiredRoles) > 0 && !domain.HasAnyRole(user, requiredRoles...) {
				metrics.GuardDecisionsTotal.WithLabelValues("forbidden_redirect").Inc()
				return c.Redirect(http.StatusFound, AccessDeniedPath)
			}

			metrics.GuardDecisionsTotal.WithLabelValues("render").Inc()
			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity the Guard injected for this request, or
// nil on an unguarded route.
func CurrentUser(c echo.Context) *domain.UserAccount {
	u, _ := c.Get(identityKey).(*domain.UserAccount)
	return u
}
