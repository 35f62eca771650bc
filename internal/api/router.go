package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beneficios/portal-api/internal/api/handler"
	"github.com/beneficios/portal-api/internal/api/middleware"
	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
	"github.com/beneficios/portal-api/internal/infrastructure/memory"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sessions  ports.SessionService
	Directory ports.UserDirectory
	Activity  ports.ActivityRepository
	Fixtures  *memory.FixtureStore
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
	DemoLogin bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The route table mirrors the portal's navigation: each protected view lists
// the roles it accepts, and the guard turns authentication and authorization
// into redirects.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	viewHandler := handler.NewViewHandler(deps.Directory, deps.Fixtures, deps.DemoLogin)
	userHandler := handler.NewUserHandler(deps.Sessions, deps.Directory, deps.Activity)

	authOnly := middleware.Guard(deps.Sessions)
	hrOnly := middleware.Guard(deps.Sessions, domain.RoleHRManager, domain.RoleAdmin)
	adminOnly := middleware.Guard(deps.Sessions, domain.RoleAdmin)

	// --- Public views ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	})
	e.GET(middleware.LoginPath, viewHandler.LoginView)
	e.GET("/registro", viewHandler.RegisterView)
	e.GET(middleware.AccessDeniedPath, viewHandler.AccessDeniedView)

	// --- Auth operations ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/registro", authHandler.Register)
	if deps.DemoLogin {
		// Demonstration shortcut; must stay unregistered in production.
		e.POST("/auth/quick-login", authHandler.QuickLogin)
	}

	// --- Collaborator views (authenticated-only) ---
	e.GET("/home", viewHandler.Home, authOnly)
	e.GET("/beneficios", viewHandler.Benefits, authOnly)
	e.GET("/meus-dados", viewHandler.MyData, authOnly)
	e.GET("/mensagens", viewHandler.Messages, authOnly)

	// --- HR views ---
	e.GET("/admin/colaboradores", userHandler.ListEmployees, hrOnly)
	e.GET("/admin/colaboradores/:id", userHandler.EmployeeDetail, hrOnly)
	e.GET("/admin/logs", userHandler.Logs, hrOnly)

	// --- Admin views ---
	e.GET("/admin/usuarios", userHandler.ListUsers, adminOnly)
	e.PUT("/admin/usuarios/:id/papel", userHandler.UpdateRole, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
