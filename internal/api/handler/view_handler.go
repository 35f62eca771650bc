package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beneficios/portal-api/internal/api/middleware"
	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
	"github.com/beneficios/portal-api/internal/infrastructure/memory"
)

// ViewHandler serves the JSON view-models behind the guarded portal routes.
// Rendering proper is the front end's job; each handler exposes exactly the
// data its page shows.
type ViewHandler struct {
	directory ports.UserDirectory
	fixtures  *memory.FixtureStore
	demoLogin bool
}

func NewViewHandler(directory ports.UserDirectory, fixtures *memory.FixtureStore, demoLogin bool) *ViewHandler {
	return &ViewHandler{directory: directory, fixtures: fixtures, demoLogin: demoLogin}
}

type presetIdentity struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

type loginView struct {
	Title           string           `json:"title"`
	DemoEnvironment bool             `json:"demo_environment"`
	Presets         []presetIdentity `json:"presets,omitempty"`
}

// LoginView describes the login page. With demo login enabled it lists the
// seed identities offered as quick-login shortcuts.
func (h *ViewHandler) LoginView(c echo.Context) error {
	view := loginView{
		Title:           "Portal de Benefícios do Colaborador",
		DemoEnvironment: h.demoLogin,
	}
	if h.demoLogin {
		for _, u := range h.directory.Users() {
			view.Presets = append(view.Presets, presetIdentity{ID: u.ID, Name: u.Name, Role: u.Role})
		}
	}
	return c.JSON(http.StatusOK, view)
}

// RegisterView describes the registration form contract.
func (h *ViewHandler) RegisterView(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"title":             "Cadastro de colaborador",
		"required_fields":   []string{"name", "email", "username", "secret", "confirm_secret", "cpf"},
		"secret_min_length": 6,
	})
}

// AccessDeniedView is the forbidden-redirect target. A public route: reaching
// it is a normal navigation outcome, not an error.
func (h *ViewHandler) AccessDeniedView(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"title":   "Acesso negado",
		"message": "Você não tem permissão para acessar esta página.",
	})
}

// Home greets the bound identity.
func (h *ViewHandler) Home(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, map[string]any{
		"title":   "Bem-vindo(a), " + user.Name,
		"user_id": user.ID,
		"role":    user.Role,
	})
}

// Benefits lists the benefits granted to the bound identity.
func (h *ViewHandler) Benefits(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, map[string]any{
		"benefits": h.fixtures.BenefitsFor(user.ID),
	})
}

// MyData shows the bound identity's full record, banking details included.
func (h *ViewHandler) MyData(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// Messages lists the bound identity's HR messages.
func (h *ViewHandler) Messages(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, map[string]any{
		"messages": h.fixtures.MessagesFor(user.ID),
	})
}
