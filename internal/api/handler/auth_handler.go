package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beneficios/portal-api/internal/api/middleware"
	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
)

const homePath = "/home"

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	// Identifier is the username or the email; the directory matches either.
	Identifier string `json:"identifier" validate:"required"`
	Secret     string `json:"secret" validate:"required"`
}

type quickLoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// Banking details are free-form by contract; no format validation.
type bankingPayload struct {
	Bank    string `json:"bank"`
	Branch  string `json:"branch"`
	Account string `json:"account"`
}

type registerRequest struct {
	Name          string         `json:"name" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	Username      string         `json:"username" validate:"required"`
	Secret        string         `json:"secret" validate:"required,min=6"`
	ConfirmSecret string         `json:"confirm_secret" validate:"required,eqfield=Secret"`
	CPF           string         `json:"cpf" validate:"required"`
	Phone         string         `json:"phone"`
	Banking       bankingPayload `json:"banking_details"`
}

type authResponse struct {
	User     *domain.UserAccount `json:"user,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// Login authenticates with username/email and secret.
//
// @Summary      Credential login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// A mismatch is an expected outcome, surfaced in-band, never a fault.
	user, ok := h.sessions.Login(c.Request().Context(), req.Identifier, req.Secret)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
	}

	return c.JSON(http.StatusOK, authResponse{User: user, Redirect: homePath})
}

// QuickLogin binds a seed identity without credentials. Registered only when
// demo login is enabled; production deployments must keep it off.
//
// @Summary      Demonstration quick login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      quickLoginRequest  true  "Seed identity id"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/quick-login [post]
func (h *AuthHandler) QuickLogin(c echo.Context) error {
	var req quickLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// Unknown ids are a no-op; the response reflects whatever is bound.
	h.sessions.LoginAsPreset(c.Request().Context(), req.UserID)

	return c.JSON(http.StatusOK, authResponse{User: h.sessions.Current(), Redirect: homePath})
}

// Logout clears the session. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, authResponse{Redirect: middleware.LoginPath})
}

// Register creates a collaborator account and binds it as the active session.
// Role and status fields in the payload are ignored by design: every new
// account starts as an active COLABORADOR.
//
// @Summary      Self registration
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/registro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user := h.sessions.Register(c.Request().Context(), ports.NewUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Secret:   req.Secret,
		CPF:      req.CPF,
		Phone:    req.Phone,
		Banking: domain.BankingDetails{
			Bank:    req.Banking.Bank,
			Branch:  req.Banking.Branch,
			Account: req.Banking.Account,
		},
	})

	return c.JSON(http.StatusCreated, authResponse{User: user, Redirect: homePath})
}
