package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
)

const logsPageSize = 100

// UserHandler serves the HR and admin management views.
type UserHandler struct {
	sessions  ports.SessionService
	directory ports.UserDirectory
	activity  ports.ActivityRepository
}

func NewUserHandler(sessions ports.SessionService, directory ports.UserDirectory, activity ports.ActivityRepository) *UserHandler {
	return &UserHandler{sessions: sessions, directory: directory, activity: activity}
}

// ListEmployees returns every directory record for the HR employees view.
//
// @Summary      List employees
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string][]domain.UserAccount
// @Router       /admin/colaboradores [get]
func (h *UserHandler) ListEmployees(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"employees": h.directory.Users()})
}

// EmployeeDetail returns a single directory record.
//
// @Summary      Employee detail
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.UserAccount
// @Failure      404  {object}  map[string]string
// @Router       /admin/colaboradores/{id} [get]
func (h *UserHandler) EmployeeDetail(c echo.Context) error {
	user, ok := h.directory.ByID(c.Param("id"))
	if !ok {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, user)
}

type userRow struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Username string            `json:"username"`
	Role     domain.Role       `json:"role"`
	Status   domain.UserStatus `json:"status"`
}

// ListUsers returns the role-management listing: identity plus role and
// status, without banking details.
//
// @Summary      List users and roles
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string][]userRow
// @Router       /admin/usuarios [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users := h.directory.Users()
	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Username: u.Username,
			Role:     u.Role,
			Status:   u.Status,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"users": rows})
}

type updateRoleRequest struct {
	Role domain.Role `json:"role" validate:"required,oneof=COLABORADOR GESTOR_RH ADMIN"`
}

// UpdateRole assigns a new role to a user. An unknown id is a silent no-op —
// this path is only reachable from the admin view, which lists real ids. When
// the admin changes their own role the session copy refreshes immediately.
//
// @Summary      Update a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateRoleRequest  true  "New role"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /admin/usuarios/{id}/papel [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	h.sessions.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	return c.NoContent(http.StatusNoContent)
}

// Logs lists recent activity entries, newest first.
//
// @Summary      Activity logs
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string][]domain.ActivityLog
// @Failure      500  {object}  map[string]string
// @Router       /admin/logs [get]
func (h *UserHandler) Logs(c echo.Context) error {
	entries, err := h.activity.ListRecent(c.Request().Context(), logsPageSize)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.ActivityLog{}
	}
	return c.JSON(http.StatusOK, map[string]any{"logs": entries})
}
