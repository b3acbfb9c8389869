package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/usersvc/users-api/internal/api/metrics"
	"github.com/usersvc/users-api/internal/core/domain"
	"github.com/usersvc/users-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account lifecycle operations.
// Self-service routes always act on the identity resolved by the Auth
// middleware, never on an id taken from the request.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	Field string `json:"field" validate:"required,oneof=email"`
	Value string `json:"value" validate:"required"`
}

type listUsersResponse struct {
	Users []domain.User `json:"users"`
}

// Create registers a new account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Account password"
// @Success      201  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	user, err := h.users.Register(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": "user already exists"})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Me returns the caller's own record.
//
// @Summary      Read the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	metrics.OperationsTotal.WithLabelValues("get_me").Inc()
	return c.JSON(http.StatusOK, user)
}

// Update changes a single field on the caller's own record.
//
// @Summary      Update the authenticated user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Field to update (email only)"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateField(c.Request().Context(), caller.ID, req.Field, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidField):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			// The caller's record vanished between resolution and update;
			// surface that the same way as a failed resolution.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "could not validate credentials"})
		}
		return err
	}

	metrics.OperationsTotal.WithLabelValues("update_email").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete removes the caller's own record.
//
// @Summary      Delete the authenticated user
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), caller.ID); err != nil {
		return err
	}

	metrics.OperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ListAll returns a page of users. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Page size"     default(10)
// @Param        skip   query  int  false  "Page offset"   default(0)
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/all [get]
func (h *UserHandler) ListAll(c echo.Context) error {
	caller, err := ctxUser(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 10)
	skip := queryInt(c, "skip", 0)

	users, err := h.users.ListAll(c.Request().Context(), caller, limit, skip)
	if err != nil {
		if errors.Is(err, domain.ErrNotAdmin) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.OperationsTotal.WithLabelValues("list_all").Inc()
	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

func queryInt(c echo.Context, name string, fallback int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
