package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usersvc/users-api/internal/api/metrics"
	"github.com/usersvc/users-api/internal/core/domain"
	"github.com/usersvc/users-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token exchanges credentials for a bearer token.
//
// @Summary      Obtain an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Account password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
