package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/api/metrics"
	"github.com/creomotion/agency-api/internal/api/middleware"
	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// AuthHandler handles login, logout and session introspection. On successful
// login the session token is set as an HttpOnly cookie and echoed in the
// response body for non-browser clients.
type AuthHandler struct {
	authService ports.AuthService
	sessionTTL  time.Duration
	secure      bool
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type principalResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  principalResponse `json:"user"`
}

// Login authenticates either a staff user or a portal client.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, "staff", h.authService.Login)
}

// PortalLogin authenticates a client for the review portal. Staff accounts
// are rejected even with valid credentials.
//
// @Summary      Portal login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/portal-login [post]
func (h *AuthHandler) PortalLogin(c echo.Context) error {
	return h.login(c, "portal", h.authService.PortalLogin)
}

func (h *AuthHandler) login(c echo.Context, kind string, fn func(ctx context.Context, email, password string) (string, *domain.Principal, error)) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, principal, err := fn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(kind, "failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues(kind, "success").Inc()

	h.setSessionCookie(c, token)

	return c.JSON(http.StatusOK, authResponse{
		Token: token,
		User: principalResponse{
			ID:    principal.ID,
			Email: principal.Email,
			Name:  principal.Name,
			Role:  principal.Role,
		},
	})
}

// Logout clears the session cookie. Tokens are stateless, so an already
// issued token stays valid until expiry; the browser just forgets it.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "session cookie cleared"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the identity bound to the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  principalResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"user": map[string]string{
			"id":    access.UserID,
			"email": access.Email,
			"role":  access.Role,
		},
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
