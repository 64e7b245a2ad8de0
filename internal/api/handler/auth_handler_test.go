package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/api/middleware"
	"github.com/creomotion/agency-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (string, *domain.Principal, error)
	portalLoginFn func(ctx context.Context, email, password string) (string, *domain.Principal, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) PortalLogin(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	return s.portalLoginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_Login_SetsCookieAndBody(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Principal, error) {
			if email != "ada@creomotion.test" || password != "hunter22" {
				t.Fatalf("unexpected credentials: %s/%s", email, password)
			}
			return "signed-token", &domain.Principal{
				ID: "u1", Email: email, Name: "Ada", Role: domain.RoleAdmin, Kind: domain.PrincipalStaff,
			}, nil
		},
	}
	h := NewAuthHandler(svc, time.Hour, false)

	e := newTestEcho()
	body := `{"email":"ada@creomotion.test","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ck := sessionCookie(t, rec)
	if ck == nil {
		t.Fatalf("session cookie not set")
	}
	if ck.Value != "signed-token" {
		t.Fatalf("cookie carries wrong token: %q", ck.Value)
	}
	if !ck.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if ck.MaxAge != 3600 {
		t.Fatalf("expected MaxAge 3600, got %d", ck.MaxAge)
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Token != "signed-token" || resp.User.ID != "u1" || resp.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Principal, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc, time.Hour, false)

	e := newTestEcho()
	body := `{"email":"ada@creomotion.test","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
	if ck := sessionCookie(t, rec); ck != nil {
		t.Fatalf("no cookie should be set on failed login")
	}
}

func TestAuthHandler_Login_RejectsMalformedEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)

	e := newTestEcho()
	body := `{"email":"not-an-email","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_PortalLogin_StaffDenied(t *testing.T) {
	svc := &stubAuthService{
		portalLoginFn: func(ctx context.Context, email, password string) (string, *domain.Principal, error) {
			return "", nil, domain.ErrPortalAccessDenied
		},
	}
	h := NewAuthHandler(svc, time.Hour, false)

	e := newTestEcho()
	body := `{"email":"admin@creomotion.test","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/portal-login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.PortalLogin(c)
	if err != domain.ErrPortalAccessDenied {
		t.Fatalf("expected ErrPortalAccessDenied to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	ck := sessionCookie(t, rec)
	if ck == nil {
		t.Fatalf("expected expiring cookie")
	}
	if ck.Value != "" || ck.MaxAge != -1 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", ck.Value, ck.MaxAge)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userId", "u1")
	c.Set("email", "ada@creomotion.test")
	c.Set("role", domain.RoleAdmin)

	if err := h.Me(c); err != nil {
		t.Fatalf("me: %v", err)
	}

	var resp struct {
		User map[string]string `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.User["id"] != "u1" || resp.User["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
