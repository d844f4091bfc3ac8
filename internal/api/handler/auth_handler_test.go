package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ShaharSolema/TasksFlow/internal/api/middleware"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*ports.UserProfile, error)
	loginFn    func(ctx context.Context, email, password string) (string, *ports.UserProfile, error)
	logoutFn   func(ctx context.Context, rawToken string) error
	currentFn  func(ctx context.Context, userID string) (*ports.UserProfile, error)
	updateFn   func(ctx context.Context, userID string, update ports.ProfileUpdate) (*ports.UserProfile, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*ports.UserProfile, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *ports.UserProfile, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, rawToken string) error {
	return s.logoutFn(ctx, rawToken)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*ports.UserProfile, error) {
	return s.currentFn(ctx, userID)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*ports.UserProfile, error) {
	return s.updateFn(ctx, userID, update)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*ports.UserProfile, error) {
			if username != "alice" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return &ports.UserProfile{ID: "u1", Username: username, Email: email, Role: "user"}, nil
		},
	}
	h := NewAuthHandler(stub, false)

	body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("user missing from response")
	}
	if user["username"] != "alice" {
		t.Fatalf("expected username alice, got %v", user["username"])
	}
	if _, present := resp["token"]; present {
		t.Fatalf("register must not return a token")
	}
}

func TestAuthHandler_Register_ValidationRejected(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*ports.UserProfile, error) {
			t.Fatalf("service should not be reached")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, false)

	body := strings.NewReader(`{"username":"a","email":"not-an-email","password":"123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *ports.UserProfile, error) {
			return "signed-token", &ports.UserProfile{ID: "u1", Username: "alice", Email: email, Role: "user"}, nil
		},
	}
	h := NewAuthHandler(stub, false)

	body := strings.NewReader(`{"email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("cookie carries wrong token: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("session cookie must be SameSite=Lax")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("token missing from response body")
	}
}

func TestAuthHandler_Logout_RevokesAndClearsCookie(t *testing.T) {
	e := newTestEcho()
	var revoked string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, rawToken string) error {
			revoked = rawToken
			return nil
		},
	}
	h := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "the-token" {
		t.Fatalf("expected token revocation, got %q", revoked)
	}

	var cleared *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie {
			cleared = ck
		}
	}
	if cleared == nil {
		t.Fatalf("cookie not touched on logout")
	}
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", cleared.Value, cleared.MaxAge)
	}
}

func TestAuthHandler_Logout_RequiresAuth(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		logoutFn: func(context.Context, string) error {
			t.Fatalf("service should not be reached")
			return nil
		},
	}
	h := NewAuthHandler(stub, false)

	// Logout sits behind the Auth middleware like every other session route.
	wrapped := middleware.Auth("secret", nil)(h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := wrapped(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %v", err)
	}
}

func TestAuthHandler_Logout_AuthenticatedSucceeds(t *testing.T) {
	e := newTestEcho()
	var revoked string
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, rawToken string) error {
			revoked = rawToken
			return nil
		},
	}
	h := NewAuthHandler(stub, false)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "user",
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	wrapped := middleware.Auth("secret", nil)(h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := wrapped(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != signed {
		t.Fatalf("expected presented token to be revoked, got %q", revoked)
	}
}

func TestAuthHandler_Me_RequiresIdentity(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, false)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Me_ReturnsProfile(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		currentFn: func(ctx context.Context, userID string) (*ports.UserProfile, error) {
			if userID != "u7" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return &ports.UserProfile{ID: userID, Username: "bob", Email: "bob@example.com", Role: "user"}, nil
		},
	}
	h := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u7")
	c.Set("role", "user")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "bob" {
		t.Fatalf("expected username bob, got %v", resp["username"])
	}
}
