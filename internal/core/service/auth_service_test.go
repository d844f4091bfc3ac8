package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

type stubDenylist struct {
	revoked map[string]time.Duration
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	d.revoked[jti] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := d.revoked[jti]
	return ok, nil
}

func newAuthFixture() (*stubUserRepo, *stubDenylist, *AuthService) {
	repo := newStubUserRepo()
	denylist := newStubDenylist()
	svc := NewAuthService(repo, denylist, "secret", time.Hour, zerolog.Nop())
	return repo, denylist, svc
}

func TestAuthService_Register_Success(t *testing.T) {
	repo, _, svc := newAuthFixture()

	profile, err := svc.Register(context.Background(), "Alice", "Alice@Example.COM", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if profile.Username != "alice" {
		t.Fatalf("username not lowercased: %q", profile.Username)
	}
	if profile.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", profile.Email)
	}
	if profile.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %q", profile.Role)
	}

	stored, err := repo.FindByID(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	_, _, svc := newAuthFixture()

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing fields", "", "", ""},
		{"short username", "a", "a@example.com", "pass123"},
		{"long username", "aaaaaaaaaaaaaaaaaaaaa", "a@example.com", "pass123"},
		{"bad email", "alice", "not-an-email", "pass123"},
		{"short password", "alice", "alice@example.com", "12345"},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.username, tc.email, tc.password); !errorsIsInvalid(err) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	_, _, svc := newAuthFixture()

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other@example.com", "pass123"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bobby", "bob@example.com", "pass123"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for email, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	_, _, svc := newAuthFixture()

	profile, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != profile.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != profile.ID {
		t.Fatalf("expected sub %q, got %v", profile.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleUser {
		t.Fatalf("expected role user, got %v", claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected non-empty jti")
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	_, _, svc := newAuthFixture()
	if _, err := svc.Register(context.Background(), "dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown email and wrong password are indistinguishable.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "goodpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestAuthService_Login_RepoFailurePropagates(t *testing.T) {
	repo, _, svc := newAuthFixture()

	// Infrastructure failures must not masquerade as bad credentials.
	repo.findErr = errors.New("connection reset")
	_, _, err := svc.Login(context.Background(), "dave@example.com", "goodpass")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	_, denylist, svc := newAuthFixture()
	if _, err := svc.Register(context.Background(), "erin", "erin@example.com", "pass123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "erin@example.com", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(denylist.revoked) != 1 {
		t.Fatalf("expected one revoked jti, got %d", len(denylist.revoked))
	}
	for _, ttl := range denylist.revoked {
		if ttl <= 0 || ttl > time.Hour {
			t.Fatalf("unexpected revocation ttl: %v", ttl)
		}
	}
}

func TestAuthService_Logout_GarbageTokenIsNoop(t *testing.T) {
	_, denylist, svc := newAuthFixture()

	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout of garbage token should succeed, got %v", err)
	}
	if len(denylist.revoked) != 0 {
		t.Fatalf("nothing should be revoked, got %d", len(denylist.revoked))
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	_, _, svc := newAuthFixture()
	profile, err := svc.Register(context.Background(), "frank", "frank@example.com", "pass123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "grace", "grace@example.com", "pass123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateProfile(context.Background(), profile.ID, ports.ProfileUpdate{}); !errorsIsInvalid(err) {
		t.Fatalf("expected ErrInvalidInput for empty update, got %v", err)
	}

	taken := "grace@example.com"
	if _, err := svc.UpdateProfile(context.Background(), profile.ID, ports.ProfileUpdate{Email: &taken}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for taken email, got %v", err)
	}

	newName := "Franklin"
	updated, err := svc.UpdateProfile(context.Background(), profile.ID, ports.ProfileUpdate{Username: &newName})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Username != "franklin" {
		t.Fatalf("expected lowercased username, got %q", updated.Username)
	}
	// Re-submitting your own email is not a conflict.
	own := "frank@example.com"
	if _, err := svc.UpdateProfile(context.Background(), profile.ID, ports.ProfileUpdate{Email: &own}); err != nil {
		t.Fatalf("own email should not conflict: %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	_, _, svc := newAuthFixture()
	profile, err := svc.Register(context.Background(), "henry", "henry@example.com", "pass123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := svc.CurrentUser(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if got.Username != "henry" || got.Email != "henry@example.com" || got.Role != domain.RoleUser {
		t.Fatalf("unexpected projection: %+v", got)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
