package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"escapehint/internal/security"
)

func newTestAuth(t *testing.T, ttl time.Duration) (*AuthService, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testStart)
	tokens := security.NewTokenIssuer("test-secret", ttl, clock)
	auth, err := NewAuthService("hunter2", tokens)
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}
	return auth, clock
}

func TestLogin(t *testing.T) {
	auth, _ := newTestAuth(t, 2*time.Hour)

	token, err := auth.Login("hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}

	claims, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.Role != "admin" || claims.Subject != "admin" {
		t.Errorf("claims = %+v, want admin role and subject", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t, 2*time.Hour)

	if _, err := auth.Login("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	auth, clock := newTestAuth(t, time.Hour)

	token, err := auth.Login("hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	clock.Advance(time.Hour + time.Minute)

	if _, err := auth.VerifyToken(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("VerifyToken() after expiry error = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	auth, _ := newTestAuth(t, time.Hour)

	if _, err := auth.VerifyToken("not.a.token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("VerifyToken() error = %v, want ErrInvalidCredentials", err)
	}
}
