package security

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !CheckPassword(hash, "hunter2") {
		t.Error("CheckPassword() rejected the right password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted the wrong password")
	}
}

func TestTokenIssueAndVerify(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC))
	issuer := NewTokenIssuer("secret", time.Hour, clock)

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}

	t.Run("expired", func(t *testing.T) {
		clock.Advance(2 * time.Hour)
		if _, err := issuer.Verify(token); err == nil {
			t.Error("Verify() accepted an expired token")
		}
	})
}

func TestTokenWrongSecret(t *testing.T) {
	clock := clockwork.NewRealClock()
	issuer := NewTokenIssuer("secret", time.Hour, clock)
	other := NewTokenIssuer("different", time.Hour, clock)

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with another secret")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d denied within limit", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request over the limit allowed")
	}

	// Another IP has its own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("fresh IP denied")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		realIP    string
		remote    string
		want      string
	}{
		{
			name:      "x-forwarded-for wins",
			forwarded: "203.0.113.5",
			realIP:    "198.51.100.7",
			remote:    "10.0.0.1:1234",
			want:      "203.0.113.5",
		},
		{
			name:   "x-real-ip next",
			realIP: "198.51.100.7",
			remote: "10.0.0.1:1234",
			want:   "198.51.100.7",
		},
		{
			name:   "remote addr fallback",
			remote: "10.0.0.1:1234",
			want:   "10.0.0.1:1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
