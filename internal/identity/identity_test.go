package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMockVerifier(t *testing.T) {
	v := NewMockVerifier()
	ctx := context.Background()

	t.Run("parses a JSON identity", func(t *testing.T) {
		ident, err := v.Verify(ctx, `{"id":"user-123","email":"juan@example.com"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ident.ID != "user-123" {
			t.Errorf("expected user-123, got %q", ident.ID)
		}
		if ident.Email != "juan@example.com" {
			t.Errorf("expected juan@example.com, got %q", ident.Email)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		if _, err := v.Verify(ctx, "not-json"); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("rejects identity without id", func(t *testing.T) {
		if _, err := v.Verify(ctx, `{"email":"juan@example.com"}`); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("rejects empty token", func(t *testing.T) {
		if _, err := v.Verify(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestHSVerifier(t *testing.T) {
	const secret = "test-jwt-secret"
	v := NewHSVerifier(secret)
	ctx := context.Background()

	t.Run("accepts a valid token", func(t *testing.T) {
		token := signTestToken(t, secret, jwt.MapClaims{
			"sub":   "user-456",
			"email": "maria@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		ident, err := v.Verify(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ident.ID != "user-456" {
			t.Errorf("expected user-456, got %q", ident.ID)
		}
		if ident.Email != "maria@example.com" {
			t.Errorf("expected maria@example.com, got %q", ident.Email)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token := signTestToken(t, "wrong-secret", jwt.MapClaims{
			"sub": "user-456",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		if _, err := v.Verify(ctx, token); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token := signTestToken(t, secret, jwt.MapClaims{
			"sub": "user-456",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		if _, err := v.Verify(ctx, token); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("rejects a token without a subject", func(t *testing.T) {
		token := signTestToken(t, secret, jwt.MapClaims{
			"email": "maria@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		if _, err := v.Verify(ctx, token); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := v.Verify(ctx, "not.a.token"); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}
