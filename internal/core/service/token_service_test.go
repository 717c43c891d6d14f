package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crediya/auth-service/internal/core/domain"
)

func TestJWTTokenService_IssueAndExtract(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	token, err := svc.Issue("alice@x.com", []string{"CLIENT"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	id, err := svc.Extract(token)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if id.Subject != "alice@x.com" {
		t.Fatalf("unexpected subject: %q", id.Subject)
	}
	if id.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", id.ExpiresAt)
	}
}

func TestJWTTokenService_ExpiredTokenDistinctFromInvalid(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@x.com",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Extract(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if _, err := svc.Extract("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTTokenService_WrongSignatureRejected(t *testing.T) {
	other := NewJWTTokenService("other-secret", time.Hour)
	token, err := other.Issue("alice@x.com", nil)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc := NewJWTTokenService("secret", time.Hour)
	if _, err := svc.Extract(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong signature, got %v", err)
	}
}

func TestJWTTokenService_WrongAlgorithmRejected(t *testing.T) {
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice@x.com"})
	signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewJWTTokenService("secret", time.Hour)
	if _, err := svc.Extract(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none, got %v", err)
	}
}

func TestJWTTokenService_MissingSubjectRejected(t *testing.T) {
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noSub.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewJWTTokenService("secret", time.Hour)
	if _, err := svc.Extract(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}
