package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crediya/auth-service/internal/core/domain"
)

// JWTTokenService implements ports.TokenService with HS256-signed JWTs.
// The subject claim carries the user's email; roles ride along for
// interoperability but authorization resolves them from the user record.
type JWTTokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTTokenService(secret string, tokenTTL time.Duration) *JWTTokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue signs a token for the subject with the given role names.
func (s *JWTTokenService) Issue(subject string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Extract verifies the token and returns the identity it proves. Expired
// tokens fail with domain.ErrTokenExpired; every other verification failure
// (bad signature, wrong algorithm, malformed payload, missing subject)
// collapses to domain.ErrTokenInvalid.
func (s *JWTTokenService) Extract(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	identity := domain.Identity{Subject: subject}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}
	return identity, nil
}
