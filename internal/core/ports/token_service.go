package ports

import "github.com/crediya/auth-service/internal/core/domain"

// TokenService issues and verifies bearer tokens. Extract fails with
// domain.ErrTokenExpired or domain.ErrTokenInvalid; the two are distinct
// because they map to different downstream handling.
type TokenService interface {
	Issue(subject string, roles []string) (string, error)
	Extract(token string) (domain.Identity, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
