package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

// AuthService implements login against the user store.
type AuthService struct {
	users   ports.UserStore
	roles   ports.RoleResolver
	hasher  ports.PasswordHasher
	tokens  ports.TokenService
	limiter ports.LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(users ports.UserStore, roles ports.RoleResolver, hasher ports.PasswordHasher, tokens ports.TokenService, limiter ports.LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, tokens: tokens, limiter: limiter, log: log}
}

// Login verifies the credentials and issues a token carrying the user's
// resolved role names. An unknown email and a wrong password are
// indistinguishable to the caller: both fail with ErrInvalidCredentials.
// A user with no resolvable role still logs in with an empty role set —
// visible but unauthorized is not the same as nonexistent.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allowed(ctx, email)
		if err != nil {
			// Best-effort: a broken limiter must not lock every account out.
			s.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		if s.limiter != nil {
			_ = s.limiter.RecordFailure(ctx, email)
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, s.roles.RolesFor(user.RoleID))
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, email)
	}

	s.log.Info().Str("email", user.Email).Msg("login succeeded")
	return token, user, nil
}

// SubjectRoles resolves the granted role names of an authenticated subject
// from the user record rather than the token payload. It implements
// ports.SubjectRoleResolver on top of the user store and a role resolver.
type SubjectRoles struct {
	users ports.UserStore
	roles ports.RoleResolver
}

func NewSubjectRoles(users ports.UserStore, roles ports.RoleResolver) *SubjectRoles {
	return &SubjectRoles{users: users, roles: roles}
}

// RolesForSubject returns the role names granted to the subject, or an
// empty set when the subject no longer maps to a user record.
func (r *SubjectRoles) RolesForSubject(ctx context.Context, email string) ([]string, error) {
	user, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.roles.RolesFor(user.RoleID), nil
}
