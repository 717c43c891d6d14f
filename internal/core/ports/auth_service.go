package ports

import (
	"context"

	"github.com/crediya/auth-service/internal/core/domain"
)

// AuthService exposes the login operation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// RoleResolver maps a role identifier to the set of role names it grants.
// It never fails: unmatched or absent identifiers yield an empty set.
type RoleResolver interface {
	RolesFor(roleID *int64) []string
}

// SubjectRoleResolver resolves the granted role names of an authenticated
// subject from the user record, not from the token payload.
type SubjectRoleResolver interface {
	RolesForSubject(ctx context.Context, email string) ([]string, error)
}
