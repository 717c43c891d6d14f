package ports

import (
	"context"
	"time"

	"github.com/crediya/auth-service/internal/core/domain"
)

// RegisterUserInput carries all data needed to register a new user.
// The password arrives in plaintext and is hashed before persistence.
type RegisterUserInput struct {
	GivenName  string
	FamilyName string
	BirthDate  time.Time
	Email      string
	DocumentID string
	Phone      string
	RoleID     *int64
	BaseSalary float64
	Password   string
}

// UserService exposes the user registration and lookup operations.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserValidator runs the business checks required before a user may be
// saved. A nil return means the candidate is acceptable as-is; validation
// never mutates the candidate.
type UserValidator interface {
	Validate(ctx context.Context, user *domain.User) error
}
