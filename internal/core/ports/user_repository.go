package ports

import (
	"context"

	"github.com/crediya/auth-service/internal/core/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleStore defines the interface for role persistence.
type RoleStore interface {
	ExistsByID(ctx context.Context, roleID int64) (bool, error)
}
