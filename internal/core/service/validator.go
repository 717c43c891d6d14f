package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

// UserValidator enforces the business invariants a candidate user must meet
// before persistence: base salary within range, referenced role existing,
// email not already registered.
type UserValidator struct {
	users ports.UserStore
	roles ports.RoleStore
}

func NewUserValidator(users ports.UserStore, roles ports.RoleStore) *UserValidator {
	return &UserValidator{users: users, roles: roles}
}

// Validate checks the candidate against every business rule. The salary
// bound is checked first and fails fast without issuing any store queries.
// The role-existence and email-uniqueness checks then run concurrently; the
// first failure cancels the sibling check and is the only error surfaced.
// Validation never mutates the candidate.
func (v *UserValidator) Validate(ctx context.Context, user *domain.User) error {
	if !user.SalaryInRange() {
		return domain.SalaryOutOfRangeError{Salary: user.BaseSalary}
	}

	g, ctx := errgroup.WithContext(ctx)

	if user.RoleID != nil {
		roleID := *user.RoleID
		g.Go(func() error {
			exists, err := v.roles.ExistsByID(ctx, roleID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.RoleNotFoundError{RoleID: roleID}
			}
			return nil
		})
	}

	email := user.Email
	g.Go(func() error {
		taken, err := v.users.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return domain.EmailTakenError{Email: email}
		}
		return nil
	})

	return g.Wait()
}
