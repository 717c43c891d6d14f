package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

// UserService implements user registration and lookup.
type UserService struct {
	users     ports.UserStore
	validator ports.UserValidator
	hasher    ports.PasswordHasher
	log       zerolog.Logger
}

func NewUserService(users ports.UserStore, validator ports.UserValidator, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, validator: validator, hasher: hasher, log: log}
}

// Register validates the candidate against every business rule, hashes the
// password and persists the user. Validation strictly precedes persistence:
// no store mutation happens on a rejected candidate.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		GivenName:  input.GivenName,
		FamilyName: input.FamilyName,
		BirthDate:  input.BirthDate,
		Email:      input.Email,
		DocumentID: input.DocumentID,
		Phone:      input.Phone,
		RoleID:     input.RoleID,
		BaseSalary: input.BaseSalary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.validator.Validate(ctx, user); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	created, err := s.users.Save(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("failed to save user")
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// FindByEmail returns the user registered under the email, or
// domain.ErrUserNotFound.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}
