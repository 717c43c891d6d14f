package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// BusinessRuleError marks a domain-rule violation, as opposed to malformed
// input or an infrastructure failure. Every variant carries the offending
// value so the message can embed it.
type BusinessRuleError interface {
	error
	BusinessRule()
}

// SalaryOutOfRangeError reports a base salary outside the accepted range.
type SalaryOutOfRangeError struct {
	Salary float64
}

func (e SalaryOutOfRangeError) Error() string {
	return fmt.Sprintf("base salary %v is outside the range [%d, %d]", e.Salary, MinBaseSalary, MaxBaseSalary)
}

func (SalaryOutOfRangeError) BusinessRule() {}

// RoleNotFoundError reports a role identifier that references no known role.
type RoleNotFoundError struct {
	RoleID int64
}

func (e RoleNotFoundError) Error() string {
	return fmt.Sprintf("role %d does not exist", e.RoleID)
}

func (RoleNotFoundError) BusinessRule() {}

// EmailTakenError reports an email address already registered to another user.
type EmailTakenError struct {
	Email string
}

func (e EmailTakenError) Error() string {
	return fmt.Sprintf("email %s is already registered", e.Email)
}

func (EmailTakenError) BusinessRule() {}
