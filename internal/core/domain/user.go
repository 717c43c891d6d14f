package domain

import "time"

// Salary bounds enforced on every new user, inclusive on both ends.
const (
	MinBaseSalary = 0
	MaxBaseSalary = 15_000_000
)

// User models a registered person. Email is unique across all users and
// doubles as the login username and the token subject. RoleID is optional:
// a user without a role can log in but holds no authority.
type User struct {
	ID           string    `json:"id,omitempty"`
	GivenName    string    `json:"given_name"`
	FamilyName   string    `json:"family_name"`
	BirthDate    time.Time `json:"birth_date"`
	Email        string    `json:"email"`
	DocumentID   string    `json:"document_id"`
	Phone        string    `json:"phone,omitempty"`
	RoleID       *int64    `json:"role_id,omitempty"`
	BaseSalary   float64   `json:"base_salary"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SalaryInRange reports whether the user's base salary is within the
// accepted range.
func (u *User) SalaryInRange() bool {
	return u.BaseSalary >= MinBaseSalary && u.BaseSalary <= MaxBaseSalary
}
