package handler

// registerUserRequest is the wire shape for POST /api/v1/users.
// The salary bounds here only shape the 400 response for obvious garbage;
// the authoritative range check lives in the business validator.
type registerUserRequest struct {
	GivenName  string  `json:"given_name" validate:"required"`
	FamilyName string  `json:"family_name" validate:"required"`
	BirthDate  string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Email      string  `json:"email" validate:"required,email"`
	DocumentID string  `json:"document_id" validate:"required"`
	Phone      string  `json:"phone"`
	RoleID     *int64  `json:"role_id"`
	BaseSalary float64 `json:"base_salary" validate:"gte=0"`
	Password   string  `json:"password" validate:"required,min=8"`
}

// userResponse is the wire shape of a persisted user. The password hash
// never leaves the service.
type userResponse struct {
	ID         string  `json:"id"`
	GivenName  string  `json:"given_name"`
	FamilyName string  `json:"family_name"`
	BirthDate  string  `json:"birth_date,omitempty"`
	Email      string  `json:"email"`
	DocumentID string  `json:"document_id"`
	Phone      string  `json:"phone,omitempty"`
	RoleID     *int64  `json:"role_id,omitempty"`
	RoleName   string  `json:"role_name,omitempty"`
	BaseSalary float64 `json:"base_salary"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user"`
}
