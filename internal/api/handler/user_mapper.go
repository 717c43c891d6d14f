package handler

import (
	"time"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

const birthDateLayout = "2006-01-02"

func toRegisterInput(req registerUserRequest) ports.RegisterUserInput {
	// The datetime validation tag guarantees the format when present.
	var birthDate time.Time
	if req.BirthDate != "" {
		birthDate, _ = time.Parse(birthDateLayout, req.BirthDate)
	}

	return ports.RegisterUserInput{
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
		BirthDate:  birthDate,
		Email:      req.Email,
		DocumentID: req.DocumentID,
		Phone:      req.Phone,
		RoleID:     req.RoleID,
		BaseSalary: req.BaseSalary,
		Password:   req.Password,
	}
}

func toUserResponse(user *domain.User) *userResponse {
	resp := &userResponse{
		ID:         user.ID,
		GivenName:  user.GivenName,
		FamilyName: user.FamilyName,
		Email:      user.Email,
		DocumentID: user.DocumentID,
		Phone:      user.Phone,
		RoleID:     user.RoleID,
		BaseSalary: user.BaseSalary,
	}
	if !user.BirthDate.IsZero() {
		resp.BirthDate = user.BirthDate.Format(birthDateLayout)
	}
	if user.RoleID != nil {
		if name, ok := domain.RoleName(*user.RoleID); ok {
			resp.RoleName = name
		}
	}
	return resp
}
