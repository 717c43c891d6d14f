package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
	findFn     func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findFn(ctx, email)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

const validRegisterBody = `{
	"given_name": "Alice",
	"family_name": "Smith",
	"birth_date": "1990-04-12",
	"email": "alice@x.com",
	"document_id": "CC-100",
	"role_id": 1,
	"base_salary": 2500000,
	"password": "supersecret"
}`

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			if input.Email != "alice@x.com" || input.BaseSalary != 2_500_000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.RoleID == nil || *input.RoleID != 1 {
				t.Fatalf("expected role id 1, got %v", input.RoleID)
			}
			id := int64(1)
			return &domain.User{ID: "u1", Email: input.Email, RoleID: &id, BaseSalary: input.BaseSalary}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(validRegisterBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@x.com" || resp["role_name"] != "CLIENT" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestUserHandler_Register_FieldValidation(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["email"]; !ok {
		t.Fatalf("expected email field error, got %+v", ve.Fields)
	}
	if _, ok := ve.Fields["password"]; !ok {
		t.Fatalf("expected password field error, got %+v", ve.Fields)
	}
}

func TestUserHandler_Register_BusinessErrorPassedThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			return nil, domain.EmailTakenError{Email: input.Email}
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(validRegisterBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var et domain.EmailTakenError
	if !errors.As(err, &et) {
		t.Fatalf("expected EmailTakenError to pass through, got %v", err)
	}
}

func TestUserHandler_GetByEmail_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		findFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "alice@x.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &domain.User{ID: "u1", Email: email}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?email=alice@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetByEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_GetByEmail_MissingParam(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		findFn: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetByEmail(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_GetByEmail_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		findFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?email=ghost@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetByEmail(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
