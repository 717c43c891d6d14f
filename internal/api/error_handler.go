package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/api/handler"
	"github.com/crediya/auth-service/internal/core/domain"
)

// ClassifiedError is the uniform translation of any raised failure:
// a decided HTTP status, a category label, and either a human message or a
// field-level message map. Never mutated after creation.
type ClassifiedError struct {
	Status   int
	Category string
	Message  string
	Fields   map[string]string
}

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// classifier is one link in the classification chain.
type classifier struct {
	supports func(err error) bool
	classify func(err error) ClassifiedError
}

// classifierChain is evaluated top to bottom; the first supporting entry
// wins. The final entry supports everything, so every error is classified.
var classifierChain = []classifier{
	{
		// Malformed or empty request bodies surface as echo bind errors.
		supports: func(err error) bool {
			var he *echo.HTTPError
			return errors.As(err, &he) && he.Code == http.StatusBadRequest
		},
		classify: func(err error) ClassifiedError {
			var he *echo.HTTPError
			errors.As(err, &he)
			return ClassifiedError{
				Status:   http.StatusBadRequest,
				Category: "Invalid Input",
				Message:  fmt.Sprintf("%v", he.Message),
			}
		},
	},
	{
		supports: func(err error) bool {
			var ve *handler.ValidationError
			return errors.As(err, &ve)
		},
		classify: func(err error) ClassifiedError {
			var ve *handler.ValidationError
			errors.As(err, &ve)
			return ClassifiedError{
				Status:   http.StatusBadRequest,
				Category: "Validation Error",
				Fields:   ve.Fields,
			}
		},
	},
	{
		supports: func(err error) bool {
			var be domain.BusinessRuleError
			return errors.As(err, &be)
		},
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusConflict,
				Category: "Business Rule Violation",
				Message:  err.Error(),
			}
		},
	},
	{
		supports: func(err error) bool { return errors.Is(err, domain.ErrTokenExpired) },
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusUnauthorized,
				Category: "Unauthorized",
				Message:  "token has expired",
			}
		},
	},
	{
		supports: func(err error) bool { return errors.Is(err, domain.ErrTokenInvalid) },
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusUnauthorized,
				Category: "Unauthorized",
				Message:  "invalid or missing token",
			}
		},
	},
	{
		supports: func(err error) bool { return errors.Is(err, domain.ErrInvalidCredentials) },
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusUnauthorized,
				Category: "Unauthorized",
				Message:  "invalid credentials",
			}
		},
	},
	{
		supports: func(err error) bool { return errors.Is(err, domain.ErrForbidden) },
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusForbidden,
				Category: "Forbidden",
				Message:  "access denied",
			}
		},
	},
	{
		supports: func(err error) bool { return errors.Is(err, domain.ErrUserNotFound) },
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusNotFound,
				Category: "Not Found",
				Message:  "user not found",
			}
		},
	},
	{
		supports: func(err error) bool { return errors.Is(err, domain.ErrTooManyAttempts) },
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusTooManyRequests,
				Category: "Too Many Requests",
				Message:  "too many login attempts, try again later",
			}
		},
	},
	{
		// Echo's own errors: 404 from the router, 405, etc.
		supports: func(err error) bool {
			var he *echo.HTTPError
			return errors.As(err, &he)
		},
		classify: func(err error) ClassifiedError {
			var he *echo.HTTPError
			errors.As(err, &he)
			return ClassifiedError{
				Status:   he.Code,
				Category: http.StatusText(he.Code),
				Message:  fmt.Sprintf("%v", he.Message),
			}
		},
	},
	{
		// Catch-all: infrastructure and unexpected errors are never
		// exposed verbatim; the cause stays in server-side logs.
		supports: func(err error) bool { return true },
		classify: func(err error) ClassifiedError {
			return ClassifiedError{
				Status:   http.StatusInternalServerError,
				Category: "Internal Server Error",
				Message:  "internal server error",
			}
		},
	},
}

// Classify runs the error through the classification chain.
func Classify(err error) ClassifiedError {
	for _, c := range classifierChain {
		if c.supports(err) {
			return c.classify(err)
		}
	}
	// Unreachable: the catch-all supports everything.
	return ClassifiedError{Status: http.StatusInternalServerError, Category: "Internal Server Error"}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that classifies every
// error through the chain and renders the canonical JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		classified := Classify(err)
		if classified.Status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		_ = c.JSON(classified.Status, errorResponse{
			Error:   classified.Category,
			Message: classified.Message,
			Fields:  classified.Fields,
		})
	}
}
