package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/api/metrics"
	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
)

const identityKey = "identity"

// Auth is the authentication gate. It checks the skip list before any token
// work, extracts the bearer token, delegates verification to the token
// service and injects the resulting identity into the request context.
// Any failure short-circuits the chain; expired and otherwise-invalid
// tokens surface as distinct errors because they classify differently.
func Auth(tokens ports.TokenService, skipPrefixes []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenInvalid
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return domain.ErrTokenInvalid
			}

			identity, err := tokens.Extract(parts[1])
			if err != nil {
				reason := "invalid"
				if err == domain.ErrTokenExpired {
					reason = "expired"
				}
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity injected by the gate, or a zero
// identity when the gate did not run for this request.
func IdentityFrom(c echo.Context) domain.Identity {
	identity, _ := c.Get(identityKey).(domain.Identity)
	return identity
}
