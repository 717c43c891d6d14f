package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/api/metrics"
	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/ports"
	"github.com/crediya/auth-service/internal/core/service"
)

// Authorize enforces an access policy on the wrapped routes. The granted
// roles are resolved from the user record behind the identity's subject,
// never from the token payload. The target email for the ownership rule is
// read from the request's email query parameter; its absence is a deny for
// clients, not an error.
func Authorize(policy service.AccessPolicy, resolver ports.SubjectRoleResolver, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)

			var roles []string
			if identity.Authenticated() {
				resolved, err := resolver.RolesForSubject(c.Request().Context(), identity.Subject)
				if err != nil {
					return err
				}
				roles = resolved
			}

			target := domain.AccessTarget{
				Resource: resource,
				Email:    c.QueryParam("email"),
			}

			decision := policy.Authorize(identity, roles, target)
			if !decision.Allowed {
				metrics.AccessDenialsTotal.WithLabelValues(resource).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
