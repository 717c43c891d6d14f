package service

import (
	"strings"

	"github.com/crediya/auth-service/internal/core/domain"
)

// rolePrefix is the transport prefix some token issuers prepend to role
// names. It is stripped before any comparison.
const rolePrefix = "ROLE_"

// AccessPolicy decides whether an authenticated identity may reach a target
// resource. It never errors: any identity or role set it cannot positively
// match is denied (default-deny).
//
// Rules, first match wins:
//  1. ADMIN or ADVISOR → grant, regardless of ownership.
//  2. CLIENT → grant only when the target email equals the identity's
//     subject email, compared case-insensitively. A missing target email is
//     a non-match, not an error.
//  3. Anything else → deny.
type AccessPolicy struct {
	// selfService enables rule 2. The create-user policy disables it:
	// a user being created has no owner yet.
	selfService bool
}

// NewReadPolicy returns the policy for reading user records, with the
// client self-service exception enabled.
func NewReadPolicy() AccessPolicy {
	return AccessPolicy{selfService: true}
}

// NewCreatePolicy returns the policy for creating users: ADMIN/ADVISOR only.
func NewCreatePolicy() AccessPolicy {
	return AccessPolicy{selfService: false}
}

// Authorize evaluates the policy for one request.
func (p AccessPolicy) Authorize(identity domain.Identity, roles []string, target domain.AccessTarget) domain.Decision {
	if !identity.Authenticated() {
		return domain.Decision{Reason: "unauthenticated"}
	}

	normalized := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		normalized[normalizeRole(r)] = struct{}{}
	}

	if _, ok := normalized[domain.RoleAdmin]; ok {
		return domain.Decision{Allowed: true, Reason: "admin"}
	}
	if _, ok := normalized[domain.RoleAdvisor]; ok {
		return domain.Decision{Allowed: true, Reason: "advisor"}
	}

	if p.selfService {
		if _, ok := normalized[domain.RoleClient]; ok {
			if target.Email != "" && strings.EqualFold(target.Email, identity.Subject) {
				return domain.Decision{Allowed: true, Reason: "self-service"}
			}
			return domain.Decision{Reason: "client may only access own record"}
		}
	}

	return domain.Decision{Reason: "no granting role"}
}

func normalizeRole(role string) string {
	role = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(role)), rolePrefix)
	return role
}
