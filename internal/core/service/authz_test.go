package service

import (
	"testing"
	"time"

	"github.com/crediya/auth-service/internal/core/domain"
)

func identity(subject string) domain.Identity {
	return domain.Identity{Subject: subject, ExpiresAt: time.Now().Add(time.Hour)}
}

func TestReadPolicy_AdminAndAdvisorUnrestricted(t *testing.T) {
	policy := NewReadPolicy()

	for _, role := range []string{"ADMIN", "ADVISOR", "ROLE_ADMIN", "role_advisor", " admin "} {
		d := policy.Authorize(identity("alice@x.com"), []string{role}, domain.AccessTarget{Resource: "users", Email: "bob@x.com"})
		if !d.Allowed {
			t.Fatalf("role %q: expected grant for any resource, got deny (%s)", role, d.Reason)
		}
	}
}

func TestReadPolicy_ClientSelfService(t *testing.T) {
	policy := NewReadPolicy()
	id := identity("alice@x.com")

	if d := policy.Authorize(id, []string{"CLIENT"}, domain.AccessTarget{Resource: "users", Email: "alice@x.com"}); !d.Allowed {
		t.Fatalf("expected grant for own record, got deny (%s)", d.Reason)
	}
	if d := policy.Authorize(id, []string{"CLIENT"}, domain.AccessTarget{Resource: "users", Email: "ALICE@X.COM"}); !d.Allowed {
		t.Fatalf("expected case-insensitive email match, got deny (%s)", d.Reason)
	}
	if d := policy.Authorize(id, []string{"CLIENT"}, domain.AccessTarget{Resource: "users", Email: "bob@x.com"}); d.Allowed {
		t.Fatalf("expected deny for another client's record")
	}
}

func TestReadPolicy_ClientMissingTargetEmailDenied(t *testing.T) {
	policy := NewReadPolicy()
	d := policy.Authorize(identity("alice@x.com"), []string{"CLIENT"}, domain.AccessTarget{Resource: "users"})
	if d.Allowed {
		t.Fatalf("expected deny when the ownership check has no target email")
	}
}

func TestReadPolicy_DefaultDeny(t *testing.T) {
	policy := NewReadPolicy()

	if d := policy.Authorize(domain.Identity{}, []string{"ADMIN"}, domain.AccessTarget{}); d.Allowed {
		t.Fatalf("expected deny for unauthenticated identity")
	}
	if d := policy.Authorize(identity("alice@x.com"), nil, domain.AccessTarget{Email: "alice@x.com"}); d.Allowed {
		t.Fatalf("expected deny for empty role set")
	}
	if d := policy.Authorize(identity("alice@x.com"), []string{"INTERN"}, domain.AccessTarget{Email: "alice@x.com"}); d.Allowed {
		t.Fatalf("expected deny for unrecognized role")
	}
}

func TestCreatePolicy_NoSelfServiceException(t *testing.T) {
	policy := NewCreatePolicy()
	id := identity("alice@x.com")

	if d := policy.Authorize(id, []string{"ADMIN"}, domain.AccessTarget{Resource: "users"}); !d.Allowed {
		t.Fatalf("expected grant for admin, got deny (%s)", d.Reason)
	}
	if d := policy.Authorize(id, []string{"ADVISOR"}, domain.AccessTarget{Resource: "users"}); !d.Allowed {
		t.Fatalf("expected grant for advisor, got deny (%s)", d.Reason)
	}
	// A client may read their own record but never create users.
	if d := policy.Authorize(id, []string{"CLIENT"}, domain.AccessTarget{Resource: "users", Email: "alice@x.com"}); d.Allowed {
		t.Fatalf("expected deny for client on create")
	}
}
