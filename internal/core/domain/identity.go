package domain

import "time"

// Identity is the authenticated principal attached to a request by the
// authentication gate. It carries only what the token proves: the subject
// (the user's email) and the token expiry. Roles are deliberately absent —
// authorization resolves them from the user record, keeping the gate
// independent of the user store.
type Identity struct {
	Subject   string
	ExpiresAt time.Time
}

// Authenticated reports whether the identity belongs to a verified token.
func (i Identity) Authenticated() bool {
	return i.Subject != ""
}

// AccessTarget describes the resource a request is trying to reach, reduced
// to what the ownership rule needs: for the user-lookup endpoint, the
// queried email.
type AccessTarget struct {
	Resource string
	Email    string
}

// Decision is the outcome of one authorization check. Decisions are produced
// per request and never cached: ownership depends on per-request data.
type Decision struct {
	Allowed bool
	Reason  string
}
