package ports

import "context"

// LoginLimiter throttles repeated failed login attempts per account.
type LoginLimiter interface {
	// Allowed reports whether the account may attempt a login now.
	Allowed(ctx context.Context, email string) (bool, error)
	// RecordFailure registers one failed attempt against the account.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
