package ports

import "context"

// EligibilityGate is the shared precondition every booking operation runs
// before touching rooms or bookings.
type EligibilityGate interface {
	Check(ctx context.Context, userID string) error
}
