package service

import (
	"context"
)

// NotificationService defines the interface for delivering messages to an
// account's email address. Delivery is best-effort from the caller's
// perspective; the orchestrating use case decides how to report a failure.
type NotificationService interface {
	// Send delivers a single message to the given address.
	Send(ctx context.Context, to, subject, body string) error
}
