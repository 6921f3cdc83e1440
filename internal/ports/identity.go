package ports

import "context"

// Identity resolves the user whose data a session operates on
type Identity interface {
	// UserID returns a stable opaque identifier for the current user
	UserID(ctx context.Context) (string, error)
}
