package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/user"
)

// UserRepository defines the storage contract for user accounts and their
// order histories. All state lives in memory for the process lifetime;
// there is no persistence across restarts.
type UserRepository interface {
	// GetOrCreate returns the user with the given name, creating it with
	// an empty history on first use. The same *user.User is returned for
	// every call with the same name.
	GetOrCreate(ctx context.Context, name string) (*user.User, error)

	// Get returns the user with the given name. Returns an
	// ObjectNotFoundError when the user has never ordered.
	Get(ctx context.Context, name string) (*user.User, error)

	// All returns every known user. Used by background jobs to take a
	// snapshot of open orders.
	All(ctx context.Context) ([]*user.User, error)
}
