package memory

import (
	"context"
	"sort"
	"sync"

	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/pkg/errs"
)

// UserRepository is an in-memory implementation of ports.UserRepository.
// Accounts live for the process lifetime; there is no persistence across
// restarts. Safe for concurrent use.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*user.User),
	}
}

// GetOrCreate returns the user with the given name, creating it with an
// empty history on first use.
func (r *UserRepository) GetOrCreate(_ context.Context, name string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[name]; ok {
		return u, nil
	}

	u, err := user.NewUser(name)
	if err != nil {
		return nil, err
	}
	r.users[name] = u
	return u, nil
}

// Get returns the user with the given name or an ObjectNotFoundError.
func (r *UserRepository) Get(_ context.Context, name string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user name", name)
	}
	return u, nil
}

// All returns every known user sorted by name for deterministic iteration.
func (r *UserRepository) All(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all, nil
}
