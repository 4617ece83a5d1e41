package discount

import (
	"sort"
	"sync"

	"pizzeria/internal/pkg/errs"
)

// Named pairs a discount name with its percentage for display.
type Named struct {
	Name    string
	Percent Percent
}

// Registry holds every discount the admin ever defined plus the single
// globally active percentage. Defining a discount always makes it the
// active one, regardless of name: last write wins. Only the active
// percentage influences pricing; named entries are retained for display.
//
// The registry is the one piece of shared mutable state in the system.
// Orders snapshot the active percentage once at construction, so a race
// between an admin redefining the discount and a user placing an order
// resolves to whichever write the read observed.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	named  map[string]Percent
	active Percent
}

// NewRegistry creates a registry with no named discounts and a neutral 0%
// active discount.
func NewRegistry() *Registry {
	return &Registry{
		named:  make(map[string]Percent),
		active: Zero(),
	}
}

// Define stores the named discount and sets it as the globally active one,
// overwriting any previously active value.
//
// Returns:
//   - ValueIsRequiredError if the name is empty
//   - the Percent's own validation error if it was not constructed
func (r *Registry) Define(name string, percent Percent) error {
	if name == "" {
		return errs.NewValueIsRequiredError("discount name")
	}
	if err := percent.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[name] = percent
	r.active = percent
	return nil
}

// Active returns a snapshot of the currently active discount percentage.
func (r *Registry) Active() Percent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// All returns every named discount sorted by name for deterministic display.
func (r *Registry) All() []Named {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Named, 0, len(r.named))
	for name, percent := range r.named {
		all = append(all, Named{Name: name, Percent: percent})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
