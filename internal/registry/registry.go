package registry

import (
	"context"
	"fmt"
	"cmp"
	"log/slog"
	"slices"
)

// Key identifies one puzzle part.
type Key struct {
	Day  int
	Part int
}

func (k Key) String() string {
	return fmt.Sprintf("day%02d/part%d", k.Day, k.Part)
}

// Solver computes the answer for one puzzle part from its full input text.
type Solver func(ctx context.Context, input string) (string, error)

// Module is the interface every day package implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered solvers for a single application instance.
type Registry struct {
	solvers map[Key]Solver
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{solvers: make(map[Key]Solver)}
}

// NewWithModules creates a registry and registers every module into it.
func NewWithModules(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register stores the solver for day/part. Registering the same key twice
// is a programming error.
func (r *Registry) Register(day, part int, solver Solver) {
	key := Key{Day: day, Part: part}
	if _, exists := r.solvers[key]; exists {
		panic(fmt.Sprintf("solver for %s already registered", key))
	}
	if solver == nil {
		panic(fmt.Sprintf("nil solver for %s", key))
	}
	slog.Debug("Registering solver.", "key", key.String())
	r.solvers[key] = solver
}

// Lookup returns the solver for key.
func (r *Registry) Lookup(key Key) (Solver, bool) {
	s, ok := r.solvers[key]
	return s, ok
}

// Keys returns every registered key ordered by day, then part.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(a.Part, b.Part)
	})
	return keys
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int { return len(r.solvers) }
