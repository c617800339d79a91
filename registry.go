package sched

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrRoutineExists is returned when registering a routine under a name
	// that is already taken.
	ErrRoutineExists = errors.New("routine already registered")

	// ErrRoutineNotExists is returned when resolving a name no routine is
	// registered under.
	ErrRoutineNotExists = errors.New("routine not registered")
)

// Registry maps names to routines so crontab entries can refer to them.
type Registry struct {
	mu       sync.RWMutex
	routines map[string]Routine
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		routines: make(map[string]Routine),
	}
}

// Register a routine under a name.
func (r *Registry) Register(name string, routine Routine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.routines[name]; exists {
		return errors.Wrap(ErrRoutineExists, name)
	}

	r.routines[name] = routine
	return nil
}

// Resolve returns the routine registered under name.
func (r *Registry) Resolve(name string) (Routine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routine, exists := r.routines[name]
	if !exists {
		return nil, errors.Wrap(ErrRoutineNotExists, name)
	}
	return routine, nil
}
