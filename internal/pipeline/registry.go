package pipeline

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrStageAlreadyRegistered = errors.New("stage already registered")
	ErrStageNotFound          = errors.New("stage not found")
	ErrDependencyCycle        = errors.New("dependency cycle detected")
)

// Registry holds the analysis stages and resolves their run order. Stages
// declare what they consume; the registry turns those declarations into a
// schedule where every stage runs after the stages it reads from.
type Registry struct {
	mu     sync.RWMutex
	stages map[string]Stage
	order  []string // registration order, for deterministic scheduling
}

// NewRegistry creates an empty stage registry.
func NewRegistry() *Registry {
	return &Registry{stages: make(map[string]Stage)}
}

// Register adds a stage. Stage names are unique; registering the same
// name twice is a wiring bug, not a reconfiguration.
func (r *Registry) Register(s Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, dup := r.stages[name]; dup {
		return fmt.Errorf("%w: %s", ErrStageAlreadyRegistered, name)
	}
	r.stages[name] = s
	r.order = append(r.order, name)
	return nil
}

// Get returns a stage by name.
func (r *Registry) Get(name string) (Stage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stages[name]
	return s, ok
}

// List returns all stages in registration order.
func (r *Registry) List() []Stage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Stage, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.stages[name])
	}
	return out
}

// Names returns all stage names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// GetOrdered returns the stages in dependency order: a depth-first walk
// emits each stage after everything it depends on. Stages that share no
// dependency chain keep their registration order. Unknown dependencies
// and cycles are reported as errors.
func (r *Registry) GetOrdered() ([]Stage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	const (
		unvisited = iota
		visiting
		scheduled
	)
	state := make(map[string]int, len(r.stages))
	ordered := make([]Stage, 0, len(r.stages))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case scheduled:
			return nil
		case visiting:
			return fmt.Errorf("%w: at stage %q", ErrDependencyCycle, name)
		}
		state[name] = visiting
		stage := r.stages[name]
		for _, dep := range stage.Dependencies() {
			if _, ok := r.stages[dep]; !ok {
				return fmt.Errorf("%w: stage %q depends on %q", ErrStageNotFound, name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = scheduled
		ordered = append(ordered, stage)
		return nil
	}

	for _, name := range r.order {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// Validate checks that every declared dependency exists and that the
// stage graph is acyclic.
func (r *Registry) Validate() error {
	_, err := r.GetOrdered()
	return err
}
