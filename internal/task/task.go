// Package task defines the task registry contributed by the plugin.
// A task is an immutable named action; the registry enforces unique names
// and dispatches invocations by name.
package task

import (
	"context"

	"github.com/summonkit/summon-python/internal/errors"
	"github.com/summonkit/summon-python/internal/execute"
)

// Action is the invocable body of a task. It receives pass-through arguments
// from the caller and returns the results of every tool invocation it made.
// An Action returns an error only when no meaningful tool result exists
// (lookup misses, unstartable processes); tool failures are plain results.
type Action func(ctx context.Context, extraArgs []string) ([]execute.Result, error)

// Definition is an immutable named task contributed by the plugin.
// It is created at registration time and never mutated.
type Definition struct {
	// Name uniquely identifies the task within the registry.
	Name string
	// Summary is a one-line description shown in task listings.
	Summary string
	// Action executes the task.
	Action Action
}

// Registry holds the set of task definitions keyed by name.
// It is populated once at plugin registration and read-only afterwards.
type Registry struct {
	byName map[string]Definition
	order  []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Definition)}
}

// Register adds a definition to the registry.
// Registering a duplicate name fails with ErrTaskExists.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return errors.NewTaskError("task name must not be empty", nil)
	}
	if _, exists := r.byName[def.Name]; exists {
		return errors.NewTaskError("registering task", errors.ErrTaskExists).WithTask(def.Name)
	}
	r.byName[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// Lookup returns the definition for name.
// An unregistered name fails with ErrUnknownTask.
func (r *Registry) Lookup(name string) (Definition, error) {
	def, ok := r.byName[name]
	if !ok {
		return Definition{}, errors.NewTaskError("lookup failed", errors.ErrUnknownTask).WithTask(name)
	}
	return def, nil
}

// Definitions returns all registered definitions in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.byName[name])
	}
	return defs
}

// Names returns all registered task names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Run locates the task by name and executes it with extraArgs appended to
// its command templates. It returns the results of every tool invocation
// the task made. Unknown names fail with ErrUnknownTask before any process
// is spawned.
func (r *Registry) Run(ctx context.Context, name string, extraArgs []string) ([]execute.Result, error) {
	def, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return def.Action(ctx, extraArgs)
}

// ExitCode runs the task and folds its results into a single exit status:
// the first non-zero tool exit code, or 0 when every tool succeeded.
func (r *Registry) ExitCode(ctx context.Context, name string, extraArgs []string) (int, error) {
	results, err := r.Run(ctx, name, extraArgs)
	if err != nil {
		return 0, err
	}
	return execute.FirstFailure(results), nil
}
