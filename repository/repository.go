package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/gqlbind/query"
	"github.com/forgo/gqlbind/store"
)

// Standard errors for repository construction and calls.
var (
	// ErrUnknownMethod indicates a call to a method name that was never
	// defined on the repository.
	ErrUnknownMethod = errors.New("unknown repository query method")

	// ErrDuplicateMethod indicates two definitions sharing a method name.
	ErrDuplicateMethod = errors.New("duplicate repository query method")
)

// Def declares one query method: its name, its parameter names in
// declaration order, its GQL template, and the processor producing the
// projected result shape.
type Def[R any] struct {
	Name    string
	Params  []string
	GQL     string
	Process query.Processor[R]
}

// Repository holds a set of named query methods bound to one store
// client. It is immutable after New and safe for concurrent use.
type Repository[R any] struct {
	queries map[string]*query.Query[R]
}

// New builds a repository from the given definitions. Tag resolution runs
// here so misdeclared methods surface at initialization, not at first
// call.
func New[R any](client store.Client, defs ...Def[R]) (*Repository[R], error) {
	queries := make(map[string]*query.Query[R], len(defs))
	for _, def := range defs {
		if _, ok := queries[def.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMethod, def.Name)
		}
		params := make([]query.Parameter, len(def.Params))
		for i, name := range def.Params {
			params[i] = query.Parameter{Name: name}
		}
		m := query.Method{Name: def.Name, Params: params}
		if _, err := query.ParamTags(m); err != nil {
			return nil, err
		}
		queries[def.Name] = query.New(m, client, def.GQL, def.Process)
	}
	return &Repository[R]{queries: queries}, nil
}

// Call executes the named query method with the given arguments.
func (r *Repository[R]) Call(ctx context.Context, name string, args ...any) (query.Results[R], error) {
	q, ok := r.queries[name]
	if !ok {
		return query.None[R](), fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return q.Execute(ctx, args...)
}

// Methods returns the defined method names, for introspection.
func (r *Repository[R]) Methods() []string {
	names := make([]string, 0, len(r.queries))
	for name := range r.queries {
		names = append(names, name)
	}
	return names
}
