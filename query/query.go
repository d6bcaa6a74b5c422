package query

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/iterator"

	"github.com/forgo/gqlbind/gql"
	"github.com/forgo/gqlbind/store"
)

// Executor runs bound queries against a store client and collects the raw
// entities in result order.
type Executor struct {
	client store.Client
}

// NewExecutor creates an executor over the given store client.
func NewExecutor(client store.Client) Executor {
	return Executor{client: client}
}

// Run executes q and drains the result into a slice. The store's "no
// iterable result" signal (a nil iterator) is absorbed here and returned
// as an empty slice, never as nil. Store errors are returned unchanged.
func (e Executor) Run(ctx context.Context, q *gql.BoundQuery) ([]store.Entity, error) {
	it, err := e.client.RunGQL(ctx, q)
	if err != nil {
		return nil, err
	}
	results := make([]store.Entity, 0)
	if it == nil {
		return results, nil
	}
	for {
		entity, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}

// Processor transforms a raw store entity into the projected result shape
// the calling method asked for. It is the result-processing strategy
// supplied by the surrounding framework; entity-to-struct mapping lives
// there, not here.
type Processor[R any] func(store.Entity) (R, error)

// Query is a repository query method bound to a GQL template. It is built
// once at repository initialization and is immutable and safe for
// concurrent use; every Execute invocation keeps its state local.
type Query[R any] struct {
	method  Method
	gql     string
	exec    Executor
	process Processor[R]
}

// New binds a method descriptor to a GQL template and a result processor.
// The template's trailing terminator, if any, is stripped here, once.
func New[R any](m Method, client store.Client, template string, process Processor[R]) *Query[R] {
	return &Query[R]{
		method:  m,
		gql:     gql.NormalizeTemplate(template),
		exec:    NewExecutor(client),
		process: process,
	}
}

// Method returns the underlying method descriptor.
func (q *Query[R]) Method() Method {
	return q.method
}

// Execute resolves the method's parameter tags, binds args positionally,
// runs the query and projects each raw entity through the processor.
//
// Validation failures (tag resolution, argument count, unsupported
// argument types) surface before the store is reached. Store and
// processor errors propagate unchanged.
func (q *Query[R]) Execute(ctx context.Context, args ...any) (Results[R], error) {
	tags, err := ParamTags(q.method)
	if err != nil {
		return None[R](), err
	}
	bound, err := q.bindArgs(tags, args)
	if err != nil {
		return None[R](), err
	}
	raw, err := q.exec.Run(ctx, bound)
	if err != nil {
		return None[R](), err
	}
	return Project(Some(raw), q.process)
}

func (q *Query[R]) bindArgs(tags []string, args []any) (*gql.BoundQuery, error) {
	if len(tags) != len(args) {
		return nil, fmt.Errorf("%w: method %q declares %d tags but was called with %d arguments",
			ErrArgumentCount, q.method.Name, len(tags), len(args))
	}
	b := gql.NewBuilder(q.gql)
	for i, tag := range tags {
		if err := b.Bind(tag, args[i]); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
