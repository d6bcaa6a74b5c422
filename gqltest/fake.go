package gqltest

import (
	"context"
	"sync"

	"cloud.google.com/go/datastore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/forgo/gqlbind/gql"
	"github.com/forgo/gqlbind/store"
)

// FakeClient is a scripted store.Client. Responses are consumed in FIFO
// order, one per RunGQL call; an unscripted call yields an empty result.
type FakeClient struct {
	mu       sync.Mutex
	queue    []response
	received []*gql.BoundQuery
}

type response struct {
	entities []store.Entity
	err      error
	// noResult makes RunGQL return a nil iterator, the store's
	// "no iterable result" signal.
	noResult bool
	// iterErr, when set, is returned by the iterator mid-stream after
	// the scripted entities are exhausted, instead of iterator.Done.
	iterErr error
}

// NewFakeClient creates an empty fake client.
func NewFakeClient() *FakeClient {
	return &FakeClient{}
}

// QueueEntities scripts a successful result batch.
func (f *FakeClient) QueueEntities(entities ...store.Entity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, response{entities: entities})
}

// QueueError scripts a RunGQL failure.
func (f *FakeClient) QueueError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, response{err: err})
}

// QueueNoResult scripts the nil-iterator "no iterable result" signal.
func (f *FakeClient) QueueNoResult() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, response{noResult: true})
}

// QueueIteratorError scripts a batch whose iterator fails with err after
// yielding the given entities.
func (f *FakeClient) QueueIteratorError(err error, entities ...store.Entity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, response{entities: entities, iterErr: err})
}

// Received returns every bound query RunGQL has seen, in call order.
func (f *FakeClient) Received() []*gql.BoundQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*gql.BoundQuery, len(f.received))
	copy(out, f.received)
	return out
}

// LastQuery returns the most recent bound query, or nil.
func (f *FakeClient) LastQuery() *gql.BoundQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.received) == 0 {
		return nil
	}
	return f.received[len(f.received)-1]
}

// RunGQL implements store.Client.
func (f *FakeClient) RunGQL(_ context.Context, q *gql.BoundQuery) (store.Iterator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.received = append(f.received, q)

	if len(f.queue) == 0 {
		return &fakeIterator{}, nil
	}
	next := f.queue[0]
	f.queue = f.queue[1:]

	if next.err != nil {
		return nil, next.err
	}
	if next.noResult {
		return nil, nil
	}
	return &fakeIterator{entities: next.entities, err: next.iterErr}, nil
}

type fakeIterator struct {
	entities []store.Entity
	err      error
	next     int
}

func (it *fakeIterator) Next() (store.Entity, error) {
	if it.next >= len(it.entities) {
		if it.err != nil {
			return store.Entity{}, it.err
		}
		return store.Entity{}, iterator.Done
	}
	e := it.entities[it.next]
	it.next++
	return e, nil
}

// BookEntity builds a Book fixture entity with a random key name.
func BookEntity(title, author string) store.Entity {
	return store.Entity{
		Key: datastore.NameKey("Book", uuid.NewString(), nil),
		Properties: map[string]any{
			"title":  title,
			"author": author,
		},
	}
}

// Entity builds a fixture entity of the given kind with a random key name
// and the given properties.
func Entity(kind string, props map[string]any) store.Entity {
	return store.Entity{
		Key:        datastore.NameKey(kind, uuid.NewString(), nil),
		Properties: props,
	}
}
