package store

import (
	"context"
	"errors"

	"cloud.google.com/go/datastore"

	"github.com/forgo/gqlbind/gql"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrConnection indicates the client is not connected or the
	// connection to the store failed.
	ErrConnection = errors.New("store connection error")

	// ErrQuery indicates a query execution failure at the store.
	ErrQuery = errors.New("store query error")
)

// Entity is the store-native raw result object: a key plus its decoded
// property values. Property values use the Go representations produced by
// the adapter (string, int64, float64, bool, time.Time, []byte,
// *datastore.Key, datastore.GeoPoint, nested Entity, []any, nil).
type Entity struct {
	Key        *datastore.Key
	Properties map[string]any
}

// Iterator streams entities from a query result. Next returns
// iterator.Done (google.golang.org/api/iterator) once the result is
// exhausted.
type Iterator interface {
	Next() (Entity, error)
}

// Client executes bound GQL queries against a datastore.
//
// A nil Iterator with a nil error means the store produced no iterable
// result for the query; callers treat that as zero results.
type Client interface {
	RunGQL(ctx context.Context, q *gql.BoundQuery) (Iterator, error)
}
