// Package store defines the datastore client abstraction consumed by the
// query pipeline, and a real implementation backed by the Cloud Datastore
// gRPC API.
//
// # Interface Design
//
// The Client interface exposes a single operation:
//
//	RunGQL(ctx, boundQuery) (Iterator, error)
//
// A nil Iterator with a nil error is the store's "no iterable result"
// signal; callers higher in the pipeline treat it as zero results. The
// Iterator streams store-native entities and reports exhaustion with
// iterator.Done, following the google.golang.org/api/iterator convention.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//
//   - ErrConnection: client is not connected or the connection failed
//   - ErrQuery: query execution failed at the store
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, store.ErrQuery) {
//	    // Handle query failure
//	}
//
// # Usage Example
//
//	cfg, err := store.LoadConfig()
//	ds, err := store.NewDatastore(ctx, cfg)
//	defer ds.Close()
//
//	it, err := ds.RunGQL(ctx, bound)
package store
