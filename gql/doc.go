// Package gql models Cloud Datastore GQL query templates and their named
// parameter bindings.
//
// A query template is a GQL string containing @tag placeholders:
//
//	SELECT * FROM Book WHERE author = @author
//
// Values are bound to tags through a Builder. The set of bindable Go types
// is closed and matched by exact dynamic type; anything outside the set is
// rejected with ErrUnsupportedType rather than coerced:
//
//	string    []string
//	int64     []int64
//	float64   []float64
//	bool      []bool
//	time.Time []time.Time
//	[]byte    [][]byte
//	*datastore.Key []*datastore.Key
//	Cursor
//
// Note that plain int is deliberately not bindable: Datastore integers are
// 64-bit and callers must say so.
//
// # Building a query
//
//	b := gql.NewBuilder(`SELECT * FROM Book WHERE author = @author`)
//	if err := b.Bind("author", "Orwell"); err != nil {
//	    return err
//	}
//	bound := b.Build()
//
// The resulting BoundQuery is immutable and safe to hand to a store client.
package gql
