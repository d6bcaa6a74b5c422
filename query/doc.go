// Package query binds declared repository query methods to GQL and runs
// them against a store client.
//
// A Method describes a query method as declared by a repository: a name
// and an ordered parameter list. Each parameter name becomes the @tag
// bound to the runtime argument at the same position. Tag resolution,
// binding, execution and projection run synchronously per invocation:
//
//	q := query.New(method, client, template, processor)
//	results, err := q.Execute(ctx, "Orwell")
//
// # Validation Errors
//
// Misdeclared methods and call-site mistakes surface as distinct errors,
// checked with errors.Is():
//
//   - ErrMissingParameterName: a declared parameter has no name
//   - ErrDuplicateParameterName: two parameters share a name
//   - ErrArgumentCount: tag count and argument count differ
//   - gql.ErrUnsupportedType: an argument's type has no binding rule
//
// All four are programmer errors detected before the store is reached; no
// partial execution occurs. Store and processor errors propagate to the
// caller unchanged.
//
// # No-result vs zero results
//
// Results[T] distinguishes "no result was computed" (None) from "the
// query matched zero entities" (Some of an empty slice). Executing a
// query never yields None on success; None appears when a stage fails or
// when a projection input was deliberately short-circuited upstream.
package query
