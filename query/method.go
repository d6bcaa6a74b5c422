package query

import (
	"errors"
	"fmt"
)

// Standard errors for query method validation.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrMissingParameterName indicates a declared parameter that could
	// not be resolved to a name.
	ErrMissingParameterName = errors.New("query method parameter without a name")

	// ErrDuplicateParameterName indicates two declared parameters that
	// resolve to the same name.
	ErrDuplicateParameterName = errors.New("duplicate query method parameter name")

	// ErrArgumentCount indicates a call whose argument count does not
	// match the method's declared parameter tags.
	ErrArgumentCount = errors.New("argument count does not match parameter tags")
)

// Parameter is a single declared query method parameter.
type Parameter struct {
	Name string
}

// Method describes a repository query method: its name and its ordered
// parameter declarations. Methods are built once at repository
// initialization and never mutated afterwards, so they are safe to share
// across goroutines.
type Method struct {
	Name   string
	Params []Parameter
}

// ParamTags resolves the method's parameters to their binding tags, one
// per parameter in declaration order. It is a pure function of the
// descriptor.
//
// Every parameter must carry a name (ErrMissingParameterName) and no two
// parameters may share one (ErrDuplicateParameterName). On error no
// partial tag list is returned.
func ParamTags(m Method) ([]string, error) {
	tags := make([]string, 0, len(m.Params))
	seen := make(map[string]struct{}, len(m.Params))
	for _, p := range m.Params {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: method %q", ErrMissingParameterName, m.Name)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q in method %q", ErrDuplicateParameterName, p.Name, m.Name)
		}
		seen[p.Name] = struct{}{}
		tags = append(tags, p.Name)
	}
	return tags, nil
}
