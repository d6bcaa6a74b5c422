package gql

import "strings"

// NormalizeTemplate strips trailing statement terminators from a raw GQL
// template: surrounding whitespace and any trailing semicolons. Callers
// normalize once when a query is declared, not per execution.
func NormalizeTemplate(template string) string {
	s := strings.TrimSpace(template)
	s = strings.TrimRight(s, ";")
	return strings.TrimRight(s, " \t\r\n")
}

// Binding is a single tag/value pair attached to a query.
type Binding struct {
	Tag   string
	Value Value
}

// Builder accumulates named bindings for a GQL template. It is mutated in
// place and finalized with Build; a Builder is for single-goroutine use.
type Builder struct {
	query    string
	order    []string
	bindings map[string]Value
}

// NewBuilder starts a builder for the given query string. The string is
// used as-is; apply NormalizeTemplate beforehand if the template may carry
// a trailing terminator.
func NewBuilder(query string) *Builder {
	return &Builder{
		query:    query,
		bindings: make(map[string]Value),
	}
}

// Bind attaches value under tag. The value must belong to the closed
// bindable type set; otherwise Bind fails with ErrUnsupportedType and the
// builder is left unchanged. Binding an already-bound tag overwrites the
// previous value.
func (b *Builder) Bind(tag string, value any) error {
	v, err := ValueOf(value)
	if err != nil {
		return err
	}
	if _, ok := b.bindings[tag]; !ok {
		b.order = append(b.order, tag)
	}
	b.bindings[tag] = v
	return nil
}

// Build snapshots the builder into an immutable BoundQuery. The builder
// may continue to be used; later mutations do not affect earlier builds.
func (b *Builder) Build() *BoundQuery {
	bound := make([]Binding, 0, len(b.order))
	for _, tag := range b.order {
		bound = append(bound, Binding{Tag: tag, Value: b.bindings[tag]})
	}
	return &BoundQuery{query: b.query, bindings: bound}
}

// BoundQuery is a fully parameterized query: the GQL string plus its named
// bindings in the order they were first bound. It is immutable and safe
// for concurrent reads.
type BoundQuery struct {
	query    string
	bindings []Binding
}

// GQL returns the query string.
func (q *BoundQuery) GQL() string {
	return q.query
}

// Bindings returns the tag/value pairs. The returned slice is a copy.
func (q *BoundQuery) Bindings() []Binding {
	out := make([]Binding, len(q.bindings))
	copy(out, q.bindings)
	return out
}

// Binding returns the value bound under tag, if any.
func (q *BoundQuery) Binding(tag string) (Value, bool) {
	for _, b := range q.bindings {
		if b.Tag == tag {
			return b.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of bound tags.
func (q *BoundQuery) Len() int {
	return len(q.bindings)
}
