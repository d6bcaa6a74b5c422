package query

// Results is an optional result list. It distinguishes "no result was
// computed" (None) from "computation produced zero items" (Some of an
// empty slice), so callers can tell a short-circuited pipeline stage from
// a query that matched nothing.
type Results[T any] struct {
	present bool
	items   []T
}

// Some wraps a computed item list. A nil slice is normalized to empty:
// Some always reports Present.
func Some[T any](items []T) Results[T] {
	if items == nil {
		items = []T{}
	}
	return Results[T]{present: true, items: items}
}

// None is the "no result computed" signal.
func None[T any]() Results[T] {
	return Results[T]{}
}

// Present reports whether a result was computed at all.
func (r Results[T]) Present() bool {
	return r.present
}

// Items returns the computed items, or nil when not Present.
func (r Results[T]) Items() []T {
	return r.items
}

// Len returns the number of computed items.
func (r Results[T]) Len() int {
	return len(r.items)
}

// Project maps each raw item through process, preserving order and count.
// A None input passes through as None without invoking process. The first
// processor error aborts the remaining mapping and is returned unchanged.
func Project[T, R any](raw Results[T], process func(T) (R, error)) (Results[R], error) {
	if !raw.Present() {
		return None[R](), nil
	}
	items := make([]R, 0, raw.Len())
	for _, item := range raw.Items() {
		projected, err := process(item)
		if err != nil {
			return None[R](), err
		}
		items = append(items, projected)
	}
	return Some(items), nil
}
