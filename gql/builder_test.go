package gql

import (
	"errors"
	"testing"
)

func TestNormalizeTemplate_StripsTrailingTerminator(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"SELECT * FROM Book", "SELECT * FROM Book"},
		{"SELECT * FROM Book;", "SELECT * FROM Book"},
		{"SELECT * FROM Book ; ", "SELECT * FROM Book"},
		{"  SELECT * FROM Book;;\n", "SELECT * FROM Book"},
		{"SELECT * FROM Book WHERE a = @a;", "SELECT * FROM Book WHERE a = @a"},
	}

	for _, tc := range cases {
		if got := NormalizeTemplate(tc.in); got != tc.want {
			t.Errorf("NormalizeTemplate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuilder_BindAndBuild(t *testing.T) {
	t.Parallel()
	b := NewBuilder(`SELECT * FROM Book WHERE author = @author`)
	if err := b.Bind("author", "Orwell"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bound := b.Build()
	if bound.GQL() != `SELECT * FROM Book WHERE author = @author` {
		t.Errorf("unexpected query string: %q", bound.GQL())
	}
	if bound.Len() != 1 {
		t.Fatalf("expected 1 binding, got %d", bound.Len())
	}
	v, ok := bound.Binding("author")
	if !ok {
		t.Fatal("expected binding for tag author")
	}
	if v.Kind() != KindString || v.Interface().(string) != "Orwell" {
		t.Errorf("unexpected bound value: %v %v", v.Kind(), v.Interface())
	}
}

func TestBuilder_BindUnsupportedType(t *testing.T) {
	t.Parallel()
	b := NewBuilder(`SELECT * FROM Book WHERE x = @x`)

	err := b.Bind("x", struct{ A int }{A: 1})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if b.Build().Len() != 0 {
		t.Error("failed bind should leave the builder unchanged")
	}
}

func TestBuilder_RebindOverwrites(t *testing.T) {
	t.Parallel()
	b := NewBuilder(`SELECT * FROM Book WHERE author = @author`)
	if err := b.Bind("author", "Orwell"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Bind("author", "Huxley"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bound := b.Build()
	if bound.Len() != 1 {
		t.Fatalf("expected 1 binding after rebind, got %d", bound.Len())
	}
	v, _ := bound.Binding("author")
	if v.Interface().(string) != "Huxley" {
		t.Errorf("expected rebind to overwrite, got %v", v.Interface())
	}
}

func TestBuilder_PreservesBindOrder(t *testing.T) {
	t.Parallel()
	b := NewBuilder(`SELECT * FROM Book WHERE a = @a AND b = @b AND c = @c`)
	for _, tag := range []string{"c", "a", "b"} {
		if err := b.Bind(tag, tag); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	bindings := b.Build().Bindings()
	want := []string{"c", "a", "b"}
	for i, binding := range bindings {
		if binding.Tag != want[i] {
			t.Errorf("binding %d: expected tag %q, got %q", i, want[i], binding.Tag)
		}
	}
}

func TestBuilder_BuildSnapshotIsImmutable(t *testing.T) {
	t.Parallel()
	b := NewBuilder(`SELECT * FROM Book WHERE a = @a`)
	if err := b.Bind("a", int64(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := b.Build()

	// Later builder mutations must not leak into the earlier snapshot.
	if err := b.Bind("b", int64(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Len() != 1 {
		t.Errorf("earlier snapshot changed: expected 1 binding, got %d", first.Len())
	}

	// Mutating the returned bindings slice must not affect the query.
	bindings := first.Bindings()
	bindings[0].Tag = "mutated"
	if _, ok := first.Binding("a"); !ok {
		t.Error("mutating the returned slice changed the bound query")
	}
}
