package query

import (
	"errors"
	"strings"
	"testing"
)

func TestParamTags_DeclarationOrder(t *testing.T) {
	t.Parallel()
	m := Method{
		Name: "findByAuthorAndYear",
		Params: []Parameter{
			{Name: "author"},
			{Name: "year"},
			{Name: "limit"},
		},
	}

	tags, err := ParamTags(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"author", "year", "limit"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i, tag := range tags {
		if tag != want[i] {
			t.Errorf("tag %d: expected %q, got %q", i, want[i], tag)
		}
	}
}

func TestParamTags_NoParams(t *testing.T) {
	t.Parallel()
	tags, err := ParamTags(Method{Name: "findAll"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}

func TestParamTags_MissingName(t *testing.T) {
	t.Parallel()
	m := Method{
		Name:   "findByAuthor",
		Params: []Parameter{{Name: "author"}, {Name: ""}},
	}

	tags, err := ParamTags(m)
	if !errors.Is(err, ErrMissingParameterName) {
		t.Fatalf("expected ErrMissingParameterName, got %v", err)
	}
	if tags != nil {
		t.Error("expected no partial tag list on error")
	}
	if !strings.Contains(err.Error(), "findByAuthor") {
		t.Errorf("expected error to name the method, got: %v", err)
	}
}

func TestParamTags_DuplicateName(t *testing.T) {
	t.Parallel()
	m := Method{
		Name:   "findByAuthor",
		Params: []Parameter{{Name: "author"}, {Name: "year"}, {Name: "author"}},
	}

	tags, err := ParamTags(m)
	if !errors.Is(err, ErrDuplicateParameterName) {
		t.Fatalf("expected ErrDuplicateParameterName, got %v", err)
	}
	if tags != nil {
		t.Error("expected no partial tag list on error")
	}
	if !strings.Contains(err.Error(), "author") {
		t.Errorf("expected error to name the duplicate tag, got: %v", err)
	}
}

func TestParamTags_NonAdjacentDuplicates(t *testing.T) {
	t.Parallel()
	m := Method{
		Name: "find",
		Params: []Parameter{
			{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "b"},
		},
	}

	if _, err := ParamTags(m); !errors.Is(err, ErrDuplicateParameterName) {
		t.Errorf("expected ErrDuplicateParameterName for non-adjacent duplicate, got %v", err)
	}
}
