package skills

import (
	"reflect"
	"testing"
)

func TestParseStack_CommaSeparated(t *testing.T) {
	got := ParseStack("Python, Django, React")
	want := []string{"Python", "Django", "React"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseStack_SemicolonsAndEmpties(t *testing.T) {
	got := ParseStack("Python; ; Django,,React")
	want := []string{"Python", "Django", "React"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseStack_WhitespaceFallback(t *testing.T) {
	got := ParseStack("Python Django React")
	want := []string{"Python", "Django", "React"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseStack_DedupeKeepsFirstCasing(t *testing.T) {
	got := ParseStack("Python, python, PYTHON, Django")
	want := []string{"Python", "Django"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCategorize_KnownAndUnknown(t *testing.T) {
	m := Categorize([]string{"Python", "React", "CustomFramework"})

	if !reflect.DeepEqual(m[CategoryBackend], []string{"Python"}) {
		t.Errorf("Backend = %v", m[CategoryBackend])
	}
	if !reflect.DeepEqual(m[CategoryFrontend], []string{"React"}) {
		t.Errorf("Frontend = %v", m[CategoryFrontend])
	}
	if !reflect.DeepEqual(m[CategoryOther], []string{"CustomFramework"}) {
		t.Errorf("Other = %v", m[CategoryOther])
	}
}

func TestCategorizeStack_DuplicatesWithinCategory(t *testing.T) {
	m := CategorizeStack("Python, python, Django")

	want := CategoryMap{CategoryBackend: {"Python", "Django"}}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("got %v, want %v", m, want)
	}
}

func TestCategorizeStack_EmptyInputYieldsPlaceholder(t *testing.T) {
	m := CategorizeStack("   ")

	want := CategoryMap{CategoryOther: {EmptyStackPlaceholder}}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("got %v, want %v", m, want)
	}
}

func TestCategoryOrder_FollowsPriority(t *testing.T) {
	m := CategoryMap{
		CategoryFrontend: {"React"},
		CategoryOther:    {"Figma"},
		CategoryBackend:  {"Go"},
	}

	got := CategoryOrder(m)
	want := []string{CategoryBackend, CategoryFrontend, CategoryOther}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCategoryOrder_PermutationOfKeys(t *testing.T) {
	m := CategorizeStack("Python, React, Docker, pytest, Swift, pandas, weirdtool")

	order := CategoryOrder(m)
	if len(order) != len(m) {
		t.Fatalf("order has %d entries, map has %d", len(order), len(m))
	}
	for _, c := range order {
		if _, ok := m[c]; !ok {
			t.Errorf("order contains %q not present in map", c)
		}
	}
}
