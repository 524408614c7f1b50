package matching

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{name: "empty", input: "", expect: []string{}},
		{name: "only separators", input: " , ,, ", expect: []string{}},
		{name: "dedup case fold and empty segments", input: "Python, python , PYTHON,,", expect: []string{"python"}},
		{name: "multi word skills kept intact", input: "Machine Learning, SQL ,go", expect: []string{"go", "machine learning", "sql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.input).Sorted()
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestSkillSet_NilIsEmpty(t *testing.T) {
	var s SkillSet
	if s.Len() != 0 {
		t.Fatalf("expected empty set")
	}
	if s.Has("go") {
		t.Fatalf("nil set must not contain anything")
	}
	if got := s.Intersect(NewSkillSet("go")).Len(); got != 0 {
		t.Fatalf("expected empty intersection, got %d", got)
	}
	if got := NewSkillSet("go").Difference(s).Sorted(); !reflect.DeepEqual(got, []string{"go"}) {
		t.Fatalf("expected [go], got %v", got)
	}
}
