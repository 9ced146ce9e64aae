package grading

import (
	"reflect"
	"testing"
)

func TestToggleIsInvolution(t *testing.T) {
	starts := []Answers{
		{},
		{"q": {"a"}},
		{"q": {"a", "b"}, "other": {"x"}},
	}
	for _, start := range starts {
		for _, value := range []string{"a", "b", "c"} {
			answers := start.Clone()
			answers.Toggle("q", value)
			answers.Toggle("q", value)
			if !sameSet(answers["q"], start["q"]) {
				t.Fatalf("toggle %q twice from %v gave %v", value, start["q"], answers["q"])
			}
			if !reflect.DeepEqual(answers["other"], start["other"]) {
				t.Fatalf("toggle touched another question: %v", answers)
			}
		}
	}
}

func TestToggleSelectThenDeselectRestoresExactly(t *testing.T) {
	start := Answers{"q": {"b", "a"}}
	answers := start.Clone()
	answers.Toggle("q", "c")
	answers.Toggle("q", "c")
	if !reflect.DeepEqual(answers, start) {
		t.Fatalf("expected %v, got %v", start, answers)
	}
}

func TestToggleKeepsOrder(t *testing.T) {
	answers := Answers{}
	answers.Toggle("q", "a")
	answers.Toggle("q", "b")
	answers.Toggle("q", "c")
	answers.Toggle("q", "b")
	if got := answers["q"]; !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", got)
	}
	if last, _ := answers.Last("q"); last != "c" {
		t.Fatalf("expected last c, got %q", last)
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	answers := Answers{"q": {"a"}}
	values := answers.Values("q")
	values[0] = "mutated"
	if answers["q"][0] != "a" {
		t.Fatalf("Values leaked internal slice")
	}
	if _, ok := answers.Last("missing"); ok {
		t.Fatalf("missing question should have no last value")
	}
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
		if seen[v] < 0 {
			return false
		}
	}
	return true
}
