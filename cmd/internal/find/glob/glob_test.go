package glob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"*.txt", `^.*\.txt$`},
		{"a?c", `^a.c$`},
		{"plain", `^plain$`},
		{"a+b", `^a\+b$`},
		{"(x)", `^\(x\)$`},
		{"[abc].go", `^[abc]\.go$`},
		{"[a-z]*", `^[a-z].*$`},
		// An unterminated class loses its special meaning.
		{"a[bc", `^a\[bc$`},
		{"", `^$`},
	}
	for _, test := range tests {
		got := Translate(test.pattern)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Translate(%q) diff (-want +got):\n%s", test.pattern, diff)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		want       bool
	}{
		{"a.txt", "*.txt", false, true},
		{"a.txtx", "*.txt", false, false},
		{"A.TXT", "*.txt", true, true},
		{"A.TXT", "*.txt", false, false},
		{"abc", "a?c", false, true},
		{"ac", "a?c", false, false},
		{"b.go", "[abc].go", false, true},
		{"d.go", "[abc].go", false, false},
		{"", "*", false, true},
		// Anchored at both ends: no substring matches.
		{"prefix-a.txt-suffix", "*.txt", false, false},
		{"xa.txt", "a.txt", false, false},
	}
	for _, test := range tests {
		got := Match(test.name, test.pattern, test.ignoreCase)
		if got != test.want {
			t.Errorf("Match(%q, %q, %v) = %v, want %v", test.name, test.pattern, test.ignoreCase, got, test.want)
		}
	}
}

func TestMatchUnparseablePattern(t *testing.T) {
	// The verbatim class copy can produce an invalid regexp. Such patterns
	// never match.
	if Match("z", "[z-a]", false) {
		t.Error("expected an invalid class to never match")
	}
}
