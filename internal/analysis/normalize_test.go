package analysis_test

import (
	"reflect"
	"testing"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase and punctuation", "Hello, World!", "hello world"},
		{"whitespace collapse", "  a \t b\n\nc ", "a b c"},
		{"punctuation only", "?!.,;", ""},
		{"empty", "", ""},
		{"digits kept", "I am 25 years old.", "i am 25 years old"},
		{"accented letters kept", "Café!", "café"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := analysis.Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Hello, World!", "  a  b  ", "I'm fine.", "café crème"}
	for _, in := range inputs {
		once := analysis.Normalize(in)
		twice := analysis.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	if got := analysis.Tokenize(""); got != nil {
		t.Errorf("Tokenize(\"\") = %v, want nil", got)
	}
	if got := analysis.Tokenize("..."); got != nil {
		t.Errorf("Tokenize(\"...\") = %v, want nil", got)
	}

	got := analysis.Tokenize("Cat, bat, hat!")
	want := []string{"cat", "bat", "hat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
