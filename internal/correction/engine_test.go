package correction_test

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/correction"
)

func TestApplyRulesContraction(t *testing.T) {
	t.Parallel()

	errs := correction.ApplyRules("Im happy", correction.DefaultRules)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	e := errs[0]
	if e.Original != "Im" || e.Corrected != "I'm" {
		t.Errorf("correction %q -> %q, want Im -> I'm", e.Original, e.Corrected)
	}
	if e.Type != correction.TypeContraction {
		t.Errorf("type = %q, want %q", e.Type, correction.TypeContraction)
	}
	if e.Severity != correction.SeverityMajor {
		t.Errorf("severity = %q, want %q", e.Severity, correction.SeverityMajor)
	}
	if e.Position.Start != 0 || e.Position.End != 2 {
		t.Errorf("span = %+v, want {0 2}", e.Position)
	}
}

func TestApplyRulesOverlapFirstRuleWins(t *testing.T) {
	t.Parallel()

	// The age expression contains "I has"; the earlier, more specific rule
	// claims the whole span and the subject-verb rule must stay silent.
	errs := correction.ApplyRules("I has 25 years old", correction.DefaultRules)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Rule != "age-expression" {
		t.Errorf("winning rule = %q, want age-expression", errs[0].Rule)
	}
	if errs[0].Type != correction.TypeTense {
		t.Errorf("type = %q, want %q", errs[0].Type, correction.TypeTense)
	}
	if errs[0].Corrected != "I am 25 years old" {
		t.Errorf("corrected = %q, want %q", errs[0].Corrected, "I am 25 years old")
	}
}

func TestApplyRulesArticles(t *testing.T) {
	t.Parallel()

	errs := correction.ApplyRules("I want a apple", correction.DefaultRules)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Corrected != "an apple" {
		t.Errorf("corrected = %q, want %q", errs[0].Corrected, "an apple")
	}

	// Words with a silent leading sound are exceptions and produce nothing.
	if errs := correction.ApplyRules("It is a university", correction.DefaultRules); len(errs) != 0 {
		t.Errorf("a university flagged: %+v", errs)
	}
	if errs := correction.ApplyRules("He waited an hour", correction.DefaultRules); len(errs) != 0 {
		t.Errorf("an hour flagged: %+v", errs)
	}
}

func TestApplyRulesSortedAndDeterministic(t *testing.T) {
	t.Parallel()

	text := "i dont know becuase me and Tom was busy"
	first := correction.ApplyRules(text, correction.DefaultRules)
	second := correction.ApplyRules(text, correction.DefaultRules)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ:\n%+v\n%+v", first, second)
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].Position.Start > first[i].Position.Start {
			t.Errorf("errors not in reading order: %+v", first)
		}
	}
}

func TestApplyRulesBrokenRulesSkipped(t *testing.T) {
	t.Parallel()

	rules := []correction.Rule{
		{
			Name:     "no-pattern",
			Type:     correction.TypeStyle,
			Severity: correction.SeverityMinor,
			Replace:  func(string) string { return "x" },
		},
		{
			Name:     "panics",
			Type:     correction.TypeStyle,
			Severity: correction.SeverityMinor,
			Pattern:  regexp.MustCompile(`\bboom\b`),
			Replace:  func(string) string { panic("boom") },
		},
		{
			Name:        "works",
			Type:        correction.TypeStyle,
			Severity:    correction.SeverityMinor,
			Explanation: "test rule",
			Pattern:     regexp.MustCompile(`\bboom\b`),
			Replace:     func(string) string { return "bang" },
		},
	}

	errs := correction.ApplyRules("boom", rules)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Rule != "works" {
		t.Errorf("surviving rule = %q, want works", errs[0].Rule)
	}
}

func TestApplyRulesNoopReplacementIgnored(t *testing.T) {
	t.Parallel()

	rules := []correction.Rule{
		{
			Name:     "noop",
			Type:     correction.TypeStyle,
			Severity: correction.SeverityMinor,
			Pattern:  regexp.MustCompile(`\w+`),
			Replace:  func(m string) string { return m },
		},
	}
	if errs := correction.ApplyRules("nothing to fix", rules); len(errs) != 0 {
		t.Errorf("noop replacement produced errors: %+v", errs)
	}
}

func TestApplyRulesRuneSpans(t *testing.T) {
	t.Parallel()

	// Multibyte text before the match must not shift the codepoint span.
	errs := correction.ApplyRules("Héllo , there", correction.DefaultRules)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Rule != "space-before-punctuation" {
		t.Fatalf("rule = %q, want space-before-punctuation", errs[0].Rule)
	}
	if errs[0].Position.Start != 5 || errs[0].Position.End != 7 {
		t.Errorf("span = %+v, want {5 7}", errs[0].Position)
	}
}
