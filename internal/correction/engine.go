package correction

import (
	"sort"
	"unicode/utf8"
)

// ruleConfidence is attached to every locally detected error. External
// sources report their own confidence and win ties during merging.
const ruleConfidence = 0.8

// ApplyRules runs every rule in table order over text and returns the
// detected errors with codepoint spans, sorted in reading order.
//
// Overlap resolution: the first rule in table order claims the span of each
// of its matches; a later match touching a claimed span is dropped entirely,
// never partially applied. A rule with a missing pattern or replacer, or one
// that panics, is skipped for this call without affecting the other rules.
func ApplyRules(text string, rules []Rule) []DetectedError {
	var claimed []Span
	var out []DetectedError

	for _, r := range rules {
		errs, spans, ok := applyRule(text, r, claimed)
		if !ok {
			continue
		}
		claimed = append(claimed, spans...)
		out = append(out, errs...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position.Start < out[j].Position.Start
	})
	return out
}

func applyRule(text string, r Rule, claimed []Span) (errs []DetectedError, spans []Span, ok bool) {
	defer func() {
		if recover() != nil {
			errs, spans, ok = nil, nil, false
		}
	}()

	if r.Pattern == nil || r.Replace == nil {
		return nil, nil, false
	}

	for _, m := range r.Pattern.FindAllStringIndex(text, -1) {
		matched := text[m[0]:m[1]]
		corrected := r.Replace(matched)
		if corrected == matched {
			continue
		}

		span := Span{
			Start: utf8.RuneCountInString(text[:m[0]]),
			End:   utf8.RuneCountInString(text[:m[1]]),
		}
		if overlapsAny(claimed, span) || overlapsAny(spans, span) {
			continue
		}

		spans = append(spans, span)
		errs = append(errs, DetectedError{
			Type:        r.Type,
			Original:    matched,
			Corrected:   corrected,
			Explanation: r.Explanation,
			Rule:        r.Name,
			Severity:    r.Severity,
			Position:    span,
			Examples:    r.Examples,
			Confidence:  ruleConfidence,
		})
	}
	return errs, spans, true
}

func overlapsAny(spans []Span, s Span) bool {
	for _, c := range spans {
		if c.Overlaps(s) {
			return true
		}
	}
	return false
}
