package correction

import (
	"math"
	"sort"
	"strings"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/feedback"
)

// externalConfidence is assumed for external errors that do not report one.
const externalConfidence = 0.9

// ScoreHints are optional per-category score overrides supplied by the
// external corrector. Nil fields fall back to the locally computed value.
type ScoreHints struct {
	Grammar    *int `json:"grammar,omitempty"`
	Vocabulary *int `json:"vocabulary,omitempty"`
	Style      *int `json:"style,omitempty"`
	Overall    *int `json:"overall,omitempty"`
}

// ExternalCorrection is the optional payload from the remote AI corrector.
// Absence or failure of the collaborator is represented by a nil pointer,
// which is a normal state, not an error.
type ExternalCorrection struct {
	CorrectedText string          `json:"correctedText,omitempty"`
	Hints         *ScoreHints     `json:"scoreHints,omitempty"`
	Errors        []DetectedError `json:"errors,omitempty"`
}

type CorrectionResult struct {
	Original        string          `json:"original"`
	Corrected       string          `json:"corrected"`
	Errors          []DetectedError `json:"errors"`
	OverallScore    int             `json:"overallScore"`
	GrammarScore    int             `json:"grammarScore"`
	VocabularyScore int             `json:"vocabularyScore"`
	StyleScore      int             `json:"styleScore"`
	Suggestions     []string        `json:"suggestions"`
	Explanation     string          `json:"explanation"`
}

// Weights are the empirical per-category score deductions. They were tuned
// against real learner text; treat them as product constants.
type Weights struct {
	Grammar    float64
	Vocabulary float64
	Style      float64
	Overall    float64
}

func DefaultWeights() Weights {
	return Weights{Grammar: 150, Vocabulary: 100, Style: 80, Overall: 50}
}

var weights = DefaultWeights()

// Configure replaces the process-wide score weights. Call once at startup.
func Configure(w Weights) {
	weights = w
}

// Correct runs the default rule table over text and aggregates with the
// optional external correction.
func Correct(text string, ext *ExternalCorrection) CorrectionResult {
	return Aggregate(text, ApplyRules(text, DefaultRules), ext)
}

// Aggregate merges locally detected errors with an optional external
// correction into the final CorrectionResult. External fields win where
// supplied; everything the external source omits is computed locally.
func Aggregate(original string, local []DetectedError, ext *ExternalCorrection) CorrectionResult {
	errs := mergeErrors(local, ext)

	corrected := Splice(original, errs)
	if ext != nil && strings.TrimSpace(ext.CorrectedText) != "" {
		corrected = ext.CorrectedText
	}

	res := CorrectionResult{
		Original:  original,
		Corrected: corrected,
		Errors:    errs,
	}
	scoreResult(&res)

	if ext != nil && ext.Hints != nil {
		if ext.Hints.Grammar != nil {
			res.GrammarScore = clampScore(*ext.Hints.Grammar)
		}
		if ext.Hints.Vocabulary != nil {
			res.VocabularyScore = clampScore(*ext.Hints.Vocabulary)
		}
		if ext.Hints.Style != nil {
			res.StyleScore = clampScore(*ext.Hints.Style)
		}
		if ext.Hints.Overall != nil {
			res.OverallScore = clampScore(*ext.Hints.Overall)
		}
	}

	res.Suggestions = feedback.Cap(suggestionTexts(errs), feedback.MaxSuggestions)

	major, moderate, minor := severityCounts(errs)
	res.Explanation = feedback.ErrorSummary(major, moderate, minor)

	return res
}

// Splice applies every error to original in descending start order. The
// order is mandatory: editing front to back would shift the offsets of every
// error after the first edit. Errors with out-of-range spans are skipped.
func Splice(original string, errs []DetectedError) string {
	sorted := make([]DetectedError, len(errs))
	copy(sorted, errs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position.Start > sorted[j].Position.Start
	})

	runes := []rune(original)
	for _, e := range sorted {
		if e.Position.Start < 0 || e.Position.End > len(runes) || e.Position.Start >= e.Position.End {
			continue
		}
		next := make([]rune, 0, len(runes))
		next = append(next, runes[:e.Position.Start]...)
		next = append(next, []rune(e.Corrected)...)
		next = append(next, runes[e.Position.End:]...)
		runes = next
	}
	return string(runes)
}

// mergeErrors combines local and external errors. Errors anchored at the
// same span are deduplicated by confidence, external winning ties. After
// deduplication any error overlapping an already kept one is dropped so the
// surviving set is always splice-safe.
func mergeErrors(local []DetectedError, ext *ExternalCorrection) []DetectedError {
	type key struct{ start, end int }
	bySpan := make(map[key]DetectedError, len(local))

	for _, e := range local {
		if e.Confidence == 0 {
			e.Confidence = ruleConfidence
		}
		bySpan[key{e.Position.Start, e.Position.End}] = e
	}
	if ext != nil {
		for _, e := range ext.Errors {
			if e.Confidence == 0 {
				e.Confidence = externalConfidence
			}
			k := key{e.Position.Start, e.Position.End}
			if existing, ok := bySpan[k]; ok && existing.Confidence > e.Confidence {
				continue
			}
			bySpan[k] = e
		}
	}

	merged := make([]DetectedError, 0, len(bySpan))
	for _, e := range bySpan {
		merged = append(merged, e)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Position.Start != merged[j].Position.Start {
			return merged[i].Position.Start < merged[j].Position.Start
		}
		return merged[i].Confidence > merged[j].Confidence
	})

	kept := merged[:0]
	var last *DetectedError
	for i := range merged {
		if last != nil && merged[i].Position.Overlaps(last.Position) {
			continue
		}
		kept = append(kept, merged[i])
		last = &kept[len(kept)-1]
	}
	return kept
}

func scoreResult(res *CorrectionResult) {
	wordCount := len(analysis.Tokenize(res.Original))
	if wordCount < 1 {
		wordCount = 1
	}
	wc := float64(wordCount)

	var grammar, vocab, style, severitySum float64
	for _, e := range res.Errors {
		switch e.Type {
		case TypeGrammar, TypeTense, TypeArticle:
			grammar++
		case TypeVocabulary, TypeSpelling:
			vocab++
		case TypeStyle, TypePunctuation:
			style++
		}
		severitySum += severityWeights[e.Severity]
	}

	res.GrammarScore = deduct(grammar/wc, weights.Grammar)
	res.VocabularyScore = deduct(vocab/wc, weights.Vocabulary)
	res.StyleScore = deduct(style/wc, weights.Style)
	res.OverallScore = deduct(severitySum/wc, weights.Overall)
}

func deduct(ratio, weight float64) int {
	return clampScore(int(math.Round(100 - ratio*weight)))
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func suggestionTexts(errs []DetectedError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, "Use \""+e.Corrected+"\" instead of \""+e.Original+"\": "+e.Explanation)
	}
	return out
}

func severityCounts(errs []DetectedError) (major, moderate, minor int) {
	for _, e := range errs {
		switch e.Severity {
		case SeverityMajor:
			major++
		case SeverityModerate:
			moderate++
		case SeverityMinor:
			minor++
		}
	}
	return major, moderate, minor
}
