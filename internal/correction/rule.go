package correction

import "regexp"

// ErrorType categorizes a detected error. The grammar, tense and article
// types feed the grammar score; vocabulary and spelling feed the vocabulary
// score; style and punctuation feed the style score. The remaining types
// only contribute to the overall severity sum.
type ErrorType string

const (
	TypeContraction ErrorType = "contraction"
	TypeSpelling    ErrorType = "spelling"
	TypeGrammar     ErrorType = "grammar"
	TypeTense       ErrorType = "tense"
	TypeArticle     ErrorType = "article"
	TypePreposition ErrorType = "preposition"
	TypeWordOrder   ErrorType = "word-order"
	TypePunctuation ErrorType = "punctuation"
	TypeVocabulary  ErrorType = "vocabulary"
	TypeStyle       ErrorType = "style"
)

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
)

var severityWeights = map[Severity]float64{
	SeverityMajor:    3,
	SeverityModerate: 2,
	SeverityMinor:    1,
}

// Span is a half-open codepoint offset pair into the original text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Rule is one declarative correction: a matcher, a rewriter and metadata.
// Rules are declared once at process start and are read-only afterwards.
// Table order is the tie-break priority when matches overlap.
type Rule struct {
	Name        string
	Type        ErrorType
	Severity    Severity
	Explanation string
	Examples    []string
	Pattern     *regexp.Regexp
	Replace     func(match string) string
}

// DetectedError is one applied correction with its span in the original
// text. Confidence orders duplicates when merging with an external source.
type DetectedError struct {
	Type        ErrorType `json:"type"`
	Original    string    `json:"original"`
	Corrected   string    `json:"corrected"`
	Explanation string    `json:"explanation"`
	Rule        string    `json:"rule"`
	Severity    Severity  `json:"severity"`
	Position    Span      `json:"position"`
	Examples    []string  `json:"examples,omitempty"`
	Confidence  float64   `json:"confidence"`
}
