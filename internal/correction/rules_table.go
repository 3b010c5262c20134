package correction

import (
	"regexp"
	"strings"
	"unicode"
)

// The correction tables below are configuration data, not logic: the engine
// in engine.go never looks inside them. Earlier rules win overlapping spans,
// so specific multi-word patterns sit above the general single-word ones.

var contractionMap = map[string]string{
	"im":       "I'm",
	"dont":     "don't",
	"doesnt":   "doesn't",
	"didnt":    "didn't",
	"cant":     "can't",
	"wont":     "won't",
	"isnt":     "isn't",
	"arent":    "aren't",
	"wasnt":    "wasn't",
	"werent":   "weren't",
	"havent":   "haven't",
	"hasnt":    "hasn't",
	"couldnt":  "couldn't",
	"shouldnt": "shouldn't",
	"wouldnt":  "wouldn't",
	"youre":    "you're",
	"theyre":   "they're",
}

var spellingMap = map[string]string{
	"teh":        "the",
	"recieve":    "receive",
	"seperate":   "separate",
	"definately": "definitely",
	"becuase":    "because",
	"freind":     "friend",
	"wich":       "which",
	"tommorow":   "tomorrow",
	"untill":     "until",
	"writting":   "writing",
	"beleive":    "believe",
	"truely":     "truly",
	"alot":       "a lot",
}

var pluralMap = map[string]string{
	"peoples":      "people",
	"childs":       "children",
	"childrens":    "children",
	"mans":         "men",
	"womans":       "women",
	"informations": "information",
	"advices":      "advice",
	"furnitures":   "furniture",
	"homeworks":    "homework",
	"equipments":   "equipment",
}

// Words that take "a" despite a leading vowel letter, and "an" despite a
// leading consonant letter.
var silentVowelWords = map[string]struct{}{
	"university": {}, "uniform": {}, "user": {}, "unit": {}, "union": {},
	"european": {}, "one": {}, "once": {},
}

var silentConsonantWords = map[string]struct{}{
	"hour": {}, "honest": {}, "honor": {}, "honour": {}, "heir": {}, "herb": {},
}

var (
	reAgeExpr      = regexp.MustCompile(`\b[Ii] (?:has|have) (\d+) years? old\b`)
	reIHas         = regexp.MustCompile(`\bI has\b`)
	reThirdHave    = regexp.MustCompile(`\b([Hh]e|[Ss]he|[Ii]t) have\b`)
	rePluralWas    = regexp.MustCompile(`\b([Tt]hey|[Ww]e|[Yy]ou) was\b`)
	reIBe          = regexp.MustCompile(`\bI (?:is|are)\b`)
	reThirdDont    = regexp.MustCompile(`\b([Hh]e|[Ss]he|[Ii]t) don'?t\b`)
	reIAmAgree     = regexp.MustCompile(`\bI am agree\b`)
	reDoubleNeg    = regexp.MustCompile(`\b([Dd]on't|[Dd]oesn't|[Dd]idn't) have no\b`)
	reContraction  = buildWordAlternation(contractionMap)
	reArticleAAn   = regexp.MustCompile(`\b([Aa]) ([aeiouAEIOU][a-zA-Z]*)`)
	reArticleAnA   = regexp.MustCompile(`\b([Aa])n ([b-df-hj-np-tv-zB-DF-HJ-NP-TV-Z][a-zA-Z]*)`)
	reSpelling     = buildWordAlternation(spellingMap)
	rePlurals      = buildWordAlternation(pluralMap)
	reComparative  = regexp.MustCompile(`\b[Mm]ore (better|worse|easier|harder|bigger|smaller|faster|slower)\b`)
	reMarriedWith  = regexp.MustCompile(`\bmarried with\b`)
	reDependOf     = regexp.MustCompile(`\bdepend(s|ed)? of\b`)
	reInWeekday    = regexp.MustCompile(`\b[Ii]n ((?:[Mm]onday|[Tt]uesday|[Ww]ednesday|[Tt]hursday|[Ff]riday|[Ss]aturday|[Ss]unday))\b`)
	reGoodIn       = regexp.MustCompile(`\bgood in ([a-zA-Z]+ing)\b`)
	reAlwaysI      = regexp.MustCompile(`\b[Aa]lways I\b`)
	reMeAnd        = regexp.MustCompile(`\b[Mm]e and ([A-Za-z]+)\b`)
	reLowerI       = regexp.MustCompile(`\bi\b`)
	reSpacePunct   = regexp.MustCompile(`[ \t]+[,.;:!?]`)
	reDoubleSpace  = regexp.MustCompile(`[ \t]{2,}`)
	reStartLower   = regexp.MustCompile(`^[a-z]`)
)

func buildWordAlternation(m map[string]string) *regexp.Regexp {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(keys, "|") + `)\b`)
}

// mapLookup corrects via a lowercase map, keeping a leading capital.
func mapLookup(m map[string]string) func(string) string {
	return func(match string) string {
		repl, ok := m[strings.ToLower(match)]
		if !ok {
			return match
		}
		if startsUpper(match) {
			repl = upperFirst(repl)
		}
		return repl
	}
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// DefaultRules is the process-wide rule table, read-only after start.
var DefaultRules = []Rule{
	{
		Name:        "age-expression",
		Type:        TypeTense,
		Severity:    SeverityMajor,
		Explanation: "Age is expressed with 'to be': 'I am ... years old'.",
		Examples:    []string{"I has 25 years old -> I am 25 years old"},
		Pattern:     reAgeExpr,
		Replace: func(match string) string {
			return reAgeExpr.ReplaceAllString(match, "I am $1 years old")
		},
	},
	{
		Name:        "subject-verb-i-has",
		Type:        TypeGrammar,
		Severity:    SeverityMajor,
		Explanation: "The verb 'have' stays unchanged after 'I'.",
		Examples:    []string{"I has a car -> I have a car"},
		Pattern:     reIHas,
		Replace:     func(string) string { return "I have" },
	},
	{
		Name:        "subject-verb-third-have",
		Type:        TypeGrammar,
		Severity:    SeverityMajor,
		Explanation: "Third person singular takes 'has', not 'have'.",
		Examples:    []string{"He have a dog -> He has a dog"},
		Pattern:     reThirdHave,
		Replace: func(match string) string {
			return reThirdHave.ReplaceAllString(match, "$1 has")
		},
	},
	{
		Name:        "subject-verb-plural-was",
		Type:        TypeGrammar,
		Severity:    SeverityMajor,
		Explanation: "Plural subjects and 'you' take 'were', not 'was'.",
		Examples:    []string{"They was happy -> They were happy"},
		Pattern:     rePluralWas,
		Replace: func(match string) string {
			return rePluralWas.ReplaceAllString(match, "$1 were")
		},
	},
	{
		Name:        "subject-verb-i-be",
		Type:        TypeGrammar,
		Severity:    SeverityMajor,
		Explanation: "'I' pairs with 'am'.",
		Examples:    []string{"I is ready -> I am ready"},
		Pattern:     reIBe,
		Replace:     func(string) string { return "I am" },
	},
	{
		Name:        "subject-verb-third-dont",
		Type:        TypeGrammar,
		Severity:    SeverityMajor,
		Explanation: "Third person singular negates with 'doesn't'.",
		Examples:    []string{"She don't like it -> She doesn't like it"},
		Pattern:     reThirdDont,
		Replace: func(match string) string {
			return reThirdDont.ReplaceAllString(match, "$1 doesn't")
		},
	},
	{
		Name:        "i-am-agree",
		Type:        TypeGrammar,
		Severity:    SeverityModerate,
		Explanation: "'Agree' is a verb, so 'am' is dropped.",
		Examples:    []string{"I am agree with you -> I agree with you"},
		Pattern:     reIAmAgree,
		Replace:     func(string) string { return "I agree" },
	},
	{
		Name:        "double-negative",
		Type:        TypeGrammar,
		Severity:    SeverityModerate,
		Explanation: "English uses a single negation: 'don't have any'.",
		Examples:    []string{"I don't have no money -> I don't have any money"},
		Pattern:     reDoubleNeg,
		Replace: func(match string) string {
			return reDoubleNeg.ReplaceAllString(match, "$1 have any")
		},
	},
	{
		Name:        "missing-apostrophe",
		Type:        TypeContraction,
		Severity:    SeverityMajor,
		Explanation: "Contractions need an apostrophe.",
		Examples:    []string{"Im going -> I'm going", "dont -> don't"},
		Pattern:     reContraction,
		Replace:     mapLookup(contractionMap),
	},
	{
		Name:        "article-a-before-vowel",
		Type:        TypeArticle,
		Severity:    SeverityModerate,
		Explanation: "Use 'an' before a vowel sound.",
		Examples:    []string{"a apple -> an apple"},
		Pattern:     reArticleAAn,
		Replace: func(match string) string {
			parts := reArticleAAn.FindStringSubmatch(match)
			if parts == nil {
				return match
			}
			if _, silent := silentVowelWords[strings.ToLower(parts[2])]; silent {
				return match
			}
			article := "an"
			if parts[1] == "A" {
				article = "An"
			}
			return article + " " + parts[2]
		},
	},
	{
		Name:        "article-an-before-consonant",
		Type:        TypeArticle,
		Severity:    SeverityModerate,
		Explanation: "Use 'a' before a consonant sound.",
		Examples:    []string{"an house -> a house"},
		Pattern:     reArticleAnA,
		Replace: func(match string) string {
			parts := reArticleAnA.FindStringSubmatch(match)
			if parts == nil {
				return match
			}
			if _, silent := silentConsonantWords[strings.ToLower(parts[2])]; silent {
				return match
			}
			return parts[1] + " " + parts[2]
		},
	},
	{
		Name:        "common-misspelling",
		Type:        TypeSpelling,
		Severity:    SeverityMinor,
		Explanation: "Common misspelling.",
		Examples:    []string{"recieve -> receive", "becuase -> because"},
		Pattern:     reSpelling,
		Replace:     mapLookup(spellingMap),
	},
	{
		Name:        "irregular-plural",
		Type:        TypeVocabulary,
		Severity:    SeverityModerate,
		Explanation: "This noun has an irregular or uncountable plural.",
		Examples:    []string{"childs -> children", "informations -> information"},
		Pattern:     rePlurals,
		Replace:     mapLookup(pluralMap),
	},
	{
		Name:        "double-comparative",
		Type:        TypeVocabulary,
		Severity:    SeverityModerate,
		Explanation: "Comparatives are not combined with 'more'.",
		Examples:    []string{"more better -> better"},
		Pattern:     reComparative,
		Replace: func(match string) string {
			return reComparative.ReplaceAllString(match, "$1")
		},
	},
	{
		Name:        "married-to",
		Type:        TypePreposition,
		Severity:    SeverityModerate,
		Explanation: "'Married' takes the preposition 'to'.",
		Examples:    []string{"married with her -> married to her"},
		Pattern:     reMarriedWith,
		Replace:     func(string) string { return "married to" },
	},
	{
		Name:        "depend-on",
		Type:        TypePreposition,
		Severity:    SeverityModerate,
		Explanation: "'Depend' takes the preposition 'on'.",
		Examples:    []string{"it depends of you -> it depends on you"},
		Pattern:     reDependOf,
		Replace: func(match string) string {
			return reDependOf.ReplaceAllString(match, "depend$1 on")
		},
	},
	{
		Name:        "on-weekday",
		Type:        TypePreposition,
		Severity:    SeverityMinor,
		Explanation: "Days of the week take 'on'.",
		Examples:    []string{"in Monday -> on Monday"},
		Pattern:     reInWeekday,
		Replace: func(match string) string {
			return reInWeekday.ReplaceAllString(match, "on $1")
		},
	},
	{
		Name:        "good-at",
		Type:        TypePreposition,
		Severity:    SeverityModerate,
		Explanation: "'Good' pairs with 'at' before an activity.",
		Examples:    []string{"good in cooking -> good at cooking"},
		Pattern:     reGoodIn,
		Replace: func(match string) string {
			return reGoodIn.ReplaceAllString(match, "good at $1")
		},
	},
	{
		Name:        "adverb-position-always",
		Type:        TypeWordOrder,
		Severity:    SeverityModerate,
		Explanation: "'Always' goes after the subject: 'I always ...'.",
		Examples:    []string{"Always I wake up early -> I always wake up early"},
		Pattern:     reAlwaysI,
		Replace:     func(string) string { return "I always" },
	},
	{
		Name:        "me-and-order",
		Type:        TypeWordOrder,
		Severity:    SeverityModerate,
		Explanation: "Put the other person first and use 'I' as subject.",
		Examples:    []string{"Me and John went -> John and I went"},
		Pattern:     reMeAnd,
		Replace: func(match string) string {
			return reMeAnd.ReplaceAllString(match, "$1 and I")
		},
	},
	{
		Name:        "capitalize-i",
		Type:        TypeStyle,
		Severity:    SeverityMinor,
		Explanation: "The pronoun 'I' is always capitalized.",
		Examples:    []string{"i like tea -> I like tea"},
		Pattern:     reLowerI,
		Replace:     func(string) string { return "I" },
	},
	{
		Name:        "space-before-punctuation",
		Type:        TypePunctuation,
		Severity:    SeverityMinor,
		Explanation: "No space goes before punctuation marks.",
		Examples:    []string{"hello , world -> hello, world"},
		Pattern:     reSpacePunct,
		Replace: func(match string) string {
			return strings.TrimLeft(match, " \t")
		},
	},
	{
		Name:        "double-space",
		Type:        TypePunctuation,
		Severity:    SeverityMinor,
		Explanation: "Words are separated by a single space.",
		Examples:    []string{"too  many  spaces -> too many spaces"},
		Pattern:     reDoubleSpace,
		Replace:     func(string) string { return " " },
	},
	{
		Name:        "sentence-capital",
		Type:        TypeStyle,
		Severity:    SeverityMinor,
		Explanation: "Sentences start with a capital letter.",
		Examples:    []string{"hello there -> Hello there"},
		Pattern:     reStartLower,
		Replace:     strings.ToUpper,
	},
}
