package analysis

import (
	"github.com/antzucaro/matchr"
)

// SoundAccuracy is the per-occurrence grade for a difficult sound found in
// the target utterance. Position is the word index in the normalized target.
type SoundAccuracy struct {
	Phoneme     string  `json:"phoneme"`
	TargetSound string  `json:"targetSound"`
	ActualSound string  `json:"actualSound"`
	Accuracy    float64 `json:"accuracy"`
	Position    int     `json:"position"`
	Feedback    string  `json:"feedback"`
}

// Similarity scores how close actual is to target on [0,1] using a weighted
// codepoint edit distance. Substituting letters that form a known phonetic
// confusion pair costs less than a full edit, so "tink" sits closer to
// "think" than "bonk" does. Both strings are normalized first.
// Identical strings give 1.0, empty vs empty gives 1.0 by convention and
// empty vs non-empty gives 0.0.
func Similarity(target, actual string) float64 {
	t := []rune(Normalize(target))
	a := []rune(Normalize(actual))

	if len(t) == 0 && len(a) == 0 {
		return 1.0
	}
	if len(t) == 0 || len(a) == 0 {
		return 0.0
	}

	maxLen := float64(len(t))
	if float64(len(a)) > maxLen {
		maxLen = float64(len(a))
	}

	sim := (maxLen - weightedDistance(t, a)) / maxLen
	if sim < 0 {
		sim = 0
	}
	return sim
}

// weightedDistance is Levenshtein over codepoints with insert/delete cost 1
// and substitution cost taken from the confusion table.
func weightedDistance(a, b []rune) float64 {
	prev := make([]float64, len(b)+1)
	cur := make([]float64, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = float64(j)
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = float64(i)
		for j := 1; j <= len(b); j++ {
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + substitutionCost(a[i-1], b[j-1])

			best := sub
			if del < best {
				best = del
			}
			if ins < best {
				best = ins
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// PhonemeScan grades every occurrence of a known difficult-sound example
// word in the target against the actual word at the same index. When the
// actual word is a listed (or phonetically equivalent) common mistake, the
// word-level accuracy is discounted by the sound's severity.
func PhonemeScan(target, actual string) []SoundAccuracy {
	targetWords := Tokenize(target)
	actualWords := Tokenize(actual)

	var out []SoundAccuracy
	for i, tw := range targetWords {
		ds := soundForWord(tw)
		if ds == nil {
			continue
		}

		aw := ""
		if i < len(actualWords) {
			aw = actualWords[i]
		}

		acc := wordAccuracy(tw, aw)
		if aw != tw && isKnownMistake(ds, aw) {
			acc *= 1 - ds.Discount
		}
		if acc < 0 {
			acc = 0
		}
		if acc > 1 {
			acc = 1
		}

		out = append(out, SoundAccuracy{
			Phoneme:     ds.Phoneme,
			TargetSound: ds.TargetSound,
			ActualSound: aw,
			Accuracy:    acc,
			Position:    i,
			Feedback:    ds.Feedback,
		})
	}
	return out
}

// wordAccuracy blends the weighted edit similarity with Jaro-Winkler, which
// rewards shared prefixes and behaves better on short words.
func wordAccuracy(tw, aw string) float64 {
	if aw == "" {
		return 0
	}
	if aw == tw {
		return 1
	}
	return (Similarity(tw, aw) + matchr.JaroWinkler(tw, aw, false)) / 2
}

// isKnownMistake reports whether aw is a listed common mistake for the sound,
// either literally or by Double Metaphone equivalence, so spelling variants
// of the same mis-rendering ("tink"/"tinc") are both caught.
func isKnownMistake(ds *DifficultSound, aw string) bool {
	if aw == "" {
		return false
	}
	for _, m := range ds.Mistakes {
		if m == aw {
			return true
		}
	}

	p1, s1 := matchr.DoubleMetaphone(aw)
	for _, m := range ds.Mistakes {
		p2, s2 := matchr.DoubleMetaphone(m)
		if p1 != "" && (p1 == p2 || (s2 != "" && p1 == s2)) {
			return true
		}
		if s1 != "" && (s1 == p2 || (s2 != "" && s1 == s2)) {
			return true
		}
	}
	return false
}
