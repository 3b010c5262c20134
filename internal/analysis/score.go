package analysis

import (
	"math"
	"unicode"
)

// Mode selects the score weighting. ModeGeneral is the regular speaking
// exercise; ModeFocused is the targeted sound-drill variant.
type Mode string

const (
	ModeGeneral Mode = "general"
	ModeFocused Mode = "focused"
)

func ParseMode(s string) Mode {
	if s == string(ModeFocused) {
		return ModeFocused
	}
	return ModeGeneral
}

// Tuning holds the pacing thresholds. The values are empirical; keep the
// defaults unless product scoring is deliberately being re-tuned.
type Tuning struct {
	PacingGoodLow  float64
	PacingGoodHigh float64
	PacingFairLow  float64
	PacingFairHigh float64
}

func DefaultTuning() Tuning {
	return Tuning{
		PacingGoodLow:  0.8,
		PacingGoodHigh: 1.2,
		PacingFairLow:  0.6,
		PacingFairHigh: 1.5,
	}
}

var tuning = DefaultTuning()

// Configure replaces the process-wide tuning. Call once at startup, before
// any analysis runs.
func Configure(t Tuning) {
	tuning = t
}

// PronunciationAnalysis is the terminal output of the pronunciation path.
// Scores are integers in [0,100]. Recommendations, strengths and
// improvements are filled by the feedback package.
type PronunciationAnalysis struct {
	OverallScore    int             `json:"overallScore"`
	Accuracy        int             `json:"accuracy"`
	Fluency         int             `json:"fluency"`
	Clarity         int             `json:"clarity"`
	Pacing          int             `json:"pacing"`
	StressPattern   int             `json:"stressPattern"`
	SoundAccuracies []SoundAccuracy `json:"soundAccuracies"`
	Recommendations []string        `json:"recommendations"`
	Strengths       []string        `json:"strengths"`
	Improvements    []string        `json:"improvements"`
}

var hesitationMarkers = map[string]struct{}{
	"um": {}, "uh": {}, "er": {}, "ah": {},
}

const longWordLen = 5

// Analyze scores spoken against target. Empty spoken input returns an
// all-zero analysis instead of an error; the feedback layer reports the
// missing speech to the user.
func Analyze(target, spoken string, mode Mode) PronunciationAnalysis {
	normTarget := Normalize(target)
	normSpoken := Normalize(spoken)

	if normSpoken == "" {
		return PronunciationAnalysis{SoundAccuracies: []SoundAccuracy{}}
	}

	targetWords := Tokenize(target)
	spokenWords := Tokenize(spoken)

	sim := Similarity(target, spoken)
	sounds := PhonemeScan(target, spoken)

	coverage := coverageRatio(targetWords, spokenWords)

	accuracy := coverage
	if len(targetWords) == 0 {
		accuracy = sim
	}
	if len(sounds) > 0 {
		accuracy = (coverage + meanSoundAccuracy(sounds)) / 2
	}

	fluency := fluencyScore(targetWords, spokenWords)
	clarity := clarityRatio(spokenWords)
	completeness := coverage
	pacing := pacingScore(normTarget, normSpoken)
	stress := stressAgreement(targetWords, spokenWords)

	var overall float64
	switch mode {
	case ModeFocused:
		overall = accuracy*0.3 + fluency*0.25 + clarity*0.2 + pacing*0.15 + stress*0.1
	default:
		overall = sim*0.4 + accuracy*0.3 + fluency*0.15 + completeness*0.15
	}

	if sounds == nil {
		sounds = []SoundAccuracy{}
	}

	return PronunciationAnalysis{
		OverallScore:    scale(overall),
		Accuracy:        scale(accuracy),
		Fluency:         scale(fluency),
		Clarity:         scale(clarity),
		Pacing:          scale(pacing),
		StressPattern:   scale(stress),
		SoundAccuracies: sounds,
	}
}

// coverageRatio is the fraction of target words present anywhere in the
// spoken words (set membership, not positional).
func coverageRatio(targetWords, spokenWords []string) float64 {
	if len(targetWords) == 0 {
		return 0
	}
	spoken := make(map[string]struct{}, len(spokenWords))
	for _, w := range spokenWords {
		spoken[w] = struct{}{}
	}
	hits := 0
	for _, w := range targetWords {
		if _, ok := spoken[w]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(targetWords))
}

// fluencyScore is the capped word-count ratio discounted 0.1 per hesitation
// marker, floored at zero.
func fluencyScore(targetWords, spokenWords []string) float64 {
	if len(targetWords) == 0 {
		return 0
	}
	ratio := float64(len(spokenWords)) / float64(len(targetWords))
	if ratio > 1 {
		ratio = 1
	}
	for _, w := range spokenWords {
		if _, ok := hesitationMarkers[w]; ok {
			ratio -= 0.1
		}
	}
	if ratio < 0 {
		ratio = 0
	}
	return ratio
}

// clarityRatio is the fraction of spoken words that look like recognizable
// vocabulary: purely alphabetic and longer than two letters.
func clarityRatio(spokenWords []string) float64 {
	if len(spokenWords) == 0 {
		return 0
	}
	clear := 0
	for _, w := range spokenWords {
		if len([]rune(w)) > 2 && isAlphabetic(w) {
			clear++
		}
	}
	return float64(clear) / float64(len(spokenWords))
}

func isAlphabetic(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}

// pacingScore is triangular on the length ratio of spoken to target text.
func pacingScore(normTarget, normSpoken string) float64 {
	tLen := len([]rune(normTarget))
	if tLen == 0 {
		return 0.6
	}
	ratio := float64(len([]rune(normSpoken))) / float64(tLen)

	switch {
	case ratio >= tuning.PacingGoodLow && ratio <= tuning.PacingGoodHigh:
		return 1.0
	case ratio >= tuning.PacingFairLow && ratio <= tuning.PacingFairHigh:
		return 0.8
	default:
		return 0.6
	}
}

// stressAgreement compares aligned word pairs on a long/short word
// classification. 1.0 when there is nothing to compare.
func stressAgreement(targetWords, spokenWords []string) float64 {
	n := len(targetWords)
	if len(spokenWords) < n {
		n = len(spokenWords)
	}
	if n == 0 {
		return 1.0
	}
	agree := 0
	for i := 0; i < n; i++ {
		if (len(targetWords[i]) > longWordLen) == (len(spokenWords[i]) > longWordLen) {
			agree++
		}
	}
	return float64(agree) / float64(n)
}

func meanSoundAccuracy(sounds []SoundAccuracy) float64 {
	if len(sounds) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sounds {
		sum += s.Accuracy
	}
	return sum / float64(len(sounds))
}

func scale(v float64) int {
	n := int(math.Round(v * 100))
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return n
}
