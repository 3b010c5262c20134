package analysis_test

import (
	"testing"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
)

func TestAnalyzePerfectMatch(t *testing.T) {
	t.Parallel()

	got := analysis.Analyze("Cat, bat, hat", "Cat, bat, hat", analysis.ModeGeneral)
	if got.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", got.OverallScore)
	}
	if got.Accuracy != 100 {
		t.Errorf("Accuracy = %d, want 100", got.Accuracy)
	}
	if got.Fluency != 100 {
		t.Errorf("Fluency = %d, want 100", got.Fluency)
	}
	if len(got.SoundAccuracies) != 0 {
		t.Errorf("SoundAccuracies = %+v, want empty", got.SoundAccuracies)
	}
}

func TestAnalyzeEmptySpoken(t *testing.T) {
	t.Parallel()

	got := analysis.Analyze("Say something", "", analysis.ModeGeneral)
	if got.OverallScore != 0 || got.Accuracy != 0 || got.Fluency != 0 {
		t.Errorf("empty spoken input scored %+v, want all zeros", got)
	}
	if got.SoundAccuracies == nil {
		t.Error("SoundAccuracies is nil, want empty slice")
	}

	// Punctuation-only input normalizes to empty and takes the same path.
	got = analysis.Analyze("Say something", "?!.", analysis.ModeGeneral)
	if got.OverallScore != 0 {
		t.Errorf("punctuation-only spoken input scored %d, want 0", got.OverallScore)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	t.Parallel()

	cases := [][2]string{
		{"I think three things", "I tink tree tings"},
		{"The weather is nice today", "weather nice"},
		{"Short", "a very long answer that rambles on and on and on"},
		{"", "unexpected speech"},
		{"one two three", "um uh er ah um uh er ah"},
	}
	for _, tc := range cases {
		for _, mode := range []analysis.Mode{analysis.ModeGeneral, analysis.ModeFocused} {
			got := analysis.Analyze(tc[0], tc[1], mode)
			for name, v := range map[string]int{
				"OverallScore":  got.OverallScore,
				"Accuracy":      got.Accuracy,
				"Fluency":       got.Fluency,
				"Clarity":       got.Clarity,
				"Pacing":        got.Pacing,
				"StressPattern": got.StressPattern,
			} {
				if v < 0 || v > 100 {
					t.Errorf("Analyze(%q, %q, %s) %s = %d, out of [0,100]", tc[0], tc[1], mode, name, v)
				}
			}
		}
	}
}

func TestAnalyzeHesitationsLowerFluency(t *testing.T) {
	t.Parallel()

	clean := analysis.Analyze("I like green tea very much", "I like green tea very much", analysis.ModeGeneral)
	hesitant := analysis.Analyze("I like green tea very much", "I like um green tea uh very much", analysis.ModeGeneral)
	if hesitant.Fluency >= clean.Fluency {
		t.Errorf("hesitant fluency %d not below clean fluency %d", hesitant.Fluency, clean.Fluency)
	}
}

func TestAnalyzeMistakesLowerScore(t *testing.T) {
	t.Parallel()

	perfect := analysis.Analyze("I think three things", "I think three things", analysis.ModeGeneral)
	flawed := analysis.Analyze("I think three things", "I tink tree tings", analysis.ModeGeneral)
	if flawed.OverallScore >= perfect.OverallScore {
		t.Errorf("flawed overall %d not below perfect overall %d", flawed.OverallScore, perfect.OverallScore)
	}
	if flawed.Accuracy >= perfect.Accuracy {
		t.Errorf("flawed accuracy %d not below perfect accuracy %d", flawed.Accuracy, perfect.Accuracy)
	}
	if len(flawed.SoundAccuracies) != 3 {
		t.Errorf("flawed analysis has %d sound entries, want 3", len(flawed.SoundAccuracies))
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	t.Parallel()

	a := analysis.Analyze("The quick brown fox", "the quik brown fox", analysis.ModeFocused)
	b := analysis.Analyze("The quick brown fox", "the quik brown fox", analysis.ModeFocused)
	if a.OverallScore != b.OverallScore || a.Accuracy != b.Accuracy || a.Pacing != b.Pacing {
		t.Errorf("repeated analysis differs: %+v vs %+v", a, b)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	if analysis.ParseMode("focused") != analysis.ModeFocused {
		t.Error("ParseMode(focused) != ModeFocused")
	}
	if analysis.ParseMode("general") != analysis.ModeGeneral {
		t.Error("ParseMode(general) != ModeGeneral")
	}
	if analysis.ParseMode("") != analysis.ModeGeneral {
		t.Error("ParseMode empty should default to ModeGeneral")
	}
	if analysis.ParseMode("anything else") != analysis.ModeGeneral {
		t.Error("ParseMode unknown should default to ModeGeneral")
	}
}
