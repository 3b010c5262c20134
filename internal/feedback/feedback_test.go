package feedback_test

import (
	"reflect"
	"testing"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/feedback"
)

func TestCap(t *testing.T) {
	t.Parallel()

	got := feedback.Cap([]string{"a", "b", "a", "", "  ", "c", "d"}, 3)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cap = %v, want %v", got, want)
	}

	if got := feedback.Cap(nil, 5); len(got) != 0 {
		t.Errorf("Cap(nil) = %v, want empty", got)
	}
}

func TestErrorSummary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		major, moderate, minor int
		want                   string
	}{
		{0, 0, 0, "Great job! No corrections needed."},
		{1, 0, 0, "Found 1 major error. Review the corrections below."},
		{2, 1, 3, "Found 2 major, 1 moderate, 3 minor errors. Review the corrections below."},
		{0, 0, 1, "Found 1 minor error. Review the corrections below."},
	}
	for _, tc := range cases {
		if got := feedback.ErrorSummary(tc.major, tc.moderate, tc.minor); got != tc.want {
			t.Errorf("ErrorSummary(%d,%d,%d) = %q, want %q", tc.major, tc.moderate, tc.minor, got, tc.want)
		}
	}
}

func TestForPronunciationNoSpeech(t *testing.T) {
	t.Parallel()

	var a analysis.PronunciationAnalysis
	feedback.ForPronunciation(&a, true)
	if len(a.Recommendations) != 1 {
		t.Fatalf("Recommendations = %v", a.Recommendations)
	}
	if a.Recommendations[0] != "No speech was detected. Move closer to the microphone and try again." {
		t.Errorf("Recommendations[0] = %q", a.Recommendations[0])
	}
	if len(a.Strengths) != 0 {
		t.Errorf("Strengths = %v, want empty", a.Strengths)
	}
	if len(a.Improvements) != 1 {
		t.Errorf("Improvements = %v, want one entry", a.Improvements)
	}
}

func TestForPronunciationHighScores(t *testing.T) {
	t.Parallel()

	a := analysis.PronunciationAnalysis{
		Accuracy: 95, Fluency: 90, Clarity: 92, Pacing: 88, StressPattern: 85,
	}
	feedback.ForPronunciation(&a, false)
	if len(a.Strengths) == 0 {
		t.Error("high scores produced no strengths")
	}
	if len(a.Strengths) > feedback.MaxStrengths {
		t.Errorf("Strengths over cap: %v", a.Strengths)
	}
	if len(a.Improvements) != 0 {
		t.Errorf("Improvements = %v, want none for high scores", a.Improvements)
	}
	if len(a.Recommendations) != 1 {
		t.Errorf("Recommendations = %v, want single keep-practicing line", a.Recommendations)
	}
}

func TestForPronunciationLowScores(t *testing.T) {
	t.Parallel()

	a := analysis.PronunciationAnalysis{
		Accuracy: 40, Fluency: 50, Clarity: 45, Pacing: 55, StressPattern: 60,
		SoundAccuracies: []analysis.SoundAccuracy{
			{Accuracy: 0.5, Feedback: "Work on the th sound."},
			{Accuracy: 0.9, Feedback: "should not appear"},
		},
	}
	feedback.ForPronunciation(&a, false)

	if a.Recommendations[0] != "Work on the th sound." {
		t.Errorf("Recommendations = %v, want sound feedback first", a.Recommendations)
	}
	for _, r := range a.Recommendations {
		if r == "should not appear" {
			t.Error("accurate sound leaked into recommendations")
		}
	}
	if len(a.Recommendations) > feedback.MaxSuggestions {
		t.Errorf("Recommendations over cap: %v", a.Recommendations)
	}
	if len(a.Improvements) == 0 || len(a.Improvements) > feedback.MaxImprovements {
		t.Errorf("Improvements = %v", a.Improvements)
	}
	if len(a.Strengths) != 0 {
		t.Errorf("Strengths = %v, want none for low scores", a.Strengths)
	}
}

func TestSessionNextReply(t *testing.T) {
	t.Parallel()

	s := feedback.NewSession()
	replies := []string{"one", "two", "three"}

	got := []string{
		s.NextReply("topic", replies),
		s.NextReply("topic", replies),
		s.NextReply("topic", replies),
		s.NextReply("topic", replies),
	}
	want := []string{"one", "two", "three", "one"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rotation = %v, want %v", got, want)
	}

	// Topics rotate independently.
	if r := s.NextReply("other", replies); r != "one" {
		t.Errorf("fresh topic started at %q, want one", r)
	}

	if r := s.NextReply("topic", nil); r != "" {
		t.Errorf("NextReply with no replies = %q, want empty", r)
	}
}

func TestSessionZeroValue(t *testing.T) {
	t.Parallel()

	var s feedback.Session
	if r := s.NextReply("t", []string{"only"}); r != "only" {
		t.Errorf("zero-value session reply = %q, want only", r)
	}
	if r := s.NextReply("t", []string{"only"}); r != "only" {
		t.Errorf("single reply should repeat, got %q", r)
	}
}
