// Package feedback turns scores and error lists into the capped, templated
// text shown to learners. Everything here is deterministic: the same input
// always produces the same lists.
package feedback

import (
	"fmt"
	"strings"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
)

const (
	MaxSuggestions  = 5
	MaxStrengths    = 3
	MaxImprovements = 4
)

// Cap removes duplicates from list, preserving order, and truncates it to
// max entries.
func Cap(list []string, max int) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, max)
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}

// ErrorSummary renders the single explanation sentence for a correction
// result from its severity counts.
func ErrorSummary(major, moderate, minor int) string {
	total := major + moderate + minor
	if total == 0 {
		return "Great job! No corrections needed."
	}

	var parts []string
	if major > 0 {
		parts = append(parts, fmt.Sprintf("%d major", major))
	}
	if moderate > 0 {
		parts = append(parts, fmt.Sprintf("%d moderate", moderate))
	}
	if minor > 0 {
		parts = append(parts, fmt.Sprintf("%d minor", minor))
	}

	noun := "errors"
	if total == 1 {
		noun = "error"
	}
	return fmt.Sprintf("Found %s %s. Review the corrections below.", strings.Join(parts, ", "), noun)
}

// ForPronunciation fills the recommendation, strength and improvement lists
// of a. spokenEmpty marks the no-speech-detected case.
func ForPronunciation(a *analysis.PronunciationAnalysis, spokenEmpty bool) {
	if spokenEmpty {
		a.Recommendations = []string{"No speech was detected. Move closer to the microphone and try again."}
		a.Strengths = []string{}
		a.Improvements = []string{"Record your answer again in a quiet place."}
		return
	}

	var recs []string
	for _, s := range a.SoundAccuracies {
		if s.Accuracy < 0.8 {
			recs = append(recs, s.Feedback)
		}
	}
	if a.Accuracy < 70 {
		recs = append(recs, "Slow down and pronounce each word separately.")
	}
	if a.Fluency < 70 {
		recs = append(recs, "Try to speak in one steady flow without filler words.")
	}
	if a.Pacing < 80 {
		recs = append(recs, "Match the length and rhythm of the target sentence.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep practicing at this level to build consistency.")
	}
	a.Recommendations = Cap(recs, MaxSuggestions)

	var strengths []string
	if a.Accuracy >= 85 {
		strengths = append(strengths, "Clear word pronunciation")
	}
	if a.Fluency >= 85 {
		strengths = append(strengths, "Smooth and steady delivery")
	}
	if a.Pacing >= 80 {
		strengths = append(strengths, "Good speaking pace")
	}
	if a.StressPattern >= 80 {
		strengths = append(strengths, "Natural word stress")
	}
	a.Strengths = Cap(strengths, MaxStrengths)

	var improvements []string
	if a.Accuracy < 70 {
		improvements = append(improvements, "Practice the highlighted sounds word by word.")
	}
	if a.Fluency < 70 {
		improvements = append(improvements, "Reduce filler words like 'um' and 'uh'.")
	}
	if a.Clarity < 70 {
		improvements = append(improvements, "Articulate longer words fully.")
	}
	if a.Pacing < 70 {
		improvements = append(improvements, "Keep your answer close to the target length.")
	}
	if a.StressPattern < 70 {
		improvements = append(improvements, "Put more emphasis on the stressed words.")
	}
	a.Improvements = Cap(improvements, MaxImprovements)
}

// Session tracks which canned reply was last used per topic within one
// conversation, replacing what used to be process-wide mutable state. One
// Session lives for one conversation and is never shared between them.
type Session struct {
	LastUsed map[string]int `json:"lastUsed"`
}

func NewSession() *Session {
	return &Session{LastUsed: make(map[string]int)}
}

// NextReply returns the next reply for topic, rotating through the list so
// consecutive calls never repeat the same entry (unless there is only one).
func (s *Session) NextReply(topic string, replies []string) string {
	if len(replies) == 0 {
		return ""
	}
	if s.LastUsed == nil {
		s.LastUsed = make(map[string]int)
	}

	idx := 0
	if last, ok := s.LastUsed[topic]; ok {
		idx = (last + 1) % len(replies)
	}
	s.LastUsed[topic] = idx
	return replies[idx]
}
