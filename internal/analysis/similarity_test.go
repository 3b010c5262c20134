package analysis_test

import (
	"testing"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
)

func TestSimilarityBounds(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"think", "tink"},
		{"hello world", "helo wold"},
		{"a", "completely different"},
		{"", "something"},
		{"same", "same"},
	}
	for _, p := range pairs {
		got := analysis.Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilarityEdges(t *testing.T) {
	t.Parallel()

	if got := analysis.Similarity("", ""); got != 1.0 {
		t.Errorf("Similarity of two empties = %v, want 1.0", got)
	}
	if got := analysis.Similarity("", "hello"); got != 0.0 {
		t.Errorf("Similarity empty vs non-empty = %v, want 0.0", got)
	}
	if got := analysis.Similarity("Hello, World!", "hello world"); got != 1.0 {
		t.Errorf("Similarity after normalization = %v, want 1.0", got)
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"think", "tink"},
		{"red light", "led right"},
		{"very good", "wery gut"},
	}
	for _, p := range pairs {
		ab := analysis.Similarity(p[0], p[1])
		ba := analysis.Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityPhoneticDiscount(t *testing.T) {
	t.Parallel()

	// "led" differs from "red" only by a confusable pair, "bed" by a full
	// substitution, so the confusable variant must score higher.
	confusable := analysis.Similarity("red", "led")
	plain := analysis.Similarity("red", "bed")
	if confusable <= plain {
		t.Errorf("confusable pair scored %v, plain substitution %v; want confusable higher", confusable, plain)
	}

	close := analysis.Similarity("think", "tink")
	far := analysis.Similarity("think", "bonk")
	if close <= far {
		t.Errorf("Similarity(think, tink) = %v not greater than Similarity(think, bonk) = %v", close, far)
	}
}

func TestPhonemeScan(t *testing.T) {
	t.Parallel()

	got := analysis.PhonemeScan("I think three things", "I tink tree tings")
	if len(got) != 3 {
		t.Fatalf("PhonemeScan found %d sounds, want 3: %+v", len(got), got)
	}
	wantPositions := []int{1, 2, 3}
	for i, s := range got {
		if s.Position != wantPositions[i] {
			t.Errorf("sound %d at position %d, want %d", i, s.Position, wantPositions[i])
		}
		if s.Phoneme != "th" {
			t.Errorf("sound %d phoneme = %q, want th", i, s.Phoneme)
		}
		if s.Accuracy < 0 || s.Accuracy >= 0.8 {
			t.Errorf("sound %d accuracy = %v, want discounted below 0.8", i, s.Accuracy)
		}
		if s.Feedback == "" {
			t.Errorf("sound %d has no feedback", i)
		}
	}
}

func TestPhonemeScanPerfect(t *testing.T) {
	t.Parallel()

	got := analysis.PhonemeScan("I think so", "I think so")
	if len(got) != 1 {
		t.Fatalf("PhonemeScan found %d sounds, want 1", len(got))
	}
	if got[0].Accuracy != 1.0 {
		t.Errorf("exact word scored %v, want 1.0", got[0].Accuracy)
	}
}

func TestPhonemeScanMissingWord(t *testing.T) {
	t.Parallel()

	got := analysis.PhonemeScan("I think so", "I")
	if len(got) != 1 {
		t.Fatalf("PhonemeScan found %d sounds, want 1", len(got))
	}
	if got[0].Accuracy != 0 {
		t.Errorf("missing word scored %v, want 0", got[0].Accuracy)
	}
	if got[0].ActualSound != "" {
		t.Errorf("missing word ActualSound = %q, want empty", got[0].ActualSound)
	}
}

func TestPhonemeScanNoDifficultSounds(t *testing.T) {
	t.Parallel()

	if got := analysis.PhonemeScan("cat bat hat", "cat bat hat"); len(got) != 0 {
		t.Errorf("PhonemeScan on plain words = %+v, want none", got)
	}
}
