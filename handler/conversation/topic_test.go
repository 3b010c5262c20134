package conversation_test

import (
	"testing"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/handler/conversation"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/feedback"
)

func TestDetectTopic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		message string
		want    string
	}{
		{"Hello there!", "greeting"},
		{"I had pizza for dinner.", "food"},
		{"My trip to Japan was amazing.", "travel"},
		{"My boss called a meeting.", "work"},
		{"It might rain later.", "weather"},
		{"Something else entirely.", "general"},
		{"", "general"},
	}
	for _, tc := range cases {
		if got := conversation.DetectTopic(tc.message); got != tc.want {
			t.Errorf("DetectTopic(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestCannedReplyRotates(t *testing.T) {
	t.Parallel()

	session := feedback.NewSession()
	first, topic := conversation.CannedReply(session, "I love to cook at home")
	if topic != "food" {
		t.Fatalf("topic = %q, want food", topic)
	}
	second, _ := conversation.CannedReply(session, "I love to cook at home")
	if first == second {
		t.Errorf("consecutive replies repeated: %q", first)
	}
}

func TestCannedReplyDeterministic(t *testing.T) {
	t.Parallel()

	a, _ := conversation.CannedReply(feedback.NewSession(), "hello friend")
	b, _ := conversation.CannedReply(feedback.NewSession(), "hello friend")
	if a != b {
		t.Errorf("fresh sessions gave different first replies: %q vs %q", a, b)
	}
}
