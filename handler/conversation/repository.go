package conversation

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/feedback"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour

func sessionKey(sessionId string) string {
	return "conv:session:" + sessionId
}

type LoadSessionFunc func(ctx context.Context, logger *zap.Logger, sessionId string) *feedback.Session

type SaveSessionFunc func(ctx context.Context, logger *zap.Logger, sessionId string, session *feedback.Session)

// NewLoadSessionFunc reads the per-conversation reply state from redis. A
// missing or unreadable entry starts a fresh session.
func NewLoadSessionFunc(redisClient redis.UniversalClient) LoadSessionFunc {
	return func(ctx context.Context, logger *zap.Logger, sessionId string) *feedback.Session {
		if redisClient == nil || sessionId == "" {
			return feedback.NewSession()
		}

		raw, err := redisClient.Get(ctx, sessionKey(sessionId)).Result()
		if err != nil {
			if err != redis.Nil {
				logger.Warn("conversation session read failed", zap.Error(err))
			}
			return feedback.NewSession()
		}

		var s feedback.Session
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			logger.Warn("discarding bad conversation session", zap.String("sessionId", sessionId))
			return feedback.NewSession()
		}
		return &s
	}
}

func NewSaveSessionFunc(redisClient redis.UniversalClient) SaveSessionFunc {
	return func(ctx context.Context, logger *zap.Logger, sessionId string, session *feedback.Session) {
		if redisClient == nil || sessionId == "" || session == nil {
			return
		}

		raw, err := json.Marshal(session)
		if err != nil {
			return
		}
		if err := redisClient.Set(ctx, sessionKey(sessionId), raw, sessionTTL).Err(); err != nil {
			logger.Warn("conversation session write failed", zap.Error(err))
		}
	}
}

// Canned replies for when the AI tutor is unreachable. Keyed by topic;
// DetectTopic picks the bucket from keywords in the learner's message.
var cannedReplies = map[string][]string{
	"greeting": {
		"Hello! How is your day going so far?",
		"Hi there! What would you like to talk about today?",
		"Good to see you again! What's new?",
	},
	"food": {
		"That sounds delicious! What is your favorite dish to cook at home?",
		"I love talking about food. Do you prefer eating out or cooking?",
		"Interesting! What did you have for breakfast today?",
	},
	"travel": {
		"Traveling is a great way to practice English! Where would you like to go next?",
		"That sounds like an exciting trip. What did you enjoy most about it?",
		"Which country is at the top of your travel list?",
	},
	"work": {
		"Tell me more about your job. What does a typical day look like?",
		"Work can be busy! What do you enjoy most about what you do?",
		"Do you use English at work? It is great practice.",
	},
	"weather": {
		"How is the weather where you live today?",
		"I hope it is sunny there! Do you prefer warm or cold weather?",
		"Rainy days are perfect for studying English, aren't they?",
	},
	"general": {
		"That's interesting! Can you tell me more about that?",
		"I see. How does that make you feel?",
		"Great point! What happened next?",
		"Thanks for sharing. What else is on your mind?",
	},
}

// topicOrder fixes the match priority so the same message always lands in
// the same bucket.
var topicOrder = []string{"greeting", "food", "travel", "work", "weather"}

var topicKeywords = map[string][]string{
	"greeting": {"hello", "hi", "hey", "morning", "afternoon", "evening"},
	"food":     {"food", "eat", "cook", "lunch", "dinner", "breakfast", "restaurant", "hungry"},
	"travel":   {"travel", "trip", "visit", "country", "flight", "vacation", "holiday"},
	"work":     {"work", "job", "office", "boss", "meeting", "colleague"},
	"weather":  {"weather", "rain", "sunny", "cold", "hot", "snow", "cloudy"},
}

// DetectTopic returns the canned-reply bucket for message, defaulting to
// "general" when no keyword matches.
func DetectTopic(message string) string {
	tokens := analysis.Tokenize(analysis.Normalize(message))
	for _, tok := range tokens {
		for _, topic := range topicOrder {
			for _, kw := range topicKeywords[topic] {
				if tok == kw {
					return topic
				}
			}
		}
	}
	return "general"
}

// CannedReply rotates through the replies of the detected topic using the
// per-conversation session state.
func CannedReply(session *feedback.Session, message string) (string, string) {
	topic := DetectTopic(strings.TrimSpace(message))
	return session.NextReply(topic, cannedReplies[topic]), topic
}
