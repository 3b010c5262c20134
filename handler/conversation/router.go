package conversation

import (
	"strings"

	"github.com/go-redis/redis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/httputil"
)

func GetRouter(
	group fiber.Router,
	redisClient redis.UniversalClient,
	aiTutorBaseURL string,
	postFunc httputil.HTTPPostRequestFunc,
) {
	chatURL := ""
	if aiTutorBaseURL != "" {
		chatURL = strings.TrimRight(aiTutorBaseURL, "/") + api.ChatPath
	}

	conversationGroup := group.Group("/conversation")
	conversationGroup.Post("/reply", NewReplyHandler(
		chatURL,
		postFunc,
		NewLoadSessionFunc(redisClient),
		NewSaveSessionFunc(redisClient),
	))
}
