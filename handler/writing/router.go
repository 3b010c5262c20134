package writing

import (
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/adapter"
)

func GetRouter(
	group fiber.Router,
	dbPool *pgxpool.Pool,
	redisClient redis.UniversalClient,
	aiTutorAdapter *adapter.Adapter,
	correctionCacheTTL time.Duration,
) {
	writingGroup := group.Group("/writing")
	writingGroup.Post("/correct", NewCorrectHandler(
		redisClient,
		aiTutorAdapter,
		correctionCacheTTL,
		NewInsertAttemptFunc(dbPool),
	))
}
