package pronunciation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/adapter"
)

func GetRouter(
	group fiber.Router,
	dbPool *pgxpool.Pool,
	sttProxyAdapter *adapter.Adapter,
) {
	pronunciationGroup := group.Group("/pronunciation")
	pronunciationGroup.Post("/analyze", NewAnalyzeHandler(
		NewInsertAttemptFunc(dbPool),
	))
	pronunciationGroup.Post("/score", NewScoreHandler(
		sttProxyAdapter,
		NewInsertAttemptFunc(dbPool),
	))
}
