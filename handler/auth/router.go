package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/config"
)

func GetRouter(group fiber.Router,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
) {
	jwtConfig := cfg.JwtAuthConfig
	group.Get("/me", MeHandler(jwtConfig.JwtSecret))
	authGroup := group.Group("/auth")
	authGroup.Post("/register", NewRegisterHandler(dbPool))
	authGroup.Post("/login", LoginHandler(dbPool, jwtConfig))
	authGroup.Post("/refresh-token", RefreshTokenHandler(dbPool, jwtConfig))
}
