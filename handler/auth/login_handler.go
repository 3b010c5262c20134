package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/config"
)

func LoginHandler(db *pgxpool.Pool, jwtConfig config.JwtAuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		ctx := c.Context()
		if err := c.BodyParser(&req); err != nil {
			return api.BadRequest(c, api.InvalidateBody)
		}
		if err := req.Validate(); err != nil {
			return api.BadRequest(c, err.Error())
		}

		response, err := GenerateJWTForUser(ctx, db, req.Username, req.Password,
			jwtConfig.JwtSecret, jwtConfig.AccessTokenDuration, jwtConfig.RefreshTokenDuration, false)
		if err != nil {
			return api.Unauthorized(c)
		}

		return api.Ok(c, response)
	}
}
