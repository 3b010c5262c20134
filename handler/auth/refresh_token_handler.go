package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/config"
)

func RefreshTokenHandler(
	db *pgxpool.Pool,
	jwtConfig config.JwtAuthConfig,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RefreshTokenRequest
		if err := c.BodyParser(&req); err != nil {
			return api.BadRequest(c, api.InvalidateBody)
		}

		token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(jwtConfig.JwtSecret), nil
		})
		if err != nil || !token.Valid {
			return api.Unauthorized(c)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["username"] == nil {
			return api.Unauthorized(c)
		}

		username, ok1 := claims["username"].(string)
		if !ok1 {
			return api.Unauthorized(c)
		}

		response, err := GenerateJWTForUser(c.Context(), db, username, "",
			jwtConfig.JwtSecret, jwtConfig.AccessTokenDuration, jwtConfig.RefreshTokenDuration, true)
		if err != nil {
			return api.Unauthorized(c)
		}

		return api.Ok(c, response)
	}
}
