package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
)

// openPaths can be reached without a token.
var openPaths = []string{"/auth/", "/health"}

func JWTMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, p := range openPaths {
			if strings.Contains(path, p) {
				return c.Next()
			}
		}

		tokenString := c.Get("Authorization")
		if len(tokenString) == 0 {
			return api.JwtError(c, "Token Not Found")
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return api.JwtError(c, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return api.JwtError(c, "Invalid or expired token")
		}

		if id, ok := claims["id"].(string); ok {
			c.Locals("userIdToken", id)
			c.Locals("userId", id)
		}
		if username, ok := claims["username"].(string); ok {
			c.Locals("username", username)
		}

		return c.Next()
	}
}
