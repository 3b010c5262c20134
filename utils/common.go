package utils

import (
	"github.com/gofiber/fiber/v2"
)

const (
	PRACTICE     = "PRACTICE"
	WRITING      = "WRITING"
	CONVERSATION = "CONVERSATION"

	FlagY = "Y"
	FlagN = "N"

	Pending   = "PENDING"
	Rejected  = "REJECTED"
	WaitEmail = "WAIT_EMAIL"
	APPROVED  = "APPROVED"
)

func GetUserIDToken(c *fiber.Ctx) string {
	userIdToken, _ := c.Locals("userIdToken").(string)
	return userIdToken
}

func GetUserID(c *fiber.Ctx) string {
	userId, _ := c.Locals("userId").(string)
	return userId
}
