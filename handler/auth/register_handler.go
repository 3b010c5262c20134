package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/logz"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/utils"
	"golang.org/x/crypto/bcrypt"
)

func NewRegisterHandler(
	dbPool *pgxpool.Pool,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()
		logger := logz.NewLogger()
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			logger.Error(err.Error())
			return api.BadRequest(c, api.InvalidateBody)
		}
		if err := req.Validate(); err != nil {
			logger.Error(err.Error())
			return api.BadRequest(c, err.Error())
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return api.InternalError(c, "Error hashing password")
		}
		req.Password = string(hashedPassword)
		sqlRegister := `
			insert into tbl_users (username, email, name, password, create_by, status)
				VALUES ($1,$2,$3,$4,$5,$6)
		`
		_, err = dbPool.Exec(ctx, sqlRegister, req.Username, req.Email, req.Name, req.Password, req.Username, utils.Pending)
		if err != nil {
			logger.Error(err.Error())
			return api.InternalError(c, api.SomeThingWentWrong)
		}

		return api.Ok(c, nil)
	}
}
