package pronunciation

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/feedback"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/logz"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/utils"
	"go.uber.org/zap"
)

func NewAnalyzeHandler(
	insertAttemptFunc InsertAttemptFunc,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AnalyzeRequest
		ctx := c.Context()
		logger := logz.NewLogger()
		requestId := c.Get("requestId")

		if err := c.BodyParser(&req); err != nil {
			logger.Warn("failed to parse request", zap.Error(err))
			return api.BadRequest(c, api.InvalidateBody)
		}
		validate := validator.New()
		if err := validate.Struct(req); err != nil {
			return api.ValidationErrorResponse(c, err, req)
		}

		result := analysis.Analyze(req.TargetText, req.SpokenText, analysis.ParseMode(req.Mode))
		feedback.ForPronunciation(&result, analysis.Normalize(req.SpokenText) == "")

		detail, err := json.Marshal(result)
		if err != nil {
			logger.Error(err.Error(), zap.String("requestId", requestId))
			return api.InternalError(c, api.SomeThingWentWrong)
		}

		err = insertAttemptFunc(ctx, logger, InsertAttemptDto{
			AttemptId:    uuid.New().String(),
			UserIdToken:  utils.GetUserIDToken(c),
			TargetText:   req.TargetText,
			SpokenText:   req.SpokenText,
			Mode:         string(analysis.ParseMode(req.Mode)),
			OverallScore: result.OverallScore,
			XpAwarded:    xpForScore(result.OverallScore),
			Detail:       detail,
		})
		if err != nil {
			logger.Error(err.Error(), zap.String("requestId", requestId))
			return api.InternalError(c, err.Error())
		}

		return api.Ok(c, result)
	}
}

// xpForScore is one XP per 10 score points, rounded down.
func xpForScore(score int) decimal.Decimal {
	return decimal.NewFromInt(int64(score)).Div(decimal.NewFromInt(10)).Floor()
}
