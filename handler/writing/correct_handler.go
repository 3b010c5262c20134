package writing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/adapter"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/correction"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/logz"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/utils"
	"go.uber.org/zap"
)

const tutorCallTimeout = 5 * time.Second

func NewCorrectHandler(
	redisClient redis.UniversalClient,
	aiTutorAdapter *adapter.Adapter,
	cacheTTL time.Duration,
	insertAttemptFunc InsertAttemptFunc,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CorrectRequest
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

		localErrors := correction.ApplyRules(req.Text, correction.DefaultRules)
		ext := fetchExternalCorrection(ctx, logger, redisClient, aiTutorAdapter, cacheTTL, requestId, req.Text)
		result := correction.Aggregate(req.Text, localErrors, ext)

		detail, err := json.Marshal(result)
		if err != nil {
			logger.Error(err.Error(), zap.String("requestId", requestId))
			return api.InternalError(c, api.SomeThingWentWrong)
		}

		err = insertAttemptFunc(ctx, logger, InsertAttemptDto{
			AttemptId:     uuid.New().String(),
			UserIdToken:   utils.GetUserIDToken(c),
			OriginalText:  result.Original,
			CorrectedText: result.Corrected,
			OverallScore:  result.OverallScore,
			ErrorCount:    len(result.Errors),
			XpAwarded:     xpForScore(result.OverallScore),
			Detail:        detail,
		})
		if err != nil {
			logger.Error(err.Error(), zap.String("requestId", requestId))
			return api.InternalError(c, err.Error())
		}

		return api.Ok(c, result)
	}
}

// fetchExternalCorrection asks the AI tutor for a correction, going through
// the redis cache first. Any failure degrades to nil so the local rule
// result still goes out.
func fetchExternalCorrection(
	ctx context.Context,
	logger *zap.Logger,
	redisClient redis.UniversalClient,
	aiTutorAdapter *adapter.Adapter,
	cacheTTL time.Duration,
	requestId string,
	text string,
) *correction.ExternalCorrection {
	if aiTutorAdapter == nil {
		return nil
	}

	cacheKey := utils.BuildCorrectionCacheKey(text)
	if redisClient != nil {
		cached, err := redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var ext correction.ExternalCorrection
			if err := json.Unmarshal([]byte(cached), &ext); err == nil {
				return &ext
			}
			logger.Warn("discarding bad cached correction", zap.String("key", cacheKey))
		} else if err != redis.Nil {
			logger.Warn("correction cache read failed", zap.Error(err))
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, tutorCallTimeout)
	defer cancel()

	_, body, err := aiTutorAdapter.Post(callCtx, api.CorrectionPath, &adapter.RequestOptions{
		Headers: map[string]string{"requestId": requestId},
		JSON:    TutorCorrectionRequest{Text: text},
	})
	if err != nil {
		logger.Warn("ai tutor correction failed", zap.Error(err), zap.String("requestId", requestId))
		return nil
	}

	var resp TutorCorrectionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Warn("failed to parse ai tutor response", zap.Error(err))
		return nil
	}
	if resp.Code != api.CodeSuccess {
		logger.Warn("ai tutor returned error", zap.String("code", resp.Code), zap.String("message", resp.Message))
		return nil
	}

	if redisClient != nil {
		if raw, err := json.Marshal(resp.Body); err == nil {
			if err := redisClient.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
				logger.Warn("correction cache write failed", zap.Error(err))
			}
		}
	}

	return &resp.Body
}

func xpForScore(score int) decimal.Decimal {
	return decimal.NewFromInt(int64(score)).Div(decimal.NewFromInt(10)).Floor()
}
