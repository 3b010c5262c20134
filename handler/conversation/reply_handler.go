package conversation

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/correction"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/httputil"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/logz"
	"go.uber.org/zap"
)

const chatCallTimeout = 5 * time.Second

// NewReplyHandler answers one conversation turn. The learner's message is
// always run through the local correction rules; the reply comes from the
// AI tutor when it is reachable and from the canned topic replies when not.
func NewReplyHandler(
	chatURL string,
	postFunc httputil.HTTPPostRequestFunc,
	loadSessionFunc LoadSessionFunc,
	saveSessionFunc SaveSessionFunc,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ReplyRequest
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

		if req.SessionId == "" {
			req.SessionId = uuid.New().String()
		}

		result := correction.Correct(req.Message, nil)

		resp := ReplyResponse{
			SessionId: req.SessionId,
			Topic:     DetectTopic(req.Message),
		}
		if len(result.Errors) > 0 {
			resp.Correction = &result
		}

		if reply, ok := tutorReply(ctx, logger, chatURL, postFunc, requestId, req); ok {
			resp.Reply = reply
			return api.Ok(c, resp)
		}

		session := loadSessionFunc(ctx, logger, req.SessionId)
		reply, topic := CannedReply(session, req.Message)
		saveSessionFunc(ctx, logger, req.SessionId, session)

		resp.Reply = reply
		resp.Topic = topic
		return api.Ok(c, resp)
	}
}

func tutorReply(
	ctx context.Context,
	logger *zap.Logger,
	chatURL string,
	postFunc httputil.HTTPPostRequestFunc,
	requestId string,
	req ReplyRequest,
) (string, bool) {
	if chatURL == "" || postFunc == nil {
		return "", false
	}

	callCtx, cancel := context.WithTimeout(ctx, chatCallTimeout)
	defer cancel()

	status, body, err := postFunc(callCtx, chatURL,
		map[string]string{"requestId": requestId},
		TutorChatRequest{SessionId: req.SessionId, Message: req.Message},
	)
	if err != nil {
		logger.Warn("ai tutor chat failed", zap.Error(err), zap.String("requestId", requestId))
		return "", false
	}
	if status != http.StatusOK {
		logger.Warn("ai tutor chat bad status", zap.Int("status", status))
		return "", false
	}

	var resp TutorChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Warn("failed to parse ai tutor chat response", zap.Error(err))
		return "", false
	}
	if resp.Code != api.CodeSuccess || resp.Body.Reply == "" {
		return "", false
	}
	return resp.Body.Reply, true
}
