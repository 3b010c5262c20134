package pronunciation

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/adapter"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/feedback"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/logz"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/utils"
	"go.uber.org/zap"
)

// NewScoreHandler accepts a recorded answer as multipart audio, lets the STT
// proxy transcribe it and runs the pronunciation analysis on the transcript.
func NewScoreHandler(
	sttProxyAdapter *adapter.Adapter,
	insertAttemptFunc InsertAttemptFunc,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()
		logger := logz.NewLogger()
		requestId := c.Get("requestId")

		fh, err := c.FormFile("file")
		if err != nil || fh == nil {
			return api.BadRequest(c, "missing file")
		}

		mediaType := c.FormValue("mediaType")
		targetText := c.FormValue("targetText")
		mode := c.FormValue("mode")
		if targetText == "" {
			return api.BadRequest(c, "missing targetText")
		}
		if mediaType == "" {
			mediaType = mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename)))
			if mediaType == "" {
				mediaType = "application/octet-stream"
			}
		}
		if !isAllowedMedia(mediaType) {
			return api.BadRequest(c, "unsupported mediaType")
		}

		src, err := fh.Open()
		if err != nil {
			return api.InternalError(c, err.Error())
		}
		defer src.Close()
		audioBytes, err := io.ReadAll(src)
		if err != nil {
			return api.InternalError(c, err.Error())
		}

		_, body, err := sttProxyAdapter.Post(ctx, api.SttPath, &adapter.RequestOptions{
			Headers: map[string]string{"requestId": requestId},
			Form: &adapter.FormData{
				Fields: map[string]string{
					"mediaType": mediaType,
				},
				Files: []adapter.FormFile{
					{
						FieldName:   "file",
						FileName:    fh.Filename,
						Reader:      bytes.NewReader(audioBytes),
						ContentType: mediaType,
					},
				},
			},
		})
		if err != nil {
			logger.Error("stt call failed", zap.Error(err), zap.String("requestId", requestId))
			return api.InternalError(c, "failed to transcribe audio")
		}

		var resp SttResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			logger.Error("failed to parse stt response", zap.Error(err), zap.Any("body", string(body)))
			return api.InternalError(c, "failed to transcribe audio")
		}

		spokenText := resp.Body.Text
		result := analysis.Analyze(targetText, spokenText, analysis.ParseMode(mode))
		feedback.ForPronunciation(&result, analysis.Normalize(spokenText) == "")

		detail, err := json.Marshal(result)
		if err != nil {
			return api.InternalError(c, api.SomeThingWentWrong)
		}
		err = insertAttemptFunc(ctx, logger, InsertAttemptDto{
			AttemptId:    uuid.New().String(),
			UserIdToken:  utils.GetUserIDToken(c),
			TargetText:   targetText,
			SpokenText:   spokenText,
			Mode:         string(analysis.ParseMode(mode)),
			OverallScore: result.OverallScore,
			XpAwarded:    xpForScore(result.OverallScore),
			Detail:       detail,
		})
		if err != nil {
			logger.Error(err.Error(), zap.String("requestId", requestId))
			return api.InternalError(c, err.Error())
		}

		return api.Ok(c, fiber.Map{
			"targetText": targetText,
			"spokenText": spokenText,
			"analysis":   result,
		})
	}
}

func isAllowedMedia(mt string) bool {
	return strings.HasPrefix(mt, "audio/") ||
		mt == "application/octet-stream"
}
