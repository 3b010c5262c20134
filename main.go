package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/adapter"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/api"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/config"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/handler/auth"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/handler/conversation"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/handler/pronunciation"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/handler/writing"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/analysis"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/cache"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/correction"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/db"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/httputil"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/logz"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/middleware"
	"go.uber.org/zap"
)

func main() {
	currentTime := time.Now()
	versionDeploy := currentTime.Unix()
	ctx := context.Background()
	app := initFiber()
	config.InitTimeZone()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal(errors.New("unable to initial config"))
	}

	logz.Init(cfg.LogConfig.Level, cfg.Server.Name)
	defer logz.Drop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	logger := zap.L()
	logger.Info("version " + strconv.FormatInt(versionDeploy, 10))

	analysis.Configure(analysis.Tuning{
		PacingGoodLow:  cfg.Scoring.PacingGoodLow,
		PacingGoodHigh: cfg.Scoring.PacingGoodHigh,
		PacingFairLow:  cfg.Scoring.PacingFairLow,
		PacingFairHigh: cfg.Scoring.PacingFairHigh,
	})
	correction.Configure(correction.Weights{
		Grammar:    cfg.Scoring.GrammarWeight,
		Vocabulary: cfg.Scoring.VocabularyWeight,
		Style:      cfg.Scoring.StyleWeight,
		Overall:    cfg.Scoring.OverallWeight,
	})

	aiTutorAdapter, err := adapter.NewAdapter(cfg.AiTutorAdapter)
	if err != nil {
		logger.Warn("ai tutor adapter disabled", zap.Error(err))
	}
	sttProxyAdapter, err := adapter.NewAdapter(cfg.SttProxyAdapter)
	if err != nil {
		logger.Fatal("stt proxy adapter", zap.Error(err))
	}

	dbPool, err := db.Open(ctx, cfg.DBConfig)
	if err != nil {
		logger.Fatal("server connect to db", zap.Error(err))
	}
	defer dbPool.Close()
	logger.Info("DB CONNECT")

	httpClient := httputil.InitHttpClient(
		cfg.HTTP.TimeOut,
		cfg.HTTP.MaxIdleConn,
		cfg.HTTP.MaxIdleConnPerHost,
		cfg.HTTP.MaxConnPerHost,
	)

	redisClient, err := cache.Initialize(ctx, cfg.RedisConfig)
	if err != nil {
		logger.Fatal("server connect to redis", zap.Error(err))
	}
	redisCMD := redisClient.UniversalClient()
	defer func() {
		err = redisCMD.Close()
		if err != nil {
			logger.Fatal("closing redis connection error", zap.Error(err))
		}
	}()
	logger.Info("Redis Connected")

	app.Use(middleware.AuditLogger())
	app.Use(middleware.JWTMiddleware(cfg.JwtAuthConfig.JwtSecret))
	group := app.Group(fmt.Sprintf("/%s/api/v1", cfg.Server.Name))
	group.Get("/health", func(c *fiber.Ctx) error {
		return api.Ok(c, versionDeploy)
	})

	auth.GetRouter(group, cfg, dbPool)
	pronunciation.GetRouter(group, dbPool, sttProxyAdapter)
	writing.GetRouter(group, dbPool, redisCMD, aiTutorAdapter, cfg.Scoring.CorrectionCacheTTL)
	conversation.GetRouter(group, redisCMD, cfg.AiTutorAdapter.BaseURL, httputil.NewHttpPostCall(httpClient))

	logger.Info(fmt.Sprintf("/%s/api/v1", cfg.Server.Name))
	if err = app.Listen(fmt.Sprintf(":%v", cfg.Server.Port)); err != nil {
		logger.Fatal(err.Error())
	}

}

func initFiber() *fiber.App {
	app := fiber.New(
		fiber.Config{
			BodyLimit:             10 * 1024 * 1024,
			ReadBufferSize:        64 * 1024,
			ReadTimeout:           5 * time.Second,
			WriteTimeout:          5 * time.Second,
			IdleTimeout:           30 * time.Second,
			DisableStartupMessage: true,
			CaseSensitive:         true,
			StrictRouting:         true,
		},
	)
	defaultConfig := cors.ConfigDefault
	defaultConfig.AllowHeaders = "*"
	app.Use(cors.New(defaultConfig))
	app.Use(SetHeaderID())
	return app
}

func SetHeaderID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		randomTrace := uuid.New().String()
		traceId := c.Get("traceId")
		reqId := c.Get("requestId")
		if traceId == "" {
			traceId = randomTrace
		}
		if reqId == "" {
			return api.BadRequest(c, "requestId is required")
		}

		c.Accepts(fiber.MIMEApplicationJSON)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		c.Request().Header.Set("traceId", traceId)
		return c.Next()
	}
}
