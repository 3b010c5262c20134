package logz

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Init(level string, serviceName string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

func NewLogger() *zap.Logger {
	return zap.L()
}

func Drop() {
	_ = zap.L().Sync()
}
