package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// serviceName tags every log entry and the fallback tracer so the
// storefront's aggregated streams stay filterable per service.
const serviceName = "atelier-service"

var logger *zap.Logger

// InitLogger builds the service-wide zap logger: sampled JSON in
// production, colored console output everywhere else for local runs.
func InitLogger(env string) error {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.InitialFields = map[string]interface{}{"service": serviceName}

	built, err := config.Build()
	if err != nil {
		return err
	}

	logger = built
	zap.ReplaceGlobals(logger)
	return nil
}

// GetLogger returns the service logger. Before InitLogger runs (services
// constructed directly in tests) it falls back to a development logger.
func GetLogger() *zap.Logger {
	if logger == nil {
		dev, _ := zap.NewDevelopment()
		logger = dev.With(zap.String("service", serviceName))
	}
	return logger
}

// SyncLogger flushes buffered entries at shutdown.
func SyncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}
