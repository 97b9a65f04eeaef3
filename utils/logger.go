package utils

import (
	"log"

	"meetbot/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger builds the global logger: JSON output in production,
// colored console output in development, level taken from LOG_LEVEL.
func InitializeLogger() {
	var cfg zap.Config
	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// logLevel maps LOG_LEVEL onto a zap level. Unset or unparseable values fall
// back to info in production and debug in development.
func logLevel() zapcore.Level {
	if config.AppConfig.LogLevel != "" {
		if l, err := zapcore.ParseLevel(config.AppConfig.LogLevel); err == nil {
			return l
		}
	}
	if config.IsProduction() {
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
