package logger

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/pkg/constvars"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the process logger. Every entry carries the service
// name and version so portal logs can be told apart from the backend's.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	zapLogger, err := newZapConfig(driverConfig, internalConfig).Build(
		zap.Fields(
			zap.String("service", constvars.ServiceName),
			zap.String("version", internalConfig.App.Version),
		),
	)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}

func newZapConfig(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) zap.Config {
	outputPaths, errorOutputPaths := outputPathsFor(internalConfig.App.Env, driverConfig.Logger)

	return zap.Config{
		Level:       zap.NewAtomicLevelAt(levelOf(driverConfig.Logger.Level)),
		Development: internalConfig.App.Env == constvars.AppEnvDevelopment,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}
}

// levelOf falls back to info for an empty or unknown level.
func levelOf(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.InfoLevel
	}
	return parsed
}

// outputPathsFor sends production logs to the configured files. Empty file
// names fall back to the standard streams.
func outputPathsFor(env string, logger config.Logger) (outputPaths, errorOutputPaths []string) {
	if env != constvars.AppEnvProduction {
		return []string{"stdout"}, []string{"stderr"}
	}

	outputPaths = []string{"stdout"}
	if logger.OutputFileName != "" {
		outputPaths = []string{logger.OutputFileName}
	}
	errorOutputPaths = []string{"stderr"}
	if logger.OutputErrorFileName != "" {
		errorOutputPaths = append(errorOutputPaths, logger.OutputErrorFileName)
	}
	return outputPaths, errorOutputPaths
}
