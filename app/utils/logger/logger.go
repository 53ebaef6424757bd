package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Init builds the process-wide logger. environment "production" switches to
// the JSON encoder; anything else gets the colored development output.
func Init(environment string) error {
	var base *zap.Logger
	var err error

	if environment == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err = cfg.Build()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base, err = cfg.Build()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(base)
	log = base.Sugar()
	return nil
}

// Get returns the global sugared logger, initializing a development logger
// if Init was never called (handy in tests).
func Get() *zap.SugaredLogger {
	if log == nil {
		_ = Init("development")
	}
	return log
}
