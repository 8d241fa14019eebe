package logger

import (
	"os"

	"go.uber.org/zap"
)

// Init builds the process logger and installs it as the zap global, so
// packages can pick up named sub-loggers via zap.L().Named(...).
func Init() (*zap.Logger, error) {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(l)
	return l, nil
}
