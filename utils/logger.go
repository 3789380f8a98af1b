package utils

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// InitLogger builds the application logger. Production config (JSON)
// unless APP_ENV=development.
func InitLogger() {
	loggerOnce.Do(func() {
		var err error
		if os.Getenv("APP_ENV") == "development" {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
}

// GetLogger returns the shared logger, initializing it on first use.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitLogger()
	}
	return logger
}
