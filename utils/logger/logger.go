package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds a zap logger for the given environment. Anything other
// than "production" gets the development config.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
