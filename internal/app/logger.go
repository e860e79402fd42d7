package app

import (
	"go-salary/internal/config"

	"go.uber.org/zap"
)

// NewLogger returns a production logger when APP_ENV=production and a
// development logger otherwise.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
