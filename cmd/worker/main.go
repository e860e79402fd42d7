package main

import (
	"go-salary/internal/app"
	"go-salary/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
