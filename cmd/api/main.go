package main

import (
	"go-salary/internal/app"
	"go-salary/internal/bootstrap"
	"go-salary/internal/config"
	"go-salary/internal/middleware"
	"go-salary/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.ContextLogger(logger))

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig(cfg.App.Port), auditLogger); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
