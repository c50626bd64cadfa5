package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rima-workspace/config"
	"rima-workspace/internal/assistant"
	"rima-workspace/internal/extractor"
	"rima-workspace/internal/httpserver"
	"rima-workspace/internal/insight"
	"rima-workspace/internal/middleware"
	"rima-workspace/internal/seed"
	workspaceHTTP "rima-workspace/internal/workspace/delivery/http"
	"rima-workspace/internal/workspace/repository/sqlite"
	"rima-workspace/internal/workspace/usecase"
	"rima-workspace/pkg/dateparse"
	"rima-workspace/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Rima Workspace...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "SQLite path: %s", cfg.SQLite.Path)

	// 3. Storage
	repo, err := sqlite.New(logger, cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		return
	}
	defer repo.Close()

	// 4. Text analysis
	dates, err := dateparse.NewParser(cfg.Dates.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dates.Timezone, err)
		dates, _ = dateparse.NewParser("UTC")
	}
	taskExtractor := extractor.New(dates, time.Now)

	var delayer insight.Delayer
	if cfg.Insight.DelayMillis > 0 {
		delayer = insight.NewSleepDelayer(time.Duration(cfg.Insight.DelayMillis) * time.Millisecond)
	} else {
		delayer = insight.NoDelay()
	}
	insightGen := insight.New(logger, delayer)

	responder := assistant.New()

	// 5. Workspace domain
	uc := usecase.New(logger, repo, taskExtractor, insightGen, responder)
	handler := workspaceHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// 6. Demo data
	if cfg.Seed.Enabled {
		if err := seed.New(logger, repo).Run(ctx); err != nil {
			logger.Warnf(ctx, "Seeding demo data failed: %v", err)
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		WorkspaceHandler: handler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
