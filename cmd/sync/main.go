// Command sync regenerates llms.txt for every installed shop whose settings
// enable automatic sync. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = every shop succeeded, 1 = setup error or any shop failed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/llmstxt-backend/internal/app"
	"github.com/heartmarshall/llmstxt-backend/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", time.Hour, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	deps, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.Close()

	report, err := deps.Generator.SyncAll(ctx)
	if err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		deps.Close()
		os.Exit(1)
	}

	for shop, ferr := range report.Failed {
		logger.Warn("shop failed", slog.String("shop", shop), slog.String("error", ferr.Error()))
	}
	logger.Info("sync completed",
		slog.Int("succeeded", len(report.Succeeded)),
		slog.Int("failed", len(report.Failed)),
	)

	if len(report.Failed) > 0 {
		deps.Close()
		os.Exit(1)
	}
}
