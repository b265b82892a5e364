// Command regenerate rebuilds the cached llms.txt for one installed shop.
//
// Usage: regenerate -shop example.myshopify.com
//
// Exit codes: 0 = success, 1 = error.
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
	shop := flag.String("shop", "", "shop domain to regenerate")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall deadline")
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

	res, err := deps.Generator.Regenerate(ctx, *shop)
	if err != nil {
		logger.Error("regenerate failed",
			slog.String("shop", *shop),
			slog.String("error", err.Error()),
		)
		deps.Close()
		os.Exit(1)
	}

	logger.Info("regenerate completed",
		slog.String("shop", res.Shop),
		slog.Int("char_count", res.CharCount),
		slog.Duration("duration", res.Duration),
	)
}
