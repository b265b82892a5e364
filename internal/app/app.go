package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/llmstxt-backend/internal/auth"
	"github.com/heartmarshall/llmstxt-backend/internal/config"
	"github.com/heartmarshall/llmstxt-backend/internal/ratelimit"
	"github.com/heartmarshall/llmstxt-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires storage
// and services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache_driver", cfg.Cache.Driver),
	)

	deps, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	proxyLimiter := ratelimit.New(cfg.RateLimit.ProxyRPS, cfg.RateLimit.ProxyBurst, cfg.RateLimit.CleanupInterval)
	defer proxyLimiter.Stop()

	var components []rest.Component
	if deps.Redis != nil {
		rdb := deps.Redis
		components = append(components, rest.Component{
			Name:  "cache",
			Check: rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
	}

	handler := NewRouter(
		Handlers{
			Health:  rest.NewHealthHandler(deps.Pool, BuildVersion(), components...),
			Proxy:   rest.NewProxyHandler(deps.Proxy),
			Cache:   rest.NewCacheHandler(deps.Generator, logger),
			Webhook: rest.NewWebhookHandler(deps.Billing, logger),
		},
		RouterDeps{
			Logger:       logger,
			CORS:         cfg.CORS,
			ProxyLimiter: proxyLimiter,
			Verifier:     auth.NewSessionVerifier(cfg.Auth.APISecret, cfg.Auth.APIKey, cfg.Auth.SessionLeeway),
		},
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
