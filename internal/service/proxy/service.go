// Package proxy serves cached llms.txt artifacts to the public storefront.
// It never generates content and never fails without a document.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const (
	msgMissingShop = "# Error: Shop domain missing from request."
	msgInvalidShop = "# Error: Invalid shop domain."
)

type cacheReader interface {
	GetMany(ctx context.Context, shops []string) (map[string]*domain.CacheEntry, error)
}

// Config controls the serving path.
type Config struct {
	MaxAge      time.Duration
	LoaderWait  time.Duration
	LoaderBatch int
	ReadTimeout time.Duration // bounds one batched store call
}

// Document is the response for one read.
type Document struct {
	Status       int
	Body         string
	CacheControl string // empty when the response must not be cached
}

// Service reads artifacts from the cache store. Concurrent reads are batched
// into one store call; results are not memoized between batches. A batch
// mixes requests for different shops, so it never runs under one caller's
// cancellation, and an unreadable entry fails only its own shop.
type Service struct {
	log          *slog.Logger
	loader       *dataloader.Loader[string, *domain.CacheEntry]
	cacheControl string
}

// NewService creates a new proxy service.
func NewService(log *slog.Logger, cfg Config, store cacheReader) *Service {
	if cfg.LoaderWait <= 0 {
		cfg.LoaderWait = 2 * time.Millisecond
	}
	if cfg.LoaderBatch <= 0 {
		cfg.LoaderBatch = 100
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = time.Hour
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 5 * time.Second
	}

	return &Service{
		log: log.With("service", "proxy"),
		loader: dataloader.NewBatchedLoader(
			newEntriesBatchFn(store, cfg.ReadTimeout),
			dataloader.WithWait[string, *domain.CacheEntry](cfg.LoaderWait),
			dataloader.WithBatchCapacity[string, *domain.CacheEntry](cfg.LoaderBatch),
			dataloader.WithCache[string, *domain.CacheEntry](&dataloader.NoCache[string, *domain.CacheEntry]{}),
		),
		cacheControl: fmt.Sprintf("public, max-age=%d", int(cfg.MaxAge.Seconds())),
	}
}

// Read returns the document for the raw shop parameter.
func (s *Service) Read(ctx context.Context, rawShop string) (doc Document) {
	shop, err := domain.NormalizeShopDomain(rawShop)
	if err != nil {
		if isMissing(err) {
			s.log.WarnContext(ctx, "shop parameter missing")
			return Document{Status: http.StatusBadRequest, Body: msgMissingShop}
		}
		s.log.WarnContext(ctx, "invalid shop parameter", slog.String("shop", rawShop))
		return Document{Status: http.StatusBadRequest, Body: msgInvalidShop}
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "panic while reading cache",
				slog.String("shop", shop),
				slog.Any("panic", r),
			)
			doc = errorDocument(shop)
		}
	}()

	entry, err := s.loader.Load(ctx, shop)()
	if err != nil {
		s.log.ErrorContext(ctx, "cache read failed",
			slog.String("shop", shop),
			slog.String("error", err.Error()),
		)
		return errorDocument(shop)
	}

	if entry == nil || entry.Content == "" {
		s.log.WarnContext(ctx, "cache miss", slog.String("shop", shop))
		return Document{
			Status: http.StatusOK,
			Body:   "# " + shop + "\n# Content is being generated. Please try again later.",
		}
	}

	return Document{Status: http.StatusOK, Body: entry.Content, CacheControl: s.cacheControl}
}

func errorDocument(shop string) Document {
	return Document{Status: http.StatusInternalServerError, Body: "# " + shop + "\n# Error retrieving content."}
}

func isMissing(err error) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve) && len(ve.Errors) == 1 && ve.Errors[0].Message == "required"
}
