package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const (
	// DefaultEndpointTemplate is the Admin GraphQL endpoint; {shop} and {version} are substituted.
	DefaultEndpointTemplate = "https://{shop}/admin/api/{version}/graphql.json"
	DefaultAPIVersion       = "2025-01"

	accessTokenHeader = "X-Shopify-Access-Token"
	maxBodyBytes      = 16 << 20
)

// ErrThrottled is returned when the origin keeps throttling after all retries.
var ErrThrottled = errors.New("shopify: throttled")

// Waiter paces outbound calls per key.
type Waiter interface {
	Wait(ctx context.Context, key string) error
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	EndpointTemplate string
	APIVersion       string
	Timeout          time.Duration
	MaxRetries       int
	RetryDelay       time.Duration
}

// Client calls the Shopify Admin GraphQL API on behalf of a tenant.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    Waiter
	maxRetries int
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client. limiter may be nil to disable pacing.
func NewClient(opts Options, limiter Waiter, logger *slog.Logger) *Client {
	if opts.EndpointTemplate == "" {
		opts.EndpointTemplate = DefaultEndpointTemplate
	}
	if opts.APIVersion == "" {
		opts.APIVersion = DefaultAPIVersion
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}

	return &Client{
		endpoint:   strings.ReplaceAll(opts.EndpointTemplate, "{version}", opts.APIVersion),
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    limiter,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		log:        logger.With("adapter", "shopify"),
	}
}

type requestBody struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Do executes one GraphQL operation and returns the raw "data" object.
// GraphQL-level errors are returned as gqlerror.List in the error chain.
func (c *Client) Do(ctx context.Context, tenant domain.Tenant, query, operationName string, variables map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(requestBody{Query: query, OperationName: operationName, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("shopify: encode request: %w", err)
	}

	endpoint := strings.ReplaceAll(c.endpoint, "{shop}", tenant.Domain)

	c.log.DebugContext(ctx, "shopify request",
		slog.String("shop", tenant.Domain),
		slog.String("operation", operationName),
	)

	body, status, err := c.doWithRetry(ctx, tenant, endpoint, payload, operationName)
	if err != nil {
		c.log.ErrorContext(ctx, "shopify request failed",
			slog.String("shop", tenant.Domain),
			slog.String("operation", operationName),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("shopify: request failed: %w", err)
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, fmt.Errorf("shopify: status %d: %w", status, domain.ErrUnauthorized)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("shopify: unexpected status %d", status)
	}

	var resp graphql.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("shopify: decode json: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("shopify: %s: %w", operationName, resp.Errors)
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil, fmt.Errorf("shopify: %s: %w: empty data", operationName, domain.ErrOriginDataMissing)
	}

	c.log.DebugContext(ctx, "shopify response",
		slog.String("shop", tenant.Domain),
		slog.String("operation", operationName),
		slog.Int("bytes", len(body)),
	)

	return resp.Data, nil
}

// doWithRetry executes the request, retrying on network errors, 5xx, and 429
// up to maxRetries times. Each attempt waits for the tenant's rate limiter.
func (c *Client) doWithRetry(ctx context.Context, tenant domain.Tenant, endpoint string, payload []byte, operation string) ([]byte, int, error) {
	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx, tenant.Domain); err != nil {
				return nil, 0, fmt.Errorf("rate limit wait: %w", err)
			}
		}

		body, status, retryAfter, err := c.attempt(ctx, tenant, endpoint, payload)

		shouldRetry := err != nil || status >= 500 || status == http.StatusTooManyRequests
		if !shouldRetry {
			return body, status, nil
		}
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		if attempt >= c.maxRetries {
			if err != nil {
				return nil, 0, err
			}
			if status == http.StatusTooManyRequests {
				return nil, 0, ErrThrottled
			}
			return body, status, nil
		}

		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", status)
		}
		c.log.WarnContext(ctx, "shopify retry",
			slog.String("shop", tenant.Domain),
			slog.String("operation", operation),
			slog.String("reason", reason),
			slog.Int("attempt", attempt+1),
		)

		delay := c.retryDelay * time.Duration(attempt+1)
		if retryAfter > delay {
			delay = retryAfter
		}
		if err := sleep(ctx, delay); err != nil {
			return nil, 0, err
		}
	}
}

func (c *Client) attempt(ctx context.Context, tenant domain.Tenant, endpoint string, payload []byte) ([]byte, int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, tenant.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("read body: %w", err)
	}

	return body, resp.StatusCode, parseRetryAfter(resp.Header.Get("Retry-After")), nil
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
