package espn

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
	"github.com/riskibarqy/rugby-ingest/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	Catalog    Catalog
	Timeout    time.Duration
	// RateLimit is requests per second; zero disables pacing.
	RateLimit float64
	RateBurst int
	Logger    *logging.Logger
}

// Client fetches ESPN core API resources. Every call is a single attempt
// bounded by its own timeout.
type Client struct {
	httpClient *http.Client
	catalog    Catalog
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     *logging.Logger
}

var _ usecase.Resolver = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		httpClient: httpClient,
		catalog:    cfg.Catalog,
		timeout:    timeout,
		limiter:    limiter,
		logger:     logger,
	}
}

// Get fetches a $ref URL and decodes it into target.
func (c *Client) Get(ctx context.Context, run *ingest.Run, ref string, target any) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fmt.Errorf("%w: empty reference", ingest.ErrResolution)
	}
	return c.fetch(ctx, run, ref, target)
}

func (c *Client) GetEndpoint(ctx context.Context, run *ingest.Run, endpoint usecase.Endpoint, target any) error {
	fullURL, err := c.catalog.URL(endpoint.Key, endpoint.Path, endpoint.Query)
	if err != nil {
		return err
	}
	return c.fetch(ctx, run, fullURL, target)
}

func (c *Client) fetch(ctx context.Context, run *ingest.Run, fullURL string, target any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: wait for rate limiter: %w", ingest.ErrTransport, err)
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.executeRequest(reqCtx, fullURL)
	if err != nil {
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		return fmt.Errorf("%w: %w", ingest.ErrTransport, err)
	}
	if isEmptyPayload(raw) {
		return fmt.Errorf("%w: empty payload from %s", ingest.ErrTransport, fullURL)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode payload from %s: %v", ingest.ErrTransport, fullURL, err)
	}

	run.CountRequest()
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
	}
	return append([]byte(nil), buf.B...), nil
}

func isEmptyPayload(raw []byte) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "{}", "[]", "null":
		return true
	default:
		return false
	}
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
