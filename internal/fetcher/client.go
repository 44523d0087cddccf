package fetcher

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/andromedanaut/marketcap-bot/internal/logger"
)

// Client performs HTTP GETs with a bounded per-attempt timeout and
// exponential-backoff retries. Transport errors and non-200 statuses are
// retried alike; only a 200 response is a success.
type Client struct {
	client      *http.Client
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

type Option func(*Client)

// WithMaxAttempts sets the total number of requests issued before giving
// up, the first attempt included.
func WithMaxAttempts(attempts int) Option {
	return func(c *Client) {
		c.maxAttempts = attempts
	}
}

func WithBaseDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = delay
	}
}

func WithMaxDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.maxDelay = delay
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		client:      &http.Client{Timeout: commons.FetcherAttemptTimeout},
		maxAttempts: commons.FetcherMaxAttempts,
		baseDelay:   commons.FetcherBaseDelay,
		maxDelay:    commons.FetcherMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues a GET against rawURL with params encoded onto the query
// string and returns the raw response body. Backoff waits respect ctx
// cancellation.
func (c *Client) Fetch(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.calculateBackoff(attempt - 1)):
			}
		}

		body, err := c.fetchOnce(ctx, rawURL, params)
		if err == nil {
			return body, nil
		}
		lastErr = err
		logger.Errorf("fetch attempt %d/%d for %s failed: %v", attempt+1, c.maxAttempts, rawURL, err)
	}
	return nil, fmt.Errorf("all %d attempts for %s failed: %w", c.maxAttempts, rawURL, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("request failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// calculateBackoff returns the wait after attempt i (zero-based): the base
// delay doubled per attempt, capped at maxDelay, plus up to 50% jitter.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.baseDelay * (1 << uint(attempt))
	if backoff > c.maxDelay {
		backoff = c.maxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(backoff / 2)))
	return backoff + jitter
}
