package flightclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
)

// Config is the shared wiring for one upstream client.
type Config struct {
	BaseURL      string
	Credential   string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// Configured reports whether the upstream has a usable credential. The
// services check this before any network call.
func (c Config) Configured() bool {
	return c.Credential != ""
}

// Allow gates one outbound call through the shared limiter. A nil
// limiter disables rate limiting for single-replica deployments.
func (c Config) Allow(ctx context.Context, name string) error {
	if c.Limiter == nil || c.RateLimitRPS <= 0 {
		return nil
	}

	res, err := c.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", name),
		redis_rate.PerSecond(c.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}

// NewHTTPClient builds the http.Client every upstream caller uses.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxConnsPerHost:     5,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// Do issues exactly one round trip and returns the raw body plus HTTP
// status. There are no retries at this layer; a retry budget, if any,
// belongs to the orchestrator.
func Do(ctx context.Context, client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, fmt.Errorf("upstream call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read upstream body: %w", err)
	}

	return body, resp.StatusCode, nil
}

// DecodeLoose unmarshals without failing: a parse error leaves v at its
// zero value and reports false, so non-JSON error bodies read as empty.
func DecodeLoose(body []byte, v interface{}) bool {
	if len(body) == 0 {
		return false
	}

	return json.Unmarshal(body, v) == nil
}
