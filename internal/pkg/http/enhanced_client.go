package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/circuitbreaker"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/retry"
)

// HTTPError is a non-2xx answer from an upstream
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Message, e.StatusCode)
}

// ClientConfig tunes an EnhancedClient
type ClientConfig struct {
	Timeout    time.Duration
	MaxRetries int
}

// EnhancedClient wraps http.Client with a per-host circuit breaker and retries
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
	logger         *logger.ZapLogger
}

// NewEnhancedClient creates a client. Only transport errors and 5xx answers are
// retried or counted by the breaker.
func NewEnhancedClient(log *logger.ZapLogger, config ClientConfig) *EnhancedClient {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = config.MaxRetries
	retryConfig.IsRetryable = IsServerError

	breakerConfig := circuitbreaker.DefaultConfig("")
	breakerConfig.IsFailure = IsServerError

	return &EnhancedClient{
		client:         &http.Client{Timeout: config.Timeout},
		retrier:        retry.New(retryConfig, log),
		circuitManager: circuitbreaker.NewManager(breakerConfig, log),
		logger:         log,
	}
}

// IsServerError reports whether err is a transport failure or a 5xx answer
func IsServerError(err error) bool {
	if err == nil {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return !errors.Is(err, context.Canceled)
}

// Do executes req. Non-2xx answers are returned as *HTTPError with the body closed.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	serviceName := req.URL.Host
	if serviceName == "" {
		serviceName = "unknown"
	}

	var resp *http.Response
	err := c.circuitManager.Execute(ctx, serviceName, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req.Clone(ctx))
			})
			if err != nil {
				return err
			}
			if r.StatusCode < 200 || r.StatusCode >= 300 {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, 4<<10))
				r.Body.Close()
				return &HTTPError{StatusCode: r.StatusCode, Message: "upstream " + serviceName}
			}
			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetJSON sends a GET with headers and decodes the JSON answer into out
func (c *EnhancedClient) GetJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CircuitBreakerStats returns the state of every upstream breaker
func (c *EnhancedClient) CircuitBreakerStats() []circuitbreaker.Stats {
	return c.circuitManager.Stats()
}
