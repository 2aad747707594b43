package scorebook

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const maxResponseBody = 4 << 20

var (
	errScorebookTransient = crerr.New("scorebook transient failure")
	errScorebookNotFound  = crerr.New("scorebook resource not found")
)

type ClientConfig struct {
	BaseURL        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the scorebook REST API (Teams, Players, Games, Stats).
// Reads are retried and deduplicated; writes are sent once.
type Client struct {
	http           *fasthttp.Client
	baseURL        string
	readTimeout    time.Duration
	writeTimeout   time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid SCOREBOOK_BASE_URL")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("scorebook")

	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	breakerCfg := cfg.CircuitBreaker.Normalized()
	breaker := resilience.NewCircuitBreaker("scorebook", breakerCfg)
	breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	})

	return &Client{
		http: &fasthttp.Client{
			Name:                "courtside-scorebook",
			ReadTimeout:         readTimeout,
			WriteTimeout:        writeTimeout,
			MaxResponseBodySize: maxResponseBody,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:        baseURL,
		readTimeout:    readTimeout,
		writeTimeout:   writeTimeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

// getJSON decodes the body of GET path into target. A 404 is reported as errScorebookNotFound.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	out, err, _ := c.flight.DoContext(ctx, path, func() (any, error) {
		var raw []byte
		err := c.guard(ctx, func() error {
			var reqErr error
			raw, reqErr = c.getWithRetry(ctx, path)
			return reqErr
		})
		return raw, err
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode scorebook payload %s: %w", path, err)
	}
	return nil
}

// sendJSON issues a single write. payload may be nil; target may be nil when the body is ignored.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, target any) error {
	var raw []byte
	err := c.guard(ctx, func() error {
		var reqErr error
		raw, reqErr = c.do(ctx, method, path, payload, c.writeTimeout)
		return reqErr
	})
	if err != nil {
		c.logger.WarnContext(ctx, "scorebook write failed", "method", method, "path", path, "error", err)
		return err
	}

	if target == nil || len(raw) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode scorebook payload %s: %w", path, err)
	}
	return nil
}

func (c *Client) guard(ctx context.Context, fn func() error) error {
	if !c.circuitEnabled {
		return fn()
	}

	err := c.breaker.Execute(fn, isCircuitFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "scorebook circuit breaker rejected request", "state", string(c.breaker.State()))
		return fmt.Errorf("%w: scorebook is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return err
}

func (c *Client) getWithRetry(ctx context.Context, path string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, err := c.do(ctx, fasthttp.MethodGet, path, nil, c.readTimeout)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !crerr.Is(err, errScorebookTransient) || attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * 200 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if !crerr.Is(lastErr, errScorebookNotFound) {
		c.logger.WarnContext(ctx, "scorebook request failed", "path", path, "error", lastErr)
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, method, path string, payload any, timeout time.Duration) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	uri := bytebufferpool.Get()
	defer bytebufferpool.Put(uri)
	_, _ = uri.WriteString(c.baseURL)
	_, _ = uri.WriteString(path)

	req.SetRequestURIBytes(uri.B)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")

	if payload != nil {
		body := bytebufferpool.Get()
		defer bytebufferpool.Put(body)
		if err := sonic.ConfigDefault.NewEncoder(body).Encode(payload); err != nil {
			return nil, crerr.Wrap(err, "marshal scorebook payload")
		}
		req.Header.SetContentType("application/json")
		req.SetBody(body.B)
	}

	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", errScorebookTransient, method, path, err)
	}

	status := resp.StatusCode()
	raw := append([]byte(nil), resp.Body()...)
	switch {
	case status >= 200 && status < 300:
		return raw, nil
	case status == fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", errScorebookNotFound, method, path)
	case isRetryableStatus(status):
		return nil, fmt.Errorf("%w: %s %s status=%d body=%s", errScorebookTransient, method, path, status, abbreviateBody(raw))
	default:
		return nil, fmt.Errorf("%s %s status=%d body=%s", method, path, status, abbreviateBody(raw))
	}
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errScorebookTransient)
}

func isNotFound(err error) bool {
	return crerr.Is(err, errScorebookNotFound)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "...(truncated)"
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}
