package httpx

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20

// Client issues single-attempt requests; callers decide what a failure means.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Log       *zap.Logger
}

func New(timeout time.Duration, log *zap.Logger) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: "stocksinfo/1.0",
		Log:       log,
	}
}

// Get performs one GET and returns the status code and body. The query
// string is never logged since it carries the API token.
func (c *Client) Get(ctx context.Context, rawURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("host", req.URL.Host), zap.String("path", req.URL.Path))

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		log.Warn("http_client.send_failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("http_client.read_failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	log.Debug("http_client.response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)
	return resp.StatusCode, body, nil
}
