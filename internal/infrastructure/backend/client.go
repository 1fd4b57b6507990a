// Package backend implements the outbound repositories against the
// storefront REST API. One configured Client shapes every request: base
// URL, timeout, bearer credential, and normalization of failures into the
// domain error taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sistemasvip/client-portal/internal/api/metrics"
	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// Client is the single configured HTTP client for the storefront backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New builds a Client for the given base URL. A zero timeout falls back to
// 10 seconds.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// backendMessage is the error envelope the backend uses for rejections.
type backendMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (m backendMessage) text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

// do performs one backend call. endpoint is the logical name used for
// metrics, token the bearer credential ("" for anonymous calls), in the
// JSON body (nil for none) and out the decode target (nil to discard).
//
// Failure normalization happens here and nowhere else:
//   - 401            → domain.ErrSessionExpired
//   - other 4xx/5xx  → *domain.BackendError with the backend's message
//   - transport      → wrapped domain.ErrBackendUnavailable
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: encode %s: %w", endpoint, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: build %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("backend request failed")
		return fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestDuration.WithLabelValues(endpoint, statusClass(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		var msg backendMessage
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		c.log.Debug().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("message", msg.text()).
			Msg("backend rejected request")
		return &domain.BackendError{StatusCode: resp.StatusCode, Message: msg.text()}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s: %w", endpoint, err)
	}
	return nil
}

// Ping checks that the backend answers HTTP at all. Any response counts,
// including 401 or 404; only a transport failure marks it unreachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/servicios", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	resp.Body.Close()
	return nil
}

func statusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
