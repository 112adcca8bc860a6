// Package backend is the adapter for the remote data service. It owns the
// wire payloads and the raw→domain normalization; nothing above this package
// knows about HTTP, and nothing below it knows about domain types.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dnieto/retailcore/internal/domain"
	"github.com/dnieto/retailcore/pkg/ctxutil"
)

const defaultTimeout = 10 * time.Second

// Client talks to the retail data backend over REST.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given base URL. A zero timeout falls
// back to the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "backend"),
	}
}

// apiError is the error envelope the backend sends on non-2xx responses.
type apiError struct {
	Error string `json:"error"`
}

// do executes one JSON request against the backend. A nil out discards the
// response body. Status codes are mapped onto the domain sentinels so callers
// never see raw HTTP.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, reqID := ctxutil.EnsureRequestID(ctx)

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("backend: create request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.DebugContext(ctx, "backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", reqID),
	)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("backend: %s %s: %v: %w", method, path, err, domain.ErrBackend)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read %s %s: %v: %w", method, path, err, domain.ErrBackend)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(method, path, resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("backend: decode %s %s: %v: %w", method, path, err, domain.ErrBackend)
		}
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. Requests with a body are re-sent with a fresh reader via GetBody.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "backend retry",
		slog.String("path", req.URL.Path),
		slog.String("reason", reason),
	)

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if req.GetBody != nil {
		fresh, bErr := req.GetBody()
		if bErr != nil {
			return resp, err
		}
		req.Body = fresh
	}

	time.Sleep(500 * time.Millisecond)

	return c.httpClient.Do(req)
}

func (c *Client) mapStatus(method, path string, status int, raw []byte) error {
	var envelope apiError
	_ = json.Unmarshal(raw, &envelope)
	msg := envelope.Error
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("backend: %s %s: %s: %w", method, path, msg, domain.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("backend: %s %s: %s: %w", method, path, msg, domain.ErrAlreadyExists)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("backend: %s %s: %s: %w", method, path, msg, domain.ErrValidation)
	default:
		return fmt.Errorf("backend: %s %s: status %d: %s: %w", method, path, status, msg, domain.ErrBackend)
	}
}
