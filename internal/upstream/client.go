// Package upstream is the single entry point for every call to the core
// REST backend. It attaches bearer credentials, serializes JSON bodies and
// normalizes failures into one error shape; callers never look at raw
// status codes.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"innovati-portal/pkg/logger"
	"innovati-portal/pkg/metrics"
)

// Error is the normalized failure returned for any non-2xx response.
// Message comes from the server's "error" field, then "message", then
// falls back to "HTTP <status>".
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is an upstream 401, the only signal
// that a stored token has expired.
func IsUnauthorized(err error) bool {
	ue, ok := err.(*Error)
	return ok && ue.Status == http.StatusUnauthorized
}

type Client struct {
	base   string
	client *http.Client
	logger *zap.Logger
}

// NewClient builds a client for the given base URL. The base is resolved
// once at startup; no timeout is set on the underlying http.Client (a hung
// upstream call lives as long as the request context that carries it).
func NewClient(base string, log *zap.Logger) *Client {
	return &Client{
		base:   base,
		client: &http.Client{},
		logger: log,
	}
}

// Do performs one upstream call. body is marshaled to JSON when non-nil
// and omitted entirely otherwise; token, when non-empty, is sent as a
// bearer credential. A 2xx response whose body is not valid JSON is
// treated as an empty object, never as a failure.
func (c *Client) Do(ctx context.Context, method, path string, body any, token string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamErrorCount.WithLabelValues(path, "transport").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	metrics.ObserveUpstreamRequest(method, path, strconv.Itoa(resp.StatusCode), time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamErrorCount.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()
		msg := errorMessage(raw, resp.StatusCode)
		logger.WithRequest(ctx, c.logger).Warn("upstream call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", msg),
		)
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}

	if !json.Valid(raw) || len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("{}"), nil
	}
	return raw, nil
}

// errorMessage picks the human-readable message out of a failure body:
// "error" field first, "message" second, synthesized status last.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

// get decodes a GET response into out.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	raw, err := c.Do(ctx, http.MethodGet, path, nil, token)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

// send performs a mutation and decodes the response into out when out is
// non-nil (mutation endpoints may answer 2xx with no body).
func (c *Client) send(ctx context.Context, method, path string, body any, token string, out any) error {
	raw, err := c.Do(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeInto(raw, out)
}

func decodeInto(raw json.RawMessage, out any) error {
	// Empty-object fallback against a slice target decodes to nil; lists
	// tolerate backends that answer 2xx with no body.
	if err := json.Unmarshal(raw, out); err != nil {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("{}")) {
			return nil
		}
		return err
	}
	return nil
}
