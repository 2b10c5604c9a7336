// Package api is the single point of HTTP access to the platform backend.
//
// Every entity this app renders (countries, municipalities, clubs, youth,
// events, rewards, ...) is owned by the backend REST API; this client is the
// only way handlers read or write them. Plain requests are JSON; requests
// carrying staged files are sent as multipart/form-data. There is no retry
// and no caching — each page re-fetches after a mutation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Error is returned for any non-2xx backend response. Data holds the decoded
// JSON error body when the backend sent one (field name -> messages), which
// callers inspect for things like uniqueness conflicts on "name".
type Error struct {
	Status int
	Data   map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned %d", e.Status)
}

// IsNotFound reports whether err is a backend 404, or the 403 the backend
// uses for "not found or access denied" on scoped resources. Both render the
// same not-found panel.
func IsNotFound(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusForbidden
}

// ConflictOn reports whether err is a validation failure that names the given
// field in its body. The backend surfaces uniqueness conflicts this way
// (e.g. a duplicate club name arrives under a "name" key).
func ConflictOn(err error, field string) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status != http.StatusBadRequest && apiErr.Status != http.StatusConflict {
		return false
	}
	_, ok := apiErr.Data[field]
	return ok
}

// Client talks to the backend API under a fixed base URL.
type Client struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

// New constructs a Client. baseURL is the API root
// (e.g. "https://api.example.org/api"); a trailing slash is tolerated.
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		// Per-call deadlines come from the request context; this is the
		// hard ceiling for a single backend round trip.
		hc:  &http.Client{Timeout: 60 * time.Second},
		log: logger,
	}
}

// BaseURL returns the configured API root without a trailing slash.
func (c *Client) BaseURL() string { return c.base }

// Get issues a read and decodes the JSON response into out (ignored if nil).
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Post issues a create. body may be a JSON-marshalable value or a *Payload
// (sent as multipart/form-data).
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// Patch issues a partial update with the same body contract as Post.
func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	raw, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// Delete removes a resource.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	u := c.base + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case *Payload:
		encoded, ct, err := b.Encode()
		if err != nil {
			return nil, fmt.Errorf("encode multipart payload: %w", err)
		}
		reader, contentType = encoded, ct
	default:
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader, contentType = bytes.NewReader(buf), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		if len(raw) > 0 {
			// Best effort: error bodies are usually JSON objects, but the
			// backend has been seen returning plain text on 5xx.
			_ = json.Unmarshal(raw, &apiErr.Data)
		}
		c.log.Debug("backend error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, apiErr
	}

	return raw, nil
}

func decode(raw []byte, out any) error {
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}
