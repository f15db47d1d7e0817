// Package backend talks to the real marketplace backend API. It is the
// real-mode counterpart of the in-memory stores: every service call
// becomes a JSON HTTP request with a bearer token and a fixed timeout.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// TokenSource supplies the bearer token injected on every request. An
// empty token omits the Authorization header.

type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource backed by a fixed string, e.g. a service
// credential loaded from the environment.

type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Envelope is the uniform response shape callers receive for every
// outcome (network error, timeout, non-2xx or success). Callers only
// inspect Success; they never need to distinguish transport failures
// from application failures structurally.

type Envelope struct {
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Status  int             `json:"status"`
	Success bool            `json:"success"`
}

// Err converts a failed envelope into an error for repository-style
// callers. Nil on success.
func (e Envelope) Err() error {
	if e.Success {
		return nil
	}
	return fmt.Errorf("backend request failed: %s (status %d)", e.Error, e.Status)
}

// Decode unmarshals the envelope payload into out.
func (e Envelope) Decode(out any) error {
	if len(e.Data) == 0 {
		return errors.New("backend response has no data")
	}
	return json.Unmarshal(e.Data, out)
}

// Client is the generic request wrapper. No retry, no backoff: a failure
// is terminal for that call.

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Get(ctx context.Context, path string) Envelope {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) Envelope {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) Envelope {
	return c.Do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) Envelope {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do performs one request and folds whatever happened into an Envelope.
func (c *Client) Do(ctx context.Context, method, path string, body any) Envelope {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return Envelope{Error: fmt.Sprintf("failed to encode request: %v", err), Status: 0}
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Envelope{Error: fmt.Sprintf("failed to create request: %v", err), Status: 0}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Envelope{Error: "request timed out", Status: 0}
		}
		return Envelope{Error: fmt.Sprintf("request failed: %v", err), Status: 0}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{Error: fmt.Sprintf("failed to read response: %v", err), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Envelope{
			Error:  errorMessage(raw, resp.StatusCode),
			Status: resp.StatusCode,
		}
	}

	return Envelope{
		Data:    normalizeData(raw),
		Status:  resp.StatusCode,
		Success: true,
	}
}

// errorMessage extracts a human-readable message from an error body,
// falling back to the raw text.
func errorMessage(raw []byte, status int) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return fmt.Sprintf("unexpected status %d", status)
}

// normalizeData unwraps responses the backend already serves enveloped,
// so callers always decode the payload itself.
func normalizeData(raw []byte) json.RawMessage {
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 {
		return wrapped.Data
	}
	return raw
}
