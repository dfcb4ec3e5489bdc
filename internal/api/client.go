package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token() (string, bool)
}

// Envelope is the conventional response wrapper the backend uses.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a business rejection: the transport succeeded but the server
// reported a failure status or message. It is never retried.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Client issues requests against the backend REST API. It is stateless apart
// from the injected token source.
type Client struct {
	baseURL      string
	assetBaseURL string
	http         *http.Client
	tokens       TokenSource
}

// New creates a client for the API at baseURL. tokens may be nil for
// anonymous use; assetBaseURL is the prefix for relative upload paths.
func New(baseURL, assetBaseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		assetBaseURL: strings.TrimRight(assetBaseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		tokens:       tokens,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, "", nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) putJSON(ctx context.Context, path string, params url.Values, body interface{}, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, params, body, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, params url.Values, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, params, "application/json", reader, out)
}

func (c *Client) sendForm(ctx context.Context, method, path string, form *Form, out interface{}) error {
	contentType, reader, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, nil, contentType, reader, out)
}

// do issues one request and decodes the envelope. Transport failures come
// back wrapped; server-reported failures come back as *APIError. On success
// the envelope data is unmarshalled into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, contentType string, body io.Reader, out interface{}) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if env.Status != 0 && (env.Status < 200 || env.Status > 299) {
		log.WithFields(log.Fields{"path": path, "status": env.Status}).Debug("server rejected request")
		return &APIError{Status: env.Status, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode data from %s: %w", path, err)
		}
	}
	return nil
}
