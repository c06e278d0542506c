package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"link-admin/pkg/cli/logger"

	"github.com/google/uuid"
)

// DefaultLinksPath is the collection path served to the admin panel.
const DefaultLinksPath = "/ui/api"

// Client is an HTTP client for the link REST resource
type Client struct {
	baseURL    string
	linksPath  string
	httpClient *http.Client
}

// NewClient creates a new API client. A zero timeout means requests are
// never abandoned by the client.
func NewClient(baseURL, linksPath string, timeout time.Duration) *Client {
	// Remove trailing slash from base URL
	baseURL = strings.TrimSuffix(baseURL, "/")
	if linksPath == "" {
		linksPath = DefaultLinksPath
	}
	if !strings.HasPrefix(linksPath, "/") {
		linksPath = "/" + linksPath
	}

	return &Client{
		baseURL:   baseURL,
		linksPath: strings.TrimSuffix(linksPath, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// response is a fully read HTTP response.
type response struct {
	status int
	body   []byte
}

// buildRequest creates an HTTP request with proper headers
func (c *Client) buildRequest(ctx context.Context, method, path string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

// do performs an HTTP request and reads the whole body. Only failures to
// complete the exchange are reported here; status handling is left to the
// caller because list/create and update/delete signal failure differently.
func (c *Client) do(ctx context.Context, op Op, method, path string, payload interface{}) (*response, error) {
	req, err := c.buildRequest(ctx, method, path, payload)
	if err != nil {
		return nil, &TransportError{Op: op, Cause: err}
	}

	log := logger.WithFields(map[string]interface{}{
		"op":         string(op),
		"method":     method,
		"path":       path,
		"request_id": req.Header.Get("X-Request-ID"),
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return nil, &TransportError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Warn("failed to read response")
		return nil, newTransportError(op, "failed to read response: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("request completed")

	return &response{status: resp.StatusCode, body: body}, nil
}

// decodeEnvelope handles the list/create convention: failure is carried by
// success=false in the body, whatever the status code.
func decodeEnvelope[T any](op Op, resp *response) (T, error) {
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	var zero T

	if err := json.Unmarshal(resp.body, &env); err != nil {
		return zero, newTransportError(op, "failed to parse response (%d): %w", resp.status, err)
	}
	if !env.Success {
		return zero, &ApplicationError{Op: op, Status: resp.status, Message: env.Message}
	}

	var data T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return zero, newTransportError(op, "failed to parse response data: %w", err)
		}
	}
	return data, nil
}

// expectNoContent handles the update/delete convention: 204 is the only
// success, anything else carries a {message} body.
func expectNoContent(op Op, resp *response) error {
	if resp.status == http.StatusNoContent {
		return nil
	}

	var errorResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.body, &errorResp); err != nil {
		return newTransportError(op, "failed to parse error response (%d): %w", resp.status, err)
	}
	msg := errorResp.Message
	if msg == "" {
		msg = http.StatusText(resp.status)
	}
	return &ApplicationError{Op: op, Status: resp.status, Message: msg}
}
