package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swift-aid/admin-console/session"
)

// ErrUnauthorized signals that the backend rejected the bearer token. The
// expected remediation is forcing a re-login.
var ErrUnauthorized = errors.New("authentication failed, please login again")

// ErrNoToken signals a call that requires authentication while signed out
var ErrNoToken = errors.New("no authentication token available")

// APIError carries a non-2xx application-level failure with the
// server-provided message when one was present
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed: %d %s", e.StatusCode, e.Message)
}

// Client talks to the Swift Aid admin API. Each call is a single best-effort
// attempt: no retries, no caching. The session manager is injected so the
// bearer token has exactly one source of truth.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Manager
}

// New creates a client against baseURL using the given session for tokens
func New(baseURL string, sess *session.Manager) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		sess:    sess,
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client,
// used by tests and callers that need transport-level settings
func NewWithHTTPClient(baseURL string, sess *session.Manager, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc, sess: sess}
}

// ImageURL builds the public URL of an emergency image. The image itself is
// referenced by URL only and never fetched or processed here.
func (c *Client) ImageURL(imageID string) string {
	return fmt.Sprintf("%s/emergency/image/%s", c.baseURL, imageID)
}

// do performs one request and decodes the JSON response into out. Every
// authenticated route funnels through here: bearer header, request ID,
// error classification, and uniform 401 session invalidation.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, authed bool, fallback string, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if authed {
		token := c.sess.Token()
		if token == "" {
			return ErrNoToken
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zap.S().Errorw("request transport failure",
			"method", method,
			"path", path,
			"error", err,
		)
		return fmt.Errorf("unable to connect to server, please check your connection: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.sess.Invalidate()
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(respBody, fallback),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// serverMessage extracts the structured error message from a failure body,
// falling back to the endpoint's generic message
func serverMessage(body []byte, fallback string) string {
	var er struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return er.Message
	}
	return fallback
}
