package upstream

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

	"github.com/sirupsen/logrus"
)

// Error carries an upstream HTTP failure. The portal's error taxonomy is
// deliberately flat: every gateway failure is one of these. Data holds the
// envelope's data payload when the failing response carried one, for callers
// that can recover from a specific rejection.
type Error struct {
	StatusCode int
	Message    string
	Data       json.RawMessage
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream error: status %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an upstream Error with the given status.
func IsStatus(err error, statusCode int) bool {
	var upstreamErr *Error
	return errors.As(err, &upstreamErr) && upstreamErr.StatusCode == statusCode
}

// Envelope is the response convention shared by all backend services.
type Envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Config controls a service client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

// Client performs JSON calls against one backend service. Exactly one HTTP
// request per call: no retry, no caching, no in-flight deduplication.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("upstream: base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// Do performs one request and decodes the {message, data} envelope into out
// (out may be nil for calls whose data is ignored). The bearer token is the
// caller's session token, forwarded as-is.
func (c *Client) Do(ctx context.Context, method, path, bearer string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("upstream: read response: %w", err)
	}

	var envelope Envelope
	if len(payload) > 0 {
		// A non-envelope body is tolerated; the status code still decides.
		_ = json.Unmarshal(payload, &envelope)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		message := envelope.Message
		if message == "" {
			message = strings.TrimSpace(string(payload))
		}
		c.log.Warnf("Upstream %s %s failed: status=%d message=%q", method, path, res.StatusCode, message)
		return &Error{StatusCode: res.StatusCode, Message: message, Data: envelope.Data}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("upstream: decode response data: %w", err)
		}
	}

	return nil
}

// PostForCookies performs one POST and returns the cookies the service set,
// for authentication calls whose tokens travel as Set-Cookie headers that the
// portal relays to the browser untouched.
func (c *Client) PostForCookies(ctx context.Context, path, bearer string, body, out interface{}) ([]*http.Cookie, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("upstream: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: POST %s: %w", path, err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream: read response: %w", err)
	}

	var envelope Envelope
	if len(payload) > 0 {
		_ = json.Unmarshal(payload, &envelope)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		message := envelope.Message
		if message == "" {
			message = strings.TrimSpace(string(payload))
		}
		c.log.Warnf("Upstream POST %s failed: status=%d message=%q", path, res.StatusCode, message)
		return nil, &Error{StatusCode: res.StatusCode, Message: message, Data: envelope.Data}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, fmt.Errorf("upstream: decode response data: %w", err)
		}
	}

	return res.Cookies(), nil
}

func (c *Client) Get(ctx context.Context, path, bearer string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, bearer, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path, bearer string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, bearer, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path, bearer string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, path, bearer, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path, bearer string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, bearer, nil, nil, out)
}
