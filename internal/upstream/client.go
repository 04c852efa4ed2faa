package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/content-gateway/internal/config"
)

// APIError is the sole failure signal for upstream calls. It carries
// the HTTP status, the best-effort parsed error body and a message
// taken from the body's "message" field when present.
type APIError struct {
	Status  int
	Payload map[string]any
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// RequestOptions shapes one upstream request. Query entries with nil
// values are omitted; everything else is stringified. Caller-supplied
// headers win over the defaults. Token, when set, is attached as a
// bearer credential.
type RequestOptions struct {
	Query  map[string]any
	Body   any
	Header http.Header
	Token  string
}

// Client is the single request path to the remote content API. It
// normalizes outgoing requests (base URL joining, query serialization,
// credential attachment) and incoming responses (JSON decoding,
// structured errors on non-2xx). No retries, no caching.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

// New builds a Client from upstream configuration.
func New(cfg config.UpstreamConfig, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}, nil
}

// Ping issues a minimal request against the API root. Any HTTP
// response counts as reachable; only transport failures report the
// upstream down.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	return resp.Body.Close()
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, opts)
}

// Do performs one upstream request. A 204 response yields a nil
// payload with no error; any other 2xx returns the raw JSON body for
// the caller to unwrap. Non-2xx responses return *APIError.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions) (json.RawMessage, error) {
	target, err := c.resolve(path, opts.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range opts.Header {
		if len(values) > 0 {
			req.Header.Set(key, values[0])
		}
	}
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.logger.Debug("upstream response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	return json.RawMessage(raw), nil
}

// resolve joins path to the base URL (absolute URLs pass through) and
// appends the serialized query.
func (c *Client) resolve(path string, query map[string]any) (string, error) {
	var target *url.URL
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		parsed, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("parse request url: %w", err)
		}
		target = parsed
	} else {
		target = c.baseURL.JoinPath(strings.TrimPrefix(path, "/"))
	}

	if len(query) > 0 {
		values := target.Query()
		for key, value := range query {
			if value == nil {
				continue
			}
			values.Set(key, fmt.Sprintf("%v", value))
		}
		target.RawQuery = values.Encode()
	}
	return target.String(), nil
}

// newAPIError builds the structured error for a non-2xx response. An
// unparseable body degrades to an empty payload, never to a second
// failure.
func newAPIError(status int, body []byte) *APIError {
	payload := map[string]any{}
	_ = json.Unmarshal(body, &payload)

	message := fmt.Sprintf("API %d %s", status, http.StatusText(status))
	if m, ok := payload["message"].(string); ok && m != "" {
		message = m
	}
	return &APIError{Status: status, Payload: payload, Message: message}
}
