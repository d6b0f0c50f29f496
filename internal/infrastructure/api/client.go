// Package api is the outbound client for the marketplace REST API. Every
// business decision (pricing, stock, order transitions, approvals) is made
// by the remote service; this package only shapes requests and decodes
// responses. Each method performs exactly one HTTP request, with no retry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxResponseSize is the maximum allowed response size from the API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Config holds client configuration
type Config struct {
	BaseURL        string
	TimeoutSeconds int
	UserAgent      string
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("api: base URL is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("api: invalid base URL: %w", err)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("api: timeout must be positive")
	}
	return nil
}

// Client calls the marketplace API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new marketplace API client
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// PageMeta is the pagination block the API attaches to list responses
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// ListOptions are the common query parameters for list endpoints
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
	Status   string
}

func (o ListOptions) values() url.Values {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if o.Search != "" {
		values.Set("search", o.Search)
	}
	if o.Status != "" {
		values.Set("status", o.Status)
	}
	return values
}

// envelope mirrors the marketplace response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
	Meta    *PageMeta       `json:"meta"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do performs a single request against the API. token may be empty for
// public endpoints. When out is non-nil the response data is decoded into
// it. The returned meta is nil unless the endpoint paginates.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out any) (*PageMeta, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		// A decode failure on an error status still yields a usable Error
		// below, so it is only fatal for success responses.
		if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil && resp.StatusCode < 400 {
			return nil, fmt.Errorf("api: failed to parse response: %w", jsonErr)
		}
	}

	if resp.StatusCode >= 400 || (len(raw) > 0 && !env.Success) {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("api: failed to decode response data: %w", err)
		}
	}

	return env.Meta, nil
}
