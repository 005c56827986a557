package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

const maxErrorBody = 4096

// ErrDecode marks a response body that is not the JSON the caller expected.
var ErrDecode = errors.New("malformed response body")

// Config defines a JSON GET client
type Config struct {
	// Service prefixes error messages, e.g. "headhunter".
	Service    string
	HTTPClient *http.Client
	// RequestsPerSecond <= 0 disables pacing.
	RequestsPerSecond float64
	Burst             int
	// Header is sent with every request.
	Header http.Header
}

// Client issues GET requests against a JSON REST API
type Client struct {
	service    string
	httpClient *http.Client
	limiter    *rate.Limiter
	header     http.Header
}

// StatusError is returned for HTTP responses with status >= 400.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: API error (%d): %s", e.Service, e.StatusCode, e.Body)
}

// New builds a Client from cfg
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	service := cfg.Service
	if service == "" {
		service = "restapi"
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		service:    service,
		httpClient: httpClient,
		limiter:    limiter,
		header:     cfg.Header.Clone(),
	}
}

// GetJSON requests endpoint with query and decodes the JSON body into out
func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, header http.Header, out any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%s: parse url: %w", c.service, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: rate limit wait: %w", c.service, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.service, err)
	}
	for k, v := range c.header {
		req.Header[k] = v
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", c.service, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", c.service, ErrDecode, err)
	}

	return nil
}
