package headhunter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/honeycarbs/vacancy-stats/pkg/restapi"
)

const (
	defaultBaseURL   = "https://api.hh.ru"
	defaultUserAgent = "vacancy-stats/0.1"
	defaultPerPage   = 100
)

// Client queries the HeadHunter vacancy search API
type Client struct {
	baseURL string
	api     *restapi.Client
}

// NewClient instantiates a HeadHunter API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("headhunter: parse base url: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	api := restapi.New(restapi.Config{
		Service:           "headhunter",
		HTTPClient:        cfg.HTTPClient,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Header:            http.Header{"User-Agent": []string{userAgent}},
	})

	return &Client{baseURL: baseURL, api: api}, nil
}

// SearchVacancies fetches one page of vacancies matching params.Text
func (c *Client) SearchVacancies(ctx context.Context, params SearchParams) (SearchResult, error) {
	if c == nil {
		return SearchResult{}, fmt.Errorf("headhunter: client is nil")
	}
	if params.Text == "" {
		return SearchResult{}, fmt.Errorf("headhunter: text is required")
	}

	perPage := params.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	values := url.Values{}
	values.Set("text", params.Text)
	if params.Area > 0 {
		values.Set("area", strconv.Itoa(params.Area))
	}
	values.Set("per_page", strconv.Itoa(perPage))
	values.Set("page", strconv.Itoa(params.Page))

	var result SearchResult
	if err := c.api.GetJSON(ctx, c.baseURL+"/vacancies", values, nil, &result); err != nil {
		return SearchResult{}, err
	}

	return result, nil
}
