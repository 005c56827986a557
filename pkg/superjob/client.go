package superjob

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
	defaultBaseURL = "https://api.superjob.ru/2.0"
	defaultCount   = 100
	appKeyHeader   = "X-Api-App-Id"
)

// Client queries the SuperJob vacancy catalogue
type Client struct {
	appKey  string
	baseURL string
	api     *restapi.Client
}

// NewClient instantiates a SuperJob API client
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AppKey) == "" {
		return nil, fmt.Errorf("superjob: app key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	api := restapi.New(restapi.Config{
		Service:           "superjob",
		HTTPClient:        cfg.HTTPClient,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})

	return &Client{
		appKey:  cfg.AppKey,
		baseURL: baseURL,
		api:     api,
	}, nil
}

// SearchVacancies fetches one page of vacancies matching params.Keyword
func (c *Client) SearchVacancies(ctx context.Context, params SearchParams) (SearchResult, error) {
	if c == nil {
		return SearchResult{}, fmt.Errorf("superjob: client is nil")
	}
	if params.Keyword == "" {
		return SearchResult{}, fmt.Errorf("superjob: keyword is required")
	}

	count := params.Count
	if count <= 0 {
		count = defaultCount
	}

	values := url.Values{}
	values.Set("keyword", params.Keyword)
	if params.Town > 0 {
		values.Set("town", strconv.Itoa(params.Town))
	}
	if params.Catalogues > 0 {
		values.Set("catalogues", strconv.Itoa(params.Catalogues))
	}
	values.Set("count", strconv.Itoa(count))
	values.Set("page", strconv.Itoa(params.Page))

	header := http.Header{}
	header.Set(appKeyHeader, c.appKey)

	var result SearchResult
	if err := c.api.GetJSON(ctx, c.baseURL+"/vacancies/", values, header, &result); err != nil {
		return SearchResult{}, err
	}

	return result, nil
}
