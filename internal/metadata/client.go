package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"

	"movie-search/internal/domain"
	"movie-search/internal/logger"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the movie metadata API. It is constructed once at startup
// and injected into whatever needs it; there is no package-level instance.
type Client struct {
	config Config
	client *fasthttp.Client
	log    *logger.Logger
}

func NewClient(config Config, log *logger.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("metadata API key is required")
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("metadata base URL is required")
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	client := &fasthttp.Client{
		ReadTimeout:         config.Timeout,
		WriteTimeout:        config.Timeout,
		MaxIdleConnDuration: 90 * time.Second,
	}

	return &Client{
		config: config,
		client: client,
		log:    log.WithField("component", "metadata_client"),
	}, nil
}

// FetchMovies returns movie summaries for the query. An empty query hits the
// discover endpoint sorted by popularity; anything else hits search.
func (c *Client) FetchMovies(ctx context.Context, query string) ([]domain.Movie, error) {
	if query == "" {
		return c.get(ctx, "/discover/movie?sort_by=popularity.desc")
	}
	return c.get(ctx, "/search/movie?query="+url.QueryEscape(query))
}

func (c *Client) get(ctx context.Context, path string) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, transportErr(err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.config.BaseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	timeout := c.config.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		c.log.WithError(err).Debug("metadata request failed")
		return nil, transportErr(err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.log.WithField("status", resp.StatusCode()).Debug("metadata request rejected")
		return nil, statusErr(resp.StatusCode())
	}

	var body movieListResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, decodeErr(err)
	}
	if body.Results == nil {
		return nil, decodeErr(fmt.Errorf("response missing results array"))
	}

	return *body.Results, nil
}
