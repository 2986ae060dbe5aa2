package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"movie-search/internal/logger"
)

type Config struct {
	Endpoint     string
	ProjectID    string
	DatabaseID   string
	CollectionID string
	APIKey       string
	Timeout      time.Duration
}

// Client is a thin REST client for the hosted document store. One instance
// is built at startup and injected; it holds no state beyond the connection
// pool.
type Client struct {
	config Config
	client *fasthttp.Client
	log    *logger.Logger
}

func NewClient(config Config, log *logger.Logger) (*Client, error) {
	switch {
	case config.Endpoint == "":
		return nil, fmt.Errorf("document store endpoint is required")
	case config.ProjectID == "":
		return nil, fmt.Errorf("document store project id is required")
	case config.DatabaseID == "":
		return nil, fmt.Errorf("document store database id is required")
	case config.CollectionID == "":
		return nil, fmt.Errorf("document store collection id is required")
	case config.APIKey == "":
		return nil, fmt.Errorf("document store API key is required")
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
		log:    log.WithField("component", "docstore_client"),
	}, nil
}

func (c *Client) documentsURL() string {
	return fmt.Sprintf("%s/databases/%s/collections/%s/documents",
		c.config.Endpoint, c.config.DatabaseID, c.config.CollectionID)
}

// do executes one request against the store and returns the response body.
// Non-2xx responses and transport failures come back as errors; decoding is
// left to the caller.
func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("document store request aborted: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Appwrite-Project", c.config.ProjectID)
	req.Header.Set("X-Appwrite-Key", c.config.APIKey)
	if body != nil {
		req.SetBody(body)
	}

	timeout := c.config.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("document store request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.log.WithFields(map[string]interface{}{
			"status": resp.StatusCode(),
			"method": method,
		}).Debug("document store request rejected")
		return nil, fmt.Errorf("document store returned status %d", resp.StatusCode())
	}

	// resp.Body() is reused after release
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return out, nil
}
