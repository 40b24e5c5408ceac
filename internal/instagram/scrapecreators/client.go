package scrapecreators

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/instagram"
	"github.com/orgball2608/insta-feed-ingestor/pkg/config"
	"github.com/orgball2608/insta-feed-ingestor/pkg/errors"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"
)

const (
	apiKeyHeader   = "x-api-key"
	defaultTimeout = 30 * time.Second
)

type Opts struct {
	fx.In
	Config *config.Config
	Logger logger.Logger
}

type Client struct {
	http       *fasthttp.Client
	profileURL string
	postsURL   string
	apiKey     string
	timeout    time.Duration
	logger     logger.Logger
}

var _ instagram.Client = (*Client)(nil)

func New(opts Opts) *Client {
	sc := opts.Config.ScrapeCreators
	timeout := sc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &fasthttp.Client{
			ReadBufferSize:  16 * 1024,
			MaxConnsPerHost: 64,
		},
		profileURL: sc.ProfileURL,
		postsURL:   sc.PostsURL,
		apiKey:     sc.ApiKey,
		timeout:    timeout,
		logger:     opts.Logger.WithComponent("ScrapeCreators"),
	}
}

func (c *Client) GetProfileFeed(ctx context.Context, handle string) (*domain.ProfileFeedResponse, error) {
	var resp domain.ProfileFeedResponse
	if err := c.get(ctx, c.profileURL, map[string]string{"handle": handle}, &resp); err != nil {
		return nil, errors.UpstreamFetch(err, fmt.Sprintf("failed to fetch profile %s", handle))
	}
	resp.Handle = handle
	return &resp, nil
}

func (c *Client) GetPostsPage(ctx context.Context, handle, cursor string) (*domain.PagedPostsResponse, error) {
	query := map[string]string{"handle": handle}
	if cursor != "" {
		query["next_max_id"] = cursor
	}

	var resp domain.PagedPostsResponse
	if err := c.get(ctx, c.postsURL, query, &resp); err != nil {
		return nil, errors.UpstreamFetch(err, fmt.Sprintf("failed to fetch posts page of %s", handle))
	}
	resp.Handle = handle
	return &resp, nil
}

func (c *Client) get(ctx context.Context, url string, query map[string]string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	req.SetRequestURI(url)
	for key, value := range query {
		req.URI().QueryArgs().Add(key, value)
	}

	start := time.Now()
	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		c.logger.Error("Upstream request failed", "url", url, "error", err)
		return fmt.Errorf("request error: %w", err)
	}

	status := resp.StatusCode()
	c.logger.Debug("Upstream request finished", "url", url, "status", status, "took", time.Since(start).String())

	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d", status)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}
	return deadline
}
