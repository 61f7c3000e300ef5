package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
)

const (
	categoriesPath = "/categories"
	productsPath   = "/products"

	defaultTimeout   = 10 * time.Second
	defaultRateLimit = 5
)

// Client talks to the storefront catalog REST API.
type Client struct {
	http    *resty.Client
	limiter ratelimit.Limiter
	baseURL string
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	token     string
	timeout   time.Duration
	rateLimit int
}

// WithToken sends a bearer token with every request.
func WithToken(token string) ClientOption {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRateLimit caps requests per second. Zero or less disables the limit.
func WithRateLimit(perSecond int) ClientOption {
	return func(o *clientOptions) {
		o.rateLimit = perSecond
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: catalog base URL", common.ErrMissingConfig)
	}

	o := clientOptions{timeout: defaultTimeout, rateLimit: defaultRateLimit}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(o.timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "bottleshop")
	if o.token != "" {
		httpClient.SetAuthToken(o.token)
	}

	limiter := ratelimit.NewUnlimited()
	if o.rateLimit > 0 {
		limiter = ratelimit.New(o.rateLimit)
	}

	return &Client{
		http:    httpClient,
		limiter: limiter,
		baseURL: baseURL,
	}, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchCategories returns the catalog as served by GET /categories.
func (c *Client) FetchCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, categoriesPath, &categories); err != nil {
		return nil, err
	}
	if err := Validate(categories); err != nil {
		return nil, &common.RetryableError{Err: err, Retryable: false}
	}
	return categories, nil
}

// FetchProducts returns the products served by GET /products.
func (c *Client) FetchProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.get(ctx, productsPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// get performs a GET and classifies failures for common.WithRetry:
// transport errors and 5xx are retryable, 429 is a rate limit, other
// statuses fail immediately.
func (c *Client) get(ctx context.Context, path string, result any) error {
	c.limiter.Take()

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		if ctx.Err() != nil {
			return &common.RetryableError{Err: fmt.Errorf("request cancelled: %w", ctx.Err()), Retryable: false}
		}
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: GET %s: %w", common.ErrCatalogUnavailable, path, err),
			Retryable: true,
		}
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("GET %s: %w", path, common.ErrRateLimit)
	case status >= http.StatusInternalServerError:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: GET %s returned %s", common.ErrCatalogUnavailable, path, resp.Status()),
			Retryable: true,
		}
	case resp.IsError():
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: GET %s returned %s", common.ErrCatalogUnavailable, path, resp.Status()),
			Retryable: false,
		}
	}

	slog.Debug("catalog request complete", "path", path, "status", resp.StatusCode())
	return nil
}
