// Package http implements the HTTP transport for the Code Ocean API client.
//
// Every operation maps to exactly one Request, dispatched once (unless
// retries are explicitly enabled) and returned as a raw codeocean.Response.
// Non-2xx statuses are not translated into errors; interpretation belongs to
// the caller.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/AllenNeuralDynamics/codeocean-go/internal/constants"
	"github.com/AllenNeuralDynamics/codeocean-go/pkg/codeocean"
)

// Request represents an API request before dispatch. It is constructed fresh
// per call and discarded afterwards.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Logger interface for HTTP-level logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client dispatches API requests against a fixed base URL with a static
// bearer token. It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures (>=500, 429, and
// connection errors). Without it every request is dispatched exactly once.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient overrides the underlying standard HTTP client, including
// its timeout and transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new transport client. The token may be empty, in which
// case no Authorization header is sent.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Exhausted retries must surface the last response untouched, not a
	// synthesized error; status interpretation is the caller's.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do dispatches a single request and returns the raw response. The returned
// error is non-nil only for transport-level failures: request construction,
// connection errors, context cancellation, or body reads.
func (c *Client) Do(ctx context.Context, req *Request) (*codeocean.Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		bodyBytes []byte
		rawBody   interface{}
	)

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = bodyBytes
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"body":   string(bodyBytes),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
			"body":   string(respBody),
		})
	}

	return &codeocean.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*codeocean.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*codeocean.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*codeocean.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with optional query parameters.
func (c *Client) Patch(ctx context.Context, path string, query url.Values) (*codeocean.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Query: query})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*codeocean.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
