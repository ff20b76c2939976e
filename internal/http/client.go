// Package http is the transport of the Notion client: it attaches the
// version and credential headers, retries transient failures and logs the
// exchange.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// Logger interface for the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is one API call. Path is relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of an API call. Error statuses are returned as
// responses, not errors: the body of a Notion error is a regular object.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends requests to the Notion API. It is safe for concurrent use.
type Client struct {
	baseURL       string
	authorization string
	apiVersion    string
	userAgent     string
	logger        Logger
	debug         bool
	interceptors  *notion.InterceptorChain

	httpClient   *retryablehttp.Client
	baseClient   *http.Client
	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the transport logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
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

// WithAPIVersion overrides the Notion-Version header.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithRetryConfig retries connection errors, 429 and 5xx responses up to
// retryMax times with a backoff between waitMin and waitMax.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithTimeout bounds a single HTTP exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sends requests through client instead of a pooled default.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.baseClient = client
	}
}

// WithInterceptors runs chain around every exchange.
func WithInterceptors(chain *notion.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for baseURL authenticated with token. The
// token must be usable as a header value.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if !notion.ValidToken(token) {
		return nil, notion.ErrInvalidCredential
	}

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		authorization: "Bearer " + token,
		apiVersion:    notion.DefaultAPIVersion,
		userAgent:     constants.DefaultUserAgent,
		timeout:       constants.DefaultHTTPTimeout,
		retryWaitMin:  constants.DefaultRetryWaitMin,
		retryWaitMax:  constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = client.retryMax
	retryClient.RetryWaitMin = client.retryWaitMin
	retryClient.RetryWaitMax = client.retryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger, debug: client.debug}
	}

	if client.baseClient != nil {
		retryClient.HTTPClient = client.baseClient
	} else if client.timeout > 0 {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	client.httpClient = retryClient

	return client, nil
}

// Do sends req and reads the whole response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte

	if req.Body != nil {
		var err error

		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("Notion-Version", c.apiVersion)

	if c.userAgent != "" {
		headers.Set("User-Agent", c.userAgent)
	}

	if body != nil {
		headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	intercepted := &notion.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: headers,
		Body:    body,
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}
	}

	fullURL := c.baseURL + intercepted.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = bytes.NewReader(intercepted.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers.Clone()
	if httpReq.Header == nil {
		httpReq.Header = make(http.Header)
	}

	httpReq.Header.Set("Authorization", c.authorization)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": intercepted.Method,
			"path":   intercepted.Path,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		c.afterResponse(ctx, intercepted, &notion.Response{Error: err, Duration: time.Since(start)})

		return nil, &notion.TransportError{Method: intercepted.Method, Path: intercepted.Path, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &notion.TransportError{
			Method: intercepted.Method,
			Path:   intercepted.Path,
			Err:    fmt.Errorf("reading response body: %w", err),
		}
	}

	duration := time.Since(start)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   intercepted.Method,
			"path":     intercepted.Path,
			"status":   httpResp.StatusCode,
			"duration": duration.String(),
		})
	}

	c.afterResponse(ctx, intercepted, &notion.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		Duration:   duration,
	})

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// afterResponse runs the response interceptors. Their errors are logged:
// the exchange already happened and its result is returned regardless.
func (c *Client) afterResponse(ctx context.Context, req *notion.Request, resp *notion.Response) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})
	}
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// leveledLogger bridges retryablehttp logging to Logger. Debug messages are
// only forwarded in debug mode.
type leveledLogger struct {
	logger Logger
	debug  bool
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.debug {
		l.logger.Debug(msg, fieldsOf(keysAndValues))
	}
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsOf(keysAndValues))
}

// fieldsOf turns alternating keys and values into a field map. The URL
// field is reduced to its path so that query strings are not logged.
func fieldsOf(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		value := keysAndValues[i+1]

		if key == "url" {
			value = pathOf(value)
		}

		fields[key] = value
	}

	return fields
}

func pathOf(value interface{}) interface{} {
	switch v := value.(type) {
	case *url.URL:
		return v.Path
	case string:
		parsed, err := url.Parse(v)
		if err == nil {
			return parsed.Path
		}
	}

	return value
}
