package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/internal/http"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// Client implements the notion.Client interface.
type Client struct {
	httpClient *http.Client
	logger     notion.Logger
}

var _ notion.Client = (*Client)(nil)

// New creates a new Notion API client. The configuration is validated first
// and every problem is reported in one error.
func New(ctx context.Context, config *notion.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = notion.DefaultBaseURL
	}

	httpClient, err := http.NewClient(baseURL, config.Token, createHTTPClientOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}, nil
}

// NewWithHTTPClient creates a client on top of an existing transport.
func NewWithHTTPClient(httpClient *http.Client, logger notion.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// createHTTPClientOptions translates the config into transport options.
func createHTTPClientOptions(config *notion.Config) []http.Option {
	httpOpts := []http.Option{}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.APIVersion != "" {
		httpOpts = append(httpOpts, http.WithAPIVersion(config.APIVersion))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// get sends a GET request and decodes the body into an Object.
func (c *Client) get(ctx context.Context, path string, query url.Values) (notion.Object, error) {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return decodeResponse(resp)
}

// post sends a POST request and decodes the body into an Object.
func (c *Client) post(ctx context.Context, path string, body interface{}) (notion.Object, error) {
	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeResponse(resp)
}

// decodeResponse turns a response body into an Object. An error object
// becomes an APIError whatever the HTTP status was.
func decodeResponse(resp *http.Response) (notion.Object, error) {
	object, err := notion.DecodeObject(resp.Body)
	if err != nil {
		decodeErr := &notion.DecodeError{}
		if errors.As(err, &decodeErr) {
			withStatus := *decodeErr
			withStatus.StatusCode = resp.StatusCode

			return nil, &withStatus
		}

		return nil, &notion.DecodeError{StatusCode: resp.StatusCode, Err: err}
	}

	if errObject, ok := object.(notion.ErrorObject); ok {
		apiErr := errObject.Response.AsError()
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}

		return nil, apiErr
	}

	return object, nil
}

// expectList narrows a response to a list object.
func expectList(object notion.Object) (notion.ListResponse[notion.Object], error) {
	list, ok := object.(notion.ListObject)
	if !ok {
		return notion.ListResponse[notion.Object]{}, &notion.UnexpectedResponseError{Response: object}
	}

	return list.List, nil
}

// loggerAdapter adapts notion.Logger to http.Logger.
type loggerAdapter struct {
	logger notion.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
