package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Request represents an HTTP request that can be intercepted. Headers never
// include Authorization, which the transport adds after the interceptors run.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Response represents an HTTP response that can be intercepted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorStage tells which half of an exchange an interceptor ran in.
type InterceptorStage string

const (
	InterceptorStageRequest  InterceptorStage = "request"
	InterceptorStageResponse InterceptorStage = "response"
)

// ErrReservedHeader is returned when a request interceptor sets the
// Authorization header. The client owns the integration token.
var ErrReservedHeader = errors.New("header is reserved for the integration token")

// InterceptorError identifies the interceptor that rejected an exchange.
// Index is the position of the interceptor within its stage.
type InterceptorError struct {
	Stage  InterceptorStage
	Index  int
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *InterceptorError) Error() string {
	return fmt.Sprintf("%s interceptor %d failed for %s %s: %v", e.Stage, e.Index, e.Method, e.Path, e.Err)
}

// Unwrap returns the error the interceptor returned.
func (e *InterceptorError) Unwrap() error { return e.Err }

// InterceptorChain runs interceptors in the order they were added. Build the
// chain before handing it to a client; a nil chain runs nothing.
type InterceptorChain struct {
	onRequest  []RequestInterceptor
	onResponse []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends request interceptors. Nil entries are skipped.
func (c *InterceptorChain) AddRequestInterceptor(interceptors ...RequestInterceptor) *InterceptorChain {
	for _, interceptor := range interceptors {
		if interceptor != nil {
			c.onRequest = append(c.onRequest, interceptor)
		}
	}

	return c
}

// AddResponseInterceptor appends response interceptors. Nil entries are skipped.
func (c *InterceptorChain) AddResponseInterceptor(interceptors ...ResponseInterceptor) *InterceptorChain {
	for _, interceptor := range interceptors {
		if interceptor != nil {
			c.onResponse = append(c.onResponse, interceptor)
		}
	}

	return c
}

// ExecuteRequestInterceptors runs the request stage and stops at the first
// failure. Each interceptor sees a non-nil header map and none of them may
// set Authorization.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	if req.Headers == nil {
		req.Headers = make(http.Header)
	}

	for i, interceptor := range c.onRequest {
		err := interceptor(ctx, req)
		if err == nil && req.Headers.Get(authorizationHeader) != "" {
			err = fmt.Errorf("%w: %s", ErrReservedHeader, authorizationHeader)
		}

		if err != nil {
			return &InterceptorError{Stage: InterceptorStageRequest, Index: i, Method: req.Method, Path: req.Path, Err: err}
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response stage and stops at the first failure.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for i, interceptor := range c.onResponse {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return &InterceptorError{Stage: InterceptorStageResponse, Index: i, Method: req.Method, Path: req.Path, Err: err}
		}
	}

	return nil
}

const (
	authorizationHeader = "Authorization"
	versionHeader       = "Notion-Version"
)

// VersionInterceptor pins the Notion-Version header of every request,
// overriding the version configured on the client.
func VersionInterceptor(version string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set(versionHeader, version)

		return nil
	}
}

// LoggingInterceptor logs requests with the API version they target.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method":         req.Method,
			"path":           req.Path,
			"notion_version": req.Headers.Get(versionHeader),
			"body_bytes":     len(req.Body),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses. Failed exchanges and error
// statuses are logged at error level, with the code and request ID of the
// Notion error object when the body carries one.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"duration":    resp.Duration.String(),
		}

		if resp.Error == nil && resp.StatusCode < http.StatusBadRequest {
			logger.Debug("API Response", fields)

			return nil
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
		}

		if errResp, ok := errorResponseOf(resp.Body); ok {
			fields["code"] = string(errResp.Code)
			fields["message"] = errResp.Message

			if errResp.RequestID != "" {
				fields["request_id"] = errResp.RequestID
			}
		}

		logger.Error("API Response Error", fields)

		return nil
	}
}

// errorResponseOf decodes body when it is a Notion error object.
func errorResponseOf(body []byte) (ErrorResponse, bool) {
	var errResp struct {
		Object ObjectType `json:"object"`
		ErrorResponse
	}

	if len(body) == 0 || json.Unmarshal(body, &errResp) != nil || errResp.Object != ObjectTypeError {
		return ErrorResponse{}, false
	}

	return errResp.ErrorResponse, true
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			if http.CanonicalHeaderKey(key) == authorizationHeader {
				return fmt.Errorf("%w: %s", ErrReservedHeader, authorizationHeader)
			}

			req.Headers.Set(key, value)
		}

		return nil
	}
}

// Metrics aggregates the calls made to one endpoint.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects API metrics keyed by endpoint, such as
// "PATCH /blocks/{id}/children". Path segments holding a Notion ID are
// replaced by {id} so calls on different objects aggregate. It is safe for
// concurrent use.
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange sets a callback for when metrics change. The callback receives
// a snapshot.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics of an endpoint.
func (m *MetricsCollector) GetMetrics(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if metrics, ok := m.metrics[endpoint]; ok {
		return *metrics, true
	}

	return Metrics{}, false
}

// MetricsResponseInterceptor records response metrics using the duration
// measured by the transport.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		endpoint := EndpointKey(req.Method, req.Path)

		collector.mu.Lock()

		metrics, ok := collector.metrics[endpoint]
		if !ok {
			metrics = &Metrics{}
			collector.metrics[endpoint] = metrics
		}

		metrics.TotalRequests++
		metrics.LastRequestTime = time.Now()
		metrics.TotalLatency += resp.Duration
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)

		if resp.Error != nil || resp.StatusCode >= http.StatusBadRequest {
			metrics.TotalErrors++
		}

		snapshot := *metrics
		onChange := collector.onChange

		collector.mu.Unlock()

		if onChange != nil {
			onChange(endpoint, snapshot)
		}

		return nil
	}
}

// EndpointKey returns the metrics key of a request.
func EndpointKey(method, path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if _, err := uuid.Parse(segment); err == nil {
			segments[i] = "{id}"
		}
	}

	return method + " " + strings.Join(segments, "/")
}
