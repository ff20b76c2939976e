package notion_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

type capturingLogger struct {
	debug []string
	error []string
	last  map[string]interface{}
}

func (l *capturingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debug = append(l.debug, msg)
	l.last = fields
}

func (l *capturingLogger) Info(msg string, fields map[string]interface{}) {}

func (l *capturingLogger) Warn(msg string, fields map[string]interface{}) {}

func (l *capturingLogger) Error(msg string, fields map[string]interface{}) {
	l.error = append(l.error, msg)
	l.last = fields
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := notion.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	// Add multiple interceptors
	chain.AddRequestInterceptor(func(ctx context.Context, req *notion.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *notion.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &notion.Request{
		Method: "GET",
		Path:   "/users",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := notion.NewInterceptorChain()
	errStop := errors.New("stop")
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *notion.Request) error {
		return errStop
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *notion.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &notion.Request{Method: "POST", Path: "/search"})
	require.ErrorIs(t, err, errStop)
	assert.False(t, called)

	var interceptorErr *notion.InterceptorError
	require.ErrorAs(t, err, &interceptorErr)
	assert.Equal(t, notion.InterceptorStageRequest, interceptorErr.Stage)
	assert.Equal(t, 0, interceptorErr.Index)
	assert.Equal(t, "request interceptor 0 failed for POST /search: stop", err.Error())
}

func TestInterceptorChain_ReservedHeader(t *testing.T) {
	t.Parallel()

	chain := notion.NewInterceptorChain().
		AddRequestInterceptor(nil, notion.VersionInterceptor("2022-06-28")).
		AddRequestInterceptor(func(ctx context.Context, req *notion.Request) error {
			req.Headers.Set("Authorization", "Bearer other")

			return nil
		})

	req := &notion.Request{Method: "GET", Path: "/users"}

	err := chain.ExecuteRequestInterceptors(context.Background(), req)
	require.ErrorIs(t, err, notion.ErrReservedHeader)
	assert.Equal(t, "2022-06-28", req.Headers.Get("Notion-Version"))

	var interceptorErr *notion.InterceptorError
	require.ErrorAs(t, err, &interceptorErr)
	assert.Equal(t, 1, interceptorErr.Index)

	err = notion.HeaderInterceptor(map[string]string{"authorization": "Bearer x"})(context.Background(), req)
	require.ErrorIs(t, err, notion.ErrReservedHeader)
}

func TestInterceptorChain_Nil(t *testing.T) {
	t.Parallel()

	var chain *notion.InterceptorChain

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &notion.Request{}))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &notion.Request{}, &notion.Response{}))
}

func TestInterceptorChain_ResponseError(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken")
	chain := notion.NewInterceptorChain().AddResponseInterceptor(
		func(ctx context.Context, req *notion.Request, resp *notion.Response) error { return nil },
		func(ctx context.Context, req *notion.Request, resp *notion.Response) error { return errBroken },
	)

	err := chain.ExecuteResponseInterceptors(context.Background(), &notion.Request{Method: "GET", Path: "/users/me"}, &notion.Response{})
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, "response interceptor 1 failed for GET /users/me: broken", err.Error())
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := notion.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	// Add multiple interceptors
	chain.AddResponseInterceptor(func(ctx context.Context, req *notion.Request, resp *notion.Response) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *notion.Request, resp *notion.Response) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &notion.Request{
		Method: "GET",
		Path:   "/users",
	}
	resp := &notion.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := notion.HeaderInterceptor(headers)
	ctx := context.Background()
	req := &notion.Request{
		Method: "GET",
		Path:   "/users",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &capturingLogger{}
	ctx := context.Background()
	req := &notion.Request{Method: "POST", Path: "/search"}

	err := notion.LoggingInterceptor(logger)(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request"}, logger.debug)

	responseInterceptor := notion.LoggingResponseInterceptor(logger)

	err = responseInterceptor(ctx, req, &notion.Response{StatusCode: 200, Duration: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request", "API Response"}, logger.debug)

	err = responseInterceptor(ctx, req, &notion.Response{
		StatusCode: 409,
		Body: []byte(`{"object":"error","status":409,"code":"conflict_error",` +
			`"message":"Conflict occurred while saving.","request_id":"req-1"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"API Response Error"}, logger.error)
	assert.Equal(t, 409, logger.last["status_code"])
	assert.Equal(t, "conflict_error", logger.last["code"])
	assert.Equal(t, "req-1", logger.last["request_id"])

	err = responseInterceptor(ctx, req, &notion.Response{StatusCode: 502, Body: []byte("<html>bad gateway</html>")})
	require.NoError(t, err)
	assert.NotContains(t, logger.last, "code")

	err = responseInterceptor(ctx, req, &notion.Response{Error: errors.New("connection reset")})
	require.NoError(t, err)
	assert.Equal(t, "connection reset", logger.last["error"])
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := notion.NewMetricsCollector()

	var notifiedEndpoint string

	var notifiedMetrics notion.Metrics

	collector.SetOnChange(func(endpoint string, metrics notion.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	responseInterceptor := notion.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &notion.Request{
		Method: "GET",
		Path:   "/users",
	}

	// Execute response interceptor with success
	resp := &notion.Response{
		StatusCode: 200,
		Duration:   10 * time.Millisecond,
	}
	err := responseInterceptor(ctx, req, resp)
	require.NoError(t, err)

	// Check metrics
	assert.Equal(t, "GET /users", notifiedEndpoint)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.Equal(t, 10*time.Millisecond, notifiedMetrics.AverageLatency)

	// Execute another request with error
	resp2 := &notion.Response{
		StatusCode: 500,
		Duration:   30 * time.Millisecond,
	}
	err = responseInterceptor(ctx, req, resp2)
	require.NoError(t, err)

	// Check updated metrics
	metrics, ok := collector.GetMetrics("GET /users")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Equal(t, 20*time.Millisecond, metrics.AverageLatency)

	_, ok = collector.GetMetrics("GET /pages")
	assert.False(t, ok)
}

func TestMetricsCollector_AggregatesIDs(t *testing.T) {
	t.Parallel()

	collector := notion.NewMetricsCollector()
	responseInterceptor := notion.MetricsResponseInterceptor(collector)
	ctx := context.Background()

	for _, path := range []string{
		"/pages/59833787-2cf9-4fdf-8782-e53db20768a5",
		"/pages/b55c9c91384d452b81dbd1ef79372b75",
	} {
		err := responseInterceptor(ctx, &notion.Request{Method: "GET", Path: path}, &notion.Response{StatusCode: 200})
		require.NoError(t, err)
	}

	metrics, ok := collector.GetMetrics("GET /pages/{id}")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
}

func TestEndpointKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method   string
		path     string
		expected string
	}{
		{method: "GET", path: "/users", expected: "GET /users"},
		{method: "POST", path: "/search", expected: "POST /search"},
		{
			method:   "PATCH",
			path:     "/blocks/b55c9c91-384d-452b-81db-d1ef79372b75/children",
			expected: "PATCH /blocks/{id}/children",
		},
		{method: "GET", path: "/users/me", expected: "GET /users/me"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, notion.EndpointKey(tt.method, tt.path))
		})
	}
}
