package freshsales_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

var errInterceptor = errors.New("interceptor rejected")

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "debug: "+msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "info: "+msg)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "warn: "+msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "error: "+msg)
}

func TestInterceptorChain_ExecutionOrder(t *testing.T) {
	chain := freshsales.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *freshsales.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *freshsales.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &freshsales.Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_RequestError(t *testing.T) {
	chain := freshsales.NewInterceptorChain()

	chain.AddRequestInterceptor(func(ctx context.Context, req *freshsales.Request) error {
		return errInterceptor
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &freshsales.Request{})
	require.ErrorIs(t, err, errInterceptor)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := freshsales.NewInterceptorChain()

	var status int

	chain.AddResponseInterceptor(func(ctx context.Context, req *freshsales.Request, resp *freshsales.Response) error {
		status = resp.StatusCode

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(),
		&freshsales.Request{}, &freshsales.Response{StatusCode: 201})
	require.NoError(t, err)
	assert.Equal(t, 201, status)
}

func TestLoggingInterceptors(t *testing.T) {
	logger := &recordingLogger{}

	request := &freshsales.Request{Method: "GET", Path: "/contacts"}

	err := freshsales.LoggingInterceptor(logger)(context.Background(), request)
	require.NoError(t, err)

	err = freshsales.LoggingResponseInterceptor(logger)(context.Background(),
		request, &freshsales.Response{StatusCode: 200})
	require.NoError(t, err)

	err = freshsales.LoggingResponseInterceptor(logger)(context.Background(),
		request, &freshsales.Response{StatusCode: 500, Error: errInterceptor})
	require.NoError(t, err)

	require.Len(t, logger.entries, 3)
	assert.Equal(t, "debug: API Request", logger.entries[0])
	assert.Equal(t, "debug: API Response", logger.entries[1])
	assert.Equal(t, "error: API Response Error", logger.entries[2])
}

func TestHeaderInterceptor(t *testing.T) {
	request := &freshsales.Request{}

	err := freshsales.HeaderInterceptor(map[string]string{"X-Tag": "v1"})(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "v1", request.Headers.Get("X-Tag"))

	// existing headers survive
	request.Headers = http.Header{"X-Other": []string{"keep"}}
	err = freshsales.HeaderInterceptor(map[string]string{"X-Tag": "v2"})(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "keep", request.Headers.Get("X-Other"))
	assert.Equal(t, "v2", request.Headers.Get("X-Tag"))
}
