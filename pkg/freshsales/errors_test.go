package freshsales_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

var errOther = errors.New("other error")

func TestRequestError_Error(t *testing.T) {
	withBody := &freshsales.RequestError{
		StatusCode: http.StatusNotFound,
		Body:       []byte(`{"errors":{"message":"gone"}}`),
	}
	assert.Contains(t, withBody.Error(), "404")
	assert.Contains(t, withBody.Error(), "gone")

	withoutBody := &freshsales.RequestError{StatusCode: http.StatusInternalServerError}
	assert.Contains(t, withoutBody.Error(), "500")
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "404 request error",
			err:      &freshsales.RequestError{StatusCode: http.StatusNotFound},
			expected: true,
		},
		{
			name:     "wrapped 404",
			err:      fmt.Errorf("getting contact: %w", &freshsales.RequestError{StatusCode: http.StatusNotFound}),
			expected: true,
		},
		{
			name:     "other status",
			err:      &freshsales.RequestError{StatusCode: http.StatusInternalServerError},
			expected: false,
		},
		{
			name:     "other error type",
			err:      errOther,
			expected: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, freshsales.IsNotFound(testCase.err))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, freshsales.IsUnauthorized(&freshsales.RequestError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, freshsales.IsUnauthorized(&freshsales.RequestError{StatusCode: http.StatusForbidden}))
	assert.False(t, freshsales.IsUnauthorized(errOther))
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		freshsales.ErrConfigRequired,
		freshsales.ErrDomainRequired,
		freshsales.ErrAPIKeyRequired,
		freshsales.ErrPathFormat,
		freshsales.ErrMalformedResponse,
		freshsales.ErrForgetNotSupported,
		freshsales.ErrBulkDeleteNotSupported,
		freshsales.ErrNoMoreRecords,
	}

	for i, left := range sentinels {
		for j, right := range sentinels {
			if i == j {
				continue
			}

			assert.NotErrorIs(t, left, right)
		}
	}
}
