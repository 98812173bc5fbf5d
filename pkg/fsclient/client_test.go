package fsclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
	"github.com/fivetwenty-io/freshsales-client/pkg/fsclient"
)

func TestNew(t *testing.T) {
	client, err := fsclient.New(&freshsales.Config{Domain: "acme", APIKey: "key"})
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.Contacts())
	assert.NotNil(t, client.Selector())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  *freshsales.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: freshsales.ErrConfigRequired,
		},
		{
			name:    "missing domain",
			config:  &freshsales.Config{APIKey: "key"},
			wantErr: freshsales.ErrDomainRequired,
		},
		{
			name:    "missing API key",
			config:  &freshsales.Config{Domain: "acme"},
			wantErr: freshsales.ErrAPIKeyRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client, err := fsclient.New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, client)
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"acme", "acme"},
		{"acme.freshsales.io", "acme"},
		{"https://acme.freshsales.io", "acme"},
		{"http://acme.freshsales.io/", "acme"},
		{" acme ", "acme"},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			assert.Equal(t, testCase.expected, fsclient.NormalizeDomain(testCase.input))
		})
	}
}
