package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

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
			client, err := New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, client)
		})
	}
}

func TestNew_InitializesResourceClients(t *testing.T) {
	client, err := New(&freshsales.Config{Domain: "acme", APIKey: "key"})
	require.NoError(t, err)

	assert.NotNil(t, client.Contacts())
	assert.NotNil(t, client.Accounts())
	assert.NotNil(t, client.Deals())
	assert.NotNil(t, client.Leads())
	assert.NotNil(t, client.Tasks())
	assert.NotNil(t, client.Notes())
	assert.NotNil(t, client.SalesActivities())
	assert.NotNil(t, client.Selector())
}

func TestNew_ImplementsInterface(t *testing.T) {
	client, err := New(&freshsales.Config{Domain: "acme", APIKey: "key"})
	require.NoError(t, err)

	var iface freshsales.Client = client
	assert.NotNil(t, iface)
}

func TestNewWithBaseURL_RequiresAPIKey(t *testing.T) {
	client, err := NewWithBaseURL("http://localhost", &freshsales.Config{})
	require.ErrorIs(t, err, freshsales.ErrAPIKeyRequired)
	assert.Nil(t, client)
}
