// Package client implements the Freshsales API client behind the
// interfaces declared in pkg/freshsales.
package client

import (
	"fmt"

	"github.com/fivetwenty-io/freshsales-client/internal/constants"
	"github.com/fivetwenty-io/freshsales-client/internal/http"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// Client implements the freshsales.Client interface.
type Client struct {
	httpClient *http.Client
	logger     freshsales.Logger

	// Resource clients
	contacts        freshsales.ContactsClient
	accounts        freshsales.AccountsClient
	deals           freshsales.ResourceClient
	leads           freshsales.ResourceClient
	tasks           freshsales.ResourceClient
	notes           freshsales.ResourceClient
	salesActivities freshsales.ResourceClient
	selector        freshsales.SelectorClient

	perPage int
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *freshsales.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a new Freshsales API client.
func New(config *freshsales.Config) (*Client, error) {
	if config == nil {
		return nil, freshsales.ErrConfigRequired
	}

	if config.Domain == "" {
		return nil, freshsales.ErrDomainRequired
	}

	if config.APIKey == "" {
		return nil, freshsales.ErrAPIKeyRequired
	}

	baseURL := fmt.Sprintf(constants.BaseURLTemplate, config.Domain)

	return newWithBaseURL(baseURL, config), nil
}

// NewWithBaseURL creates a client against an explicit base URL instead of
// the production endpoint derived from the domain. Used for testing.
func NewWithBaseURL(baseURL string, config *freshsales.Config) (*Client, error) {
	if config == nil {
		return nil, freshsales.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, freshsales.ErrAPIKeyRequired
	}

	return newWithBaseURL(baseURL, config), nil
}

func newWithBaseURL(baseURL string, config *freshsales.Config) *Client {
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(baseURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
		perPage:    config.PerPage,
	}

	client.initializeResourceClients()

	return client
}

// Contacts implements freshsales.Client.Contacts.
func (c *Client) Contacts() freshsales.ContactsClient {
	return c.contacts
}

// Accounts implements freshsales.Client.Accounts.
func (c *Client) Accounts() freshsales.AccountsClient {
	return c.accounts
}

// Deals implements freshsales.Client.Deals.
func (c *Client) Deals() freshsales.ResourceClient {
	return c.deals
}

// Leads implements freshsales.Client.Leads.
func (c *Client) Leads() freshsales.ResourceClient {
	return c.leads
}

// Tasks implements freshsales.Client.Tasks.
func (c *Client) Tasks() freshsales.ResourceClient {
	return c.tasks
}

// Notes implements freshsales.Client.Notes.
func (c *Client) Notes() freshsales.ResourceClient {
	return c.notes
}

// SalesActivities implements freshsales.Client.SalesActivities.
func (c *Client) SalesActivities() freshsales.ResourceClient {
	return c.salesActivities
}

// Selector implements freshsales.Client.Selector.
func (c *Client) Selector() freshsales.SelectorClient {
	return c.selector
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.contacts = NewContactsClient(c.httpClient, c.perPage)
	c.accounts = NewAccountsClient(c.httpClient, c.perPage)
	c.deals = NewDealsClient(c.httpClient, c.perPage)
	c.leads = NewLeadsClient(c.httpClient, c.perPage)
	c.tasks = NewTasksClient(c.httpClient, c.perPage)
	c.notes = NewNotesClient(c.httpClient, c.perPage)
	c.salesActivities = NewSalesActivitiesClient(c.httpClient, c.perPage)
	c.selector = NewSelectorClient(c.httpClient)
}
