package freshsales

import (
	"context"
	"time"
)

// ResourceClient is the operation set shared by every resource kind.
// Operations not supported by a kind (forget, bulk delete) return
// ErrForgetNotSupported / ErrBulkDeleteNotSupported without issuing any
// HTTP call.
type ResourceClient interface {
	// Views lists the saved filters defined for the resource.
	Views(ctx context.Context) ([]View, error)

	// Iterate returns a fresh pull iterator over the records a view
	// selects, page by page, each record normalized against its response
	// envelope. A limit of 0 means no limit.
	Iterate(ctx context.Context, viewID int, limit int) *RecordIterator

	// ListAll eagerly materializes Iterate.
	ListAll(ctx context.Context, viewID int, limit int) ([]Record, error)

	// Get fetches a single record by id, normalized against its own
	// response envelope.
	Get(ctx context.Context, id int) (Record, error)

	// Create posts a new record; the body is wrapped under the resource's
	// singular key.
	Create(ctx context.Context, data Record) (Envelope, error)

	// Update puts changed fields for an existing record, wrapped under the
	// singular key.
	Update(ctx context.Context, id int, data Record) (Envelope, error)

	// Delete soft-deletes a record.
	Delete(ctx context.Context, id int) (Envelope, error)

	// Forget permanently erases a record, distinct from soft delete.
	Forget(ctx context.Context, id int) (Envelope, error)

	// BulkDelete deletes several records in one call.
	BulkDelete(ctx context.Context, ids []int) (Envelope, error)
}

// ContactsClient adds the contact-only listing endpoints.
type ContactsClient interface {
	ResourceClient

	// Activities lists the activity feed of one contact.
	Activities(ctx context.Context, id int) ([]Record, error)

	// Appointments lists the appointments of one contact.
	Appointments(ctx context.Context, id int) ([]Record, error)
}

// AccountsClient adds the cascading bulk-delete variant.
type AccountsClient interface {
	ResourceClient

	// BulkDeleteWithAssociations deletes several accounts and, when
	// deleteAssociated is set, their associated contacts and deals.
	BulkDeleteWithAssociations(ctx context.Context, ids []int, deleteAssociated bool) (Envelope, error)
}

// SelectorClient reads the global configuration lists. These are flat
// lookup tables; no normalization applies.
type SelectorClient interface {
	Fetch(ctx context.Context, name string) (Envelope, error)
	Owners(ctx context.Context) ([]Record, error)
	DealStages(ctx context.Context) ([]Record, error)
	Currencies(ctx context.Context) ([]Record, error)
	DealReasons(ctx context.Context) ([]Record, error)
	DealTypes(ctx context.Context) ([]Record, error)
	DealPipelines(ctx context.Context) ([]Record, error)
	DealPipelineStages(ctx context.Context, pipelineID int) ([]Record, error)
	SalesActivityTypes(ctx context.Context) ([]Record, error)
	SalesActivityOutcomes(ctx context.Context, activityTypeID int) ([]Record, error)
}

// Client is the single entry point: one resource client per kind plus the
// selector client, all sharing the same domain and API key.
type Client interface {
	Contacts() ContactsClient
	Accounts() AccountsClient
	Deals() ResourceClient
	Leads() ResourceClient
	Tasks() ResourceClient
	Notes() ResourceClient
	SalesActivities() ResourceClient
	Selector() SelectorClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a freshsales.Client.
//
// Domain and APIKey are required: every request goes to
// "https://{Domain}.freshsales.io/api" with the header
// "Authorization: Token token={APIKey}". Both are immutable after
// construction; a Client instance is safe for sequential reuse.
//
// Retries are off by default; a failed request is reported to the caller
// immediately. RetryMax/RetryWaitMin/RetryWaitMax tune the underlying
// transport for callers that want transport-level retries anyway.
type Config struct {
	// Domain: the Freshsales subdomain, e.g. "acme" for
	// acme.freshsales.io.
	Domain string

	// APIKey: the per-user API token.
	APIKey string

	// HTTPTimeout: optional default HTTP timeout. Most calls should rely
	// on context timeouts instead.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of transport-level retries. 0 (the
	// default) disables retrying entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// PerPage: page size requested on view listings. Defaults to 100.
	PerPage int

	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Interceptors: optional request/response interceptor chain run
	// around every HTTP call.
	Interceptors *InterceptorChain
}
