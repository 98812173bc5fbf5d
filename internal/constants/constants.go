package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retrying is disabled by default; every request is
// attempted exactly once unless the caller opts in.
const (
	// DefaultRetryMax disables transport-level retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries when
	// retrying is enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries when
	// retrying is enabled.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the page size requested on view listings.
	DefaultPageSize = 100

	// FirstPage is the page number view listings start at.
	FirstPage = 1

	// DemoDisplayLimit limits items shown in examples.
	DemoDisplayLimit = 3
)

// API endpoint construction.
const (
	// BaseURLTemplate builds the API root from the account subdomain.
	BaseURLTemplate = "https://%s.freshsales.io/api"

	// AuthorizationFormat builds the token header value from the API key.
	AuthorizationFormat = "Token token=%s"
)

// DefaultUserAgent identifies the client on every request.
const DefaultUserAgent = "freshsales-client-go"

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// Additional mathematical and calculation constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 80
)
