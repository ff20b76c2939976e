package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the CLI configuration.
	ConfigDirName = ".notion"

	// ConfigFileName is the CLI configuration file, without extension.
	ConfigFileName = "config"

	// ConfigFileType is the format of the CLI configuration file.
	ConfigFileType = "yml"

	// EnvPrefix prefixes the environment variables read by the CLI.
	EnvPrefix = "NOTION"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless RetryMax is configured.
const (
	// DefaultRetryMax is the retry count used by the CLI.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// HTTP identification.
const (
	// DefaultUserAgent is sent unless the configuration overrides it.
	DefaultUserAgent = "notion-client-go"
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent API calls issued by the CLI.
	DefaultConcurrencyLimit = 3
)

// Pagination limits.
const (
	// MaxPageSize is the largest page size Notion accepts.
	MaxPageSize = 100
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// SecretPrefixLength is the number of token characters shown when masking.
	SecretPrefixLength = 7

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 60

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
