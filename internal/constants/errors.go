package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no token configured, use 'notion config set-token' or set NOTION_TOKEN")
	ErrEmptyToken        = errors.New("token must not be empty")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, use table, json or yaml")
	ErrInvalidFilterValue  = errors.New("invalid --filter value, use page or database")
	ErrPropertyRequired    = errors.New("--property is required with --contains")
	ErrTitleRequired       = errors.New("--title is required")
	ErrDatabaseRequired    = errors.New("--database is required")
)

// Operation errors.
var (
	ErrNoTitleProperty = errors.New("database has no title property")
)
