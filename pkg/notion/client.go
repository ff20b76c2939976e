package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
)

// Defaults applied by the client when the matching Config field is empty.
const (
	DefaultBaseURL     = "https://api.notion.com/v1"
	DefaultAPIVersion  = "2022-06-28"
	DefaultHTTPTimeout = 30 * time.Second
)

var apiVersionPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Client is the Notion API.
//
// Every operation takes the identifier of its target as an AsIdentifier, so
// either the ID or an entity that carries it can be passed.
type Client interface {
	// ListDatabases lists the databases shared with the integration.
	//
	// Deprecated: Notion removed the endpoint from the public API. Use Search
	// with SearchOnly(FilterValueDatabase) instead.
	ListDatabases(ctx context.Context) (*ListResponse[Database], error)
	// Search returns pages and databases whose title matches the request.
	Search(ctx context.Context, request SearchRequester) (*ListResponse[Object], error)
	GetDatabase(ctx context.Context, id AsIdentifier[DatabaseID]) (*Database, error)
	GetPage(ctx context.Context, id AsIdentifier[PageID]) (*Page, error)
	CreatePage(ctx context.Context, request PageCreateRequest) (*Page, error)
	QueryDatabase(ctx context.Context, id AsIdentifier[DatabaseID], query DatabaseQuerier) (*ListResponse[Page], error)
	// GetBlockChildren returns the first page of the direct children of a
	// block. Pass Page.BlockID() to read the content of a page.
	GetBlockChildren(ctx context.Context, id AsIdentifier[BlockID]) (*ListResponse[Block], error)
	GetBlockChildrenPage(ctx context.Context, id AsIdentifier[BlockID], paging Paging) (*ListResponse[Block], error)
	ListUsers(ctx context.Context) (*ListResponse[User], error)
	ListUsersPage(ctx context.Context, paging Paging) (*ListResponse[User], error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a notion.Client.
//
// Only Token is required. Per-request deadlines should be set on the context
// passed to each operation; HTTPTimeout bounds a single HTTP exchange.
type Config struct {
	// Token is the integration secret sent as a Bearer token. It is never logged.
	Token string

	// BaseURL overrides the API root, mostly for tests. Defaults to DefaultBaseURL.
	BaseURL string
	// APIVersion is sent as the Notion-Version header. Defaults to DefaultAPIVersion.
	APIVersion string
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds one HTTP exchange. Defaults to DefaultHTTPTimeout.
	HTTPTimeout time.Duration
	// RetryMax is the number of retries for connection errors, 429 and 5xx
	// responses. Zero disables retries.
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request and response logging on Logger.
	Debug bool
	// Logger receives transport logs. Nothing is logged when nil.
	Logger Logger
	// HTTPClient replaces the underlying HTTP client, for example to install
	// a custom transport.
	HTTPClient *http.Client
	// Interceptors run around every HTTP exchange.
	Interceptors *InterceptorChain
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	var result *multierror.Error

	switch {
	case c.Token == "":
		result = multierror.Append(result, ErrTokenRequired)
	case !ValidToken(c.Token):
		result = multierror.Append(result, ErrInvalidCredential)
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.By(absoluteURL)),
		validation.Field(&c.APIVersion, validation.Match(apiVersionPattern).Error("must be a YYYY-MM-DD date")),
		validation.Field(&c.HTTPTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.RetryMax, validation.Min(0)),
		validation.Field(&c.RetryWaitMin, validation.Min(time.Duration(0))),
		validation.Field(&c.RetryWaitMax, validation.Min(c.RetryWaitMin).Error("must not be less than RetryWaitMin")),
	)

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		names := make([]string, 0, len(fieldErrs))
		for name := range fieldErrs {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, fieldErrs[name]))
		}
	} else if err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// ValidToken reports whether token can be sent in an Authorization header.
func ValidToken(token string) bool {
	for i := 0; i < len(token); i++ {
		b := token[i]
		if b < ' ' || b == 0x7f {
			return false
		}
	}

	return token != ""
}

func absoluteURL(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return validation.NewError("validation_absolute_url", "must be an absolute URL")
	}

	return nil
}
