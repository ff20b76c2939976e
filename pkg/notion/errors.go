package notion

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is the machine readable code of a Notion error object.
type ErrorCode string

// Error codes documented by Notion.
const (
	ErrorCodeInvalidJSON         ErrorCode = "invalid_json"
	ErrorCodeInvalidRequestURL   ErrorCode = "invalid_request_url"
	ErrorCodeInvalidRequest      ErrorCode = "invalid_request"
	ErrorCodeValidationError     ErrorCode = "validation_error"
	ErrorCodeMissingVersion      ErrorCode = "missing_version"
	ErrorCodeUnauthorized        ErrorCode = "unauthorized"
	ErrorCodeRestrictedResource  ErrorCode = "restricted_resource"
	ErrorCodeObjectNotFound      ErrorCode = "object_not_found"
	ErrorCodeConflictError       ErrorCode = "conflict_error"
	ErrorCodeRateLimited         ErrorCode = "rate_limited"
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
	ErrorCodeServiceUnavailable  ErrorCode = "service_unavailable"
	ErrorCodeDatabaseConnection  ErrorCode = "database_connection_unavailable"
	ErrorCodeGatewayTimeout      ErrorCode = "gateway_timeout"
)

// Common static errors that can be wrapped with context.
var (
	ErrInvalidCredential = errors.New("invalid credential: token is not a valid header value")
	ErrConfigRequired    = errors.New("config is required")
	ErrTokenRequired     = errors.New("token is required")
	ErrUnknownObject     = errors.New("unknown object type")
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrMissingTag        = errors.New("missing type tag")
)

// ErrorResponse is the payload of an "error" object. RequestID identifies
// the failed call when reporting it to Notion.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

// AsError converts the wire payload into an APIError.
func (r ErrorResponse) AsError() *APIError {
	return &APIError{Status: r.Status, Code: r.Code, Message: r.Message}
}

// APIError is a structured error returned by the Notion API.
type APIError struct {
	Status  int
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.Status)
}

// TransportError wraps a failure of the underlying HTTP exchange.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a body that could not be decoded into the model.
// Field names the offending document path when it is known.
type DecodeError struct {
	Field      string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var b strings.Builder

	b.WriteString("decoding response")

	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status: %d)", e.StatusCode)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the decoding failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// UnexpectedResponseError is returned when the API answered with an object
// kind the operation does not allow. Response holds the offending object.
type UnexpectedResponseError struct {
	Response Object
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	if e.Response == nil {
		return "unexpected response: <nil>"
	}

	return "unexpected response: " + string(e.Response.ObjectType())
}

// withField prefixes the field path of a DecodeError, or wraps err in a new one.
func withField(field string, err error) error {
	if err == nil {
		return nil
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		nested := *decodeErr

		switch {
		case nested.Field == "":
			nested.Field = field
		case strings.HasPrefix(nested.Field, "["):
			nested.Field = field + nested.Field
		default:
			nested.Field = field + "." + nested.Field
		}

		return &nested
	}

	return &DecodeError{Field: field, Err: err}
}

func hasCode(err error, code ErrorCode) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}

// IsNotFound checks if the error is an object_not_found API error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeObjectNotFound)
}

// IsUnauthorized checks if the error is an unauthorized API error.
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrorCodeUnauthorized)
}

// IsRateLimited checks if the error is a rate_limited API error.
func IsRateLimited(err error) bool {
	return hasCode(err, ErrorCodeRateLimited)
}

// IsValidationError checks if the server rejected the request body.
func IsValidationError(err error) bool {
	return hasCode(err, ErrorCodeValidationError)
}

// IsUnexpectedResponse checks if the error is an UnexpectedResponseError.
func IsUnexpectedResponse(err error) bool {
	unexpected := &UnexpectedResponseError{}

	return errors.As(err, &unexpected)
}
