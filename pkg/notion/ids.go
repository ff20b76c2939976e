package notion

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned by the Parse*ID helpers for input that is not a Notion UUID.
var ErrInvalidID = errors.New("invalid notion id")

// Identifier is implemented by every ID kind.
type Identifier interface {
	fmt.Stringer
	Value() string
}

// AsIdentifier is implemented by anything that owns an identifier of type I,
// including the identifier itself. API operations accept it so that callers
// can pass either a raw ID or the entity that carries it.
type AsIdentifier[I any] interface {
	AsID() I
}

type (
	databaseKind struct{}
	pageKind     struct{}
	blockKind    struct{}
	userKind     struct{}
	propertyKind struct{}
)

type idKind interface {
	databaseKind | pageKind | blockKind | userKind | propertyKind
}

// ID is an opaque identifier of one entity kind. The zero-size kind field
// makes every instantiation a distinct type, so a PageID cannot be converted
// into a DatabaseID.
type ID[K idKind] struct {
	_     [0]K
	value string
}

// Identifier kinds.
type (
	DatabaseID = ID[databaseKind]
	PageID     = ID[pageKind]
	BlockID    = ID[blockKind]
	UserID     = ID[userKind]
	PropertyID = ID[propertyKind]
)

// NewDatabaseID wraps value without validating it. Use ParseDatabaseID for user input.
func NewDatabaseID(value string) DatabaseID { return DatabaseID{value: value} }

// NewPageID wraps value without validating it. Use ParsePageID for user input.
func NewPageID(value string) PageID { return PageID{value: value} }

// NewBlockID wraps value without validating it.
func NewBlockID(value string) BlockID { return BlockID{value: value} }

// NewUserID wraps value without validating it.
func NewUserID(value string) UserID { return UserID{value: value} }

// NewPropertyID wraps a property ID. Property IDs are short URL-encoded strings, not UUIDs.
func NewPropertyID(value string) PropertyID { return PropertyID{value: value} }

// BlockIDFromPage addresses a page as the root block of its content.
func BlockIDFromPage(id PageID) BlockID {
	return BlockID{value: id.value}
}

// Value returns the underlying string.
func (id ID[K]) Value() string { return id.value }

// String returns the underlying string.
func (id ID[K]) String() string { return id.value }

// AsID returns the identifier itself.
func (id ID[K]) AsID() ID[K] { return id }

// IsZero reports whether the identifier is empty.
func (id ID[K]) IsZero() bool { return id.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (id ID[K]) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[K]) UnmarshalText(text []byte) error {
	id.value = string(text)

	return nil
}

// ParseDatabaseID parses a database ID in any form Notion hands out
// (dashed UUID, 32 hex characters or a notion.so URL) and normalizes it.
func ParseDatabaseID(s string) (DatabaseID, error) {
	value, err := normalizeID(s)
	if err != nil {
		return DatabaseID{}, err
	}

	return NewDatabaseID(value), nil
}

// ParsePageID is the PageID counterpart of ParseDatabaseID.
func ParsePageID(s string) (PageID, error) {
	value, err := normalizeID(s)
	if err != nil {
		return PageID{}, err
	}

	return NewPageID(value), nil
}

// ParseBlockID is the BlockID counterpart of ParseDatabaseID.
func ParseBlockID(s string) (BlockID, error) {
	value, err := normalizeID(s)
	if err != nil {
		return BlockID{}, err
	}

	return NewBlockID(value), nil
}

// ParseUserID is the UserID counterpart of ParseDatabaseID.
func ParseUserID(s string) (UserID, error) {
	value, err := normalizeID(s)
	if err != nil {
		return UserID{}, err
	}

	return NewUserID(value), nil
}

// notionHexIDLength is the length of a UUID written without dashes, as it
// appears at the end of notion.so page URLs.
const notionHexIDLength = 32

func normalizeID(s string) (string, error) {
	candidate := strings.TrimSpace(s)

	if parsed, err := url.Parse(candidate); err == nil && parsed.Host != "" {
		candidate = strings.TrimSuffix(parsed.Path, "/")
		if i := strings.LastIndex(candidate, "/"); i >= 0 {
			candidate = candidate[i+1:]
		}
	}

	if len(candidate) > notionHexIDLength && !strings.Contains(candidate[len(candidate)-notionHexIDLength:], "-") {
		candidate = candidate[len(candidate)-notionHexIDLength:]
	}

	id, err := uuid.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidID, s, err)
	}

	return id.String(), nil
}
