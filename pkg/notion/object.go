package notion

import (
	"encoding/json"
	"fmt"
)

// ObjectType is the discriminator of a top level API object.
type ObjectType string

const (
	ObjectTypeBlock    ObjectType = "block"
	ObjectTypeDatabase ObjectType = "database"
	ObjectTypePage     ObjectType = "page"
	ObjectTypeList     ObjectType = "list"
	ObjectTypeUser     ObjectType = "user"
	ObjectTypeError    ObjectType = "error"
)

// Object is the envelope every API response decodes into. The concrete type
// is one of BlockObject, DatabaseObject, PageObject, ListObject, UserObject
// or ErrorObject.
type Object interface {
	ObjectType() ObjectType
}

// BlockObject represents a block response.
type BlockObject struct {
	Block Block
}

// DatabaseObject represents a database response.
type DatabaseObject struct {
	Database Database
}

// PageObject represents a page response.
type PageObject struct {
	Page Page
}

// ListObject is a page of results. A list may itself contain lists.
type ListObject struct {
	List ListResponse[Object]
}

// UserObject represents a user response.
type UserObject struct {
	User User
}

// ErrorObject is the body the API returns for a failed request.
type ErrorObject struct {
	Response ErrorResponse
}

func (BlockObject) ObjectType() ObjectType    { return ObjectTypeBlock }
func (DatabaseObject) ObjectType() ObjectType { return ObjectTypeDatabase }
func (PageObject) ObjectType() ObjectType     { return ObjectTypePage }
func (ListObject) ObjectType() ObjectType     { return ObjectTypeList }
func (UserObject) ObjectType() ObjectType     { return ObjectTypeUser }
func (ErrorObject) ObjectType() ObjectType    { return ObjectTypeError }

func (o BlockObject) MarshalJSON() ([]byte, error) {
	return marshalObject(o.ObjectType(), o.Block)
}

func (o DatabaseObject) MarshalJSON() ([]byte, error) {
	return marshalObject(o.ObjectType(), o.Database)
}

func (o PageObject) MarshalJSON() ([]byte, error) {
	return marshalObject(o.ObjectType(), o.Page)
}

func (o ListObject) MarshalJSON() ([]byte, error) {
	return marshalObject(o.ObjectType(), o.List)
}

func (o UserObject) MarshalJSON() ([]byte, error) {
	return marshalObject(o.ObjectType(), o.User)
}

func (o ErrorObject) MarshalJSON() ([]byte, error) {
	return marshalObject(o.ObjectType(), o.Response)
}

// marshalObject encodes payload and adds the object tag unless the payload
// already carries one, as the raw document of an unknown block does.
func marshalObject(kind ObjectType, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	tag, err := peekTag(body, objectTag)
	if err != nil {
		return nil, err
	}

	if tag != "" {
		return body, nil
	}

	return marshalTagged(objectTag, string(kind), json.RawMessage(body))
}

// DecodeObject decodes an API response body. An unknown object tag is a
// decode error: the envelope has no catch-all.
func DecodeObject(data []byte) (Object, error) {
	tag, err := peekTag(data, objectTag)
	if err != nil {
		return nil, &DecodeError{Field: objectTag, Err: err}
	}

	switch ObjectType(tag) {
	case ObjectTypeBlock:
		block, err := DecodeBlock(data)
		if err != nil {
			return nil, err
		}

		return BlockObject{Block: block}, nil
	case ObjectTypeDatabase:
		var database Database

		err := json.Unmarshal(data, &database)
		if err != nil {
			return nil, withField("database", err)
		}

		return DatabaseObject{Database: database}, nil
	case ObjectTypePage:
		var page Page

		err := json.Unmarshal(data, &page)
		if err != nil {
			return nil, withField("page", err)
		}

		return PageObject{Page: page}, nil
	case ObjectTypeList:
		var list ListResponse[Object]

		err := json.Unmarshal(data, &list)
		if err != nil {
			return nil, withField("list", err)
		}

		return ListObject{List: list}, nil
	case ObjectTypeUser:
		user, err := DecodeUser(data)
		if err != nil {
			return nil, withField("user", err)
		}

		return UserObject{User: user}, nil
	case ObjectTypeError:
		var response ErrorResponse

		err := json.Unmarshal(data, &response)
		if err != nil {
			return nil, withField("error", err)
		}

		return ErrorObject{Response: response}, nil
	case "":
		return nil, &DecodeError{Field: objectTag, Err: ErrMissingTag}
	default:
		return nil, &DecodeError{Field: objectTag, Err: fmt.Errorf("%w: %q", ErrUnknownObject, tag)}
	}
}

// ListResponse is one page of a paginated endpoint.
type ListResponse[T any] struct {
	Results    []T           `json:"results"`
	NextCursor *PagingCursor `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

// NextPage returns the paging for the following page, keeping the page size
// of current. It reports false when the list is exhausted.
func (l ListResponse[T]) NextPage(current Paging) (Paging, bool) {
	return current.Next(l.NextCursor, l.HasMore)
}

func (l ListResponse[T]) MarshalJSON() ([]byte, error) {
	results := l.Results
	if results == nil {
		results = []T{}
	}

	return json.Marshal(struct {
		Results    []T           `json:"results"`
		NextCursor *PagingCursor `json:"next_cursor"`
		HasMore    bool          `json:"has_more"`
	}{results, l.NextCursor, l.HasMore})
}

func (l *ListResponse[T]) UnmarshalJSON(data []byte) error {
	var aux struct {
		Results    []json.RawMessage `json:"results"`
		NextCursor *PagingCursor     `json:"next_cursor"`
		HasMore    bool              `json:"has_more"`
	}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	var results []T

	if len(aux.Results) > 0 {
		results = make([]T, 0, len(aux.Results))
	}

	for i, raw := range aux.Results {
		item, err := decodeListItem[T](raw)
		if err != nil {
			return withField(fmt.Sprintf("results[%d]", i), err)
		}

		results = append(results, item)
	}

	l.Results = results
	l.NextCursor = aux.NextCursor
	l.HasMore = aux.HasMore

	return nil
}

// decodeListItem routes union element types through their tag decoders.
func decodeListItem[T any](raw json.RawMessage) (T, error) {
	var item T

	var err error

	switch target := any(&item).(type) {
	case *Object:
		*target, err = DecodeObject(raw)
	case *Block:
		*target, err = DecodeBlock(raw)
	case *User:
		*target, err = DecodeUser(raw)
	default:
		err = json.Unmarshal(raw, &item)
	}

	return item, err
}

// narrow converts a list of objects into a list of T. Strict mode fails on
// the first object match rejects, otherwise such objects are skipped.
func narrow[T any](list ListResponse[Object], match func(Object) (T, bool), strict bool) (ListResponse[T], error) {
	narrowed := ListResponse[T]{
		NextCursor: list.NextCursor,
		HasMore:    list.HasMore,
	}

	for _, object := range list.Results {
		item, ok := match(object)
		if !ok {
			if strict {
				return ListResponse[T]{}, &UnexpectedResponseError{Response: object}
			}

			continue
		}

		narrowed.Results = append(narrowed.Results, item)
	}

	return narrowed, nil
}

func matchDatabase(o Object) (Database, bool) {
	database, ok := o.(DatabaseObject)

	return database.Database, ok
}

func matchPage(o Object) (Page, bool) {
	page, ok := o.(PageObject)

	return page.Page, ok
}

func matchBlock(o Object) (Block, bool) {
	block, ok := o.(BlockObject)

	return block.Block, ok
}

func matchUser(o Object) (User, bool) {
	user, ok := o.(UserObject)

	return user.User, ok
}

// OnlyDatabases drops every entry that is not a database. Paging fields are kept.
func OnlyDatabases(list ListResponse[Object]) ListResponse[Database] {
	narrowed, _ := narrow(list, matchDatabase, false)

	return narrowed
}

// OnlyPages drops every entry that is not a page. Paging fields are kept.
func OnlyPages(list ListResponse[Object]) ListResponse[Page] {
	narrowed, _ := narrow(list, matchPage, false)

	return narrowed
}

// OnlyBlocks drops every entry that is not a block. Paging fields are kept.
func OnlyBlocks(list ListResponse[Object]) ListResponse[Block] {
	narrowed, _ := narrow(list, matchBlock, false)

	return narrowed
}

// OnlyUsers drops every entry that is not a user. Paging fields are kept.
func OnlyUsers(list ListResponse[Object]) ListResponse[User] {
	narrowed, _ := narrow(list, matchUser, false)

	return narrowed
}

// ExpectDatabases fails with an UnexpectedResponseError carrying the first
// entry that is not a database.
func ExpectDatabases(list ListResponse[Object]) (ListResponse[Database], error) {
	return narrow(list, matchDatabase, true)
}

// ExpectPages fails with an UnexpectedResponseError carrying the first entry
// that is not a page.
func ExpectPages(list ListResponse[Object]) (ListResponse[Page], error) {
	return narrow(list, matchPage, true)
}

// ExpectBlocks fails with an UnexpectedResponseError carrying the first entry
// that is not a block.
func ExpectBlocks(list ListResponse[Object]) (ListResponse[Block], error) {
	return narrow(list, matchBlock, true)
}

// ExpectUsers fails with an UnexpectedResponseError carrying the first entry
// that is not a user.
func ExpectUsers(list ListResponse[Object]) (ListResponse[User], error) {
	return narrow(list, matchUser, true)
}
