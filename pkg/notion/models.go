package notion

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParentType is the discriminator of a parent reference.
type ParentType string

const (
	ParentTypeDatabase  ParentType = "database_id"
	ParentTypePage      ParentType = "page_id"
	ParentTypeWorkspace ParentType = "workspace"
	ParentTypeBlock     ParentType = "block_id"
)

// Parent tells where a page or database lives. The concrete type is one of
// DatabaseParent, PageParent, WorkspaceParent or BlockParent.
type Parent interface {
	Type() ParentType
}

// DatabaseParent represents a page that is a row of a database.
type DatabaseParent struct {
	DatabaseID DatabaseID `json:"database_id"`
}

// PageParent represents a page or database nested under a page.
type PageParent struct {
	PageID PageID `json:"page_id"`
}

// WorkspaceParent marks a top level page or database.
type WorkspaceParent struct{}

// BlockParent represents an object nested under a block.
type BlockParent struct {
	BlockID BlockID `json:"block_id"`
}

func (DatabaseParent) Type() ParentType  { return ParentTypeDatabase }
func (PageParent) Type() ParentType      { return ParentTypePage }
func (WorkspaceParent) Type() ParentType { return ParentTypeWorkspace }
func (BlockParent) Type() ParentType     { return ParentTypeBlock }

func (p DatabaseParent) MarshalJSON() ([]byte, error) {
	type plain DatabaseParent

	return marshalTagged(typeTag, string(p.Type()), plain(p))
}

func (p PageParent) MarshalJSON() ([]byte, error) {
	type plain PageParent

	return marshalTagged(typeTag, string(p.Type()), plain(p))
}

func (WorkspaceParent) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"workspace","workspace":true}`), nil
}

func (p BlockParent) MarshalJSON() ([]byte, error) {
	type plain BlockParent

	return marshalTagged(typeTag, string(p.Type()), plain(p))
}

var parentDecoders = map[ParentType]func([]byte) (Parent, error){
	ParentTypeDatabase:  decodeVariant[DatabaseParent, Parent],
	ParentTypePage:      decodeVariant[PageParent, Parent],
	ParentTypeWorkspace: decodeVariant[WorkspaceParent, Parent],
	ParentTypeBlock:     decodeVariant[BlockParent, Parent],
}

// DecodeParent decodes a parent reference. Parents carry no catch-all: an
// unknown type is a decode error.
func DecodeParent(data []byte) (Parent, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, err
	}

	if tag == "" {
		return nil, &DecodeError{Field: "parent", Err: ErrMissingTag}
	}

	decode, ok := parentDecoders[ParentType(tag)]
	if !ok {
		return nil, &DecodeError{Field: "parent", Err: fmt.Errorf("%w: parent %q", ErrUnknownVariant, tag)}
	}

	parent, err := decode(data)
	if err != nil {
		return nil, withField("parent", err)
	}

	return parent, nil
}

// Database is a collection of pages sharing a property schema.
type Database struct {
	ID             DatabaseID             `json:"id"`
	CreatedTime    time.Time              `json:"created_time"`
	LastEditedTime time.Time              `json:"last_edited_time"`
	Title          RichTexts              `json:"title"`
	Description    RichTexts              `json:"description,omitempty"`
	Properties     PropertyConfigurations `json:"properties"`
	Parent         Parent                 `json:"parent,omitempty"`
	URL            string                 `json:"url,omitempty"`
	Icon           *Icon                  `json:"icon,omitempty"`
	Cover          *FileObject            `json:"cover,omitempty"`
	Archived       bool                   `json:"archived"`
	IsInline       bool                   `json:"is_inline,omitempty"`
}

// AsID implements AsIdentifier[DatabaseID].
func (d Database) AsID() DatabaseID { return d.ID }

// TitlePlainText returns the database title without styling.
func (d Database) TitlePlainText() string { return d.Title.PlainText() }

func (d *Database) UnmarshalJSON(data []byte) error {
	type plain Database

	aux := struct {
		*plain
		Parent json.RawMessage `json:"parent"`
	}{plain: (*plain)(d)}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	d.Parent, err = decodeOptionalParent(aux.Parent)

	return err
}

// Page is a single page, either standalone or a row of a database.
type Page struct {
	ID             PageID      `json:"id"`
	CreatedTime    time.Time   `json:"created_time"`
	LastEditedTime time.Time   `json:"last_edited_time"`
	CreatedBy      UserCommon  `json:"created_by"`
	LastEditedBy   UserCommon  `json:"last_edited_by"`
	Parent         Parent      `json:"parent,omitempty"`
	Properties     Properties  `json:"properties"`
	URL            string      `json:"url,omitempty"`
	Icon           *Icon       `json:"icon,omitempty"`
	Cover          *FileObject `json:"cover,omitempty"`
	Archived       bool        `json:"archived"`
}

// AsID implements AsIdentifier[PageID].
func (p Page) AsID() PageID { return p.ID }

// BlockID returns the identifier of the page seen as a block, for listing
// its content.
func (p Page) BlockID() BlockID { return BlockIDFromPage(p.ID) }

// Title returns the plain text of the title property, if the page has one.
func (p Page) Title() (string, bool) { return p.Properties.Title() }

func (p *Page) UnmarshalJSON(data []byte) error {
	type plain Page

	aux := struct {
		*plain
		Parent json.RawMessage `json:"parent"`
	}{plain: (*plain)(p)}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	p.Parent, err = decodeOptionalParent(aux.Parent)

	return err
}

func decodeOptionalParent(raw json.RawMessage) (Parent, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	return DecodeParent(raw)
}

// PageCreateRequest is the body of a create page call. Children become the
// initial content of the page.
type PageCreateRequest struct {
	Parent     Parent      `json:"parent"`
	Properties Properties  `json:"properties"`
	Children   Blocks      `json:"children,omitempty"`
	Icon       *Icon       `json:"icon,omitempty"`
	Cover      *FileObject `json:"cover,omitempty"`
}
