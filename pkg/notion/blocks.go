package notion

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BlockType is the discriminator of a block.
type BlockType string

// Block types.
const (
	BlockTypeParagraph        BlockType = "paragraph"
	BlockTypeHeading1         BlockType = "heading_1"
	BlockTypeHeading2         BlockType = "heading_2"
	BlockTypeHeading3         BlockType = "heading_3"
	BlockTypeCallout          BlockType = "callout"
	BlockTypeQuote            BlockType = "quote"
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	BlockTypeToDo             BlockType = "to_do"
	BlockTypeToggle           BlockType = "toggle"
	BlockTypeCode             BlockType = "code"
	BlockTypeChildPage        BlockType = "child_page"
	BlockTypeChildDatabase    BlockType = "child_database"
	BlockTypeEmbed            BlockType = "embed"
	BlockTypeImage            BlockType = "image"
	BlockTypeVideo            BlockType = "video"
	BlockTypeFile             BlockType = "file"
	BlockTypePDF              BlockType = "pdf"
	BlockTypeAudio            BlockType = "audio"
	BlockTypeBookmark         BlockType = "bookmark"
	BlockTypeEquation         BlockType = "equation"
	BlockTypeDivider          BlockType = "divider"
	BlockTypeTableOfContents  BlockType = "table_of_contents"
	BlockTypeBreadcrumb       BlockType = "breadcrumb"
	BlockTypeColumnList       BlockType = "column_list"
	BlockTypeColumn           BlockType = "column"
	BlockTypeLinkPreview      BlockType = "link_preview"
	BlockTypeTemplate         BlockType = "template"
	BlockTypeLinkToPage       BlockType = "link_to_page"
	BlockTypeSyncedBlock      BlockType = "synced_block"
	BlockTypeTable            BlockType = "table"
	BlockTypeTableRow         BlockType = "table_row"
	BlockTypeUnsupported      BlockType = "unsupported"
)

// BlockCommon holds the fields shared by every known block.
type BlockCommon struct {
	ID             BlockID    `json:"id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	CreatedBy      UserCommon `json:"created_by"`
	LastEditedBy   UserCommon `json:"last_edited_by"`
	HasChildren    bool       `json:"has_children"`
	Archived       bool       `json:"archived"`
}

// AsID implements AsIdentifier[BlockID].
func (c BlockCommon) AsID() BlockID { return c.ID }

func (c BlockCommon) blockCommon() (BlockCommon, bool) { return c, true }

// Block is a piece of page content.
//
// AsID panics for UnknownBlock: a block of an unrecognized type carries no
// typed identifier, so callers must check the variant first.
type Block interface {
	Type() BlockType
	AsID() BlockID
	blockCommon() (BlockCommon, bool)
}

// CommonOf returns the shared fields of b. It reports false for UnknownBlock.
func CommonOf(b Block) (BlockCommon, bool) {
	return b.blockCommon()
}

// RichTextFields is the payload of text blocks that may nest other blocks.
type RichTextFields struct {
	RichText RichTexts `json:"rich_text"`
	Color    TextColor `json:"color,omitempty"`
	Children Blocks    `json:"children,omitempty"`
}

// HeadingFields represents the payload of heading blocks. Toggleable headings may nest children.
type HeadingFields struct {
	RichText     RichTexts `json:"rich_text"`
	Color        TextColor `json:"color,omitempty"`
	IsToggleable bool      `json:"is_toggleable,omitempty"`
	Children     Blocks    `json:"children,omitempty"`
}

// CalloutFields represents the payload of a callout block.
type CalloutFields struct {
	RichText RichTexts `json:"rich_text"`
	Icon     *Icon     `json:"icon,omitempty"`
	Color    TextColor `json:"color,omitempty"`
	Children Blocks    `json:"children,omitempty"`
}

// ToDoFields represents the payload of a to-do block.
type ToDoFields struct {
	RichText RichTexts `json:"rich_text"`
	Checked  bool      `json:"checked"`
	Color    TextColor `json:"color,omitempty"`
	Children Blocks    `json:"children,omitempty"`
}

// CodeFields represents the payload of a code block.
type CodeFields struct {
	RichText RichTexts    `json:"rich_text"`
	Caption  RichTexts    `json:"caption"`
	Language CodeLanguage `json:"language"`
}

// TitleFields is the payload of child page and child database blocks.
type TitleFields struct {
	Title string `json:"title"`
}

// URLFields is the payload of embed, bookmark and link preview blocks.
type URLFields struct {
	URL     string    `json:"url"`
	Caption RichTexts `json:"caption,omitempty"`
}

// MediaFields is the payload of image, video, file, pdf and audio blocks.
type MediaFields struct {
	FileObject
	Caption RichTexts `json:"caption,omitempty"`
	Name    string    `json:"name,omitempty"`
}

// TableOfContentsFields represents the payload of a table of contents block.
type TableOfContentsFields struct {
	Color TextColor `json:"color,omitempty"`
}

// ChildrenFields is the payload of layout blocks that only hold children.
type ChildrenFields struct {
	Children Blocks `json:"children,omitempty"`
}

// TemplateFields represents the payload of a template block.
type TemplateFields struct {
	RichText RichTexts `json:"rich_text"`
	Children Blocks    `json:"children,omitempty"`
}

// LinkToPageFields points at a page or a database, according to Type.
type LinkToPageFields struct {
	Type       string      `json:"type"`
	PageID     *PageID     `json:"page_id,omitempty"`
	DatabaseID *DatabaseID `json:"database_id,omitempty"`
}

// SyncedFrom references the original of a duplicated synced block.
type SyncedFrom struct {
	Type    string  `json:"type,omitempty"`
	BlockID BlockID `json:"block_id"`
}

// SyncedBlockFields has a nil SyncedFrom for the original synced block.
type SyncedBlockFields struct {
	SyncedFrom *SyncedFrom `json:"synced_from"`
	Children   Blocks      `json:"children,omitempty"`
}

// TableFields represents the payload of a table block. Its children are table rows.
type TableFields struct {
	TableWidth      int    `json:"table_width"`
	HasColumnHeader bool   `json:"has_column_header"`
	HasRowHeader    bool   `json:"has_row_header"`
	Children        Blocks `json:"children,omitempty"`
}

// TableRowFields holds one rich text sequence per cell.
type TableRowFields struct {
	Cells []RichTexts `json:"cells"`
}

// ParagraphBlock represents a paragraph block.
type ParagraphBlock struct {
	BlockCommon
	Paragraph RichTextFields `json:"paragraph"`
}

// Heading1Block represents a top level heading block.
type Heading1Block struct {
	BlockCommon
	Heading1 HeadingFields `json:"heading_1"`
}

// Heading2Block represents a second level heading block.
type Heading2Block struct {
	BlockCommon
	Heading2 HeadingFields `json:"heading_2"`
}

// Heading3Block represents a third level heading block.
type Heading3Block struct {
	BlockCommon
	Heading3 HeadingFields `json:"heading_3"`
}

// CalloutBlock represents a callout block.
type CalloutBlock struct {
	BlockCommon
	Callout CalloutFields `json:"callout"`
}

// QuoteBlock represents a quote block.
type QuoteBlock struct {
	BlockCommon
	Quote RichTextFields `json:"quote"`
}

// BulletedListItemBlock represents a bulleted list item block.
type BulletedListItemBlock struct {
	BlockCommon
	BulletedListItem RichTextFields `json:"bulleted_list_item"`
}

// NumberedListItemBlock represents a numbered list item block.
type NumberedListItemBlock struct {
	BlockCommon
	NumberedListItem RichTextFields `json:"numbered_list_item"`
}

// ToDoBlock represents a to-do block.
type ToDoBlock struct {
	BlockCommon
	ToDo ToDoFields `json:"to_do"`
}

// ToggleBlock represents a toggle block.
type ToggleBlock struct {
	BlockCommon
	Toggle RichTextFields `json:"toggle"`
}

// CodeBlock represents a code block.
type CodeBlock struct {
	BlockCommon
	Code CodeFields `json:"code"`
}

// ChildPageBlock represents a page nested in another page.
type ChildPageBlock struct {
	BlockCommon
	ChildPage TitleFields `json:"child_page"`
}

// ChildDatabaseBlock represents a database nested in a page.
type ChildDatabaseBlock struct {
	BlockCommon
	ChildDatabase TitleFields `json:"child_database"`
}

// EmbedBlock represents an embed block.
type EmbedBlock struct {
	BlockCommon
	Embed URLFields `json:"embed"`
}

// ImageBlock represents an image block.
type ImageBlock struct {
	BlockCommon
	Image MediaFields `json:"image"`
}

// VideoBlock represents a video block.
type VideoBlock struct {
	BlockCommon
	Video MediaFields `json:"video"`
}

// FileBlock represents a file block.
type FileBlock struct {
	BlockCommon
	File MediaFields `json:"file"`
}

// PDFBlock represents a PDF block.
type PDFBlock struct {
	BlockCommon
	PDF MediaFields `json:"pdf"`
}

// AudioBlock represents an audio block.
type AudioBlock struct {
	BlockCommon
	Audio MediaFields `json:"audio"`
}

// BookmarkBlock represents a bookmark block.
type BookmarkBlock struct {
	BlockCommon
	Bookmark URLFields `json:"bookmark"`
}

// EquationBlock represents a block level KaTeX expression.
type EquationBlock struct {
	BlockCommon
	Equation EquationContent `json:"equation"`
}

// DividerBlock represents a divider block.
type DividerBlock struct {
	BlockCommon
	Divider struct{} `json:"divider"`
}

// TableOfContentsBlock represents a table of contents block.
type TableOfContentsBlock struct {
	BlockCommon
	TableOfContents TableOfContentsFields `json:"table_of_contents"`
}

// BreadcrumbBlock represents a breadcrumb block.
type BreadcrumbBlock struct {
	BlockCommon
	Breadcrumb struct{} `json:"breadcrumb"`
}

// ColumnListBlock represents a set of columns. Its children are column blocks.
type ColumnListBlock struct {
	BlockCommon
	ColumnList ChildrenFields `json:"column_list"`
}

// ColumnBlock represents one column of a column list.
type ColumnBlock struct {
	BlockCommon
	Column ChildrenFields `json:"column"`
}

// LinkPreviewBlock represents a link preview block. The API returns it but does not accept it in requests.
type LinkPreviewBlock struct {
	BlockCommon
	LinkPreview URLFields `json:"link_preview"`
}

// TemplateBlock represents a template button block.
type TemplateBlock struct {
	BlockCommon
	Template TemplateFields `json:"template"`
}

// LinkToPageBlock represents a link to a page or a database.
type LinkToPageBlock struct {
	BlockCommon
	LinkToPage LinkToPageFields `json:"link_to_page"`
}

// SyncedBlock represents an original or duplicated synced block.
type SyncedBlock struct {
	BlockCommon
	SyncedBlock SyncedBlockFields `json:"synced_block"`
}

// TableBlock represents a table block.
type TableBlock struct {
	BlockCommon
	Table TableFields `json:"table"`
}

// TableRowBlock represents one row of a table.
type TableRowBlock struct {
	BlockCommon
	TableRow TableRowFields `json:"table_row"`
}

// UnsupportedBlock is a block the API itself reports as unsupported.
type UnsupportedBlock struct {
	BlockCommon
}

// UnknownBlock keeps a block whose type this package does not know.
type UnknownBlock struct {
	BlockType BlockType
	Raw       json.RawMessage
}

// Type implements Block.
func (ParagraphBlock) Type() BlockType        { return BlockTypeParagraph }
func (Heading1Block) Type() BlockType         { return BlockTypeHeading1 }
func (Heading2Block) Type() BlockType         { return BlockTypeHeading2 }
func (Heading3Block) Type() BlockType         { return BlockTypeHeading3 }
func (CalloutBlock) Type() BlockType          { return BlockTypeCallout }
func (QuoteBlock) Type() BlockType            { return BlockTypeQuote }
func (BulletedListItemBlock) Type() BlockType { return BlockTypeBulletedListItem }
func (NumberedListItemBlock) Type() BlockType { return BlockTypeNumberedListItem }
func (ToDoBlock) Type() BlockType             { return BlockTypeToDo }
func (ToggleBlock) Type() BlockType           { return BlockTypeToggle }
func (CodeBlock) Type() BlockType             { return BlockTypeCode }
func (ChildPageBlock) Type() BlockType        { return BlockTypeChildPage }
func (ChildDatabaseBlock) Type() BlockType    { return BlockTypeChildDatabase }
func (EmbedBlock) Type() BlockType            { return BlockTypeEmbed }
func (ImageBlock) Type() BlockType            { return BlockTypeImage }
func (VideoBlock) Type() BlockType            { return BlockTypeVideo }
func (FileBlock) Type() BlockType             { return BlockTypeFile }
func (PDFBlock) Type() BlockType              { return BlockTypePDF }
func (AudioBlock) Type() BlockType            { return BlockTypeAudio }
func (BookmarkBlock) Type() BlockType         { return BlockTypeBookmark }
func (EquationBlock) Type() BlockType         { return BlockTypeEquation }
func (DividerBlock) Type() BlockType          { return BlockTypeDivider }
func (TableOfContentsBlock) Type() BlockType  { return BlockTypeTableOfContents }
func (BreadcrumbBlock) Type() BlockType       { return BlockTypeBreadcrumb }
func (ColumnListBlock) Type() BlockType       { return BlockTypeColumnList }
func (ColumnBlock) Type() BlockType           { return BlockTypeColumn }
func (LinkPreviewBlock) Type() BlockType      { return BlockTypeLinkPreview }
func (TemplateBlock) Type() BlockType         { return BlockTypeTemplate }
func (LinkToPageBlock) Type() BlockType       { return BlockTypeLinkToPage }
func (SyncedBlock) Type() BlockType           { return BlockTypeSyncedBlock }
func (TableBlock) Type() BlockType            { return BlockTypeTable }
func (TableRowBlock) Type() BlockType         { return BlockTypeTableRow }
func (UnsupportedBlock) Type() BlockType      { return BlockTypeUnsupported }
func (b UnknownBlock) Type() BlockType        { return b.BlockType }

// AsID panics: see Block.
func (b UnknownBlock) AsID() BlockID {
	panic(fmt.Sprintf("notion: identifier requested for block of unknown type %q", b.BlockType))
}

func (UnknownBlock) blockCommon() (BlockCommon, bool) { return BlockCommon{}, false }

func (b ParagraphBlock) MarshalJSON() ([]byte, error) {
	type plain ParagraphBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b Heading1Block) MarshalJSON() ([]byte, error) {
	type plain Heading1Block

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b Heading2Block) MarshalJSON() ([]byte, error) {
	type plain Heading2Block

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b Heading3Block) MarshalJSON() ([]byte, error) {
	type plain Heading3Block

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b CalloutBlock) MarshalJSON() ([]byte, error) {
	type plain CalloutBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b QuoteBlock) MarshalJSON() ([]byte, error) {
	type plain QuoteBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b BulletedListItemBlock) MarshalJSON() ([]byte, error) {
	type plain BulletedListItemBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b NumberedListItemBlock) MarshalJSON() ([]byte, error) {
	type plain NumberedListItemBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b ToDoBlock) MarshalJSON() ([]byte, error) {
	type plain ToDoBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b ToggleBlock) MarshalJSON() ([]byte, error) {
	type plain ToggleBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b CodeBlock) MarshalJSON() ([]byte, error) {
	type plain CodeBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b ChildPageBlock) MarshalJSON() ([]byte, error) {
	type plain ChildPageBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b ChildDatabaseBlock) MarshalJSON() ([]byte, error) {
	type plain ChildDatabaseBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b EmbedBlock) MarshalJSON() ([]byte, error) {
	type plain EmbedBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b ImageBlock) MarshalJSON() ([]byte, error) {
	type plain ImageBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b VideoBlock) MarshalJSON() ([]byte, error) {
	type plain VideoBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b FileBlock) MarshalJSON() ([]byte, error) {
	type plain FileBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b PDFBlock) MarshalJSON() ([]byte, error) {
	type plain PDFBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b AudioBlock) MarshalJSON() ([]byte, error) {
	type plain AudioBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b BookmarkBlock) MarshalJSON() ([]byte, error) {
	type plain BookmarkBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b EquationBlock) MarshalJSON() ([]byte, error) {
	type plain EquationBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b DividerBlock) MarshalJSON() ([]byte, error) {
	type plain DividerBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b TableOfContentsBlock) MarshalJSON() ([]byte, error) {
	type plain TableOfContentsBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b BreadcrumbBlock) MarshalJSON() ([]byte, error) {
	type plain BreadcrumbBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b ColumnListBlock) MarshalJSON() ([]byte, error) {
	type plain ColumnListBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b ColumnBlock) MarshalJSON() ([]byte, error) {
	type plain ColumnBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b LinkPreviewBlock) MarshalJSON() ([]byte, error) {
	type plain LinkPreviewBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b TemplateBlock) MarshalJSON() ([]byte, error) {
	type plain TemplateBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b LinkToPageBlock) MarshalJSON() ([]byte, error) {
	type plain LinkToPageBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b SyncedBlock) MarshalJSON() ([]byte, error) {
	type plain SyncedBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b TableBlock) MarshalJSON() ([]byte, error) {
	type plain TableBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b TableRowBlock) MarshalJSON() ([]byte, error) {
	type plain TableRowBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b UnsupportedBlock) MarshalJSON() ([]byte, error) {
	type plain UnsupportedBlock

	return marshalTagged(typeTag, string(b.Type()), plain(b))
}

func (b UnknownBlock) MarshalJSON() ([]byte, error) {
	return b.Raw, nil
}

var blockDecoders = map[BlockType]func([]byte) (Block, error){
	BlockTypeParagraph:        decodeVariant[ParagraphBlock, Block],
	BlockTypeHeading1:         decodeVariant[Heading1Block, Block],
	BlockTypeHeading2:         decodeVariant[Heading2Block, Block],
	BlockTypeHeading3:         decodeVariant[Heading3Block, Block],
	BlockTypeCallout:          decodeVariant[CalloutBlock, Block],
	BlockTypeQuote:            decodeVariant[QuoteBlock, Block],
	BlockTypeBulletedListItem: decodeVariant[BulletedListItemBlock, Block],
	BlockTypeNumberedListItem: decodeVariant[NumberedListItemBlock, Block],
	BlockTypeToDo:             decodeVariant[ToDoBlock, Block],
	BlockTypeToggle:           decodeVariant[ToggleBlock, Block],
	BlockTypeCode:             decodeVariant[CodeBlock, Block],
	BlockTypeChildPage:        decodeVariant[ChildPageBlock, Block],
	BlockTypeChildDatabase:    decodeVariant[ChildDatabaseBlock, Block],
	BlockTypeEmbed:            decodeVariant[EmbedBlock, Block],
	BlockTypeImage:            decodeVariant[ImageBlock, Block],
	BlockTypeVideo:            decodeVariant[VideoBlock, Block],
	BlockTypeFile:             decodeVariant[FileBlock, Block],
	BlockTypePDF:              decodeVariant[PDFBlock, Block],
	BlockTypeAudio:            decodeVariant[AudioBlock, Block],
	BlockTypeBookmark:         decodeVariant[BookmarkBlock, Block],
	BlockTypeEquation:         decodeVariant[EquationBlock, Block],
	BlockTypeDivider:          decodeVariant[DividerBlock, Block],
	BlockTypeTableOfContents:  decodeVariant[TableOfContentsBlock, Block],
	BlockTypeBreadcrumb:       decodeVariant[BreadcrumbBlock, Block],
	BlockTypeColumnList:       decodeVariant[ColumnListBlock, Block],
	BlockTypeColumn:           decodeVariant[ColumnBlock, Block],
	BlockTypeLinkPreview:      decodeVariant[LinkPreviewBlock, Block],
	BlockTypeTemplate:         decodeVariant[TemplateBlock, Block],
	BlockTypeLinkToPage:       decodeVariant[LinkToPageBlock, Block],
	BlockTypeSyncedBlock:      decodeVariant[SyncedBlock, Block],
	BlockTypeTable:            decodeVariant[TableBlock, Block],
	BlockTypeTableRow:         decodeVariant[TableRowBlock, Block],
	BlockTypeUnsupported:      decodeVariant[UnsupportedBlock, Block],
}

// DecodeBlock decodes one block, including any nested children. Unknown
// types decode to UnknownBlock.
func DecodeBlock(data []byte) (Block, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, err
	}

	if decode, ok := blockDecoders[BlockType(tag)]; ok {
		block, err := decode(data)
		if err != nil {
			return nil, withField(tag, err)
		}

		return block, nil
	}

	return UnknownBlock{BlockType: BlockType(tag), Raw: rawCopy(data)}, nil
}

// Blocks is a sequence of blocks as it appears on the wire.
type Blocks []Block

func (b Blocks) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]Block(b))
}

func (b *Blocks) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage

	err := json.Unmarshal(data, &raws)
	if err != nil {
		return err
	}

	if len(raws) == 0 {
		*b = nil

		return nil
	}

	blocks := make(Blocks, 0, len(raws))

	for i, raw := range raws {
		block, err := DecodeBlock(raw)
		if err != nil {
			return withField(fmt.Sprintf("children[%d]", i), err)
		}

		blocks = append(blocks, block)
	}

	*b = blocks

	return nil
}

// PlainText returns the text carried by b, or an empty string for blocks
// without text. Table rows join their cells with tabs.
func PlainText(b Block) string {
	switch block := b.(type) {
	case ParagraphBlock:
		return block.Paragraph.RichText.PlainText()
	case Heading1Block:
		return block.Heading1.RichText.PlainText()
	case Heading2Block:
		return block.Heading2.RichText.PlainText()
	case Heading3Block:
		return block.Heading3.RichText.PlainText()
	case CalloutBlock:
		return block.Callout.RichText.PlainText()
	case QuoteBlock:
		return block.Quote.RichText.PlainText()
	case BulletedListItemBlock:
		return block.BulletedListItem.RichText.PlainText()
	case NumberedListItemBlock:
		return block.NumberedListItem.RichText.PlainText()
	case ToDoBlock:
		return block.ToDo.RichText.PlainText()
	case ToggleBlock:
		return block.Toggle.RichText.PlainText()
	case CodeBlock:
		return block.Code.RichText.PlainText()
	case TemplateBlock:
		return block.Template.RichText.PlainText()
	case ChildPageBlock:
		return block.ChildPage.Title
	case ChildDatabaseBlock:
		return block.ChildDatabase.Title
	case EquationBlock:
		return block.Equation.Expression
	case BookmarkBlock:
		return block.Bookmark.URL
	case EmbedBlock:
		return block.Embed.URL
	case LinkPreviewBlock:
		return block.LinkPreview.URL
	case TableRowBlock:
		cells := make([]string, 0, len(block.TableRow.Cells))
		for _, cell := range block.TableRow.Cells {
			cells = append(cells, cell.PlainText())
		}

		return strings.Join(cells, "\t")
	default:
		return ""
	}
}

// Children returns the nested blocks embedded in b, if any.
func Children(b Block) Blocks {
	switch block := b.(type) {
	case ParagraphBlock:
		return block.Paragraph.Children
	case Heading1Block:
		return block.Heading1.Children
	case Heading2Block:
		return block.Heading2.Children
	case Heading3Block:
		return block.Heading3.Children
	case CalloutBlock:
		return block.Callout.Children
	case QuoteBlock:
		return block.Quote.Children
	case BulletedListItemBlock:
		return block.BulletedListItem.Children
	case NumberedListItemBlock:
		return block.NumberedListItem.Children
	case ToDoBlock:
		return block.ToDo.Children
	case ToggleBlock:
		return block.Toggle.Children
	case ColumnListBlock:
		return block.ColumnList.Children
	case ColumnBlock:
		return block.Column.Children
	case TemplateBlock:
		return block.Template.Children
	case SyncedBlock:
		return block.SyncedBlock.Children
	case TableBlock:
		return block.Table.Children
	default:
		return nil
	}
}
