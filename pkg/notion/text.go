package notion

import (
	"encoding/json"
	"strings"
)

// TextColor is the color of a text span or block.
type TextColor string

// Text colors.
const (
	TextColorDefault          TextColor = "default"
	TextColorGray             TextColor = "gray"
	TextColorBrown            TextColor = "brown"
	TextColorOrange           TextColor = "orange"
	TextColorYellow           TextColor = "yellow"
	TextColorGreen            TextColor = "green"
	TextColorBlue             TextColor = "blue"
	TextColorPurple           TextColor = "purple"
	TextColorPink             TextColor = "pink"
	TextColorRed              TextColor = "red"
	TextColorGrayBackground   TextColor = "gray_background"
	TextColorBrownBackground  TextColor = "brown_background"
	TextColorOrangeBackground TextColor = "orange_background"
	TextColorYellowBackground TextColor = "yellow_background"
	TextColorGreenBackground  TextColor = "green_background"
	TextColorBlueBackground   TextColor = "blue_background"
	TextColorPurpleBackground TextColor = "purple_background"
	TextColorPinkBackground   TextColor = "pink_background"
	TextColorRedBackground    TextColor = "red_background"
)

// RichTextType is the discriminator of a rich text span.
type RichTextType string

const (
	RichTextTypeText     RichTextType = "text"
	RichTextTypeMention  RichTextType = "mention"
	RichTextTypeEquation RichTextType = "equation"
)

// Annotations holds the styling of a rich text span.
type Annotations struct {
	Bold          bool      `json:"bold,omitempty"`
	Italic        bool      `json:"italic,omitempty"`
	Strikethrough bool      `json:"strikethrough,omitempty"`
	Underline     bool      `json:"underline,omitempty"`
	Code          bool      `json:"code,omitempty"`
	Color         TextColor `json:"color,omitempty"`
}

// RichTextCommon holds the fields shared by every rich text variant.
// Plain is the unstyled text of the span.
type RichTextCommon struct {
	Plain       string       `json:"plain_text"`
	Href        *string      `json:"href,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// PlainText returns the unstyled text of the span.
func (c RichTextCommon) PlainText() string { return c.Plain }

func (c RichTextCommon) richTextCommon() RichTextCommon { return c }

// RichText is a styled span of text. The concrete type is one of
// RichTextText, RichTextMention, RichTextEquation or RichTextUnknown.
type RichText interface {
	Type() RichTextType
	PlainText() string
	richTextCommon() RichTextCommon
}

// Link is the target of a hyperlinked text span.
type Link struct {
	URL string `json:"url"`
}

// TextContent is the payload of a text span.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// RichTextText is a plain, possibly linked, span.
type RichTextText struct {
	RichTextCommon
	Text TextContent `json:"text"`
}

func (RichTextText) Type() RichTextType { return RichTextTypeText }

func (r RichTextText) MarshalJSON() ([]byte, error) {
	type plain RichTextText

	return marshalTagged(typeTag, string(RichTextTypeText), plain(r))
}

// NewRichText builds an unstyled text span, suitable for request bodies.
func NewRichText(content string) RichTextText {
	return RichTextText{
		RichTextCommon: RichTextCommon{Plain: content},
		Text:           TextContent{Content: content},
	}
}

// EquationContent is the payload of an inline equation.
type EquationContent struct {
	Expression string `json:"expression"`
}

// RichTextEquation is an inline KaTeX expression.
type RichTextEquation struct {
	RichTextCommon
	Equation EquationContent `json:"equation"`
}

func (RichTextEquation) Type() RichTextType { return RichTextTypeEquation }

func (r RichTextEquation) MarshalJSON() ([]byte, error) {
	type plain RichTextEquation

	return marshalTagged(typeTag, string(RichTextTypeEquation), plain(r))
}

// RichTextMention references a user, page, database or date inline.
type RichTextMention struct {
	RichTextCommon
	Mention Mention `json:"mention"`
}

func (RichTextMention) Type() RichTextType { return RichTextTypeMention }

func (r RichTextMention) MarshalJSON() ([]byte, error) {
	type plain RichTextMention

	return marshalTagged(typeTag, string(RichTextTypeMention), plain(r))
}

func (r *RichTextMention) UnmarshalJSON(data []byte) error {
	type plain RichTextMention

	aux := struct {
		*plain
		Mention json.RawMessage `json:"mention"`
	}{plain: (*plain)(r)}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	r.Mention, err = DecodeMention(aux.Mention)
	if err != nil {
		return withField("mention", err)
	}

	return nil
}

// RichTextUnknown keeps a span whose type this package does not know.
type RichTextUnknown struct {
	RichTextCommon
	RichTextType RichTextType
	Raw          json.RawMessage
}

func (r RichTextUnknown) Type() RichTextType { return r.RichTextType }

func (r RichTextUnknown) MarshalJSON() ([]byte, error) {
	return r.Raw, nil
}

var richTextDecoders = map[RichTextType]func([]byte) (RichText, error){
	RichTextTypeText:     decodeVariant[RichTextText, RichText],
	RichTextTypeMention:  decodeVariant[RichTextMention, RichText],
	RichTextTypeEquation: decodeVariant[RichTextEquation, RichText],
}

// DecodeRichText decodes one rich text span. Unknown types decode to RichTextUnknown.
func DecodeRichText(data []byte) (RichText, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, err
	}

	if decode, ok := richTextDecoders[RichTextType(tag)]; ok {
		return decode(data)
	}

	unknown := RichTextUnknown{RichTextType: RichTextType(tag), Raw: rawCopy(data)}

	err = json.Unmarshal(data, &unknown.RichTextCommon)
	if err != nil {
		return nil, err
	}

	return unknown, nil
}

// RichTexts is a sequence of rich text spans as it appears on the wire.
type RichTexts []RichText

// PlainText concatenates the plain text of every span in order.
func (r RichTexts) PlainText() string {
	var b strings.Builder

	for _, text := range r {
		b.WriteString(text.PlainText())
	}

	return b.String()
}

func (r RichTexts) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]RichText(r))
}

func (r *RichTexts) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage

	err := json.Unmarshal(data, &raws)
	if err != nil {
		return err
	}

	if len(raws) == 0 {
		*r = nil

		return nil
	}

	texts := make(RichTexts, 0, len(raws))

	for _, raw := range raws {
		text, err := DecodeRichText(raw)
		if err != nil {
			return err
		}

		texts = append(texts, text)
	}

	*r = texts

	return nil
}

// MentionType is the discriminator of a mention.
type MentionType string

const (
	MentionTypeUser        MentionType = "user"
	MentionTypePage        MentionType = "page"
	MentionTypeDatabase    MentionType = "database"
	MentionTypeDate        MentionType = "date"
	MentionTypeLinkPreview MentionType = "link_preview"
)

// Mention is the payload of a RichTextMention. The concrete type is one of
// UserMention, PageMention, DatabaseMention, DateMention, LinkPreviewMention
// or UnknownMention.
type Mention interface {
	Type() MentionType
}

// PageReference points at a page by ID.
type PageReference struct {
	ID PageID `json:"id"`
}

// DatabaseReference points at a database by ID.
type DatabaseReference struct {
	ID DatabaseID `json:"id"`
}

// UserMention represents a mention of a user.
type UserMention struct {
	User User `json:"user"`
}

func (UserMention) Type() MentionType { return MentionTypeUser }

func (m UserMention) MarshalJSON() ([]byte, error) {
	type plain UserMention

	return marshalTagged(typeTag, string(MentionTypeUser), plain(m))
}

func (m *UserMention) UnmarshalJSON(data []byte) error {
	var aux struct {
		User json.RawMessage `json:"user"`
	}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	m.User, err = DecodeUser(aux.User)
	if err != nil {
		return withField("user", err)
	}

	return nil
}

// PageMention represents a mention of a page.
type PageMention struct {
	Page PageReference `json:"page"`
}

func (PageMention) Type() MentionType { return MentionTypePage }

func (m PageMention) MarshalJSON() ([]byte, error) {
	type plain PageMention

	return marshalTagged(typeTag, string(MentionTypePage), plain(m))
}

// DatabaseMention represents a mention of a database.
type DatabaseMention struct {
	Database DatabaseReference `json:"database"`
}

func (DatabaseMention) Type() MentionType { return MentionTypeDatabase }

func (m DatabaseMention) MarshalJSON() ([]byte, error) {
	type plain DatabaseMention

	return marshalTagged(typeTag, string(MentionTypeDatabase), plain(m))
}

// DateMention represents an inline date or date range.
type DateMention struct {
	Date DateValue `json:"date"`
}

func (DateMention) Type() MentionType { return MentionTypeDate }

func (m DateMention) MarshalJSON() ([]byte, error) {
	type plain DateMention

	return marshalTagged(typeTag, string(MentionTypeDate), plain(m))
}

// LinkPreview is the URL behind a link preview mention.
type LinkPreview struct {
	URL string `json:"url"`
}

// LinkPreviewMention represents an inline link preview.
type LinkPreviewMention struct {
	LinkPreview LinkPreview `json:"link_preview"`
}

func (LinkPreviewMention) Type() MentionType { return MentionTypeLinkPreview }

func (m LinkPreviewMention) MarshalJSON() ([]byte, error) {
	type plain LinkPreviewMention

	return marshalTagged(typeTag, string(MentionTypeLinkPreview), plain(m))
}

// UnknownMention keeps a mention whose type this package does not know.
type UnknownMention struct {
	MentionType MentionType
	Raw         json.RawMessage
}

func (m UnknownMention) Type() MentionType { return m.MentionType }

func (m UnknownMention) MarshalJSON() ([]byte, error) {
	return m.Raw, nil
}

var mentionDecoders = map[MentionType]func([]byte) (Mention, error){
	MentionTypeUser:        decodeVariant[UserMention, Mention],
	MentionTypePage:        decodeVariant[PageMention, Mention],
	MentionTypeDatabase:    decodeVariant[DatabaseMention, Mention],
	MentionTypeDate:        decodeVariant[DateMention, Mention],
	MentionTypeLinkPreview: decodeVariant[LinkPreviewMention, Mention],
}

// DecodeMention decodes a mention payload. Unknown types decode to UnknownMention.
func DecodeMention(data []byte) (Mention, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, err
	}

	if decode, ok := mentionDecoders[MentionType(tag)]; ok {
		return decode(data)
	}

	return UnknownMention{MentionType: MentionType(tag), Raw: rawCopy(data)}, nil
}
