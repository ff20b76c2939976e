package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PropertyValueCommon holds the fields shared by every property value.
// ID is empty in request bodies, where properties are addressed by name.
type PropertyValueCommon struct {
	ID PropertyID `json:"id,omitzero"`
}

// AsID implements AsIdentifier[PropertyID].
func (c PropertyValueCommon) AsID() PropertyID { return c.ID }

func (c PropertyValueCommon) propertyValueCommon() PropertyValueCommon { return c }

// PropertyValue is the value of one property of a page.
type PropertyValue interface {
	Type() PropertyType
	AsID() PropertyID
	propertyValueCommon() PropertyValueCommon
}

// SelectedValue is the chosen option of a select or status property.
// Requests may set only Name.
type SelectedValue struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color Color  `json:"color,omitempty"`
}

// RelationValue references a related page.
type RelationValue struct {
	ID PageID `json:"id"`
}

// UniqueIDValue is an auto-incremented identifier such as "TASK-42".
type UniqueIDValue struct {
	Prefix *string `json:"prefix"`
	Number int64   `json:"number"`
}

// String formats the identifier as Notion displays it.
func (u UniqueIDValue) String() string {
	if u.Prefix == nil || *u.Prefix == "" {
		return fmt.Sprintf("%d", u.Number)
	}

	return fmt.Sprintf("%s-%d", *u.Prefix, u.Number)
}

// TitlePropertyValue represents the title of a page.
type TitlePropertyValue struct {
	PropertyValueCommon
	Title RichTexts `json:"title"`
}

// RichTextPropertyValue represents the value of a text property.
type RichTextPropertyValue struct {
	PropertyValueCommon
	RichText RichTexts `json:"rich_text"`
}

// NumberPropertyValue represents the value of a number property. Number is nil when empty.
type NumberPropertyValue struct {
	PropertyValueCommon
	Number *float64 `json:"number"`
}

// SelectPropertyValue represents the value of a select property. Select is nil when empty.
type SelectPropertyValue struct {
	PropertyValueCommon
	Select *SelectedValue `json:"select"`
}

// StatusPropertyValue represents the value of a status property.
type StatusPropertyValue struct {
	PropertyValueCommon
	Status *SelectedValue `json:"status"`
}

// MultiSelectPropertyValue represents the value of a multi-select property.
type MultiSelectPropertyValue struct {
	PropertyValueCommon
	MultiSelect []SelectedValue `json:"multi_select"`
}

// DatePropertyValue represents the value of a date property. Date is nil when empty.
type DatePropertyValue struct {
	PropertyValueCommon
	Date *DateValue `json:"date"`
}

// PeoplePropertyValue represents the value of a people property.
type PeoplePropertyValue struct {
	PropertyValueCommon
	People Users `json:"people"`
}

// FilesPropertyValue represents the value of a files and media property.
type FilesPropertyValue struct {
	PropertyValueCommon
	Files []FileReference `json:"files"`
}

// CheckboxPropertyValue represents the value of a checkbox property.
type CheckboxPropertyValue struct {
	PropertyValueCommon
	Checkbox bool `json:"checkbox"`
}

// URLPropertyValue represents the value of a URL property.
type URLPropertyValue struct {
	PropertyValueCommon
	URL *string `json:"url"`
}

// EmailPropertyValue represents the value of an email property.
type EmailPropertyValue struct {
	PropertyValueCommon
	Email *string `json:"email"`
}

// PhoneNumberPropertyValue represents the value of a phone number property.
type PhoneNumberPropertyValue struct {
	PropertyValueCommon
	PhoneNumber *string `json:"phone_number"`
}

// FormulaPropertyValue represents the computed value of a formula property.
type FormulaPropertyValue struct {
	PropertyValueCommon
	Formula FormulaResult `json:"formula"`
}

// RelationPropertyValue lists related pages. HasMore is set when the API
// truncated the list.
type RelationPropertyValue struct {
	PropertyValueCommon
	Relation []RelationValue `json:"relation"`
	HasMore  *bool           `json:"has_more,omitempty"`
}

// RollupPropertyValue represents the computed value of a rollup property.
type RollupPropertyValue struct {
	PropertyValueCommon
	Rollup RollupResult `json:"rollup"`
}

// CreatedTimePropertyValue represents when the page was created.
type CreatedTimePropertyValue struct {
	PropertyValueCommon
	CreatedTime time.Time `json:"created_time"`
}

// CreatedByPropertyValue represents who created the page.
type CreatedByPropertyValue struct {
	PropertyValueCommon
	CreatedBy UserCommon `json:"created_by"`
}

// LastEditedTimePropertyValue represents when the page was last edited.
type LastEditedTimePropertyValue struct {
	PropertyValueCommon
	LastEditedTime time.Time `json:"last_edited_time"`
}

// LastEditedByPropertyValue represents who last edited the page.
type LastEditedByPropertyValue struct {
	PropertyValueCommon
	LastEditedBy UserCommon `json:"last_edited_by"`
}

// UniqueIDPropertyValue represents the value of a unique ID property.
type UniqueIDPropertyValue struct {
	PropertyValueCommon
	UniqueID UniqueIDValue `json:"unique_id"`
}

// UnknownPropertyValue keeps a value whose type this package does not know.
type UnknownPropertyValue struct {
	PropertyValueCommon
	PropertyType PropertyType
	Raw          json.RawMessage
}

// Type implements PropertyValue.
func (TitlePropertyValue) Type() PropertyType          { return PropertyTypeTitle }
func (RichTextPropertyValue) Type() PropertyType       { return PropertyTypeRichText }
func (NumberPropertyValue) Type() PropertyType         { return PropertyTypeNumber }
func (SelectPropertyValue) Type() PropertyType         { return PropertyTypeSelect }
func (StatusPropertyValue) Type() PropertyType         { return PropertyTypeStatus }
func (MultiSelectPropertyValue) Type() PropertyType    { return PropertyTypeMultiSelect }
func (DatePropertyValue) Type() PropertyType           { return PropertyTypeDate }
func (PeoplePropertyValue) Type() PropertyType         { return PropertyTypePeople }
func (FilesPropertyValue) Type() PropertyType          { return PropertyTypeFiles }
func (CheckboxPropertyValue) Type() PropertyType       { return PropertyTypeCheckbox }
func (URLPropertyValue) Type() PropertyType            { return PropertyTypeURL }
func (EmailPropertyValue) Type() PropertyType          { return PropertyTypeEmail }
func (PhoneNumberPropertyValue) Type() PropertyType    { return PropertyTypePhoneNumber }
func (FormulaPropertyValue) Type() PropertyType        { return PropertyTypeFormula }
func (RelationPropertyValue) Type() PropertyType       { return PropertyTypeRelation }
func (RollupPropertyValue) Type() PropertyType         { return PropertyTypeRollup }
func (CreatedTimePropertyValue) Type() PropertyType    { return PropertyTypeCreatedTime }
func (CreatedByPropertyValue) Type() PropertyType      { return PropertyTypeCreatedBy }
func (LastEditedTimePropertyValue) Type() PropertyType { return PropertyTypeLastEditedTime }
func (LastEditedByPropertyValue) Type() PropertyType   { return PropertyTypeLastEditedBy }
func (UniqueIDPropertyValue) Type() PropertyType       { return PropertyTypeUniqueID }
func (v UnknownPropertyValue) Type() PropertyType      { return v.PropertyType }

func (v TitlePropertyValue) MarshalJSON() ([]byte, error) {
	type plain TitlePropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v RichTextPropertyValue) MarshalJSON() ([]byte, error) {
	type plain RichTextPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v NumberPropertyValue) MarshalJSON() ([]byte, error) {
	type plain NumberPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v SelectPropertyValue) MarshalJSON() ([]byte, error) {
	type plain SelectPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v StatusPropertyValue) MarshalJSON() ([]byte, error) {
	type plain StatusPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v MultiSelectPropertyValue) MarshalJSON() ([]byte, error) {
	type plain MultiSelectPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v DatePropertyValue) MarshalJSON() ([]byte, error) {
	type plain DatePropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v PeoplePropertyValue) MarshalJSON() ([]byte, error) {
	type plain PeoplePropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v FilesPropertyValue) MarshalJSON() ([]byte, error) {
	type plain FilesPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v CheckboxPropertyValue) MarshalJSON() ([]byte, error) {
	type plain CheckboxPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v URLPropertyValue) MarshalJSON() ([]byte, error) {
	type plain URLPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v EmailPropertyValue) MarshalJSON() ([]byte, error) {
	type plain EmailPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v PhoneNumberPropertyValue) MarshalJSON() ([]byte, error) {
	type plain PhoneNumberPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v FormulaPropertyValue) MarshalJSON() ([]byte, error) {
	type plain FormulaPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v *FormulaPropertyValue) UnmarshalJSON(data []byte) error {
	type plain FormulaPropertyValue

	aux := struct {
		*plain
		Formula json.RawMessage `json:"formula"`
	}{plain: (*plain)(v)}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	v.Formula, err = DecodeFormulaResult(aux.Formula)

	return err
}

func (v RelationPropertyValue) MarshalJSON() ([]byte, error) {
	type plain RelationPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v RollupPropertyValue) MarshalJSON() ([]byte, error) {
	type plain RollupPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v *RollupPropertyValue) UnmarshalJSON(data []byte) error {
	type plain RollupPropertyValue

	aux := struct {
		*plain
		Rollup json.RawMessage `json:"rollup"`
	}{plain: (*plain)(v)}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	v.Rollup, err = DecodeRollupResult(aux.Rollup)

	return err
}

func (v CreatedTimePropertyValue) MarshalJSON() ([]byte, error) {
	type plain CreatedTimePropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v CreatedByPropertyValue) MarshalJSON() ([]byte, error) {
	type plain CreatedByPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v LastEditedTimePropertyValue) MarshalJSON() ([]byte, error) {
	type plain LastEditedTimePropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v LastEditedByPropertyValue) MarshalJSON() ([]byte, error) {
	type plain LastEditedByPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v UniqueIDPropertyValue) MarshalJSON() ([]byte, error) {
	type plain UniqueIDPropertyValue

	return marshalTagged(typeTag, string(v.Type()), plain(v))
}

func (v UnknownPropertyValue) MarshalJSON() ([]byte, error) {
	return v.Raw, nil
}

var propertyValueDecoders = map[PropertyType]func([]byte) (PropertyValue, error){
	PropertyTypeTitle:          decodeVariant[TitlePropertyValue, PropertyValue],
	PropertyTypeRichText:       decodeVariant[RichTextPropertyValue, PropertyValue],
	PropertyTypeNumber:         decodeVariant[NumberPropertyValue, PropertyValue],
	PropertyTypeSelect:         decodeVariant[SelectPropertyValue, PropertyValue],
	PropertyTypeStatus:         decodeVariant[StatusPropertyValue, PropertyValue],
	PropertyTypeMultiSelect:    decodeVariant[MultiSelectPropertyValue, PropertyValue],
	PropertyTypeDate:           decodeVariant[DatePropertyValue, PropertyValue],
	PropertyTypePeople:         decodeVariant[PeoplePropertyValue, PropertyValue],
	PropertyTypeFiles:          decodeVariant[FilesPropertyValue, PropertyValue],
	PropertyTypeCheckbox:       decodeVariant[CheckboxPropertyValue, PropertyValue],
	PropertyTypeURL:            decodeVariant[URLPropertyValue, PropertyValue],
	PropertyTypeEmail:          decodeVariant[EmailPropertyValue, PropertyValue],
	PropertyTypePhoneNumber:    decodeVariant[PhoneNumberPropertyValue, PropertyValue],
	PropertyTypeFormula:        decodeVariant[FormulaPropertyValue, PropertyValue],
	PropertyTypeRelation:       decodeVariant[RelationPropertyValue, PropertyValue],
	PropertyTypeRollup:         decodeVariant[RollupPropertyValue, PropertyValue],
	PropertyTypeCreatedTime:    decodeVariant[CreatedTimePropertyValue, PropertyValue],
	PropertyTypeCreatedBy:      decodeVariant[CreatedByPropertyValue, PropertyValue],
	PropertyTypeLastEditedTime: decodeVariant[LastEditedTimePropertyValue, PropertyValue],
	PropertyTypeLastEditedBy:   decodeVariant[LastEditedByPropertyValue, PropertyValue],
	PropertyTypeUniqueID:       decodeVariant[UniqueIDPropertyValue, PropertyValue],
}

// DecodePropertyValue decodes one property value. Unknown types decode to
// UnknownPropertyValue; a malformed date or formula result is a DecodeError.
func DecodePropertyValue(data []byte) (PropertyValue, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, err
	}

	if decode, ok := propertyValueDecoders[PropertyType(tag)]; ok {
		return decode(data)
	}

	unknown := UnknownPropertyValue{PropertyType: PropertyType(tag), Raw: rawCopy(data)}

	err = json.Unmarshal(data, &unknown.PropertyValueCommon)
	if err != nil {
		return nil, err
	}

	return unknown, nil
}

// CommonOfPropertyValue returns the shared fields of any property value.
func CommonOfPropertyValue(v PropertyValue) PropertyValueCommon {
	return v.propertyValueCommon()
}

// PropertyValues is a sequence of values, as found in rollup arrays.
type PropertyValues []PropertyValue

func (p PropertyValues) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]PropertyValue(p))
}

func (p *PropertyValues) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage

	err := json.Unmarshal(data, &raws)
	if err != nil {
		return err
	}

	if len(raws) == 0 {
		*p = nil

		return nil
	}

	values := make(PropertyValues, 0, len(raws))

	for i, raw := range raws {
		value, err := DecodePropertyValue(raw)
		if err != nil {
			return withField(fmt.Sprintf("[%d]", i), err)
		}

		values = append(values, value)
	}

	*p = values

	return nil
}

// FormulaType is the type of a computed formula result.
type FormulaType string

const (
	FormulaTypeString  FormulaType = "string"
	FormulaTypeNumber  FormulaType = "number"
	FormulaTypeBoolean FormulaType = "boolean"
	FormulaTypeDate    FormulaType = "date"
)

// FormulaResult is the computed value of a formula property.
type FormulaResult interface {
	Type() FormulaType
}

// StringFormulaResult represents a formula that evaluates to text.
type StringFormulaResult struct {
	String *string `json:"string"`
}

// NumberFormulaResult represents a formula that evaluates to a number.
type NumberFormulaResult struct {
	Number *float64 `json:"number"`
}

// BooleanFormulaResult represents a formula that evaluates to a checkbox.
type BooleanFormulaResult struct {
	Boolean bool `json:"boolean"`
}

// DateFormulaResult represents a formula that evaluates to a date.
type DateFormulaResult struct {
	Date *DateValue `json:"date"`
}

// Type implements FormulaResult.
func (StringFormulaResult) Type() FormulaType  { return FormulaTypeString }
func (NumberFormulaResult) Type() FormulaType  { return FormulaTypeNumber }
func (BooleanFormulaResult) Type() FormulaType { return FormulaTypeBoolean }
func (DateFormulaResult) Type() FormulaType    { return FormulaTypeDate }

func (r StringFormulaResult) MarshalJSON() ([]byte, error) {
	type plain StringFormulaResult

	return marshalTagged(typeTag, string(r.Type()), plain(r))
}

func (r NumberFormulaResult) MarshalJSON() ([]byte, error) {
	type plain NumberFormulaResult

	return marshalTagged(typeTag, string(r.Type()), plain(r))
}

func (r BooleanFormulaResult) MarshalJSON() ([]byte, error) {
	type plain BooleanFormulaResult

	return marshalTagged(typeTag, string(r.Type()), plain(r))
}

func (r DateFormulaResult) MarshalJSON() ([]byte, error) {
	type plain DateFormulaResult

	return marshalTagged(typeTag, string(r.Type()), plain(r))
}

// DecodeFormulaResult decodes a formula result. There is no catch-all: an
// unknown result type is a DecodeError.
func DecodeFormulaResult(data []byte) (FormulaResult, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, &DecodeError{Field: "formula", Err: err}
	}

	var result FormulaResult

	switch FormulaType(tag) {
	case FormulaTypeString:
		result, err = decodeVariant[StringFormulaResult, FormulaResult](data)
	case FormulaTypeNumber:
		result, err = decodeVariant[NumberFormulaResult, FormulaResult](data)
	case FormulaTypeBoolean:
		result, err = decodeVariant[BooleanFormulaResult, FormulaResult](data)
	case FormulaTypeDate:
		result, err = decodeVariant[DateFormulaResult, FormulaResult](data)
	default:
		return nil, &DecodeError{Field: "formula", Err: fmt.Errorf("%w: formula type %q", ErrUnknownVariant, tag)}
	}

	if err != nil {
		return nil, withField("formula", err)
	}

	return result, nil
}

// RollupType is the type of a computed rollup.
type RollupType string

const (
	RollupTypeNumber      RollupType = "number"
	RollupTypeDate        RollupType = "date"
	RollupTypeArray       RollupType = "array"
	RollupTypeIncomplete  RollupType = "incomplete"
	RollupTypeUnsupported RollupType = "unsupported"
)

// RollupResult is the computed value of a rollup property.
type RollupResult interface {
	Type() RollupType
}

// NumberRollupResult represents a rollup aggregated to a number.
type NumberRollupResult struct {
	Number   *float64       `json:"number"`
	Function RollupFunction `json:"function"`
}

// DateRollupResult represents a rollup aggregated to a date.
type DateRollupResult struct {
	Date     *DateValue     `json:"date"`
	Function RollupFunction `json:"function"`
}

// ArrayRollupResult represents a rollup that shows the original values.
type ArrayRollupResult struct {
	Array    PropertyValues `json:"array"`
	Function RollupFunction `json:"function"`
}

// UnsupportedRollupResult keeps incomplete, unsupported or unknown rollups.
type UnsupportedRollupResult struct {
	RollupType RollupType
	Raw        json.RawMessage
}

// Type implements RollupResult.
func (NumberRollupResult) Type() RollupType        { return RollupTypeNumber }
func (DateRollupResult) Type() RollupType          { return RollupTypeDate }
func (ArrayRollupResult) Type() RollupType         { return RollupTypeArray }
func (r UnsupportedRollupResult) Type() RollupType { return r.RollupType }

func (r NumberRollupResult) MarshalJSON() ([]byte, error) {
	type plain NumberRollupResult

	return marshalTagged(typeTag, string(r.Type()), plain(r))
}

func (r DateRollupResult) MarshalJSON() ([]byte, error) {
	type plain DateRollupResult

	return marshalTagged(typeTag, string(r.Type()), plain(r))
}

func (r ArrayRollupResult) MarshalJSON() ([]byte, error) {
	type plain ArrayRollupResult

	return marshalTagged(typeTag, string(r.Type()), plain(r))
}

func (r UnsupportedRollupResult) MarshalJSON() ([]byte, error) {
	return r.Raw, nil
}

// DecodeRollupResult decodes a rollup result.
func DecodeRollupResult(data []byte) (RollupResult, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, &DecodeError{Field: "rollup", Err: err}
	}

	var result RollupResult

	switch RollupType(tag) {
	case RollupTypeNumber:
		result, err = decodeVariant[NumberRollupResult, RollupResult](data)
	case RollupTypeDate:
		result, err = decodeVariant[DateRollupResult, RollupResult](data)
	case RollupTypeArray:
		result, err = decodeVariant[ArrayRollupResult, RollupResult](data)
		if errors.As(err, new(*DecodeError)) {
			err = withField("array", err)
		}
	default:
		return UnsupportedRollupResult{RollupType: RollupType(tag), Raw: rawCopy(data)}, nil
	}

	if err != nil {
		return nil, withField("rollup", err)
	}

	return result, nil
}

// Properties are the values of a page keyed by property name.
type Properties map[string]PropertyValue

// Title returns the plain text of the title property, if the page has one.
func (p Properties) Title() (string, bool) {
	for _, value := range p {
		if title, ok := value.(TitlePropertyValue); ok {
			return title.Title.PlainText(), true
		}
	}

	return "", false
}

func (p Properties) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]PropertyValue(p))
}

func (p *Properties) UnmarshalJSON(data []byte) error {
	var raws map[string]json.RawMessage

	err := json.Unmarshal(data, &raws)
	if err != nil {
		return err
	}

	values := make(Properties, len(raws))

	for name, raw := range raws {
		value, err := DecodePropertyValue(raw)
		if err != nil {
			return withField("properties."+name, err)
		}

		values[name] = value
	}

	*p = values

	return nil
}
