package notion

import (
	"encoding/json"
	"sort"
)

// PropertyType is the tag shared by property configurations and values.
type PropertyType string

// Property types.
const (
	PropertyTypeTitle          PropertyType = "title"
	PropertyTypeRichText       PropertyType = "rich_text"
	PropertyTypeNumber         PropertyType = "number"
	PropertyTypeSelect         PropertyType = "select"
	PropertyTypeStatus         PropertyType = "status"
	PropertyTypeMultiSelect    PropertyType = "multi_select"
	PropertyTypeDate           PropertyType = "date"
	PropertyTypePeople         PropertyType = "people"
	PropertyTypeFiles          PropertyType = "files"
	PropertyTypeCheckbox       PropertyType = "checkbox"
	PropertyTypeURL            PropertyType = "url"
	PropertyTypeEmail          PropertyType = "email"
	PropertyTypePhoneNumber    PropertyType = "phone_number"
	PropertyTypeFormula        PropertyType = "formula"
	PropertyTypeRelation       PropertyType = "relation"
	PropertyTypeRollup         PropertyType = "rollup"
	PropertyTypeCreatedTime    PropertyType = "created_time"
	PropertyTypeCreatedBy      PropertyType = "created_by"
	PropertyTypeLastEditedTime PropertyType = "last_edited_time"
	PropertyTypeLastEditedBy   PropertyType = "last_edited_by"
	PropertyTypeUniqueID       PropertyType = "unique_id"
)

// NumberFormat controls how a number property is displayed.
type NumberFormat string

const (
	NumberFormatNumber           NumberFormat = "number"
	NumberFormatNumberWithCommas NumberFormat = "number_with_commas"
	NumberFormatPercent          NumberFormat = "percent"
	NumberFormatDollar           NumberFormat = "dollar"
	NumberFormatEuro             NumberFormat = "euro"
	NumberFormatPound            NumberFormat = "pound"
	NumberFormatYen              NumberFormat = "yen"
	NumberFormatRuble            NumberFormat = "ruble"
	NumberFormatRupee            NumberFormat = "rupee"
	NumberFormatWon              NumberFormat = "won"
	NumberFormatYuan             NumberFormat = "yuan"
)

// Color is the color of a select option or status group.
type Color string

const (
	ColorDefault Color = "default"
	ColorGray    Color = "gray"
	ColorBrown   Color = "brown"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
	ColorRed     Color = "red"
)

// RollupFunction is the aggregation a rollup property applies.
type RollupFunction string

const (
	RollupCountAll          RollupFunction = "count_all"
	RollupCountValues       RollupFunction = "count_values"
	RollupCountUniqueValues RollupFunction = "count_unique_values"
	RollupCountEmpty        RollupFunction = "count_empty"
	RollupCountNotEmpty     RollupFunction = "count_not_empty"
	RollupPercentEmpty      RollupFunction = "percent_empty"
	RollupPercentNotEmpty   RollupFunction = "percent_not_empty"
	RollupSum               RollupFunction = "sum"
	RollupAverage           RollupFunction = "average"
	RollupMedian            RollupFunction = "median"
	RollupMin               RollupFunction = "min"
	RollupMax               RollupFunction = "max"
	RollupRange             RollupFunction = "range"
	RollupShowOriginal      RollupFunction = "show_original"
)

// SelectOption is one choice of a select, multi-select or status property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color Color  `json:"color,omitempty"`
}

// EmptyConfig is the payload of property types without settings.
type EmptyConfig struct{}

// NumberConfig represents the settings of a number property.
type NumberConfig struct {
	Format NumberFormat `json:"format"`
}

// SelectConfig holds the options available to select and multi-select properties.
type SelectConfig struct {
	Options []SelectOption `json:"options"`
}

// StatusGroup groups status options, e.g. "To-do", "In progress" and "Complete".
type StatusGroup struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Color     Color    `json:"color"`
	OptionIDs []string `json:"option_ids"`
}

// StatusConfig represents the options and groups of a status property.
type StatusConfig struct {
	Options []SelectOption `json:"options"`
	Groups  []StatusGroup  `json:"groups"`
}

// FormulaConfig represents the expression of a formula property.
type FormulaConfig struct {
	Expression string `json:"expression"`
}

// RelationConfig points at the related database. When the relation is synced
// both ways, the synced fields name its counterpart in the related database.
type RelationConfig struct {
	DatabaseID         DatabaseID  `json:"database_id"`
	Type               string      `json:"type,omitempty"`
	SyncedPropertyName *string     `json:"synced_property_name,omitempty"`
	SyncedPropertyID   *PropertyID `json:"synced_property_id,omitempty"`
}

// RollupConfig represents the relation a rollup follows and the property it aggregates.
type RollupConfig struct {
	RelationPropertyName string         `json:"relation_property_name"`
	RelationPropertyID   PropertyID     `json:"relation_property_id"`
	RollupPropertyName   string         `json:"rollup_property_name"`
	RollupPropertyID     PropertyID     `json:"rollup_property_id"`
	Function             RollupFunction `json:"function"`
}

// UniqueIDConfig represents the settings of a unique ID property.
type UniqueIDConfig struct {
	Prefix *string `json:"prefix"`
}

// PropertyConfigCommon holds the fields shared by every property configuration.
type PropertyConfigCommon struct {
	ID   PropertyID `json:"id"`
	Name string     `json:"name,omitempty"`
}

// AsID implements AsIdentifier[PropertyID].
func (c PropertyConfigCommon) AsID() PropertyID { return c.ID }

func (c PropertyConfigCommon) propertyConfigCommon() PropertyConfigCommon { return c }

// PropertyConfiguration is one entry of a database schema. Its Type matches
// the PropertyValue found under the same name on the database's pages.
type PropertyConfiguration interface {
	Type() PropertyType
	AsID() PropertyID
	propertyConfigCommon() PropertyConfigCommon
}

// TitlePropertyConfig represents the title column. Every database has exactly one.
type TitlePropertyConfig struct {
	PropertyConfigCommon
	Title EmptyConfig `json:"title"`
}

// RichTextPropertyConfig represents a text property.
type RichTextPropertyConfig struct {
	PropertyConfigCommon
	RichText EmptyConfig `json:"rich_text"`
}

// NumberPropertyConfig represents a number property.
type NumberPropertyConfig struct {
	PropertyConfigCommon
	Number NumberConfig `json:"number"`
}

// SelectPropertyConfig represents a select property.
type SelectPropertyConfig struct {
	PropertyConfigCommon
	Select SelectConfig `json:"select"`
}

// StatusPropertyConfig represents a status property.
type StatusPropertyConfig struct {
	PropertyConfigCommon
	Status StatusConfig `json:"status"`
}

// MultiSelectPropertyConfig represents a multi-select property.
type MultiSelectPropertyConfig struct {
	PropertyConfigCommon
	MultiSelect SelectConfig `json:"multi_select"`
}

// DatePropertyConfig represents a date property.
type DatePropertyConfig struct {
	PropertyConfigCommon
	Date EmptyConfig `json:"date"`
}

// PeoplePropertyConfig represents a people property.
type PeoplePropertyConfig struct {
	PropertyConfigCommon
	People EmptyConfig `json:"people"`
}

// FilesPropertyConfig represents a files and media property.
type FilesPropertyConfig struct {
	PropertyConfigCommon
	Files EmptyConfig `json:"files"`
}

// CheckboxPropertyConfig represents a checkbox property.
type CheckboxPropertyConfig struct {
	PropertyConfigCommon
	Checkbox EmptyConfig `json:"checkbox"`
}

// URLPropertyConfig represents a URL property.
type URLPropertyConfig struct {
	PropertyConfigCommon
	URL EmptyConfig `json:"url"`
}

// EmailPropertyConfig represents an email property.
type EmailPropertyConfig struct {
	PropertyConfigCommon
	Email EmptyConfig `json:"email"`
}

// PhoneNumberPropertyConfig represents a phone number property.
type PhoneNumberPropertyConfig struct {
	PropertyConfigCommon
	PhoneNumber EmptyConfig `json:"phone_number"`
}

// FormulaPropertyConfig represents a formula property.
type FormulaPropertyConfig struct {
	PropertyConfigCommon
	Formula FormulaConfig `json:"formula"`
}

// RelationPropertyConfig represents a relation property.
type RelationPropertyConfig struct {
	PropertyConfigCommon
	Relation RelationConfig `json:"relation"`
}

// RollupPropertyConfig represents a rollup property.
type RollupPropertyConfig struct {
	PropertyConfigCommon
	Rollup RollupConfig `json:"rollup"`
}

// CreatedTimePropertyConfig represents a created time property.
type CreatedTimePropertyConfig struct {
	PropertyConfigCommon
	CreatedTime EmptyConfig `json:"created_time"`
}

// CreatedByPropertyConfig represents a created by property.
type CreatedByPropertyConfig struct {
	PropertyConfigCommon
	CreatedBy EmptyConfig `json:"created_by"`
}

// LastEditedTimePropertyConfig represents a last edited time property.
type LastEditedTimePropertyConfig struct {
	PropertyConfigCommon
	LastEditedTime EmptyConfig `json:"last_edited_time"`
}

// LastEditedByPropertyConfig represents a last edited by property.
type LastEditedByPropertyConfig struct {
	PropertyConfigCommon
	LastEditedBy EmptyConfig `json:"last_edited_by"`
}

// UniqueIDPropertyConfig represents a unique ID property.
type UniqueIDPropertyConfig struct {
	PropertyConfigCommon
	UniqueID UniqueIDConfig `json:"unique_id"`
}

// UnsupportedPropertyConfig keeps a configuration whose type this package
// does not know, such as button or verification properties.
type UnsupportedPropertyConfig struct {
	PropertyConfigCommon
	PropertyType PropertyType
	Raw          json.RawMessage
}

// Type implements PropertyConfiguration.
func (TitlePropertyConfig) Type() PropertyType          { return PropertyTypeTitle }
func (RichTextPropertyConfig) Type() PropertyType       { return PropertyTypeRichText }
func (NumberPropertyConfig) Type() PropertyType         { return PropertyTypeNumber }
func (SelectPropertyConfig) Type() PropertyType         { return PropertyTypeSelect }
func (StatusPropertyConfig) Type() PropertyType         { return PropertyTypeStatus }
func (MultiSelectPropertyConfig) Type() PropertyType    { return PropertyTypeMultiSelect }
func (DatePropertyConfig) Type() PropertyType           { return PropertyTypeDate }
func (PeoplePropertyConfig) Type() PropertyType         { return PropertyTypePeople }
func (FilesPropertyConfig) Type() PropertyType          { return PropertyTypeFiles }
func (CheckboxPropertyConfig) Type() PropertyType       { return PropertyTypeCheckbox }
func (URLPropertyConfig) Type() PropertyType            { return PropertyTypeURL }
func (EmailPropertyConfig) Type() PropertyType          { return PropertyTypeEmail }
func (PhoneNumberPropertyConfig) Type() PropertyType    { return PropertyTypePhoneNumber }
func (FormulaPropertyConfig) Type() PropertyType        { return PropertyTypeFormula }
func (RelationPropertyConfig) Type() PropertyType       { return PropertyTypeRelation }
func (RollupPropertyConfig) Type() PropertyType         { return PropertyTypeRollup }
func (CreatedTimePropertyConfig) Type() PropertyType    { return PropertyTypeCreatedTime }
func (CreatedByPropertyConfig) Type() PropertyType      { return PropertyTypeCreatedBy }
func (LastEditedTimePropertyConfig) Type() PropertyType { return PropertyTypeLastEditedTime }
func (LastEditedByPropertyConfig) Type() PropertyType   { return PropertyTypeLastEditedBy }
func (UniqueIDPropertyConfig) Type() PropertyType       { return PropertyTypeUniqueID }
func (c UnsupportedPropertyConfig) Type() PropertyType  { return c.PropertyType }

func (c TitlePropertyConfig) MarshalJSON() ([]byte, error) {
	type plain TitlePropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c RichTextPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain RichTextPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c NumberPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain NumberPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c SelectPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain SelectPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c StatusPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain StatusPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c MultiSelectPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain MultiSelectPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c DatePropertyConfig) MarshalJSON() ([]byte, error) {
	type plain DatePropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c PeoplePropertyConfig) MarshalJSON() ([]byte, error) {
	type plain PeoplePropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c FilesPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain FilesPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c CheckboxPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain CheckboxPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c URLPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain URLPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c EmailPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain EmailPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c PhoneNumberPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain PhoneNumberPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c FormulaPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain FormulaPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c RelationPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain RelationPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c RollupPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain RollupPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c CreatedTimePropertyConfig) MarshalJSON() ([]byte, error) {
	type plain CreatedTimePropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c CreatedByPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain CreatedByPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c LastEditedTimePropertyConfig) MarshalJSON() ([]byte, error) {
	type plain LastEditedTimePropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c LastEditedByPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain LastEditedByPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c UniqueIDPropertyConfig) MarshalJSON() ([]byte, error) {
	type plain UniqueIDPropertyConfig

	return marshalTagged(typeTag, string(c.Type()), plain(c))
}

func (c UnsupportedPropertyConfig) MarshalJSON() ([]byte, error) {
	return c.Raw, nil
}

var propertyConfigDecoders = map[PropertyType]func([]byte) (PropertyConfiguration, error){
	PropertyTypeTitle:          decodeVariant[TitlePropertyConfig, PropertyConfiguration],
	PropertyTypeRichText:       decodeVariant[RichTextPropertyConfig, PropertyConfiguration],
	PropertyTypeNumber:         decodeVariant[NumberPropertyConfig, PropertyConfiguration],
	PropertyTypeSelect:         decodeVariant[SelectPropertyConfig, PropertyConfiguration],
	PropertyTypeStatus:         decodeVariant[StatusPropertyConfig, PropertyConfiguration],
	PropertyTypeMultiSelect:    decodeVariant[MultiSelectPropertyConfig, PropertyConfiguration],
	PropertyTypeDate:           decodeVariant[DatePropertyConfig, PropertyConfiguration],
	PropertyTypePeople:         decodeVariant[PeoplePropertyConfig, PropertyConfiguration],
	PropertyTypeFiles:          decodeVariant[FilesPropertyConfig, PropertyConfiguration],
	PropertyTypeCheckbox:       decodeVariant[CheckboxPropertyConfig, PropertyConfiguration],
	PropertyTypeURL:            decodeVariant[URLPropertyConfig, PropertyConfiguration],
	PropertyTypeEmail:          decodeVariant[EmailPropertyConfig, PropertyConfiguration],
	PropertyTypePhoneNumber:    decodeVariant[PhoneNumberPropertyConfig, PropertyConfiguration],
	PropertyTypeFormula:        decodeVariant[FormulaPropertyConfig, PropertyConfiguration],
	PropertyTypeRelation:       decodeVariant[RelationPropertyConfig, PropertyConfiguration],
	PropertyTypeRollup:         decodeVariant[RollupPropertyConfig, PropertyConfiguration],
	PropertyTypeCreatedTime:    decodeVariant[CreatedTimePropertyConfig, PropertyConfiguration],
	PropertyTypeCreatedBy:      decodeVariant[CreatedByPropertyConfig, PropertyConfiguration],
	PropertyTypeLastEditedTime: decodeVariant[LastEditedTimePropertyConfig, PropertyConfiguration],
	PropertyTypeLastEditedBy:   decodeVariant[LastEditedByPropertyConfig, PropertyConfiguration],
	PropertyTypeUniqueID:       decodeVariant[UniqueIDPropertyConfig, PropertyConfiguration],
}

// DecodePropertyConfiguration decodes one schema entry. Unknown types decode
// to UnsupportedPropertyConfig.
func DecodePropertyConfiguration(data []byte) (PropertyConfiguration, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, err
	}

	if decode, ok := propertyConfigDecoders[PropertyType(tag)]; ok {
		return decode(data)
	}

	unsupported := UnsupportedPropertyConfig{PropertyType: PropertyType(tag), Raw: rawCopy(data)}

	err = json.Unmarshal(data, &unsupported.PropertyConfigCommon)
	if err != nil {
		return nil, err
	}

	return unsupported, nil
}

// CommonOfPropertyConfiguration returns the shared fields of any configuration.
func CommonOfPropertyConfiguration(c PropertyConfiguration) PropertyConfigCommon {
	return c.propertyConfigCommon()
}

// PropertyConfigurations is a database schema keyed by property name.
type PropertyConfigurations map[string]PropertyConfiguration

// Names returns the property names in lexical order.
func (p PropertyConfigurations) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (p PropertyConfigurations) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]PropertyConfiguration(p))
}

func (p *PropertyConfigurations) UnmarshalJSON(data []byte) error {
	var raws map[string]json.RawMessage

	err := json.Unmarshal(data, &raws)
	if err != nil {
		return err
	}

	configs := make(PropertyConfigurations, len(raws))

	for name, raw := range raws {
		config, err := DecodePropertyConfiguration(raw)
		if err != nil {
			return withField("properties."+name, err)
		}

		configs[name] = config
	}

	*p = configs

	return nil
}
