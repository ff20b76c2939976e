package notion

import (
	"encoding/json"
)

// UserType is the discriminator of a user.
type UserType string

const (
	UserTypePerson UserType = "person"
	UserTypeBot    UserType = "bot"
)

// UserCommon holds the fields shared by every user. Partial user objects,
// such as the created_by field of a block, carry only the ID.
type UserCommon struct {
	ID        UserID  `json:"id"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// AsID implements AsIdentifier[UserID].
func (u UserCommon) AsID() UserID { return u.ID }

// DisplayName returns the name of the user or its ID when the name is unknown.
func (u UserCommon) DisplayName() string {
	if u.Name != nil {
		return *u.Name
	}

	return u.ID.Value()
}

func (u UserCommon) userCommon() UserCommon { return u }

// User is a Notion user. The concrete type is Person, Bot or PartialUser.
type User interface {
	AsID() UserID
	DisplayName() string
	userCommon() UserCommon
}

// CommonOfUser returns the shared fields of any user.
func CommonOfUser(u User) UserCommon {
	return u.userCommon()
}

// PersonDetails is the payload of a person user. Email is only present when
// the integration has the user information capability.
type PersonDetails struct {
	Email string `json:"email,omitempty"`
}

// Person is a human member of a workspace.
type Person struct {
	UserCommon
	Person PersonDetails `json:"person"`
}

func (u Person) MarshalJSON() ([]byte, error) {
	type plain Person

	return marshalTagged(typeTag, string(UserTypePerson), plain(u))
}

// BotOwnerType tells who owns a bot.
type BotOwnerType string

const (
	BotOwnerWorkspace BotOwnerType = "workspace"
	BotOwnerUser      BotOwnerType = "user"
)

// BotOwner describes the owner of a bot. Workspace is set for internal
// integrations, User for public ones.
type BotOwner struct {
	Type      BotOwnerType `json:"type"`
	Workspace bool         `json:"workspace,omitempty"`
	User      *UserCommon  `json:"user,omitempty"`
}

// BotDetails is the payload of a bot user.
type BotDetails struct {
	Owner         *BotOwner `json:"owner,omitempty"`
	WorkspaceName *string   `json:"workspace_name,omitempty"`
}

// Bot is an integration user.
type Bot struct {
	UserCommon
	Bot BotDetails `json:"bot"`
}

func (u Bot) MarshalJSON() ([]byte, error) {
	type plain Bot

	return marshalTagged(typeTag, string(UserTypeBot), plain(u))
}

// PartialUser is a user reference without a type, as returned in the
// created_by and last_edited_by fields and in people property values of
// users the integration cannot see.
type PartialUser struct {
	UserCommon
}

// DecodeUser decodes a user object. Documents without a known type decode
// to PartialUser.
func DecodeUser(data []byte) (User, error) {
	tag, err := peekTag(data, typeTag)
	if err != nil {
		return nil, err
	}

	switch UserType(tag) {
	case UserTypePerson:
		return decodeVariant[Person, User](data)
	case UserTypeBot:
		return decodeVariant[Bot, User](data)
	default:
		return decodeVariant[PartialUser, User](data)
	}
}

// Users is a sequence of users as it appears on the wire.
type Users []User

func (u Users) MarshalJSON() ([]byte, error) {
	if u == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]User(u))
}

func (u *Users) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage

	err := json.Unmarshal(data, &raws)
	if err != nil {
		return err
	}

	if len(raws) == 0 {
		*u = nil

		return nil
	}

	users := make(Users, 0, len(raws))

	for _, raw := range raws {
		user, err := DecodeUser(raw)
		if err != nil {
			return err
		}

		users = append(users, user)
	}

	*u = users

	return nil
}
