package notion_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

func TestRichTexts_Decode(t *testing.T) {
	t.Parallel()

	body := `[
		{"type": "text", "text": {"content": "Hello ", "link": null}, "plain_text": "Hello ",
		 "annotations": {"bold": true, "color": "red"}},
		{"type": "mention", "mention": {"type": "user", "user": {"object": "user", "id": "u-1", "type": "person", "name": "Ada", "person": {}}}, "plain_text": "@Ada"},
		{"type": "mention", "mention": {"type": "page", "page": {"id": "p-1"}}, "plain_text": "Roadmap"},
		{"type": "mention", "mention": {"type": "template_mention", "template_mention": {}}, "plain_text": "@today"},
		{"type": "equation", "equation": {"expression": "e=mc^2"}, "plain_text": "e=mc^2"},
		{"type": "sparkle", "sparkle": {}, "plain_text": "*"}
	]`

	var texts notion.RichTexts

	err := json.Unmarshal([]byte(body), &texts)
	require.NoError(t, err)
	require.Len(t, texts, 6)

	assert.Equal(t, "Hello @AdaRoadmap@todaye=mc^2*", texts.PlainText())

	text, ok := texts[0].(notion.RichTextText)
	require.True(t, ok)
	assert.Equal(t, "Hello ", text.Text.Content)
	require.NotNil(t, text.Annotations)
	assert.True(t, text.Annotations.Bold)

	userMention, ok := texts[1].(notion.RichTextMention)
	require.True(t, ok)

	user, ok := userMention.Mention.(notion.UserMention)
	require.True(t, ok)
	assert.IsType(t, notion.Person{}, user.User)
	assert.Equal(t, "Ada", user.User.DisplayName())

	pageMention, ok := texts[2].(notion.RichTextMention).Mention.(notion.PageMention)
	require.True(t, ok)
	assert.Equal(t, "p-1", pageMention.Page.ID.Value())

	unknownMention, ok := texts[3].(notion.RichTextMention).Mention.(notion.UnknownMention)
	require.True(t, ok)
	assert.Equal(t, notion.MentionType("template_mention"), unknownMention.Type())

	assert.Equal(t, notion.RichTextTypeEquation, texts[4].Type())

	unknown, ok := texts[5].(notion.RichTextUnknown)
	require.True(t, ok)
	assert.Equal(t, notion.RichTextType("sparkle"), unknown.Type())
	assert.Equal(t, "*", unknown.PlainText())
}

func TestRichTexts_Encode(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(notion.RichTexts{notion.NewRichText("Hi")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type": "text", "plain_text": "Hi", "text": {"content": "Hi"}}]`, string(data))

	data, err = json.Marshal(notion.RichTexts(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRichTexts_UnknownKeepsRaw(t *testing.T) {
	t.Parallel()

	raw := `[{"type": "sparkle", "sparkle": {"power": 9}, "plain_text": "*"}]`

	var texts notion.RichTexts

	require.NoError(t, json.Unmarshal([]byte(raw), &texts))

	data, err := json.Marshal(texts)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(data))
}
