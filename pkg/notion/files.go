package notion

import "time"

// FileType tells where a file is hosted.
type FileType string

const (
	FileTypeFile     FileType = "file"
	FileTypeExternal FileType = "external"
)

// InternalFile is a file hosted by Notion. The URL expires at ExpiryTime.
type InternalFile struct {
	URL        string    `json:"url"`
	ExpiryTime time.Time `json:"expiry_time"`
}

// ExternalFile is a file hosted elsewhere.
type ExternalFile struct {
	URL string `json:"url"`
}

// FileObject is a Notion file reference. Exactly one of File and External
// is set, matching Type.
type FileObject struct {
	Type     FileType      `json:"type"`
	File     *InternalFile `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

// URL returns the address of the file regardless of where it is hosted.
func (f FileObject) URL() string {
	switch {
	case f.File != nil:
		return f.File.URL
	case f.External != nil:
		return f.External.URL
	default:
		return ""
	}
}

// NewExternalFile references a file by URL.
func NewExternalFile(url string) FileObject {
	return FileObject{Type: FileTypeExternal, External: &ExternalFile{URL: url}}
}

// IconType tells what kind of icon a page, database or callout carries.
type IconType string

const (
	IconTypeEmoji    IconType = "emoji"
	IconTypeFile     IconType = "file"
	IconTypeExternal IconType = "external"
)

// Icon is an emoji or a file. Exactly one of Emoji, File and External is set.
type Icon struct {
	Type     IconType      `json:"type"`
	Emoji    *string       `json:"emoji,omitempty"`
	File     *InternalFile `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

// NewEmojiIcon returns an emoji icon.
func NewEmojiIcon(emoji string) *Icon {
	return &Icon{Type: IconTypeEmoji, Emoji: &emoji}
}

// FileReference is an entry of a files property value.
type FileReference struct {
	Name string `json:"name"`
	FileObject
}
