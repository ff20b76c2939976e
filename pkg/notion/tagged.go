package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tag fields used by the wire format to discriminate unions.
const (
	typeTag   = "type"
	objectTag = "object"
)

// peekTag reads the discriminator of a tagged document without decoding the rest.
// A missing tag yields an empty string.
func peekTag(data []byte, field string) (string, error) {
	var fields map[string]json.RawMessage

	err := json.Unmarshal(data, &fields)
	if err != nil {
		return "", err
	}

	raw, ok := fields[field]
	if !ok || string(raw) == "null" {
		return "", nil
	}

	var tag string

	err = json.Unmarshal(raw, &tag)
	if err != nil {
		return "", fmt.Errorf("%s tag: %w", field, err)
	}

	return tag, nil
}

// marshalTagged encodes value, which must encode to a JSON object, and
// writes the discriminator as its first member.
func marshalTagged(field, tag string, value any) ([]byte, error) {
	body, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("%w: %s %q does not encode to an object", ErrUnknownVariant, field, tag)
	}

	quotedTag, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	buf.Grow(len(body) + len(field) + len(quotedTag) + 4)
	buf.WriteString(`{"`)
	buf.WriteString(field)
	buf.WriteString(`":`)
	buf.Write(quotedTag)

	if rest := bytes.TrimSpace(body[1:]); len(rest) > 1 {
		buf.WriteByte(',')
		buf.Write(rest)
	} else {
		buf.WriteByte('}')
	}

	return buf.Bytes(), nil
}

// decodeVariant decodes data into the concrete variant V and returns it as
// the union interface U. V must implement U.
func decodeVariant[V any, U any](data []byte) (U, error) {
	var variant V

	err := json.Unmarshal(data, &variant)
	if err != nil {
		var zero U

		return zero, err
	}

	union, _ := any(variant).(U)

	return union, nil
}

// rawCopy keeps an independent copy of a document for catch-all variants.
func rawCopy(data []byte) json.RawMessage {
	return append(json.RawMessage(nil), data...)
}
