package field

import (
	"encoding/json"
	"fmt"

	"github.com/mpetrenko/brandsync/internal/client/models"
)

// Codec converts between the value a controller exposes and the content
// persisted in the store. Both sides are strings; a codec's job is
// validation and normalization, not type mapping. Implementations must be
// pure: no I/O, no shared state.
type Codec interface {
	// Encode prepares a controller value for persistence.
	Encode(value string) (string, error)
	// Decode prepares persisted content for display.
	Decode(content string) (string, error)
}

// StringCodec passes values through untouched. It is the default codec
// and serves plain-text fields.
type StringCodec struct{}

func (StringCodec) Encode(value string) (string, error)   { return value, nil }
func (StringCodec) Decode(content string) (string, error) { return content, nil }

// JSONCodec rejects content that is not well-formed JSON. Structured
// fields (avatar lists, settings) use it so a corrupt payload surfaces as
// an error status instead of propagating into the UI.
type JSONCodec struct{}

func (JSONCodec) Encode(value string) (string, error) {
	if !json.Valid([]byte(value)) {
		return "", fmt.Errorf("encode: invalid json payload")
	}
	return value, nil
}

func (JSONCodec) Decode(content string) (string, error) {
	if content == "" {
		return "", nil
	}
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("decode: invalid json payload")
	}
	return content, nil
}

// MarshalAvatars serializes an avatar list into field content.
func MarshalAvatars(avatars []models.Avatar) (string, error) {
	b, err := json.Marshal(avatars)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalAvatars parses field content into an avatar list. Empty
// content yields an empty list.
func UnmarshalAvatars(content string) ([]models.Avatar, error) {
	if content == "" {
		return nil, nil
	}
	var avatars []models.Avatar
	if err := json.Unmarshal([]byte(content), &avatars); err != nil {
		return nil, err
	}
	return avatars, nil
}
