package editor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format decoder (decode only)
)

// Visibility controls who can see the post or message the edited asset is
// attached to. It is copied verbatim into the produced record.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// Valid reports whether v is one of the known visibility values.
func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}

// SourceAsset is the original binary asset selected for editing. It is
// immutable for the lifetime of the session that loaded it.
type SourceAsset struct {
	Data     []byte
	MimeType string
	Filename string
}

// IsImage reports whether the asset is an image and therefore eligible for
// the full crop/rotate/flip pipeline.
func (a *SourceAsset) IsImage() bool {
	return strings.HasPrefix(a.MimeType, "image/")
}

// IsVideo reports whether the asset is a video. Videos are supported on a
// pass-through basis only: they are saved unmodified with their metadata.
func (a *SourceAsset) IsVideo() bool {
	return strings.HasPrefix(a.MimeType, "video/")
}

// Decode loads the asset into a drawable image.
//
// Supported formats are PNG, JPEG, GIF, and WebP (WebP is decode-only; a
// WebP source can be previewed and passed through but not re-encoded).
func (a *SourceAsset) Decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(a.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Metadata is the free-text and visibility information attached to the final
// asset. It is carried alongside the pixels, never burned into them.
type Metadata struct {
	OverlayText string     `json:"overlay_text"`
	Description string     `json:"description"`
	Visibility  Visibility `json:"visibility"`
}

// EditedAsset is the immutable output of a completed save: the final binary
// plus its attached metadata. The caller is responsible for persisting it;
// this package never touches storage.
type EditedAsset struct {
	Data     []byte   `json:"-"`
	MimeType string   `json:"mime_type"`
	Filename string   `json:"filename"`
	Metadata Metadata `json:"metadata"`
}
