package editor

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
)

// jpegQuality is the quality used when re-encoding JPEG sources.
const jpegQuality = 95

// Encoder serializes a composited raster buffer back into a binary asset of
// the source's MIME type.
type Encoder interface {
	Encode(img image.Image, mimeType string) ([]byte, error)
}

type encoder struct{}

// NewEncoder returns the standard encoder implementation.
func NewEncoder() Encoder {
	return encoder{}
}

// Encode serializes img as the given MIME type.
//
// Supported types are image/png, image/jpeg, and image/gif. Any other type
// (including image/webp, which is decode-only) fails with ErrEncoding, as
// does serialization that yields no bytes. No partial output is ever
// returned.
func (encoder) Encode(img image.Image, mimeType string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch mimeType {
	case "image/png":
		err = png.Encode(&buf, img)
	case "image/jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case "image/gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrEncoding, mimeType)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if buf.Len() == 0 {
		return nil, ErrEncoding
	}

	return buf.Bytes(), nil
}
