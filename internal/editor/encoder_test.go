package editor

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestEncode_SupportedTypes(t *testing.T) {
	img := createPatternImage(40, 30)
	enc := NewEncoder()

	tests := []struct {
		mimeType   string
		wantFormat string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpeg"},
		{"image/gif", "gif"},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			data, err := enc.Encode(img, tt.mimeType)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if len(data) == 0 {
				t.Fatal("Encode returned no bytes")
			}

			decoded, format, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("output not decodable: %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format: got %s, want %s", format, tt.wantFormat)
			}
			if decoded.Bounds().Dx() != 40 || decoded.Bounds().Dy() != 30 {
				t.Errorf("dimensions: got %dx%d, want 40x30",
					decoded.Bounds().Dx(), decoded.Bounds().Dy())
			}
		})
	}
}

func TestEncode_UnsupportedType(t *testing.T) {
	img := createSolidImage(10, 10, redRGBA)
	enc := NewEncoder()

	for _, mime := range []string{"image/webp", "image/tiff", "video/mp4", "text/plain", ""} {
		t.Run(mime, func(t *testing.T) {
			_, err := enc.Encode(img, mime)
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("got %v, want ErrEncoding", err)
			}
		})
	}
}
