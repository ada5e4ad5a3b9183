package editor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

var redRGBA = color.RGBA{255, 0, 0, 255}

// createSolidImage builds a w x h image filled with a single color.
func createSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage builds a w x h image with distinct quadrant colors:
// top-left red, top-right green, bottom-left blue, bottom-right white.
func createPatternImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.RGBA
			switch {
			case x < w/2 && y < h/2:
				c = color.RGBA{255, 0, 0, 255}
			case x >= w/2 && y < h/2:
				c = color.RGBA{0, 255, 0, 255}
			case x < w/2 && y >= h/2:
				c = color.RGBA{0, 0, 255, 255}
			default:
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// encodePNG serializes an image for use as a source asset in tests.
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

// patternAsset builds a PNG source asset with the quadrant pattern.
func patternAsset(t *testing.T, w, h int) *SourceAsset {
	t.Helper()
	return &SourceAsset{
		Data:     encodePNG(t, createPatternImage(w, h)),
		MimeType: "image/png",
		Filename: "pattern.png",
	}
}

// pixelAt returns the 8-bit RGB components at (x, y).
func pixelAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
