package editor

import (
	"fmt"
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorSample is the color under a preview cursor position, in the formats
// the editor UI consumes.
type ColorSample struct {
	Hex string `json:"hex"` // "#rrggbb", alpha excluded
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	A   uint8  `json:"a"`

	// HSL representation, for the adjustment sliders.
	H float64 `json:"h"` // 0-360 degrees
	S float64 `json:"s"` // 0-1
	L float64 `json:"l"` // 0-1
}

// SampleColor extracts the color at pixel (x, y) of img. Coordinates are
// 0-based with the origin at the top-left; out-of-bounds coordinates are an
// error.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, bounds)
	}

	r, g, b, a := img.At(x, y).RGBA()
	sample := &ColorSample{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
	sample.Hex = fmt.Sprintf("#%02x%02x%02x", sample.R, sample.G, sample.B)

	// MakeColor fails on fully transparent pixels; HSL stays zero there.
	if c, ok := colorful.MakeColor(img.At(x, y)); ok {
		sample.H, sample.S, sample.L = c.Hsl()
	}

	return sample, nil
}
