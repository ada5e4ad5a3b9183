package editor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Compositor bakes the destructive geometric transforms — crop, rotation,
// and mirroring — into a new raster buffer. Color adjustments are never part
// of this step; they live in the preview layer only.
type Compositor interface {
	Composite(src image.Image, crop image.Rectangle, rotationDegrees int, flipH, flipV bool) (*image.NRGBA, error)
}

type compositor struct{}

// NewCompositor returns the standard compositor implementation.
func NewCompositor() Compositor {
	return compositor{}
}

// Composite renders the crop rectangle of src into a new buffer, applying
// mirroring first and rotation second. That ordering reproduces a transform
// stack of translate-to-center, rotate, flip-scale, translate-back, draw:
// the scale sits closest to the draw call, so pixels are flipped before they
// are rotated.
//
// Rotation must be a multiple of 90 degrees, clockwise positive; accumulated
// values are normalized modulo 360 before being applied. Odd multiples of 90
// swap the output buffer's width and height.
func (compositor) Composite(src image.Image, crop image.Rectangle, rotationDegrees int, flipH, flipV bool) (*image.NRGBA, error) {
	if rotationDegrees%90 != 0 {
		return nil, fmt.Errorf("rotation must be a multiple of 90 degrees, got %d", rotationDegrees)
	}
	if crop.Empty() {
		return nil, fmt.Errorf("%w: empty crop rectangle", ErrDrawSurface)
	}
	if !crop.In(src.Bounds()) {
		return nil, fmt.Errorf("%w: crop %v outside source bounds %v", ErrDrawSurface, crop, src.Bounds())
	}

	out := imaging.Crop(src, crop)
	if flipH {
		out = imaging.FlipH(out)
	}
	if flipV {
		out = imaging.FlipV(out)
	}

	// imaging rotates counter-clockwise; our convention is clockwise
	// positive, so the cases are mirrored.
	switch NormalizeRotation(rotationDegrees) {
	case 90:
		out = imaging.Rotate270(out)
	case 180:
		out = imaging.Rotate180(out)
	case 270:
		out = imaging.Rotate90(out)
	}

	return out, nil
}

// NormalizeRotation reduces an accumulated signed rotation to [0, 360).
// Rotation state grows without bound across a long editing session; the
// transform only ever needs the residue.
func NormalizeRotation(degrees int) int {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return d
}
