package editor

import (
	"fmt"
	"image"
	"math"
)

// CropSelection is the user's crop frame as the UI sees it: a normalized
// offset within the displayed image and a zoom factor.
//
// X and Y range over [0,1] where 0 places the frame at the left/top edge and
// 1 at the right/bottom edge. Zoom is >= 1; callers clamp it to [1, 3]
// before it reaches this package.
type CropSelection struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// Viewport is the size, in display pixels, at which the source image is
// rendered while the crop frame is interactive.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AspectRatio is the fixed width:height ratio of the crop frame.
type AspectRatio struct {
	W int `json:"w"`
	H int `json:"h"`
}

// DefaultAspect is the crop frame ratio used when the caller does not
// configure one.
var DefaultAspect = AspectRatio{W: 4, H: 3}

// Value returns the ratio as width divided by height.
func (r AspectRatio) Value() float64 {
	return float64(r.W) / float64(r.H)
}

// CropRegion is a resolved crop rectangle in source pixel coordinates.
type CropRegion struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the region to a standard image.Rectangle.
func (r CropRegion) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// ResolveCrop computes the source-pixel rectangle covered by the visible
// crop frame.
//
// The frame is the largest rectangle of the given aspect ratio that fits in
// the viewport once it is divided by the zoom factor; the normalized offsets
// position it within the remaining slack. The result is always fully
// contained in [0, srcWidth) x [0, srcHeight): if rounding or floating-point
// drift pushes the naive rectangle past an edge, it is clamped inward.
//
// ResolveCrop is pure; identical inputs produce identical rectangles.
func ResolveCrop(sel CropSelection, view Viewport, srcWidth, srcHeight int, aspect AspectRatio) (image.Rectangle, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid source dimensions %dx%d", srcWidth, srcHeight)
	}
	if view.Width <= 0 || view.Height <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid viewport %dx%d", view.Width, view.Height)
	}
	if sel.Zoom < 1 {
		return image.Rectangle{}, fmt.Errorf("zoom %.3f below minimum 1.0", sel.Zoom)
	}
	if aspect.W <= 0 || aspect.H <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid aspect ratio %d:%d", aspect.W, aspect.H)
	}

	// Frame size in display pixels: the aspect-constrained rectangle that
	// fits within the viewport shrunk by the zoom factor.
	frameW := float64(view.Width) / sel.Zoom
	frameH := frameW / aspect.Value()
	if maxH := float64(view.Height) / sel.Zoom; frameH > maxH {
		frameH = maxH
		frameW = frameH * aspect.Value()
	}

	offX := clamp01(sel.X) * (float64(view.Width) - frameW)
	offY := clamp01(sel.Y) * (float64(view.Height) - frameH)

	// Map from display space into source pixel space.
	scaleX := float64(srcWidth) / float64(view.Width)
	scaleY := float64(srcHeight) / float64(view.Height)

	x := int(math.Round(offX * scaleX))
	y := int(math.Round(offY * scaleY))
	w := int(math.Round(frameW * scaleX))
	h := int(math.Round(frameH * scaleY))

	// Clamp inward so the rectangle never escapes the source bounds.
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if x > srcWidth-1 {
		x = srcWidth - 1
	}
	if y > srcHeight-1 {
		y = srcHeight - 1
	}
	if x+w > srcWidth {
		w = srcWidth - x
	}
	if y+h > srcHeight {
		h = srcHeight - y
	}

	return image.Rect(x, y, x+w, y+h), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampZoom confines a zoom factor to the range the UI slider exposes.
func clampZoom(z float64) float64 {
	if z < 1 {
		return 1
	}
	if z > 3 {
		return 3
	}
	return z
}
