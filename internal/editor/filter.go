package editor

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/adjust"
)

// PreviewState describes how a client should render the current adjustments
// over the unmodified source: a CSS-style filter list for the color
// adjustments and a transform list for the pending geometry.
//
// The filter part is display-only and is never baked into the saved asset;
// the transform part previews what the compositor will bake in on save.
type PreviewState struct {
	Filter    string `json:"filter"`
	Transform string `json:"transform"`
}

// BuildPreview maps the session's adjustment values into a PreviewState.
// It is recomputed on every change; there is no caching.
func BuildPreview(adj Adjustments) PreviewState {
	filter := fmt.Sprintf("brightness(%s%%) contrast(%s%%) saturate(%s%%)",
		trimFloat(adj.Brightness), trimFloat(adj.Contrast), trimFloat(adj.Saturation))

	var parts []string
	if rot := NormalizeRotation(adj.RotationDegrees); rot != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%ddeg)", rot))
	}
	if adj.FlipHorizontal {
		parts = append(parts, "scaleX(-1)")
	}
	if adj.FlipVertical {
		parts = append(parts, "scaleY(-1)")
	}
	transform := "none"
	if len(parts) > 0 {
		transform = strings.Join(parts, " ")
	}

	return PreviewState{Filter: filter, Transform: transform}
}

// RenderPreview applies the display-only color adjustments to a copy of the
// source. The result is for preview rendering; the save path never calls
// this.
//
// Percentages map onto bild's [-1, 1] change scale, where 100% is identity.
func RenderPreview(src image.Image, adj Adjustments) *image.RGBA {
	out := adjust.Brightness(src, (adj.Brightness-100)/100)
	out = adjust.Contrast(out, (adj.Contrast-100)/100)
	out = adjust.Saturation(out, (adj.Saturation-100)/100)
	return out
}

// trimFloat formats a percentage without trailing zeros (100, 87.5).
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
