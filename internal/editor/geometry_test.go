package editor

import (
	"math"
	"testing"
)

func TestResolveCrop_Containment(t *testing.T) {
	tests := []struct {
		name         string
		sel          CropSelection
		view         Viewport
		srcW, srcH   int
	}{
		{"centered no zoom", CropSelection{X: 0.5, Y: 0.5, Zoom: 1}, Viewport{800, 600}, 1600, 1200},
		{"top-left corner", CropSelection{X: 0, Y: 0, Zoom: 1}, Viewport{800, 600}, 1600, 1200},
		{"bottom-right corner", CropSelection{X: 1, Y: 1, Zoom: 1}, Viewport{800, 600}, 1600, 1200},
		{"max zoom at edge", CropSelection{X: 1, Y: 1, Zoom: 3}, Viewport{800, 600}, 1600, 1200},
		{"tall source", CropSelection{X: 0.5, Y: 1, Zoom: 2}, Viewport{300, 900}, 600, 1800},
		{"wide source", CropSelection{X: 1, Y: 0.5, Zoom: 1.5}, Viewport{1200, 300}, 2400, 600},
		{"tiny source", CropSelection{X: 1, Y: 1, Zoom: 3}, Viewport{10, 10}, 7, 5},
		{"non-integer scale", CropSelection{X: 0.33, Y: 0.77, Zoom: 1.7}, Viewport{640, 480}, 1013, 761},
		{"odd dimensions", CropSelection{X: 1, Y: 1, Zoom: 1}, Viewport{101, 77}, 101, 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, err := ResolveCrop(tt.sel, tt.view, tt.srcW, tt.srcH, DefaultAspect)
			if err != nil {
				t.Fatalf("ResolveCrop failed: %v", err)
			}
			if rect.Min.X < 0 || rect.Min.Y < 0 {
				t.Errorf("origin escapes bounds: %v", rect)
			}
			if rect.Max.X > tt.srcW || rect.Max.Y > tt.srcH {
				t.Errorf("rect %v exceeds source %dx%d", rect, tt.srcW, tt.srcH)
			}
			if rect.Dx() < 1 || rect.Dy() < 1 {
				t.Errorf("degenerate rect: %v", rect)
			}
		})
	}
}

func TestResolveCrop_Idempotent(t *testing.T) {
	sel := CropSelection{X: 0.42, Y: 0.17, Zoom: 2.3}
	view := Viewport{Width: 800, Height: 600}

	first, err := ResolveCrop(sel, view, 3200, 2400, DefaultAspect)
	if err != nil {
		t.Fatalf("ResolveCrop failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ResolveCrop(sel, view, 3200, 2400, DefaultAspect)
		if err != nil {
			t.Fatalf("ResolveCrop failed on repeat %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("not idempotent: got %v, want %v", again, first)
		}
	}
}

func TestResolveCrop_AspectRatio(t *testing.T) {
	// Source and viewport share proportions, so the resolved rectangle
	// should hold the 4:3 frame ratio within rounding error.
	rect, err := ResolveCrop(CropSelection{X: 0.5, Y: 0.5, Zoom: 1}, Viewport{Width: 800, Height: 600}, 1600, 1200, DefaultAspect)
	if err != nil {
		t.Fatalf("ResolveCrop failed: %v", err)
	}

	got := float64(rect.Dx()) / float64(rect.Dy())
	if math.Abs(got-4.0/3.0) > 0.01 {
		t.Errorf("aspect ratio: got %.4f, want %.4f", got, 4.0/3.0)
	}
}

func TestResolveCrop_RejectsZoomBelowOne(t *testing.T) {
	zooms := []float64{0, 0.5, 0.99, -1}
	for _, z := range zooms {
		_, err := ResolveCrop(CropSelection{X: 0.5, Y: 0.5, Zoom: z}, Viewport{800, 600}, 1600, 1200, DefaultAspect)
		if err == nil {
			t.Errorf("zoom %.2f should be rejected", z)
		}
	}
}

func TestResolveCrop_InvalidInputs(t *testing.T) {
	sel := CropSelection{X: 0.5, Y: 0.5, Zoom: 1}

	tests := []struct {
		name       string
		view       Viewport
		srcW, srcH int
		aspect     AspectRatio
	}{
		{"zero source width", Viewport{800, 600}, 0, 1200, DefaultAspect},
		{"zero source height", Viewport{800, 600}, 1600, 0, DefaultAspect},
		{"zero viewport", Viewport{0, 0}, 1600, 1200, DefaultAspect},
		{"zero aspect", Viewport{800, 600}, 1600, 1200, AspectRatio{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveCrop(sel, tt.view, tt.srcW, tt.srcH, tt.aspect); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResolveCrop_OffsetsClamped(t *testing.T) {
	// Out-of-range offsets behave as the nearest edge.
	view := Viewport{Width: 800, Height: 600}
	over, err := ResolveCrop(CropSelection{X: 5, Y: 5, Zoom: 2}, view, 1600, 1200, DefaultAspect)
	if err != nil {
		t.Fatalf("ResolveCrop failed: %v", err)
	}
	edge, err := ResolveCrop(CropSelection{X: 1, Y: 1, Zoom: 2}, view, 1600, 1200, DefaultAspect)
	if err != nil {
		t.Fatalf("ResolveCrop failed: %v", err)
	}
	if over != edge {
		t.Errorf("offset clamping: got %v, want %v", over, edge)
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-270, 90},
		{-360, 0},
		{720, 0},
		{-450, 270},
	}

	for _, tt := range tests {
		if got := NormalizeRotation(tt.in); got != tt.want {
			t.Errorf("NormalizeRotation(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
