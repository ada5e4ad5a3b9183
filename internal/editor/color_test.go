package editor

import (
	"image"
	"image/color"
	"testing"
)

func TestSampleColor(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name    string
		x, y    int
		wantHex string
	}{
		{"top-left red", 10, 10, "#ff0000"},
		{"top-right green", 90, 10, "#00ff00"},
		{"bottom-left blue", 10, 90, "#0000ff"},
		{"bottom-right white", 90, 90, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample, err := SampleColor(img, tt.x, tt.y)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if sample.Hex != tt.wantHex {
				t.Errorf("hex: got %s, want %s", sample.Hex, tt.wantHex)
			}
			if sample.A != 255 {
				t.Errorf("alpha: got %d, want 255", sample.A)
			}
		})
	}
}

func TestSampleColor_HSL(t *testing.T) {
	img := createSolidImage(4, 4, color.RGBA{0, 255, 0, 255})

	sample, err := SampleColor(img, 2, 2)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if sample.H != 120 {
		t.Errorf("hue: got %.2f, want 120", sample.H)
	}
	if sample.S != 1 {
		t.Errorf("saturation: got %.2f, want 1", sample.S)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createSolidImage(10, 10, redRGBA)

	coords := [][2]int{{-1, 5}, {5, -1}, {10, 5}, {5, 10}, {100, 100}}
	for _, c := range coords {
		if _, err := SampleColor(img, c[0], c[1]); err == nil {
			t.Errorf("coordinates (%d,%d) should be rejected", c[0], c[1])
		}
	}
}

func TestSampleColor_TransparentPixel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	sample, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if sample.A != 0 {
		t.Errorf("alpha: got %d, want 0", sample.A)
	}
	// HSL is undefined for a fully transparent pixel; it stays zeroed.
	if sample.H != 0 || sample.S != 0 || sample.L != 0 {
		t.Errorf("HSL for transparent pixel: got (%.2f, %.2f, %.2f)", sample.H, sample.S, sample.L)
	}
}
