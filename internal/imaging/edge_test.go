package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestDetectEdges_Dimensions(t *testing.T) {
	img := createSplitImage(64, 48, color.NRGBA{0, 0, 0, 255}, color.NRGBA{255, 255, 255, 255})

	edges := DetectEdges(img, Thresholds{Low: 50, High: 150})

	if edges.Bounds().Dx() != 64 || edges.Bounds().Dy() != 48 {
		t.Errorf("edge map dimensions: got %dx%d, want 64x48",
			edges.Bounds().Dx(), edges.Bounds().Dy())
	}
}

func TestDetectEdges_UniformImageHasNoEdges(t *testing.T) {
	img := createUniformImage(50, 50, color.NRGBA{128, 128, 128, 255})

	th, err := EstimateThresholds(img, 0.33)
	if err != nil {
		t.Fatalf("EstimateThresholds failed: %v", err)
	}
	edges := DetectEdges(img, th)

	for i, v := range edges.Pix {
		if v != 0 {
			t.Fatalf("uniform image produced an edge pixel at offset %d", i)
		}
	}
}

func TestDetectEdges_StrongVerticalEdge(t *testing.T) {
	img := createSplitImage(100, 100, color.NRGBA{0, 0, 0, 255}, color.NRGBA{255, 255, 255, 255})

	edges := DetectEdges(img, Thresholds{Low: 50, High: 150})

	// The step sits at x=50; the detected edge must land within a few
	// pixels of it after blurring.
	found := false
	for x := 46; x <= 54 && !found; x++ {
		if edges.Pix[edges.PixOffset(x, 50)] == 255 {
			found = true
		}
	}
	if !found {
		t.Error("strong vertical edge was not detected near x=50")
	}
}

func TestDetectEdges_BinaryOutput(t *testing.T) {
	img := createGlyphImage(80, 80)

	edges := DetectEdges(img, Thresholds{Low: 40, High: 120})

	for i, v := range edges.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("edge map is not binary: value %d at offset %d", v, i)
		}
	}
}

func TestDetectEdges_GlyphProducesEdges(t *testing.T) {
	img := createGlyphImage(80, 80)

	th, err := EstimateThresholds(img, 0.33)
	if err != nil {
		t.Fatalf("EstimateThresholds failed: %v", err)
	}
	edges := DetectEdges(img, th)

	count := 0
	for _, v := range edges.Pix {
		if v == 255 {
			count++
		}
	}
	if count == 0 {
		t.Error("dark glyph on light ground produced no edge pixels")
	}
}

func TestDetectEdges_SmallImage(t *testing.T) {
	// Degenerate sizes must not panic in the convolution border handling.
	for _, size := range []int{1, 2, 5} {
		img := createUniformImage(size, size, color.NRGBA{128, 128, 128, 255})
		edges := DetectEdges(img, Thresholds{Low: 50, High: 150})
		if edges.Bounds().Dx() != size || edges.Bounds().Dy() != size {
			t.Errorf("size %d: got %dx%d edge map", size, edges.Bounds().Dx(), edges.Bounds().Dy())
		}
	}
}

// createGlyphImage draws a dark block letter shape on a light background,
// roughly how an engraved letter photographs.
func createGlyphImage(width, height int) *image.NRGBA {
	img := createUniformImage(width, height, color.NRGBA{210, 210, 210, 255})
	dark := color.NRGBA{40, 40, 40, 255}

	// A crude "I": vertical bar with serifs.
	for y := height / 4; y < 3*height/4; y++ {
		for x := width/2 - 3; x <= width/2+3; x++ {
			img.SetNRGBA(x, y, dark)
		}
	}
	for x := width/2 - 10; x <= width/2+10; x++ {
		for dy := 0; dy < 4; dy++ {
			img.SetNRGBA(x, height/4+dy, dark)
			img.SetNRGBA(x, 3*height/4-1-dy, dark)
		}
	}
	return img
}
