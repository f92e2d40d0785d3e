package ocr

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

func TestBinarize_SplitsAroundCutoff(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{40, 40, 40, 255})    // engraved letter: below cutoff
	img.SetNRGBA(1, 0, color.NRGBA{200, 200, 200, 255}) // stone ground: above cutoff

	binary := Binarize(img)

	if got := binary.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("dark pixel: got %d, want 0", got)
	}
	if got := binary.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("light pixel: got %d, want 255", got)
	}
}

func TestBinarize_OutputIsBinary(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(x * 16)
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}

	binary := Binarize(img)
	for i, v := range binary.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("non-binary value %d at offset %d", v, i)
		}
	}
}

func TestSaveTempPNG_RoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 12, 7))

	path, err := SaveTempPNG(img, "letterscan-test")
	if err != nil {
		t.Fatalf("SaveTempPNG failed: %v", err)
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("temp file not readable: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("temp file is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 12 || decoded.Bounds().Dy() != 7 {
		t.Errorf("dimensions: got %dx%d, want 12x7",
			decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}
