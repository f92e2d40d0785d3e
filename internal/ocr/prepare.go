package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// binarizeLevel is the grayscale cutoff for pre-OCR binarization: intensities
// above it become white, the rest black.
const binarizeLevel = 110

// Binarize converts an image to a black-and-white version suitable for
// Tesseract: grayscale conversion followed by a fixed-level threshold.
// The input image is not modified.
func Binarize(img image.Image) *image.Gray {
	return segment.Threshold(effect.Grayscale(img), binarizeLevel)
}

// SaveTempPNG writes an image to a temporary PNG file and returns its path.
//
// Tesseract reads from a file path, so in-memory images are staged through
// the system temp directory. The caller removes the file with os.Remove when
// done.
func SaveTempPNG(img image.Image, prefix string) (string, error) {
	f, err := os.CreateTemp("", prefix+"-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return path, nil
}
