package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
)

// Load reads and decodes an image file from disk.
//
// Supported formats are PNG, JPEG, and GIF. The concrete type of the returned
// image depends on the source format and color model (e.g., *image.YCbCr for
// JPEG input).
//
// A missing or unreadable file and an undecodable file both return a wrapped
// error describing the failure.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return img, nil
}

// Save encodes an image to disk, choosing the format from the file extension.
//
// quality applies to JPEG output only (1-100); PNG and GIF ignore it. The
// parent directory must already exist.
func Save(path string, img image.Image, quality int) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// Dimensions returns the width and height of an image in pixels.
func Dimensions(img image.Image) (width, height int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
