package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ROI is a rectangular region of interest given as two opposing corners.
// (X1,Y1) is the inclusive top-left corner and (X2,Y2) the exclusive
// bottom-right corner, so the region spans (X2-X1) x (Y2-Y1) pixels.
type ROI struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the ROI as a standard image.Rectangle.
func (r ROI) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Validate checks the ROI against the given image bounds.
//
// The region must have positive area (X1 < X2 and Y1 < Y2) and lie entirely
// within bounds. Violations return an error wrapping ErrInvalidROI.
func (r ROI) Validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("%w: region (%d,%d)-(%d,%d) has no area", ErrInvalidROI, r.X1, r.Y1, r.X2, r.Y2)
	}
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return fmt.Errorf("%w: region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			ErrInvalidROI, r.X1, r.Y1, r.X2, r.Y2,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// Mark draws the ROI rectangle onto a clone of the image and returns the clone.
//
// The stroke grows outward from the region boundary: the innermost ring sits
// on the row/column immediately outside the crop region, so no pixel inside
// the eventual crop is ever overwritten. Rings extending past the image edge
// are clipped. The source image is not modified.
func Mark(img image.Image, r ROI, stroke color.NRGBA, width int) (*image.NRGBA, error) {
	if err := r.Validate(img.Bounds()); err != nil {
		return nil, err
	}
	if width < 1 {
		width = 1
	}

	marked := imaging.Clone(img)
	// Clone normalizes bounds to start at (0,0); shift the ROI accordingly.
	off := img.Bounds().Min
	rect := image.Rect(r.X1-off.X, r.Y1-off.Y, r.X2-off.X, r.Y2-off.Y)

	for i := 1; i <= width; i++ {
		ring := image.Rect(rect.Min.X-i, rect.Min.Y-i, rect.Max.X+i, rect.Max.Y+i)
		drawRing(marked, ring, stroke)
	}
	return marked, nil
}

// Crop returns the pixel sub-grid strictly inside the ROI as a new image.
//
// The crop is always taken from the (unmarked) source image. The result has
// bounds starting at (0,0) and dimensions (X2-X1) x (Y2-Y1).
func Crop(img image.Image, r ROI) (*image.NRGBA, error) {
	if err := r.Validate(img.Bounds()); err != nil {
		return nil, err
	}
	return imaging.Crop(img, r.Rect()), nil
}

// drawRing draws the 1-pixel frame of rect onto img, clipped to img's bounds.
// rect follows the usual convention: Min inclusive, Max exclusive.
func drawRing(img *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		setIfIn(img, x, rect.Min.Y, c)
		setIfIn(img, x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		setIfIn(img, rect.Min.X, y, c)
		setIfIn(img, rect.Max.X-1, y, c)
	}
}

func setIfIn(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}
