package detection

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Annotate draws the bounding boxes onto a clone of the image and returns
// the clone.
//
// Each box outline grows outward from the box boundary by width pixels, so
// the stroke frames the letter without painting over its edge pixels. Strokes
// falling outside the image are clipped. The source image is not modified.
func Annotate(img image.Image, boxes []Box, stroke color.NRGBA, width int) *image.NRGBA {
	if width < 1 {
		width = 1
	}

	annotated := imaging.Clone(img)
	off := img.Bounds().Min

	for _, box := range boxes {
		rect := box.Rect.Sub(off)
		for i := 1; i <= width; i++ {
			outlineRect(annotated, image.Rect(rect.Min.X-i, rect.Min.Y-i, rect.Max.X+i, rect.Max.Y+i), stroke)
		}
	}
	return annotated
}

// outlineRect draws the 1-pixel frame of rect, clipped to the image bounds.
func outlineRect(img *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		setClipped(img, x, rect.Min.Y, c)
		setClipped(img, x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		setClipped(img, rect.Min.X, y, c)
		setClipped(img, rect.Max.X-1, y, c)
	}
}

func setClipped(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}
