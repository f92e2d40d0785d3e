package imaging

import (
	"fmt"
	"image"
)

// Thresholds holds the low and high hysteresis thresholds for Canny edge
// detection, on the 0-255 intensity scale.
type Thresholds struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// DefaultSigma is the threshold spread multiplier used when the caller does
// not supply one. 0.33 tends to give good results across a wide range of
// images (zero-parameter automatic Canny).
const DefaultSigma = 0.33

// EstimateThresholds derives adaptive Canny thresholds from an image.
//
// It computes the median of the image's 8-bit luminance values and spreads
// the thresholds around it:
//
//	low  = max(0, (1-sigma) * median)
//	high = min(255, (1+sigma) * median)
//
// A small sigma gives a tight threshold band around the median; a large sigma
// gives a wide one. This adapts the edge detector to images of varying
// brightness and contrast instead of hardcoding thresholds.
//
// sigma must be positive; otherwise an error wrapping ErrInvalidParameter is
// returned. The input image is not modified.
func EstimateThresholds(img image.Image, sigma float64) (Thresholds, error) {
	if sigma <= 0 {
		return Thresholds{}, fmt.Errorf("%w: sigma must be positive, got %g", ErrInvalidParameter, sigma)
	}

	median := medianLuminance(img)

	low := (1.0 - sigma) * median
	if low < 0 {
		low = 0
	}
	high := (1.0 + sigma) * median
	if high > 255 {
		high = 255
	}

	return Thresholds{Low: low, High: high}, nil
}

// medianLuminance returns the median 8-bit luminance of an image, averaging
// the two middle values when the pixel count is even.
//
// Luminance uses ITU-R BT.601 weights: Y = 0.299*R + 0.587*G + 0.114*B.
func medianLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	var hist [256]int
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			hist[int(lum)]++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	if total%2 == 1 {
		return float64(nthValue(&hist, total/2))
	}
	a := nthValue(&hist, total/2-1)
	b := nthValue(&hist, total/2)
	return float64(a+b) / 2
}

// nthValue returns the n-th smallest value (0-based) recorded in a 256-bin
// intensity histogram.
func nthValue(hist *[256]int, n int) int {
	seen := 0
	for v := 0; v < 256; v++ {
		seen += hist[v]
		if seen > n {
			return v
		}
	}
	return 255
}
