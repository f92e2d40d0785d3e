package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// blurRadius is the Gaussian radius applied before gradient computation.
// A small radius suppresses high-frequency pixel noise without washing out
// the letter strokes.
const blurRadius = 1.0

// DetectEdges runs Canny edge detection over an image and returns a binary
// edge map.
//
// In the result, white pixels (255) are edges and black pixels (0) are
// non-edges. The map has bounds (0,0)-(w,h) matching the input dimensions.
//
// Stages:
//
//  1. Grayscale conversion (bild/effect)
//  2. Gaussian blur to reduce noise (bild/blur)
//  3. Sobel gradients: magnitude = sqrt(Gx^2 + Gy^2), direction = atan2(Gy, Gx)
//  4. Non-maximum suppression to thin edges to single-pixel width
//  5. Hysteresis with th.Low/th.High: gradients above High are strong edges,
//     gradients between Low and High are kept only next to a strong edge
//
// Use EstimateThresholds to derive th from the image itself. The input image
// is not modified.
func DetectEdges(img image.Image, th Thresholds) *image.Gray {
	blurred := blur.Gaussian(effect.Grayscale(img), blurRadius)
	bounds := blurred.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Intensity plane on the 0-255 scale. After grayscale conversion all
	// channels are equal, so reading R is enough.
	intensity := make([][]float64, height)
	for y := 0; y < height; y++ {
		intensity[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, _, _, _ := blurred.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			intensity[y][x] = float64(r >> 8)
		}
	}

	magnitude, direction := sobel(intensity, width, height)
	suppressed := suppressNonMaxima(magnitude, direction, width, height)

	result := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			if val <= 0 {
				continue
			}
			if val >= th.High {
				result.Pix[result.PixOffset(x, y)] = 255
			} else if val >= th.Low && hasStrongNeighbor(suppressed, x, y, width, height, th.High) {
				result.Pix[result.PixOffset(x, y)] = 255
			}
		}
	}
	return result
}

// sobel computes gradient magnitude and direction using the Sobel operator.
// Border handling clamps coordinates to the image edge.
func sobel(intensity [][]float64, width, height int) (magnitude, direction [][]float64) {
	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	magnitude = make([][]float64, height)
	direction = make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += intensity[py][px] * sobelX[ky+1][kx+1]
					gy += intensity[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}
	return magnitude, direction
}

// suppressNonMaxima keeps only pixels that are local maxima along their
// gradient direction, thinning thick gradient ridges to 1-pixel edges.
// Image border pixels are always suppressed.
func suppressNonMaxima(magnitude, direction [][]float64, width, height int) [][]float64 {
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			default:
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}
	return suppressed
}

// hasStrongNeighbor reports whether any 8-connected neighbor of (x,y) has a
// suppressed gradient at or above the high threshold.
func hasStrongNeighbor(suppressed [][]float64, x, y, width, height int, high float64) bool {
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			if kx == 0 && ky == 0 {
				continue
			}
			py := clamp(y+ky, 0, height-1)
			px := clamp(x+kx, 0, width-1)
			if suppressed[py][px] >= high && suppressed[py][px] > 0 {
				return true
			}
		}
	}
	return false
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
