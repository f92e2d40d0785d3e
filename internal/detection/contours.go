package detection

import (
	"image"
	"sort"
)

// Point is a 2D pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Contour is a connected group of edge pixels treated as one candidate letter.
type Contour []Point

// Box is the minimal axis-aligned rectangle enclosing a contour.
type Box struct {
	// Rect is the enclosing rectangle (Min inclusive, Max exclusive).
	Rect image.Rectangle `json:"rect"`

	// Area is the rectangle's area in square pixels.
	Area int `json:"area"`

	// EdgePixels is the number of edge pixels in the underlying contour.
	EdgePixels int `json:"edge_pixels"`
}

// FindContours groups the white pixels of a binary edge map into connected
// components.
//
// edges must be a binary map as produced by imaging.DetectEdges: 255 marks an
// edge pixel, anything else does not. Connectivity is 8-connected, so
// diagonally touching edge pixels belong to the same contour. Every component
// is returned, down to single pixels.
func FindContours(edges *image.Gray) []Contour {
	bounds := edges.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	visited := make([]bool, width*height)
	contours := make([]Contour, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !isEdge(edges, x, y) || visited[y*width+x] {
				continue
			}
			contour := traceComponent(edges, visited, x, y, width, height)
			contours = append(contours, contour)
		}
	}
	return contours
}

// traceComponent collects the connected component containing (startX,startY)
// using an explicit stack; recursion would overflow on long letter outlines.
func traceComponent(edges *image.Gray, visited []bool, startX, startY, width, height int) Contour {
	contour := make(Contour, 0, 32)
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		idx := p.Y*width + p.X
		if visited[idx] || !isEdge(edges, p.X, p.Y) {
			continue
		}

		visited[idx] = true
		contour = append(contour, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return contour
}

// BoundingBoxes computes the minimal enclosing rectangle of each contour.
//
// minArea is an optional noise filter: contours whose enclosing rectangle
// covers less than minArea square pixels are dropped. Zero keeps every
// contour, which is the baseline behavior (noise specks included). Boxes are
// returned sorted by area, largest first.
func BoundingBoxes(contours []Contour, minArea int) []Box {
	boxes := make([]Box, 0, len(contours))

	for _, contour := range contours {
		if len(contour) == 0 {
			continue
		}
		minX, minY := contour[0].X, contour[0].Y
		maxX, maxY := minX, minY
		for _, p := range contour[1:] {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}

		rect := image.Rect(minX, minY, maxX+1, maxY+1)
		area := rect.Dx() * rect.Dy()
		if minArea > 0 && area < minArea {
			continue
		}
		boxes = append(boxes, Box{
			Rect:       rect,
			Area:       area,
			EdgePixels: len(contour),
		})
	}

	sort.Slice(boxes, func(i, j int) bool {
		return boxes[i].Area > boxes[j].Area
	})
	return boxes
}

// isEdge reports whether (x,y), relative to the map's top-left corner, is a
// white edge pixel.
func isEdge(edges *image.Gray, x, y int) bool {
	b := edges.Bounds()
	return edges.Pix[edges.PixOffset(x+b.Min.X, y+b.Min.Y)] == 255
}
