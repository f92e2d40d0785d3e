package detection

import (
	"image"
	"testing"
)

func TestFindContours_EmptyMap(t *testing.T) {
	edges := image.NewGray(image.Rect(0, 0, 40, 40))

	contours := FindContours(edges)
	if len(contours) != 0 {
		t.Errorf("empty edge map: got %d contours, want 0", len(contours))
	}
}

func TestFindContours_SingleComponent(t *testing.T) {
	edges := image.NewGray(image.Rect(0, 0, 40, 40))
	setEdgeRect(edges, 10, 10, 20, 15)

	contours := FindContours(edges)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	if len(contours[0]) != 10*5 {
		t.Errorf("contour size: got %d pixels, want 50", len(contours[0]))
	}
}

func TestFindContours_SeparateComponents(t *testing.T) {
	edges := image.NewGray(image.Rect(0, 0, 60, 60))
	setEdgeRect(edges, 5, 5, 10, 10)
	setEdgeRect(edges, 30, 30, 40, 40)
	edges.SetGray(55, 55, gray255())

	contours := FindContours(edges)
	if len(contours) != 3 {
		t.Errorf("got %d contours, want 3 (two blobs and a single speck)", len(contours))
	}
}

func TestFindContours_DiagonalConnectivity(t *testing.T) {
	// Diagonally touching pixels are 8-connected and form one contour.
	edges := image.NewGray(image.Rect(0, 0, 10, 10))
	edges.SetGray(2, 2, gray255())
	edges.SetGray(3, 3, gray255())
	edges.SetGray(4, 4, gray255())

	contours := FindContours(edges)
	if len(contours) != 1 {
		t.Errorf("diagonal chain: got %d contours, want 1", len(contours))
	}
}

func TestBoundingBoxes_EnclosingRect(t *testing.T) {
	edges := image.NewGray(image.Rect(0, 0, 50, 50))
	setEdgeRect(edges, 12, 8, 22, 30)

	boxes := BoundingBoxes(FindContours(edges), 0)
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(boxes))
	}

	want := image.Rect(12, 8, 22, 30)
	if boxes[0].Rect != want {
		t.Errorf("bounding rect: got %v, want %v", boxes[0].Rect, want)
	}
	if boxes[0].Area != want.Dx()*want.Dy() {
		t.Errorf("area: got %d, want %d", boxes[0].Area, want.Dx()*want.Dy())
	}
}

func TestBoundingBoxes_BaselineKeepsNoise(t *testing.T) {
	edges := image.NewGray(image.Rect(0, 0, 30, 30))
	setEdgeRect(edges, 5, 5, 15, 15)
	edges.SetGray(25, 25, gray255()) // single-pixel noise speck

	boxes := BoundingBoxes(FindContours(edges), 0)
	if len(boxes) != 2 {
		t.Errorf("baseline (minArea=0): got %d boxes, want 2 including the speck", len(boxes))
	}
}

func TestBoundingBoxes_MinAreaFilter(t *testing.T) {
	edges := image.NewGray(image.Rect(0, 0, 30, 30))
	setEdgeRect(edges, 5, 5, 15, 15) // 10x10 box
	edges.SetGray(25, 25, gray255()) // 1x1 box

	boxes := BoundingBoxes(FindContours(edges), 4)
	if len(boxes) != 1 {
		t.Fatalf("minArea=4: got %d boxes, want 1", len(boxes))
	}
	if boxes[0].Rect != image.Rect(5, 5, 15, 15) {
		t.Errorf("kept box: got %v, want the 10x10 blob", boxes[0].Rect)
	}
}

func TestBoundingBoxes_SortedByAreaDescending(t *testing.T) {
	edges := image.NewGray(image.Rect(0, 0, 60, 60))
	setEdgeRect(edges, 2, 2, 6, 6)
	setEdgeRect(edges, 20, 20, 40, 40)
	setEdgeRect(edges, 50, 2, 58, 6)

	boxes := BoundingBoxes(FindContours(edges), 0)
	for i := 1; i < len(boxes); i++ {
		if boxes[i].Area > boxes[i-1].Area {
			t.Fatalf("boxes not sorted by area: %d before %d", boxes[i-1].Area, boxes[i].Area)
		}
	}
}

// Helper functions

func setEdgeRect(edges *image.Gray, x1, y1, x2, y2 int) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			edges.SetGray(x, y, gray255())
		}
	}
}
