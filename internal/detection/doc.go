// Package detection extracts letter-like contours from a binary edge map and
// annotates an image with their bounding boxes.
//
// A contour here is a connected group of edge pixels (8-connectivity). Each
// contour stands in for one candidate letter: engraved glyphs produce closed
// edge boundaries, so grouping connected edge pixels and boxing them outlines
// the individual letters.
//
// # Baseline Behavior
//
// By default every contour produces a bounding box, including single-speck
// noise artifacts. This keeps the output faithful to the raw edge map; pass a
// positive minimum area to FindContours consumers that want the optional
// noise filter instead.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0,0) at the
// top-left, X rightward, Y downward. Bounding boxes are image.Rectangles with
// inclusive Min and exclusive Max.
package detection
