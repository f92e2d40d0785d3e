// Package imaging provides the image processing stages of the letterscan
// pipeline: loading and saving images, marking and cropping a region of
// interest (ROI), estimating adaptive Canny thresholds, and producing a
// binary edge map.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (X1,Y1) is inclusive (top-left), (X2,Y2) is exclusive
//     (bottom-right), so a valid ROI spans (X2-X1) x (Y2-Y1) pixels.
//
// # Non-destructive Operations
//
// No function in this package mutates its input image. Marking draws on a
// clone, cropping copies the sub-grid out of the pristine source, and edge
// detection allocates a fresh edge map. Each pipeline stage therefore sees
// the unmodified output of the previous stage.
//
// # Error Handling
//
// Functions return errors for invalid inputs:
//   - ErrInvalidROI for degenerate or out-of-bounds crop regions
//   - ErrInvalidParameter for a non-positive sigma
//   - wrapped I/O errors when an image file cannot be read or written
package imaging
