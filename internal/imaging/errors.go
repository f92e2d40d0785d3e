package imaging

import "errors"

var (
	// ErrInvalidParameter indicates a malformed or out-of-range pipeline
	// parameter, such as a non-positive sigma.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidROI indicates a region of interest that is degenerate
	// (zero or negative area) or lies outside the image bounds.
	ErrInvalidROI = errors.New("invalid ROI")
)
