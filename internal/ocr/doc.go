// Package ocr extracts text from images using the Tesseract OCR engine.
//
// Tesseract support is compiled in with the "ocr" build tag:
//
//	go build -tags ocr ./...
//
// This requires Tesseract and its English training data installed on the
// system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Without the tag, ExtractText returns an error wrapping ErrExternalTool so
// the pipeline fails loudly instead of silently skipping recognition.
//
// # Preprocessing
//
// Tesseract expects dark text on a light background. Binarize converts an
// image to a black-and-white map with a fixed intensity cutoff before
// recognition; engraved panels photograph as light stone with darker incised
// letters, and binarization strips the stone texture.
//
// # Page Segmentation
//
// Recognition assumes a single column of text of variable sizes (Tesseract
// PSM 4), which matches the layout of an engraved panel.
package ocr
