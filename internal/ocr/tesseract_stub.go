//go:build !ocr

package ocr

import "fmt"

// ExtractText is the stub used when the "ocr" build tag is not set.
// It always fails with ErrExternalTool; rebuild with -tags ocr to enable
// Tesseract support.
func ExtractText(imagePath, language string) (string, error) {
	return "", fmt.Errorf("%w: built without ocr support, rebuild with -tags ocr", ErrExternalTool)
}

// Available reports whether OCR support is compiled in.
func Available() bool { return false }
