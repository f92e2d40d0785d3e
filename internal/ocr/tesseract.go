//go:build ocr

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// ExtractText runs Tesseract on an image file and returns the recognized
// text verbatim.
//
// language is a Tesseract language code such as "eng"; the matching training
// data must be installed. Recognition assumes a single column of text of
// variable sizes (PSM 4). Engine failures return an error wrapping
// ErrExternalTool.
func ExtractText(imagePath, language string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("%w: failed to set language %q: %v", ErrExternalTool, language, err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_COLUMN); err != nil {
		return "", fmt.Errorf("%w: failed to set page segmentation mode: %v", ErrExternalTool, err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("%w: failed to set image: %v", ErrExternalTool, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalTool, err)
	}
	return text, nil
}

// Available reports whether OCR support is compiled in.
func Available() bool { return true }
