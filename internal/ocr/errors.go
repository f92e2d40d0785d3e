package ocr

import "errors"

// ErrExternalTool indicates that the Tesseract engine is unavailable or
// failed while recognizing text. OCR failures always propagate; they are
// never swallowed.
var ErrExternalTool = errors.New("ocr engine unavailable or failed")
