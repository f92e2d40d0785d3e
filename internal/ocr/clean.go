package ocr

import "strings"

// artifactReplacer strips recognition artifacts that Tesseract commonly
// produces on engraved stone: stray bars and exclamation marks from chisel
// marks, doubled underscores, and dangling hyphens.
var artifactReplacer = strings.NewReplacer(
	"\n", " ",
	"__", " ",
	" - ", " ",
	`-""`, " ",
	"|", "",
	"!", "",
)

// CleanText normalizes raw OCR output: newlines become spaces, common
// artifacts are removed, and runs of whitespace collapse to single spaces.
func CleanText(raw string) string {
	return strings.Join(strings.Fields(artifactReplacer.Replace(raw)), " ")
}
