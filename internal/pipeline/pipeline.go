// Package pipeline runs the letterscan stages in order and writes the
// output artifacts.
//
// The pipeline is strictly linear and synchronous; one image per invocation:
//
//	Load -> Mark-ROI -> Crop -> Estimate-Thresholds -> Detect-Edges ->
//	Find-Contours -> Annotate -> (optional) Extract-Text
//
// Each artifact is written as soon as its stage completes, so a failed run
// leaves only the artifacts of the stages that finished before the failure.
// Any stage error aborts the run; there are no retries and no partial-result
// recovery.
package pipeline

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"letterscan/internal/config"
	"letterscan/internal/detection"
	"letterscan/internal/imaging"
	"letterscan/internal/ocr"
)

// Fixed artifact filenames inside the output directory.
const (
	FileWithROI = "image_with_ROI.jpg"
	FileCropped = "image_cropped.jpg"
	FileLetters = "image_letters.jpg"
	FileOCRText = "image_OCR_text.txt"
)

// Result summarizes a completed run.
type Result struct {
	// Thresholds are the adaptive Canny thresholds estimated from the crop.
	Thresholds imaging.Thresholds

	// Contours is the number of connected edge components found.
	Contours int

	// Boxes is the number of bounding boxes drawn (after the optional
	// minimum-area filter).
	Boxes int

	// Artifacts lists the paths of the files written, in write order.
	Artifacts []string

	// Text is the cleaned OCR output; empty when OCR was disabled.
	Text string
}

// Run executes the pipeline described by cfg. cfg must already be validated;
// the ROI is checked against the image bounds here, once the image is loaded.
func Run(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	logger.Info("loading image", "path", cfg.InputPath)
	src, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	width, height := imaging.Dimensions(src)
	logger.Debug("image decoded", "width", width, "height", height)

	result := &Result{}

	logger.Info("drawing region of interest",
		"x1", cfg.ROI.X1, "y1", cfg.ROI.Y1, "x2", cfg.ROI.X2, "y2", cfg.ROI.Y2)
	marked, err := imaging.Mark(src, cfg.ROI, cfg.BoxColor, cfg.StrokeWidth)
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(result, cfg, FileWithROI, marked); err != nil {
		return nil, err
	}

	logger.Info("cropping image to region of interest")
	cropped, err := imaging.Crop(src, cfg.ROI)
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(result, cfg, FileCropped, cropped); err != nil {
		return nil, err
	}

	logger.Info("estimating edge detection thresholds", "sigma", cfg.Sigma)
	thresholds, err := imaging.EstimateThresholds(cropped, cfg.Sigma)
	if err != nil {
		return nil, err
	}
	result.Thresholds = thresholds
	logger.Info("performing canny edge detection", "low", thresholds.Low, "high", thresholds.High)
	edges := imaging.DetectEdges(cropped, thresholds)

	logger.Info("finding contours and drawing letter boxes")
	contours := detection.FindContours(edges)
	boxes := detection.BoundingBoxes(contours, cfg.MinArea)
	result.Contours = len(contours)
	result.Boxes = len(boxes)
	logger.Debug("contours extracted", "contours", len(contours), "boxes", len(boxes))

	letters := detection.Annotate(cropped, boxes, cfg.BoxColor, cfg.StrokeWidth)
	if err := writeArtifact(result, cfg, FileLetters, letters); err != nil {
		return nil, err
	}

	if cfg.OCR {
		logger.Info("performing OCR on the cropped region", "language", cfg.Language)
		text, err := extractText(cropped, cfg.Language)
		if err != nil {
			return nil, err
		}
		result.Text = text

		path := filepath.Join(cfg.OutputDir, FileOCRText)
		report := fmt.Sprintf("Below you can see the result of the OCR run on %s:\n\n%s\n",
			filepath.Base(cfg.InputPath), text)
		if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write OCR text: %w", err)
		}
		result.Artifacts = append(result.Artifacts, path)
	}

	logger.Info("done", "artifacts", len(result.Artifacts))
	return result, nil
}

// extractText binarizes the crop, stages it through a temp file, and runs
// the OCR engine on it.
func extractText(crop *image.NRGBA, language string) (string, error) {
	binary := ocr.Binarize(crop)

	tmpPath, err := ocr.SaveTempPNG(binary, "letterscan-ocr")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	raw, err := ocr.ExtractText(tmpPath, language)
	if err != nil {
		return "", err
	}
	return ocr.CleanText(raw), nil
}

// writeArtifact saves an image artifact into the output directory and
// records its path on the result.
func writeArtifact(result *Result, cfg *config.Config, name string, img image.Image) error {
	path := filepath.Join(cfg.OutputDir, name)
	if err := imaging.Save(path, img, cfg.JPEGQuality); err != nil {
		return err
	}
	result.Artifacts = append(result.Artifacts, path)
	return nil
}
