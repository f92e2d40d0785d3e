package main

import (
	"fmt"
	"log/slog"
	"os"

	"letterscan/internal/config"
	"letterscan/internal/ocr"
	"letterscan/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("letterscan %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			fmt.Printf("  OCR support: %v\n", ocr.Available())
			return
		case "--help", "-h", "help":
			fmt.Println("letterscan - outline and recognize engraved letters in a photograph")
			fmt.Println()
			fmt.Println("Usage: letterscan -roi \"x1,y1,x2,y2\" [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -input string      path to the source image (default \"jefferson_memorial.jpeg\")")
			fmt.Println("  -output string     output directory for artifacts (default \"output\")")
			fmt.Println("  -roi string        ROI corner coordinates as \"x1,y1,x2,y2\" (required)")
			fmt.Println("  -sigma float       threshold spread multiplier (default 0.33)")
			fmt.Println("  -ocr string        perform OCR on the cropped region, True/False (default \"False\")")
			fmt.Println("  -box-color string  hex stroke color for drawn rectangles (default \"#00FF00\")")
			fmt.Println("  -min-area int      drop contours with a smaller bounding box, 0 keeps all")
			fmt.Println("  -log-level string  debug, info, warn, or error (default \"info\")")
			fmt.Println()
			fmt.Println("Environment variables (also read from a .env file):")
			fmt.Println("  LETTERSCAN_LANG          Tesseract language code (default \"eng\")")
			fmt.Println("  LETTERSCAN_LOG_LEVEL     log level override")
			fmt.Println("  LETTERSCAN_JPEG_QUALITY  JPEG quality for artifacts, 1-100 (default 95)")
			fmt.Println()
			fmt.Println("Outputs written to the output directory:")
			fmt.Println("  image_with_ROI.jpg   input image with the ROI rectangle drawn on it")
			fmt.Println("  image_cropped.jpg    input image cropped to the ROI")
			fmt.Println("  image_letters.jpg    cropped image with detected letters outlined")
			fmt.Println("  image_OCR_text.txt   extracted text (only with -ocr True)")
			return
		}
	}

	cfg, err := config.FromArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "letterscan: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	result, err := pipeline.Run(cfg, logger)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	for _, path := range result.Artifacts {
		fmt.Println(path)
	}
}
