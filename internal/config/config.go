// Package config holds the letterscan run configuration.
//
// Configuration is assembled once at startup from command-line flags, with a
// few ambient settings overridable through the environment (optionally via a
// .env file in the working directory). All validation happens here, before
// any pipeline stage runs; in particular the boolean-like OCR flag string
// ("True"/"False") is normalized to a real bool at this boundary.
package config

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	colorful "github.com/lucasb-eyer/go-colorful"

	"letterscan/internal/imaging"
)

// Defaults for the invocation surface.
const (
	DefaultInputPath   = "jefferson_memorial.jpeg"
	DefaultOutputDir   = "output"
	DefaultOCR         = "False"
	DefaultBoxColor    = "#00FF00"
	DefaultStrokeWidth = 2
	DefaultLanguage    = "eng"
	DefaultJPEGQuality = 95
)

// Environment variables recognized on top of the flags. A .env file in the
// working directory is loaded first if present.
const (
	EnvLanguage    = "LETTERSCAN_LANG"
	EnvLogLevel    = "LETTERSCAN_LOG_LEVEL"
	EnvJPEGQuality = "LETTERSCAN_JPEG_QUALITY"
)

// Config is the validated run configuration for one pipeline invocation.
// It is immutable after FromArgs returns.
type Config struct {
	// InputPath is the source image file.
	InputPath string

	// OutputDir receives the output artifacts; created if missing.
	OutputDir string

	// ROI is the region of interest to mark and crop.
	ROI imaging.ROI

	// Sigma is the threshold spread multiplier for adaptive Canny
	// thresholds. Must be positive.
	Sigma float64

	// OCR enables the optional text extraction stage.
	OCR bool

	// Language is the Tesseract language code used when OCR is enabled.
	Language string

	// BoxColor is the stroke color for the ROI rectangle and letter boxes.
	BoxColor color.NRGBA

	// StrokeWidth is the stroke width in pixels for drawn rectangles.
	StrokeWidth int

	// MinArea drops detected contours whose bounding box covers fewer
	// square pixels. Zero keeps every contour (baseline behavior).
	MinArea int

	// JPEGQuality is the encoder quality for the image artifacts (1-100).
	JPEGQuality int

	// LogLevel controls slog verbosity.
	LogLevel slog.Level
}

// FromArgs parses flags and environment into a validated Config.
//
// args is the argument list without the program name, as in os.Args[1:].
// Malformed or out-of-range values return an error wrapping
// imaging.ErrInvalidParameter.
func FromArgs(args []string) (*Config, error) {
	// Overlay from a .env file when one exists; absence is not an error.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("letterscan", flag.ContinueOnError)
	var (
		input    = fs.String("input", DefaultInputPath, "path to the source image")
		output   = fs.String("output", DefaultOutputDir, "output directory for artifacts")
		roiSpec  = fs.String("roi", "", "ROI corner coordinates as \"x1,y1,x2,y2\" (required)")
		sigma    = fs.Float64("sigma", imaging.DefaultSigma, "threshold spread multiplier for edge detection")
		ocrSpec  = fs.String("ocr", DefaultOCR, "perform OCR on the cropped region (True/False)")
		boxColor = fs.String("box-color", DefaultBoxColor, "hex stroke color for ROI and letter boxes")
		minArea  = fs.Int("min-area", 0, "drop contours with a bounding box smaller than this area, 0 keeps all")
		logLevel = fs.String("log-level", envOr(EnvLogLevel, "info"), "log level: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", imaging.ErrInvalidParameter, err)
	}

	if *roiSpec == "" {
		return nil, fmt.Errorf("%w: ROI coordinates are required (-roi \"x1,y1,x2,y2\")", imaging.ErrInvalidParameter)
	}
	roi, err := ParseROI(*roiSpec)
	if err != nil {
		return nil, err
	}

	doOCR, err := ParseBoolString(*ocrSpec)
	if err != nil {
		return nil, err
	}

	stroke, err := ParseHexColor(*boxColor)
	if err != nil {
		return nil, err
	}

	quality := DefaultJPEGQuality
	if s := os.Getenv(EnvJPEGQuality); s != "" {
		quality, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer, got %q", imaging.ErrInvalidParameter, EnvJPEGQuality, s)
		}
	}

	cfg := &Config{
		InputPath:   *input,
		OutputDir:   *output,
		ROI:         roi,
		Sigma:       *sigma,
		OCR:         doOCR,
		Language:    envOr(EnvLanguage, DefaultLanguage),
		BoxColor:    stroke,
		StrokeWidth: DefaultStrokeWidth,
		MinArea:     *minArea,
		JPEGQuality: quality,
		LogLevel:    ParseLogLevel(*logLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. ROI placement against the image bounds is
// checked later, once the image is loaded.
func (c *Config) Validate() error {
	if c.Sigma <= 0 {
		return fmt.Errorf("%w: sigma must be positive, got %g", imaging.ErrInvalidParameter, c.Sigma)
	}
	if c.MinArea < 0 {
		return fmt.Errorf("%w: min-area must not be negative, got %d", imaging.ErrInvalidParameter, c.MinArea)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: JPEG quality must be in [1,100], got %d", imaging.ErrInvalidParameter, c.JPEGQuality)
	}
	if c.StrokeWidth < 1 {
		return fmt.Errorf("%w: stroke width must be at least 1, got %d", imaging.ErrInvalidParameter, c.StrokeWidth)
	}
	return nil
}

// ParseROI parses four integer corner coordinates separated by commas or
// spaces, e.g. "1400,880,2900,2800" or "1400 880 2900 2800".
func ParseROI(s string) (imaging.ROI, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 4 {
		return imaging.ROI{}, fmt.Errorf("%w: ROI needs exactly 4 coordinates, got %d in %q",
			imaging.ErrInvalidParameter, len(fields), s)
	}

	coords := make([]int, 4)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return imaging.ROI{}, fmt.Errorf("%w: ROI coordinate %q is not an integer", imaging.ErrInvalidParameter, field)
		}
		coords[i] = v
	}
	return imaging.ROI{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
}

// ParseBoolString normalizes a boolean-like flag string to a bool.
// Accepted (case-insensitive): "true", "false", "1", "0".
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: expected True or False, got %q", imaging.ErrInvalidParameter, s)
}

// ParseHexColor parses a hex color like "#00FF00" into an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: bad color %q: %v", imaging.ErrInvalidParameter, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
