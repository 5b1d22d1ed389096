// Package output encodes rendered frames as image files.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for an unsupported output format
var ErrUnknownFormat = errors.New("output: unknown format")

// Format names an image encoding
type Format string

// Supported formats
const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists every supported format
func Formats() []Format {
	return []Format{PPM, PNG, BMP, TIFF}
}

// ParseFormat converts a format name (case-insensitive) to a Format
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimPrefix(name, ".")))
	if format == "tif" {
		format = TIFF
	}
	for _, supported := range Formats() {
		if format == supported {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes frame to w in the given format
func Encode(w io.Writer, frame *renderer.Frame, format Format) error {
	switch format {
	case PPM:
		return WritePPM(w, frame)
	case PNG:
		return png.Encode(w, ToRGBA(frame))
	case BMP:
		return bmp.Encode(w, ToRGBA(frame))
	case TIFF:
		return tiff.Encode(w, ToRGBA(frame), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SaveFile writes frame to path, creating parent directories as needed
func SaveFile(path string, frame *renderer.Frame, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := Encode(file, frame, format); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return file.Close()
}

// ToRGBA converts a frame to an 8-bit image with gamma 2 correction
func ToRGBA(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(quantize(c.X)),
				G: uint8(quantize(c.Y)),
				B: uint8(quantize(c.Z)),
				A: 255,
			})
		}
	}
	return img
}

// quantize maps a linear channel value to [0, 255] with gamma 2.
// NaN and negative values map to 0.
func quantize(c float64) int {
	if !(c > 0) {
		return 0
	}
	return int(256 * math.Min(math.Sqrt(c), 0.999))
}
