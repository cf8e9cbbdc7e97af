// Package sink encodes composed atlas buffers into image files.
package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/texpack/texpack/pkg/errors"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJPEG: true,
}

// jpegQuality matches the quality sprite pipelines typically ship with.
const jpegQuality = 90

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, jpg)", format)
	}
	return nil
}

// Encode serializes img in the given format.
func Encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode %s", format)
	}
	return buf.Bytes(), nil
}

// Filename returns the output filename for atlas index:
// <prefix><index, zero-padded to 3 digits>.<format>.
func Filename(prefix string, index int, format string) string {
	return fmt.Sprintf("%s%03d.%s", prefix, index, format)
}

// Write encodes img and writes it under dir using the standard naming
// pattern, creating dir if needed. It returns the written path.
func Write(dir, prefix string, index int, format string, img image.Image) (string, error) {
	data, err := Encode(img, format)
	if err != nil {
		return "", err
	}
	return WriteBytes(dir, prefix, index, format, data)
}

// WriteBytes writes pre-encoded atlas data under dir using the standard
// naming pattern. It returns the written path.
func WriteBytes(dir, prefix string, index int, format string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncode, err, "create %s", dir)
	}
	path := filepath.Join(dir, Filename(prefix, index, format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeEncode, err, "write %s", path)
	}
	return path, nil
}
