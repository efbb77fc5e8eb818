// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides raster image encoding and decoding,
// and simple image transformations used by captures.
package imagex

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"cogentcore.org/viewshot/base/errors"
)

// Formats are the supported image encoding / decoding formats.
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

// String returns the lowercase name of the format.
func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// Extension returns the canonical filename extension of the format,
// without a leading dot.
func (f Formats) Extension() string {
	if f == JPEG {
		return "jpg"
	}
	return f.String()
}

// MIME returns the mime type of the format, such as "image/png".
func (f Formats) MIME() string {
	return "image/" + f.String()
}

// IsLossy returns whether the format takes a quality setting.
func (f Formats) IsLossy() bool {
	return f == JPEG || f == WebP
}

// ErrUnknownFormat is returned when a format or extension is not recognized.
var ErrUnknownFormat = errors.New("imagex: unknown image format")

var errDataURI = errors.New("imagex: not a base64 data URI")

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, fmt.Errorf("ExtToFormat: ext is empty: %w", ErrUnknownFormat)
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized: %w", ext, ErrUnknownFormat)
}

// EncodableFormats are the formats that [Write] can produce
// for captures, by name as accepted by [ParseFormat].
var EncodableFormats = []string{"png", "jpg", "jpeg", "webp"}

// ParseFormat parses a capture format name (png, jpg, jpeg, webp).
// Unlike [ExtToFormat], it only accepts formats that captures
// can be encoded to.
func ParseFormat(name string) (Formats, error) {
	f, err := ExtToFormat(name)
	if err != nil {
		return None, err
	}
	switch f {
	case PNG, JPEG, WebP:
		return f, nil
	}
	return None, fmt.Errorf("ParseFormat: %q is not a capture format: %w", name, ErrUnknownFormat)
}

// Quality maps a quality in the [0,1] range onto the 0-100 scale
// used by lossy encoders. Values outside of the range are clamped.
func Quality(q float64) int {
	if math.IsNaN(q) || q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}
	return int(math.Round(100 * q))
}

// Open opens an image from the given filename.
// The format is inferred automatically,
// and is returned using the Formats enum.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader.
// The format is inferred automatically,
// and is returned using the Formats enum.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, ext, err := image.Decode(r)
	if err != nil {
		return im, None, err
	}
	f, err := ExtToFormat(ext)
	return im, f, err
}

// ReadBytes decodes an image from the given bytes, first checking
// that the bytes actually hold a known image type.
func ReadBytes(b []byte) (image.Image, Formats, error) {
	kind, err := filetype.Image(b)
	if err != nil || kind == filetype.Unknown {
		return nil, None, fmt.Errorf("imagex.ReadBytes: data is not an image: %w", ErrUnknownFormat)
	}
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(kind.Extension)
	return im, f, err
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Save(im image.Image, filename string) error {
	ext := filepath.Ext(filename)
	f, err := ExtToFormat(ext)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f, 90); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the image to the given writer using the given format.
// quality is on the 0-100 scale and only applies to the lossy
// jpeg and webp formats.
// png, jpeg, gif, tiff, bmp, and webp are supported.
// An image with an empty area can not be written.
func Write(im image.Image, w io.Writer, f Formats, quality int) error {
	if im == nil || im.Bounds().Empty() {
		return fmt.Errorf("imagex.Write: cannot encode an empty image as %v", f)
	}
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: quality})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	case WebP:
		return webp.Encode(w, im, webp.Options{Quality: quality, Method: 4})
	default:
		return fmt.Errorf("imagex.Write: format %v not valid: %w", f, ErrUnknownFormat)
	}
}
