package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrNoImage is returned by Decode for empty input.
	ErrNoImage = errors.New("no image data")
	ErrDecode  = errors.New("image decode failed")
)

// Format is an export format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// DefaultFormat is lossless.
const DefaultFormat = FormatPNG

const jpegQuality = 95

// Formats lists every export format.
func Formats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF}
}

// ParseFormat accepts a format name or file extension, with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from the file extension. A path without an
// extension gets DefaultFormat.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return DefaultFormat, nil
	}
	return ParseFormat(ext)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG, "":
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Encode returns the committed raster, without any preview, encoded as f.
func (c *Canvas) Encode(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c.img, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// flatten blends translucent pixels onto the background since JPEG has no
// alpha channel.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{Background}, image.Point{}, draw.Src)
	draw.Draw(out, b, img, b.Min, draw.Over)
	return out
}

var decodable = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/webp": true,
}

// Decode decodes a stored artwork image. The returned string is the MIME
// type detected from the content.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrNoImage
	}

	mimeType := mimetype.Detect(data).String()
	if !decodable[mimeType] {
		return nil, mimeType, fmt.Errorf("%w: %s", ErrDecode, mimeType)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, mimeType, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, mimeType, nil
}

// Fit scales img to the largest size that fits in w×h, keeping the aspect
// ratio. It returns nil when the box or the image is empty.
func Fit(img image.Image, w, h int) *image.RGBA {
	if img == nil || w <= 0 || h <= 0 {
		return nil
	}
	src := img.Bounds()
	if src.Empty() {
		return nil
	}

	sw, sh := src.Dx(), src.Dy()
	dw, dh := w, h
	if w*sh <= h*sw {
		dh = max(1, sh*w/sw)
	} else {
		dw = max(1, sw*h/sh)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Over, nil)
	return dst
}
