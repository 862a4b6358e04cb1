// Package imageio converts image containers to and from image.Image.
//
// Any format registered here can be read, but only lossless containers can be
// written: recompressing an encoded image with a lossy codec destroys the
// hidden bits.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	WEBP Format = "webp"
	QOI  Format = "qoi"
)

var (
	ErrLossyFormat       = errors.New("format does not preserve pixel values")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Lossless reports whether images written in f keep every 8-bit sample intact.
// QOI only qualifies for opaque images; Encode refuses translucent ones.
func Lossless(f Format) bool {
	switch f {
	case PNG, BMP, TIFF, QOI:
		return true
	}
	return false
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return img, Format(name), nil
}

// Encode writes img in the lossless format f.
// JPEG, GIF and QOI with a translucent img fail with ErrLossyFormat.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case QOI:
		// the qoi encoder goes through premultiplied color, which drops
		// the RGB of translucent pixels
		if !opaque(img) {
			return fmt.Errorf("%w: %s with translucent pixels", ErrLossyFormat, f)
		}
		return qoi.Encode(w, img)
	case JPEG, GIF:
		return fmt.Errorf("%w: %s", ErrLossyFormat, f)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// FormatFromPath derives the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".webp":
		return WEBP, nil
	case ".qoi":
		return QOI, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}
