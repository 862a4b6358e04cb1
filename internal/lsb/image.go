package lsb

import (
	"image"

	"golang.org/x/image/draw"
)

// Buffer is a tightly packed, non-premultiplied RGBA copy of an image.
// Pixel (x, y) occupies Pix[(y*Width+x)*4 : (y*Width+x)*4+4] as R, G, B, A.
type Buffer struct {
	Width, Height int
	Pix           []uint8

	bounds image.Rectangle
}

// NewBuffer copies src into a new Buffer. The buffer never aliases src.
func NewBuffer(src image.Image) *Buffer {
	var b Buffer
	b.bounds = src.Bounds()
	b.Width, b.Height = b.bounds.Dx(), b.bounds.Dy()
	b.Pix = make([]uint8, b.Width*b.Height*4)

	rowLen := b.Width * 4
	if n, ok := src.(*image.NRGBA); ok {
		for y := range b.Height {
			off := n.PixOffset(b.bounds.Min.X, b.bounds.Min.Y+y)
			copy(b.Pix[y*rowLen:(y+1)*rowLen], n.Pix[off:off+rowLen])
		}
		return &b
	}

	dst := &image.NRGBA{
		Pix:    b.Pix,
		Stride: rowLen,
		Rect:   b.bounds,
	}
	draw.Draw(dst, b.bounds, src, b.bounds.Min, draw.Src)
	return &b
}

// Capacity returns the number of usable bit slots (R, G and B of every pixel).
func (b *Buffer) Capacity() int {
	return b.Width * b.Height * 3
}

// Image returns the buffer as an *image.NRGBA with the source bounds.
// The returned image shares Pix with the buffer.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   b.bounds,
	}
}
