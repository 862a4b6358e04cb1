package lsb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestNewBuffer(t *testing.T) {
	t.Run("nrgba", func(t *testing.T) {
		src := solid(3, 2, color.NRGBA{10, 20, 30, 128})
		b := NewBuffer(src)
		assert.Equal(t, 3, b.Width)
		assert.Equal(t, 2, b.Height)
		assert.Len(t, b.Pix, 3*2*4)
		assert.Equal(t, 18, b.Capacity())
		assert.Equal(t, []uint8{10, 20, 30, 128}, b.Pix[20:24])

		// the buffer is a private copy
		b.Pix[0] = 99
		assert.Equal(t, uint8(10), src.Pix[0])
	})
	t.Run("sub image keeps bounds", func(t *testing.T) {
		src := solid(4, 4, color.NRGBA{1, 2, 3, 255})
		src.SetNRGBA(2, 2, color.NRGBA{7, 8, 9, 255})
		sub := src.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
		b := NewBuffer(sub)
		assert.Equal(t, 2, b.Width)
		assert.Equal(t, 2, b.Height)
		// (2,2) is the bottom-right pixel of the sub image
		assert.Equal(t, []uint8{7, 8, 9, 255}, b.Pix[12:16])
		assert.Equal(t, image.Rect(1, 1, 3, 3), b.Image().Bounds())
	})
	t.Run("rgba converts", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 2, 1))
		src.Set(0, 0, color.RGBA{200, 100, 50, 255})
		src.Set(1, 0, color.RGBA{1, 2, 3, 255})
		b := NewBuffer(src)
		assert.Equal(t, []uint8{200, 100, 50, 255, 1, 2, 3, 255}, b.Pix)
	})
	t.Run("does not alias the source", func(t *testing.T) {
		src := solid(1, 1, color.NRGBA{1, 1, 1, 1})
		b := NewBuffer(src)
		b.Pix[0] = 5
		assert.Equal(t, uint8(1), src.Pix[0])
	})
}

func TestEmbedExtract(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, true, false, true, true}
	for name, order := range map[string]func(capacity int) Order{
		"raster":   func(int) Order { return Raster{} },
		"shuffled": func(c int) Order { return NewShuffled(42, c) },
	} {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(solid(2, 2, color.NRGBA{0x80, 0x81, 0xfe, 0x37}))
			o := order(b.Capacity())
			Embed(b, bits, o)
			got := Extract(b, o)
			assert.Len(t, got, 12)
			assert.Equal(t, bits, got[:len(bits)])
			for i := 3; i < len(b.Pix); i += 4 {
				assert.Equal(t, uint8(0x37), b.Pix[i], "alpha at %d", i)
			}
		})
	}
}

func TestEmbedRasterLayout(t *testing.T) {
	b := NewBuffer(solid(2, 1, color.NRGBA{0xfe, 0xff, 0xfe, 0xff}))
	Embed(b, []bool{true, false, true, true}, Raster{})
	assert.Equal(t, []uint8{
		0xff, 0xfe, 0xff, 0xff, // R, G, B written, A untouched
		0xff, 0xff, 0xfe, 0xff, // only R written
	}, b.Pix)
}

func TestEmbedFullCapacity(t *testing.T) {
	b := NewBuffer(solid(2, 2, color.NRGBA{0, 0, 0, 255}))
	bits := make([]bool, b.Capacity())
	for i := range bits {
		bits[i] = true
	}
	Embed(b, bits, Raster{})
	assert.Equal(t, bits, Extract(b, Raster{}))
	assert.Equal(t, []uint8{1, 1, 1, 255}, b.Pix[12:16])
}

func TestShuffledOrder(t *testing.T) {
	s := NewShuffled(7, 30)
	seen := make(map[int]bool)
	for i := range 30 {
		slot := s.Slot(i)
		assert.GreaterOrEqual(t, slot, 0)
		assert.Less(t, slot, 30)
		seen[slot] = true
	}
	assert.Len(t, seen, 30)
	assert.Equal(t, s, NewShuffled(7, 30))
}
