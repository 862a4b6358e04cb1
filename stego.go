package stego

import (
	"context"
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/yyyoichi/stego_lsb/internal/bitconv"
	"github.com/yyyoichi/stego_lsb/internal/ecc"
	"github.com/yyyoichi/stego_lsb/internal/lsb"
)

// Delimiter is appended to every message and marks the end of the payload.
// A message that itself contains Delimiter decodes up to its first occurrence.
// So does a message ending in "###END", "###END#" or "###END##": together with
// the head of the appended Delimiter its tail already forms one.
const Delimiter = "###END###"

// Encode hides message in an image with the specified options.
// This is a convenience function that creates a Stego instance and calls its Encode method.
func Encode(ctx context.Context, src image.Image, message string, opts ...Option) (image.Image, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Encode(ctx, src, message)
}

// Decode recovers a message from an image with the specified options.
// This is a convenience function that creates a Stego instance and calls its Decode method.
func Decode(ctx context.Context, src image.Image, opts ...Option) (string, error) {
	s, err := New(opts...)
	if err != nil {
		return "", err
	}
	return s.Decode(ctx, src)
}

// Capacity returns the number of payload bits an image of the given bounds
// can carry: one bit in each of the R, G and B samples of every pixel.
func Capacity(rect image.Rectangle) int {
	return rect.Dx() * rect.Dy() * 3
}

// Stego is a stateless LSB codec. It is safe for concurrent use.
type Stego struct {
	seed     int64
	shuffled bool
	codec    ecc.Codec
}

// New initializes a codec. Without options the payload is written in raster
// order without error correction.
func New(opts ...Option) (*Stego, error) {
	s := new(Stego)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Required returns the number of bits message occupies in an image,
// delimiter included.
func (s *Stego) Required(message string) (int, error) {
	if _, err := bitconv.TextToBytes(message); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedCharacter, err)
	}
	n := (utf8.RuneCountInString(message) + len(Delimiter)) * 8
	return s.codec.EncodedLen(n), nil
}

// MaxLen returns the number of characters of the longest message that fits
// into an image of the given bounds, or -1 if not even an empty message fits.
func (s *Stego) MaxLen(rect image.Rectangle) int {
	capacity := Capacity(rect)
	fits := func(n int) bool {
		return s.codec.EncodedLen((n+len(Delimiter))*8) <= capacity
	}
	if !fits(0) {
		return -1
	}
	lo, hi := 0, capacity/8
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Fits reports whether message can be encoded into an image of the given bounds.
func (s *Stego) Fits(rect image.Rectangle, message string) error {
	required, err := s.Required(message)
	if err != nil {
		return err
	}
	return checkCapacity(required, Capacity(rect))
}

// Encode hides message in the least significant bits of the image.
//
// Process:
//  1. Serializes message followed by Delimiter into bits, 8 bits per character, MSB first.
//  2. Checks that the bits fit into the image.
//  3. Copies the image and overwrites the LSB of R, G, then B of each pixel in raster order.
//  4. Returns the copy as *image.NRGBA. Alpha and untouched samples keep their values.
//
// Characters outside 1..255 fail with ErrUnsupportedCharacter and a message
// that does not fit fails with ErrCapacityExceeded. The source image is never modified.
// The result must be stored in a lossless format to keep the message.
func (s *Stego) Encode(ctx context.Context, src image.Image, message string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bits, err := bitconv.TextToBits(message + Delimiter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedCharacter, err)
	}
	bits = s.codec.Encode(bits)
	if err := checkCapacity(len(bits), Capacity(src.Bounds())); err != nil {
		return nil, err
	}

	buf := lsb.NewBuffer(src)
	lsb.Embed(buf, bits, s.order(buf.Capacity()))
	return buf.Image(), nil
}

// Decode recovers a message hidden by Encode with the same options.
//
// Process:
//  1. Reads the LSB of R, G and B of every pixel in raster order.
//  2. Groups the bits into bytes and stops at the first zero byte.
//  3. Returns the text before the first Delimiter.
//
// An image without a message yields an empty string and no error.
func (s *Stego) Decode(ctx context.Context, src image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	buf := lsb.NewBuffer(src)
	bits := lsb.Extract(buf, s.order(buf.Capacity()))
	text := bitconv.BitsToText(s.codec.Decode(bits))
	if i := strings.Index(text, Delimiter); i >= 0 {
		return text[:i], nil
	}
	return "", nil
}

func (s *Stego) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.codec == nil {
		s.codec = ecc.Plain{}
	}
	return nil
}

func (s *Stego) order(capacity int) lsb.Order {
	if s.shuffled {
		return lsb.NewShuffled(s.seed, capacity)
	}
	return lsb.Raster{}
}

func checkCapacity(required, available int) error {
	if required > available {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, &CapacityError{
			Required:  required,
			Available: available,
		})
	}
	return nil
}
