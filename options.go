package stego

import (
	"github.com/yyyoichi/stego_lsb/internal/ecc"
	"github.com/yyyoichi/stego_lsb/internal/shuffle"
)

type Option func(*Stego) error

// WithShuffle scatters the payload over every R, G and B sample of the image
// in a pseudo-random order derived from seed, instead of raster order.
// The same seed must be given when decoding.
//
// The permutation covers the whole image, so memory grows with the pixel count.
func WithShuffle(seed int64) Option {
	return func(s *Stego) error {
		s.seed = seed
		s.shuffled = true
		return nil
	}
}

// WithGolay protects the payload with the Golay(23,12) code.
// Every 12 payload bits become a 23-bit codeword, and up to three flipped
// bits per codeword are corrected on decode.
func WithGolay() Option {
	return func(s *Stego) error {
		s.codec = ecc.Golay{}
		return nil
	}
}

// WithPassphrase is WithShuffle with a seed derived from passphrase.
func WithPassphrase(passphrase string) Option {
	return func(s *Stego) error {
		seed, err := shuffle.SeedFromPassphrase(passphrase)
		if err != nil {
			return err
		}
		return WithShuffle(seed)(s)
	}
}
