package stego

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/stego_lsb/internal/bitconv"
)

var (
	ErrImageLoad            = errors.New("image could not be loaded")
	ErrCapacityExceeded     = errors.New("message is too long for the image")
	ErrUnsupportedCharacter = errors.New("message contains an unsupported character")
)

// CapacityError carries the bit counts of a message that does not fit.
// It is wrapped together with ErrCapacityExceeded.
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("required %d bits, available %d bits", e.Required, e.Available)
}

// CharacterError is the character that cannot be embedded. Only code points
// 1 to 255 map to a single byte. It is wrapped together with ErrUnsupportedCharacter.
type CharacterError = bitconv.CharacterError
