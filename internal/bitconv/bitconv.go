package bitconv

import (
	"fmt"
	"unicode/utf8"
)

// CharacterError reports a character that has no single-byte representation.
type CharacterError struct {
	// Index is the byte offset of the character in the source text.
	Index int
	Rune  rune
}

func (e *CharacterError) Error() string {
	if e.Rune == utf8.RuneError {
		return fmt.Sprintf("invalid character at offset %d", e.Index)
	}
	return fmt.Sprintf("character %U at offset %d is outside 1..255", e.Rune, e.Index)
}

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

// BoolsToBytes packs bits MSB-first. A trailing group shorter than 8 bits is dropped.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for j := range 8 {
			if bits[i*8+j] {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out
}

// TextToBytes maps each character of text to the byte of its code point.
func TextToBytes(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i, r := range text {
		// utf8.RuneError is above 0xff, so invalid UTF-8 is rejected here too.
		if r < 1 || r > 0xff {
			return nil, &CharacterError{Index: i, Rune: r}
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// TextToBits renders every character as 8 bits, most significant first.
func TextToBits(text string) ([]bool, error) {
	b, err := TextToBytes(text)
	if err != nil {
		return nil, err
	}
	return BytesToBools(b), nil
}

// BitsToText reads consecutive bytes from bits and maps each to the character
// with that code point. Decoding stops at the first zero byte.
func BitsToText(bits []bool) string {
	b := BoolsToBytes(bits)
	runes := make([]rune, 0, len(b))
	for _, c := range b {
		if c == 0 {
			break
		}
		runes = append(runes, rune(c))
	}
	return string(runes)
}
