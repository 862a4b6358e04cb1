package ecc

import (
	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

const (
	// CodewordBits is the length of one Golay(23,12) codeword.
	CodewordBits = 23
	// DataBits is the number of payload bits carried by one codeword.
	DataBits = 12
)

// Codec transforms a payload bit sequence before embedding and after extraction.
type Codec interface {
	Encode(bits []bool) []bool
	Decode(bits []bool) []bool
	EncodedLen(size int) int
}

var _ Codec = Plain{}
var _ Codec = Golay{}

// Plain leaves bits as they are.
type Plain struct{}

func (Plain) Encode(bits []bool) []bool { return bits }
func (Plain) Decode(bits []bool) []bool { return bits }
func (Plain) EncodedLen(size int) int   { return size }

// Golay protects bits with the binary Golay(23,12) code. Each codeword
// corrects up to three flipped bits.
type Golay struct{}

func (Golay) Encode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	data, size := pack(bits)
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(data, size)
	return unpack(encoded, enc.Bits())
}

// Decode decodes every whole codeword in bits. Trailing bits that do not form
// a full codeword are dropped.
func (Golay) Decode(bits []bool) []bool {
	n := len(bits) / CodewordBits * CodewordBits
	if n == 0 {
		return nil
	}
	data, size := pack(bits[:n])
	var decoded []uint64
	dec := golay.NewDecoder(data, size)
	_ = dec.Decode(&decoded)
	return unpack(decoded, min(golay.DecodedBits(n), len(decoded)*64))
}

func (Golay) EncodedLen(size int) int {
	if size == 0 {
		return 0
	}
	return golay.EncodedBits(size)
}

func pack(bits []bool) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	return w.Data(), w.Bits()
}

func unpack(data []uint64, size int) []bool {
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(size)
	bits := make([]bool, size)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}
