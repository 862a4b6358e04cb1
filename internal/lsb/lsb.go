package lsb

// Embed overwrites the least significant bit of the slot order.Slot(i) with bits[i].
// Samples beyond the last written slot and every alpha sample are left as is.
// len(bits) must not exceed b.Capacity().
func Embed(b *Buffer, bits []bool, order Order) {
	for i, bit := range bits {
		at := sampleIndex(order.Slot(i))
		if bit {
			b.Pix[at] |= 1
		} else {
			b.Pix[at] &^= 1
		}
	}
}

// Extract reads the least significant bit of every slot in order.
func Extract(b *Buffer, order Order) []bool {
	bits := make([]bool, b.Capacity())
	for i := range bits {
		bits[i] = b.Pix[sampleIndex(order.Slot(i))]&1 == 1
	}
	return bits
}
