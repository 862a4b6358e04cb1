package lsb

import "github.com/yyyoichi/stego_lsb/internal/shuffle"

// Order maps the i-th payload bit to a slot in [0, capacity).
// Slot s is channel s%3 (R, G, B) of pixel s/3.
type Order interface {
	Slot(i int) int
}

var _ Order = Raster{}
var _ Order = Shuffled(nil)

// Raster walks pixels row-major and channels R, G, B within each pixel.
type Raster struct{}

func (Raster) Slot(i int) int { return i }

// Shuffled visits every slot exactly once in a seeded pseudo-random order.
type Shuffled []int

func NewShuffled(seed int64, capacity int) Shuffled {
	return Shuffled(shuffle.Permutation(seed, capacity))
}

func (s Shuffled) Slot(i int) int { return s[i] }

func sampleIndex(slot int) int {
	return slot/3*4 + slot%3
}
