package shuffle

import (
	"crypto/hkdf"
	"crypto/sha256"
	"encoding/binary"
	"errors"
)

const seedInfo = "stego-lsb-shuffle-seed-v1"

var ErrEmptyPassphrase = errors.New("empty passphrase")

// SeedFromPassphrase derives a permutation seed from passphrase with
// HKDF-SHA256. The same passphrase always yields the same seed.
func SeedFromPassphrase(passphrase string) (int64, error) {
	if passphrase == "" {
		return 0, ErrEmptyPassphrase
	}
	key, err := hkdf.Key(sha256.New, []byte(passphrase), nil, seedInfo, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(key) >> 1), nil
}
