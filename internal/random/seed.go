// Package random provides seeds and random sources for shuffling.
//
// Shuffles are not required to be cryptographically strong, but seeds are
// drawn from crypto/rand so that independent shoes do not share a sequence.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a pseudo-random source fully determined by seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
