// RNG construction for the update pipeline.
//
// A single *rand.Rand is created per run and passed down explicitly.
// math/rand.Rand is NOT goroutine-safe; use DeriveRNG for independent streams.
package update

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewRNG returns a deterministic stream for seed when seeded is true, or a
// stream seeded from 8 bytes of OS entropy otherwise. The effective seed is
// returned so runs can be reproduced from logs.
//
// Complexity: O(1).
func NewRNG(seed int64, seeded bool) (*rand.Rand, int64, error) {
	if !seeded {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err != nil {
			return nil, 0, fmt.Errorf("NewRNG: read entropy: %w", err)
		}
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer so that neighbouring stream ids give uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once, so repeated derivations with the
// same id still differ.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}
