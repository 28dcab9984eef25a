package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool holds reusable unkeyed BLAKE2b-256 instances.
var hasherPool = sync.Pool{
	New: func() any {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Hash computes the BLAKE2b-256 digest of data using a pooled hasher.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Returns it to the pool
//
// Example usage:
//
//	digest := utils.Hash(canonicalJSON)
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	hasherPool.Put(h)

	return sum
}

// HashString returns the hex-encoded BLAKE2b-256 digest of data.
//
// Record hashes kept by the record-level protocol and collection ETags are
// produced with this function, so both sides of a comparison must hash the
// same canonical encoding.
func HashString(data []byte) string {
	return hex.EncodeToString(Hash(data))
}
