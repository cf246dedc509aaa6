package sum

import (
	"encoding/hex"
	"hash"

	"github.com/zeebo/blake3"
)

// Size is the byte-size of a checksum
const Size = 32

// Sum stores a BLAKE3 checksum
type Sum [Size]byte

// Compute returns the checksum of a byte slice.
func Compute(data []byte) Sum {
	h := New()
	h.Write(data)
	return h.Sum()
}

// AsHex returns the hex-encoded representation of s.
func (s Sum) AsHex() string {
	return hex.EncodeToString(s[:])
}

// String implements fmt.Stringer.
func (s Sum) String() string {
	return s.AsHex()
}

// Hash computes a checksum incrementally. Implements the `io.Writer` interface.
type Hash struct {
	h hash.Hash
	n int64
}

// New returns a new Hash.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Write writes a byte slice to the hash function. It never returns an error.
func (h *Hash) Write(p []byte) (int, error) {
	n, err := h.h.Write(p)
	h.n += int64(n)
	return n, err
}

// Len returns the number of bytes written to the hash so far.
func (h *Hash) Len() int64 {
	return h.n
}

// Sum returns the current checksum of a Hash.
func (h *Hash) Sum() Sum {
	var s Sum
	copy(s[:], h.h.Sum(nil))
	return s
}
