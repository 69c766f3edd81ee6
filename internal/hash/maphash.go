package hash

import (
	"github.com/dolthub/maphash"
)

// MapHashAlgorithm - Hash algorithm backed by the Go runtime's own map hasher. Each instance gets a
// random seed, so hash values differ between instances (and between program runs) while staying stable for
// the lifetime of one instance.
type MapHashAlgorithm struct {
	hasher maphash.Hasher[int64]
}

// NewMapHashAlgorithm - Returns a pointer to a new MapHashAlgorithm instance with a freshly seeded hasher
func NewMapHashAlgorithm() *MapHashAlgorithm {
	return &MapHashAlgorithm{hasher: maphash.NewHasher[int64]()}
}

// HashFunc1 - Given key it generates a 64-bit hash value
func (M *MapHashAlgorithm) HashFunc1(key int64) uint64 {
	return M.hasher.Hash(key)
}
