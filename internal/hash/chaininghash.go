package hash

// SeparateChainingHashAlgorithm - The internally used hash algorithm. The key is run through the
// murmur3 64-bit finalizer (fmix64) so that high and low bits of the key are mixed into every bit of the hash,
// which the hash map then masks with its number of buckets - 1.
type SeparateChainingHashAlgorithm struct{}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm() *SeparateChainingHashAlgorithm {
	return &SeparateChainingHashAlgorithm{}
}

// HashFunc1 - Given key it generates a 64-bit hash value
func (S *SeparateChainingHashAlgorithm) HashFunc1(key int64) uint64 {
	return Mix64(uint64(key))
}

// Mix64 - The murmur3 64-bit finalizer. Every input bit affects every output bit with roughly 50% probability,
// which keeps sequential keys from clustering in neighbouring buckets.
func Mix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
