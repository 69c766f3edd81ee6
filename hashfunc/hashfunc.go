package hashfunc

// HashAlgorithm - Interface that permits an implementation using the LongHashMap to supply a custom hash
// function suited for its particular distribution of keys.
//
// The hash map selects a bucket as hash & (number of buckets - 1), so the low bits of the returned value decide
// placement and should depend on all bits of the key. The hash map keeps its number of buckets to itself, hence one
// HashAlgorithm instance may be shared by any number of hash maps as long as HashFunc1 is free of side effects.
type HashAlgorithm interface {
	// HashFunc1 - Given key it generates a 64-bit hash value.
	// It must always return the same value for the same key.
	HashFunc1(key int64) uint64
}
