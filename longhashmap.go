package longhashmap

import (
	"fmt"
	"github.com/gostonefire/longhashmap/hashfunc"
	"github.com/gostonefire/longhashmap/internal/conf"
	"github.com/gostonefire/longhashmap/internal/hash"
	"github.com/gostonefire/longhashmap/internal/utils"
)

// LongMap - Interface describing a map from int64 keys to values of type V
type LongMap[V comparable] interface {
	Put(key int64, value V) (previous V, existed bool)
	Get(key int64) (value V, ok bool)
	Remove(key int64) (previous V, existed bool)
	IsEmpty() bool
	ContainsKey(key int64) bool
	ContainsValue(value V) bool
	Keys() []int64
	Values() []V
	Size() int64
	Clear()
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the number of buckets the table is allocated with on first insert
//   - LoadFactorThreshold is the ratio of records to buckets at which the table is doubled
//   - MaximumBuckets is the number of buckets beyond which the table never grows
//   - InternalAlgorithm is true if the internal hash algorithm is used
type HashMapInfo struct {
	NumberOfBuckets     int64
	LoadFactorThreshold float64
	MaximumBuckets      int64
	InternalAlgorithm   bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the current length of the bucket table, zero if not yet allocated
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - LoadFactor is Records divided by NumberOfBuckets
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	NumberOfBuckets    int64
	UsedBuckets        int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// entry - One key/value pair and the link to the next entry in the same bucket
type entry[V comparable] struct {
	key   int64
	value V
	next  *entry[V]
}

// LongHashMap - The main implementation struct.
// It is not safe for concurrent use, callers sharing an instance between goroutines must synchronize access.
type LongHashMap[V comparable] struct {
	capacity        int64
	maximumCapacity int64
	table           []*entry[V]
	size            int64
	hashAlgorithm   hashfunc.HashAlgorithm
}

// NewLongHashMap - Returns a new hash map prepared to hold initialCapacity buckets before it starts growing.
// The bucket table itself is allocated on first insert.
//   - initialCapacity is the number of buckets to start with, it is rounded up to nearest exponent of 2 and capped at conf.MaximumCapacity.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//     The map masks the hash values itself, so one algorithm instance may be shared by several maps.
//
// It returns:
//   - longHashMap is a pointer to a LongHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is of type InvalidArgument if initialCapacity is not positive
func NewLongHashMap[V comparable](initialCapacity int64, hashAlgorithm hashfunc.HashAlgorithm) (
	longHashMap *LongHashMap[V],
	hashMapInfo HashMapInfo,
	err error,
) {
	// Check if initialCapacity is valid
	if initialCapacity <= 0 {
		err = InvalidArgument{msg: fmt.Sprintf("initial capacity must be a positive value higher than 0 (zero), got %d", initialCapacity)}
		return
	}

	capacity := conf.MaximumCapacity
	if initialCapacity < conf.MaximumCapacity {
		capacity = utils.RoundUp2(initialCapacity)
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeparateChainingHashAlgorithm()
		internalAlg = true
	}

	longHashMap = &LongHashMap[V]{
		capacity:        capacity,
		maximumCapacity: conf.MaximumCapacity,
		hashAlgorithm:   hashAlgorithm,
	}

	hashMapInfo = HashMapInfo{
		NumberOfBuckets:     capacity,
		LoadFactorThreshold: conf.LoadFactorThreshold,
		MaximumBuckets:      longHashMap.maximumCapacity,
		InternalAlgorithm:   internalAlg,
	}

	return
}

// NewDefaultLongHashMap - Returns a new hash map with conf.DefaultCapacity buckets and the internal hash algorithm
func NewDefaultLongHashMap[V comparable]() *LongHashMap[V] {
	return &LongHashMap[V]{
		capacity:        conf.DefaultCapacity,
		maximumCapacity: conf.MaximumCapacity,
		hashAlgorithm:   hash.NewSeparateChainingHashAlgorithm(),
	}
}

// NewMapHashAlgorithm - Returns a hash algorithm backed by the Go runtime map hasher with a random per instance seed
func NewMapHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewMapHashAlgorithm()
}

// NewSipHashAlgorithm - Returns a SipHash-2-4 hash algorithm keyed with k0 and k1
func NewSipHashAlgorithm(k0, k1 uint64) hashfunc.HashAlgorithm {
	return hash.NewSipHashAlgorithm(k0, k1)
}

// NewRandomSipHashAlgorithm - Returns a SipHash-2-4 hash algorithm keyed from crypto/rand
func NewRandomSipHashAlgorithm() (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	ha, err := hash.NewRandomSipHashAlgorithm()
	if err != nil {
		return
	}

	hashAlgorithm = ha

	return
}

// Capacity - Returns the current number of buckets, or the configured number if the table is not yet allocated
func (L *LongHashMap[V]) Capacity() int64 {
	return L.capacity
}
