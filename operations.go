package longhashmap

import (
	"github.com/gostonefire/longhashmap/internal/conf"
	"github.com/gostonefire/longhashmap/internal/utils"
)

var _ LongMap[string] = (*LongHashMap[string])(nil)

// Put - Updates an existing record with a new value or adds it if no existing is found with same key.
//   - key is the identifier of a record
//   - value is the value to store, the zero value of V (e.g. nil) is a valid value
//
// It returns:
//   - previous is the value that was replaced, the zero value of V if the key was not present
//   - existed is true if the key was present before the call, which separates a replaced zero value from a new key
func (L *LongHashMap[V]) Put(key int64, value V) (previous V, existed bool) {
	if L.table == nil {
		L.table = make([]*entry[V], L.capacity)
	}

	bucketNo := L.bucketNo(key)
	record := L.table[bucketNo]
	if record == nil {
		L.table[bucketNo] = &entry[V]{key: key, value: value}
	} else {
		// Replace in place on first match, otherwise stop at the tail
		for {
			if record.key == key {
				previous, record.value = record.value, value
				existed = true
				return
			}
			if record.next == nil {
				break
			}
			record = record.next
		}
		record.next = &entry[V]{key: key, value: value}
	}

	L.size++
	L.resizeIfNeeded()

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, the zero value of V if not
//   - ok is true if a matching record was found
func (L *LongHashMap[V]) Get(key int64) (value V, ok bool) {
	record := L.find(key)
	if record == nil {
		return
	}

	value = record.value
	ok = true

	return
}

// Remove - Removes the record corresponding to key from the hash map. The bucket table never shrinks.
//   - key is the identifier of a record
//
// It returns:
//   - previous is the value of the removed record, the zero value of V if not found
//   - existed is true if a record was removed
func (L *LongHashMap[V]) Remove(key int64) (previous V, existed bool) {
	if L.table == nil || L.size == 0 {
		return
	}

	bucketNo := L.bucketNo(key)
	record := L.table[bucketNo]
	if record == nil {
		return
	}

	if record.key == key {
		L.table[bucketNo] = record.next
	} else {
		prev := record
		for record = record.next; record != nil; prev, record = record, record.next {
			if record.key == key {
				break
			}
		}
		if record == nil {
			return
		}
		prev.next = record.next
	}

	record.next = nil
	L.size--
	previous = record.value
	existed = true

	return
}

// ContainsKey - Returns true if a record with the given key exists, regardless of its value
func (L *LongHashMap[V]) ContainsKey(key int64) bool {
	return L.find(key) != nil
}

// ContainsValue - Walks through every record and returns true if any of them holds a value equal to value.
// Zero values compare equal to each other, so a nil value matches a record stored with nil.
// Interface values holding uncomparable types such as slices or maps are compared deeply instead of panicking.
func (L *LongHashMap[V]) ContainsValue(value V) bool {
	if L.table == nil || L.size == 0 {
		return false
	}

	iter := newTableRecords(L.table)
	for iter.hasNext() {
		record, _ := iter.next()
		if utils.IsEqual(record.value, value) {
			return true
		}
	}

	return false
}

// Keys - Returns all keys in the hash map in bucket order. The slice is empty, but not nil, for an empty hash map.
func (L *LongHashMap[V]) Keys() (keys []int64) {
	keys = make([]int64, 0, L.size)
	L.ForEach(func(key int64, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return
}

// Values - Returns all values in the hash map in bucket order. The slice is empty, but not nil, for an empty
// hash map and has the same length as Size otherwise.
func (L *LongHashMap[V]) Values() (values []V) {
	values = make([]V, 0, L.size)
	L.ForEach(func(_ int64, value V) bool {
		values = append(values, value)
		return true
	})

	return
}

// ForEach - Calls fn for every record in bucket order. Iteration stops when fn returns false.
// fn must not modify the hash map.
func (L *LongHashMap[V]) ForEach(fn func(key int64, value V) bool) {
	if L.table == nil || L.size == 0 {
		return
	}

	iter := newTableRecords(L.table)
	for iter.hasNext() {
		record, _ := iter.next()
		if !fn(record.key, record.value) {
			return
		}
	}
}

// Size - Returns the number of records in the hash map
func (L *LongHashMap[V]) Size() int64 {
	return L.size
}

// IsEmpty - Returns true if the hash map holds no records
func (L *LongHashMap[V]) IsEmpty() bool {
	return L.table == nil || L.size == 0
}

// Clear - Removes all records while keeping the current number of buckets
func (L *LongHashMap[V]) Clear() {
	if L.table == nil || L.size == 0 {
		return
	}

	for i := range L.table {
		L.table[i] = nil
	}
	L.size = 0
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
// With a large table the HashMapStat.BucketDistribution slice can be memory heavy (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (L *LongHashMap[V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	numberOfBuckets := int64(len(L.table))
	hms := HashMapStat{NumberOfBuckets: numberOfBuckets}

	if includeDistribution {
		hms.BucketDistribution = make([]int64, numberOfBuckets)
	}

	var chainLength int64
	lastBucket := -1
	iter := newTableRecords(L.table)
	for iter.hasNext() {
		_, bucketNo := iter.next()
		if bucketNo != lastBucket {
			hms.UsedBuckets++
			chainLength = 0
			lastBucket = bucketNo
		}
		chainLength++
		if chainLength > hms.LongestChain {
			hms.LongestChain = chainLength
		}
		hms.Records++
		if includeDistribution {
			hms.BucketDistribution[bucketNo]++
		}
	}

	hms.LoadFactor = utils.LoadFactor(hms.Records, numberOfBuckets)

	hashMapStat = &hms
	return
}

// GetBucketNo - Returns which bucket number that the given key results in with the current number of buckets
//   - key is the identifier of a record
func (L *LongHashMap[V]) GetBucketNo(key int64) (bucketNo int64) {
	bucketNo = int64(L.hashAlgorithm.HashFunc1(key) & uint64(L.capacity-1))

	return
}

// find - Returns the record matching key, or nil if there is none
func (L *LongHashMap[V]) find(key int64) *entry[V] {
	if L.table == nil || L.size == 0 {
		return nil
	}

	for record := L.table[L.bucketNo(key)]; record != nil; record = record.next {
		if record.key == key {
			return record
		}
	}

	return nil
}

// bucketNo - Returns the bucket index for key in the current table.
// The raw hash is masked with the capacity of this map, so the algorithm holds no table state of its own.
func (L *LongHashMap[V]) bucketNo(key int64) int64 {
	return int64(L.hashAlgorithm.HashFunc1(key) & uint64(len(L.table)-1))
}

// resizeIfNeeded - Doubles the bucket table if the load factor has reached conf.LoadFactorThreshold.
// Growth stops at the maximum capacity of the map, conf.MaximumCapacity unless changed.
func (L *LongHashMap[V]) resizeIfNeeded() {
	length := int64(len(L.table))
	if length >= L.maximumCapacity || utils.LoadFactor(L.size, length) < conf.LoadFactorThreshold {
		return
	}

	L.rehash(length << 1)
}

// rehash - Moves every record into a new bucket table of newLength buckets.
// Records keep their relative order within a bucket since they are appended at the tail.
func (L *LongHashMap[V]) rehash(newLength int64) {
	oldTable := L.table
	L.table = make([]*entry[V], newLength)
	L.capacity = newLength
	tails := make([]*entry[V], newLength)

	iter := newTableRecords(oldTable)
	for iter.hasNext() {
		record, _ := iter.next()
		record.next = nil

		bucketNo := L.bucketNo(record.key)
		if tails[bucketNo] == nil {
			L.table[bucketNo] = record
		} else {
			tails[bucketNo].next = record
		}
		tails[bucketNo] = record
	}
}
