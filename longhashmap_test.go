//go:build unit

package longhashmap

import (
	"errors"
	"github.com/gostonefire/longhashmap/hashfunc"
	"github.com/gostonefire/longhashmap/internal/conf"
	"github.com/gostonefire/longhashmap/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// identityHashAlgorithm - Returns the key unmixed, makes bucket placement predictable in tests
type identityHashAlgorithm struct{}

func (I *identityHashAlgorithm) HashFunc1(key int64) uint64 { return uint64(key) }

// constantHashAlgorithm - Puts every key in bucket 0
type constantHashAlgorithm struct{}

func (C *constantHashAlgorithm) HashFunc1(_ int64) uint64 { return 0 }

func TestNewLongHashMap(t *testing.T) {
	t.Run("creates long hash map", func(t *testing.T) {
		// Execute
		lhm, info, err := NewLongHashMap[string](100, nil)

		// Check
		assert.NoError(t, err, "creates long hash map")
		require.NotNil(t, lhm, "long hash map is returned")
		assert.Equal(t, int64(128), lhm.Capacity(), "capacity rounded up")
		assert.Equal(t, int64(128), info.NumberOfBuckets, "correct number of buckets in info")
		assert.Equal(t, conf.LoadFactorThreshold, info.LoadFactorThreshold, "correct load factor threshold in info")
		assert.Equal(t, conf.MaximumCapacity, info.MaximumBuckets, "correct maximum buckets in info")
		assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")
		assert.Nil(t, lhm.table, "bucket table not yet allocated")
		assert.True(t, lhm.IsEmpty(), "is empty")
	})

	t.Run("rounds capacity 5 up to 8", func(t *testing.T) {
		// Execute
		lhm, info, err := NewLongHashMap[string](5, nil)

		// Check
		assert.NoError(t, err, "creates long hash map")
		assert.Equal(t, int64(8), lhm.Capacity(), "capacity rounded up")
		assert.Equal(t, int64(8), info.NumberOfBuckets, "correct number of buckets in info")

		lhm.Put(1, "one")
		assert.Equal(t, 8, len(lhm.table), "bucket table allocated with rounded capacity")
	})

	t.Run("caps capacity at maximum", func(t *testing.T) {
		// Execute
		lhm, _, err := NewLongHashMap[string](1<<40, nil)

		// Check
		assert.NoError(t, err, "creates long hash map")
		assert.Equal(t, conf.MaximumCapacity, lhm.Capacity(), "capacity capped")
	})

	t.Run("error on zero capacity", func(t *testing.T) {
		// Execute
		lhm, _, err := NewLongHashMap[string](0, nil)

		// Check
		assert.Error(t, err, "zero capacity is rejected")
		assert.True(t, errors.Is(err, InvalidArgument{}), "error is of type InvalidArgument")
		assert.Nil(t, lhm, "no long hash map is returned")
	})

	t.Run("error on negative capacity", func(t *testing.T) {
		// Execute
		lhm, _, err := NewLongHashMap[string](-100, nil)

		// Check
		assert.Error(t, err, "negative capacity is rejected")
		assert.True(t, errors.Is(err, InvalidArgument{}), "error is of type InvalidArgument")
		assert.Contains(t, err.Error(), "-100", "error message has the given capacity")
		assert.Nil(t, lhm, "no long hash map is returned")
	})

	t.Run("uses custom hash algorithm", func(t *testing.T) {
		// Prepare
		ha := &identityHashAlgorithm{}

		// Execute
		lhm, info, err := NewLongHashMap[string](20, ha)

		// Check
		assert.NoError(t, err, "creates long hash map")
		assert.False(t, info.InternalAlgorithm, "has custom hash algorithm")
		assert.Equal(t, int64(32), lhm.Capacity(), "capacity rounded up")
		assert.Equal(t, int64(17), lhm.GetBucketNo(49), "bucket from custom hash algorithm masked by capacity")
	})

	t.Run("accepts the provided hash algorithms", func(t *testing.T) {
		// Prepare
		sip, err := NewRandomSipHashAlgorithm()
		require.NoError(t, err, "create random siphash algorithm")

		for _, ha := range []hashfunc.HashAlgorithm{NewMapHashAlgorithm(), NewSipHashAlgorithm(1, 2), sip} {
			// Execute
			lhm, info, err := NewLongHashMap[int](64, ha)

			// Check
			assert.NoError(t, err, "creates long hash map")
			assert.False(t, info.InternalAlgorithm, "has custom hash algorithm")
			for i := int64(0); i < 1000; i++ {
				lhm.Put(i, int(i))
			}
			for i := int64(0); i < 1000; i++ {
				v, ok := lhm.Get(i)
				assert.True(t, ok, "key found")
				assert.Equal(t, int(i), v, "correct value")
			}
		}
	})

	t.Run("hash algorithm can be shared between hash maps", func(t *testing.T) {
		// Prepare
		ha := NewSipHashAlgorithm(1, 2)
		a, _, err := NewLongHashMap[int64](16, ha)
		require.NoError(t, err, "create first long hash map")
		b, _, err := NewLongHashMap[int64](16, ha)
		require.NoError(t, err, "create second long hash map")

		for i := int64(0); i < 8; i++ {
			b.Put(i, i)
		}

		// Execute
		for i := int64(0); i < 150; i++ {
			a.Put(i, i*10)
		}

		// Check
		assert.Equal(t, int64(256), a.Capacity(), "first long hash map has grown")
		assert.Equal(t, int64(16), b.Capacity(), "second long hash map has not grown")
		assert.NotPanics(t, func() { b.Get(0) }, "get from second long hash map")
		for i := int64(0); i < 8; i++ {
			v, ok := b.Get(i)
			assert.True(t, ok, "key found in second long hash map")
			assert.Equal(t, i, v, "correct value in second long hash map")
		}
		for i := int64(0); i < 150; i++ {
			v, ok := a.Get(i)
			assert.True(t, ok, "key found in first long hash map")
			assert.Equal(t, i*10, v, "correct value in first long hash map")
		}
	})
}

func TestNewDefaultLongHashMap(t *testing.T) {
	t.Run("creates long hash map with default capacity", func(t *testing.T) {
		// Execute
		lhm := NewDefaultLongHashMap[string]()

		// Check
		assert.Equal(t, conf.DefaultCapacity, lhm.Capacity(), "default capacity")
		assert.IsType(t, &hash.SeparateChainingHashAlgorithm{}, lhm.hashAlgorithm, "has internal hash algorithm")
		assert.Equal(t, conf.MaximumCapacity, lhm.maximumCapacity, "default maximum capacity")
		assert.True(t, lhm.IsEmpty(), "is empty")
		assert.Equal(t, int64(0), lhm.Size(), "has no records")
	})
}

func TestInvalidArgument_Error(t *testing.T) {
	t.Run("has default message", func(t *testing.T) {
		assert.Equal(t, "invalid argument", InvalidArgument{}.Error(), "default message")
	})

	t.Run("matches with errors.Is regardless of message", func(t *testing.T) {
		err := error(InvalidArgument{msg: "bad"})
		assert.Equal(t, "bad", err.Error(), "custom message")
		assert.True(t, errors.Is(err, InvalidArgument{}), "matches")
		assert.False(t, errors.Is(errors.New("bad"), InvalidArgument{}), "plain error does not match")
	})
}
