package utils

import (
	"math/bits"
	"reflect"
)

// maxRoundUp2 - Largest power of two representable in an int64
const maxRoundUp2 int64 = 1 << 62

// RoundUp2 - Returns the nearest power of 2 that is equal to or bigger than a.
// Values less than or equal to 1 return 1 and values above 1<<62 saturate at 1<<62.
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}
	if a > maxRoundUp2 {
		return maxRoundUp2
	}

	return 1 << bits.Len64(uint64(a-1))
}

// IsEqual - Compares a and b with == unless either of them holds a dynamic type that would make == panic,
// such as a slice or map stored in an interface, in which case they are compared deeply.
func IsEqual[V comparable](a, b V) bool {
	if !canHoldInterface(reflect.TypeOf((*V)(nil)).Elem()) {
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if (va.IsValid() && !va.Comparable()) || (vb.IsValid() && !vb.Comparable()) {
		return reflect.DeepEqual(a, b)
	}

	return a == b
}

// canHoldInterface - Returns true if values of t may carry an interface somewhere inside them
func canHoldInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return canHoldInterface(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if canHoldInterface(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}

// LoadFactor - Returns the ratio between number of records and number of buckets.
// A table without buckets has a load factor of 0.
func LoadFactor(records, buckets int64) float64 {
	if buckets <= 0 {
		return 0
	}

	return float64(records) / float64(buckets)
}
