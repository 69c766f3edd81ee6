package hash

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"github.com/dchest/siphash"
)

// SipHashAlgorithm - Hash algorithm using SipHash-2-4 over the little endian bytes of the key.
// With secret keys k0 and k1 an outsider can not construct keys that all land in the same bucket.
type SipHashAlgorithm struct {
	k0 uint64
	k1 uint64
}

// NewSipHashAlgorithm - Returns a pointer to a new SipHashAlgorithm instance using the given 128-bit key
//   - k0 is the low 64 bits of the SipHash key
//   - k1 is the high 64 bits of the SipHash key
func NewSipHashAlgorithm(k0, k1 uint64) *SipHashAlgorithm {
	return &SipHashAlgorithm{k0: k0, k1: k1}
}

// NewRandomSipHashAlgorithm - Returns a pointer to a new SipHashAlgorithm instance with a key read from crypto/rand
func NewRandomSipHashAlgorithm() (ha *SipHashAlgorithm, err error) {
	var buf [16]byte
	_, err = rand.Read(buf[:])
	if err != nil {
		err = fmt.Errorf("error while reading random siphash key: %s", err)
		return
	}

	ha = NewSipHashAlgorithm(binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:]))

	return
}

// HashFunc1 - Given key it generates a 64-bit hash value
func (S *SipHashAlgorithm) HashFunc1(key int64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return siphash.Hash(S.k0, S.k1, buf[:])
}
