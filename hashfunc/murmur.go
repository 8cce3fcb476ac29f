package hashfunc

import "encoding/binary"

const (
	murmurSeed uint32 = 144
	murmurM    uint32 = 0x5bd1e995
	murmurR           = 24
)

// SimpleMurmur - A simplified MurmurHash2 over the raw key bytes. It mixes 4-byte little endian blocks,
// folds in a 1 to 3 byte tail and finishes with a fixed avalanche.
type SimpleMurmur struct{}

// NewSimpleMurmur - Returns a pointer to a new SimpleMurmur instance
func NewSimpleMurmur() *SimpleMurmur {
	return &SimpleMurmur{}
}

// Hash - Given key it generates a non-negative 32-bit hash value
func (S *SimpleMurmur) Hash(key []byte) (hash int32, err error) {
	if err = checkKey("simple murmur", key); err != nil {
		return
	}

	length := len(key)
	h := murmurSeed ^ uint32(length)
	i := 0

	for ; length >= 4; length -= 4 {
		k := binary.LittleEndian.Uint32(key[i:])
		k *= murmurM
		k ^= k >> murmurR
		k *= murmurM

		h *= murmurM
		h ^= k

		i += 4
	}

	switch length {
	case 3:
		h ^= uint32(key[i+2]) << 16
		fallthrough
	case 2:
		h ^= uint32(key[i+1]) << 8
		fallthrough
	case 1:
		h ^= uint32(key[i])
		h *= murmurM
	}

	// Avalanche
	h ^= h >> 13
	h *= murmurM
	h ^= h >> 15

	hash = int32(h & positiveMask)

	return
}
