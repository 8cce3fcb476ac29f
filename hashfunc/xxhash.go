package hashfunc

import "github.com/cespare/xxhash/v2"

// XXHash - Hash algorithm implemented using the 64-bit xxHash of the raw key bytes, folded to 31 bits
type XXHash struct{}

// NewXXHash - Returns a pointer to a new XXHash instance
func NewXXHash() *XXHash {
	return &XXHash{}
}

// Hash - Given key it generates a non-negative 32-bit hash value
func (X *XXHash) Hash(key []byte) (hash int32, err error) {
	if err = checkKey("xxhash", key); err != nil {
		return
	}

	h := xxhash.Sum64(key)
	hash = int32(uint32(h^(h>>32)) & positiveMask)

	return
}
