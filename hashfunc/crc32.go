package hashfunc

import "hash/crc32"

// CRC32 - Hash algorithm implemented using crc32.ChecksumIEEE over the raw key bytes
type CRC32 struct{}

// NewCRC32 - Returns a pointer to a new CRC32 instance
func NewCRC32() *CRC32 {
	return &CRC32{}
}

// Hash - Given key it generates a non-negative 32-bit hash value
func (C *CRC32) Hash(key []byte) (hash int32, err error) {
	if err = checkKey("crc32", key); err != nil {
		return
	}

	hash = int32(crc32.ChecksumIEEE(key) & positiveMask)

	return
}
