package hashfunc

import (
	"github.com/gostonefire/hashtables/crt"
	"unicode/utf16"
	"unicode/utf8"
)

// HashAlgorithm - Interface that permits a user of the hash tables to supply a custom hash algorithm suited for
// the particular distribution of keys.
type HashAlgorithm interface {
	// Hash - Given key it generates a deterministic non-negative 32-bit hash value.
	// The hash table reduces the value to a bucket index by itself (hash % table size), hence the value does not
	// have to be within any particular range other than being non-negative.
	// A nil key must result in an error of type crt.InvalidArgument.
	Hash(key []byte) (hash int32, err error)
}

// HashFunc - Adapter allowing an ordinary function to be used as a HashAlgorithm
type HashFunc func(key []byte) (hash int32, err error)

// Hash - Calls f(key)
func (f HashFunc) Hash(key []byte) (hash int32, err error) {
	return f(key)
}

// positiveMask - Masks off the top bit of a 32-bit value to ensure a non-negative hash
const positiveMask = 0x7FFFFFFF

// checkKey - Returns an error of type crt.InvalidArgument if key is nil
func checkKey(algorithm string, key []byte) (err error) {
	if key == nil {
		err = crt.NewInvalidArgument("%s: input can not be nil", algorithm)
	}

	return
}

// characters - Returns the characters the text hashes iterate over. A key holding valid UTF-8 text gives its UTF-16
// code units, any other key gives its raw bytes so that distinct binary keys stay distinct.
func characters(key []byte) (chars []uint16) {
	if utf8.Valid(key) {
		return utf16.Encode([]rune(string(key)))
	}

	chars = make([]uint16, len(key))
	for i, b := range key {
		chars[i] = uint16(b)
	}

	return
}
