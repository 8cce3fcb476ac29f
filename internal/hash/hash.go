package hash

import (
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
)

// Prober - Interface for the collision resolution algorithms used in open addressing.
type Prober interface {
	// ProbeIteration - Returns the slot to examine in the given iteration of a probe sequence.
	// Since the function is called repeatedly during collision resolution, and the base index is the same
	// throughout the iterations for one key, it takes the base index rather than the key.
	//   - baseIndex is hash(key) % tableSize
	//   - iteration is the zero based attempt number
	//   - tableSize is the current number of slots
	ProbeIteration(baseIndex, iteration, tableSize int) int

	// Technique - Returns the crt constant of the collision resolution technique implemented
	Technique() int
}

// NewProber - Returns the Prober for an open addressing collision resolution technique
func NewProber(technique int) (prober Prober, err error) {
	switch technique {
	case crt.LinearProbing:
		prober = NewLinearProbing()
	case crt.QuadraticProbing:
		prober = NewQuadraticProbing()
	default:
		err = crt.NewInvalidArgument("%s is not an open addressing technique", crt.Name(technique))
	}

	return
}

// BucketIndex - Hashes key with the hash algorithm and reduces the value to an index between 0 and tableSize - 1
func BucketIndex(hashAlgorithm hashfunc.HashAlgorithm, key []byte, tableSize int) (index int, err error) {
	h, err := hashAlgorithm.Hash(key)
	if err != nil {
		return
	}
	if h < 0 {
		err = fmt.Errorf("hash algorithm returned a negative value %d", h)
		return
	}

	index = int(h) % tableSize

	return
}
