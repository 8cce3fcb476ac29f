package hash

import "github.com/gostonefire/hashtables/crt"

// QuadraticProbing - Probes the sequence i0, i0+1², i0+2², ... wrapping around at the table size.
// Unlike linear probing the sequence is not guaranteed to visit every slot within tableSize iterations,
// for a power of 2 table size for instance only a subset of the slots is ever reached.
type QuadraticProbing struct{}

// NewQuadraticProbing - Returns a pointer to a new QuadraticProbing instance
func NewQuadraticProbing() *QuadraticProbing {
	return &QuadraticProbing{}
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbing) ProbeIteration(baseIndex, iteration, tableSize int) int {
	// Reduce before squaring so large iterations can't overflow
	i := iteration % tableSize
	return (baseIndex + i*i) % tableSize
}

// Technique - Returns crt.QuadraticProbing
func (Q *QuadraticProbing) Technique() int {
	return crt.QuadraticProbing
}
