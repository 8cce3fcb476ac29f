package hash

import "github.com/gostonefire/hashtables/crt"

// LinearProbing - Probes the sequence i0, i0+1, i0+2, ... wrapping around at the table size.
// Within tableSize iterations every slot is visited exactly once.
type LinearProbing struct{}

// NewLinearProbing - Returns a pointer to a new LinearProbing instance
func NewLinearProbing() *LinearProbing {
	return &LinearProbing{}
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbing) ProbeIteration(baseIndex, iteration, tableSize int) int {
	return (baseIndex + iteration) % tableSize
}

// Technique - Returns crt.LinearProbing
func (L *LinearProbing) Technique() int {
	return crt.LinearProbing
}
