package growth

import (
	"github.com/gostonefire/hashtables/crt"
)

// DefaultMultiplier - Factor the capacity is multiplied with every time a table grows
const DefaultMultiplier int = 2

// Policy - Decides when a table has to grow before an insert and to what capacity.
// A policy is fixed when a table is created and never changes for the life of the table.
//   - Threshold is the load factor (count / capacity) that must not be crossed
//   - Multiplier is the capacity growth factor, zero disables growth
//   - Inclusive makes reaching the threshold trigger growth, otherwise it has to be exceeded
type Policy struct {
	Threshold  float64
	Multiplier int
	Inclusive  bool
}

// Disabled - Policy for tables with a fixed capacity
var Disabled = Policy{}

// NewPolicy - Returns a validated growth policy
func NewPolicy(threshold float64, multiplier int, inclusive bool) (policy Policy, err error) {
	if threshold <= 0 || threshold > 1 {
		err = crt.NewInvalidArgument("load factor threshold must be in the range (0, 1], got %g", threshold)
		return
	}
	if multiplier < 2 {
		err = crt.NewInvalidArgument("growth multiplier must be at least 2, got %d", multiplier)
		return
	}

	policy = Policy{Threshold: threshold, Multiplier: multiplier, Inclusive: inclusive}

	return
}

// Enabled - Returns true if the policy ever grows a table
func (P Policy) Enabled() bool {
	return P.Multiplier >= 2
}

// Triggered - Returns true if inserting one more entry into a table holding count entries in capacity
// buckets would cross the threshold
func (P Policy) Triggered(count, capacity int) bool {
	if !P.Enabled() {
		return false
	}

	ratio := float64(count+1) / float64(capacity)
	if P.Inclusive {
		return ratio >= P.Threshold
	}
	return ratio > P.Threshold
}

// NextCapacity - Returns the capacity a table holding count entries must have before one more entry
// is inserted. If no growth is needed the current capacity is returned.
func (P Policy) NextCapacity(count, capacity int) int {
	for P.Triggered(count, capacity) {
		capacity *= P.Multiplier
	}

	return capacity
}
