package growth

import (
	"errors"
	"github.com/gostonefire/hashtables/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewPolicy(t *testing.T) {
	t.Run("creates a valid policy", func(t *testing.T) {
		// Execute
		p, err := NewPolicy(0.75, DefaultMultiplier, false)

		// Check
		require.NoError(t, err)
		assert.Equal(t, 0.75, p.Threshold, "threshold preserved")
		assert.Equal(t, 2, p.Multiplier, "multiplier preserved")
		assert.True(t, p.Enabled(), "policy enabled")
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		_, err := NewPolicy(0, 2, false)
		assert.True(t, errors.Is(err, crt.InvalidArgument{}), "zero threshold rejected")
		_, err = NewPolicy(1.5, 2, false)
		assert.True(t, errors.Is(err, crt.InvalidArgument{}), "threshold above 1 rejected")
		_, err = NewPolicy(0.5, 1, false)
		assert.True(t, errors.Is(err, crt.InvalidArgument{}), "multiplier below 2 rejected")
	})
}

func TestPolicy_Triggered(t *testing.T) {
	t.Run("exclusive policy triggers when threshold is exceeded", func(t *testing.T) {
		// Prepare
		p, err := NewPolicy(0.75, 2, false)
		require.NoError(t, err)

		// Execute and Check
		assert.False(t, p.Triggered(2, 4), "3/4 does not exceed 0.75")
		assert.True(t, p.Triggered(3, 4), "4/4 exceeds 0.75")
		assert.True(t, p.Triggered(0, 1), "1/1 exceeds 0.75")
	})

	t.Run("inclusive policy triggers when threshold is reached", func(t *testing.T) {
		// Prepare
		p, err := NewPolicy(0.6, 2, true)
		require.NoError(t, err)

		// Execute and Check
		assert.False(t, p.Triggered(4, 10), "5/10 below 0.6")
		assert.True(t, p.Triggered(5, 10), "6/10 reaches 0.6")
	})

	t.Run("disabled policy never triggers", func(t *testing.T) {
		assert.False(t, Disabled.Triggered(100, 1), "never triggers")
		assert.Equal(t, 1, Disabled.NextCapacity(100, 1), "capacity unchanged")
	})
}

func TestPolicy_NextCapacity(t *testing.T) {
	t.Run("doubles until the insert fits", func(t *testing.T) {
		// Prepare
		p, err := NewPolicy(0.75, 2, false)
		require.NoError(t, err)

		// Execute and Check
		assert.Equal(t, 10, p.NextCapacity(5, 10), "no growth needed")
		assert.Equal(t, 20, p.NextCapacity(7, 10), "grows once")
		assert.Equal(t, 2, p.NextCapacity(0, 1), "capacity 1 grows to 2")
		assert.Equal(t, 4, p.NextCapacity(2, 1), "grows several times")
	})

	t.Run("keeps load factor within threshold after insert", func(t *testing.T) {
		// Prepare
		p, err := NewPolicy(0.7, 2, true)
		require.NoError(t, err)

		capacity := 1
		for count := 0; count < 1000; count++ {
			// Execute
			capacity = p.NextCapacity(count, capacity)

			// Check
			assert.Lessf(t, float64(count+1)/float64(capacity), 0.7, "load factor below threshold at count %d", count+1)
		}
	})
}
