package separatechaining

import (
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/gostonefire/hashtables/internal/model"
	"github.com/gostonefire/hashtables/internal/storage"
	"github.com/gostonefire/hashtables/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
)

func TestLinkedBuckets(t *testing.T) {
	storagetest.Run(t, func(capacity int, hashAlgorithm hashfunc.HashAlgorithm) (storage.Storage[string], error) {
		return NewLinkedBuckets[string](model.CRTConf{Capacity: capacity, HashAlgorithm: hashAlgorithm})
	})
}

// chain - Returns the keys of the chain in bucket index in link order
func chain[V any](l *LinkedBuckets[V], index int) (keys []string) {
	for n := l.heads[index]; n != noNode; n = l.nodes[n].next {
		keys = append(keys, string(l.nodes[n].entry.Key))
	}

	return
}

func TestNewLinkedBuckets(t *testing.T) {
	t.Run("creates empty chains", func(t *testing.T) {
		// Execute
		lb, err := NewLinkedBuckets[int](model.CRTConf{Capacity: 10, HashAlgorithm: hashfunc.NewDjb2()})

		// Check
		require.NoError(t, err)
		assert.Len(t, lb.heads, 10, "one head per bucket")
		for i, head := range lb.heads {
			assert.Equalf(t, noNode, head, "bucket #%d empty", i)
		}
		assert.Equal(t, noNode, lb.free, "free list empty")
		assert.Equal(t, crt.LinkedChaining, lb.GetStorageParameters().CollisionResolutionTechnique, "technique")
	})
}

func TestLinkedBuckets_Add(t *testing.T) {
	t.Run("appends to the end of the chain", func(t *testing.T) {
		// Prepare
		lb, err := NewLinkedBuckets[int](model.CRTConf{Capacity: 100, HashAlgorithm: storagetest.IdentityHash})
		require.NoError(t, err)

		// Execute
		for _, k := range []string{"3", "103", "203"} {
			require.NoError(t, lb.Add([]byte(k), 0))
		}

		// Check
		assert.Equal(t, []string{"3", "103", "203"}, chain(lb, 3), "chain in insertion order")
	})

	t.Run("rehash keeps chains in order and compacts the arena", func(t *testing.T) {
		// Prepare
		lb, err := NewLinkedBuckets[int](model.CRTConf{Capacity: 4, HashAlgorithm: storagetest.IdentityHash})
		require.NoError(t, err)
		for _, k := range []string{"0", "4", "8"} {
			require.NoError(t, lb.Add([]byte(k), 0))
		}
		require.NoError(t, lb.Remove([]byte("4")))
		require.NoError(t, lb.Add([]byte("12"), 0))
		assert.Len(t, lb.nodes, 3, "removed node reused")

		// Execute
		require.NoError(t, lb.Add([]byte("16"), 0))

		// Check
		assert.Equal(t, 8, lb.capacity, "capacity doubled")
		assert.Equal(t, []string{"0", "8", "16"}, chain(lb, 0), "chain of bucket 0")
		assert.Equal(t, []string{"12"}, chain(lb, 4), "chain of bucket 4")
		assert.Len(t, lb.nodes, 4, "arena compacted")
		assert.Equal(t, noNode, lb.free, "free list empty after rehash")
	})
}

func TestLinkedBuckets_Remove(t *testing.T) {
	t.Run("unlinks head, middle and tail nodes", func(t *testing.T) {
		// Prepare
		lb, err := NewLinkedBuckets[int](model.CRTConf{Capacity: 100, HashAlgorithm: storagetest.IdentityHash})
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			require.NoError(t, lb.Add([]byte(strconv.Itoa(i*100+1)), i))
		}

		// Execute and Check
		require.NoError(t, lb.Remove([]byte("201")))
		assert.Equal(t, []string{"1", "101", "301", "401"}, chain(lb, 1), "middle removed")
		require.NoError(t, lb.Remove([]byte("1")))
		assert.Equal(t, []string{"101", "301", "401"}, chain(lb, 1), "head removed")
		require.NoError(t, lb.Remove([]byte("401")))
		assert.Equal(t, []string{"101", "301"}, chain(lb, 1), "tail removed")
	})

	t.Run("reuses removed nodes", func(t *testing.T) {
		// Prepare
		lb, err := NewLinkedBuckets[int](model.CRTConf{Capacity: 100, HashAlgorithm: hashfunc.NewDjb2()})
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			require.NoError(t, lb.Add([]byte(strconv.Itoa(i)), i))
		}
		require.NoError(t, lb.Remove([]byte("1")))
		require.NoError(t, lb.Remove([]byte("3")))

		// Execute
		require.NoError(t, lb.Add([]byte("a"), 10))
		require.NoError(t, lb.Add([]byte("b"), 11))

		// Check
		assert.Len(t, lb.nodes, 5, "arena did not grow")
		assert.Equal(t, noNode, lb.free, "free list used up")
		v, err := lb.Get([]byte("b"))
		assert.NoError(t, err)
		assert.Equal(t, 11, v, "value in reused node")
	})
}
