// Package storagetest holds the behaviour every storage.Storage implementation must show, run by the test
// files of each implementation.
package storagetest

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/gostonefire/hashtables/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
)

// Factory - Creates the storage under test with the given capacity and hash algorithm
type Factory func(capacity int, hashAlgorithm hashfunc.HashAlgorithm) (storage.Storage[string], error)

// IdentityHash - Hashes the decimal string representation of a non-negative number to the number itself,
// which makes it easy to force collisions. Keys that are not numbers hash to 0.
var IdentityHash = hashfunc.HashFunc(func(key []byte) (int32, error) {
	if key == nil {
		return 0, crt.NewInvalidArgument("identity: input can not be nil")
	}
	n, err := strconv.Atoi(string(key))
	if err != nil || n < 0 {
		return 0, nil
	}
	return int32(n), nil
})

// Run - Runs the shared behaviour tests against the storage created by newStorage
func Run(t *testing.T, newStorage Factory) {
	t.Run("rejects non-positive capacity", func(t *testing.T) {
		for _, c := range []int{0, -1} {
			_, err := newStorage(c, hashfunc.NewDjb2())
			assert.Truef(t, errors.Is(err, crt.InvalidArgument{}), "capacity %d rejected", c)
		}
	})

	t.Run("added entries are retrievable", func(t *testing.T) {
		// Prepare
		s, err := newStorage(10, hashfunc.NewDjb2())
		require.NoError(t, err)

		// Execute
		for i := 0; i < 20; i++ {
			err = s.Add(key(i), value(i))
			require.NoErrorf(t, err, "adds key #%d", i)
		}

		// Check
		assert.Equal(t, 20, s.Len(), "count of entries")
		for i := 0; i < 20; i++ {
			v, err := s.Get(key(i))
			assert.NoErrorf(t, err, "gets key #%d", i)
			assert.Equalf(t, value(i), v, "value of key #%d", i)
			found, err := s.ContainsKey(key(i))
			assert.NoErrorf(t, err, "contains key #%d", i)
			assert.Truef(t, found, "finds key #%d", i)
		}

		found, err := s.ContainsKey(key(99))
		assert.NoError(t, err)
		assert.False(t, found, "absent key not found")
	})

	t.Run("duplicate add is rejected and keeps first value", func(t *testing.T) {
		// Prepare
		s, err := newStorage(10, hashfunc.NewDjb2())
		require.NoError(t, err)
		require.NoError(t, s.Add([]byte("k"), "v1"))

		// Execute
		err = s.Add([]byte("k"), "v2")

		// Check
		assert.True(t, errors.Is(err, crt.DuplicateKey{}), "error of type DuplicateKey")
		assert.Equal(t, 1, s.Len(), "count unchanged")
		v, err := s.Get([]byte("k"))
		assert.NoError(t, err)
		assert.Equal(t, "v1", v, "first value remains")
	})

	t.Run("removed entries are gone", func(t *testing.T) {
		// Prepare
		s, err := newStorage(10, hashfunc.NewDjb2())
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			require.NoError(t, s.Add(key(i), value(i)))
		}

		// Execute
		err = s.Remove(key(2))

		// Check
		assert.NoError(t, err, "removes key")
		assert.Equal(t, 4, s.Len(), "count decreased")

		found, err := s.ContainsKey(key(2))
		assert.NoError(t, err)
		assert.False(t, found, "removed key not found")

		_, err = s.Get(key(2))
		assert.True(t, errors.Is(err, crt.KeyNotFound{}), "get fails with KeyNotFound")

		err = s.Remove(key(2))
		assert.True(t, errors.Is(err, crt.KeyNotFound{}), "second remove fails with KeyNotFound")
		assert.Equal(t, 4, s.Len(), "count unchanged by failing remove")

		for _, i := range []int{0, 1, 3, 4} {
			v, err := s.Get(key(i))
			assert.NoErrorf(t, err, "other key #%d still present", i)
			assert.Equalf(t, value(i), v, "value of key #%d", i)
		}
	})

	t.Run("removed key can be added again", func(t *testing.T) {
		// Prepare
		s, err := newStorage(10, hashfunc.NewDjb2())
		require.NoError(t, err)
		require.NoError(t, s.Add([]byte("k"), "v1"))
		require.NoError(t, s.Remove([]byte("k")))

		// Execute
		err = s.Add([]byte("k"), "v2")

		// Check
		assert.NoError(t, err, "re-adds key")
		v, err := s.Get([]byte("k"))
		assert.NoError(t, err)
		assert.Equal(t, "v2", v, "new value stored")
	})

	t.Run("nil key is rejected by every operation", func(t *testing.T) {
		// Prepare
		s, err := newStorage(10, hashfunc.NewDjb2())
		require.NoError(t, err)

		// Execute and Check
		err = s.Add(nil, "v")
		assert.True(t, errors.Is(err, crt.NullKey{}), "Add fails with NullKey")
		_, err = s.Get(nil)
		assert.True(t, errors.Is(err, crt.NullKey{}), "Get fails with NullKey")
		err = s.Remove(nil)
		assert.True(t, errors.Is(err, crt.NullKey{}), "Remove fails with NullKey")
		_, err = s.ContainsKey(nil)
		assert.True(t, errors.Is(err, crt.NullKey{}), "ContainsKey fails with NullKey")
		assert.Equal(t, 0, s.Len(), "nothing added")
	})

	t.Run("empty key is a valid key", func(t *testing.T) {
		// Prepare
		s, err := newStorage(10, hashfunc.NewDjb2())
		require.NoError(t, err)

		// Execute
		err = s.Add([]byte{}, "empty")

		// Check
		assert.NoError(t, err)
		v, err := s.Get([]byte{})
		assert.NoError(t, err)
		assert.Equal(t, "empty", v, "value of empty key")
	})

	t.Run("capacity 1 keeps all colliding keys", func(t *testing.T) {
		// Prepare
		s, err := newStorage(1, hashfunc.NewDjb2())
		require.NoError(t, err)

		// Execute
		for i := 1; i <= 3; i++ {
			require.NoErrorf(t, s.Add(key(i), value(i)), "adds key #%d", i)
		}

		// Check
		for i := 1; i <= 3; i++ {
			v, err := s.Get(key(i))
			assert.NoErrorf(t, err, "gets key #%d", i)
			assert.Equalf(t, value(i), v, "value of key #%d", i)
		}
	})

	t.Run("forced collisions are resolved", func(t *testing.T) {
		// Prepare
		s, err := newStorage(5, IdentityHash)
		require.NoError(t, err)

		// Execute
		for _, i := range []int{0, 5, 10} {
			require.NoErrorf(t, s.Add(key(i), value(i)), "adds key #%d", i)
		}

		// Check
		for _, i := range []int{0, 5, 10} {
			v, err := s.Get(key(i))
			assert.NoErrorf(t, err, "gets key #%d", i)
			assert.Equalf(t, value(i), v, "value of key #%d", i)
		}

		require.NoError(t, s.Remove(key(5)))
		v, err := s.Get(key(10))
		assert.NoError(t, err, "key behind removed key still reachable")
		assert.Equal(t, value(10), v, "value of key behind removed key")
	})

	t.Run("entries survive growth", func(t *testing.T) {
		// Prepare
		s, err := newStorage(4, hashfunc.NewSimpleMurmur())
		require.NoError(t, err)
		initialCapacity := s.GetStorageParameters().Capacity

		// Execute
		for i := 0; i < 1000; i++ {
			require.NoErrorf(t, s.Add(key(i), value(i)), "adds key #%d", i)

			params := s.GetStorageParameters()
			if params.GrowthMultiplier > 0 {
				assert.LessOrEqualf(t, float64(params.Count)/float64(params.Capacity), params.LoadFactorThreshold,
					"load factor within threshold after add #%d", i)
			}
		}

		// Check
		params := s.GetStorageParameters()
		if params.GrowthMultiplier > 0 {
			assert.Greater(t, params.Capacity, initialCapacity, "table has grown")
		} else {
			assert.Equal(t, initialCapacity, params.Capacity, "table has not grown")
		}
		for i := 0; i < 1000; i++ {
			v, err := s.Get(key(i))
			assert.NoErrorf(t, err, "gets key #%d", i)
			assert.Equalf(t, value(i), v, "value of key #%d", i)
		}
	})

	t.Run("bucket stats account for every entry", func(t *testing.T) {
		// Prepare
		s, err := newStorage(8, hashfunc.NewDjb2())
		require.NoError(t, err)
		for i := 0; i < 30; i++ {
			require.NoError(t, s.Add(key(i), value(i)))
		}

		// Execute
		stats := s.GetBucketStats()

		// Check
		var total int
		for _, bs := range stats {
			total += bs.Entries
		}
		assert.Equal(t, 30, total, "entries in all buckets")
		assert.Equal(t, s.GetStorageParameters().Capacity, len(stats), "one stat per bucket")
	})

	t.Run("stored key is not affected by changes to the caller's slice", func(t *testing.T) {
		// Prepare
		s, err := newStorage(10, hashfunc.NewDjb2())
		require.NoError(t, err)
		k := []byte("abc")
		require.NoError(t, s.Add(k, "v"))

		// Execute
		k[0] = 'x'

		// Check
		v, err := s.Get([]byte("abc"))
		assert.NoError(t, err, "original key still found")
		assert.Equal(t, "v", v, "value of original key")
	})

	t.Run("hash errors are returned without changing the table", func(t *testing.T) {
		// Prepare
		failing := hashfunc.HashFunc(func(key []byte) (int32, error) {
			if string(key) == "bad" {
				return 0, fmt.Errorf("can not hash %q", key)
			}
			return hashfunc.NewDjb2().Hash(key)
		})
		s, err := newStorage(10, failing)
		require.NoError(t, err)
		require.NoError(t, s.Add([]byte("good"), "v"))

		// Execute
		err = s.Add([]byte("bad"), "v")

		// Check
		assert.Error(t, err, "hash error returned")
		assert.Equal(t, 1, s.Len(), "count unchanged")
		_, err = s.ContainsKey([]byte("bad"))
		assert.Error(t, err, "hash error returned from ContainsKey")
	})
}

func key(i int) []byte {
	return []byte(strconv.Itoa(i))
}

func value(i int) string {
	return fmt.Sprintf("value-%d", i)
}
