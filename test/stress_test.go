//go:build stress

package test

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtables"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

type testRecord struct {
	key   []byte
	value int
}

func createTestdata(r *rand.Rand, amount int) []testRecord {
	records := make([]testRecord, amount)
	for i := range records {
		key := make([]byte, 20)
		_, _ = r.Read(key)
		records[i] = testRecord{key: key, value: r.Int()}
	}

	return records
}

// addTestdata - Adds all records and returns the ones rejected with crt.TableFull
func addTestdata(records []testRecord, ht *hashtables.HashTable[int]) (rejected map[string]bool, err error) {
	rejected = make(map[string]bool)
	for _, rec := range records {
		err = ht.Add(rec.key, rec.value)
		if errors.Is(err, crt.TableFull{}) {
			rejected[string(rec.key)] = true
			err = nil
			continue
		}
		if err != nil {
			return
		}
	}

	return
}

func removeTestdata(records []testRecord, ht *hashtables.HashTable[int], rejected map[string]bool) error {
	for _, rec := range records {
		if rejected[string(rec.key)] {
			continue
		}
		if err := ht.Remove(rec.key); err != nil {
			return err
		}
	}

	return nil
}

func getTestdata(records []testRecord, ht *hashtables.HashTable[int], shouldNotExist bool, rejected map[string]bool) error {
	for _, rec := range records {
		value, err := ht.Get(rec.key)
		if shouldNotExist || rejected[string(rec.key)] {
			if err == nil {
				return fmt.Errorf("get should not get data for key %x", rec.key)
			} else if !errors.Is(err, crt.KeyNotFound{}) {
				return err
			}
			continue
		}

		if err != nil {
			return err
		}
		if value != rec.value {
			return fmt.Errorf("got wrong value for key %x", rec.key)
		}
	}

	return nil
}

type TestCaseStressTest struct {
	crtName       string
	crt           int
	capacity      int
	hashAlgorithm hashfunc.HashAlgorithm
	nTestdata     int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all CRTs", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{crtName: "ArrayChaining", crt: crt.ArrayChaining, capacity: 100000, nTestdata: 100000},
			{crtName: "ListChaining", crt: crt.ListChaining, capacity: 10, nTestdata: 1000000},
			{crtName: "LinkedChaining", crt: crt.LinkedChaining, capacity: 10, nTestdata: 1000000},
			{crtName: "LinearProbing", crt: crt.LinearProbing, capacity: 16, nTestdata: 1000000},
			{crtName: "LinearProbing with XXHash", crt: crt.LinearProbing, capacity: 16, hashAlgorithm: hashfunc.NewXXHash(), nTestdata: 1000000},
			{crtName: "QuadraticProbing", crt: crt.QuadraticProbing, capacity: 16, nTestdata: 1000000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress and growth for %s", test.crtName), func(t *testing.T) {
				// Prepare test data
				r := rand.New(rand.NewSource(123))
				set1 := createTestdata(r, test.nTestdata)
				set2 := createTestdata(r, test.nTestdata)
				set3 := createTestdata(r, test.nTestdata)

				// Prepare hash table
				ht, _, err := hashtables.NewHashTable[int](test.crt, test.capacity, test.hashAlgorithm)
				require.NoError(t, err, "create hash table")

				// Add first two sets of test data
				rejected1, err := addTestdata(set1, ht)
				assert.NoError(t, err, "add test set 1")
				rejected2, err := addTestdata(set2, ht)
				assert.NoError(t, err, "add test set 2")

				// Remove first set from hash table
				err = removeTestdata(set1, ht, rejected1)
				assert.NoError(t, err, "remove test set 1")

				// Add third set of test data
				rejected3, err := addTestdata(set3, ht)
				assert.NoError(t, err, "add test set 3")

				// Check all three test sets
				err = getTestdata(set1, ht, true, nil)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(set2, ht, false, rejected2)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata(set3, ht, false, rejected3)
				assert.NoError(t, err, "get test set 3")

				// Remove second set from hash table
				err = removeTestdata(set2, ht, rejected2)
				assert.NoError(t, err, "remove test set 2")

				// Check all three test sets
				err = getTestdata(set1, ht, true, nil)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(set2, ht, true, nil)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata(set3, ht, false, rejected3)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				stat := ht.Stat(false)
				nRejected := len(rejected1) + len(rejected2) + len(rejected3)
				assert.Equal(t, test.nTestdata-len(rejected3), stat.Records, "correct number of records")
				assert.Equal(t, stat.Records, ht.Len(), "stat agrees with length")

				if test.crt == crt.QuadraticProbing {
					t.Logf("%d of %d adds rejected with TableFull", nRejected, 3*test.nTestdata)
				} else {
					assert.Zero(t, nRejected, "only quadratic probing may report a full table")
				}
			})
		}
	})
}
