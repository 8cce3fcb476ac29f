// Package benchmark measures insert, lookup and remove times of the hash table techniques.
package benchmark

import (
	"context"
	"fmt"
	"github.com/gostonefire/hashtables"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"golang.org/x/sync/errgroup"
	"time"
)

// Table - The operations a benchmark exercises, implemented by hashtables.HashTable[int]
type Table interface {
	Add(key []byte, value int) (err error)
	Get(key []byte) (value int, err error)
	Remove(key []byte) (err error)
	ContainsKey(key []byte) (found bool, err error)
}

// Case - One technique to benchmark
//   - Name is the label used in results
//   - Technique is one of the crt constants
//   - HashAlgorithm is the hash algorithm to use, nil selects the default of the technique
type Case struct {
	Name          string
	Technique     int
	HashAlgorithm hashfunc.HashAlgorithm
}

// Result - Timings of one benchmark run
//   - Name is the label of the case
//   - Insert is the time it took to add all keys
//   - Lookup is the time it took to check and get all keys
//   - Remove is the time it took to check and remove all keys
//   - Missing is the number of keys that were not found during lookup or removal, zero for a correct table
type Result struct {
	Name    string
	Insert  time.Duration
	Lookup  time.Duration
	Remove  time.Duration
	Missing int
}

// DefaultCases - Returns one case per technique, linear probing hashes with Djb2 and quadratic probing with
// SimpleMurmur while the chaining techniques use their defaults
func DefaultCases() []Case {
	return []Case{
		{Name: "Chaining with array buckets", Technique: crt.ArrayChaining},
		{Name: "Chaining with list buckets", Technique: crt.ListChaining},
		{Name: "Chaining with linked buckets", Technique: crt.LinkedChaining},
		{Name: "Linear probing", Technique: crt.LinearProbing, HashAlgorithm: hashfunc.NewDjb2()},
		{Name: "Quadratic probing", Technique: crt.QuadraticProbing, HashAlgorithm: hashfunc.NewSimpleMurmur()},
	}
}

// Run - Adds every key to table with its position as value, then checks and gets every key and finally checks
// and removes every key, timing each phase.
// It returns an error if an Add fails or if any other operation returns an error.
func Run(name string, table Table, keys [][]byte) (result Result, err error) {
	result.Name = name

	start := time.Now()
	for i, key := range keys {
		if err = table.Add(key, i); err != nil {
			err = fmt.Errorf("%s: error while adding key %q: %w", name, key, err)
			return
		}
	}
	result.Insert = time.Since(start)

	var found bool
	start = time.Now()
	for _, key := range keys {
		if found, err = table.ContainsKey(key); err != nil {
			err = fmt.Errorf("%s: error while looking up key %q: %w", name, key, err)
			return
		}
		if !found {
			result.Missing++
			continue
		}
		if _, err = table.Get(key); err != nil {
			err = fmt.Errorf("%s: error while getting key %q: %w", name, key, err)
			return
		}
	}
	result.Lookup = time.Since(start)

	start = time.Now()
	for _, key := range keys {
		if found, err = table.ContainsKey(key); err != nil {
			err = fmt.Errorf("%s: error while looking up key %q: %w", name, key, err)
			return
		}
		if !found {
			result.Missing++
			continue
		}
		if err = table.Remove(key); err != nil {
			err = fmt.Errorf("%s: error while removing key %q: %w", name, key, err)
			return
		}
	}
	result.Remove = time.Since(start)

	return
}

// RunAll - Runs every case against its own new table created with the default capacity of the technique.
// At most parallelism cases run at the same time, zero or less means no limit. The first failing case cancels
// the cases that have not started yet.
//
// It returns:
//   - results holds one Result per case in the order of cases
//   - err is the first error encountered
func RunAll(ctx context.Context, cases []Case, keys [][]byte, parallelism int) (results []Result, err error) {
	results = make([]Result, len(cases))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		group.SetLimit(parallelism)
	}

	for i, c := range cases {
		i, c := i, c
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			table, _, err := hashtables.NewHashTable[int](c.Technique, hashtables.DefaultCapacity(c.Technique), c.HashAlgorithm)
			if err != nil {
				return fmt.Errorf("%s: %w", c.Name, err)
			}

			results[i], err = Run(c.Name, table, keys)
			return err
		})
	}

	if err = group.Wait(); err != nil {
		results = nil
	}

	return
}
