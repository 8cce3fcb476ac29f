package hashtables

import (
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/gostonefire/hashtables/internal/hash"
	"github.com/gostonefire/hashtables/internal/model"
	"github.com/gostonefire/hashtables/internal/storage"
	"github.com/gostonefire/hashtables/internal/storage/openaddressing"
	"github.com/gostonefire/hashtables/internal/storage/separatechaining"
)

// DefaultChainingCapacity - Initial number of buckets used by the separate chaining techniques when none is given
const DefaultChainingCapacity int = 10

// DefaultOpenAddressingCapacity - Initial number of slots used by the open addressing techniques when none is given
const DefaultOpenAddressingCapacity int = 16

// HashTableInfo - Information structure containing some information about the hash table created
//   - Technique is the name of the collision resolution technique
//   - Capacity is the initial number of buckets (chaining) or slots (open addressing)
//   - LoadFactorThreshold is the load factor that triggers growth, zero if the table never grows
//   - GrowthMultiplier is the factor the capacity is multiplied with on growth, zero if the table never grows
type HashTableInfo struct {
	Technique           string
	Capacity            int
	LoadFactorThreshold float64
	GrowthMultiplier    int
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Capacity is the current number of buckets or slots
//   - Tombstones is the number of slots marked as removed, always zero for chaining
//   - UsedBuckets is the number of buckets or slots holding at least one entry
//   - LongestChain is the longest bucket for chaining, or the longest run of adjacent non-empty slots
//     for open addressing (a probe cluster)
//   - LoadFactor is Records / Capacity
//   - BucketDistribution is the number of entries stored in each bucket or slot, only set if asked for
type HashTableStat struct {
	Records            int
	Capacity           int
	Tombstones         int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int
}

// HashTable - The main implementation struct
type HashTable[V any] struct {
	storage   storage.Storage[V]
	technique int
}

// NewHashTable - Returns a new hash table using the given collision resolution technique.
//   - technique is one of the crt constants, i.e. crt.ArrayChaining, crt.ListChaining, crt.LinkedChaining,
//     crt.LinearProbing or crt.QuadraticProbing
//   - capacity is the initial number of buckets or slots, it must be a positive value
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the HashAlgorithm interface,
//     if nil the default algorithm of the technique is used (see DefaultHashAlgorithm)
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created
//   - err is of type crt.InvalidArgument if the technique or capacity is not acceptable
func NewHashTable[V any](
	technique int,
	capacity int,
	hashAlgorithm hashfunc.HashAlgorithm,
) (
	hashTable *HashTable[V],
	hashTableInfo HashTableInfo,
	err error,
) {
	if !crt.IsValid(technique) {
		err = crt.NewInvalidArgument("unknown collision resolution technique %d", technique)
		return
	}

	if hashAlgorithm == nil {
		hashAlgorithm = DefaultHashAlgorithm(technique)
	}

	crtConf := model.CRTConf{
		Capacity:      capacity,
		HashAlgorithm: hashAlgorithm,
	}

	s, err := newStorage[V](technique, crtConf)
	if err != nil {
		return
	}

	hashTable = &HashTable[V]{
		storage:   s,
		technique: technique,
	}

	sp := s.GetStorageParameters()

	hashTableInfo = HashTableInfo{
		Technique:           crt.Name(technique),
		Capacity:            sp.Capacity,
		LoadFactorThreshold: sp.LoadFactorThreshold,
		GrowthMultiplier:    sp.GrowthMultiplier,
	}

	return
}

// NewDefaultHashTable - Returns a new hash table using the default capacity and hash algorithm of the technique
func NewDefaultHashTable[V any](technique int) (hashTable *HashTable[V], hashTableInfo HashTableInfo, err error) {
	return NewHashTable[V](technique, DefaultCapacity(technique), nil)
}

// DefaultCapacity - Returns the initial capacity used for technique by NewDefaultHashTable
func DefaultCapacity(technique int) int {
	if crt.IsOpenAddressing(technique) {
		return DefaultOpenAddressingCapacity
	}

	return DefaultChainingCapacity
}

// DefaultHashAlgorithm - Returns the hash algorithm used for technique when none is given.
//   - crt.ArrayChaining uses Polynomial with base 31
//   - crt.ListChaining and crt.LinkedChaining use Djb2
//   - crt.LinearProbing and crt.QuadraticProbing use SimpleMurmur
func DefaultHashAlgorithm(technique int) hashfunc.HashAlgorithm {
	switch technique {
	case crt.ArrayChaining:
		return hashfunc.NewDefaultPolynomial()
	case crt.LinearProbing, crt.QuadraticProbing:
		return hashfunc.NewSimpleMurmur()
	default:
		return hashfunc.NewDjb2()
	}
}

// newStorage - Creates the storage implementing technique
func newStorage[V any](technique int, crtConf model.CRTConf) (s storage.Storage[V], err error) {
	switch technique {
	case crt.ArrayChaining:
		s, err = separatechaining.NewArrayBuckets[V](crtConf)
	case crt.ListChaining:
		s, err = separatechaining.NewListBuckets[V](crtConf)
	case crt.LinkedChaining:
		s, err = separatechaining.NewLinkedBuckets[V](crtConf)
	default:
		var prober hash.Prober
		if prober, err = hash.NewProber(technique); err != nil {
			return
		}
		s, err = openaddressing.NewOATable[V](crtConf, prober)
	}

	return
}
