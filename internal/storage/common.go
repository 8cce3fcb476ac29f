package storage

import (
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/internal/model"
)

// Storage - Interface for any storage implementation, i.e. one collision resolution technique together with its
// slot store and growth policy.
type Storage[V any] interface {
	Add(key []byte, value V) (err error)
	Get(key []byte) (value V, err error)
	Remove(key []byte) (err error)
	ContainsKey(key []byte) (found bool, err error)
	Len() int
	GetStorageParameters() (params model.StorageParameters)
	GetBucketStats() (stats []model.BucketStat)
}

// CheckKey - Returns an error of type crt.NullKey if key is nil
//   - op is the name of the operation, used in the error message
func CheckKey(op string, key []byte) (err error) {
	if key == nil {
		err = crt.NewNullKey(op)
	}

	return
}

// CheckConf - Validates the parts of a model.CRTConf that all storage implementations have in common
func CheckConf(crtConf model.CRTConf) (err error) {
	if crtConf.Capacity <= 0 {
		err = crt.NewInvalidArgument("capacity must be a positive value higher than 0 (zero), got %d", crtConf.Capacity)
		return
	}
	if crtConf.HashAlgorithm == nil {
		err = crt.NewInvalidArgument("a hash algorithm must be given")
		return
	}

	return
}
