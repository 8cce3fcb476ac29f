package crt

import "fmt"

// NullKey - Custom error to inform that a nil key was given
type NullKey struct {
	msg string
}

// NewNullKey - Returns a NullKey error naming the operation that received the nil key
func NewNullKey(op string) NullKey {
	return NullKey{msg: fmt.Sprintf("%s: key can not be nil", op)}
}

// Error - Used to notify that a nil key was given
func (N NullKey) Error() string {
	if N.msg == "" {
		return "key can not be nil"
	}
	return N.msg
}

// Is - Makes errors.Is match any NullKey regardless of message
func (N NullKey) Is(target error) bool {
	_, ok := target.(NullKey)
	return ok
}

// DuplicateKey - Custom error to inform that an entry with the same key already exists
type DuplicateKey struct {
	msg string
}

// NewDuplicateKey - Returns a DuplicateKey error including the offending key
func NewDuplicateKey(key []byte) DuplicateKey {
	return DuplicateKey{msg: fmt.Sprintf("an element with key %q already exists", key)}
}

// Error - Used to notify that the key already exists
func (D DuplicateKey) Error() string {
	if D.msg == "" {
		return "an element with the same key already exists"
	}
	return D.msg
}

// Is - Makes errors.Is match any DuplicateKey regardless of message
func (D DuplicateKey) Is(target error) bool {
	_, ok := target.(DuplicateKey)
	return ok
}

// KeyNotFound - Custom error to inform that no entry was found for the key
type KeyNotFound struct {
	msg string
}

// NewKeyNotFound - Returns a KeyNotFound error including the missing key
func NewKeyNotFound(key []byte) KeyNotFound {
	return KeyNotFound{msg: fmt.Sprintf("key %q was not found", key)}
}

// Error - Used to notify that no entry was found
func (K KeyNotFound) Error() string {
	if K.msg == "" {
		return "key not found"
	}
	return K.msg
}

// Is - Makes errors.Is match any KeyNotFound regardless of message
func (K KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// InvalidArgument - Custom error to inform that a constructor parameter or hash input was not acceptable
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument error with a formatted message
func NewInvalidArgument(format string, a ...any) InvalidArgument {
	return InvalidArgument{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an argument was invalid
func (I InvalidArgument) Error() string {
	if I.msg == "" {
		return "invalid argument"
	}
	return I.msg
}

// Is - Makes errors.Is match any InvalidArgument regardless of message
func (I InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// TableFull - Custom error to inform that a probe sequence was exhausted without finding a free slot.
// Growth is supposed to keep open addressing tables from ever reaching this state, so receiving it means
// the probing algorithm failed to cover the table (quadratic probing on a non-prime table size may do so).
type TableFull struct {
	msg string
}

// NewTableFull - Returns a TableFull error including the table size that was probed
func NewTableFull(tableSize int) TableFull {
	return TableFull{msg: fmt.Sprintf("probe sequence exhausted over %d slots without a free slot", tableSize)}
}

// Error - Used to notify that the table is full
func (T TableFull) Error() string {
	if T.msg == "" {
		return "hash table is full"
	}
	return T.msg
}

// Is - Makes errors.Is match any TableFull regardless of message
func (T TableFull) Is(target error) bool {
	_, ok := target.(TableFull)
	return ok
}
