package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IndexOf - Returns the position of the entry whose key equals key, or -1 if there is none.
//   - n is the number of entries
//   - keyAt returns the key of the entry at position i
func IndexOf(n int, keyAt func(i int) []byte, key []byte) int {
	for i := 0; i < n; i++ {
		if IsEqual(key, keyAt(i)) {
			return i
		}
	}

	return -1
}
