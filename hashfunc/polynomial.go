package hashfunc

import "github.com/gostonefire/hashtables/crt"

// DefaultPolynomialBase - Multiplier base used by NewDefaultPolynomial
const DefaultPolynomialBase int64 = 31

// Polynomial - Polynomial rolling hash, h = Σ c_i * base^i, computed incrementally over the UTF-16 code units
// of the key interpreted as UTF-8 text, or over its raw bytes if the key is not valid UTF-8.
// Arithmetic wraps at 64 bits before the result is masked to 31 bits.
type Polynomial struct {
	base int64
}

// NewPolynomial - Returns a pointer to a new Polynomial instance using the given multiplier base.
// The base should preferably be a small prime, and it must be higher than 1.
func NewPolynomial(base int64) (polynomial *Polynomial, err error) {
	if base <= 1 {
		err = crt.NewInvalidArgument("polynomial base must be higher than 1, got %d", base)
		return
	}

	polynomial = &Polynomial{base: base}

	return
}

// NewDefaultPolynomial - Returns a pointer to a new Polynomial instance using DefaultPolynomialBase
func NewDefaultPolynomial() *Polynomial {
	return &Polynomial{base: DefaultPolynomialBase}
}

// Base - Returns the multiplier base
func (P *Polynomial) Base() int64 {
	return P.base
}

// Hash - Given key it generates a non-negative 32-bit hash value
func (P *Polynomial) Hash(key []byte) (hash int32, err error) {
	if err = checkKey("polynomial", key); err != nil {
		return
	}

	var h int64
	power := int64(1)
	for _, c := range characters(key) {
		h += int64(c) * power
		power *= P.base
	}

	hash = int32(h & positiveMask)

	return
}
