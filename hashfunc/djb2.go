package hashfunc

// djb2Seed - Initial value of the Djb2 accumulator
const djb2Seed uint64 = 5381

// Djb2 - Multiplicative rolling hash by Dan Bernstein, h = h*33 + c for every character of the key.
// Characters are the UTF-16 code units of the key interpreted as UTF-8 text, or its raw bytes if the key is not
// valid UTF-8.
type Djb2 struct{}

// NewDjb2 - Returns a pointer to a new Djb2 instance
func NewDjb2() *Djb2 {
	return &Djb2{}
}

// Hash - Given key it generates a non-negative 32-bit hash value
func (D *Djb2) Hash(key []byte) (hash int32, err error) {
	if err = checkKey("djb2", key); err != nil {
		return
	}

	h := djb2Seed
	for _, c := range characters(key) {
		h = (h << 5) + h + uint64(c)
	}

	hash = int32(h & positiveMask)

	return
}
