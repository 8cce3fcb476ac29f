package hashfunc

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type testCaseAlgorithm struct {
	name      string
	algorithm HashAlgorithm
}

func allAlgorithms() []testCaseAlgorithm {
	return []testCaseAlgorithm{
		{name: "Djb2", algorithm: NewDjb2()},
		{name: "Polynomial", algorithm: NewDefaultPolynomial()},
		{name: "SimpleMurmur", algorithm: NewSimpleMurmur()},
		{name: "CRC32", algorithm: NewCRC32()},
		{name: "XXHash", algorithm: NewXXHash()},
	}
}

func TestHashAlgorithms_Deterministic(t *testing.T) {
	inputs := []string{"", "a", "abc", "hello world", "12345", "åäö", "a much longer key that spans several blocks"}

	for _, test := range allAlgorithms() {
		t.Run(fmt.Sprintf("same input gives same hash for %s", test.name), func(t *testing.T) {
			for _, input := range inputs {
				// Execute
				h1, err1 := test.algorithm.Hash([]byte(input))
				h2, err2 := test.algorithm.Hash([]byte(input))

				// Check
				require.NoError(t, err1, "hashes %q", input)
				require.NoError(t, err2, "hashes %q again", input)
				assert.Equalf(t, h1, h2, "deterministic for %q", input)
				assert.GreaterOrEqualf(t, h1, int32(0), "non-negative for %q", input)
			}
		})
	}
}

func TestHashAlgorithms_NilInput(t *testing.T) {
	for _, test := range allAlgorithms() {
		t.Run(fmt.Sprintf("nil input fails for %s", test.name), func(t *testing.T) {
			// Execute
			_, err := test.algorithm.Hash(nil)

			// Check
			assert.True(t, errors.Is(err, crt.InvalidArgument{}), "error of type InvalidArgument")
		})
	}

	t.Run("empty but non-nil input is accepted", func(t *testing.T) {
		for _, test := range allAlgorithms() {
			_, err := test.algorithm.Hash([]byte{})
			assert.NoErrorf(t, err, "empty input for %s", test.name)
		}
	})
}

func TestHashAlgorithms_KnownValues(t *testing.T) {
	tests := []struct {
		input      string
		djb2       int32
		polynomial int32
		murmur     int32
		crc32      int32
	}{
		{input: "", djb2: 5381, polynomial: 0, murmur: 638726134, crc32: 0},
		{input: "1", djb2: 177622, polynomial: 49, murmur: 1990233497, crc32: 64810935},
		{input: "42", djb2: 5861675, polynomial: 1602, murmur: 415744911, crc32: 841265288},
		{input: "abc", djb2: 193485963, polynomial: 98274, murmur: 1382041487, crc32: 891568578},
		{input: "hello world", djb2: 894552257, polynomial: 492632516, murmur: 1602120022, crc32: 222957957},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("known values for %q", test.input), func(t *testing.T) {
			// Prepare
			key := []byte(test.input)

			// Execute
			djb2, err := NewDjb2().Hash(key)
			require.NoError(t, err)
			polynomial, err := NewDefaultPolynomial().Hash(key)
			require.NoError(t, err)
			murmur, err := NewSimpleMurmur().Hash(key)
			require.NoError(t, err)
			crc, err := NewCRC32().Hash(key)
			require.NoError(t, err)

			// Check
			assert.Equal(t, test.djb2, djb2, "djb2 value")
			assert.Equal(t, test.polynomial, polynomial, "polynomial value")
			assert.Equal(t, test.murmur, murmur, "simple murmur value")
			assert.Equal(t, test.crc32, crc, "crc32 value")
		})
	}
}

func TestHashAlgorithms_BinaryKeys(t *testing.T) {
	t.Run("keys that are not valid UTF-8 hash their raw bytes", func(t *testing.T) {
		tests := []struct {
			input      []byte
			djb2       int32
			polynomial int32
		}{
			{input: []byte{0xff}, djb2: 177828, polynomial: 255},
			{input: []byte{0xfe}, djb2: 177827, polynomial: 254},
			{input: []byte{'a', 0xff}, djb2: 5863365, polynomial: 8002},
		}

		for _, test := range tests {
			// Execute
			djb2, err := NewDjb2().Hash(test.input)
			require.NoError(t, err)
			polynomial, err := NewDefaultPolynomial().Hash(test.input)
			require.NoError(t, err)

			// Check
			assert.Equalf(t, test.djb2, djb2, "djb2 value of %x", test.input)
			assert.Equalf(t, test.polynomial, polynomial, "polynomial value of %x", test.input)
		}
	})

	t.Run("distinct invalid sequences do not collide", func(t *testing.T) {
		for _, algorithm := range []HashAlgorithm{NewDjb2(), NewDefaultPolynomial()} {
			// Execute
			h1, err := algorithm.Hash([]byte{0xff})
			require.NoError(t, err)
			h2, err := algorithm.Hash([]byte{0xfe})
			require.NoError(t, err)

			// Check
			assert.NotEqualf(t, h1, h2, "%T keeps binary keys apart", algorithm)
		}
	})
}

func TestHashAlgorithms_MayDisagree(t *testing.T) {
	t.Run("different algorithms are allowed to produce different hashes", func(t *testing.T) {
		// Prepare
		key := []byte("abc")

		// Execute
		djb2, err := NewDjb2().Hash(key)
		require.NoError(t, err)
		polynomial, err := NewDefaultPolynomial().Hash(key)
		require.NoError(t, err)
		murmur, err := NewSimpleMurmur().Hash(key)
		require.NoError(t, err)

		// Check
		assert.NotEqual(t, djb2, polynomial, "djb2 and polynomial differ")
		assert.NotEqual(t, djb2, murmur, "djb2 and simple murmur differ")
		assert.NotEqual(t, polynomial, murmur, "polynomial and simple murmur differ")
	})
}

func TestNewPolynomial(t *testing.T) {
	t.Run("accepts a custom base", func(t *testing.T) {
		// Execute
		p, err := NewPolynomial(37)

		// Check
		require.NoError(t, err)
		assert.Equal(t, int64(37), p.Base(), "base preserved")

		h, err := p.Hash([]byte("ab"))
		require.NoError(t, err)
		assert.Equal(t, int32(97+98*37), h, "hash uses custom base")
	})

	t.Run("rejects a base lower than 2", func(t *testing.T) {
		for _, base := range []int64{-3, 0, 1} {
			_, err := NewPolynomial(base)
			assert.Truef(t, errors.Is(err, crt.InvalidArgument{}), "base %d rejected", base)
		}
	})
}

func TestHashFunc(t *testing.T) {
	t.Run("adapts a plain function", func(t *testing.T) {
		// Prepare
		var ha HashAlgorithm = HashFunc(func(key []byte) (int32, error) { return int32(len(key)), nil })

		// Execute
		h, err := ha.Hash([]byte("four"))

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int32(4), h, "function result returned")
	})
}
