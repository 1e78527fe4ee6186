package bitutils

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVectorAllocation(t *testing.T) {
	for bits := 0; bits <= 127; bits++ {
		numBytes := bits / 8 // integer division with floor
		if bits%8 > 0 {
			numBytes += 1
		}

		vect := MakeBitVector(bits)
		assert.Equal(t, numBytes, len(vect))
	}
}

func TestReadAndSetBit(t *testing.T) {
	r := time.Now().UnixNano()
	rand.Seed(r)
	t.Logf("math rand seed is %d", r)

	b := MakeBitVector(64)
	expected := make([]int, 64)
	for i := range expected {
		if rand.Intn(2) == 1 {
			expected[i] = 1
			SetBit(b, i)
		}
	}
	for i, v := range expected {
		assert.Equal(t, v, ReadBit(b, i), "bit %d", i)
	}
}

func TestParseBitString(t *testing.T) {
	t.Run("five bits land in the high-order end", func(t *testing.T) {
		b, n, err := ParseBitString("10110")
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, []byte{0xb0}, b)
	})

	t.Run("separators are ignored", func(t *testing.T) {
		b, n, err := ParseBitString("1111_0000 1")
		require.NoError(t, err)
		assert.Equal(t, 9, n)
		assert.Equal(t, []byte{0xf0, 0x80}, b)
	})

	t.Run("empty string", func(t *testing.T) {
		b, n, err := ParseBitString("")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Empty(t, b)
	})

	t.Run("invalid character", func(t *testing.T) {
		_, _, err := ParseBitString("10a1")
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		const s = "1100101011110000101"
		b, n, err := ParseBitString(s)
		require.NoError(t, err)
		assert.Equal(t, s, BitString(b, n))
	})
}
