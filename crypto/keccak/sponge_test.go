package keccak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-keccak/crypto/keccak"
	"github.com/onflow/flow-keccak/utils/unittest"
)

func TestKeccakF1600(t *testing.T) {
	var a [25]uint64
	keccak.KeccakF1600{}.Permute(&a)
	assert.Equal(t, uint64(0xF1258F7940E1DDE7), a[0])
	assert.Equal(t, uint64(0x84D5CCF933C0478A), a[1])

	var b [25]uint64
	keccak.PermutationFunc(func(s *[25]uint64) {
		keccak.KeccakF1600{}.Permute(s)
	}).Permute(&b)
	assert.Equal(t, a, b)
}

func TestNewSponge(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		s, err := keccak.NewSponge(1088, 512)
		require.NoError(t, err)
		assert.Equal(t, 1088, s.Rate())
		assert.Equal(t, 512, s.Capacity())
		assert.False(t, s.Squeezing())
	})

	invalid := [][2]int{
		{1088, 500},  // does not sum to the state width
		{1000, 600},  // rate is not a whole number of lanes
		{0, 1600},    // no rate
		{1600, 0},    // no capacity
		{-64, 1664},  // negative rate
		{1024, 1024}, // too wide
	}
	for _, pair := range invalid {
		s, err := keccak.NewSponge(pair[0], pair[1])
		assert.Nil(t, s)
		assert.True(t, keccak.IsInvalidParametersError(err), "rate %d capacity %d", pair[0], pair[1])
	}
}

func TestSpongeModeSwitch(t *testing.T) {
	s, err := keccak.NewSponge(1024, 576)
	require.NoError(t, err)
	require.NoError(t, s.Absorb([]byte("abc"), 24))

	_, err = s.Squeeze(13)
	assert.True(t, keccak.IsInvalidStateError(err))
	assert.False(t, s.Squeezing(), "a rejected squeeze must not pad")

	_, err = s.Squeeze(-8)
	assert.True(t, keccak.IsInvalidInputError(err))

	out, err := s.Squeeze(64)
	require.NoError(t, err)
	assert.Len(t, out, 8)
	assert.True(t, s.Squeezing())

	err = s.Absorb([]byte("more"), 32)
	assert.True(t, keccak.IsInvalidStateError(err))

	// an unrestricted sponge keeps squeezing
	out, err = s.Squeeze(8)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestSpongeAbsorbInput(t *testing.T) {
	s, err := keccak.NewSponge(576, 1024)
	require.NoError(t, err)

	err = s.Absorb([]byte{0x01}, 9)
	assert.True(t, keccak.IsInvalidInputError(err))

	err = s.Absorb(nil, -1)
	assert.True(t, keccak.IsInvalidInputError(err))

	require.NoError(t, s.Absorb([]byte{0x05}, 3))
	err = s.Absorb([]byte{0x05}, 8)
	assert.True(t, keccak.IsInvalidStateError(err))

	// bits above the requested count are masked off
	a, err := keccak.NewSponge(576, 1024)
	require.NoError(t, err)
	require.NoError(t, a.Absorb([]byte{0xfd}, 3))
	b, err := keccak.NewSponge(576, 1024)
	require.NoError(t, err)
	require.NoError(t, b.Absorb([]byte{0x05}, 3))
	outA, err := a.Squeeze(512)
	require.NoError(t, err)
	outB, err := b.Squeeze(512)
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
}

// TestPermutationCount checks that the permutation runs exactly once per
// rate-sized block absorbed or squeezed.
func TestPermutationCount(t *testing.T) {
	const rateBytes = 1088 / 8

	run := func(t *testing.T, bitLengths []int, expectedAfterUpdates, expectedAfterFinal uint64) {
		counter := unittest.NewCountingPermutation()
		c, err := keccak.Init(keccak.Keccak256, keccak.WithPermutation(counter))
		require.NoError(t, err)
		for _, n := range bitLengths {
			require.NoError(t, c.Update(unittest.RandomBytes((n+7)/8), n))
		}
		assert.Equal(t, expectedAfterUpdates, counter.Calls())
		_, err = c.Final()
		require.NoError(t, err)
		assert.Equal(t, expectedAfterFinal, counter.Calls())
	}

	t.Run("empty input", func(t *testing.T) {
		run(t, nil, 0, 1)
	})
	t.Run("one short block", func(t *testing.T) {
		run(t, []int{8 * (rateBytes - 1)}, 0, 1)
	})
	t.Run("exactly one block", func(t *testing.T) {
		run(t, []int{8 * rateBytes}, 1, 2)
	})
	t.Run("blocks split across updates", func(t *testing.T) {
		run(t, []int{800, 800, 800}, 2, 3)
	})
	t.Run("one bit short of a block", func(t *testing.T) {
		// the padding needs two blocks
		run(t, []int{8*rateBytes - 1}, 0, 2)
	})
	t.Run("two bits short of a block", func(t *testing.T) {
		run(t, []int{8*rateBytes - 2}, 0, 1)
	})

	t.Run("squeezing across blocks", func(t *testing.T) {
		counter := unittest.NewCountingPermutation()
		c, err := keccak.Init(keccak.Arbitrary, keccak.WithPermutation(counter))
		require.NoError(t, err)
		_, err = c.Final()
		require.NoError(t, err)
		assert.Equal(t, uint64(1), counter.Calls())

		_, err = c.Squeeze(1024)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), counter.Calls())

		_, err = c.Squeeze(8)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), counter.Calls())

		_, err = c.Squeeze(2048)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), counter.Calls())
	})
}

// TestPartialByteAtBlockEnd fills a block up to its last bit through the
// streaming interface and through the sponge.
func TestPartialByteAtBlockEnd(t *testing.T) {
	data := unittest.RandomBytes(136)
	bitLength := 8*136 - 1

	c, err := keccak.Init(keccak.Keccak256)
	require.NoError(t, err)
	require.NoError(t, c.Update(data, bitLength))
	viaUpdate, err := c.Final()
	require.NoError(t, err)

	s, err := keccak.NewSponge(1088, 512)
	require.NoError(t, err)
	require.NoError(t, s.Absorb(data, 8*135))
	require.NoError(t, s.Absorb([]byte{data[135] >> 1}, 7))
	viaSponge, err := s.Squeeze(256)
	require.NoError(t, err)

	assert.Equal(t, viaSponge, viaUpdate)
}

func TestZeroValues(t *testing.T) {
	t.Run("sponge", func(t *testing.T) {
		var s keccak.Sponge
		err := s.Absorb(make([]byte, 10), 80)
		assert.True(t, keccak.IsInvalidStateError(err))
		out, err := s.Squeeze(64)
		assert.True(t, keccak.IsInvalidStateError(err))
		assert.Nil(t, out)
	})

	t.Run("context", func(t *testing.T) {
		var c keccak.Context
		err := c.Update(make([]byte, 10), 80)
		assert.True(t, keccak.IsInvalidStateError(err))
		_, err = c.Final()
		assert.True(t, keccak.IsInvalidStateError(err))
		_, err = c.Squeeze(8)
		assert.True(t, keccak.IsInvalidStateError(err))
	})
}
