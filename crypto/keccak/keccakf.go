package keccak

import "math/bits"

// Permutation transforms the full 1600-bit sponge state in place.
// The sponge only depends on its width, never on its internals.
type Permutation interface {
	Permute(a *[lanes]uint64)
}

// PermutationFunc adapts a plain function to the Permutation interface.
type PermutationFunc func(a *[lanes]uint64)

func (f PermutationFunc) Permute(a *[lanes]uint64) { f(a) }

// KeccakF1600 is the Keccak-f[1600] permutation with 24 rounds.
type KeccakF1600 struct{}

func (KeccakF1600) Permute(a *[lanes]uint64) { keccakF1600(a) }

// rc stores the round constants for use in the ι step.
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotc and piln drive the combined ρ and π steps: lane piln[i] receives the
// previous lane rotated left by rotc[i].
var rotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the Keccak permutation to a 1600b-wide
// state represented as 25 little-endian lanes.
func keccakF1600(a *[lanes]uint64) {
	var bc [5]uint64
	for r := 0; r < len(rc); r++ {
		// θ
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < lanes; j += 5 {
				a[j+i] ^= t
			}
		}

		// ρ and π
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, rotc[i])
			t = bc[0]
		}

		// χ
		for j := 0; j < lanes; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// ι
		a[0] ^= rc[r]
	}
}
