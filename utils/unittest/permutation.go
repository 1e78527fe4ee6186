package unittest

import (
	"go.uber.org/atomic"

	"github.com/onflow/flow-keccak/crypto/keccak"
)

// CountingPermutation wraps the Keccak-f[1600] permutation and counts how many
// times the sponge invokes it.
type CountingPermutation struct {
	inner keccak.Permutation
	calls *atomic.Uint64
}

var _ keccak.Permutation = (*CountingPermutation)(nil)

func NewCountingPermutation() *CountingPermutation {
	return &CountingPermutation{
		inner: keccak.KeccakF1600{},
		calls: atomic.NewUint64(0),
	}
}

func (p *CountingPermutation) Permute(a *[25]uint64) {
	p.calls.Inc()
	p.inner.Permute(a)
}

// Calls returns the number of permutations applied so far.
func (p *CountingPermutation) Calls() uint64 {
	return p.calls.Load()
}

// Reset sets the counter back to zero.
func (p *CountingPermutation) Reset() {
	p.calls.Store(0)
}
