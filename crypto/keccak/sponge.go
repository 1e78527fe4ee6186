package keccak

import "encoding/binary"

// spongeDirection indicates the direction bits are flowing through the sponge.
type spongeDirection int

const (
	// spongeAbsorbing indicates that the sponge is absorbing input.
	spongeAbsorbing spongeDirection = iota
	// spongeSqueezing indicates that the sponge is being squeezed.
	spongeSqueezing
)

// Option configures a Sponge or a Context.
type Option func(*Sponge)

// WithPermutation replaces the default Keccak-f[1600] permutation.
func WithPermutation(p Permutation) Option {
	return func(s *Sponge) {
		s.permutation = p
	}
}

// WithDomain appends the n low-order bits of bits to the input when the sponge
// pads, ahead of the pad10*1 bits. SHA3 uses the two bits "01" (0x02, 2).
// n must be between 0 and 8.
func WithDomain(bits byte, n int) Option {
	return func(s *Sponge) {
		s.domain = bits
		s.domainBits = n
	}
}

// Sponge is the Keccak sponge state machine. It starts absorbing, switches once
// to squeezing on the first Squeeze call and never switches back.
//
// Bits are numbered from the least significant bit of each byte: a partial
// byte holding n bits keeps them in its n low-order bits.
//
// A Sponge must be created with NewSponge. Operations on the zero value fail
// with an InvalidStateError.
type Sponge struct {
	a     [lanes]uint64    // main state of the hash
	queue [stateBytes]byte // input block being filled, or output block being drained

	rate     int // bits exposed to absorbing and squeezing per block
	capacity int // hidden bits

	bitsInQueue   int // absorbed bits not yet xored into the state
	bitsAvailable int // squeezable bits left in the queue

	// fixedOutputLength restricts Squeeze to a single call of exactly this many
	// bits. Zero means unrestricted.
	fixedOutputLength int
	produced          bool

	domain     byte // suffix bits appended before padding
	domainBits int

	direction   spongeDirection
	permutation Permutation
}

// NewSponge returns a zeroed sponge absorbing with the given rate and capacity.
// It returns an InvalidParametersError unless rate and capacity split the
// state width and the rate is a whole number of lanes.
func NewSponge(rate, capacity int, opts ...Option) (*Sponge, error) {
	s := &Sponge{}
	err := s.initialize(rate, capacity, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sponge) initialize(rate, capacity int, opts ...Option) error {
	if rate+capacity != StateWidth || rate <= 0 || rate >= StateWidth || rate%64 != 0 {
		return InvalidParametersError{Rate: rate, Capacity: capacity}
	}
	*s = Sponge{
		rate:        rate,
		capacity:    capacity,
		direction:   spongeAbsorbing,
		permutation: KeccakF1600{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.domainBits < 0 || s.domainBits > 8 {
		n := s.domainBits
		*s = Sponge{}
		return NewInvalidInputErrorf("domain suffix of %d bits, expected 0 to 8", n)
	}
	if s.permutation == nil {
		s.permutation = KeccakF1600{}
	}
	s.domain &= byte(1<<s.domainBits - 1)
	return nil
}

// initialized reports whether the sponge went through initialize.
func (s *Sponge) initialized() bool { return s.rate != 0 }

// Rate returns the number of bits absorbed or squeezed per permutation.
func (s *Sponge) Rate() int { return s.rate }

// Capacity returns the number of hidden state bits.
func (s *Sponge) Capacity() int { return s.capacity }

// Squeezing reports whether the sponge has been padded and switched to squeezing.
func (s *Sponge) Squeezing() bool { return s.direction == spongeSqueezing }

// Absorb xors the first bitLength bits of data into the sponge, applying the
// permutation each time a rate-sized block is filled. When bitLength is not a
// multiple of 8, the trailing bits are read from the low-order end of the last
// byte; such a call must be the last one before Squeeze.
func (s *Sponge) Absorb(data []byte, bitLength int) error {
	if bitLength < 0 {
		return NewInvalidInputErrorf("negative bit length %d", bitLength)
	}
	if len(data) < (bitLength+7)/8 {
		return NewInvalidInputErrorf("%d bits requested from %d bytes of data", bitLength, len(data))
	}
	if !s.initialized() {
		return NewInvalidStateErrorf("cannot absorb: sponge is not initialized")
	}
	if s.direction == spongeSqueezing {
		return NewInvalidStateErrorf("cannot absorb: sponge is already squeezing")
	}
	if s.bitsInQueue%8 != 0 {
		return NewInvalidStateErrorf("cannot absorb: only the last input may contain a partial byte (%d bits queued)", s.bitsInQueue)
	}

	rateBytes := s.rate / 8
	i := 0
	for i < bitLength {
		if s.bitsInQueue == 0 && bitLength-i >= s.rate {
			// The fast path; absorb whole blocks straight from the input.
			for ; bitLength-i >= s.rate; i += s.rate {
				xorIn(&s.a, data[i/8:i/8+rateBytes])
				s.permutation.Permute(&s.a)
			}
			continue
		}

		// The slow path; buffer the input until the block is full.
		partialBlock := bitLength - i
		if partialBlock+s.bitsInQueue > s.rate {
			partialBlock = s.rate - s.bitsInQueue
		}
		partialByte := partialBlock % 8
		partialBlock -= partialByte
		copy(s.queue[s.bitsInQueue/8:], data[i/8:i/8+partialBlock/8])
		s.bitsInQueue += partialBlock
		i += partialBlock
		if s.bitsInQueue == s.rate {
			s.absorbQueue()
		}
		if partialByte > 0 {
			mask := byte(1<<partialByte) - 1
			s.queue[s.bitsInQueue/8] = data[i/8] & mask
			s.bitsInQueue += partialByte
			i += partialByte
		}
	}
	return nil
}

// Squeeze returns the next outputBitLength bits of output. The first call pads
// the absorbed input and switches the sponge to squeezing.
//
// outputBitLength must be a multiple of 8. A sponge with a fixed output length
// accepts exactly one call, for exactly that length; any other length is an
// InvalidStateError.
func (s *Sponge) Squeeze(outputBitLength int) ([]byte, error) {
	if !s.initialized() {
		return nil, NewInvalidStateErrorf("cannot squeeze: sponge is not initialized")
	}
	if s.fixedOutputLength != 0 {
		if s.produced {
			return nil, NewInvalidStateErrorf("cannot squeeze: the %d-bit digest was already produced", s.fixedOutputLength)
		}
		if outputBitLength != s.fixedOutputLength {
			return nil, NewInvalidStateErrorf("cannot squeeze %d bits: output length is fixed to %d bits",
				outputBitLength, s.fixedOutputLength)
		}
	}
	if outputBitLength < 0 {
		return nil, NewInvalidInputErrorf("negative output length %d", outputBitLength)
	}
	if outputBitLength%8 != 0 {
		return nil, NewInvalidStateErrorf("cannot squeeze %d bits: output length must be a multiple of 8", outputBitLength)
	}

	if s.direction == spongeAbsorbing {
		s.padAndSwitchToSqueezing()
	}

	out := make([]byte, outputBitLength/8)
	i := 0
	for i < outputBitLength {
		if s.bitsAvailable == 0 {
			s.permutation.Permute(&s.a)
			copyOut(&s.a, s.queue[:s.rate/8])
			s.bitsAvailable = s.rate
		}
		partialBlock := s.bitsAvailable
		if partialBlock > outputBitLength-i {
			partialBlock = outputBitLength - i
		}
		offset := (s.rate - s.bitsAvailable) / 8
		copy(out[i/8:], s.queue[offset:offset+partialBlock/8])
		s.bitsAvailable -= partialBlock
		i += partialBlock
	}

	if s.fixedOutputLength != 0 {
		s.produced = true
	}
	return out, nil
}

// absorbQueue xors a full queued block into the state and permutes.
func (s *Sponge) absorbQueue() {
	xorIn(&s.a, s.queue[:s.rate/8])
	s.permutation.Permute(&s.a)
	s.bitsInQueue = 0
}

// appendBits queues the n low-order bits of bits one at a time, absorbing the
// block whenever it fills up.
func (s *Sponge) appendBits(bits byte, n int) {
	for j := 0; j < n; j++ {
		if s.bitsInQueue%8 == 0 {
			s.queue[s.bitsInQueue/8] = 0
		}
		s.queue[s.bitsInQueue/8] |= ((bits >> j) & 1) << (s.bitsInQueue % 8)
		s.bitsInQueue++
		if s.bitsInQueue == s.rate {
			s.absorbQueue()
		}
	}
}

// padAndSwitchToSqueezing appends the domain bits, applies the multi-rate 10*1
// padding, permutes, and loads the first output block.
func (s *Sponge) padAndSwitchToSqueezing() {
	s.appendBits(s.domain, s.domainBits)

	rateBytes := s.rate / 8
	if s.bitsInQueue+1 == s.rate {
		// Only the first padding bit fits; the final one goes in an extra block.
		s.queue[s.bitsInQueue/8] |= 1 << (s.bitsInQueue % 8)
		s.absorbQueue()
		for i := 0; i < rateBytes; i++ {
			s.queue[i] = 0
		}
	} else {
		for i := (s.bitsInQueue + 7) / 8; i < rateBytes; i++ {
			s.queue[i] = 0
		}
		s.queue[s.bitsInQueue/8] |= 1 << (s.bitsInQueue % 8)
	}
	// The final one bit is the MSB of the last rate byte.
	s.queue[(s.rate-1)/8] |= 1 << ((s.rate - 1) % 8)
	s.absorbQueue()

	copyOut(&s.a, s.queue[:rateBytes])
	s.bitsAvailable = s.rate
	s.direction = spongeSqueezing
}

// xorIn xors a block of whole lanes into the state.
func xorIn(a *[lanes]uint64, block []byte) {
	for i := 0; i < len(block)/8; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
}

// copyOut writes the leading lanes of the state into out.
func copyOut(a *[lanes]uint64, out []byte) {
	for i := 0; i < len(out)/8; i++ {
		binary.LittleEndian.PutUint64(out[8*i:], a[i])
	}
}
