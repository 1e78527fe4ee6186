// Package keccak implements the Keccak sponge function with the four
// standard digest sizes and a bit-oriented streaming interface.
//
// Input is a sequence of bits given as bytes plus an explicit bit count. When
// the count is not a multiple of 8, the remaining bits are taken from the most
// significant end of the last byte, which is the convention of the Keccak
// reference interface and its test vectors.
//
// The SHA3 functions run the same sponge with the SHA3 domain bits appended to
// the input before padding.
package keccak

const (
	// sha3Suffix holds the domain bits "01" in sponge bit order.
	sha3Suffix     = 0x02
	sha3SuffixBits = 2
)

// Context is a single-use hash computation. It is owned by its caller and must
// not be shared between goroutines; independent contexts are unrelated.
//
// A Context must be created with Init or InitSHA3. Operations on the zero
// value fail with an InvalidStateError.
type Context struct {
	sponge    Sponge
	length    OutputLength
	variant   Variant
	opts      []Option
	finalized bool
}

// Init returns a Keccak context for the selected digest length. It returns an
// UnsupportedLengthError for a selector outside the parameter table.
func Init(length OutputLength, opts ...Option) (*Context, error) {
	return initContext(length, VariantKeccak, opts)
}

// InitSHA3 returns a SHA3 context for one of the four fixed digest sizes. Any
// other selector is rejected with an UnsupportedLengthError.
func InitSHA3(length OutputLength, opts ...Option) (*Context, error) {
	if !length.Fixed() {
		return nil, UnsupportedLengthError{Length: length}
	}
	sha3Opts := append([]Option{WithDomain(sha3Suffix, sha3SuffixBits)}, opts...)
	return initContext(length, VariantSHA3, sha3Opts)
}

func initContext(length OutputLength, variant Variant, opts []Option) (*Context, error) {
	c := &Context{length: length, variant: variant, opts: opts}
	err := c.reset()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// reset brings the context back to the state Init returned it in.
func (c *Context) reset() error {
	rate, capacity, err := c.length.Params()
	if err != nil {
		return err
	}
	err = c.sponge.initialize(rate, capacity, c.opts...)
	if err != nil {
		return err
	}
	c.sponge.fixedOutputLength = int(c.length)
	c.finalized = false
	return nil
}

// OutputLength returns the selector the context was created with.
func (c *Context) OutputLength() OutputLength { return c.length }

// Variant returns whether the context computes Keccak or SHA3.
func (c *Context) Variant() Variant { return c.variant }

// Rate returns the sponge rate in bits.
func (c *Context) Rate() int { return c.sponge.Rate() }

// Capacity returns the sponge capacity in bits.
func (c *Context) Capacity() int { return c.sponge.Capacity() }

// Update absorbs the first bitLength bits of data. The whole bytes are
// absorbed as they are; a trailing partial byte is shifted right so that its
// significant (high-order) bits become the low-order bits the sponge expects.
// Only the last update of a computation may have a bitLength that is not a
// multiple of 8.
func (c *Context) Update(data []byte, bitLength int) error {
	if bitLength < 0 {
		return NewInvalidInputErrorf("negative bit length %d", bitLength)
	}
	if len(data) < (bitLength+7)/8 {
		return NewInvalidInputErrorf("%d bits requested from %d bytes of data", bitLength, len(data))
	}

	remainder := bitLength % 8
	err := c.sponge.Absorb(data, bitLength-remainder)
	if err != nil {
		return err
	}
	if remainder == 0 {
		return nil
	}

	lastByte := data[bitLength/8] >> (8 - remainder)
	return c.sponge.Absorb([]byte{lastByte}, remainder)
}

// Final pads the input and returns the digest, exactly OutputLength bits long.
// For Arbitrary the digest is empty and further output comes from Squeeze.
// Final can only be called once.
func (c *Context) Final() ([]byte, error) {
	if c.finalized {
		return nil, NewInvalidStateErrorf("cannot finalize: %s digest was already finalized", c.Algorithm())
	}
	digest, err := c.sponge.Squeeze(int(c.length))
	if err != nil {
		return nil, err
	}
	c.finalized = true
	return digest, nil
}

// Squeeze returns the next bitLength bits of output. With Arbitrary it can be
// called any number of times, before or after Final. With a fixed selector it
// behaves like Final: one call, for exactly the digest length.
func (c *Context) Squeeze(bitLength int) ([]byte, error) {
	out, err := c.sponge.Squeeze(bitLength)
	if err != nil {
		return nil, err
	}
	if c.length.Fixed() {
		c.finalized = true
	}
	return out, nil
}

// Hash computes the digest of the first bitLength bits of data in one call.
// Only the four fixed digest sizes are available; Arbitrary has no length to
// return and is rejected with an UnsupportedLengthError.
func Hash(length OutputLength, data []byte, bitLength int) ([]byte, error) {
	if !length.Fixed() {
		return nil, UnsupportedLengthError{Length: length}
	}
	c, err := Init(length)
	if err != nil {
		return nil, err
	}
	return c.hash(data, bitLength)
}

// HashSHA3 computes the SHA3 digest of the first bitLength bits of data in one
// call. Only the four fixed digest sizes are available.
func HashSHA3(length OutputLength, data []byte, bitLength int) ([]byte, error) {
	c, err := InitSHA3(length)
	if err != nil {
		return nil, err
	}
	return c.hash(data, bitLength)
}

func (c *Context) hash(data []byte, bitLength int) ([]byte, error) {
	err := c.Update(data, bitLength)
	if err != nil {
		return nil, err
	}
	return c.Final()
}

// Algorithm returns the name of the function the context computes, such as
// KECCAK_256 or SHA3_256.
func (c *Context) Algorithm() string {
	return algorithmName(c.variant, c.length)
}
