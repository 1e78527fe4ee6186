package keccak

import (
	"encoding/hex"
	"fmt"
	"hash"
)

// Digest is the output of a hash computation.
type Digest []byte

// Hex returns the hex string representation of the hash.
func (h Digest) Hex() string {
	return hex.EncodeToString(h)
}

// String returns the hex string representation of the hash.
func (h Digest) String() string {
	return h.Hex()
}

// Hasher is a byte-oriented hasher over a fixed digest size. It implements
// hash.Hash; Write never fails.
type Hasher interface {
	hash.Hash
	// Algorithm returns the digest length selector of the hasher.
	Algorithm() OutputLength
	// Variant returns whether the hasher computes Keccak or SHA3.
	Variant() Variant
	// ComputeHash resets the state and returns the digest of data.
	ComputeHash(data []byte) Digest
	// SumHash returns the digest of the data written so far.
	// It does not reset the state to allow further writing.
	SumHash() Digest
}

// hasher embeds a streaming context, which keeps the options needed to reset it.
type hasher struct {
	ctx Context
}

// NewHasher returns a Keccak Hasher for one of the four fixed digest sizes.
func NewHasher(length OutputLength, opts ...Option) (Hasher, error) {
	if !length.Fixed() {
		return nil, UnsupportedLengthError{Length: length}
	}
	c, err := Init(length, opts...)
	if err != nil {
		return nil, err
	}
	return &hasher{ctx: *c}, nil
}

// NewSHA3Hasher returns a SHA3 Hasher for one of the four fixed digest sizes.
func NewSHA3Hasher(length OutputLength, opts ...Option) (Hasher, error) {
	c, err := InitSHA3(length, opts...)
	if err != nil {
		return nil, err
	}
	return &hasher{ctx: *c}, nil
}

// New224 returns a new hash.Hash computing the Keccak-224 digest.
func New224() hash.Hash { return mustHasher(Keccak224) }

// New256 returns a new hash.Hash computing the Keccak-256 digest.
func New256() hash.Hash { return mustHasher(Keccak256) }

// New384 returns a new hash.Hash computing the Keccak-384 digest.
func New384() hash.Hash { return mustHasher(Keccak384) }

// New512 returns a new hash.Hash computing the Keccak-512 digest.
func New512() hash.Hash { return mustHasher(Keccak512) }

// NewSHA3_224 returns a new instance of SHA3-224 hasher.
func NewSHA3_224() Hasher { return mustSHA3Hasher(Keccak224) }

// NewSHA3_256 returns a new instance of SHA3-256 hasher.
func NewSHA3_256() Hasher { return mustSHA3Hasher(Keccak256) }

// NewSHA3_384 returns a new instance of SHA3-384 hasher.
func NewSHA3_384() Hasher { return mustSHA3Hasher(Keccak384) }

// NewSHA3_512 returns a new instance of SHA3-512 hasher.
func NewSHA3_512() Hasher { return mustSHA3Hasher(Keccak512) }

func mustHasher(length OutputLength) Hasher {
	h, err := NewHasher(length)
	if err != nil {
		// the fixed selectors are always in the parameter table
		panic(fmt.Sprintf("keccak: %v", err))
	}
	return h
}

func mustSHA3Hasher(length OutputLength) Hasher {
	h, err := NewSHA3Hasher(length)
	if err != nil {
		panic(fmt.Sprintf("keccak: %v", err))
	}
	return h
}

func (d *hasher) Algorithm() OutputLength { return d.ctx.length }

func (d *hasher) Variant() Variant { return d.ctx.variant }

// Size returns the digest size in bytes.
func (d *hasher) Size() int { return d.ctx.length.Size() }

// BlockSize returns the rate of the sponge in bytes.
func (d *hasher) BlockSize() int { return d.ctx.Rate() / 8 }

// Write absorbs more data into the hash's state. It never returns an error.
func (d *hasher) Write(p []byte) (int, error) {
	err := d.ctx.Update(p, len(p)*8)
	if err != nil {
		panic(fmt.Sprintf("keccak: write to finalized state: %v", err))
	}
	return len(p), nil
}

// Sum appends the digest of the data written so far to b. The state is
// copied first, so writing can continue afterwards.
func (d *hasher) Sum(b []byte) []byte {
	dup := d.ctx
	out, err := dup.Final()
	if err != nil {
		panic(fmt.Sprintf("keccak: %v", err))
	}
	return append(b, out...)
}

// Reset clears the internal state and switches back to absorbing.
func (d *hasher) Reset() {
	err := d.ctx.reset()
	if err != nil {
		panic(fmt.Sprintf("keccak: reset %s: %v", d.ctx.Algorithm(), err))
	}
}

// ComputeHash calculates and returns the digest of the input byte array.
// It does not reset the state after, to allow further writing.
func (d *hasher) ComputeHash(data []byte) Digest {
	d.Reset()
	_, _ = d.Write(data)
	return d.Sum(nil)
}

// SumHash returns the digest of the data written so far.
func (d *hasher) SumHash() Digest {
	return d.Sum(nil)
}

// Sum224 returns the Keccak-224 digest of data.
func Sum224(data []byte) (out [Size224]byte) {
	sum(Keccak224, data, out[:])
	return
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) (out [Size256]byte) {
	sum(Keccak256, data, out[:])
	return
}

// Sum384 returns the Keccak-384 digest of data.
func Sum384(data []byte) (out [Size384]byte) {
	sum(Keccak384, data, out[:])
	return
}

// Sum512 returns the Keccak-512 digest of data.
func Sum512(data []byte) (out [Size512]byte) {
	sum(Keccak512, data, out[:])
	return
}

func sum(length OutputLength, data []byte, out []byte) {
	h := mustHasher(length)
	_, _ = h.Write(data)
	copy(out, h.Sum(nil))
}
