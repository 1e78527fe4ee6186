package keccak

import "fmt"

const (
	// StateWidth is the width in bits of the Keccak-f[1600] state.
	StateWidth = 1600

	lanes      = StateWidth / 64
	stateBytes = StateWidth / 8
)

// OutputLength selects a digest length in bits, and through it the sponge
// rate and capacity.
type OutputLength int

const (
	// Arbitrary is the default configuration. It has no fixed digest and its
	// output is squeezed on demand.
	Arbitrary OutputLength = 0
	Keccak224 OutputLength = 224
	Keccak256 OutputLength = 256
	Keccak384 OutputLength = 384
	Keccak512 OutputLength = 512
)

const (
	// Lengths of hash outputs in bytes
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

type spongeParams struct {
	rate     int
	capacity int
}

// params maps every supported selector to its (rate, capacity) pair.
// Larger digests get more capacity and therefore a smaller rate.
var params = map[OutputLength]spongeParams{
	Arbitrary: {rate: 1024, capacity: 576},
	Keccak224: {rate: 1152, capacity: 448},
	Keccak256: {rate: 1088, capacity: 512},
	Keccak384: {rate: 832, capacity: 768},
	Keccak512: {rate: 576, capacity: 1024},
}

// Params returns the rate and capacity in bits for the selector.
// It returns an UnsupportedLengthError for any selector outside the table.
func (l OutputLength) Params() (rate int, capacity int, err error) {
	p, ok := params[l]
	if !ok {
		return 0, 0, UnsupportedLengthError{Length: l}
	}
	return p.rate, p.capacity, nil
}

// Fixed reports whether l is one of the four fixed digest sizes.
func (l OutputLength) Fixed() bool {
	switch l {
	case Keccak224, Keccak256, Keccak384, Keccak512:
		return true
	}
	return false
}

// Size returns the digest size in bytes, zero for Arbitrary.
func (l OutputLength) Size() int {
	return int(l) / 8
}

// String returns the string representation of this selector.
func (l OutputLength) String() string {
	switch l {
	case Arbitrary:
		return "KECCAK"
	case Keccak224, Keccak256, Keccak384, Keccak512:
		return fmt.Sprintf("KECCAK_%d", int(l))
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(l))
}

// Variant selects the padding applied to the input before it is squeezed.
type Variant int

const (
	// VariantKeccak pads with pad10*1 only, as in the Keccak submission.
	VariantKeccak Variant = iota
	// VariantSHA3 appends the SHA3 domain bits "01" before pad10*1.
	VariantSHA3
)

func (v Variant) String() string {
	switch v {
	case VariantKeccak:
		return "KECCAK"
	case VariantSHA3:
		return "SHA3"
	}
	return fmt.Sprintf("UNKNOWN_VARIANT(%d)", int(v))
}

func algorithmName(v Variant, l OutputLength) string {
	if v == VariantKeccak {
		return l.String()
	}
	if l.Fixed() {
		return fmt.Sprintf("%s_%d", v, int(l))
	}
	return fmt.Sprintf("%s(%s)", v, l)
}
