package dilithium

import "fmt"

// Global constants from the Dilithium specification, fixed across all
// parameter sets.
const (
	n             = 256
	q       int32 = 8380417
	d             = 13
	seedBytes     = 32
	crhBytes      = 64

	qMinus1Div2 int32 = (q - 1) / 2
)

// Mode selects one of the three standardized Dilithium parameter sets.
type Mode int

const (
	Mode2 Mode = 2
	Mode3 Mode = 3
	Mode5 Mode = 5
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Mode2:
		return "Dilithium2"
	case Mode3:
		return "Dilithium3"
	case Mode5:
		return "Dilithium5"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Params is a frozen record of the dimensions and thresholds that drive
// every other layer of the scheme. It is immutable once constructed by
// ParamsForMode, so callers may hold and use multiple instances
// concurrently without synchronization.
type Params struct {
	Mode Mode

	K   int // rows of the matrix / length of veck vectors
	L   int // columns of the matrix / length of vecl vectors
	Eta int32
	Tau int
	Beta int32

	Gamma1 int32
	Gamma2 int32
	Omega  int

	// gamma1Bits is log2(Gamma1); it selects the z packing width.
	gamma1Bits int

	// Derived per-polynomial packed sizes, in bytes.
	PolyT1PackedBytes   int
	PolyT0PackedBytes   int
	PolyEtaPackedBytes  int
	PolyZPackedBytes    int
	PolyW1PackedBytes   int
	PolyVecHPackedBytes int

	// Derived whole-object sizes, in bytes.
	PublicKeySize  int
	PrivateKeySize int
	SignatureSize  int
}

// ParamsForMode returns the frozen parameter record for the given mode.
// It returns ErrInvalidMode if mode is not one of Mode2, Mode3, Mode5.
func ParamsForMode(mode Mode) (*Params, error) {
	p := &Params{Mode: mode}

	switch mode {
	case Mode2:
		p.K, p.L = 4, 4
		p.Eta = 2
		p.Tau = 39
		p.Gamma1 = 1 << 17
		p.Gamma2 = (q - 1) / 88
		p.Omega = 80
	case Mode3:
		p.K, p.L = 6, 5
		p.Eta = 4
		p.Tau = 49
		p.Gamma1 = 1 << 19
		p.Gamma2 = (q - 1) / 32
		p.Omega = 55
	case Mode5:
		p.K, p.L = 8, 7
		p.Eta = 2
		p.Tau = 60
		p.Gamma1 = 1 << 19
		p.Gamma2 = (q - 1) / 32
		p.Omega = 75
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	p.Beta = p.Eta * int32(p.Tau)

	if p.Gamma1 == 1<<17 {
		p.gamma1Bits = 17
		p.PolyZPackedBytes = 576
	} else {
		p.gamma1Bits = 19
		p.PolyZPackedBytes = 640
	}

	if p.Gamma2 == (q-1)/88 {
		p.PolyW1PackedBytes = 192
	} else {
		p.PolyW1PackedBytes = 128
	}

	if p.Eta == 2 {
		p.PolyEtaPackedBytes = 96
	} else {
		p.PolyEtaPackedBytes = 128
	}

	p.PolyT1PackedBytes = 320
	p.PolyT0PackedBytes = 416
	p.PolyVecHPackedBytes = p.Omega + p.K

	p.PublicKeySize = seedBytes + p.K*p.PolyT1PackedBytes
	p.PrivateKeySize = 3*seedBytes +
		p.L*p.PolyEtaPackedBytes +
		p.K*p.PolyEtaPackedBytes +
		p.K*p.PolyT0PackedBytes
	p.SignatureSize = seedBytes + p.L*p.PolyZPackedBytes + p.PolyVecHPackedBytes

	return p, nil
}
