package dilithium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandADeterministic(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	assert.NoError(t, err)

	rho := make([]byte, seedBytes)
	for i := range rho {
		rho[i] = byte(2 * i)
	}

	a1 := expandA(rho, p)
	a2 := expandA(rho, p)
	assert.Equal(t, a1, a2)
	assert.Len(t, a1, p.K)
	assert.Len(t, a1[0], p.L)
}

func TestPolyvecPointwiseAccMontgomeryIndexesEveryEntry(t *testing.T) {
	// Regression test for the reference implementation's
	// pointwise_acc_montgomery bug, which always read u.vec[0]/v.vec[0]
	// instead of u.vec[i]/v.vec[i]. The entries at index 1 differ from
	// those at index 0, so the accumulated result must differ from what
	// reading index 0 on every iteration would produce.
	u := vecl{poly{}, poly{}}
	v := vecl{poly{}, poly{}}
	u[0][0], v[0][0] = 5, 5
	u[1][0], v[1][0] = 3, 9 // differ only past index 0

	got := polyvecPointwiseAccMontgomery(u, v)
	first := polyPointwiseMontgomery(&u[0], &v[0])
	indexZeroOnly := polyAdd(&first, &first)
	assert.NotEqual(t, indexZeroOnly, got)
}

func TestPackHintUnpackHintRoundTrip(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	assert.NoError(t, err)

	h := newVeck(p.K)
	h[0][1] = 1
	h[0][5] = 1
	h[1][0] = 1
	h[p.K-1][255] = 1

	packed := packHint(h, p)
	assert.Len(t, packed, p.PolyVecHPackedBytes)

	got, err := unpackHint(packed, p)
	assert.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestUnpackHintRejectsNonAscendingIndices(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	assert.NoError(t, err)

	b := make([]byte, p.PolyVecHPackedBytes)
	b[0] = 5
	b[1] = 3 // not strictly ascending within row 0
	b[p.Omega+0] = 2
	for i := 1; i < p.K; i++ {
		b[p.Omega+i] = 2
	}

	_, err = unpackHint(b, p)
	assert.ErrorIs(t, err, ErrMalformedSignature)
}

func TestUnpackHintRejectsDecreasingCumulativeCount(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	assert.NoError(t, err)

	b := make([]byte, p.PolyVecHPackedBytes)
	for i, v := range []byte{0, 1, 2, 3, 4} {
		b[i] = v // strictly ascending indices, so row 0's decode succeeds
	}
	b[p.Omega+0] = 5
	b[p.Omega+1] = 3 // decreases relative to row 0's running count

	_, err = unpackHint(b, p)
	assert.ErrorIs(t, err, ErrMalformedSignature)
}

func TestUnpackHintRejectsNonZeroPadding(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	assert.NoError(t, err)

	b := make([]byte, p.PolyVecHPackedBytes)
	for i := 0; i < p.K; i++ {
		b[p.Omega+i] = 0
	}
	b[p.Omega-1] = 1 // nonzero byte past the running count

	_, err = unpackHint(b, p)
	assert.ErrorIs(t, err, ErrMalformedSignature)
}

func TestMakeHintVeckCountsSetBits(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	assert.NoError(t, err)

	v0 := newVeck(p.K)
	v1 := newVeck(p.K)
	v0[0][0] = p.Gamma2 + 1 // forces makeHint true at this coordinate

	h, count := makeHintVeck(v0, v1, p.Gamma2)
	assert.Equal(t, 1, count)
	assert.Equal(t, int32(1), h[0][0])
}
