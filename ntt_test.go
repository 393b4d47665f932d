package dilithium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNTTInvNTTRoundTrip(t *testing.T) {
	var f [n]int32
	for i := range f {
		f[i] = int32((i*7919 + 3) % int(q))
	}
	orig := f

	ntt(&f)
	invNTT(&f)

	// invNTT lands its output in Montgomery form, so the round trip
	// yields orig * 2^32 mod q.
	for i := range f {
		assert.Equal(t, toMontgomery(orig[i]), freeze(f[i]), "coefficient %d", i)
	}
}

func TestNTTIsLinear(t *testing.T) {
	var a, b [n]int32
	for i := range a {
		a[i] = int32(i)
		b[i] = int32(2*i + 1)
	}
	var sum [n]int32
	for i := range sum {
		sum[i] = a[i] + b[i]
	}

	ntt(&a)
	ntt(&b)
	ntt(&sum)

	for i := range sum {
		assert.Equal(t, freeze(sum[i]), freeze(a[i]+b[i]), "coefficient %d", i)
	}
}

func TestNTTZeroIsZero(t *testing.T) {
	var f [n]int32
	ntt(&f)
	for _, c := range f {
		assert.Equal(t, int32(0), freeze(c))
	}
}
