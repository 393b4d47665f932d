package dilithium

// This file lifts the polynomial layer to vectors and matrices over
// R_q: vecl has L entries, veck has K entries, and the public matrix A
// is K-by-L. Functions here are thin per-coefficient loops over poly.go
// primitives; the only nontrivial logic is the hint vector codec,
// packHint/unpackHint, which run-length-encodes the sparse set of
// hint-set positions per row.

type vecl []poly
type veck []poly

func newVecl(l int) vecl { return make(vecl, l) }
func newVeck(k int) veck { return make(veck, k) }

func (v vecl) ntt() {
	for i := range v {
		polyNTT(&v[i])
	}
}

func (v veck) ntt() {
	for i := range v {
		polyNTT(&v[i])
	}
}

func (v veck) invNTT() {
	for i := range v {
		polyInvNTT(&v[i])
	}
}

func (v vecl) reduce() {
	for i := range v {
		polyReduce(&v[i])
	}
}

func (v veck) reduce() {
	for i := range v {
		polyReduce(&v[i])
	}
}

func (v veck) caddq() {
	for i := range v {
		polyCaddq(&v[i])
	}
}

func addVecl(a, b vecl) vecl {
	c := newVecl(len(a))
	for i := range c {
		c[i] = polyAdd(&a[i], &b[i])
	}
	return c
}

func addVeck(a, b veck) veck {
	c := newVeck(len(a))
	for i := range c {
		c[i] = polyAdd(&a[i], &b[i])
	}
	return c
}

func subVeck(a, b veck) veck {
	c := newVeck(len(a))
	for i := range c {
		c[i] = polySub(&a[i], &b[i])
	}
	return c
}

func (v vecl) chknorm(bound int32) bool {
	for i := range v {
		if polyChknorm(&v[i], bound) {
			return true
		}
	}
	return false
}

func (v veck) chknorm(bound int32) bool {
	for i := range v {
		if polyChknorm(&v[i], bound) {
			return true
		}
	}
	return false
}

// power2Round splits every coefficient of t into (t0, t1).
func (v veck) power2Round() (t0, t1 veck) {
	t0, t1 = newVeck(len(v)), newVeck(len(v))
	for i := range v {
		for j := 0; j < n; j++ {
			t0[i][j], t1[i][j] = power2Round(v[i][j])
		}
	}
	return t0, t1
}

// decompose splits every coefficient of w into (w0, w1) under the
// given gamma2.
func (v veck) decompose(gamma2 int32) (w0, w1 veck) {
	w0, w1 = newVeck(len(v)), newVeck(len(v))
	for i := range v {
		for j := 0; j < n; j++ {
			w0[i][j], w1[i][j] = decompose(v[i][j], gamma2)
		}
	}
	return w0, w1
}

// shiftLeft multiplies every coefficient by 2^D in place.
func (v veck) shiftLeft() {
	for i := range v {
		polyShiftLeft(&v[i])
	}
}

// expandA deterministically derives the public K-by-L matrix A from
// the seed rho, matching the reference's row-major nonce assignment
// nonce = 256*row + col.
func expandA(rho []byte, p *Params) []vecl {
	a := make([]vecl, p.K)
	for i := 0; i < p.K; i++ {
		a[i] = newVecl(p.L)
		for j := 0; j < p.L; j++ {
			a[i][j] = polyUniform(rho, uint16(256*i+j))
		}
	}
	return a
}

// matrixPointwiseMontgomery computes A*v in NTT domain: v must already
// be NTT-transformed, and the result is NTT-domain and unreduced
// (callers typically follow with a reduce/invNTT pass).
func matrixPointwiseMontgomery(a []vecl, v vecl) veck {
	k := len(a)
	out := newVeck(k)
	for i := 0; i < k; i++ {
		out[i] = polyvecPointwiseAccMontgomery(a[i], v)
	}
	return out
}

// polyvecPointwiseAccMontgomery computes the NTT-domain dot product of
// u and v, accumulating into a single polynomial. The reference
// implementation's pointwise_acc_montgomery has a well-known off-by-
// index bug that reads u.vec[0]/v.vec[0] on every iteration instead of
// u.vec[i]/v.vec[i]; this fixes that and indexes correctly.
func polyvecPointwiseAccMontgomery(u, v vecl) poly {
	var w poly
	t := polyPointwiseMontgomery(&u[0], &v[0])
	w = t
	for i := 1; i < len(u); i++ {
		t = polyPointwiseMontgomery(&u[i], &v[i])
		w = polyAdd(&w, &t)
	}
	return w
}

// expandVecl samples an L-length secret vector with coefficients in
// [-eta, eta], nonces 0..L-1.
func expandVecl(seed []byte, eta int32, l int) vecl {
	v := newVecl(l)
	for i := 0; i < l; i++ {
		v[i] = polyUniformEta(seed, uint16(i), eta)
	}
	return v
}

// expandVeck samples a K-length secret vector with coefficients in
// [-eta, eta], nonces continuing on from l (matching the reference's
// single shared nonce counter across s1 then s2).
func expandVeck(seed []byte, eta int32, k, nonceOffset int) veck {
	v := newVeck(k)
	for i := 0; i < k; i++ {
		v[i] = polyUniformEta(seed, uint16(nonceOffset+i), eta)
	}
	return v
}

// expandMaskVecl samples the L-length masking vector y from the
// signer's rejection loop, reseeded with a fresh nonce each attempt by
// the caller via the kappa parameter.
func expandMaskVecl(seed []byte, kappa int, p *Params) vecl {
	v := newVecl(p.L)
	for i := 0; i < p.L; i++ {
		v[i] = polyUniformGamma1(seed, uint16(kappa+i), p)
	}
	return v
}

// packHint serializes the set of true entries across h (a K-length
// vector of 0/1 hint polynomials) into the run-length form: for each
// row, the coefficient indices of its set positions are appended in
// ascending order to the first Omega bytes, and the cumulative running
// count after that row is recorded in the K-byte trailer at offset
// Omega.
func packHint(h veck, p *Params) []byte {
	b := make([]byte, p.PolyVecHPackedBytes)
	k := 0
	for i := 0; i < p.K; i++ {
		for j := 0; j < n; j++ {
			if h[i][j] != 0 {
				b[k] = byte(j)
				k++
			}
		}
		b[p.Omega+i] = byte(k)
	}
	return b
}

// unpackHint is the inverse of packHint. It rejects malformed
// encodings: an out-of-range running count, a decreasing running
// count across rows, non-ascending indices within a row, or nonzero
// padding bytes past the final running count all return
// ErrMalformedSignature.
func unpackHint(b []byte, p *Params) (veck, error) {
	h := newVeck(p.K)
	k := 0
	for i := 0; i < p.K; i++ {
		count := int(b[p.Omega+i])
		if count < k || count > p.Omega {
			return nil, ErrMalformedSignature
		}
		var prev byte
		for j := k; j < count; j++ {
			if j > k && b[j] <= prev {
				return nil, ErrMalformedSignature
			}
			prev = b[j]
			h[i][prev] = 1
		}
		k = count
	}
	for j := k; j < p.Omega; j++ {
		if b[j] != 0 {
			return nil, ErrMalformedSignature
		}
	}
	return h, nil
}

// useHintVeck applies useHint coefficient-wise, reconstructing w1 from
// w and the hint vector h.
func useHintVeck(w veck, h veck, gamma2 int32) veck {
	out := newVeck(len(w))
	for i := range w {
		for j := 0; j < n; j++ {
			out[i][j] = useHint(w[i][j], h[i][j] != 0, gamma2)
		}
	}
	return out
}

// makeHintVeck computes the hint vector for (v0, v1) coefficient-wise
// and returns it along with the number of set bits.
func makeHintVeck(v0, v1 veck, gamma2 int32) (veck, int) {
	h := newVeck(len(v0))
	count := 0
	for i := range v0 {
		for j := 0; j < n; j++ {
			if makeHint(v0[i][j], v1[i][j], gamma2) {
				h[i][j] = 1
				count++
			}
		}
	}
	return h, count
}
