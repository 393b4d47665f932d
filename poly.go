package dilithium

// poly is a polynomial in R_q, represented as 256 signed 32-bit
// coefficients. Depending on which operation produced it, a poly may
// hold standard-domain or NTT-domain (Montgomery form) coefficients;
// callers track which domain they are in, matching the reference
// implementation's convention of a single in-place coefficient array.
type poly [n]int32

// polyAdd returns the coefficient-wise sum of a and b. No reduction is
// performed.
func polyAdd(a, b *poly) (c poly) {
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return c
}

// polySub returns the coefficient-wise difference a-b. No reduction is
// performed.
func polySub(a, b *poly) (c poly) {
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return c
}

// polyShiftLeft multiplies every coefficient by 2^D without reduction.
// Callers must ensure |f[i]| < 2^(31-D) beforehand.
func polyShiftLeft(f *poly) {
	for i := range f {
		f[i] <<= d
	}
}

// polyReduce applies reduce32 to every coefficient.
func polyReduce(f *poly) {
	for i := range f {
		f[i] = reduce32(f[i])
	}
}

// polyCaddq adds q to every negative coefficient.
func polyCaddq(f *poly) {
	for i := range f {
		f[i] = caddq(f[i])
	}
}

// polyNTT applies the forward NTT in place.
func polyNTT(f *poly) {
	ntt((*[n]int32)(f))
}

// polyInvNTT applies the inverse NTT (scaled back into Montgomery form)
// in place.
func polyInvNTT(f *poly) {
	invNTT((*[n]int32)(f))
}

// polyPointwiseMontgomery returns the coefficient-wise Montgomery
// product of two NTT-domain polynomials.
func polyPointwiseMontgomery(a, b *poly) (c poly) {
	for i := range c {
		c[i] = montgomeryMul(a[i], b[i])
	}
	return c
}

// polyChknorm reports whether any coefficient of f has infinity norm
// (centered representative) greater than or equal to bound. Assumes f
// has already been passed through polyReduce. bound must be <= (q-1)/8.
func polyChknorm(f *poly, bound int32) bool {
	if bound > (q-1)/8 {
		return true
	}
	for _, c := range f {
		// Absolute value of c via the sign bit, the same trick as the
		// reference implementation; c is taken as already centered by
		// polyReduce, so no multiple of q is subtracted here.
		t := c >> 31
		t = c - (t & (2 * c))
		if t >= bound {
			return true
		}
	}
	return false
}

// rejUniform reads 3-byte little-endian chunks out of buf, accepting
// those less than q into out (masking the top bit of each chunk first).
// It returns the number of coefficients written.
func rejUniform(out []int32, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(out) && pos+3 <= len(buf) {
		t := uint32(buf[pos]) | uint32(buf[pos+1])<<8 | uint32(buf[pos+2])<<16
		t &= 0x7FFFFF
		pos += 3
		if t < uint32(q) {
			out[ctr] = int32(t)
			ctr++
		}
	}
	return ctr
}

// polyUniform samples a uniformly random standard-domain polynomial
// from SHAKE128(rho || nonce), via rejection sampling.
func polyUniform(rho []byte, nonce uint16) poly {
	var a poly
	h := newShake128(rho, nonce)

	buf := make([]byte, shake128Rate)
	ctr := 0
	for ctr < n {
		h.Read(buf)
		got := rejUniform(a[ctr:], buf)
		ctr += got
	}
	return a
}

// rejEta reads bytes out of buf, splitting each into two nibbles and
// mapping accepted nibbles to coefficients in [-eta, eta]. It returns
// the number of coefficients written.
func rejEta(out []int32, buf []byte, eta int32) int {
	ctr, pos := 0, 0
	for ctr < len(out) && pos < len(buf) {
		t0 := int32(buf[pos] & 0x0F)
		t1 := int32(buf[pos] >> 4)
		pos++

		if eta == 2 {
			if t0 < 15 {
				t0 -= (205 * t0 >> 10) * 5
				out[ctr] = eta - t0
				ctr++
			}
			if ctr < len(out) && t1 < 15 {
				t1 -= (205 * t1 >> 10) * 5
				out[ctr] = eta - t1
				ctr++
			}
		} else {
			if t0 < 9 {
				out[ctr] = eta - t0
				ctr++
			}
			if ctr < len(out) && t1 < 9 {
				out[ctr] = eta - t1
				ctr++
			}
		}
	}
	return ctr
}

// polyUniformEta samples a standard-domain polynomial with
// coefficients in [-eta, eta] from SHAKE256(seed || nonce).
func polyUniformEta(seed []byte, nonce uint16, eta int32) poly {
	var a poly
	h := newShake256(seed, nonce)

	buf := make([]byte, shake256Rate)
	ctr := 0
	for ctr < n {
		h.Read(buf)
		got := rejEta(a[ctr:], buf, eta)
		ctr += got
	}
	return a
}

// polyUniformGamma1 samples a standard-domain polynomial with
// coefficients in (-gamma1, gamma1] from SHAKE256(seed || nonce),
// directly unpacking the squeezed bytes with no rejection.
func polyUniformGamma1(seed []byte, nonce uint16, p *Params) poly {
	h := newShake256(seed, nonce)
	buf := make([]byte, p.PolyZPackedBytes)
	h.Read(buf)

	var a poly
	unpackZ(&a, buf, p)
	return a
}

// polyChallenge samples the challenge polynomial c with exactly tau
// coefficients in {-1, +1} (the rest zero) from SHAKE256(seed).
func polyChallenge(seed []byte, tau int) poly {
	var c poly

	h := shake256Of()
	h.Write(seed)

	var signBuf [8]byte
	h.Read(signBuf[:])
	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(signBuf[i]) << (8 * i)
	}

	var byteBuf [1]byte
	for i := n - tau; i < n; i++ {
		var b int
		for {
			h.Read(byteBuf[:])
			b = int(byteBuf[0])
			if b <= i {
				break
			}
		}
		c[i] = c[b]
		if signs&1 != 0 {
			c[b] = -1
		} else {
			c[b] = 1
		}
		signs >>= 1
	}
	return c
}
