package dilithium

import "crypto/subtle"

// Verify reports whether sig is a valid Dilithium signature over
// message under pk. Any malformed encoding (wrong length, out-of-range
// z, or a hint vector violating unpackHint's invariants) is treated as
// a verification failure, not a distinct error.
func (pk *PublicKey) Verify(sig, message []byte) bool {
	ok, _ := pk.verify(sig, message)
	return ok
}

// Open recovers message from an attached signature sm produced by
// (*PrivateKey).SignAttached, returning ErrVerificationFailed if the
// embedded signature does not validate.
func (pk *PublicKey) Open(sm []byte) ([]byte, error) {
	p := pk.params
	if len(sm) < p.SignatureSize {
		return nil, ErrVerificationFailed
	}
	sig, message := sm[:p.SignatureSize], sm[p.SignatureSize:]
	ok, err := pk.verify(sig, message)
	if err != nil || !ok {
		return nil, ErrVerificationFailed
	}
	return message, nil
}

func (pk *PublicKey) verify(sig, message []byte) (bool, error) {
	p := pk.params
	if len(sig) != p.SignatureSize {
		return false, nil
	}

	cTilde, z, h, err := unpackSignature(sig, p)
	if err != nil {
		return false, nil
	}
	if z.chknorm(p.Gamma1 - p.Beta) {
		return false, nil
	}

	tr := shake256Sum(seedBytes, pk.encode())
	mu := shake256Sum(crhBytes, tr, message)

	c := polyChallenge(cTilde, p.Tau)
	cHat := c
	polyNTT(&cHat)

	a := expandA(pk.rho, p)

	zHat := make(vecl, p.L)
	copy(zHat, z)
	zHat.ntt()

	az := matrixPointwiseMontgomery(a, zHat)

	t1Shifted := make(veck, p.K)
	copy(t1Shifted, pk.t1)
	t1Shifted.shiftLeft()
	t1Shifted.ntt()

	ct1 := newVeck(p.K)
	for i := 0; i < p.K; i++ {
		ct1[i] = polyPointwiseMontgomery(&cHat, &t1Shifted[i])
	}

	w := subVeck(az, ct1)
	w.reduce()
	w.invNTT()
	w.caddq()

	w1 := useHintVeck(w, h, p.Gamma2)

	w1Packed := make([]byte, 0, p.K*p.PolyW1PackedBytes)
	for i := 0; i < p.K; i++ {
		w1Packed = append(w1Packed, packW1(&w1[i], p)...)
	}
	cTildePrime := shake256Sum(seedBytes, mu, w1Packed)

	return subtle.ConstantTimeCompare(cTilde, cTildePrime) == 1, nil
}

// unpackSignature is the inverse of packSignature.
func unpackSignature(sig []byte, p *Params) ([]byte, vecl, veck, error) {
	off := 0
	cTilde := append([]byte(nil), sig[off:off+seedBytes]...)
	off += seedBytes

	z := newVecl(p.L)
	for i := 0; i < p.L; i++ {
		unpackZ(&z[i], sig[off:off+p.PolyZPackedBytes], p)
		off += p.PolyZPackedBytes
	}

	h, err := unpackHint(sig[off:], p)
	if err != nil {
		return nil, nil, nil, err
	}

	return cTilde, z, h, nil
}
