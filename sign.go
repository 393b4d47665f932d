package dilithium

import (
	"crypto"
	"io"
)

// Sign implements crypto.Signer. Dilithium signs the message directly
// rather than a pre-hashed digest, so digest is taken as the message
// verbatim and opts is ignored; pass crypto.Hash(0) when calling
// through the crypto.Signer interface. The rand parameter is also
// ignored: signing is deterministic given sk and the message, matching
// the reference implementation's crypto_sign_signature.
func (sk *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	return signInternal(sk, digest)
}

// SignMessage implements crypto.MessageSigner, the non-hash-then-sign
// counterpart to crypto.Signer. It is equivalent to Sign with
// opts set to crypto.Hash(0).
func (sk *PrivateKey) SignMessage(rand io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	return signInternal(sk, message)
}

// SignAttached produces an attached signature: the signature bytes
// followed by the message itself, in the style of the reference
// implementation's crypto_sign (but, unlike that reference, copying
// message into the output via append rather than overlapping a single
// buffer in place, which in the reference can corrupt the message
// when the signature is shorter than the space reserved for it).
func (sk *PrivateKey) SignAttached(message []byte) ([]byte, error) {
	sig, err := signInternal(sk, message)
	if err != nil {
		return nil, err
	}
	sm := make([]byte, 0, len(sig)+len(message))
	sm = append(sm, sig...)
	sm = append(sm, message...)
	return sm, nil
}

func signInternal(sk *PrivateKey, message []byte) ([]byte, error) {
	p := sk.params

	mu := shake256Sum(crhBytes, sk.tr, message)

	a := expandA(sk.rho, p)

	s1Hat := make(vecl, p.L)
	copy(s1Hat, sk.s1)
	s1Hat.ntt()

	s2Hat := make(veck, p.K)
	copy(s2Hat, sk.s2)
	s2Hat.ntt()

	t0Hat := make(veck, p.K)
	copy(t0Hat, sk.t0)
	t0Hat.ntt()

	rhoPrime := shake256Sum(crhBytes, sk.key, mu)

	gamma1 := p.Gamma1
	gamma2 := p.Gamma2
	beta := p.Beta

	for kappa := 0; ; kappa += p.L {
		y := expandMaskVecl(rhoPrime, kappa, p)

		yHat := make(vecl, p.L)
		copy(yHat, y)
		yHat.ntt()

		w := matrixPointwiseMontgomery(a, yHat)
		w.reduce()
		w.invNTT()
		w.caddq()

		w0, w1 := w.decompose(gamma2)

		w1Packed := make([]byte, 0, p.K*p.PolyW1PackedBytes)
		for i := 0; i < p.K; i++ {
			w1Packed = append(w1Packed, packW1(&w1[i], p)...)
		}
		cTilde := shake256Sum(seedBytes, mu, w1Packed)

		c := polyChallenge(cTilde, p.Tau)
		cHat := c
		polyNTT(&cHat)

		z := newVecl(p.L)
		for i := 0; i < p.L; i++ {
			t := polyPointwiseMontgomery(&cHat, &s1Hat[i])
			polyInvNTT(&t)
			z[i] = polyAdd(&y[i], &t)
		}
		z.reduce()
		if z.chknorm(gamma1 - beta) {
			continue
		}

		cs2 := newVeck(p.K)
		for i := 0; i < p.K; i++ {
			t := polyPointwiseMontgomery(&cHat, &s2Hat[i])
			polyInvNTT(&t)
			cs2[i] = t
		}
		w0 = subVeck(w0, cs2)
		w0.reduce()
		if w0.chknorm(gamma2 - beta) {
			continue
		}

		ct0 := newVeck(p.K)
		for i := 0; i < p.K; i++ {
			t := polyPointwiseMontgomery(&cHat, &t0Hat[i])
			polyInvNTT(&t)
			ct0[i] = t
		}
		ct0.reduce()
		if ct0.chknorm(gamma2) {
			continue
		}

		w0 = addVeck(w0, ct0)

		hint, numHints := makeHintVeck(w0, w1, gamma2)
		if numHints > p.Omega {
			continue
		}

		return packSignature(cTilde, z, hint, p), nil
	}
}

// packSignature serializes a signature as c~ || pack_z(z) || pack_hint(h).
func packSignature(cTilde []byte, z vecl, h veck, p *Params) []byte {
	out := make([]byte, 0, p.SignatureSize)
	out = append(out, cTilde...)
	for i := 0; i < p.L; i++ {
		out = append(out, packZ(&z[i], p)...)
	}
	out = append(out, packHint(h, p)...)
	return out
}
