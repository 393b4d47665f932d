package dilithium

import (
	"crypto"
	"crypto/subtle"
	"io"
)

// PublicKey is a Dilithium public key: the matrix seed rho and the
// rounded high bits t1 of As1+s2.
type PublicKey struct {
	params *Params
	rho    []byte
	t1     veck
}

// PrivateKey is a Dilithium private (signing) key. It carries tr, the
// hash of its public key, so Sign never has to recompute it, and a
// pointer to its matching PublicKey, which Public returns.
type PrivateKey struct {
	params *Params
	rho    []byte
	key    []byte
	tr     []byte
	s1     vecl
	s2     veck
	t0     veck

	pub *PublicKey
}

var (
	_ crypto.Signer        = (*PrivateKey)(nil)
	_ crypto.MessageSigner = (*PrivateKey)(nil)
	_ crypto.PublicKey     = (*PublicKey)(nil)
)

// Params returns the frozen parameter record this key was generated
// under.
func (pk *PublicKey) Params() *Params  { return pk.params }
func (sk *PrivateKey) Params() *Params { return sk.params }

// GenerateKey generates a fresh keypair for the given mode, drawing
// entropy from rnd.
func GenerateKey(mode Mode, rnd io.Reader) (*PrivateKey, error) {
	p, err := ParamsForMode(mode)
	if err != nil {
		return nil, err
	}
	seed := make([]byte, seedBytes)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		return nil, err
	}
	return newPrivateKeyFromSeed(seed, p)
}

// NewPrivateKeyFromSeed deterministically derives a keypair from a
// 32-byte seed. Equal seeds (and equal modes) always produce equal
// keys.
func NewPrivateKeyFromSeed(mode Mode, seed []byte) (*PrivateKey, error) {
	if len(seed) != seedBytes {
		return nil, ErrInvalidSeedLength
	}
	p, err := ParamsForMode(mode)
	if err != nil {
		return nil, err
	}
	return newPrivateKeyFromSeed(seed, p)
}

func newPrivateKeyFromSeed(seed []byte, p *Params) (*PrivateKey, error) {
	expanded := shake256Sum(2*seedBytes+crhBytes, seed)
	rho := expanded[:seedBytes]
	sigma := expanded[seedBytes : seedBytes+crhBytes]
	key := expanded[seedBytes+crhBytes:]

	a := expandA(rho, p)
	s1 := expandVecl(sigma, p.Eta, p.L)
	s2 := expandVeck(sigma, p.Eta, p.K, p.L)

	s1Hat := make(vecl, p.L)
	copy(s1Hat, s1)
	s1Hat.ntt()

	t := matrixPointwiseMontgomery(a, s1Hat)
	t.reduce()
	t.invNTT()
	t = addVeck(t, s2)
	t.caddq()

	t0, t1 := t.power2Round()

	pub := &PublicKey{params: p, rho: append([]byte(nil), rho...), t1: t1}
	tr := shake256Sum(seedBytes, pub.encode())

	sk := &PrivateKey{
		params: p,
		rho:    append([]byte(nil), rho...),
		key:    append([]byte(nil), key...),
		tr:     tr,
		s1:     s1,
		s2:     s2,
		t0:     t0,
		pub:    pub,
	}
	return sk, nil
}

// Public returns the public half of sk.
func (sk *PrivateKey) Public() crypto.PublicKey { return sk.pub }

// encode serializes pk as rho || pack_t1(t1[0]) || ... || pack_t1(t1[K-1]).
func (pk *PublicKey) encode() []byte {
	out := make([]byte, 0, pk.params.PublicKeySize)
	out = append(out, pk.rho...)
	for i := 0; i < pk.params.K; i++ {
		out = append(out, packT1(&pk.t1[i])...)
	}
	return out
}

// MarshalBinary encodes pk in the standard Dilithium public key format.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.encode(), nil
}

// UnmarshalPublicKey decodes a public key previously produced by
// (*PublicKey).MarshalBinary for the given mode.
func UnmarshalPublicKey(mode Mode, data []byte) (*PublicKey, error) {
	p, err := ParamsForMode(mode)
	if err != nil {
		return nil, err
	}
	if len(data) != p.PublicKeySize {
		return nil, ErrInvalidPublicKeyLength
	}
	pk := &PublicKey{params: p, rho: append([]byte(nil), data[:seedBytes]...), t1: newVeck(p.K)}
	off := seedBytes
	for i := 0; i < p.K; i++ {
		unpackT1(&pk.t1[i], data[off:off+p.PolyT1PackedBytes])
		off += p.PolyT1PackedBytes
	}
	return pk, nil
}

// encode serializes sk as rho || key || tr || pack_eta(s1) ||
// pack_eta(s2) || pack_t0(t0).
func (sk *PrivateKey) encode() []byte {
	p := sk.params
	out := make([]byte, 0, p.PrivateKeySize)
	out = append(out, sk.rho...)
	out = append(out, sk.key...)
	out = append(out, sk.tr...)
	for i := 0; i < p.L; i++ {
		out = append(out, packEta(&sk.s1[i], p.Eta)...)
	}
	for i := 0; i < p.K; i++ {
		out = append(out, packEta(&sk.s2[i], p.Eta)...)
	}
	for i := 0; i < p.K; i++ {
		out = append(out, packT0(&sk.t0[i])...)
	}
	return out
}

// MarshalBinary encodes sk in the standard Dilithium private key
// format.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return sk.encode(), nil
}

// UnmarshalPrivateKey decodes a private key previously produced by
// (*PrivateKey).MarshalBinary for the given mode.
func UnmarshalPrivateKey(mode Mode, data []byte) (*PrivateKey, error) {
	p, err := ParamsForMode(mode)
	if err != nil {
		return nil, err
	}
	if len(data) != p.PrivateKeySize {
		return nil, ErrInvalidPrivateKeyLength
	}

	off := 0
	rho := append([]byte(nil), data[off:off+seedBytes]...)
	off += seedBytes
	key := append([]byte(nil), data[off:off+seedBytes]...)
	off += seedBytes
	tr := append([]byte(nil), data[off:off+seedBytes]...)
	off += seedBytes

	s1 := newVecl(p.L)
	for i := 0; i < p.L; i++ {
		if err := unpackEta(&s1[i], data[off:off+p.PolyEtaPackedBytes], p.Eta); err != nil {
			return nil, err
		}
		off += p.PolyEtaPackedBytes
	}
	s2 := newVeck(p.K)
	for i := 0; i < p.K; i++ {
		if err := unpackEta(&s2[i], data[off:off+p.PolyEtaPackedBytes], p.Eta); err != nil {
			return nil, err
		}
		off += p.PolyEtaPackedBytes
	}
	t0 := newVeck(p.K)
	for i := 0; i < p.K; i++ {
		unpackT0(&t0[i], data[off:off+p.PolyT0PackedBytes])
		off += p.PolyT0PackedBytes
	}

	sk := &PrivateKey{params: p, rho: rho, key: key, tr: tr, s1: s1, s2: s2, t0: t0}
	sk.pub = sk.derivePublic()
	return sk, nil
}

// derivePublic recomputes sk's public key from its secret material,
// used after UnmarshalPrivateKey since the encoded private key never
// stores t1 directly.
func (sk *PrivateKey) derivePublic() *PublicKey {
	p := sk.params
	a := expandA(sk.rho, p)

	s1Hat := make(vecl, p.L)
	copy(s1Hat, sk.s1)
	s1Hat.ntt()

	t := matrixPointwiseMontgomery(a, s1Hat)
	t.reduce()
	t.invNTT()
	t = addVeck(t, sk.s2)
	t.caddq()

	_, t1 := t.power2Round()
	return &PublicKey{params: p, rho: sk.rho, t1: t1}
}

// Equal reports whether pk and other hold the same key material.
func (pk *PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey)
	if !ok || o.params.Mode != pk.params.Mode {
		return false
	}
	return subtle.ConstantTimeCompare(pk.encode(), o.encode()) == 1
}
