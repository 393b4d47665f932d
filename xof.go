package dilithium

import "crypto/sha3"

// Rate, in bytes, of the two extendable-output functions the scheme
// relies on. These sizes govern how many bytes a single squeeze pass
// yields and hence how the rejection samplers refill their buffers.
const (
	shake128Rate = 168
	shake256Rate = 136
)

// xof is the minimal incremental interface this package needs from a
// SHAKE implementation: absorb bytes, then squeeze arbitrarily many
// output bytes. crypto/sha3's *sha3.SHAKE already satisfies it.
type xof interface {
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
}

// newShake128 returns a SHAKE128 XOF with seed and a two-byte
// little-endian nonce already absorbed, per the seed|nonce
// initialization contract ExpandA and friends rely on.
func newShake128(seed []byte, nonce uint16) xof {
	h := sha3.NewSHAKE128()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})
	return h
}

// newShake256 returns a SHAKE256 XOF with seed and a two-byte
// little-endian nonce already absorbed.
func newShake256(seed []byte, nonce uint16) xof {
	h := sha3.NewSHAKE256()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})
	return h
}

// shake256Sum hashes the concatenation of parts with SHAKE256 and
// squeezes outLen bytes. Used for non-incremental digests such as
// tr = H(pk) and mu = H(tr || M).
func shake256Sum(outLen int, parts ...[]byte) []byte {
	h := sha3.NewSHAKE256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// shake256Of returns a bare SHAKE256 XOF with nothing absorbed yet, for
// callers that absorb their input and then squeeze it a few bytes at a
// time (polyChallenge, which samples the challenge from c~).
func shake256Of() xof {
	return sha3.NewSHAKE256()
}
