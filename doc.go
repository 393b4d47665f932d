// Package dilithium implements the CRYSTALS-Dilithium post-quantum
// digital signature scheme: lattice arithmetic over the cyclotomic ring
// R_q = Z_q[X]/(X^N+1), a Number-Theoretic Transform with Montgomery
// arithmetic, deterministic SHAKE-based sampling, the Fiat-Shamir-with-
// aborts signing loop, and bit-exact key/signature packing.
//
// Three parameter sets are supported, selected by mode number:
//   - Mode2: NIST security category 2
//   - Mode3: NIST security category 3
//   - Mode5: NIST security category 5
//
// Basic usage:
//
//	sk, err := dilithium.GenerateKey(dilithium.Mode3, rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	sig, err := sk.SignMessage(rand.Reader, message, crypto.Hash(0))
//	if err != nil {
//	    // handle error
//	}
//	pub := sk.Public().(*dilithium.PublicKey)
//	ok := pub.Verify(sig, message)
//
// Randomness, the underlying SHA-3/SHAKE primitives, and known-answer
// test harnessing are the caller's concern; this package consumes an
// io.Reader for randomness and the standard library's crypto/sha3 for
// the extendable-output functions.
package dilithium
