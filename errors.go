package dilithium

import "errors"

var (
	// ErrInvalidMode is returned by ParamsForMode for a mode outside {2,3,5}.
	ErrInvalidMode = errors.New("dilithium: invalid mode")

	// ErrInvalidSeedLength is returned when a seed is not exactly SeedSize bytes.
	ErrInvalidSeedLength = errors.New("dilithium: invalid seed length")

	// ErrInvalidPublicKeyLength is returned when an encoded public key has
	// the wrong length for its mode.
	ErrInvalidPublicKeyLength = errors.New("dilithium: invalid public key length")

	// ErrInvalidPrivateKeyLength is returned when an encoded private key has
	// the wrong length for its mode.
	ErrInvalidPrivateKeyLength = errors.New("dilithium: invalid private key length")

	// ErrInvalidEtaEncoding is returned when a packed eta-bounded polynomial
	// contains an out-of-range nibble/tribble.
	ErrInvalidEtaEncoding = errors.New("dilithium: invalid eta encoding")

	// ErrMalformedSignature is returned when a signature's hint encoding
	// violates the strictly-increasing / cumulative-count / zero-padding
	// invariants. A signature of the wrong length is rejected by Verify
	// without this error.
	ErrMalformedSignature = errors.New("dilithium: malformed signature")

	// ErrVerificationFailed is returned by Verify/Open when the signature
	// does not validate against the message and public key.
	ErrVerificationFailed = errors.New("dilithium: verification failed")

	// ErrContextTooLong is unused by the core signing path (this package
	// does not implement FIPS 204 context strings) but kept as a sentinel
	// for callers building a higher-level API on top of this package.
	ErrContextTooLong = errors.New("dilithium: context too long")
)
