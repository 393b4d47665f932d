package dilithium

// power2Round splits the standard representative a (in [0, q)) into
// (a0, a1) such that a == a1*2^D + a0 with -2^(D-1) < a0 <= 2^(D-1).
func power2Round(a int32) (a0, a1 int32) {
	a1 = (a + (1 << (d - 1)) - 1) >> d
	a0 = a - (a1 << d)
	return a0, a1
}

// highBits returns the high-order bits of the standard representative
// a under the decomposition base alpha = 2*gamma2.
func highBits(a int32, gamma2 int32) int32 {
	a1 := (a + 127) >> 7

	if gamma2 == (q-1)/32 {
		a1 = (a1*1025 + (1 << 21)) >> 22
		return a1 & 15
	}
	// gamma2 == (q-1)/88
	a1 = (a1*11275 + (1 << 23)) >> 24
	a1 ^= ((43 - a1) >> 31) & a1
	return a1
}

// decompose splits the standard representative a into (a0, a1) with
// a == a1*alpha + a0, alpha = 2*gamma2, and -alpha/2 < a0 <= alpha/2,
// except when a1 would equal (q-1)/alpha: there a1 is wrapped to 0 and
// a0 becomes the corresponding negative value.
func decompose(a int32, gamma2 int32) (a0, a1 int32) {
	a1 = highBits(a, gamma2)
	a0 = a - a1*2*gamma2
	a0 -= ((qMinus1Div2 - a0) >> 31) & q
	return a0, a1
}

// makeHint reports whether the low bits a0 of a coefficient overflow
// into the high bits, given a1 = highBits(a, gamma2).
func makeHint(a0, a1, gamma2 int32) bool {
	if a0 > gamma2 || a0 < -gamma2 || (a0 == -gamma2 && a1 != 0) {
		return true
	}
	return false
}

// useHint uses a hint bit to recover the corrected high bits of a.
func useHint(a int32, hint bool, gamma2 int32) int32 {
	a0, a1 := decompose(a, gamma2)
	if !hint {
		return a1
	}

	if gamma2 == (q-1)/32 {
		if a0 > 0 {
			return (a1 + 1) & 15
		}
		return (a1 - 1) & 15
	}

	// gamma2 == (q-1)/88
	if a0 > 0 {
		if a1 == 43 {
			return 0
		}
		return a1 + 1
	}
	if a1 == 0 {
		return 43
	}
	return a1 - 1
}
