package dilithium

// Montgomery arithmetic constants.
const (
	// qInv = q^-1 mod 2^32
	qInv uint32 = 58728449
)

// montgomeryReduce computes r = a * 2^-32 mod q for a in
// [-2^31*q, 2^31*q], returning r with -q < r < q.
func montgomeryReduce(a int64) int32 {
	t := int32(uint32(a) * qInv)
	r := (a - int64(t)*int64(q)) >> 32
	return int32(r)
}

// reduce32 computes r == a (mod q) with r in [-6283009, 6283007], for
// any a <= 2^31 - 2^22 - 1.
func reduce32(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*q
}

// caddq adds q to a if a is negative, branchlessly.
func caddq(a int32) int32 {
	return a + ((a >> 31) & q)
}

// freeze reduces a to its standard representative in [0, q).
func freeze(a int32) int32 {
	return caddq(reduce32(a))
}

// montgomeryMul multiplies two field elements already in Montgomery
// domain, returning the Montgomery-domain product.
func montgomeryMul(a, b int32) int32 {
	return montgomeryReduce(int64(a) * int64(b))
}
