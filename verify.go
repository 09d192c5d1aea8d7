package blsag

import "github.com/blsag-go/blsag/hazmat/group"

// Verify reports whether (keyImage, c0, r) is a valid bLSAG ring signature on msg by some member of ring.
//
// Verify tolerates arbitrary byte input: non-canonical scalars or points, identity elements standing in for ring
// members or the key image, and a length mismatch between ring and r all surface as a single false return. It never
// panics, and it never branches on *which* check failed — every ring position is processed the same way regardless
// of earlier failures, so that timing does not leak which position, if any, was invalid.
func Verify(msg Hash, ring Ring, keyImage Point, c0 Scalar, r []Scalar) bool {
	n := len(ring)
	if n == 0 || len(r) != n {
		return false
	}

	valid := group.IsCanonicalScalar(c0) && !group.IsIdentity(keyImage)

	var c [2]Scalar
	c[0] = c0

	for j := 0; j < n; j++ {
		s := j % 2

		ciKi, ok := group.VarMul(c[s], ring[j])
		valid = valid && ok
		riG, ok := group.BaseMul(r[j])
		valid = valid && ok
		L, ok := group.Add(ciKi, riG)
		valid = valid && ok

		ciKimg, ok := group.VarMul(c[s], keyImage)
		valid = valid && ok
		hpKj, ok := hashToPointChecked(ring[j])
		valid = valid && ok
		riHpKj, ok := group.VarMul(r[j], hpKj)
		valid = valid && ok
		R, ok := group.Add(ciKimg, riHpKj)
		valid = valid && ok

		c[(s+1)%2] = hashToScalar(msg, L, R)
	}

	chainOK := group.Equal(c[n%2], c0)
	return valid && chainOK
}

// hashToPointChecked validates K before hashing it, folding a non-canonical or identity ring member into a false ok
// rather than rejecting immediately — the caller accumulates ok into its own running validity flag.
func hashToPointChecked(K Point) (Point, bool) {
	if !group.IsCanonicalPoint(K) || group.IsIdentity(K) {
		return Point{}, false
	}
	return hashToPoint(K), true
}
