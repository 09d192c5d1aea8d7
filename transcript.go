package blsag

import (
	"github.com/blsag-go/blsag/hazmat/group"
	"github.com/blsag-go/blsag/hazmat/ringhash"
	"github.com/blsag-go/blsag/internal/zeroize"
)

// hashToPoint computes Hp(K) = hash_to_point("keyimg" || K): SHA3-512 followed by the ristretto255 from_hash map.
// K is trusted to be a canonical point; callers that received K from outside the package must check
// group.IsCanonicalPoint first.
func hashToPoint(K Point) Point {
	digest := ringhash.PointPreimage(K)
	p := group.PointFromUniformBytes(digest)
	zeroize.Bytes(digest[:])
	return p
}

// hashToScalar computes hash_to_scalar("blsag" || msg || l || r): SHA3-512 followed by the ristretto255
// wide-reduction scalar map.
func hashToScalar(msg Hash, l, r Point) Scalar {
	digest := ringhash.ScalarPreimage(msg, l, r)
	c := group.ScalarFromUniformBytes(digest)
	zeroize.Bytes(digest[:])
	return c
}
