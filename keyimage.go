package blsag

import (
	"github.com/blsag-go/blsag/hazmat/group"
	"github.com/blsag-go/blsag/internal/zeroize"
)

// KeyImage computes the linkability tag Kimg = k·Hp(K) for the secret scalar k and its corresponding public key
// K = k·G.
//
// KeyImage does not verify that K actually corresponds to k — that is the caller's responsibility, the same
// trust boundary Sign operates under. It is exposed as a standalone primitive because callers may wish to
// precompute or display a key image independently of producing a signature.
func KeyImage(k Scalar, K Point) Point {
	defer zeroize.Scalar(&k)

	hp := hashToPoint(K)
	defer zeroize.Point(&hp)

	img, ok := group.VarMul(k, hp)
	if !ok {
		panic("blsag: key image scalar multiplication failed on trusted input")
	}
	return img
}
