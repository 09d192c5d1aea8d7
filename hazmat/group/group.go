// Package group is a thin facade over the ristretto255 prime-order group, exposing exactly the operations the bLSAG
// construction needs: scalar generation, base-point and variable-base scalar multiplication, point addition, scalar
// multiplication/subtraction, the from_hash and wide-reduction maps, and constant-time comparison.
//
// Handle with care: operations that decode caller-supplied bytes report failure via an ok result instead of an error
// so that callers can fold a bad encoding into a uniform reject without branching on which check failed. Values
// produced internally (by RandomScalar, PointFromUniformBytes, ScalarFromUniformBytes) are always canonical and the
// corresponding operations never fail.
package group

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/gtank/ristretto255"
)

// Size is the encoded length, in bytes, of a Scalar or a Point.
const Size = 32

// Scalar is a canonical little-endian encoding of a ristretto255 scalar.
type Scalar [Size]byte

// Point is a canonical encoding of a ristretto255 group element. The all-zero value is the identity element.
type Point [Size]byte

// Identity is the canonical encoding of the ristretto255 identity element.
var Identity Point

// RandomScalar draws a uniformly random scalar from the platform CSPRNG.
func RandomScalar() (Scalar, error) {
	var wide [64]byte
	if _, err := rand.Read(wide[:]); err != nil {
		return Scalar{}, err
	}
	s, err := ristretto255.NewScalar().SetUniformBytes(wide[:])
	clear(wide[:])
	if err != nil {
		return Scalar{}, err
	}
	return encodeScalar(s), nil
}

// PointFromUniformBytes maps 64 uniformly random bytes (a SHA3-512 digest) onto the group via ristretto255's
// from_hash construction. Given exactly 64 bytes of input, this never fails.
func PointFromUniformBytes(digest [64]byte) Point {
	el, err := ristretto255.NewIdentityElement().SetUniformBytes(digest[:])
	if err != nil {
		panic("group: SetUniformBytes rejected a 64-byte digest: " + err.Error())
	}
	return encodePoint(el)
}

// ScalarFromUniformBytes maps 64 uniformly random bytes (a SHA3-512 digest) to a scalar via wide reduction. Given
// exactly 64 bytes of input, this never fails.
func ScalarFromUniformBytes(digest [64]byte) Scalar {
	s, err := ristretto255.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic("group: SetUniformBytes rejected a 64-byte digest: " + err.Error())
	}
	return encodeScalar(s)
}

// BaseMul returns a·G, the scalar multiplication of the group generator. ok is false if a is not a canonical scalar
// encoding.
func BaseMul(a Scalar) (p Point, ok bool) {
	s, err := decodeScalar(a)
	if err != nil {
		return Point{}, false
	}
	return encodePoint(ristretto255.NewIdentityElement().ScalarBaseMult(s)), true
}

// VarMul returns a·P, the variable-base scalar multiplication. ok is false if a or p is not a canonical encoding.
func VarMul(a Scalar, p Point) (Point, bool) {
	s, err := decodeScalar(a)
	if err != nil {
		return Point{}, false
	}
	el, err := decodePoint(p)
	if err != nil {
		return Point{}, false
	}
	return encodePoint(ristretto255.NewIdentityElement().ScalarMult(s, el)), true
}

// Add returns the sum of two points. ok is false if either input is not a canonical encoding.
func Add(a, b Point) (Point, bool) {
	ea, err := decodePoint(a)
	if err != nil {
		return Point{}, false
	}
	eb, err := decodePoint(b)
	if err != nil {
		return Point{}, false
	}
	return encodePoint(ristretto255.NewIdentityElement().Add(ea, eb)), true
}

// MulScalar returns the product a·b in the scalar field. ok is false if either input is not a canonical encoding.
func MulScalar(a, b Scalar) (Scalar, bool) {
	sa, err := decodeScalar(a)
	if err != nil {
		return Scalar{}, false
	}
	sb, err := decodeScalar(b)
	if err != nil {
		return Scalar{}, false
	}
	return encodeScalar(ristretto255.NewScalar().Multiply(sa, sb)), true
}

// SubScalar returns the difference a−b in the scalar field. ok is false if either input is not a canonical encoding.
func SubScalar(a, b Scalar) (Scalar, bool) {
	sa, err := decodeScalar(a)
	if err != nil {
		return Scalar{}, false
	}
	sb, err := decodeScalar(b)
	if err != nil {
		return Scalar{}, false
	}
	return encodeScalar(ristretto255.NewScalar().Subtract(sa, sb)), true
}

// Equal reports whether a and b are byte-identical, in constant time.
func Equal(a, b Scalar) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// IsIdentity reports, in constant time, whether p is the all-zero identity encoding.
func IsIdentity(p Point) bool {
	return subtle.ConstantTimeCompare(p[:], Identity[:]) == 1
}

// IsCanonicalPoint reports whether p is a canonical ristretto255 element encoding.
func IsCanonicalPoint(p Point) bool {
	_, err := decodePoint(p)
	return err == nil
}

// IsCanonicalScalar reports whether s is a canonical, fully-reduced scalar encoding.
func IsCanonicalScalar(s Scalar) bool {
	_, err := decodeScalar(s)
	return err == nil
}

func decodeScalar(s Scalar) (*ristretto255.Scalar, error) {
	return ristretto255.NewScalar().SetCanonicalBytes(s[:])
}

func decodePoint(p Point) (*ristretto255.Element, error) {
	return ristretto255.NewIdentityElement().SetCanonicalBytes(p[:])
}

func encodeScalar(s *ristretto255.Scalar) Scalar {
	var out Scalar
	copy(out[:], s.Bytes())
	return out
}

func encodePoint(p *ristretto255.Element) Point {
	var out Point
	copy(out[:], p.Bytes())
	return out
}
