// Package blsag implements a back's Linkable Spontaneous Anonymous Group (bLSAG) ring signature scheme over the
// ristretto255 prime-order group, using SHA3-512 and SHA3-256 as its hash primitives.
//
// A signer who knows the discrete logarithm of exactly one public key in an ordered ring of public keys can produce
// a signature that convinces a verifier that some ring member signed, without revealing which one. Two signatures
// produced with the same secret scalar always carry the same key image, which lets an external system detect
// double-signing without learning the signer's identity.
//
// This package implements the closed cryptographic core only: key storage, transport, and a key-image database for
// double-spend detection are the caller's responsibility.
package blsag

import (
	"errors"
	"fmt"

	"github.com/blsag-go/blsag/hazmat/group"
)

// Size is the encoded length, in bytes, of a Scalar or a Point.
const Size = group.Size

// Scalar is a canonical ristretto255 scalar encoding.
type Scalar = group.Scalar

// Point is a canonical ristretto255 group element encoding. The all-zero value is the identity element.
type Point = group.Point

// Hash is a 32-byte SHA3-256 message digest, the msg input to Sign and Verify.
type Hash [32]byte

// Ring is an ordered sequence of candidate signer public keys. Order is semantically significant: the challenge
// chain indexes by position.
type Ring []Point

// ErrInvalidRing is returned by Sign when the ring or signer index is structurally invalid (an empty ring, or an
// index outside [0, len(ring))).
var ErrInvalidRing = errors.New("blsag: invalid ring or signer index")

// ErrRandomSource is returned by Sign when the platform CSPRNG fails to supply entropy. This is the only
// unrecoverable failure mode signing has, since it otherwise trusts its inputs.
var ErrRandomSource = errors.New("blsag: random source failed")

// Signature is a verifiable bLSAG ring signature bound to a (msg, ring) pair.
type Signature struct {
	KeyImage Point
	C0       Scalar
	R        []Scalar
}

// Encode returns the wire-format signature: KeyImage(32) || C0(32) || R[0](32) || ... || R[n-1](32). The ring itself
// is not part of the encoding; it is transported out of band.
func (s *Signature) Encode() []byte {
	out := make([]byte, 0, Size*(len(s.R)+2))
	out = append(out, s.KeyImage[:]...)
	out = append(out, s.C0[:]...)
	for _, ri := range s.R {
		out = append(out, ri[:]...)
	}
	return out
}

// DecodeSignature parses the wire format produced by Signature.Encode. It performs no cryptographic validation —
// call Verify on the result to check it.
func DecodeSignature(b []byte) (*Signature, error) {
	if len(b) < Size*2 || (len(b)-Size*2)%Size != 0 {
		return nil, fmt.Errorf("blsag: %d bytes is not a valid signature encoding", len(b))
	}

	n := (len(b) - Size*2) / Size
	sig := &Signature{R: make([]Scalar, n)}
	copy(sig.KeyImage[:], b[:Size])
	copy(sig.C0[:], b[Size:2*Size])
	for i := range sig.R {
		off := 2*Size + i*Size
		copy(sig.R[i][:], b[off:off+Size])
	}
	return sig, nil
}
