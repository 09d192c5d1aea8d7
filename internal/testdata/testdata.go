// Package testdata provides a deterministic random bit generator for testing.
package testdata

import (
	"crypto/sha3"

	"github.com/blsag-go/blsag/hazmat/group"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// KeyPair returns a deterministic ristretto255 key pair from the DRBG: a secret scalar and K = k·G.
func (d *DRBG) KeyPair() (group.Scalar, group.Point) {
	k := group.ScalarFromUniformBytes(d.wide())
	K, ok := group.BaseMul(k)
	if !ok {
		panic("testdata: generated scalar was not canonical")
	}
	return k, K
}

// Scalar returns a deterministic, canonical scalar from the DRBG.
func (d *DRBG) Scalar() group.Scalar {
	return group.ScalarFromUniformBytes(d.wide())
}

// Point returns a deterministic, canonical, non-identity point from the DRBG.
func (d *DRBG) Point() group.Point {
	return group.PointFromUniformBytes(d.wide())
}

// Ring returns n deterministic points, with a fresh key pair substituted at position signerIndex.
func (d *DRBG) Ring(n, signerIndex int) ([]group.Point, group.Scalar) {
	ring := make([]group.Point, n)
	var signerKey group.Scalar
	for i := range ring {
		if i == signerIndex {
			signerKey, ring[i] = d.KeyPair()
			continue
		}
		ring[i] = d.Point()
	}
	return ring, signerKey
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

func (d *DRBG) wide() [64]byte {
	var b [64]byte
	_, _ = d.h.Read(b[:])
	return b
}
