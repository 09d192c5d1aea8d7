package blsag

import (
	"fmt"

	"github.com/blsag-go/blsag/hazmat/group"
	"github.com/blsag-go/blsag/internal/zeroize"
)

// Sign produces a ring signature proving that the caller knows the discrete logarithm of ring[signerIndex] without
// revealing which ring member that is.
//
// The caller must ensure ring[signerIndex] = signerKey·G and signerKey != 0; Sign does not verify either and its
// behavior on signatures produced from a false premise is undefined (the resulting signature simply will not
// verify). 0 <= signerIndex < len(ring) is checked and reported as ErrInvalidRing.
func Sign(msg Hash, ring Ring, signerIndex int, signerKey Scalar) (*Signature, error) {
	defer zeroize.Scalar(&signerKey)

	n := len(ring)
	if n == 0 || signerIndex < 0 || signerIndex >= n {
		return nil, fmt.Errorf("%w: signer index %d, ring size %d", ErrInvalidRing, signerIndex, n)
	}

	// Step 1: derive the key image from the signer's own ring position.
	hpPi := hashToPoint(ring[signerIndex])
	defer zeroize.Point(&hpPi)

	Kimg, ok := group.VarMul(signerKey, hpPi)
	must(ok, "key image computation")

	// Step 2: draw the nonce.
	alpha, err := group.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	defer zeroize.Scalar(&alpha)

	// Step 3: draw a random response for every ring member but the signer.
	c := make([]Scalar, n)
	r := make([]Scalar, n)
	for i := range r {
		if i == signerIndex {
			continue
		}
		ri, err := group.RandomScalar()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		r[i] = ri
	}

	// Step 4: seed the challenge chain at π+1 using the nonce in place of a response.
	Lpi, ok := group.BaseMul(alpha)
	must(ok, "L_pi")
	Rpi, ok := group.VarMul(alpha, hpPi)
	must(ok, "R_pi")
	c[(signerIndex+1)%n] = hashToScalar(msg, Lpi, Rpi)
	zeroize.Point(&Lpi)
	zeroize.Point(&Rpi)

	// Step 5: walk the rest of the ring, closing the chain back onto c[signerIndex].
	for j := 1; j < n; j++ {
		i := (signerIndex + j) % n

		ciKi, ok := group.VarMul(c[i], ring[i])
		must(ok, "c_i*K_i")
		riG, ok := group.BaseMul(r[i])
		must(ok, "r_i*G")
		L, ok := group.Add(ciKi, riG)
		must(ok, "L_i")

		ciKimg, ok := group.VarMul(c[i], Kimg)
		must(ok, "c_i*Kimg")
		hpKi := hashToPoint(ring[i])
		riHpKi, ok := group.VarMul(r[i], hpKi)
		must(ok, "r_i*Hp(K_i)")
		R, ok := group.Add(ciKimg, riHpKi)
		must(ok, "R_i")
		zeroize.Point(&hpKi)

		c[(i+1)%n] = hashToScalar(msg, L, R)
		zeroize.Point(&L)
		zeroize.Point(&R)
	}

	// Step 6: close the ring — r[signerIndex] = alpha - c[signerIndex]*signerKey.
	cpiKpi, ok := group.MulScalar(c[signerIndex], signerKey)
	must(ok, "c_pi*k_pi")
	rPi, ok := group.SubScalar(alpha, cpiKpi)
	must(ok, "alpha - c_pi*k_pi")
	zeroize.Scalar(&cpiKpi)
	r[signerIndex] = rPi

	return &Signature{KeyImage: Kimg, C0: c[0], R: r}, nil
}

// must panics if ok is false. Every call site passes inputs this package itself derived and already knows to be
// canonical; a false ok here means a trusted internal invariant broke, not a caller error.
func must(ok bool, step string) {
	if !ok {
		panic("blsag: " + step + " failed on trusted input")
	}
}
