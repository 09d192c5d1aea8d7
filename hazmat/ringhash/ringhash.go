// Package ringhash implements the domain-separated SHA-3 hash operations of the bLSAG construction: the plain
// message digest, and the two preimages that, once mapped onto the ristretto255 group by hazmat/group, produce the
// construction's hash-to-point and hash-to-scalar values.
//
// Handle with care: the domain tags and transcript layouts here are part of the wire contract (spec.md §4, §9 in the
// design notes this package was built from) and must not change byte order or length.
package ringhash

import "crypto/sha3"

const (
	// kimgDomain tags the key-image hash-to-point transcript.
	kimgDomain = "keyimg"
	// roundDomain tags the per-round hash-to-scalar transcript.
	roundDomain = "blsag"
)

// HashMessage returns the SHA3-256 digest of data. It carries no domain tag — external callers use it to prepare the
// msg argument to Sign and Verify.
func HashMessage(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// PointPreimage returns the SHA3-512 digest of "keyimg" || k, the 64-byte input to group.PointFromUniformBytes when
// deriving Hp(K) for the ring member encoded by k.
func PointPreimage(k [32]byte) [64]byte {
	var transcript [len(kimgDomain) + 32]byte
	n := copy(transcript[:], kimgDomain)
	copy(transcript[n:], k[:])

	digest := sha3.Sum512(transcript[:])
	clear(transcript[:])
	return digest
}

// ScalarPreimage returns the SHA3-512 digest of "blsag" || msg || l || r, the 64-byte input to
// group.ScalarFromUniformBytes when deriving the next challenge in the chain.
func ScalarPreimage(msg, l, r [32]byte) [64]byte {
	var transcript [len(roundDomain) + 32 + 32 + 32]byte
	n := copy(transcript[:], roundDomain)
	n += copy(transcript[n:], msg[:])
	n += copy(transcript[n:], l[:])
	copy(transcript[n:], r[:])

	digest := sha3.Sum512(transcript[:])
	clear(transcript[:])
	return digest
}
