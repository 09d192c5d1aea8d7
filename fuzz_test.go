package blsag_test

import (
	"testing"

	"github.com/blsag-go/blsag"
	"github.com/blsag-go/blsag/internal/testdata"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzVerifyNeverPanics feeds Verify a valid signature with individually fuzzed fields, checking that Verify always
// returns rather than panicking, however malformed the encodings are.
func FuzzVerifyNeverPanics(f *testing.F) {
	drbg := testdata.New("blsag fuzz verify")
	ring, k := drbg.Ring(5, 2)
	msg := blsag.Hash(drbg.Data(32))

	sig, err := blsag.Sign(msg, ring, 2, k)
	if err != nil {
		f.Fatalf("Sign: %v", err)
	}

	for range 10 {
		f.Add(drbg.Data(blsag.Size))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		keyImage := sig.KeyImage
		c0 := sig.C0
		r := append([]blsag.Scalar(nil), sig.R...)

		fieldRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}

		fuzzed, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		const fieldCount = 3 // keyImage, c0, r[0]
		switch field := fieldRaw % fieldCount; field {
		case 0:
			copy(keyImage[:], fuzzed)
		case 1:
			copy(c0[:], fuzzed)
		case 2:
			copy(r[0][:], fuzzed)
		}

		// The call itself is the assertion: Verify must return, never panic, on any bytes.
		_ = blsag.Verify(msg, ring, keyImage, c0, r)
	})
}

// FuzzDecodeSignatureNeverPanics checks that DecodeSignature rejects malformed input with an error, or if it parses,
// that the result never causes Verify to panic.
func FuzzDecodeSignatureNeverPanics(f *testing.F) {
	drbg := testdata.New("blsag fuzz decode")
	ring, k := drbg.Ring(4, 1)
	msg := blsag.Hash(drbg.Data(32))

	sig, err := blsag.Sign(msg, ring, 1, k)
	if err != nil {
		f.Fatalf("Sign: %v", err)
	}
	f.Add(sig.Encode())
	f.Add([]byte{})
	f.Add(drbg.Data(17))

	f.Fuzz(func(t *testing.T, data []byte) {
		decoded, err := blsag.DecodeSignature(data)
		if err != nil {
			return
		}

		if len(decoded.R) > 0 {
			_ = blsag.Verify(msg, ring[:min(len(ring), len(decoded.R))], decoded.KeyImage, decoded.C0, decoded.R[:min(len(ring), len(decoded.R))])
		}
	})
}
