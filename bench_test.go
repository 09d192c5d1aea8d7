package blsag_test

import (
	"crypto/sha3"
	"strconv"
	"testing"

	"github.com/blsag-go/blsag"
	"github.com/blsag-go/blsag/internal/testdata"
)

var ringSizes = []int{1, 2, 8, 32, 128}

func BenchmarkSign(b *testing.B) {
	drbg := testdata.New("blsag bench sign")
	msg := blsag.Hash(drbg.Data(32))

	for _, n := range ringSizes {
		b.Run(ringSizeName(n), func(b *testing.B) {
			ring, k := drbg.Ring(n, n/2)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := blsag.Sign(msg, ring, n/2, k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	drbg := testdata.New("blsag bench verify")
	msg := blsag.Hash(drbg.Data(32))

	for _, n := range ringSizes {
		b.Run(ringSizeName(n), func(b *testing.B) {
			ring, k := drbg.Ring(n, n/2)
			sig, err := blsag.Sign(msg, ring, n/2, k)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				if !blsag.Verify(msg, ring, sig.KeyImage, sig.C0, sig.R) {
					b.Fatal("valid signature rejected")
				}
			}
		})
	}
}

func BenchmarkHashMessage(b *testing.B) {
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			data := make([]byte, size.N)
			b.SetBytes(int64(size.N))
			b.ReportAllocs()
			for b.Loop() {
				sha3.Sum256(data)
			}
		})
	}
}

func ringSizeName(n int) string {
	return strconv.Itoa(n)
}
