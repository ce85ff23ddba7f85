package rs

import (
	"fmt"
	"testing"

	hashiShamir "github.com/hashicorp/vault/shamir"

	"github.com/rizkytaufiq/rscore/field"
)

var benchmarkSizes = []int{32, 256, 1024, 4096, 16384, 65536}

// BenchmarkEncodeVsHashicorpSplit compares this package's table-field
// Vandermonde codec against hashicorp/vault's shamir.Split for
// similarly-shaped workloads: both turn one input buffer into several
// output buffers any k of which recover it. The two aren't solving
// identical problems (a systematic RS stripe vs. a polynomial evaluated
// per output share) but the throughput comparison is still informative
// for picking a field implementation.
func BenchmarkEncodeVsHashicorpSplit(b *testing.B) {
	enc := Encoding{K: 5, M: 3}
	codec, err := NewCodec(enc, field.NewTable(), Vandermonde)
	if err != nil {
		b.Fatal(err)
	}

	for _, size := range benchmarkSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i % 256)
		}

		b.Run(fmt.Sprintf("rscore_%dB", size), func(b *testing.B) {
			b.ResetTimer()
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = codec.Encode(data)
			}
		})

		b.Run(fmt.Sprintf("hashicorp_%dB", size), func(b *testing.B) {
			b.ResetTimer()
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				if _, err := hashiShamir.Split(data, 8, 5); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecodeVsHashicorpCombine(b *testing.B) {
	enc := Encoding{K: 5, M: 3}
	codec, err := NewCodec(enc, field.NewTable(), Vandermonde)
	if err != nil {
		b.Fatal(err)
	}

	for _, size := range benchmarkSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i % 256)
		}
		coded := codec.Encode(data)
		coded.Valid = []bool{true, true, true, true, true, false, false, false}

		hashiShares, err := hashiShamir.Split(data, 8, 5)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("rscore_%dB", size), func(b *testing.B) {
			b.ResetTimer()
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				if _, err := codec.Decode(coded); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("hashicorp_%dB", size), func(b *testing.B) {
			b.ResetTimer()
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				if _, err := hashiShamir.Combine(hashiShares[:5]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFieldMul compares the three Field implementations' Mul cost
// in isolation, the way the teacher's BenchmarkGFOperations isolated
// gfMult from Split/Combine overhead.
func BenchmarkFieldMul(b *testing.B) {
	variants := map[string]field.Field{
		"Direct": field.NewDirect(),
		"ExpLog": field.NewExpLog(),
		"Table":  field.NewTable(),
	}
	for name, f := range variants {
		b.Run(name, func(b *testing.B) {
			var x byte = 1
			for i := 0; i < b.N; i++ {
				x = f.Mul(x, byte(i))
			}
		})
	}
}
