package demo

import "testing"

// The two shapes hold identical data; only the field order differs. Ordered
// packs into 8 bytes, Disordered needs 12, and the extra padding shows up as
// allocation volume and cache misses when slices get large.

var sinkOrdered Ordered
var sinkDisordered Disordered

func fillOrdered(n int) {
	s := make([]Ordered, n)
	for i := range s {
		s[i] = Ordered{A: int8(i), B: int16(i), C: int32(i)}
	}
	sinkOrdered = s[n-1]
}

func fillDisordered(n int) {
	s := make([]Disordered, n)
	for i := range s {
		s[i] = Disordered{A: int8(i), B: int32(i), C: int16(i)}
	}
	sinkDisordered = s[n-1]
}

func BenchmarkFillOrdered(b *testing.B) {
	for b.Loop() {
		fillOrdered(10000)
	}
}

func BenchmarkFillDisordered(b *testing.B) {
	for b.Loop() {
		fillDisordered(10000)
	}
}
