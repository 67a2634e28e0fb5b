package bitset

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	bbbitset "github.com/bits-and-blooms/bitset"
)

// Comparative benchmarks: fixed-capacity BitSet vs bits-and-blooms vs
// Roaring Bitmap.
// Run with: go test -bench=Comparison -benchmem ./bitset/

const benchBits = 100000

// ==============================================================================
// Set comparison
// ==============================================================================

func BenchmarkComparison_Set_BitSet(b *testing.B) {
	set := Of[uint64](benchBits)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		set.ClearAll()
		for pos := uint(0); pos < 10000; pos++ {
			set.Set(pos * 7 % benchBits)
		}
	}
}

func BenchmarkComparison_Set_BitsAndBlooms(b *testing.B) {
	set := bbbitset.New(benchBits)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		set.ClearAll()
		for pos := uint(0); pos < 10000; pos++ {
			set.Set(pos * 7 % benchBits)
		}
	}
}

func BenchmarkComparison_Set_Roaring(b *testing.B) {
	rb := roaring.New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Clear()
		for pos := uint32(0); pos < 10000; pos++ {
			rb.Add(pos * 7 % benchBits)
		}
	}
}

// ==============================================================================
// Membership comparison
// ==============================================================================

func BenchmarkComparison_Test_BitSet(b *testing.B) {
	set := Of[uint64](benchBits)
	for pos := uint(0); pos < benchBits; pos += 3 {
		set.Set(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	var hits int
	for i := 0; i < b.N; i++ {
		if set.Test(uint(i) % benchBits) {
			hits++
		}
	}
	_ = hits
}

func BenchmarkComparison_Test_BitsAndBlooms(b *testing.B) {
	set := bbbitset.New(benchBits)
	for pos := uint(0); pos < benchBits; pos += 3 {
		set.Set(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	var hits int
	for i := 0; i < b.N; i++ {
		if set.Test(uint(i) % benchBits) {
			hits++
		}
	}
	_ = hits
}

func BenchmarkComparison_Test_Roaring(b *testing.B) {
	rb := roaring.New()
	for pos := uint32(0); pos < benchBits; pos += 3 {
		rb.Add(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	var hits int
	for i := 0; i < b.N; i++ {
		if rb.Contains(uint32(i) % benchBits) {
			hits++
		}
	}
	_ = hits
}

// ==============================================================================
// Count / cardinality comparison
// ==============================================================================

func BenchmarkComparison_Count_BitSet(b *testing.B) {
	set := Of[uint64](benchBits)
	for pos := uint(0); pos < benchBits; pos += 2 {
		set.Set(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	var total int
	for i := 0; i < b.N; i++ {
		total += set.Count()
	}
	_ = total
}

func BenchmarkComparison_Count_BitsAndBlooms(b *testing.B) {
	set := bbbitset.New(benchBits)
	for pos := uint(0); pos < benchBits; pos += 2 {
		set.Set(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	var total uint
	for i := 0; i < b.N; i++ {
		total += set.Count()
	}
	_ = total
}

func BenchmarkComparison_Count_Roaring(b *testing.B) {
	rb := roaring.New()
	for pos := uint32(0); pos < benchBits; pos += 2 {
		rb.Add(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	var total uint64
	for i := 0; i < b.N; i++ {
		total += rb.GetCardinality()
	}
	_ = total
}

// ==============================================================================
// AND operation comparison
// ==============================================================================

func BenchmarkComparison_And_BitSet(b *testing.B) {
	x := Of[uint64](benchBits)
	y := Of[uint64](benchBits)
	for pos := uint(0); pos < benchBits; pos += 2 {
		x.Set(pos)
	}
	for pos := uint(0); pos < benchBits; pos += 3 {
		y.Set(pos)
	}
	scratch := Of[uint64](benchBits)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		scratch.CopyFrom(x)
		scratch.And(y)
	}
}

func BenchmarkComparison_And_BitsAndBlooms(b *testing.B) {
	x := bbbitset.New(benchBits)
	y := bbbitset.New(benchBits)
	for pos := uint(0); pos < benchBits; pos += 2 {
		x.Set(pos)
	}
	for pos := uint(0); pos < benchBits; pos += 3 {
		y.Set(pos)
	}
	scratch := x.Clone()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x.Copy(scratch)
		scratch.InPlaceIntersection(y)
	}
}

func BenchmarkComparison_And_Roaring(b *testing.B) {
	x := roaring.New()
	y := roaring.New()
	for pos := uint32(0); pos < benchBits; pos += 2 {
		x.Add(pos)
	}
	for pos := uint32(0); pos < benchBits; pos += 3 {
		y.Add(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		scratch := x.Clone()
		scratch.And(y)
	}
}

// ==============================================================================
// Set-bit iteration comparison
// ==============================================================================

func BenchmarkComparison_Iterate_BitSet(b *testing.B) {
	set := Of[uint64](benchBits)
	for pos := uint(0); pos < benchBits; pos += 17 {
		set.Set(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var visited int
		for pos := set.FindFirst(true); pos != NotFound; pos = set.FindNext(true, pos+1) {
			visited++
		}
		_ = visited
	}
}

func BenchmarkComparison_Iterate_BitsAndBlooms(b *testing.B) {
	set := bbbitset.New(benchBits)
	for pos := uint(0); pos < benchBits; pos += 17 {
		set.Set(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var visited int
		for pos, ok := set.NextSet(0); ok; pos, ok = set.NextSet(pos + 1) {
			visited++
		}
		_ = visited
	}
}

func BenchmarkComparison_Iterate_Roaring(b *testing.B) {
	rb := roaring.New()
	for pos := uint32(0); pos < benchBits; pos += 17 {
		rb.Add(pos)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var visited int
		it := rb.Iterator()
		for it.HasNext() {
			it.Next()
			visited++
		}
		_ = visited
	}
}
