//go:build amd64 && goexperiment.simd

package fletcher

import (
	"math/rand"
	"testing"

	"simd/archsimd"
)

// The archsimd kernels must agree with the scalar recurrence bit-for-bit,
// including from non-zero entry states and across partial tails.

func TestAVX2KernelsMatchScalar(t *testing.T) {
	if !archsimd.X86.AVX2() {
		t.Skip("AVX2 not available")
	}

	rng := rand.New(rand.NewSource(7))
	for _, size := range equivalenceSizes {
		u8 := make([]uint8, size)
		u16 := make([]uint16, size)
		u32 := make([]uint32, size)
		u64 := make([]uint64, size)
		for i := 0; i < size; i++ {
			v := rng.Uint64()
			u8[i] = uint8(v)
			u16[i] = uint16(v)
			u32[i] = uint32(v)
			u64[i] = v
		}

		e1, e2 := rng.Uint64(), rng.Uint64()

		v1, v2 := updateScalar(uint8(e1), uint8(e2), u8)
		if g1, g2 := sumAVX2U8(uint8(e1), uint8(e2), u8); g1 != v1 || g2 != v2 {
			t.Fatalf("u8 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, v1, v2)
		}
		w1, w2 := updateScalar(uint16(e1), uint16(e2), u16)
		if g1, g2 := sumAVX2U16(uint16(e1), uint16(e2), u16); g1 != w1 || g2 != w2 {
			t.Fatalf("u16 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, w1, w2)
		}
		x1, x2 := updateScalar(uint32(e1), uint32(e2), u32)
		if g1, g2 := sumAVX2U32(uint32(e1), uint32(e2), u32); g1 != x1 || g2 != x2 {
			t.Fatalf("u32 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, x1, x2)
		}
		y1, y2 := updateScalar(e1, e2, u64)
		if g1, g2 := sumAVX2U64(e1, e2, u64); g1 != y1 || g2 != y2 {
			t.Fatalf("u64 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, y1, y2)
		}
	}
}

func TestAVX512KernelsMatchScalar(t *testing.T) {
	if !archsimd.X86.AVX512() {
		t.Skip("AVX-512 not available")
	}

	rng := rand.New(rand.NewSource(8))
	for _, size := range equivalenceSizes {
		u8 := make([]uint8, size)
		u16 := make([]uint16, size)
		u32 := make([]uint32, size)
		u64 := make([]uint64, size)
		for i := 0; i < size; i++ {
			v := rng.Uint64()
			u8[i] = uint8(v)
			u16[i] = uint16(v)
			u32[i] = uint32(v)
			u64[i] = v
		}

		e1, e2 := rng.Uint64(), rng.Uint64()

		w1, w2 := updateScalar(uint8(e1), uint8(e2), u8)
		if g1, g2 := sumAVX512U8(uint8(e1), uint8(e2), u8); g1 != w1 || g2 != w2 {
			t.Fatalf("u8 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, w1, w2)
		}
		x1, x2 := updateScalar(uint16(e1), uint16(e2), u16)
		if g1, g2 := sumAVX512U16(uint16(e1), uint16(e2), u16); g1 != x1 || g2 != x2 {
			t.Fatalf("u16 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, x1, x2)
		}
		y1, y2 := updateScalar(uint32(e1), uint32(e2), u32)
		if g1, g2 := sumAVX512U32(uint32(e1), uint32(e2), u32); g1 != y1 || g2 != y2 {
			t.Fatalf("u32 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, y1, y2)
		}
		z1, z2 := updateScalar(e1, e2, u64)
		if g1, g2 := sumAVX512U64(e1, e2, u64); g1 != z1 || g2 != z2 {
			t.Fatalf("u64 size %d: got (%d,%d), want (%d,%d)", size, g1, g2, z1, z2)
		}
	}
}
