//go:build amd64 && goexperiment.simd

package fletcher

// Routing for the archsimd kernels. The dispatch level is probed once at
// init and memoized, so a computation sees a single kernel for its whole
// lifetime.

func updateU8(s1, s2 uint8, words []uint8) (uint8, uint8) {
	switch currentLevel {
	case DispatchAVX512:
		return sumAVX512U8(s1, s2, words)
	case DispatchAVX2:
		return sumAVX2U8(s1, s2, words)
	default:
		return updatePortable(s1, s2, words)
	}
}

func updateU16(s1, s2 uint16, words []uint16) (uint16, uint16) {
	switch currentLevel {
	case DispatchAVX512:
		return sumAVX512U16(s1, s2, words)
	case DispatchAVX2:
		return sumAVX2U16(s1, s2, words)
	default:
		return updatePortable(s1, s2, words)
	}
}

func updateU32(s1, s2 uint32, words []uint32) (uint32, uint32) {
	switch currentLevel {
	case DispatchAVX512:
		return sumAVX512U32(s1, s2, words)
	case DispatchAVX2:
		return sumAVX2U32(s1, s2, words)
	default:
		return updatePortable(s1, s2, words)
	}
}

func updateU64(s1, s2 uint64, words []uint64) (uint64, uint64) {
	switch currentLevel {
	case DispatchAVX512:
		return sumAVX512U64(s1, s2, words)
	case DispatchAVX2:
		return sumAVX2U64(s1, s2, words)
	default:
		return updatePortable(s1, s2, words)
	}
}
