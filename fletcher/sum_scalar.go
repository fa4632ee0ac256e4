//go:build !amd64 || !goexperiment.simd

package fletcher

// Without archsimd kernels, every width routes through the portable blocked
// kernel sized by the probed dispatch width.

func updateU8(s1, s2 uint8, words []uint8) (uint8, uint8) {
	return updatePortable(s1, s2, words)
}

func updateU16(s1, s2 uint16, words []uint16) (uint16, uint16) {
	return updatePortable(s1, s2, words)
}

func updateU32(s1, s2 uint32, words []uint32) (uint32, uint32) {
	return updatePortable(s1, s2, words)
}

func updateU64(s1, s2 uint64, words []uint64) (uint64, uint64) {
	return updatePortable(s1, s2, words)
}
