//go:build amd64 && !goexperiment.simd

package fletcher

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled. The typed archsimd
// kernels are unavailable here, but the probe still sizes the portable
// blocked kernel to the widest vector registers the CPU has.

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte blocks even in scalar mode for consistency
	currentName = "scalar"
}
