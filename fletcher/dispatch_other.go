//go:build !amd64 && !arm64

package fletcher

func init() {
	// Other architectures fall back to scalar-mode block sizing for now.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support

	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte blocks even in scalar mode for consistency
	currentName = "scalar"
}
