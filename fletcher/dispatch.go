// Copyright 2026 go-fletcher Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fletcher

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the kernel family selected for this process.
type DispatchLevel int

const (
	// DispatchScalar indicates the plain one-word-at-a-time recurrence.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit blocks (x86-64 baseline width).
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit blocks.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit blocks.
	DispatchAVX512

	// DispatchNEON indicates 128-bit blocks on ARM.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the kernel family probed for this process.
// Set exactly once, by init() in dispatch_*.go, and read-only afterwards:
// a checksum computation never switches kernels mid-stream.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
// Set by init() in dispatch_*.go.
var currentWidth int

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go.
var currentName string

// CurrentLevel returns the kernel family selected at process start.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes behind the
// current dispatch level. For example: 16 for SSE2/NEON, 32 for AVX2,
// 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current dispatch level,
// for example "avx2" or "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the FLETCHER_NO_SIMD environment variable is set.
// When set, the scalar kernel is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("FLETCHER_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// BlockLanes returns the number of words of type T processed per block by
// the vector kernel at the current dispatch width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - uint8: 32 lanes
//   - uint64: 4 lanes
func BlockLanes[T Word]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
