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

// Package fletcher computes Fletcher-style two-sum checksums over streams of
// fixed-width unsigned words, with SIMD acceleration where available.
//
// # Variants
//
// Four variants are provided, named by the width of the checksum they
// produce. Each consumes words of half the output width:
//
//   - Fletcher16:  uint8 words,  uint16 checksum
//   - Fletcher32:  uint16 words, uint32 checksum
//   - Fletcher64:  uint32 words, uint64 checksum
//   - Fletcher128: uint64 words, Sum128 checksum
//
// The running sums are reduced modulo 2^k (k = word bit width) using plain
// wrapping arithmetic, not the classical Fletcher modulus 2^k - 1. The
// power-of-two modulus is what makes the vectorized update legal: addition
// mod 2^k is associative and commutative under wrapping overflow, so blocks
// of words can be accumulated lane-parallel and merged without changing the
// result. Checksums produced here are NOT interchangeable with mod 2^k - 1
// implementations.
//
// # Input contract
//
// The package consumes already-decoded unsigned words. Byte-order conversion
// is the caller's responsibility and is semantically significant:
//
//	f := fletcher.New128()
//	for chunk := range slices.Chunk(data, 8) {
//	    f.Update(binary.LittleEndian.Uint64(chunk))
//	}
//	sum := f.Value()
//
// # Dispatch
//
// The fastest usable kernel is selected once per process at init time:
// AVX-512 or AVX2 (with GOEXPERIMENT=simd on amd64), otherwise a portable
// blocked kernel sized to the probed vector width, otherwise plain scalar
// code. All kernels are bit-for-bit equivalent; selection only affects
// throughput. Setting the FLETCHER_NO_SIMD environment variable forces the
// scalar path.
//
// Accumulators are plain values with no internal locking. Each instance must
// be owned by a single goroutine; independent instances may be used
// concurrently without synchronization.
package fletcher
