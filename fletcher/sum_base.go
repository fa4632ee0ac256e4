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

import "iter"

// This file holds the portable kernels. The SIMD files (sum_avx2.go,
// sum_avx512.go) implement the same block algorithm with archsimd vectors
// and reuse mergeLanes for the final reduction, so every path produces
// bit-identical sums.

// updateScalar advances the running sums one word at a time. This is the
// ground-truth recurrence every other kernel must match exactly:
//
//	s1' = (s1 + w) mod 2^k
//	s2' = (s2 + s1') mod 2^k
func updateScalar[T Word](s1, s2 T, words []T) (T, T) {
	for _, w := range words {
		s1 += w
		s2 += s1
	}
	return s1, s2
}

// mergeLanes folds per-lane block accumulators into the running sums.
//
// aAcc[j] is the wrapped sum of lane j over all full blocks; bAcc[j] is the
// wrapped running-history sum of aAcc[j] (bAcc += aAcc once per block);
// blocks is the number of full blocks consumed. With L lanes and m =
// blocks*L words, the sequential recurrence gives
//
//	s1' = s1 + Σ aAcc[j]
//	s2' = s2 + m*s1 + L*Σ bAcc[j] - Σ j*aAcc[j]
//
// because word j of block i sits m - (i*L + j) positions from the end and
// therefore contributes that many times to s2. All products wrap mod 2^k,
// which is exactly the truncation T() performs on unsigned types.
func mergeLanes[T Word](s1, s2 T, aAcc, bAcc []T, blocks int) (T, T) {
	lanes := len(aAcc)
	var aSum, bSum T
	for j := 0; j < lanes; j++ {
		aSum += aAcc[j]
		bSum += bAcc[j]
	}

	s2 += T(blocks*lanes) * s1 // entry-state contribution
	s2 += T(lanes) * bSum
	for j := 1; j < lanes; j++ {
		s2 -= T(j) * aAcc[j]
	}
	s1 += aSum
	return s1, s2
}

// updateBlocked is the portable vector kernel: the block algorithm executed
// with scalar instructions. It consumes full blocks of the given lane count
// and routes the remainder through updateScalar.
func updateBlocked[T Word](s1, s2 T, words []T, lanes int) (T, T) {
	if lanes < 2 || len(words) < lanes {
		return updateScalar(s1, s2, words)
	}

	n := len(words) - len(words)%lanes
	aAcc := make([]T, lanes)
	bAcc := make([]T, lanes)
	for i := 0; i < n; i += lanes {
		block := words[i : i+lanes]
		for j, w := range block {
			aAcc[j] += w
			bAcc[j] += aAcc[j]
		}
	}
	s1, s2 = mergeLanes(s1, s2, aAcc, bAcc, n/lanes)

	return updateScalar(s1, s2, words[n:])
}

// updatePortable picks between the blocked and scalar kernels based on the
// memoized dispatch state. It serves as the implementation on targets
// without archsimd kernels and as their fallback branch.
func updatePortable[T Word](s1, s2 T, words []T) (T, T) {
	if currentLevel == DispatchScalar {
		return updateScalar(s1, s2, words)
	}
	return updateBlocked(s1, s2, words, BlockLanes[T]())
}

// seqBufLen is the scratch size for sequence ingestion. A multiple of every
// supported lane count, so full flushes never leave a scalar tail.
const seqBufLen = 512

// updateSeq drains a lazy word sequence through the given slice kernel,
// buffering seqBufLen words at a time. The sequence may be unbounded; memory
// use is constant.
func updateSeq[T Word](s1, s2 T, seq iter.Seq[T], flush func(T, T, []T) (T, T)) (T, T) {
	var buf [seqBufLen]T
	n := 0
	for w := range seq {
		buf[n] = w
		n++
		if n == len(buf) {
			s1, s2 = flush(s1, s2, buf[:])
			n = 0
		}
	}
	if n > 0 {
		s1, s2 = flush(s1, s2, buf[:n])
	}
	return s1, s2
}
