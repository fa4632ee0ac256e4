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
	"math/rand"
	"slices"
	"testing"
)

var equivalenceLanes = []int{2, 3, 4, 8, 16, 32, 64}

var equivalenceSizes = []int{0, 1, 2, 3, 7, 8, 15, 16, 63, 64, 65, 100, 1000, 4097}

// testKernelEquivalence checks that the blocked kernel reproduces the scalar
// recurrence bit-for-bit for random inputs and random entry states, at every
// lane count. The random entry state matters: it exercises the
// blocks*lanes*s1 term of the merge.
func testKernelEquivalence[T Word](t *testing.T, rng *rand.Rand) {
	for _, lanes := range equivalenceLanes {
		for _, size := range equivalenceSizes {
			words := make([]T, size)
			for i := range words {
				words[i] = T(rng.Uint64())
			}
			s1 := T(rng.Uint64())
			s2 := T(rng.Uint64())

			wantS1, wantS2 := updateScalar(s1, s2, words)
			gotS1, gotS2 := updateBlocked(s1, s2, words, lanes)

			if gotS1 != wantS1 || gotS2 != wantS2 {
				t.Fatalf("lanes=%d size=%d entry=(%v,%v): blocked=(%v,%v), scalar=(%v,%v)",
					lanes, size, s1, s2, gotS1, gotS2, wantS1, wantS2)
			}
		}
	}
}

func TestKernelEquivalenceU8(t *testing.T) {
	testKernelEquivalence[uint8](t, rand.New(rand.NewSource(1)))
}

func TestKernelEquivalenceU16(t *testing.T) {
	testKernelEquivalence[uint16](t, rand.New(rand.NewSource(2)))
}

func TestKernelEquivalenceU32(t *testing.T) {
	testKernelEquivalence[uint32](t, rand.New(rand.NewSource(3)))
}

func TestKernelEquivalenceU64(t *testing.T) {
	testKernelEquivalence[uint64](t, rand.New(rand.NewSource(4)))
}

func TestMergeLanesEntryState(t *testing.T) {
	// Minimal reproducer for the entry-state term: one block of two lanes
	// starting from s1 != 0.
	words := []uint8{10, 20}
	wantS1, wantS2 := updateScalar(uint8(5), uint8(7), words)
	gotS1, gotS2 := updateBlocked(uint8(5), uint8(7), words, 2)
	if gotS1 != wantS1 || gotS2 != wantS2 {
		t.Fatalf("blocked=(%d,%d), scalar=(%d,%d)", gotS1, gotS2, wantS1, wantS2)
	}
}

func TestBatchSizeIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	words := make([]uint32, 2000)
	for i := range words {
		words[i] = rng.Uint32()
	}

	want := Checksum64(words)

	// One word at a time.
	f := New64()
	for _, w := range words {
		f.Update(w)
	}
	if f.Value() != want {
		t.Fatalf("word-by-word: got %#x, want %#x", f.Value(), want)
	}

	// Random consecutive partitions.
	for trial := 0; trial < 20; trial++ {
		f := New64()
		rest := words
		for len(rest) > 0 {
			n := rng.Intn(len(rest) + 1)
			f.UpdateSlice(rest[:n])
			rest = rest[n:]
			// Occasionally interleave single-word updates.
			if len(rest) > 0 && rng.Intn(4) == 0 {
				f.Update(rest[0])
				rest = rest[1:]
			}
		}
		if f.Value() != want {
			t.Fatalf("trial %d: got %#x, want %#x", trial, f.Value(), want)
		}
	}
}

func TestUpdateSeqMatchesSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	// Sizes around the internal flush boundary.
	for _, size := range []int{0, 1, 100, seqBufLen - 1, seqBufLen, seqBufLen + 1, 3 * seqBufLen, 2000} {
		words := make([]uint64, size)
		for i := range words {
			words[i] = rng.Uint64()
		}

		f := New128()
		f.UpdateSeq(slices.Values(words))
		if got, want := f.Value(), Checksum128(words); got != want {
			t.Fatalf("size %d: seq %v, slice %v", size, got, want)
		}
	}
}

func TestWraparound(t *testing.T) {
	// Feed 0xFF repeatedly and compare against the modular closed form:
	// after n words, s1 = 255n mod 256 and s2 = 255*n*(n+1)/2 mod 256.
	f := New16()
	for n := 1; n <= 1000; n++ {
		f.Update(0xFF)
		s1, s2 := f.Sums()
		wantS1 := uint8(255 * n % 256)
		wantS2 := uint8(255 * (n * (n + 1) / 2) % 256)
		if s1 != wantS1 || s2 != wantS2 {
			t.Fatalf("n=%d: sums=(%d,%d), want (%d,%d)", n, s1, s2, wantS1, wantS2)
		}
	}

	// Maximum words must wrap, not saturate.
	g := New128()
	g.Update(^uint64(0))
	g.Update(1)
	s1, s2 := g.Sums()
	if s1 != 0 {
		t.Fatalf("s1 = %#x, want 0", s1)
	}
	if s2 != ^uint64(0) {
		t.Fatalf("s2 = %#x, want %#x", s2, ^uint64(0))
	}
}

func TestEmptyUpdates(t *testing.T) {
	f := New32()
	f.UpdateSlice(nil)
	f.UpdateSlice([]uint16{})
	f.UpdateSeq(slices.Values([]uint16(nil)))
	if f.Value() != 0 {
		t.Fatalf("empty updates changed state: %#x", f.Value())
	}
}
