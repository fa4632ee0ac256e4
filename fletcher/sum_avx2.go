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

//go:build amd64 && goexperiment.simd

package fletcher

import "simd/archsimd"

// AVX2 block kernels (256-bit registers). Each maintains the two lane
// accumulators across all full blocks, reduces them through mergeLanes, and
// hands the tail to the scalar kernel. Integer Add wraps mod 2^k, which is
// exactly the checksum's modulus, so no masking or saturation is needed.

// sumAVX2U8 processes uint8 words 32 lanes at a time.
func sumAVX2U8(s1, s2 uint8, words []uint8) (uint8, uint8) {
	n := len(words) - len(words)%32
	aAcc := archsimd.BroadcastUint8x32(0)
	bAcc := archsimd.BroadcastUint8x32(0)

	for i := 0; i+32 <= n; i += 32 {
		v := archsimd.LoadUint8x32Slice(words[i:])
		aAcc = aAcc.Add(v)
		bAcc = bAcc.Add(aAcc)
	}

	var at, bt [32]uint8
	aAcc.StoreSlice(at[:])
	bAcc.StoreSlice(bt[:])
	s1, s2 = mergeLanes(s1, s2, at[:], bt[:], n/32)

	return updateScalar(s1, s2, words[n:])
}

// sumAVX2U16 processes uint16 words 16 lanes at a time.
func sumAVX2U16(s1, s2 uint16, words []uint16) (uint16, uint16) {
	n := len(words) - len(words)%16
	aAcc := archsimd.BroadcastUint16x16(0)
	bAcc := archsimd.BroadcastUint16x16(0)

	for i := 0; i+16 <= n; i += 16 {
		v := archsimd.LoadUint16x16Slice(words[i:])
		aAcc = aAcc.Add(v)
		bAcc = bAcc.Add(aAcc)
	}

	var at, bt [16]uint16
	aAcc.StoreSlice(at[:])
	bAcc.StoreSlice(bt[:])
	s1, s2 = mergeLanes(s1, s2, at[:], bt[:], n/16)

	return updateScalar(s1, s2, words[n:])
}

// sumAVX2U32 processes uint32 words 8 lanes at a time.
func sumAVX2U32(s1, s2 uint32, words []uint32) (uint32, uint32) {
	n := len(words) - len(words)%8
	aAcc := archsimd.BroadcastUint32x8(0)
	bAcc := archsimd.BroadcastUint32x8(0)

	for i := 0; i+8 <= n; i += 8 {
		v := archsimd.LoadUint32x8Slice(words[i:])
		aAcc = aAcc.Add(v)
		bAcc = bAcc.Add(aAcc)
	}

	var at, bt [8]uint32
	aAcc.StoreSlice(at[:])
	bAcc.StoreSlice(bt[:])
	s1, s2 = mergeLanes(s1, s2, at[:], bt[:], n/8)

	return updateScalar(s1, s2, words[n:])
}

// sumAVX2U64 processes uint64 words 4 lanes at a time.
func sumAVX2U64(s1, s2 uint64, words []uint64) (uint64, uint64) {
	n := len(words) - len(words)%4
	aAcc := archsimd.BroadcastUint64x4(0)
	bAcc := archsimd.BroadcastUint64x4(0)

	for i := 0; i+4 <= n; i += 4 {
		v := archsimd.LoadUint64x4Slice(words[i:])
		aAcc = aAcc.Add(v)
		bAcc = bAcc.Add(aAcc)
	}

	var at, bt [4]uint64
	aAcc.StoreSlice(at[:])
	bAcc.StoreSlice(bt[:])
	s1, s2 = mergeLanes(s1, s2, at[:], bt[:], n/4)

	return updateScalar(s1, s2, words[n:])
}
