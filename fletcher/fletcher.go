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

// state carries the two running sums shared by all variants. Word width k
// fixes the modulus 2^k; unsigned wraparound keeps both sums in [0, 2^k)
// without explicit reduction.
type state[T Word] struct {
	s1, s2 T
}

// Update folds one word into the checksum.
func (s *state[T]) Update(w T) {
	s.s1 += w
	s.s2 += s.s1
}

// Sums returns the two running sums. Pure; safe to call mid-stream.
func (s *state[T]) Sums() (s1, s2 T) {
	return s.s1, s.s2
}

// Reset returns the accumulator to the zero state.
func (s *state[T]) Reset() {
	s.s1, s.s2 = 0, 0
}

// Fletcher16 computes the 16-bit checksum over uint8 words.
type Fletcher16 struct {
	state[uint8]
}

// New16 returns a zero-initialized 16-bit checksum accumulator.
func New16() *Fletcher16 {
	return &Fletcher16{}
}

// New16WithSums returns an accumulator resumed from known running sums.
// s1 occupies the low byte of the checksum, s2 the high byte.
func New16WithSums(s1, s2 uint8) *Fletcher16 {
	f := &Fletcher16{}
	f.s1, f.s2 = s1, s2
	return f
}

// UpdateSlice folds a slice of words into the checksum. Full vector blocks
// go through the selected kernel; the remainder is handled by the scalar
// recurrence. The result is identical to calling Update per word.
func (f *Fletcher16) UpdateSlice(words []uint8) {
	f.s1, f.s2 = updateU8(f.s1, f.s2, words)
}

// UpdateSeq folds a lazy, possibly unbounded word sequence into the
// checksum using constant memory. Equivalent to UpdateSlice over the
// collected words.
func (f *Fletcher16) UpdateSeq(seq iter.Seq[uint8]) {
	f.s1, f.s2 = updateSeq(f.s1, f.s2, seq, updateU8)
}

// Value returns the checksum so far: (s2 << 8) | s1. Pure and idempotent.
func (f *Fletcher16) Value() uint16 {
	return uint16(f.s2)<<8 | uint16(f.s1)
}

// Fletcher32 computes the 32-bit checksum over uint16 words.
type Fletcher32 struct {
	state[uint16]
}

// New32 returns a zero-initialized 32-bit checksum accumulator.
func New32() *Fletcher32 {
	return &Fletcher32{}
}

// New32WithSums returns an accumulator resumed from known running sums.
func New32WithSums(s1, s2 uint16) *Fletcher32 {
	f := &Fletcher32{}
	f.s1, f.s2 = s1, s2
	return f
}

// UpdateSlice folds a slice of words into the checksum. Full vector blocks
// go through the selected kernel; the remainder is handled by the scalar
// recurrence.
func (f *Fletcher32) UpdateSlice(words []uint16) {
	f.s1, f.s2 = updateU16(f.s1, f.s2, words)
}

// UpdateSeq folds a lazy, possibly unbounded word sequence into the
// checksum using constant memory.
func (f *Fletcher32) UpdateSeq(seq iter.Seq[uint16]) {
	f.s1, f.s2 = updateSeq(f.s1, f.s2, seq, updateU16)
}

// Value returns the checksum so far: (s2 << 16) | s1. Pure and idempotent.
func (f *Fletcher32) Value() uint32 {
	return uint32(f.s2)<<16 | uint32(f.s1)
}

// Fletcher64 computes the 64-bit checksum over uint32 words.
type Fletcher64 struct {
	state[uint32]
}

// New64 returns a zero-initialized 64-bit checksum accumulator.
func New64() *Fletcher64 {
	return &Fletcher64{}
}

// New64WithSums returns an accumulator resumed from known running sums.
func New64WithSums(s1, s2 uint32) *Fletcher64 {
	f := &Fletcher64{}
	f.s1, f.s2 = s1, s2
	return f
}

// UpdateSlice folds a slice of words into the checksum. Full vector blocks
// go through the selected kernel; the remainder is handled by the scalar
// recurrence.
func (f *Fletcher64) UpdateSlice(words []uint32) {
	f.s1, f.s2 = updateU32(f.s1, f.s2, words)
}

// UpdateSeq folds a lazy, possibly unbounded word sequence into the
// checksum using constant memory.
func (f *Fletcher64) UpdateSeq(seq iter.Seq[uint32]) {
	f.s1, f.s2 = updateSeq(f.s1, f.s2, seq, updateU32)
}

// Value returns the checksum so far: (s2 << 32) | s1. Pure and idempotent.
func (f *Fletcher64) Value() uint64 {
	return uint64(f.s2)<<32 | uint64(f.s1)
}

// Fletcher128 computes the 128-bit checksum over uint64 words.
type Fletcher128 struct {
	state[uint64]
}

// New128 returns a zero-initialized 128-bit checksum accumulator.
func New128() *Fletcher128 {
	return &Fletcher128{}
}

// New128WithSums returns an accumulator resumed from known running sums.
func New128WithSums(s1, s2 uint64) *Fletcher128 {
	f := &Fletcher128{}
	f.s1, f.s2 = s1, s2
	return f
}

// UpdateSlice folds a slice of words into the checksum. Full vector blocks
// go through the selected kernel; the remainder is handled by the scalar
// recurrence.
func (f *Fletcher128) UpdateSlice(words []uint64) {
	f.s1, f.s2 = updateU64(f.s1, f.s2, words)
}

// UpdateSeq folds a lazy, possibly unbounded word sequence into the
// checksum using constant memory.
func (f *Fletcher128) UpdateSeq(seq iter.Seq[uint64]) {
	f.s1, f.s2 = updateSeq(f.s1, f.s2, seq, updateU64)
}

// Value returns the checksum so far, with s2 in the high 64 bits and s1 in
// the low 64 bits. Pure and idempotent.
func (f *Fletcher128) Value() Sum128 {
	return Sum128{Hi: f.s2, Lo: f.s1}
}

// Checksum16 returns the 16-bit checksum of words in one call.
func Checksum16(words []uint8) uint16 {
	f := New16()
	f.UpdateSlice(words)
	return f.Value()
}

// Checksum32 returns the 32-bit checksum of words in one call.
func Checksum32(words []uint16) uint32 {
	f := New32()
	f.UpdateSlice(words)
	return f.Value()
}

// Checksum64 returns the 64-bit checksum of words in one call.
func Checksum64(words []uint32) uint64 {
	f := New64()
	f.UpdateSlice(words)
	return f.Value()
}

// Checksum128 returns the 128-bit checksum of words in one call.
func Checksum128(words []uint64) Sum128 {
	f := New128()
	f.UpdateSlice(words)
	return f.Value()
}
