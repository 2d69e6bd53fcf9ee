/*
Copyright 2011-2025 The msufsort-go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package transform implements the improved two-stage suffix sort: a
// parallel multikey-quicksort of the B* suffixes with tandem-repeat
// acceleration, followed by two linear induce passes that derive the
// order of every remaining suffix.
package transform

import (
	"errors"

	"github.com/dsnet/golib/errs"

	"github.com/maniscalco/msufsort-go/internal/pool"
)

// errSingleSentinel backs an internal invariant: exactly one row of a
// completed suffix array holds offset 0. A second hit, or none at all,
// means a bug earlier in the pipeline corrupted the array rather than
// a caller passing bad input, so it is asserted rather than returned.
var errSingleSentinel = errors.New("transform: suffix array does not have exactly one sentinel row")

// Suffix-index flag layout. A suffix index is a signed 32-bit value
// whose low 30 bits carry a byte offset; the top two bits carry
// transient, field-dependent flags. SA and ISA give those two bits
// different meanings, so they get distinct accessor sets rather than
// a single shared bit-trick helper.
const (
	offsetBits = 30
	offsetMask = int32(1)<<offsetBits - 1

	precedingIsABit       = uint32(1) << 31 // SA: suffix at index-1 is type A
	tandemRepeatLengthBit = uint32(1) << 31 // ISA: low bits are a repeat period, not a position
	bStarBit              = uint32(1) << 30 // ISA: position is a B* suffix

	// emptySlot marks an SA slot that has been reserved by the bucket
	// layout but not yet filled: the A-region head of a byte bucket
	// before the left-to-right induce pass reaches it, and the
	// non-B* tail of a digram's B region before the right-to-left
	// induce pass reaches it. The source reuses the PRECEDING_IS_A
	// bit pattern applied to offset 0 for this (§3's UNSORTED_B), an
	// overload that works there because position 0 is only ever
	// written once the forward sweep has genuinely reached it. We use
	// a dedicated value outside the range any encoded offset or flag
	// combination can take instead, which keeps the empty/real
	// distinction a plain comparison rather than a positional
	// invariant.
	emptySlot = int32(-1)
	unsortedB = emptySlot
)

func withPrecedingA(offset int32) int32 { return int32(uint32(offset) | precedingIsABit) }
func clearPrecedingA(v int32) int32     { return int32(uint32(v) &^ precedingIsABit) }
func hasPrecedingA(v int32) bool        { return uint32(v)&precedingIsABit != 0 }
func suffixOffset(v int32) int32        { return v & offsetMask }

func makeTandemLength(period int32) int32 { return int32(uint32(period) | tandemRepeatLengthBit) }
func isTandemLength(v int32) bool         { return uint32(v)&tandemRepeatLengthBit != 0 }
func tandemLength(v int32) int32          { return v & offsetMask }
func withBStar(v int32) int32             { return int32(uint32(v) | bStarBit) }
func isBStarFlag(v int32) bool            { return uint32(v)&bStarBit != 0 }

// insertionSortThreshold bounds the multikey-quicksort base case (§4.5).
const insertionSortThreshold = 16

// tandemRepeatWordThreshold is the minimum common-prefix depth (in
// bytes) before the tandem-repeat shortcut is worth checking: one
// digram plus two 8-byte words of context (§4.5).
const tandemRepeatWordThreshold = 2 + 16

// maxInputLength is the exclusive upper bound on input length: every
// offset up to and including len(input) must fit the 30-bit offset
// field, so the longest accepted input is maxInputLength-1 bytes.
const maxInputLength = 1 << 30

// MaxInputLength is maxInputLength, exported so the package-root
// boundary can validate input size without duplicating the constant.
const MaxInputLength = maxInputLength

// MSufSort holds the working state of one suffix-array or BWT build:
// the input being sorted, the shared SA/ISA backing array, and the
// per-digram bucket tables that every phase reads or writes.
type MSufSort struct {
	input []byte
	n     int
	words *wordReader

	// sa is the single backing array for both the suffix array and,
	// during stage one, the inverse suffix array aliased over its
	// upper half (§3 "Aliased SA/ISA storage").
	sa      []int32
	isaBase int

	// typeA[i] is true iff suffix i is type A (§3). Computed once by
	// classifyTypes and consulted by every later phase.
	typeA []bool

	// aCount/bCount hold the total A and B suffix counts per leading
	// byte; bCountDigram/bStarCount hold B and B* counts per leading
	// digram.
	aCount       [256]int32
	bCount       [256]int32
	bCountDigram [65536]int32
	bStarCount   [65536]int32

	// frontBucketOffset/backBucketOffset are write cursors into the
	// head/tail of each bucket, consumed by the induce passes.
	frontBucketOffset [256]int32
	backBucketOffset  [65536]int32

	// digramStart[d] is the SA index where digram d's B region begins
	// (its B* entries come first, then its non-B* B entries).
	digramStart [65536]int32
	// bucketStart[c] is the SA index where byte bucket c begins (its
	// A region comes first, then its digram sub-buckets).
	bucketStart [256]int32

	numThreads int
	pool       *pool.Pool

	listeners []Listener
}

// Listener receives phase-timing notifications; it mirrors the
// package-root event bus so transform can raise events without
// importing the root package (which imports transform's public API).
type Listener interface {
	ProcessEvent(phase string, beginning bool, size int64)
}

func (m *MSufSort) notify(phase string, beginning bool, size int64) {
	notify(m.listeners, phase, beginning, size)
}

func notify(listeners []Listener, phase string, beginning bool, size int64) {
	for _, l := range listeners {
		l.ProcessEvent(phase, beginning, size)
	}
}

// newMSufSort allocates the engine state for input. numThreads must be
// >= 1 and len(input) must fit in 30 bits; callers validate both
// before calling this.
func newMSufSort(input []byte, numThreads int, listeners []Listener) *MSufSort {
	n := len(input)
	sa := make([]int32, n+1)
	m := &MSufSort{
		input:      input,
		n:          n,
		words:      newWordReader(input),
		sa:         sa,
		isaBase:    (n + 1) / 2,
		numThreads: numThreads,
		pool:       pool.New(numThreads),
		listeners:  listeners,
	}
	return m
}

// isaGet/isaSet address the ISA at half suffix-index resolution, the
// way the stage-one tandem-repeat bookkeeping does in §4.5 step 5.
func (m *MSufSort) isaGet(i int) int32 {
	return m.sa[m.isaBase+i/2]
}

func (m *MSufSort) isaSet(i int, v int32) {
	m.sa[m.isaBase+i/2] = v
}

// computeSuffixArray runs the full pipeline and returns the completed
// SA: a permutation of {0..N} in sentinel-extended lexicographic
// order. computeBWT derives the BWT from this result.
func (m *MSufSort) computeSuffixArray() []int32 {
	m.notify("classify", true, int64(m.n))
	m.countSuffixes()
	m.notify("classify", false, int64(m.n))

	m.notify("firstStage", true, int64(m.n))
	m.placeInitialBStar()
	m.notify("firstStage", false, int64(m.n))

	m.notify("multikey", true, int64(m.n))
	m.sortBStarSuffixes()
	m.notify("multikey", false, int64(m.n))

	m.notify("induce", true, int64(m.n))
	m.induceRightToLeft()
	m.induceLeftToRight()
	m.notify("induce", false, int64(m.n))

	return m.sa
}

// computeBWT runs the identical pipeline and then derives the BWT
// byte string and sentinel row from the completed suffix array in one
// extra linear pass (§4.8's C8 specialisation, implemented as a
// separate derivation rather than fusing byte writes into the induce
// passes themselves — see DESIGN.md). It returns the sentinel row
// index and the BWT bytes.
func (m *MSufSort) computeBWT() (int, []byte) {
	sa := m.computeSuffixArray()
	out := make([]byte, m.n)
	sentinelRow := 0
	sentinelFound := false
	k := 0
	for row, v := range sa {
		if v == 0 {
			errs.Assert(!sentinelFound, errSingleSentinel)
			sentinelRow, sentinelFound = row, true
			continue
		}
		out[k] = m.input[v-1]
		k++
	}
	errs.Assert(sentinelFound, errSingleSentinel)
	return sentinelRow, out
}
