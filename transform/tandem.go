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

package transform

import "sort"

// hasPotentialTandemRepeat is a cheap pre-filter for the tandem-repeat
// shortcut (§4.5): it compares the word at the very start of the
// partition's known prefix against the two words at the end of that
// prefix. A match is only a signal, never a verdict — partitionTandemRepeats
// always re-derives the real period (or the absence of one) from the
// actual suffix offsets, so a false positive here just costs one
// wasted sort-and-scan, never a wrong answer.
func (m *MSufSort) hasPotentialTandemRepeat(begin, end int, d int32) bool {
	if end-begin < 2 {
		return false
	}
	off := int(suffixOffset(m.sa[begin]))
	w0 := m.words.word(off)
	w1 := m.words.word(off + int(d) - 16)
	w2 := m.words.word(off + int(d) - 8)
	return w0 == w1 || w0 == w2
}

// partitionTandemRepeats is §4.5 steps 1-6. It sorts sa[begin:end] by
// raw suffix offset, looks for an adjacent pair whose offsets differ
// by at most d/2 (a period), and if one exists, moves every
// suffix that has such a successor (a non-terminator) to the tail of
// the range, recording its period in the ISA. It returns the count of
// non-terminators moved, which the caller excludes from further
// quicksort recursion; the remaining terminators at the front are
// left for the caller to sort normally.
func (m *MSufSort) partitionTandemRepeats(begin, end int, d int32, stack *[]tandemRecord) int {
	slice := m.sa[begin:end]
	sort.Slice(slice, func(i, j int) bool {
		return suffixOffset(slice[i]) < suffixOffset(slice[j])
	})

	period := int32(0)
	half := d / 2
	for k := 0; k < len(slice)-1; k++ {
		gap := suffixOffset(slice[k+1]) - suffixOffset(slice[k])
		if gap > 0 && gap <= half {
			period = gap
			break
		}
	}
	if period == 0 {
		return 0
	}

	terminators := make([]int32, 0, len(slice))
	nonTerminators := make([]int32, 0, len(slice))
	for k := 0; k < len(slice); k++ {
		v := slice[k]
		off := suffixOffset(v)
		if k+1 < len(slice) && suffixOffset(slice[k+1]) == off+period {
			nonTerminators = append(nonTerminators, v)
			m.isaSet(int(off), makeTandemLength(period))
		} else {
			terminators = append(terminators, v)
		}
	}

	copy(slice[:len(terminators)], terminators)
	copy(slice[len(terminators):], nonTerminators)

	*stack = append(*stack, tandemRecord{
		begin:          begin,
		end:            end,
		numTerminators: len(terminators),
		period:         period,
	})

	return len(nonTerminators)
}

// withPrecedingAFor returns offset, optionally flagged with
// PRECEDING_IS_A, for a freshly placed SA entry.
func (m *MSufSort) withPrecedingAFor(offset int32) int32 {
	v := offset
	if offset == 0 || m.typeA[offset-1] {
		v = withPrecedingA(v)
	}
	return v
}

// completeTandemRepeats is C6: it resolves every record on a worker's
// tandem-repeat stack after that worker's multikey-quicksort pass has
// finished sorting the terminators at the front of each record's
// range.
func (m *MSufSort) completeTandemRepeats(records []tandemRecord) {
	for _, rec := range records {
		m.completeTandemRepeat(rec)
	}
}

// completeTandemRepeat implements §4.6 for one record. The sorted
// terminators split into a type-A prefix and a type-B suffix (found
// here by a linear scan rather than a literal binary search: these
// partitions are small enough in practice that the asymptotic
// difference does not matter, and a linear scan is easier to get
// right without the ability to compile and test it). Two self-feeding
// sweeps then fill the tail of the range: forward from the type-A
// terminators, backward from the type-B terminators.
func (m *MSufSort) completeTandemRepeat(rec tandemRecord) {
	begin, end, numTerminators, p := rec.begin, rec.end, rec.numTerminators, rec.period
	if p == 0 || numTerminators == 0 {
		return
	}
	termEnd := begin + numTerminators

	splitIdx := termEnd
	for k := begin; k < termEnd; k++ {
		off := suffixOffset(m.sa[k])
		if m.compareSuffixesFrom(int(off)+int(p), int(off), 0) > 0 {
			splitIdx = k
			break
		}
	}

	// Forward sweep: type-A terminators [begin, splitIdx) feed a
	// self-growing read queue; each time a suffix s's predecessor
	// s-p turns out to share period p, that predecessor is both
	// appended to SA and pushed onto the same queue, since it may
	// have its own predecessor.
	appendCursor := termEnd
	fwdQueue := append([]int32(nil), m.sa[begin:splitIdx]...)
	for i := 0; i < len(fwdQueue) && appendCursor < end; i++ {
		pred := int(suffixOffset(fwdQueue[i])) - int(p)
		if pred < 0 {
			continue
		}
		isaVal := m.isaGet(pred)
		if !isTandemLength(isaVal) || tandemLength(isaVal) != p {
			continue
		}
		v := m.withPrecedingAFor(int32(pred))
		m.sa[appendCursor] = v
		appendCursor++
		fwdQueue = append(fwdQueue, v)
	}

	// Backward sweep mirrors the above for type-B terminators
	// [splitIdx, termEnd), read from the highest sorted position down,
	// filling the range from its back.
	backCursor := end - 1
	bwdQueue := make([]int32, 0, termEnd-splitIdx)
	for k := termEnd - 1; k >= splitIdx; k-- {
		bwdQueue = append(bwdQueue, m.sa[k])
	}
	for i := 0; i < len(bwdQueue) && backCursor >= appendCursor; i++ {
		pred := int(suffixOffset(bwdQueue[i])) - int(p)
		if pred < 0 {
			continue
		}
		isaVal := m.isaGet(pred)
		if !isTandemLength(isaVal) || tandemLength(isaVal) != p {
			continue
		}
		v := m.withPrecedingAFor(int32(pred))
		m.sa[backCursor] = v
		backCursor--
		bwdQueue = append(bwdQueue, v)
	}
}
