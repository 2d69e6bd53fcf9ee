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

import (
	"sort"
	"sync/atomic"
)

// tandemRecord is one entry on a worker's tandem-repeat stack (§4.5
// step 6): a partition range whose first numTerminators elements are
// its terminators and whose remaining elements, the non-terminators
// that repeat with period p, were moved to its tail, plus the period
// itself. C6 resolves these after stage one's quicksort pass
// finishes.
type tandemRecord struct {
	begin, end     int
	numTerminators int
	period         int32
}

// sortBStarSuffixes is C5's driver: it lays out the B* partitions via
// C4, then lets numThreads workers repeatedly claim the largest
// unclaimed partition (a bag of tasks over a size-descending list, so
// no late-arriving giant partition is left to a single worker), and
// finally resolves every worker's tandem-repeat stack (C6).
func (m *MSufSort) sortBStarSuffixes() {
	partitions := m.placeInitialBStar()
	sort.Slice(partitions, func(i, j int) bool {
		return (partitions[i].end - partitions[i].begin) > (partitions[j].end - partitions[j].begin)
	})

	workers := m.numThreads
	if workers < 1 {
		workers = 1
	}
	stacks := make([][]tandemRecord, workers)

	var next int64
	for w := 0; w < workers; w++ {
		w := w
		m.pool.Submit(w, func() {
			for {
				idx := atomic.AddInt64(&next, 1) - 1
				if idx >= int64(len(partitions)) {
					return
				}
				p := partitions[idx]
				m.multikeyQuicksort(p.begin, p.end, 2, &stacks[w])
			}
		})
	}
	m.pool.WaitAll()

	m.notify("tandem", true, int64(m.n))
	for w := 0; w < workers; w++ {
		w := w
		m.pool.Submit(w, func() {
			m.completeTandemRepeats(stacks[w])
		})
	}
	m.pool.WaitAll()
	m.notify("tandem", false, int64(m.n))
}

// multikeyQuicksort sorts sa[begin:end], a run of suffixes already
// known to share a common prefix of length d bytes, by their
// lexicographic order. It is plain recursion rather than the
// source's explicit work-stack: Go goroutine stacks grow dynamically,
// so the unbounded-call-depth hazard an adversarial input poses to a
// fixed-size OS thread stack does not apply here.
func (m *MSufSort) multikeyQuicksort(begin, end int, d int32, stack *[]tandemRecord) {
	size := end - begin
	if size <= 1 {
		return
	}
	if size < insertionSortThreshold {
		m.insertionSort(begin, end, d, stack)
		return
	}

	if d >= tandemRepeatWordThreshold && m.hasPotentialTandemRepeat(begin, end, d) {
		numNonTerminators := m.partitionTandemRepeats(begin, end, d, stack)
		end -= numNonTerminators
		size = end - begin
		if size <= 1 {
			return
		}
		if size < insertionSortThreshold {
			m.insertionSort(begin, end, d, stack)
			return
		}
	}

	b := m.partitionSevenWay(begin, end, d)
	m.multikeyQuicksort(b[0], b[1], d, stack)
	m.multikeyQuicksort(b[1], b[2], d+8, stack)
	m.multikeyQuicksort(b[2], b[3], d, stack)
	m.multikeyQuicksort(b[3], b[4], d+8, stack)
	m.multikeyQuicksort(b[4], b[5], d, stack)
	m.multikeyQuicksort(b[5], b[6], d+8, stack)
	m.multikeyQuicksort(b[6], b[7], d, stack)
}

// keyAt returns the next 8-byte big-endian word starting d bytes into
// the suffix currently occupying sa[pos].
func (m *MSufSort) keyAt(pos int, d int32) uint64 {
	off := int(suffixOffset(m.sa[pos]))
	return m.words.word(off + int(d))
}

// sortFive sorts a 5-element array in place with the classical
// 9-comparator optimal sorting network (§4.5).
func sortFive(a *[5]uint64) {
	swapIfGreater := func(i, j int) {
		if a[i] > a[j] {
			a[i], a[j] = a[j], a[i]
		}
	}
	swapIfGreater(0, 1)
	swapIfGreater(3, 4)
	swapIfGreater(2, 4)
	swapIfGreater(2, 3)
	swapIfGreater(0, 3)
	swapIfGreater(0, 2)
	swapIfGreater(1, 4)
	swapIfGreater(1, 3)
	swapIfGreater(1, 2)
}

func classifyAgainstPivots(k, p1, p2, p3 uint64) uint8 {
	switch {
	case k < p1:
		return 0
	case k == p1:
		return 1
	case k < p2:
		return 2
	case k == p2:
		return 3
	case k < p3:
		return 4
	case k == p3:
		return 5
	default:
		return 6
	}
}

// partitionSevenWay implements the seven-way Dutch-flag partition
// (§4.5): five candidates are sampled, sorted, and their 1st/3rd/5th
// elements become pivots p1<=p2<=p3, splitting [begin,end) into the
// seven regions <p1, =p1, (p1,p2), =p2, (p2,p3), =p3, >p3. It returns
// the eight boundary indices delimiting those regions.
//
// The split is computed with one counting pass and a scatter through
// an auxiliary buffer rather than in-place multi-pivot swaps: this
// keeps the region boundaries obviously correct (each element lands
// exactly once, by its own classification) without relying on the
// pointer-crossing bookkeeping an in-place Dutch-flag partition needs
// to get right on the first try.
func (m *MSufSort) partitionSevenWay(begin, end int, d int32) [8]int {
	size := end - begin

	var candPos [5]int
	for k := 1; k <= 5; k++ {
		candPos[k-1] = begin + size*k/6
	}
	var cands [5]uint64
	for i, p := range candPos {
		cands[i] = m.keyAt(p, d)
	}
	sortFive(&cands)
	p1, p2, p3 := cands[0], cands[2], cands[4]

	classes := make([]uint8, size)
	var counts [7]int
	for i := 0; i < size; i++ {
		c := classifyAgainstPivots(m.keyAt(begin+i, d), p1, p2, p3)
		classes[i] = c
		counts[c]++
	}

	var bounds [8]int
	bounds[0] = begin
	for c := 0; c < 7; c++ {
		bounds[c+1] = bounds[c] + counts[c]
	}

	tmp := make([]int32, size)
	copy(tmp, m.sa[begin:end])
	cursor := bounds
	for i := 0; i < size; i++ {
		c := classes[i]
		m.sa[cursor[c]] = tmp[i]
		cursor[c]++
	}

	return bounds
}

// insertionSort sorts sa[begin:end] by full lexicographic suffix
// order, assuming every suffix already shares the first d bytes.
// Partitions below insertionSortThreshold use this instead of
// recursing further (§4.5).
//
// The shift-insert pass resolves every tie beyond d with
// compareSuffixesFrom's word-at-a-time scan, so its result is already
// in final order. After it, each run of adjacent entries that still
// share the word at depth d is handed back to multikeyQuicksort at
// d+8. Such a run is smaller than insertionSortThreshold, so
// multikeyQuicksort sends it straight back here; the tandem-repeat
// check in multikeyQuicksort is not reached for it.
func (m *MSufSort) insertionSort(begin, end int, d int32, stack *[]tandemRecord) {
	for i := begin + 1; i < end; i++ {
		v := m.sa[i]
		off := int(suffixOffset(v))
		j := i - 1
		for j >= begin && m.compareSuffixesFrom(int(suffixOffset(m.sa[j])), off, d) > 0 {
			m.sa[j+1] = m.sa[j]
			j--
		}
		m.sa[j+1] = v
	}

	// Past this depth every surviving pair of offsets has exhausted
	// the real input on at least one side; wordReader zero-pads there,
	// so two distinct offsets would read as "tied" forever and this
	// loop would never terminate. The sort above has already produced
	// the correct final order for them regardless, so there is nothing
	// left to gain by re-entering.
	if int(d) >= m.n {
		return
	}

	groupBegin := begin
	for i := begin + 1; i <= end; i++ {
		tied := i < end && m.keyAt(i, d) == m.keyAt(i-1, d)
		if tied {
			continue
		}
		if i-groupBegin > 1 {
			m.multikeyQuicksort(groupBegin, i, d+8, stack)
		}
		groupBegin = i
	}
}

// compareSuffixesFrom returns -1, 0, or 1 comparing the suffixes
// starting at offA and offB, given that their first d bytes are
// already known equal. It reads whole 8-byte words for speed and
// falls back to a byte-at-a-time comparison only once either suffix
// runs out of real input, since the zero-padded word reader cannot by
// itself distinguish "past end of input" from "input byte 0x00"
// (§4.1 limits that trick to prefix-equality checks).
func (m *MSufSort) compareSuffixesFrom(offA, offB int, d int32) int {
	i := int(d)
	for {
		if offA+i >= m.n || offB+i >= m.n {
			return m.compareTail(offA+i, offB+i)
		}
		wa := m.words.word(offA + i)
		wb := m.words.word(offB + i)
		if wa != wb {
			if wa < wb {
				return -1
			}
			return 1
		}
		i += 8
	}
}

func (m *MSufSort) compareTail(posA, posB int) int {
	for {
		aEnd := posA >= m.n
		bEnd := posB >= m.n
		if aEnd && bEnd {
			return 0
		}
		if aEnd {
			return -1
		}
		if bEnd {
			return 1
		}
		if m.input[posA] != m.input[posB] {
			if m.input[posA] < m.input[posB] {
				return -1
			}
			return 1
		}
		posA++
		posB++
	}
}
