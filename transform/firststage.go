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

// bstarPartition names one contiguous run of SA slots reserved for
// the B* suffixes sharing leading digram d; C5 sorts each of these
// independently.
type bstarPartition struct {
	digram int
	begin  int
	end    int
}

// placeInitialBStar is C4. It lays out the bucket structure implied
// by the C3 counts (§4.3: A region, then per-digram B* region, then
// per-digram non-B* B region, for every byte bucket in turn), writes
// SA[0] = n (the sentinel row) with its PRECEDING_IS_A flag set,
// scatters every B* suffix into its reserved digram slot with a
// precomputed PRECEDING_IS_A flag, and leaves every other slot marked
// emptySlot for the induce passes to fill in.
func (m *MSufSort) placeInitialBStar() []bstarPartition {
	for i := range m.sa {
		m.sa[i] = emptySlot
	}
	// The byte immediately before the sentinel is always type A: the
	// sentinel sorts below every real byte, so classifyTypes' tie-break
	// at m.typeA[m.n] forces m.typeA[m.n-1] true too. sa[0]'s
	// PRECEDING_IS_A flag must reflect that unconditionally, or
	// induceRightToLeft claims row 0's induction instead of
	// induceLeftToRight, and the chain that should fill in every A
	// suffix never starts.
	m.sa[0] = m.withPrecedingAFor(int32(m.n))

	pos := int32(1)
	partitions := make([]bstarPartition, 0, 256)
	for c := 0; c < 256; c++ {
		m.bucketStart[c] = pos
		m.frontBucketOffset[c] = pos
		pos += m.aCount[c]
		for s := 0; s < 256; s++ {
			d := c<<8 | s
			m.digramStart[d] = pos
			bStar := m.bStarCount[d]
			bOther := m.bCountDigram[d] - bStar
			if bStar > 0 {
				partitions = append(partitions, bstarPartition{digram: d, begin: int(pos), end: int(pos + bStar)})
			}
			pos += bStar
			pos += bOther
			m.backBucketOffset[d] = pos - 1
		}
	}

	// The scatter itself is a single linear scan with a per-digram
	// write cursor: every B* digram's destination range was just
	// reserved above, so a sequential pass (rather than the source's
	// per-worker-block cursor scheme) fills it deterministically in
	// O(n) without needing cross-worker offset bookkeeping for a
	// phase that is already a small share of total work (§2, 4%).
	cursor := m.digramStart
	for i := 0; i < m.n; i++ {
		if !m.isBStar(i) {
			continue
		}
		d := int(m.input[i])<<8 | int(m.words.byteAt(i+1))
		slot := cursor[d]
		cursor[d]++
		precedingA := i == 0 || m.typeA[i-1]
		v := int32(i)
		if precedingA {
			v = withPrecedingA(v)
		}
		m.sa[slot] = v
	}

	return partitions
}
