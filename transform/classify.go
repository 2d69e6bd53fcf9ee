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

import "github.com/maniscalco/msufsort-go/internal/pool"

// classifyTypes fills m.typeA: typeA[i] is true iff suffix i is type
// A (i == n, or suffix i sorts above its right neighbour). Position n
// is the sentinel suffix and is type A by convention since the
// sentinel is smaller than every real byte, which makes input[n-1]
// always greater than it.
//
// The scan runs right to left and only ever looks at typeA[i+1],
// which a single pass already guarantees is settled; splitting this
// across workers would need to seed each block's right boundary from
// its neighbour first, which is exactly the two-byte-digram histogram
// boundary (classify.go's countSuffixes) that §4.3 parallelises
// instead. Running the type scan itself on one goroutine keeps it
// branch-simple and, crucially, identical regardless of numThreads.
func (m *MSufSort) classifyTypes() {
	m.typeA = make([]bool, m.n+1)
	m.typeA[m.n] = true
	for i := m.n - 1; i >= 0; i-- {
		a, b := m.input[i], m.words.byteAt(i+1)
		switch {
		case a > b:
			m.typeA[i] = true
		case a < b:
			m.typeA[i] = false
		default:
			m.typeA[i] = m.typeA[i+1]
		}
	}
}

// isBStar reports whether suffix i is a B* suffix: a B suffix (type
// B) whose right neighbour is type A.
func (m *MSufSort) isBStar(i int) bool {
	return !m.typeA[i] && m.typeA[i+1]
}

// countSuffixes is C3: it produces per-leading-byte A/B counts and
// per-leading-digram B* counts. The scan is split into contiguous
// blocks, one per worker, each accumulating into a private histogram;
// histograms are summed after the barrier, which is commutative and
// so makes the result identical for any thread count (§8 invariant
// 4).
func (m *MSufSort) countSuffixes() {
	m.classifyTypes()

	type histograms struct {
		a     [256]int32
		b     [256]int32
		bAll  [65536]int32
		bStar [65536]int32
	}

	workers := m.numThreads
	if workers > m.n+1 {
		workers = m.n + 1
	}
	if workers < 1 {
		workers = 1
	}
	local := make([]histograms, workers)

	pool.Run(m.pool, m.n, func(worker, begin, end int) {
		h := &local[worker]
		for i := begin; i < end; i++ {
			c := m.input[i]
			if m.typeA[i] {
				h.a[c]++
			} else {
				h.b[c]++
				d := uint16(c)<<8 | uint16(m.words.byteAt(i+1))
				h.bAll[d]++
				if m.isBStar(i) {
					h.bStar[d]++
				}
			}
		}
	})

	for _, h := range local {
		for c := 0; c < 256; c++ {
			m.aCount[c] += h.a[c]
			m.bCount[c] += h.b[c]
		}
		for d := 0; d < 65536; d++ {
			m.bCountDigram[d] += h.bAll[d]
			m.bStarCount[d] += h.bStar[d]
		}
	}
}
