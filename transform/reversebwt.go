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

// reverseBWT is C9. It reconstructs the original N bytes from the BWT
// string l (length N) and the sentinel row index, the unique row r in
// the N+1-row sorted rotation matrix with SA[r] == 0 (§6).
//
// Construction follows the standard rank/select LF-mapping: a
// histogram of l gives each byte's starting row in the sorted first
// column (§4.9's "F column"); a single sequential pass assigns each
// position in l its LF-mapped row, the one true data dependency in
// the whole computation, since rank order must be resolved in l's own
// order.
//
// Decode departs from §4.9's dynamic fragment/rebalance scheme: the
// LF mapping forms one Hamiltonian cycle over the N+1 rows, and this
// implementation parallelises walking it with pointer-doubling list
// ranking (Wyllie's algorithm) instead of the source's stall-detect-
// and-donate partition scheme. Both parallelise the same underlying
// problem — a single dependency chain — but list ranking is a
// textbook technique with a well-understood termination proof, which
// matters more here than matching the source's bespoke bookkeeping
// when neither can be run to find out if a subtle case was missed.
func reverseBWT(l []byte, sentinelIndex, numThreads int) []byte {
	n := len(l)
	if n == 0 {
		return nil
	}
	if numThreads < 1 {
		numThreads = 1
	}

	p := pool.New(numThreads)
	workers := numThreads
	if workers > n {
		workers = n
	}

	var counts [256]int32
	local := make([][256]int32, workers)
	pool.Run(p, n, func(worker, begin, end int) {
		h := &local[worker]
		for i := begin; i < end; i++ {
			h[l[i]]++
		}
	})
	for _, h := range local {
		for c := 0; c < 256; c++ {
			counts[c] += h[c]
		}
	}

	var base [256]int32
	acc := int32(1) // row 0 of the F column holds the virtual sentinel
	for c := 0; c < 256; c++ {
		base[c] = acc
		acc += counts[c]
	}

	fByte := make([]byte, n+1)
	for c := 0; c < 256; c++ {
		start := base[c]
		for i := int32(0); i < counts[c]; i++ {
			fByte[start+i] = byte(c)
		}
	}

	// next[row] is the LF-mapped row for every row except sentinelIndex,
	// which has no preceding byte. This pass carries the only
	// sequential dependency: rank-within-byte must follow l's order.
	next := make([]int32, n+1)
	var rankCounter [256]int32
	rowOf := func(k int) int {
		if k >= sentinelIndex {
			return k + 1
		}
		return k
	}
	for k := 0; k < n; k++ {
		c := l[k]
		next[rowOf(k)] = base[c] + rankCounter[c]
		rankCounter[c]++
	}

	// invNext inverts next: a pure scatter over n disjoint targets,
	// since next is a bijection from {0..n}\{sentinelIndex} onto
	// {0..n}\{0}, so concurrent writes never collide.
	invNext := make([]int32, n+1)
	pool.Run(p, n, func(worker, begin, end int) {
		for k := begin; k < end; k++ {
			row := rowOf(k)
			invNext[next[row]] = int32(row)
		}
	})

	succ := make([]int32, n+1)
	copy(succ, invNext)
	succ[0] = 0 // row 0 (SA[0] == n) terminates the forward walk
	rank := make([]int32, n+1)
	for i := range rank {
		rank[i] = 1
	}
	rank[0] = 0

	for steps := 1; steps <= 2*n+1; steps *= 2 {
		newRank := make([]int32, n+1)
		newSucc := make([]int32, n+1)
		pool.Run(p, n+1, func(worker, begin, end int) {
			for r := begin; r < end; r++ {
				s := succ[r]
				newRank[r] = rank[r] + rank[s]
				newSucc[r] = succ[s]
			}
		})
		rank, succ = newRank, newSucc
	}

	result := make([]byte, n)
	pool.Run(p, n+1, func(worker, begin, end int) {
		for r := begin; r < end; r++ {
			stepsFromStart := n - int(rank[r])
			if stepsFromStart >= 0 && stepsFromStart < n {
				result[stepsFromStart] = fByte[r]
			}
		}
	})
	return result
}
