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

import "errors"

// ErrInvalidSentinelIndex is returned by Inverse when the sentinel row
// does not fall within the transformed data it was paired with.
// MakeSuffixArray and Forward's own size/thread-count validation lives
// at the package-root boundary (errors.go); this one stays here
// because a BWT's sentinel index is untrusted external data in its own
// right, not merely an internally-produced value.
var ErrInvalidSentinelIndex = errors.New("msufsort: sentinel index out of range")

// BWT performs the forward and inverse Burrows-Wheeler transform
// described in §6, built on top of the same suffix-sorting engine as
// MakeSuffixArray. Unlike the source's chunked, multi-primary-index
// scheme, one BWT value handles a single block with a single sentinel
// row; callers that need to transform input larger than fits
// comfortably in memory are expected to chunk it themselves.
type BWT struct {
	numThreads int
	listeners  []Listener
}

// NewBWT returns a BWT engine that distributes work across numThreads
// goroutines and reports phase-timing events to listeners. numThreads
// is assumed already validated by the caller (the package-root
// boundary).
func NewBWT(numThreads int, listeners ...Listener) *BWT {
	if numThreads < 1 {
		numThreads = 1
	}
	return &BWT{numThreads: numThreads, listeners: listeners}
}

// Forward computes the Burrows-Wheeler transform of input, returning
// the transformed bytes (same length as input) and the sentinel row
// index: the unique row r in the N+1-row sorted rotation matrix with
// SA[r] == 0 (§6).
func (b *BWT) Forward(input []byte) ([]byte, int) {
	m := newMSufSort(input, b.numThreads, b.listeners)
	sentinel, out := m.computeBWT()
	return out, sentinel
}

// Inverse reconstructs the original bytes from a Burrows-Wheeler
// transform produced by Forward (or an equivalent encoder using the
// same sentinel-row convention).
func (b *BWT) Inverse(transformed []byte, sentinelIndex int) ([]byte, error) {
	if sentinelIndex < 0 || sentinelIndex > len(transformed) {
		return nil, ErrInvalidSentinelIndex
	}
	notify(b.listeners, "reverseBWT", true, int64(len(transformed)))
	out := reverseBWT(transformed, sentinelIndex, b.numThreads)
	notify(b.listeners, "reverseBWT", false, int64(len(transformed)))
	return out, nil
}
