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

// MakeSuffixArray builds the suffix array of input using numThreads
// goroutines, reporting phase-timing events to listeners. The result
// is a permutation of {0, ..., len(input)} in sentinel-extended
// lexicographic order (§6); SA[0] is always len(input), the position
// of the empty suffix.
//
// Size and thread-count validation happens at the package-root
// boundary; numThreads here is assumed already >= 1.
func MakeSuffixArray(input []byte, numThreads int, listeners ...Listener) []int32 {
	if numThreads < 1 {
		numThreads = 1
	}
	m := newMSufSort(input, numThreads, listeners)
	return m.computeSuffixArray()
}
