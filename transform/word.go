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

import "encoding/binary"

// wordReader gives every suffix comparison a safe 8-byte big-endian
// window into input, synthesising zero bytes past the end so the
// virtual sentinel sorts below every real byte without a bounds check
// on every comparison.
type wordReader struct {
	input []byte
	tail  [16]byte
}

func newWordReader(input []byte) *wordReader {
	w := &wordReader{input: input}
	n := len(input)
	start := 0
	if n > 8 {
		start = n - 8
	}
	copy(w.tail[8-(n-start):], input[start:n])
	return w
}

// word returns the 8 bytes starting at i, big-endian, zero-padded past
// len(input). i may be any value in [0, len(input)]; i beyond that is
// a caller bug.
func (w *wordReader) word(i int) uint64 {
	n := len(w.input)
	if i <= n-8 {
		return binary.BigEndian.Uint64(w.input[i : i+8])
	}
	if i > n {
		return 0
	}
	off := 8 - (n - i)
	return binary.BigEndian.Uint64(w.tail[off : off+8])
}

// byteAt returns input[i], or 0 if i >= len(input) (the sentinel).
func (w *wordReader) byteAt(i int) byte {
	if i >= len(w.input) {
		return 0
	}
	return w.input[i]
}
