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
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveSuffixArray(input []byte) []int32 {
	n := len(input)
	idx := make([]int32, n+1)
	for i := range idx {
		idx[i] = int32(i)
	}
	suffix := func(i int32) []byte {
		if int(i) == n {
			return nil
		}
		return input[i:]
	}
	sort.Slice(idx, func(a, b int) bool {
		// bytes.Compare already treats a shorter prefix as lesser,
		// matching the virtual $ < every byte rule.
		return bytes.Compare(suffix(idx[a]), suffix(idx[b])) < 0
	})
	return idx
}

func TestMakeSuffixArrayScenarios(t *testing.T) {
	tests := map[string]struct {
		input []byte
		want  []int32
	}{
		"empty string":   {input: []byte(""), want: []int32{0}},
		"single byte":     {input: []byte("a"), want: []int32{1, 0}},
		"banana":          {input: []byte("banana"), want: []int32{6, 5, 3, 1, 0, 4, 2}},
		"mississippi":     {input: []byte("mississippi"), want: []int32{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}},
		"tandem repeat a": {input: []byte("aaaaaaaa"), want: []int32{8, 7, 6, 5, 4, 3, 2, 1, 0}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for _, jobs := range []int{1, 4} {
				sa := MakeSuffixArray(tc.input, jobs)
				assert.Equal(t, tc.want, sa, "jobs=%d", jobs)
			}
		})
	}
}

func TestMakeSuffixArrayPeriod2TandemRepeat(t *testing.T) {
	input := []byte("abababab")
	want := naiveSuffixArray(input)
	for _, jobs := range []int{1, 4} {
		sa := MakeSuffixArray(input, jobs)
		assert.Equal(t, want, sa, "jobs=%d", jobs)
	}
}

// TestMakeSuffixArrayScatteredRepeats embeds five scattered copies of
// a 20-byte substring in a wide-alphabet random background and checks
// the result against the naive reference. The substring is a strictly
// ascending run, so the suffixes starting at its copies are type B but
// not B*: their order comes from the induce passes, seeded by the B*
// suffixes where each run ends.
func TestMakeSuffixArrayScatteredRepeats(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	n := 4000
	input := make([]byte, n)
	for i := range input {
		input[i] = byte(32 + r.Intn(200)) // wide alphabet: digram collisions are rare
	}

	repeat := []byte("ABCDEFGHIJKLMNOPQRST") // 20 bytes, past tandemRepeatWordThreshold
	for _, pos := range []int{100, 900, 2000, 3100, 3800} {
		copy(input[pos:pos+len(repeat)], repeat)
	}

	want := naiveSuffixArray(input)
	for _, jobs := range []int{1, 4} {
		sa := MakeSuffixArray(input, jobs)
		assert.Equal(t, want, sa, "jobs=%d", jobs)
	}
}

func TestMakeSuffixArrayInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(200)
		input := make([]byte, n)
		for i := range input {
			input[i] = byte(r.Intn(4))
		}
		sa := MakeSuffixArray(input, 3)

		require.Equal(t, n+1, len(sa))
		require.Equal(t, int32(n), sa[0], "SA[0] must equal N")

		seen := make(map[int32]bool, len(sa))
		for _, v := range sa {
			require.False(t, seen[v], "duplicate suffix index %d", v)
			seen[v] = true
		}

		for i := 0; i < len(sa)-1; i++ {
			a, b := sa[i], sa[i+1]
			var sufA, sufB []byte
			if int(a) < n {
				sufA = input[a:]
			}
			if int(b) < n {
				sufB = input[b:]
			}
			require.Less(t, bytes.Compare(sufA, sufB), 0, "SA not ordered at %d: %v vs %v", i, sufA, sufB)
		}
	}
}

func TestComputeBWTScenarios(t *testing.T) {
	tests := map[string]struct {
		input         []byte
		wantBWT       []byte
		wantSentinel  int
	}{
		"empty string": {input: []byte(""), wantBWT: []byte(""), wantSentinel: 0},
		"single byte":  {input: []byte("a"), wantBWT: []byte("a"), wantSentinel: 0},
		"banana":       {input: []byte("banana"), wantBWT: []byte("nnbaaa"), wantSentinel: 4},
		"tandem a":     {input: []byte("aaaaaaaa"), wantBWT: []byte("aaaaaaaa"), wantSentinel: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := newMSufSort(tc.input, 2, nil)
			sentinel, bwt := m.computeBWT()
			assert.Equal(t, tc.wantBWT, bwt)
			assert.Equal(t, tc.wantSentinel, sentinel)
		})
	}
}

func TestReverseBWTRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("banana"),
		[]byte("mississippi"),
		[]byte("aaaaaaaa"),
		[]byte("abababab"),
		[]byte("the quick brown fox jumps over the lazy dog"),
	}
	for _, input := range inputs {
		m := newMSufSort(input, 3, nil)
		sentinel, bwt := m.computeBWT()
		got := reverseBWT(bwt, sentinel, 3)
		assert.Equal(t, input, got, "round trip for %q", input)
	}
}

func TestReverseBWTRandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 30; trial++ {
		n := r.Intn(500)
		input := make([]byte, n)
		for i := range input {
			input[i] = byte(r.Intn(250) + 1)
		}
		m := newMSufSort(input, 4, nil)
		sentinel, bwt := m.computeBWT()
		got := reverseBWT(bwt, sentinel, 4)
		require.Equal(t, input, got, "trial %d", trial)
	}
}
