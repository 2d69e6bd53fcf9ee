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

package msufsort

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBWTForwardScenarios(t *testing.T) {
	tests := map[string]struct {
		input        string
		wantBWT      string
		wantSentinel int
	}{
		"empty":   {input: "", wantBWT: "", wantSentinel: 0},
		"single":  {input: "a", wantBWT: "a", wantSentinel: 0},
		"banana":  {input: "banana", wantBWT: "nnbaaa", wantSentinel: 4},
		"tandem":  {input: "aaaaaaaa", wantBWT: "aaaaaaaa", wantSentinel: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			bwt, err := NewBWT(2)
			require.NoError(t, err)
			dst := make([]byte, bwt.MaxEncodedLen(len(tc.input)))
			n, m, err := bwt.Forward([]byte(tc.input), dst)
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.input), n)
			assert.EqualValues(t, len(tc.input), m)
			assert.Equal(t, tc.wantBWT, string(dst))
			assert.Equal(t, tc.wantSentinel, bwt.SentinelIndex())
		})
	}
}

func TestBWTRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"banana",
		"mississippi",
		"aaaaaaaa",
		"abababab",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, input := range inputs {
		bwt, err := NewBWT(3)
		require.NoError(t, err)
		transformed := make([]byte, bwt.MaxEncodedLen(len(input)))
		_, _, err = bwt.Forward([]byte(input), transformed)
		require.NoError(t, err)

		decoded := make([]byte, len(input))
		_, _, err = bwt.Inverse(transformed, decoded)
		require.NoError(t, err)
		assert.Equal(t, input, string(decoded))
	}
}

func TestBWTRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(400)
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(r.Intn(250) + 1)
		}
		bwt, err := NewBWT(4)
		require.NoError(t, err)
		transformed := make([]byte, bwt.MaxEncodedLen(len(data)))
		_, _, err = bwt.Forward(data, transformed)
		require.NoError(t, err)

		decoded := make([]byte, len(data))
		_, _, err = bwt.Inverse(transformed, decoded)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	}
}

func TestBWTInverseRejectsBadSentinel(t *testing.T) {
	bwt, err := NewBWT(1)
	require.NoError(t, err)
	require.NoError(t, bwt.SetSentinelIndex(100))
	dst := make([]byte, 4)
	_, _, err = bwt.Inverse([]byte("abcd"), dst)
	assert.ErrorIs(t, err, ErrInvalidSentinelIndex)
}

func TestBWTForwardRejectsSmallBuffer(t *testing.T) {
	bwt, err := NewBWT(1)
	require.NoError(t, err)
	dst := make([]byte, 2)
	_, _, err = bwt.Forward([]byte("banana"), dst)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}
