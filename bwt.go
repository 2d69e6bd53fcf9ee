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
	"github.com/dsnet/golib/errs"

	"github.com/maniscalco/msufsort-go/transform"
)

// BWT is the public Burrows-Wheeler Transform engine: Forward and
// Inverse share the same suffix-sorting core as MakeSuffixArray. The
// source's chunked, multi-primary-index scheme
// (`transform/BWT.go`'s PrimaryIndex/SetPrimaryIndex per chunk) is a
// kanzi-go block-codec concern for its own entropy coder, not part of
// this engine's contract, so BWT carries one sentinel index for the
// whole block instead of a slice of them.
type BWT struct {
	engine        *transform.BWT
	sentinelIndex int
}

// NewBWT returns a BWT that distributes work across numThreads
// goroutines and reports phase-timing events to listeners.
func NewBWT(numThreads int, listeners ...Listener) (*BWT, error) {
	if numThreads < 1 {
		return nil, ErrInvalidThreadCount
	}
	return &BWT{engine: transform.NewBWT(numThreads, adaptListeners(listeners)...)}, nil
}

// SentinelIndex returns the sentinel row recorded by the most recent
// Forward call.
func (b *BWT) SentinelIndex() int { return b.sentinelIndex }

// SetSentinelIndex sets the sentinel row to use for a subsequent
// Inverse call, for callers decoding a transform produced elsewhere.
func (b *BWT) SetSentinelIndex(sentinelIndex int) error {
	if sentinelIndex < 0 {
		return ErrInvalidSentinelIndex
	}
	b.sentinelIndex = sentinelIndex
	return nil
}

// MaxEncodedLen returns the size of the destination buffer Forward
// requires for an input of the given length: the transform has no
// expansion, so this is simply srcLen.
func (b *BWT) MaxEncodedLen(srcLen int) int { return srcLen }

// Forward applies the transform to src and writes the result to dst,
// returning the number of bytes read and written. It records the
// sentinel row on b, retrievable with SentinelIndex.
func (b *BWT) Forward(src, dst []byte) (n uint, m uint, err error) {
	if len(src) == 0 {
		b.sentinelIndex = 0
		return 0, 0, nil
	}
	if len(src) >= transform.MaxInputLength {
		return 0, 0, ErrInputTooLarge
	}
	if need := b.MaxEncodedLen(len(src)); len(dst) < need {
		return 0, 0, ErrBufferTooSmall
	}
	defer errs.Recover(&err)
	out, sentinel := b.engine.Forward(src)
	copy(dst, out)
	b.sentinelIndex = sentinel
	return uint(len(src)), uint(len(src)), nil
}

// Inverse reconstructs the original bytes from src, a transform
// produced by Forward (or an equivalent encoder using the same
// sentinel-row convention), using the sentinel row most recently
// recorded or set on b.
func (b *BWT) Inverse(src, dst []byte) (n uint, m uint, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}
	if len(dst) < len(src) {
		return 0, 0, ErrBufferTooSmall
	}
	if b.sentinelIndex < 0 || b.sentinelIndex > len(src) {
		return 0, 0, ErrInvalidSentinelIndex
	}
	defer errs.Recover(&err)
	out, ierr := b.engine.Inverse(src, b.sentinelIndex)
	if ierr != nil {
		return 0, 0, ierr
	}
	copy(dst, out)
	return uint(len(src)), uint(len(src)), nil
}
