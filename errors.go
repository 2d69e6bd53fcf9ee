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

// Package msufsort is a parallel suffix-array and Burrows-Wheeler
// Transform engine for byte strings.
package msufsort

// Error is the wrapper type for errors returned at the public API
// boundary (caller misuse: oversized input, invalid sentinel index).
type Error string

func (e Error) Error() string { return "msufsort: " + string(e) }

var (
	// ErrInputTooLarge is returned when the input length does not fit
	// in the 30 bits available for a suffix offset.
	ErrInputTooLarge error = Error("input length exceeds 2^30-1 bytes")

	// ErrInvalidThreadCount is returned when numThreads < 1.
	ErrInvalidThreadCount error = Error("numThreads must be at least 1")

	// ErrInvalidSentinelIndex is returned by BWT.Inverse when the
	// sentinel index is outside [0, N], and by BWT.SetSentinelIndex
	// when it is negative.
	ErrInvalidSentinelIndex error = Error("sentinel index out of range")

	// ErrBufferTooSmall is returned when a caller-provided destination
	// buffer cannot hold the result.
	ErrBufferTooSmall error = Error("destination buffer is too small")
)
