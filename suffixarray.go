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

// eventAdapter bridges transform's internal phase/beginning/size
// notifications onto the public Event/Listener API, keeping the
// engine package free of a dependency on its own caller.
type eventAdapter struct {
	listeners []Listener
}

var phaseTypes = map[string]Type{
	"classify":   EvtClassify,
	"firstStage": EvtFirstStage,
	"multikey":   EvtMultikey,
	"tandem":     EvtTandem,
	"induce":     EvtInduce,
	"reverseBWT": EvtReverseBWT,
}

func (a eventAdapter) ProcessEvent(phase string, beginning bool, size int64) {
	id := 1
	if beginning {
		id = 0
	}
	notify(a.listeners, NewEvent(phaseTypes[phase], id, size, phase))
}

func adaptListeners(listeners []Listener) []transform.Listener {
	if len(listeners) == 0 {
		return nil
	}
	return []transform.Listener{eventAdapter{listeners: listeners}}
}

// MakeSuffixArray builds the suffix array of input: a permutation of
// {0, ..., len(input)} in sentinel-extended lexicographic order, with
// SA[0] always equal to len(input) (§6, §8 invariant 5). Work is
// spread across numThreads goroutines; listeners receive phase-timing
// events as the pipeline runs.
func MakeSuffixArray(input []byte, numThreads int, listeners ...Listener) (sa []int32, err error) {
	if len(input) >= transform.MaxInputLength {
		return nil, ErrInputTooLarge
	}
	if numThreads < 1 {
		return nil, ErrInvalidThreadCount
	}
	// An internal invariant violation inside the engine panics rather
	// than returning a value a caller could mistake for a real result;
	// Recover turns that into an ordinary error here at the boundary,
	// the one place a caller of this package can see it.
	defer errs.Recover(&err)
	return transform.MakeSuffixArray(input, numThreads, adaptListeners(listeners)...), nil
}
