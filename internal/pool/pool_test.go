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

package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitWaitAllIsABarrier(t *testing.T) {
	p := New(4)
	var counter int64
	for i := 0; i < 50; i++ {
		p.Submit(i%4, func() { atomic.AddInt64(&counter, 1) })
	}
	p.WaitAll()
	assert.EqualValues(t, 50, counter)
}

func TestRunCoversEveryIndexExactlyOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 7} {
		p := New(workers)
		const n = 97
		seen := make([]int32, n)
		Run(p, n, func(worker, begin, end int) {
			for i := begin; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			assert.EqualValues(t, 1, c, "index %d covered %d times with %d workers", i, c, workers)
		}
	}
}

func TestRunHandlesFewerUnitsThanWorkers(t *testing.T) {
	p := New(8)
	var calls int32
	Run(p, 3, func(worker, begin, end int) {
		atomic.AddInt32(&calls, 1)
	})
	assert.EqualValues(t, 3, calls)
}

func TestRunNoOpOnZeroUnits(t *testing.T) {
	p := New(4)
	called := false
	Run(p, 0, func(worker, begin, end int) { called = true })
	assert.False(t, called)
}
