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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSuffixArray(t *testing.T) {
	sa, err := MakeSuffixArray([]byte("banana"), 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{6, 5, 3, 1, 0, 4, 2}, sa)
}

func TestMakeSuffixArrayRejectsInvalidThreadCount(t *testing.T) {
	_, err := MakeSuffixArray([]byte("banana"), 0)
	assert.ErrorIs(t, err, ErrInvalidThreadCount)
}

type recordingListener struct {
	events []*Event
}

func (l *recordingListener) ProcessEvent(evt *Event) {
	l.events = append(l.events, evt)
}

func TestMakeSuffixArrayNotifiesListeners(t *testing.T) {
	rec := &recordingListener{}
	_, err := MakeSuffixArray([]byte("mississippi"), 2, rec)
	require.NoError(t, err)

	require.NotEmpty(t, rec.events)
	seenBegin := make(map[Type]bool)
	seenEnd := make(map[Type]bool)
	for _, evt := range rec.events {
		if evt.Id == 0 {
			seenBegin[evt.EvtType] = true
		} else {
			seenEnd[evt.EvtType] = true
		}
	}
	for _, want := range []Type{EvtClassify, EvtFirstStage, EvtMultikey, EvtInduce} {
		assert.True(t, seenBegin[want], "missing begin event for %v", want)
		assert.True(t, seenEnd[want], "missing end event for %v", want)
	}
}
