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
	"fmt"
	"time"
)

// Type identifies the stage of the sort pipeline a Event was raised from.
type Type int

const (
	// EvtClassify fires around suffix classification and bucket counting (C2/C3).
	EvtClassify Type = iota

	// EvtFirstStage fires around initial radix placement and B* dispatch (C4).
	EvtFirstStage

	// EvtMultikey fires once around the whole B* sorting stage: every
	// multikey-quicksort partition job and tandem-repeat completion (C5).
	EvtMultikey

	// EvtTandem fires once around tandem-repeat completion (C6), whether
	// or not any tandem-repeat group was found.
	EvtTandem

	// EvtInduce fires once around both second-stage induce passes (C7).
	EvtInduce

	// EvtReverseBWT fires around the reverse-BWT pointer-chase decode (C9).
	EvtReverseBWT
)

func (t Type) String() string {
	switch t {
	case EvtClassify:
		return "classify"
	case EvtFirstStage:
		return "firstStage"
	case EvtMultikey:
		return "multikey"
	case EvtTandem:
		return "tandem"
	case EvtInduce:
		return "induce"
	case EvtReverseBWT:
		return "reverseBWT"
	default:
		return "unknown"
	}
}

// Event describes the start or end of one pipeline stage. Id is 0 on the
// "before" notification and 1 on the matching "after" notification so a
// Listener can pair them up without keeping its own state.
type Event struct {
	EvtType Type
	Id      int
	Size    int64
	Time    time.Time
	Msg     string
}

// NewEvent creates an event for the given stage and phase id.
func NewEvent(evtType Type, id int, size int64, msg string) *Event {
	return &Event{EvtType: evtType, Id: id, Size: size, Time: time.Now(), Msg: msg}
}

func (e *Event) String() string {
	return fmt.Sprintf("{\"type\":\"%v\",\"id\":%d,\"size\":%d,\"time\":%v,\"msg\":\"%v\"}",
		e.EvtType, e.Id, e.Size, e.Time.Format(time.RFC3339), e.Msg)
}

// Listener receives events raised during MakeSuffixArray, BWT.Forward
// and BWT.Inverse. ProcessEvent must not block for long: it is called
// synchronously from the goroutine running the transform.
type Listener interface {
	ProcessEvent(evt *Event)
}

func notify(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}
