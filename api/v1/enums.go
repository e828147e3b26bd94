// Copyright 2026 The Lesedi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v1

import (
	"fmt"
	"strings"
)

// State is the coordinator state.
type State int32

const (
	StateOff State = iota
	StateStartup
	StateReady
	StateShutdown
)

var stateNames = []string{"OFF", "STARTUP", "READY", "SHUTDOWN"}

func (s State) String() string                { return enumName(stateNames, int32(s)) }
func (s State) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *State) UnmarshalText(b []byte) error { return enumParse(stateNames, b, (*int32)(s), "state") }

// Instrument identifies an instrument port, selected by the tertiary mirror.
type Instrument int32

const (
	InstrumentNone Instrument = iota
	InstrumentWINCAM
	InstrumentSHOC
)

var instrumentNames = []string{"NONE", "WINCAM", "SHOC"}

func (i Instrument) String() string               { return enumName(instrumentNames, int32(i)) }
func (i Instrument) MarshalText() ([]byte, error) { return []byte(i.String()), nil }
func (i *Instrument) UnmarshalText(b []byte) error {
	return enumParse(instrumentNames, b, (*int32)(i), "instrument")
}

// TrackType is the telescope tracking rate type.
type TrackType int32

const (
	TrackSidereal TrackType = iota
	TrackNonSidereal
)

var trackTypeNames = []string{"SIDEREAL", "NONSIDEREAL"}

func (t TrackType) String() string               { return enumName(trackTypeNames, int32(t)) }
func (t TrackType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *TrackType) UnmarshalText(b []byte) error {
	return enumParse(trackTypeNames, b, (*int32)(t), "track type")
}

// Direction is a jog direction on the sky.
type Direction int32

const (
	DirectionNorth Direction = iota
	DirectionSouth
	DirectionEast
	DirectionWest
)

var directionNames = []string{"NORTH", "SOUTH", "EAST", "WEST"}

func (d Direction) String() string               { return enumName(directionNames, int32(d)) }
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
func (d *Direction) UnmarshalText(b []byte) error {
	return enumParse(directionNames, b, (*int32)(d), "direction")
}

// Letter returns the single-letter form used by the telescope jog command.
func (d Direction) Letter() (string, error) {
	switch d {
	case DirectionNorth:
		return "N", nil
	case DirectionSouth:
		return "S", nil
	case DirectionEast:
		return "E", nil
	case DirectionWest:
		return "W", nil
	}
	return "", InvalidArgumentf("Unknown direction: %d", int32(d))
}

// ParseInstrument accepts an instrument name in any case.
func ParseInstrument(s string) (Instrument, error) {
	var i Instrument
	err := i.UnmarshalText([]byte(s))
	return i, err
}

// ParseDirection accepts a direction name in any case.
func ParseDirection(s string) (Direction, error) {
	var d Direction
	err := d.UnmarshalText([]byte(s))
	return d, err
}

// ParseTrackType accepts a track type name in any case.
func ParseTrackType(s string) (TrackType, error) {
	var t TrackType
	err := t.UnmarshalText([]byte(s))
	return t, err
}

func enumName(names []string, v int32) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("UNKNOWN(%d)", v)
}

func enumParse(names []string, b []byte, dst *int32, kind string) error {
	s := strings.ToUpper(strings.TrimSpace(string(b)))
	for i, n := range names {
		if n == s {
			*dst = int32(i)
			return nil
		}
	}
	return InvalidArgumentf("unknown %s %q", kind, string(b))
}
